// Command onboard-admin provides operational maintenance for the onboarding
// backend: migrations, development seeding, and inspection of the session
// and accuracy-snapshot state kept in Redis.
package main

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/onboardhq/onboard-ui-api/internal/bootstrap"
	"github.com/onboardhq/onboard-ui-api/internal/devseed"

	"github.com/onboardhq/onboard-ui-api/config"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
}

const defaultMigrationTimeout = 5 * time.Minute

func main() {
	logger := bootstrap.InitLogger()

	if len(os.Args) < 2 {
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.ErrorContext(context.Background(), "load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}

	cmdCtx := &commandContext{
		Ctx:    context.Background(),
		Logger: logger,
		Config: cfg,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func commands() map[string]command {
	return map[string]command{
		"migrate": {
			name:        "migrate",
			description: "Run database migrations",
			run:         runMigrations,
		},
		"db-reset": {
			name:        "db-reset",
			description: "Drop the database schema, run migrations, and optionally seed data",
			run:         runDBReset,
		},
		"db-seed": {
			name:        "db-seed",
			description: "Run database migrations and seed development data",
			run:         runDBSeed,
		},
		"list-sessions": {
			name:        "list-sessions",
			description: "Inspect active session and identity records in Redis",
			run:         runListSessions,
		},
		"clear-sessions": {
			name:        "clear-sessions",
			description: "Delete session and identity records, logging every client out",
			run:         runClearSessions,
		},
		"set-acuracia": {
			name:        "set-acuracia",
			description: "Store a document-OCR accuracy snapshot document in Redis",
			run:         runSetAcuracia,
		},
	}
}

func printUsage() error {
	if err := writef(os.Stdout, "Usage: onboard-admin <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(os.Stdout, "Available commands:\n"); err != nil {
		return err
	}
	for _, c := range commands() {
		if err := writef(os.Stdout, "  %-16s %s\n", c.name, c.description); err != nil {
			return err
		}
	}
	return nil
}

type migrateOptions struct {
	Timeout time.Duration
}

type dbResetOptions struct {
	Timeout     time.Duration
	Yes         bool
	Seed        bool
	AllowRemote bool
}

type dbSeedOptions struct {
	Timeout     time.Duration
	AllowRemote bool
}

func parseMigrateFlags(args []string) (migrateOptions, error) {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := migrateOptions{Timeout: defaultMigrationTimeout}
	fs.DurationVar(&opts.Timeout, "timeout", defaultMigrationTimeout,
		"Maximum duration to wait for migrations to complete")

	if err := fs.Parse(args); err != nil {
		return migrateOptions{}, err
	}
	if opts.Timeout <= 0 {
		return migrateOptions{}, errors.New("--timeout must be greater than zero")
	}
	return opts, nil
}

func parseDBResetFlags(args []string) (dbResetOptions, error) {
	fs := flag.NewFlagSet("db-reset", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := dbResetOptions{Timeout: defaultMigrationTimeout}
	fs.DurationVar(&opts.Timeout, "timeout", defaultMigrationTimeout,
		"Maximum duration to wait for reset operations to complete")
	fs.BoolVar(&opts.Yes, "yes", false, "Skip confirmation prompt")
	fs.BoolVar(&opts.Seed, "seed", false, "Run database seeding after reset completes")
	fs.BoolVar(&opts.AllowRemote, "allow-remote", false,
		"Permit running against database hosts that do not look local")

	if err := fs.Parse(args); err != nil {
		return dbResetOptions{}, err
	}
	if opts.Timeout <= 0 {
		return dbResetOptions{}, errors.New("--timeout must be greater than zero")
	}
	return opts, nil
}

func parseDBSeedFlags(args []string) (dbSeedOptions, error) {
	fs := flag.NewFlagSet("db-seed", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := dbSeedOptions{Timeout: defaultMigrationTimeout}
	fs.DurationVar(&opts.Timeout, "timeout", defaultMigrationTimeout,
		"Maximum duration to wait for seeding to complete")
	fs.BoolVar(&opts.AllowRemote, "allow-remote", false,
		"Permit running against database hosts that do not look local")

	if err := fs.Parse(args); err != nil {
		return dbSeedOptions{}, err
	}
	if opts.Timeout <= 0 {
		return dbSeedOptions{}, errors.New("--timeout must be greater than zero")
	}
	return opts, nil
}

func runMigrations(cmdCtx *commandContext, args []string) error {
	opts, err := parseMigrateFlags(args)
	if err != nil {
		return err
	}

	return withDatabase(cmdCtx, opts.Timeout, func(ctx context.Context, db *sql.DB) error {
		cmdCtx.Logger.Info("running database migrations")
		if migrateErr := bootstrap.RunMigrations(ctx, db, cmdCtx.Logger); migrateErr != nil {
			return fmt.Errorf("run migrations: %w", migrateErr)
		}
		cmdCtx.Logger.Info("migrations completed successfully")
		return nil
	})
}

func runDBReset(cmdCtx *commandContext, args []string) error {
	opts, err := parseDBResetFlags(args)
	if err != nil {
		return err
	}

	target := fmt.Sprintf(
		"database %q on %s:%d",
		cmdCtx.Config.Postgres.Name,
		cmdCtx.Config.Postgres.Host,
		cmdCtx.Config.Postgres.Port,
	)

	if guardErr := guardRemoteHost(cmdCtx, opts.AllowRemote, "drop and recreate the public schema"); guardErr != nil {
		return guardErr
	}
	if confirmErr := confirmDestructive(opts.Yes, "reset database schema", target); confirmErr != nil {
		return confirmErr
	}

	return withDatabase(cmdCtx, opts.Timeout, func(ctx context.Context, db *sql.DB) error {
		cmdCtx.Logger.Info("dropping public schema", "database", cmdCtx.Config.Postgres.Name)
		if resetErr := resetDatabase(ctx, cmdCtx, db); resetErr != nil {
			return resetErr
		}

		cmdCtx.Logger.Info("re-running database migrations")
		if migrateErr := bootstrap.RunMigrations(ctx, db, cmdCtx.Logger); migrateErr != nil {
			return fmt.Errorf("run migrations: %w", migrateErr)
		}

		if opts.Seed {
			cmdCtx.Logger.Info("seeding development data after reset")
			if seedErr := devseed.Run(ctx, devseed.NewServices(db), cmdCtx.Logger); seedErr != nil {
				return fmt.Errorf("seed data: %w", seedErr)
			}
		}

		cmdCtx.Logger.Info("database reset completed successfully")
		return nil
	})
}

func runDBSeed(cmdCtx *commandContext, args []string) error {
	opts, err := parseDBSeedFlags(args)
	if err != nil {
		return err
	}

	if guardErr := guardRemoteHost(cmdCtx, opts.AllowRemote, "seed development data on the configured database"); guardErr != nil {
		return guardErr
	}

	return withDatabase(cmdCtx, opts.Timeout, func(ctx context.Context, db *sql.DB) error {
		cmdCtx.Logger.Info("ensuring database migrations are current")
		if migrateErr := bootstrap.RunMigrations(ctx, db, cmdCtx.Logger); migrateErr != nil {
			return fmt.Errorf("run migrations: %w", migrateErr)
		}

		cmdCtx.Logger.Info("seeding development data")
		if seedErr := devseed.Run(ctx, devseed.NewServices(db), cmdCtx.Logger); seedErr != nil {
			return fmt.Errorf("seed data: %w", seedErr)
		}

		cmdCtx.Logger.Info("database seeding completed successfully")
		return nil
	})
}

func withDatabase(
	cmdCtx *commandContext,
	timeout time.Duration,
	f func(context.Context, *sql.DB) error,
) error {
	ctx, stop := signal.NotifyContext(cmdCtx.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	db, err := bootstrap.ConnectDB(bootstrap.DatabaseConfig{
		DBConfig: cmdCtx.Config.Postgres,
		Logger:   cmdCtx.Logger,
	})
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			cmdCtx.Logger.Warn("db close failed", "error", cerr)
		}
	}()

	return f(ctx, db)
}

func resetDatabase(ctx context.Context, cmdCtx *commandContext, db *sql.DB) error {
	cfg := &cmdCtx.Config.Postgres
	statements := []string{
		"DROP SCHEMA public CASCADE",
		"CREATE SCHEMA public",
		"GRANT ALL ON SCHEMA public TO public",
	}
	if user := strings.TrimSpace(cfg.User); user != "" && !strings.EqualFold(user, "public") {
		statements = append(statements, "GRANT ALL ON SCHEMA public TO "+quoteIdentifier(user))
	}

	for _, stmt := range statements {
		cmdCtx.Logger.DebugContext(ctx, "executing reset statement", "sql", stmt)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt, err)
		}
	}
	return nil
}

func quoteIdentifier(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func guardRemoteHost(cmdCtx *commandContext, allow bool, action string) error {
	host := cmdCtx.Config.Postgres.Host
	if !isLikelyRemoteHost(host) {
		return nil
	}
	if !allow {
		return fmt.Errorf(
			"refusing to run against potentially remote database host %q; re-run with --allow-remote if this is intentional",
			host,
		)
	}
	return requireRemoteHostConfirmation(action, host)
}

func isLikelyRemoteHost(host string) bool {
	h := strings.ToLower(strings.TrimSpace(host))
	if h == "" {
		return false
	}
	if h == "localhost" || h == "127.0.0.1" || h == "::1" {
		return false
	}
	if strings.HasSuffix(h, ".local") {
		return false
	}
	if ip := net.ParseIP(host); ip != nil {
		return !ip.IsLoopback()
	}
	return true
}

func requireRemoteHostConfirmation(action, host string) error {
	if err := writef(
		os.Stderr,
		"\nWARNING: database host %q does not look like a local address.\n"+
			"This operation will %s.\n",
		host,
		action,
	); err != nil {
		return fmt.Errorf("print remote host warning: %w", err)
	}
	if err := writef(os.Stderr, "Type %q to continue or press enter to abort: ", host); err != nil {
		return fmt.Errorf("print remote host prompt: %w", err)
	}
	reader := bufio.NewReader(os.Stdin)
	resp, err := reader.ReadString('\n')
	if err != nil {
		return errors.New("aborted by user")
	}
	if strings.TrimSpace(resp) != host {
		if writeErr := writeln(os.Stderr, "\nRemote safeguard check failed; aborting."); writeErr != nil {
			return fmt.Errorf("print remote safeguard failure: %w", writeErr)
		}
		return errors.New("aborted by user")
	}
	return nil
}

func confirmDestructive(yes bool, actionType, target string) error {
	if yes {
		return nil
	}
	if err := writef(os.Stderr, "\nAbout to %s on %s.\n", actionType, target); err != nil {
		return fmt.Errorf("print confirmation intro: %w", err)
	}
	if err := writef(os.Stderr, "Type 'yes' to continue or press enter to abort: "); err != nil {
		return fmt.Errorf("print confirmation prompt: %w", err)
	}
	reader := bufio.NewReader(os.Stdin)
	resp, err := reader.ReadString('\n')
	if err != nil {
		return errors.New("aborted by user")
	}
	if !strings.EqualFold(strings.TrimSpace(resp), "yes") {
		return errors.New("aborted by user")
	}
	return nil
}

func writef(w io.Writer, format string, args ...any) error {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func writeln(w io.Writer, msg string) error {
	if _, err := fmt.Fprintln(w, msg); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
