package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/onboardhq/onboard-ui-api/internal/bootstrap"
	domainauth "github.com/onboardhq/onboard-ui-api/internal/domain/auth"
	"github.com/redis/go-redis/v9"
)

// Key prefixes written by the session and identity record stores.
const (
	sessionKeyPattern = "session:*"
	userKeyPattern    = "user:*"
	redisScanCount    = 1000
)

type listSessionsOptions struct {
	Limit int
}

type clearSessionsOptions struct {
	DryRun bool
	Yes    bool
}

type setAcuraciaOptions struct {
	File string
	Key  string
}

func parseListSessionsFlags(args []string) (listSessionsOptions, error) {
	fs := flag.NewFlagSet("list-sessions", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := listSessionsOptions{Limit: 50}
	fs.IntVar(&opts.Limit, "limit", 50, "Maximum number of sessions to display (0 for all)")

	if err := fs.Parse(args); err != nil {
		return listSessionsOptions{}, err
	}
	if opts.Limit < 0 {
		return listSessionsOptions{}, errors.New("--limit must not be negative")
	}
	return opts, nil
}

func parseClearSessionsFlags(args []string) (clearSessionsOptions, error) {
	fs := flag.NewFlagSet("clear-sessions", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := clearSessionsOptions{}
	fs.BoolVar(&opts.DryRun, "dry-run", false, "Report what would be deleted without deleting")
	fs.BoolVar(&opts.Yes, "yes", false, "Skip confirmation prompt")

	if err := fs.Parse(args); err != nil {
		return clearSessionsOptions{}, err
	}
	return opts, nil
}

func parseSetAcuraciaFlags(args []string) (setAcuraciaOptions, error) {
	fs := flag.NewFlagSet("set-acuracia", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := setAcuraciaOptions{Key: "observabilidade:acuracia"}
	fs.StringVar(&opts.File, "file", "", "Path to the snapshot JSON document (required)")
	fs.StringVar(&opts.Key, "key", opts.Key, "Redis key to store the document under")

	if err := fs.Parse(args); err != nil {
		return setAcuraciaOptions{}, err
	}
	if opts.File == "" {
		return setAcuraciaOptions{}, errors.New("--file is required")
	}
	return opts, nil
}

func runListSessions(cmdCtx *commandContext, args []string) error {
	opts, err := parseListSessionsFlags(args)
	if err != nil {
		return err
	}

	return withRedis(cmdCtx, func(ctx context.Context, client redis.UniversalClient) error {
		sessions, total, scanErr := collectSessions(ctx, client, opts.Limit)
		if scanErr != nil {
			return scanErr
		}
		return renderSessions(sessions, total)
	})
}

func runClearSessions(cmdCtx *commandContext, args []string) error {
	opts, err := parseClearSessionsFlags(args)
	if err != nil {
		return err
	}

	if !opts.DryRun {
		if confirmErr := confirmDestructive(opts.Yes, "delete all sessions and identity records", "the configured Redis"); confirmErr != nil {
			return confirmErr
		}
	}

	return withRedis(cmdCtx, func(ctx context.Context, client redis.UniversalClient) error {
		deleted := 0
		for _, pattern := range []string{sessionKeyPattern, userKeyPattern} {
			n, delErr := deleteByPattern(ctx, client, pattern, opts.DryRun)
			if delErr != nil {
				return delErr
			}
			deleted += n
		}

		verb := "deleted"
		if opts.DryRun {
			verb = "would delete"
		}
		cmdCtx.Logger.Info("clear sessions complete", "action", verb, "keys", deleted)
		return nil
	})
}

func runSetAcuracia(cmdCtx *commandContext, args []string) error {
	opts, err := parseSetAcuraciaFlags(args)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(opts.File)
	if err != nil {
		return fmt.Errorf("read snapshot file: %w", err)
	}
	if !json.Valid(raw) {
		return fmt.Errorf("snapshot file %q is not valid JSON", opts.File)
	}

	return withRedis(cmdCtx, func(ctx context.Context, client redis.UniversalClient) error {
		if setErr := client.Set(ctx, opts.Key, raw, 0).Err(); setErr != nil {
			return fmt.Errorf("store snapshot: %w", setErr)
		}
		cmdCtx.Logger.Info("accuracy snapshot stored", "key", opts.Key, "bytes", len(raw))
		return nil
	})
}

func withRedis(cmdCtx *commandContext, f func(context.Context, redis.UniversalClient) error) error {
	ctx, stop := signal.NotifyContext(cmdCtx.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	client, err := bootstrap.ConnectRedis(bootstrap.DatabaseConfig{
		RedisConfig: cmdCtx.Config.Redis,
		Logger:      cmdCtx.Logger,
	})
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer func() {
		if cerr := client.Close(); cerr != nil {
			cmdCtx.Logger.Warn("redis close failed", "error", cerr)
		}
	}()

	return f(ctx, client)
}

type sessionEntry struct {
	Key       string
	Email     string
	Role      string
	ExpiresAt time.Time
}

func collectSessions(ctx context.Context, client redis.UniversalClient, limit int) ([]sessionEntry, int, error) {
	var entries []sessionEntry
	total := 0

	iter := client.Scan(ctx, 0, sessionKeyPattern, redisScanCount).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		total++
		if limit > 0 && len(entries) >= limit {
			continue
		}

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue // expired between SCAN and GET
			}
			return nil, 0, fmt.Errorf("read session %q: %w", key, err)
		}

		var sess domainauth.Session
		if unmarshalErr := json.Unmarshal([]byte(data), &sess); unmarshalErr != nil {
			entries = append(entries, sessionEntry{Key: key, Email: "<corrupt>"})
			continue
		}
		entries = append(entries, sessionEntry{
			Key:       key,
			Email:     sess.Email,
			Role:      string(sess.Role),
			ExpiresAt: sess.ExpiresAt,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, 0, fmt.Errorf("scan sessions: %w", err)
	}

	return entries, total, nil
}

func renderSessions(entries []sessionEntry, total int) error {
	if total == 0 {
		return writeln(os.Stdout, "No active sessions.")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "KEY\tEMAIL\tROLE\tEXPIRES"); err != nil {
		return fmt.Errorf("write table header: %w", err)
	}
	for _, e := range entries {
		expires := ""
		if !e.ExpiresAt.IsZero() {
			expires = e.ExpiresAt.Format(time.RFC3339)
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Key, e.Email, e.Role, expires); err != nil {
			return fmt.Errorf("write table row: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush table: %w", err)
	}

	if len(entries) < total {
		return writef(os.Stdout, "\nShowing %d of %d sessions.\n", len(entries), total)
	}
	return nil
}

func deleteByPattern(ctx context.Context, client redis.UniversalClient, pattern string, dryRun bool) (int, error) {
	deleted := 0
	iter := client.Scan(ctx, 0, pattern, redisScanCount).Iterator()
	for iter.Next(ctx) {
		if dryRun {
			deleted++
			continue
		}
		if err := client.Del(ctx, iter.Val()).Err(); err != nil {
			return deleted, fmt.Errorf("delete key %q: %w", iter.Val(), err)
		}
		deleted++
	}
	if err := iter.Err(); err != nil {
		return deleted, fmt.Errorf("scan %q: %w", pattern, err)
	}
	return deleted, nil
}
