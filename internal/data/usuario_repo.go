package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/onboardhq/onboard-ui-api/internal/data/database"
	"github.com/onboardhq/onboard-ui-api/internal/data/pgxutil"
	"github.com/onboardhq/onboard-ui-api/internal/domain/model"
	apperrors "github.com/onboardhq/onboard-ui-api/internal/errors"
)

// UsuarioRepo provides database operations for platform users.
type UsuarioRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewUsuarioRepo creates a new UsuarioRepo with real time provider.
func NewUsuarioRepo(db *sql.DB) *UsuarioRepo {
	return &UsuarioRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

const usuarioColumnsSQL = `id, nome, email, role, empresa, created_at, updated_at`

// Create inserts a new user.
func (r *UsuarioRepo) Create(ctx context.Context, req *model.CreateUsuarioRequest) (*model.Usuario, error) {
	if req == nil {
		return nil, errors.New("create usuario request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.Usuario
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO usuarios (
				nome, email, role, empresa, created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $5
			) RETURNING `+usuarioColumnsSQL,
			strings.TrimSpace(req.Nome),
			strings.ToLower(strings.TrimSpace(req.Email)),
			req.Role,
			req.Empresa,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Usuario])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a user by ID.
func (r *UsuarioRepo) GetByID(ctx context.Context, id string) (*model.Usuario, error) {
	return r.getByQuery(ctx, `
		SELECT `+usuarioColumnsSQL+`
		FROM usuarios
		WHERE id = $1`, id)
}

// GetByEmail retrieves a user by email.
func (r *UsuarioRepo) GetByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	return r.getByQuery(ctx, `
		SELECT `+usuarioColumnsSQL+`
		FROM usuarios
		WHERE email = $1`, strings.ToLower(strings.TrimSpace(email)))
}

// List retrieves users with optional filters.
func (r *UsuarioRepo) List(ctx context.Context, opts model.UsuariosListOptions) ([]*model.Usuario, error) {
	limit, offset := normalizeListWindow(opts.Limit, opts.Offset)

	queryOpts := []database.ListQueryOption{
		database.WithColumns("id", "nome", "email", "role", "empresa", "created_at", "updated_at"),
		database.WithOrderBy("created_at", sortDirDesc),
		database.WithLimit(limit),
		database.WithOffset(offset),
	}
	if opts.Q != nil && strings.TrimSpace(*opts.Q) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("nome", database.ILike, "%"+strings.TrimSpace(*opts.Q)+"%"),
		))
	}
	if opts.Role != nil {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("role", database.Equal, *opts.Role),
		))
	}
	if opts.Empresa != nil && strings.TrimSpace(*opts.Empresa) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("empresa", database.Equal, strings.TrimSpace(*opts.Empresa)),
		))
	}
	query, args := database.BuildListQuery(database.NewListQueryOptions("usuarios", queryOpts...))

	var rowsOut []model.Usuario
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Usuario])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list usuarios: %w", apperrors.MapDBError(err))
	}

	res := make([]*model.Usuario, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates fields of a user.
func (r *UsuarioRepo) Update(ctx context.Context, id string, req model.UpdateUsuarioRequest) (*model.Usuario, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	setParts := make([]string, 0, 5)
	args := make([]any, 0, 6)
	nextIdx := func() int { return len(args) + 1 }

	if req.Nome != nil {
		setParts = append(setParts, fmt.Sprintf("nome = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Nome))
	}
	if req.Email != nil {
		setParts = append(setParts, fmt.Sprintf("email = $%d", nextIdx()))
		args = append(args, strings.ToLower(strings.TrimSpace(*req.Email)))
	}
	if req.Role != nil {
		setParts = append(setParts, fmt.Sprintf("role = $%d", nextIdx()))
		args = append(args, *req.Role)
	}
	if req.Empresa != nil {
		setParts = append(setParts, fmt.Sprintf("empresa = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Empresa))
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())

	args = append(args, id)
	query := "UPDATE usuarios SET " + strings.Join(setParts, ", ") +
		" WHERE id = $" + strconv.Itoa(len(args)) +
		" RETURNING " + usuarioColumnsSQL

	var out model.Usuario
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Usuario])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Delete deletes a user by ID.
func (r *UsuarioRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete usuario: %w", apperrors.MapDBError(err))
	}
	return rows > 0, nil
}

func (r *UsuarioRepo) getByQuery(ctx context.Context, q string, args ...any) (*model.Usuario, error) {
	var out model.Usuario
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Usuario])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}
