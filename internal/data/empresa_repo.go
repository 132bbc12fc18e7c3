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

// EmpresaRepo provides database operations for companies.
type EmpresaRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewEmpresaRepo creates a new EmpresaRepo with real time provider.
func NewEmpresaRepo(db *sql.DB) *EmpresaRepo {
	return &EmpresaRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

const empresaColumnsSQL = `id, nome, cnpj, planos, email_responsavel, telefone_responsavel, created_at, updated_at`

// Create inserts a new company.
func (r *EmpresaRepo) Create(ctx context.Context, req *model.CreateEmpresaRequest) (*model.Empresa, error) {
	if req == nil {
		return nil, errors.New("create empresa request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.Empresa
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO empresas (
				nome, cnpj, planos, email_responsavel, telefone_responsavel, created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $6
			) RETURNING `+empresaColumnsSQL,
			strings.TrimSpace(req.Nome),
			strings.TrimSpace(req.CNPJ),
			strings.TrimSpace(req.Planos),
			strings.ToLower(strings.TrimSpace(req.EmailResponsavel)),
			strings.TrimSpace(req.TelefoneResponsavel),
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Empresa])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a company by ID.
func (r *EmpresaRepo) GetByID(ctx context.Context, id string) (*model.Empresa, error) {
	var out model.Empresa
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+empresaColumnsSQL+`
			FROM empresas
			WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Empresa])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// List retrieves companies with optional name filtering.
func (r *EmpresaRepo) List(ctx context.Context, opts model.EmpresasListOptions) ([]*model.Empresa, error) {
	limit, offset := normalizeListWindow(opts.Limit, opts.Offset)

	queryOpts := []database.ListQueryOption{
		database.WithColumns("id", "nome", "cnpj", "planos", "email_responsavel", "telefone_responsavel", "created_at", "updated_at"),
		database.WithOrderBy("nome", sortDirAsc),
		database.WithLimit(limit),
		database.WithOffset(offset),
	}
	if opts.Q != nil && strings.TrimSpace(*opts.Q) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("nome", database.ILike, "%"+strings.TrimSpace(*opts.Q)+"%"),
		))
	}
	query, args := database.BuildListQuery(database.NewListQueryOptions("empresas", queryOpts...))

	var rowsOut []model.Empresa
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Empresa])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list empresas: %w", apperrors.MapDBError(err))
	}

	res := make([]*model.Empresa, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates fields of a company.
func (r *EmpresaRepo) Update(ctx context.Context, id string, req model.UpdateEmpresaRequest) (*model.Empresa, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	setParts := make([]string, 0, 6)
	args := make([]any, 0, 7)
	nextIdx := func() int { return len(args) + 1 }

	if req.Nome != nil {
		setParts = append(setParts, fmt.Sprintf("nome = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Nome))
	}
	if req.CNPJ != nil {
		setParts = append(setParts, fmt.Sprintf("cnpj = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.CNPJ))
	}
	if req.Planos != nil {
		setParts = append(setParts, fmt.Sprintf("planos = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Planos))
	}
	if req.EmailResponsavel != nil {
		setParts = append(setParts, fmt.Sprintf("email_responsavel = $%d", nextIdx()))
		args = append(args, strings.ToLower(strings.TrimSpace(*req.EmailResponsavel)))
	}
	if req.TelefoneResponsavel != nil {
		setParts = append(setParts, fmt.Sprintf("telefone_responsavel = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.TelefoneResponsavel))
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())

	args = append(args, id)
	query := "UPDATE empresas SET " + strings.Join(setParts, ", ") +
		" WHERE id = $" + strconv.Itoa(len(args)) +
		" RETURNING " + empresaColumnsSQL

	var out model.Empresa
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Empresa])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Delete deletes a company by ID.
func (r *EmpresaRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM empresas WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete empresa: %w", apperrors.MapDBError(err))
	}
	return rows > 0, nil
}
