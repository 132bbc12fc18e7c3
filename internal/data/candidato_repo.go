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

// CandidatoRepo provides database operations for candidates.
type CandidatoRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewCandidatoRepo creates a new CandidatoRepo with real time provider.
func NewCandidatoRepo(db *sql.DB) *CandidatoRepo {
	return &CandidatoRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewCandidatoRepoWithTimeProvider creates a new CandidatoRepo with a custom time provider.
func NewCandidatoRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *CandidatoRepo {
	return &CandidatoRepo{DB: db, timeProvider: tp}
}

const candidatoColumnsSQL = `id, nome, cpf, email, telefone, sexo, estado, vaga, empresa, situacao, created_at, updated_at`

const (
	candidatoGetByIDQuery = `
		SELECT ` + candidatoColumnsSQL + `
		FROM candidatos
		WHERE id = $1`

	candidatoGetByEmailQuery = `
		SELECT ` + candidatoColumnsSQL + `
		FROM candidatos
		WHERE email = $1`
)

// Create inserts a new candidate.
func (r *CandidatoRepo) Create(ctx context.Context, req *model.CreateCandidatoRequest) (*model.Candidato, error) {
	if req == nil {
		return nil, errors.New("create candidato request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.Candidato
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO candidatos (
				nome, cpf, email, telefone, sexo, estado, vaga, empresa, situacao, created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10
			) RETURNING `+candidatoColumnsSQL,
			strings.TrimSpace(req.Nome),
			stripCPFDigits(req.CPF),
			strings.ToLower(strings.TrimSpace(req.Email)),
			req.Telefone,
			strings.TrimSpace(req.Sexo),
			strings.TrimSpace(req.Estado),
			strings.TrimSpace(req.Vaga),
			req.Empresa,
			req.Situacao,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Candidato])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a candidate by ID.
func (r *CandidatoRepo) GetByID(ctx context.Context, id string) (*model.Candidato, error) {
	return r.getByQuery(ctx, candidatoGetByIDQuery, id)
}

// GetByEmail retrieves a candidate by email.
func (r *CandidatoRepo) GetByEmail(ctx context.Context, email string) (*model.Candidato, error) {
	return r.getByQuery(ctx, candidatoGetByEmailQuery, strings.ToLower(strings.TrimSpace(email)))
}

// List retrieves candidates with optional filters and sorting.
func (r *CandidatoRepo) List(ctx context.Context, opts model.CandidatosListOptions) ([]*model.Candidato, error) {
	limit, offset := normalizeListWindow(opts.Limit, opts.Offset)
	query, args := database.BuildListQuery(r.buildListOptions(opts, limit, offset))

	var rowsOut []model.Candidato
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Candidato])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list candidatos: %w", apperrors.MapDBError(err))
	}

	res := make([]*model.Candidato, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Count returns the number of candidates matching the filters.
func (r *CandidatoRepo) Count(ctx context.Context, opts model.CandidatosListOptions) (int64, error) {
	query, args := database.BuildCountQuery(r.buildListOptions(opts, 0, 0))

	var count int64
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, query, args...).Scan(&count)
	}); err != nil {
		return 0, fmt.Errorf("failed to count candidatos: %w", apperrors.MapDBError(err))
	}
	return count, nil
}

// Update updates fields of a candidate.
func (r *CandidatoRepo) Update(ctx context.Context, id string, req model.UpdateCandidatoRequest) (*model.Candidato, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	setClause, args := r.buildUpdateClause(req)
	args = append(args, id)
	query := "UPDATE candidatos SET " + setClause +
		" WHERE id = $" + strconv.Itoa(len(args)) +
		" RETURNING " + candidatoColumnsSQL

	var out model.Candidato
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Candidato])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Delete deletes a candidate by ID.
func (r *CandidatoRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM candidatos WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete candidato: %w", apperrors.MapDBError(err))
	}
	return rows > 0, nil
}

// --- helpers ---

func candidatoColumns() []string {
	return []string{
		"id",
		"nome",
		"cpf",
		"email",
		"telefone",
		"sexo",
		"estado",
		"vaga",
		"empresa",
		"situacao",
		"created_at",
		"updated_at",
	}
}

func (r *CandidatoRepo) buildListOptions(opts model.CandidatosListOptions, limit, offset int) *database.ListQueryOptions {
	queryOpts := []database.ListQueryOption{
		database.WithColumns(candidatoColumns()...),
		database.WithLimit(limit),
		database.WithOffset(offset),
	}

	if opts.Q != nil && strings.TrimSpace(*opts.Q) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("nome", database.ILike, "%"+strings.TrimSpace(*opts.Q)+"%"),
		))
	}
	if opts.Empresa != nil && strings.TrimSpace(*opts.Empresa) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("empresa", database.Equal, strings.TrimSpace(*opts.Empresa)),
		))
	}
	if opts.Situacao != nil {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("situacao", database.Equal, *opts.Situacao),
		))
	}

	sortCol, sortDir := validateSortOptions(opts.Sort, opts.Dir, map[string]string{
		"nome":       "nome",
		"created_at": "created_at",
	})
	queryOpts = append(queryOpts, database.WithOrderBy(sortCol, sortDir))

	return database.NewListQueryOptions("candidatos", queryOpts...)
}

func (r *CandidatoRepo) buildUpdateClause(req model.UpdateCandidatoRequest) (string, []any) {
	setParts := make([]string, 0, 9)
	args := make([]any, 0, 10)
	nextIdx := func() int { return len(args) + 1 }

	if req.Nome != nil {
		setParts = append(setParts, fmt.Sprintf("nome = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Nome))
	}
	if req.CPF != nil {
		setParts = append(setParts, fmt.Sprintf("cpf = $%d", nextIdx()))
		args = append(args, stripCPFDigits(*req.CPF))
	}
	if req.Email != nil {
		setParts = append(setParts, fmt.Sprintf("email = $%d", nextIdx()))
		args = append(args, strings.ToLower(strings.TrimSpace(*req.Email)))
	}
	if req.Telefone != nil {
		setParts = append(setParts, fmt.Sprintf("telefone = $%d", nextIdx()))
		args = append(args, *req.Telefone)
	}
	if req.Sexo != nil {
		setParts = append(setParts, fmt.Sprintf("sexo = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Sexo))
	}
	if req.Estado != nil {
		setParts = append(setParts, fmt.Sprintf("estado = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Estado))
	}
	if req.Vaga != nil {
		setParts = append(setParts, fmt.Sprintf("vaga = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Vaga))
	}
	if req.Empresa != nil {
		setParts = append(setParts, fmt.Sprintf("empresa = $%d", nextIdx()))
		args = append(args, *req.Empresa)
	}
	if req.Situacao != nil {
		setParts = append(setParts, fmt.Sprintf("situacao = $%d", nextIdx()))
		args = append(args, *req.Situacao)
	}

	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())

	return strings.Join(setParts, ", "), args
}

func (r *CandidatoRepo) getByQuery(ctx context.Context, q string, args ...any) (*model.Candidato, error) {
	var out model.Candidato
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Candidato])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// stripCPFDigits keeps only the digits of a possibly masked CPF.
func stripCPFDigits(cpf string) string {
	var b strings.Builder
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
