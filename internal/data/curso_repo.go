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

// CursoRepo provides database operations for onboarding courses.
type CursoRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewCursoRepo creates a new CursoRepo with real time provider.
func NewCursoRepo(db *sql.DB) *CursoRepo {
	return &CursoRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

const cursoColumnsSQL = `id, usuario_id, iniciado, nivel_inicial, nivel_atual, unidade_atual, unidades_feitas, created_at, updated_at`

// Create inserts a new course record.
func (r *CursoRepo) Create(ctx context.Context, req *model.CreateCursoRequest) (*model.Curso, error) {
	if req == nil {
		return nil, errors.New("create curso request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	iniciado := false
	if req.Iniciado != nil {
		iniciado = *req.Iniciado
	}
	nivelAtual := req.NivelInicial
	if req.NivelAtual != nil {
		nivelAtual = *req.NivelAtual
	}
	unidadeAtual := 0
	if req.UnidadeAtual != nil {
		unidadeAtual = *req.UnidadeAtual
	}
	unidadesFeitas := 0
	if req.UnidadesFeitas != nil {
		unidadesFeitas = *req.UnidadesFeitas
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.Curso
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO cursos (
				usuario_id, iniciado, nivel_inicial, nivel_atual, unidade_atual, unidades_feitas, created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $7
			) RETURNING `+cursoColumnsSQL,
			strings.TrimSpace(req.UsuarioID),
			iniciado,
			req.NivelInicial,
			nivelAtual,
			unidadeAtual,
			unidadesFeitas,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Curso])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a course by ID.
func (r *CursoRepo) GetByID(ctx context.Context, id string) (*model.Curso, error) {
	var out model.Curso
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+cursoColumnsSQL+`
			FROM cursos
			WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Curso])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// List retrieves courses with optional filters.
func (r *CursoRepo) List(ctx context.Context, opts model.CursosListOptions) ([]*model.Curso, error) {
	limit, offset := normalizeListWindow(opts.Limit, opts.Offset)

	queryOpts := []database.ListQueryOption{
		database.WithColumns("id", "usuario_id", "iniciado", "nivel_inicial", "nivel_atual", "unidade_atual", "unidades_feitas", "created_at", "updated_at"),
		database.WithOrderBy("created_at", sortDirDesc),
		database.WithLimit(limit),
		database.WithOffset(offset),
	}
	if opts.UsuarioID != nil && strings.TrimSpace(*opts.UsuarioID) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("usuario_id", database.Equal, strings.TrimSpace(*opts.UsuarioID)),
		))
	}
	if opts.Iniciado != nil {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("iniciado", database.Equal, *opts.Iniciado),
		))
	}
	query, args := database.BuildListQuery(database.NewListQueryOptions("cursos", queryOpts...))

	var rowsOut []model.Curso
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Curso])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list cursos: %w", apperrors.MapDBError(err))
	}

	res := make([]*model.Curso, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates progress fields of a course.
func (r *CursoRepo) Update(ctx context.Context, id string, req model.UpdateCursoRequest) (*model.Curso, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	setParts := make([]string, 0, 6)
	args := make([]any, 0, 7)
	nextIdx := func() int { return len(args) + 1 }

	if req.Iniciado != nil {
		setParts = append(setParts, fmt.Sprintf("iniciado = $%d", nextIdx()))
		args = append(args, *req.Iniciado)
	}
	if req.NivelInicial != nil {
		setParts = append(setParts, fmt.Sprintf("nivel_inicial = $%d", nextIdx()))
		args = append(args, *req.NivelInicial)
	}
	if req.NivelAtual != nil {
		setParts = append(setParts, fmt.Sprintf("nivel_atual = $%d", nextIdx()))
		args = append(args, *req.NivelAtual)
	}
	if req.UnidadeAtual != nil {
		setParts = append(setParts, fmt.Sprintf("unidade_atual = $%d", nextIdx()))
		args = append(args, *req.UnidadeAtual)
	}
	if req.UnidadesFeitas != nil {
		setParts = append(setParts, fmt.Sprintf("unidades_feitas = $%d", nextIdx()))
		args = append(args, *req.UnidadesFeitas)
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())

	args = append(args, id)
	query := "UPDATE cursos SET " + strings.Join(setParts, ", ") +
		" WHERE id = $" + strconv.Itoa(len(args)) +
		" RETURNING " + cursoColumnsSQL

	var out model.Curso
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Curso])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Delete deletes a course by ID.
func (r *CursoRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM cursos WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete curso: %w", apperrors.MapDBError(err))
	}
	return rows > 0, nil
}
