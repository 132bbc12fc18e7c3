package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/onboardhq/onboard-ui-api/internal/data/database"
	"github.com/onboardhq/onboard-ui-api/internal/data/pgxutil"
	"github.com/onboardhq/onboard-ui-api/internal/domain/model"
	apperrors "github.com/onboardhq/onboard-ui-api/internal/errors"
)

// DocumentoRepo provides database operations for onboarding documents.
type DocumentoRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewDocumentoRepo creates a new DocumentoRepo with real time provider.
func NewDocumentoRepo(db *sql.DB) *DocumentoRepo {
	return &DocumentoRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewDocumentoRepoWithTimeProvider creates a new DocumentoRepo with a custom time provider.
func NewDocumentoRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *DocumentoRepo {
	return &DocumentoRepo{DB: db, timeProvider: tp}
}

// Listing queries omit file_content: payloads can be large and listings only
// drive review tables.
const documentoListColumnsSQL = `id, filename, document_type, email, NULL AS file_content, status, reviewed_at, created_at, updated_at`

const documentoColumnsSQL = `id, filename, document_type, email, file_content, status, reviewed_at, created_at, updated_at`

// Create stores an uploaded document with status pendente.
func (r *DocumentoRepo) Create(ctx context.Context, req *model.CreateDocumentoRequest) (*model.Documento, error) {
	if req == nil {
		return nil, errors.New("create documento request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.Documento
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO documentos (
				filename, document_type, email, file_content, status, created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $6
			) RETURNING `+documentoColumnsSQL,
			strings.TrimSpace(req.Filename),
			strings.TrimSpace(req.DocumentType),
			strings.ToLower(strings.TrimSpace(req.Email)),
			req.FileContent,
			model.DocumentoPendente,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Documento])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a document by ID, including its file content.
func (r *DocumentoRepo) GetByID(ctx context.Context, id string) (*model.Documento, error) {
	var out model.Documento
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+documentoColumnsSQL+`
			FROM documentos
			WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Documento])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByFilename retrieves a document by filename and candidate email.
func (r *DocumentoRepo) GetByFilename(ctx context.Context, filename, email string) (*model.Documento, error) {
	var out model.Documento
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+documentoColumnsSQL+`
			FROM documentos
			WHERE filename = $1 AND email = $2`,
			strings.TrimSpace(filename),
			strings.ToLower(strings.TrimSpace(email)),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Documento])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// List retrieves documents without file contents.
func (r *DocumentoRepo) List(ctx context.Context, opts model.DocumentosListOptions) ([]*model.Documento, error) {
	limit, offset := normalizeListWindow(opts.Limit, opts.Offset)

	queryOpts := []database.ListQueryOption{
		database.WithColumns(documentoListColumnsSQL),
		database.WithOrderBy("created_at", sortDirDesc),
		database.WithLimit(limit),
		database.WithOffset(offset),
	}
	if opts.Email != nil && strings.TrimSpace(*opts.Email) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("email", database.Equal, strings.ToLower(strings.TrimSpace(*opts.Email))),
		))
	}
	if opts.Status != nil {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("status", database.Equal, *opts.Status),
		))
	}
	query, args := database.BuildListQuery(database.NewListQueryOptions("documentos", queryOpts...))

	var rowsOut []model.Documento
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Documento])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list documentos: %w", apperrors.MapDBError(err))
	}

	res := make([]*model.Documento, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// SetStatus transitions a document identified by filename and email to the
// given status and stamps the review time. Returns the previous status.
func (r *DocumentoRepo) SetStatus(
	ctx context.Context,
	filename, email string,
	status model.DocumentoStatus,
) (*model.Documento, model.DocumentoStatus, error) {
	if !status.Valid() {
		return nil, "", apperrors.Validation("invalid documento status")
	}

	reviewedAt := r.timeProvider.Now().UTC()
	var out model.Documento
	var previous model.DocumentoStatus
	err := pgxutil.WithPgxTx(ctx, r.DB, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			SELECT status FROM documentos
			WHERE filename = $1 AND email = $2
			FOR UPDATE`,
			strings.TrimSpace(filename),
			strings.ToLower(strings.TrimSpace(email)),
		)
		if err := row.Scan(&previous); err != nil {
			return err
		}

		rows, err := tx.Query(ctx, `
			UPDATE documentos
			SET status = $1, reviewed_at = $2, updated_at = $2
			WHERE filename = $3 AND email = $4
			RETURNING `+documentoColumnsSQL,
			status,
			reviewedAt,
			strings.TrimSpace(filename),
			strings.ToLower(strings.TrimSpace(email)),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Documento])
		return err
	})
	if err != nil {
		return nil, "", apperrors.MapDBError(err)
	}
	return &out, previous, nil
}

// Delete deletes a document by ID.
func (r *DocumentoRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM documentos WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete documento: %w", apperrors.MapDBError(err))
	}
	return rows > 0, nil
}
