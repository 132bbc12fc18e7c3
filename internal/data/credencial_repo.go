package data

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/onboardhq/onboard-ui-api/internal/data/pgxutil"
	"github.com/onboardhq/onboard-ui-api/internal/domain/model"
	apperrors "github.com/onboardhq/onboard-ui-api/internal/errors"
)

// CredencialRepo provides database operations for candidate credentials.
type CredencialRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewCredencialRepo creates a new CredencialRepo with real time provider.
func NewCredencialRepo(db *sql.DB) *CredencialRepo {
	return &CredencialRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

const credencialColumnsSQL = `id, email, senha_hash, invite_token, created_at, updated_at`

// UpsertInvite creates or refreshes the invite token for an email. An
// existing password survives a reinvite.
func (r *CredencialRepo) UpsertInvite(ctx context.Context, email, token string) (*model.Credencial, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errors.New("email is required")
	}
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("invite token is required")
	}

	now := r.timeProvider.Now().UTC()
	var out model.Credencial
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO credenciais (email, invite_token, created_at, updated_at)
			VALUES ($1, $2, $3, $3)
			ON CONFLICT (email) DO UPDATE
			SET invite_token = EXCLUDED.invite_token, updated_at = EXCLUDED.updated_at
			RETURNING `+credencialColumnsSQL,
			email, token, now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Credencial])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// SetPasswordByToken stores the password hash for the credential carrying the
// invite token and consumes the token. A missing token maps to not found.
func (r *CredencialRepo) SetPasswordByToken(ctx context.Context, token, senhaHash string) (*model.Credencial, error) {
	if strings.TrimSpace(token) == "" {
		return nil, apperrors.Validation("token is required")
	}
	if senhaHash == "" {
		return nil, apperrors.Validation("senha hash is required")
	}

	now := r.timeProvider.Now().UTC()
	var out model.Credencial
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE credenciais
			SET senha_hash = $1, invite_token = NULL, updated_at = $2
			WHERE invite_token = $3
			RETURNING `+credencialColumnsSQL,
			senhaHash, now, strings.TrimSpace(token),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Credencial])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByEmail retrieves a credential by email.
func (r *CredencialRepo) GetByEmail(ctx context.Context, email string) (*model.Credencial, error) {
	var out model.Credencial
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+credencialColumnsSQL+`
			FROM credenciais
			WHERE email = $1`, strings.ToLower(strings.TrimSpace(email)))
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Credencial])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Delete removes the credential for an email, if any.
func (r *CredencialRepo) Delete(ctx context.Context, email string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM credenciais WHERE email = $1`,
			strings.ToLower(strings.TrimSpace(email)))
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, apperrors.MapDBError(err)
	}
	return rows > 0, nil
}
