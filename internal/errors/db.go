package errors

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Regular expressions for parsing PgError.Detail messages.
var (
	// reKeyField extracts field name from unique violation detail: "Key (field)=(value) already exists.".
	reKeyField = regexp.MustCompile(`Key \(([^)]+)\)=`)
	// reReferencedFrom detects parent deletion: "... is still referenced from table ...".
	reReferencedFrom = regexp.MustCompile(`is still referenced from table "?([^"]+)"?`)
	// reNotPresent detects missing parent: "... is not present in table ...".
	reNotPresent = regexp.MustCompile(`is not present in table "?([^"]+)"?`)
)

// MapDBError maps database errors to AppError instances.
// It handles common database error patterns including:
// - pgx.ErrNoRows → NotFound
// - Unique constraint violations → Conflict
// - Foreign key violations → ForeignKey
// - Check constraint violations → Validation
// - NOT NULL violations → Validation
// - Context timeouts/cancellations → Timeout/Canceled
//
// If the error is not a recognized database error, it returns the original error.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &AppError{
			Code:    ErrCodeTimeout,
			Message: "Request timed out. Please try again.",
			Cause:   err,
		}
	}
	if errors.Is(err, context.Canceled) {
		return &AppError{
			Code:    ErrCodeCanceled,
			Message: "Request was canceled.",
			Cause:   err,
		}
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return &AppError{
			Code:    ErrCodeNotFound,
			Message: "Resource not found",
			Cause:   err,
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return mapPgError(pgErr)
	}

	return err
}

// mapPgError maps PostgreSQL-specific errors to AppError instances.
func mapPgError(pgErr *pgconn.PgError) error {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return mapUniqueViolation(pgErr)
	case pgerrcode.ForeignKeyViolation:
		return mapForeignKeyViolation(pgErr)
	case pgerrcode.CheckViolation:
		return &AppError{
			Code:    ErrCodeValidation,
			Message: "Invalid data. Please check your input.",
			Field:   pgErr.ColumnName,
			Cause:   pgErr,
		}
	case pgerrcode.NotNullViolation:
		return &AppError{
			Code:    ErrCodeValidation,
			Message: "This field is required.",
			Field:   pgErr.ColumnName,
			Cause:   pgErr,
		}
	default:
		return &AppError{
			Code:    ErrCodeInternal,
			Message: "A database error occurred. Please try again.",
			Cause:   pgErr,
		}
	}
}

// mapUniqueViolation maps unique constraint violations to Conflict errors.
func mapUniqueViolation(pgErr *pgconn.PgError) error {
	field := pgErr.ColumnName

	// Fallback: parse Detail message for "Key (field)=(value) already exists."
	if field == "" && pgErr.Detail != "" {
		if m := reKeyField.FindStringSubmatch(pgErr.Detail); len(m) == 2 {
			field = m[1]
		}
	}

	// Last resort: infer from constraint name (e.g., "empresas_cnpj_key" → "cnpj")
	if field == "" {
		field = inferFieldFromConstraint(pgErr.ConstraintName)
	}

	return &AppError{
		Code:    ErrCodeConflict,
		Message: "This value already exists. Please choose a different one.",
		Field:   field,
		Cause:   pgErr,
	}
}

// mapForeignKeyViolation maps foreign key constraint violations to ForeignKey errors.
func mapForeignKeyViolation(pgErr *pgconn.PgError) error {
	var message string

	if pgErr.Detail != "" {
		if m := reReferencedFrom.FindStringSubmatch(pgErr.Detail); len(m) == 2 {
			message = "Cannot delete because this item is in use by " + mapTableToDomain(m[1]) + "."
		} else if m := reNotPresent.FindStringSubmatch(pgErr.Detail); len(m) == 2 {
			message = "Cannot complete operation because the referenced " + mapTableToDomain(m[1]) + " does not exist."
		}
	}

	if message == "" && pgErr.TableName != "" {
		message = "Cannot complete operation because this item is in use by " + mapTableToDomain(pgErr.TableName) + "."
	}

	if message == "" {
		message = "Cannot complete operation because this item is in use."
	}

	return &AppError{
		Code:    ErrCodeForeignKey,
		Message: message,
		Cause:   pgErr,
	}
}

// inferFieldFromConstraint attempts to infer the field name from a constraint name.
// e.g., "empresas_cnpj_key" → "cnpj". Returns empty string when ambiguous.
func inferFieldFromConstraint(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	parts := strings.Split(constraintName, "_")
	// Multi-column or expression constraints have more parts; avoid guessing.
	if len(parts) != 3 {
		return ""
	}
	return parts[1]
}

// mapTableToDomain maps internal table names to user-friendly domain names.
func mapTableToDomain(tableName string) string {
	tableName = strings.ToLower(strings.TrimSpace(tableName))

	domainMap := map[string]string{
		"candidatos": "Candidato",
		"empresas":   "Empresa",
		"usuarios":   "Usuário",
		"cursos":     "Curso",
		"documentos": "Documento",
	}

	if domainName, ok := domainMap[tableName]; ok {
		return domainName
	}

	return strings.ReplaceAll(tableName, "_", " ")
}
