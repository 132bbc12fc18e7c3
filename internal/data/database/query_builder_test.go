package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildListQuery_Basic(t *testing.T) {
	opts := NewListQueryOptions("candidatos",
		WithColumns("id", "nome", "email"),
		WithOrderBy("created_at", "desc"),
		WithLimit(50),
		WithOffset(10),
	)

	query, args := BuildListQuery(opts)
	assert.Equal(t, "SELECT id, nome, email FROM candidatos ORDER BY created_at DESC LIMIT $1 OFFSET $2", query)
	assert.Equal(t, []any{50, 10}, args)
}

func TestBuildListQuery_Conditions(t *testing.T) {
	opts := NewListQueryOptions("candidatos",
		WithColumns("id"),
		WithCondition(WhereCond("empresa", Equal, "ACME")),
		WithCondition(WhereCond("nome", ILike, "%silva%")),
		WithLimit(20),
	)

	query, args := BuildListQuery(opts)
	assert.Equal(t, "SELECT id FROM candidatos WHERE empresa = $1 AND nome ILIKE $2 LIMIT $3", query)
	assert.Equal(t, []any{"ACME", "%silva%", 20}, args)
}

func TestBuildListQuery_NoColumnsSelectsStar(t *testing.T) {
	query, args := BuildListQuery(NewListQueryOptions("cursos"))
	assert.Equal(t, "SELECT * FROM cursos", query)
	assert.Empty(t, args)
}

func TestBuildListQuery_InvalidDirOmitted(t *testing.T) {
	opts := NewListQueryOptions("usuarios", WithOrderBy("nome", "sideways"))
	query, _ := BuildListQuery(opts)
	assert.Equal(t, "SELECT * FROM usuarios ORDER BY nome", query)
}

func TestBuildCountQuery(t *testing.T) {
	opts := NewListQueryOptions("documentos",
		WithColumns("id", "filename"),
		WithCondition(WhereCond("status", Equal, "pendente")),
		WithOrderBy("created_at", "desc"),
		WithLimit(10),
	)

	query, args := BuildCountQuery(opts)
	assert.Equal(t, "SELECT COUNT(*) FROM documentos WHERE status = $1", query)
	assert.Equal(t, []any{"pendente"}, args)
}
