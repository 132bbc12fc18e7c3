// Package database builds parameterized list queries shared by the data repositories.
package database

import (
	"fmt"
	"strings"
)

// ConditionType is the SQL comparison operator applied by a Condition.
type ConditionType string

const (
	Equal              ConditionType = "="
	NotEqual           ConditionType = "!="
	GreaterThan        ConditionType = ">"
	LessThan           ConditionType = "<"
	LessThanOrEqual    ConditionType = "<="
	GreaterThanOrEqual ConditionType = ">="
	Like               ConditionType = "LIKE"
	ILike              ConditionType = "ILIKE"
)

// Condition is one WHERE clause predicate. Field names come from repository
// code only, never from request input.
type Condition struct {
	Field string
	Type  ConditionType
	Value any
}

// WhereCond builds a Condition for the given field, operator, and value.
func WhereCond(field string, condType ConditionType, value any) Condition {
	return Condition{Field: field, Type: condType, Value: value}
}

// ListQueryOptions describes a SELECT over one table with filtering, sorting,
// and paging. Zero Limit/Offset mean the clause is omitted.
type ListQueryOptions struct {
	Table      string
	Columns    []string
	Conditions []Condition
	OrderBy    string
	OrderDir   string
	Limit      int
	Offset     int
}

// ListQueryOption mutates ListQueryOptions.
type ListQueryOption func(*ListQueryOptions)

// NewListQueryOptions builds options for listing rows from table.
func NewListQueryOptions(table string, opts ...ListQueryOption) *ListQueryOptions {
	options := &ListQueryOptions{Table: table}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithColumns sets the columns to select.
func WithColumns(cols ...string) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.Columns = cols
	}
}

// WithCondition adds a single condition.
func WithCondition(cond Condition) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.Conditions = append(o.Conditions, cond)
	}
}

// WithOrderBy sets the ORDER BY column and direction.
func WithOrderBy(column, dir string) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.OrderBy = column
		o.OrderDir = dir
	}
}

// WithLimit sets the LIMIT.
func WithLimit(limit int) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.Limit = limit
	}
}

// WithOffset sets the OFFSET.
func WithOffset(offset int) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.Offset = offset
	}
}

// BuildListQuery renders the options into a parameterized SELECT and its args.
func BuildListQuery(o *ListQueryOptions) (string, []any) {
	cols := "*"
	if len(o.Columns) > 0 {
		cols = strings.Join(o.Columns, ", ")
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(cols)
	sb.WriteString(" FROM ")
	sb.WriteString(o.Table)

	args := make([]any, 0, len(o.Conditions)+2)
	if len(o.Conditions) > 0 {
		sb.WriteString(" WHERE ")
		for i, cond := range o.Conditions {
			if i > 0 {
				sb.WriteString(" AND ")
			}
			args = append(args, cond.Value)
			fmt.Fprintf(&sb, "%s %s $%d", cond.Field, cond.Type, len(args))
		}
	}

	if o.OrderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(o.OrderBy)
		if dir := normalizeDir(o.OrderDir); dir != "" {
			sb.WriteString(" ")
			sb.WriteString(dir)
		}
	}

	if o.Limit > 0 {
		args = append(args, o.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}
	if o.Offset > 0 {
		args = append(args, o.Offset)
		fmt.Fprintf(&sb, " OFFSET $%d", len(args))
	}

	return sb.String(), args
}

// BuildCountQuery renders the options into a SELECT COUNT(*) with the same
// conditions, ignoring columns, ordering, and paging.
func BuildCountQuery(o *ListQueryOptions) (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT COUNT(*) FROM ")
	sb.WriteString(o.Table)

	args := make([]any, 0, len(o.Conditions))
	if len(o.Conditions) > 0 {
		sb.WriteString(" WHERE ")
		for i, cond := range o.Conditions {
			if i > 0 {
				sb.WriteString(" AND ")
			}
			args = append(args, cond.Value)
			fmt.Fprintf(&sb, "%s %s $%d", cond.Field, cond.Type, len(args))
		}
	}

	return sb.String(), args
}

func normalizeDir(dir string) string {
	switch strings.ToUpper(strings.TrimSpace(dir)) {
	case "ASC":
		return "ASC"
	case "DESC":
		return "DESC"
	default:
		return ""
	}
}
