package database

import (
	"fmt"

	"github.com/uptrace/bun"
)

// QueryBuilder provides a fluent, type-safe API for building database queries
type QueryBuilder[T any] struct {
	idb bun.IDB

	wheres    []*WhereClause
	orders    []*OrderClause
	relations []string
	limitVal  *int
	offsetVal *int
}

// WhereClause represents a WHERE condition
type WhereClause struct {
	Column   string
	Operator string
	Value    any
	IsRaw    bool
	RawSQL   string
	RawArgs  []any
}

// OrderClause represents an ORDER BY clause
type OrderClause struct {
	Column    string
	Direction string
}

// OrderDirection represents sort direction
type OrderDirection string

const (
	ASC  OrderDirection = "ASC"
	DESC OrderDirection = "DESC"
)

// Query creates a new QueryBuilder instance
func Query[T any](db *DB) *QueryBuilder[T] {
	return &QueryBuilder[T]{
		idb:    db.DB,
		wheres: []*WhereClause{},
		orders: []*OrderClause{},
	}
}

// Where adds a simple WHERE condition (column = value)
func (q *QueryBuilder[T]) Where(column string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{Column: column, Operator: "=", Value: value})
	return q
}

// WhereRaw adds a raw WHERE condition
func (q *QueryBuilder[T]) WhereRaw(sql string, args ...any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{IsRaw: true, RawSQL: sql, RawArgs: args})
	return q
}

// OrderBy adds an ORDER BY clause
func (q *QueryBuilder[T]) OrderBy(column string, direction OrderDirection) *QueryBuilder[T] {
	q.orders = append(q.orders, &OrderClause{Column: column, Direction: string(direction)})
	return q
}

// Limit sets the LIMIT clause
func (q *QueryBuilder[T]) Limit(limit int) *QueryBuilder[T] {
	q.limitVal = &limit
	return q
}

// Offset sets the OFFSET clause
func (q *QueryBuilder[T]) Offset(offset int) *QueryBuilder[T] {
	q.offsetVal = &offset
	return q
}

// Relation specifies a bun relation to preload
func (q *QueryBuilder[T]) Relation(relations ...string) *QueryBuilder[T] {
	q.relations = append(q.relations, relations...)
	return q
}

// buildSelect assembles the bun SelectQuery with the model as destination
func (q *QueryBuilder[T]) buildSelect(model any) *bun.SelectQuery {
	query := q.idb.NewSelect().Model(model)

	for _, rel := range q.relations {
		query = query.Relation(rel)
	}

	query = applyWheres(query, q.wheres)

	for _, order := range q.orders {
		query = query.OrderExpr("? ?", bun.Ident(order.Column), bun.Safe(order.Direction))
	}

	if q.limitVal != nil {
		query = query.Limit(*q.limitVal)
	}
	if q.offsetVal != nil {
		query = query.Offset(*q.offsetVal)
	}

	return query
}

// whereApplier is the subset of bun query types that accept WHERE clauses
type whereApplier[Q any] interface {
	Where(query string, args ...any) Q
}

func applyWheres[Q whereApplier[Q]](query Q, wheres []*WhereClause) Q {
	for _, where := range wheres {
		if where.IsRaw {
			query = query.Where(where.RawSQL, where.RawArgs...)
			continue
		}
		query = query.Where(fmt.Sprintf("? %s ?", where.Operator), bun.Ident(where.Column), where.Value)
	}
	return query
}
