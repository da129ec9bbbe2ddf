package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// All executes the query and returns all matching records with automatic retry
func (q *QueryBuilder[T]) All(ctx context.Context) ([]T, error) {
	start := time.Now()
	var data []T

	err := WithRetry(ctx, func() error {
		data = nil // Reset on retry
		return q.buildSelect(&data).Scan(ctx)
	})

	if err != nil {
		return nil, fmt.Errorf("failed to execute select query: %w (took %v)", err, time.Since(start))
	}

	return data, nil
}

// First executes the query and returns the first matching record with
// automatic retry. Returns (nil, nil) when no row matches.
func (q *QueryBuilder[T]) First(ctx context.Context) (*T, error) {
	start := time.Now()
	var data T

	err := WithRetry(ctx, func() error {
		return q.buildSelect(&data).Limit(1).Scan(ctx)
	})

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to execute first query: %w (took %v)", err, time.Since(start))
	}

	return &data, nil
}

// Count executes the query and returns the count of matching records with automatic retry
func (q *QueryBuilder[T]) Count(ctx context.Context) (int, error) {
	start := time.Now()
	var count int

	err := WithRetry(ctx, func() error {
		var model T
		query := q.idb.NewSelect().Model(&model)
		query = applyWheres(query, q.wheres)

		var err error
		count, err = query.Count(ctx)
		return err
	})

	if err != nil {
		return 0, fmt.Errorf("failed to execute count query: %w (took %v)", err, time.Since(start))
	}

	return count, nil
}

// Insert inserts a new record and returns it with automatic retry
func (q *QueryBuilder[T]) Insert(ctx context.Context, data *T) (*T, error) {
	start := time.Now()

	err := WithRetry(ctx, func() error {
		_, err := q.idb.NewInsert().Model(data).Returning("*").Exec(ctx)
		return err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to execute insert query: %w (took %v)", err, time.Since(start))
	}

	return data, nil
}

// Update updates records matching the query with automatic retry.
// Accepts either a map[string]any of columns or a *T struct.
func (q *QueryBuilder[T]) Update(ctx context.Context, data any) (int, error) {
	start := time.Now()
	var rowsAffected int64

	err := WithRetry(ctx, func() error {
		query, err := q.buildUpdate(data)
		if err != nil {
			return err
		}

		res, err := query.Exec(ctx)
		if err != nil {
			return err
		}
		rowsAffected, _ = res.RowsAffected()
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to execute update query: %w (took %v)", err, time.Since(start))
	}

	return int(rowsAffected), nil
}

func (q *QueryBuilder[T]) buildUpdate(data any) (*bun.UpdateQuery, error) {
	var model T
	query := q.idb.NewUpdate().Model(&model)

	query = applyWheres(query, q.wheres)

	switch v := data.(type) {
	case map[string]any:
		for key, value := range v {
			query = query.Set("? = ?", bun.Ident(key), value)
		}
	case *T:
		query = q.idb.NewUpdate().Model(v).WherePK()
	default:
		return nil, fmt.Errorf("unsupported data type for update: %T", data)
	}

	return query, nil
}

// Delete deletes records matching the query with automatic retry
func (q *QueryBuilder[T]) Delete(ctx context.Context) (int, error) {
	start := time.Now()
	var rowsAffected int64

	err := WithRetry(ctx, func() error {
		var model T
		query := q.idb.NewDelete().Model(&model)

		query = applyWheres(query, q.wheres)

		res, err := query.Exec(ctx)
		if err != nil {
			return err
		}
		rowsAffected, _ = res.RowsAffected()
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to execute delete query: %w (took %v)", err, time.Since(start))
	}

	return int(rowsAffected), nil
}
