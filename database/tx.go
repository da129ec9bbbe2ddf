package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
)

// RunInTxWithResult executes a function within a database transaction and
// returns its result. The transaction is rolled back when fn returns an error
// or panics.
func RunInTxWithResult[T any](ctx context.Context, fn func(ctx context.Context, tx bun.Tx) (T, error)) (T, error) {
	var result T
	db := GetInstance()
	if db == nil {
		return result, fmt.Errorf("database instance not initialized")
	}

	err := db.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var err error
		result, err = fn(ctx, tx)
		return err
	})

	return result, err
}
