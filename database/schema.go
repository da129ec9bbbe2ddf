package database

import (
	"context"
	"fmt"
	"merchshop_server/structs/tables"
)

// CreateSchema creates all application tables if they do not exist yet.
// Order matters: referenced tables first.
func (db *DB) CreateSchema(ctx context.Context) error {
	models := []any{
		(*tables.BaseColor)(nil),
		(*tables.Design)(nil),
		(*tables.Category)(nil),
		(*tables.Product)(nil),
		(*tables.CategoryProduct)(nil),
		(*tables.ProductDesign)(nil),
		(*tables.Review)(nil),
		(*tables.User)(nil),
		(*tables.CartItem)(nil),
		(*tables.Status)(nil),
		(*tables.PaymentMethod)(nil),
		(*tables.Order)(nil),
		(*tables.ProductDesignOrder)(nil),
	}

	for _, model := range models {
		_, err := db.NewCreateTable().
			Model(model).
			IfNotExists().
			WithForeignKeys().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create table for %T: %w", model, err)
		}
	}

	return nil
}
