package tables

import "time"

// CartItem holds at most one row per (user, product design); adding the same
// design again merges into the existing row.
type CartItem struct {
	tableName       struct{}       `bun:"table:cart_items,alias:ci"`
	ID              int64          `bun:"id,pk,autoincrement" json:"id"`
	UserID          int64          `bun:"user_id,notnull" json:"user_id"`
	ProductDesignID int64          `bun:"product_design_id,notnull" json:"product_design_id"`
	Quantity        int            `bun:"quantity,notnull" json:"quantity"`
	AddedDate       time.Time      `bun:"added_date,notnull,default:current_timestamp" json:"added_date"`
	ProductDesign   *ProductDesign `bun:"rel:belongs-to,join:product_design_id=id" json:"product_design,omitempty"`
}
