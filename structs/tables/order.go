package tables

import "time"

type Order struct {
	tableName          struct{}              `bun:"table:orders,alias:o"`
	ID                 int64                 `bun:"id,pk,autoincrement" json:"id"`
	UserID             int64                 `bun:"user_id,notnull" json:"user_id"`
	StatusID           int64                 `bun:"status_id,notnull" json:"status_id"`
	PaymentMethodID    int64                 `bun:"payment_method_id,notnull" json:"payment_method_id"`
	CreationDateTime   time.Time             `bun:"creation_date_time,notnull,default:current_timestamp" json:"creation_date_time"`
	CompletionDateTime *time.Time            `bun:"completion_date_time,nullzero" json:"completion_date_time,omitempty"`
	Status             *Status               `bun:"rel:belongs-to,join:status_id=id" json:"status,omitempty"`
	PaymentMethod      *PaymentMethod        `bun:"rel:belongs-to,join:payment_method_id=id" json:"payment_method,omitempty"`
	Lines              []*ProductDesignOrder `bun:"rel:has-many,join:id=order_id" json:"lines,omitempty"`
}

// ProductDesignOrder is an order line. PriceAtOrderCents is a snapshot taken
// inside the placement transaction and is never recomputed afterwards.
type ProductDesignOrder struct {
	tableName         struct{}       `bun:"table:product_design_orders,alias:pdo"`
	ID                int64          `bun:"id,pk,autoincrement" json:"id"`
	OrderID           int64          `bun:"order_id,notnull" json:"order_id"`
	ProductDesignID   int64          `bun:"product_design_id,notnull" json:"product_design_id"`
	Quantity          int            `bun:"quantity,notnull" json:"quantity"`
	PriceAtOrderCents int64          `bun:"price_at_order_cents,notnull" json:"price_at_order_cents"`
	ProductDesign     *ProductDesign `bun:"rel:belongs-to,join:product_design_id=id" json:"product_design,omitempty"`
}

// Status and PaymentMethod are name-keyed lookups; the unique constraint on
// name is what makes the get-or-create upsert in order placement idempotent.
type Status struct {
	tableName struct{} `bun:"table:statuses,alias:st"`
	ID        int64    `bun:"id,pk,autoincrement" json:"id"`
	Name      string   `bun:"name,notnull,unique" json:"name"`
}

type PaymentMethod struct {
	tableName struct{} `bun:"table:payment_methods,alias:pm"`
	ID        int64    `bun:"id,pk,autoincrement" json:"id"`
	Name      string   `bun:"name,notnull,unique" json:"name"`
}

const (
	StatusProcessing = "Processing"

	PaymentOnDelivery = "PaymentOnDelivery"
	OnlinePayment     = "OnlinePayment"
)
