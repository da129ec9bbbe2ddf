package structs

import "time"

type AddToCartRequest struct {
	ProductDesignID int64 `json:"product_design_id" validate:"required,gt=0"`
	Quantity        int   `json:"quantity" validate:"required,min=1"`
}

// UpdateCartQuantityRequest deliberately allows quantity <= 0: that is the
// idempotent removal path.
type UpdateCartQuantityRequest struct {
	CartItemID int64 `json:"cart_item_id" validate:"required,gt=0"`
	Quantity   int   `json:"quantity"`
}

// CartItemResponse is both the scan target for the cart join and the JSON
// shape returned to the client. Prices are cents.
type CartItemResponse struct {
	ID                int64     `bun:"cart_item_id" json:"id"`
	ProductDesignID   int64     `bun:"product_design_id" json:"product_design_id"`
	ProductID         int64     `bun:"product_id" json:"product_id"`
	ProductName       string    `bun:"product_name" json:"product_name"`
	ProductPriceCents int64     `bun:"product_price_cents" json:"product_price_cents"`
	DesignName        string    `bun:"design_name" json:"design_name"`
	BaseColorName     string    `bun:"base_color_name" json:"base_color_name"`
	PrimaryImageURL   string    `bun:"primary_image_url" json:"primary_image_url,omitempty"`
	DesignImageURL    string    `bun:"design_image_url" json:"design_image_url,omitempty"`
	Quantity          int       `bun:"quantity" json:"quantity"`
	StockQuantity     int       `bun:"stock_quantity" json:"stock_quantity"`
	IsAvailable       bool      `bun:"is_available" json:"is_available"`
	PriceAtOrderCents int64     `bun:"price_at_order_cents" json:"price_at_order_cents"`
	AddedDate         time.Time `bun:"added_date" json:"added_date"`
}
