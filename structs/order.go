package structs

import "time"

// PlaceOrderRequest selects cart rows by id; an empty list means the whole
// cart. Payment is selected either by explicit id or by symbolic name.
type PlaceOrderRequest struct {
	CartItemIDs     []int64 `json:"cart_item_ids" validate:"omitempty,dive,gt=0"`
	PaymentMethodID int64   `json:"payment_method_id" validate:"omitempty,gt=0"`
	PaymentMethod   string  `json:"payment_method" validate:"omitempty,oneof=PaymentOnDelivery OnlinePayment"`
}

type OrderItemResponse struct {
	ProductDesignID   int64  `json:"product_design_id"`
	ProductName       string `json:"product_name"`
	DesignName        string `json:"design_name"`
	Quantity          int    `json:"quantity"`
	PriceAtOrderCents int64  `json:"price_at_order_cents"`
	LineTotalCents    int64  `json:"line_total_cents"`
}

type OrderResponse struct {
	ID                 int64               `json:"id"`
	StatusName         string              `json:"status_name"`
	PaymentMethodName  string              `json:"payment_method_name"`
	CreationDateTime   time.Time           `json:"creation_date_time"`
	CompletionDateTime *time.Time          `json:"completion_date_time,omitempty"`
	TotalCents         int64               `json:"total_cents"`
	Items              []OrderItemResponse `json:"items"`
}
