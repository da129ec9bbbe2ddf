package services

import (
	"context"
	"fmt"
	"time"

	"merchshop_server/database"
	"merchshop_server/lib"
	"merchshop_server/structs"
	"merchshop_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/uptrace/bun"
)

type OrderService struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	db           *database.DB
	cacheService *CacheService
	emailService *EmailService
}

func NewOrderService(logger *gecho.Logger, cfg *structs.Config, db *database.DB, cacheService *CacheService, emailService *EmailService) *OrderService {
	return &OrderService{
		logger:       logger,
		cfg:          cfg,
		db:           db,
		cacheService: cacheService,
		emailService: emailService,
	}
}

// ValidateOrderLines checks availability and stock for every line. The first
// violation aborts with an error naming the offending item.
func ValidateOrderLines(lines []structs.CartItemResponse) error {
	for _, line := range lines {
		if !line.IsAvailable {
			return fmt.Errorf("%w: %s - %s", lib.ErrUnavailable, line.ProductName, line.DesignName)
		}
		if line.StockQuantity < line.Quantity {
			return fmt.Errorf("%w for %s - %s: requested %d, in stock %d",
				lib.ErrInsufficientStock, line.ProductName, line.DesignName, line.Quantity, line.StockQuantity)
		}
	}
	return nil
}

// ComputeOrderTotal sums quantity times the snapshot unit price, in cents
func ComputeOrderTotal(lines []structs.CartItemResponse) int64 {
	var total int64
	for _, line := range lines {
		total += int64(line.Quantity) * line.PriceAtOrderCents
	}
	return total
}

// PlaceOrder converts cart rows into an order atomically. Inside one
// transaction: the targeted product_design rows are locked, stock is
// verified, the order and its lines are inserted with unit price snapshots,
// stock is decremented with a guarded update, and the consumed cart rows are
// deleted. Any failure rolls the whole thing back.
func (os *OrderService) PlaceOrder(ctx context.Context, userID int64, req *structs.PlaceOrderRequest) (*structs.OrderResponse, error) {
	startTime := time.Now()

	resp, err := database.RunInTxWithResult(ctx, func(ctx context.Context, tx bun.Tx) (*structs.OrderResponse, error) {
		lines, err := loadCartLines(ctx, tx, userID, req.CartItemIDs, true)
		if err != nil {
			return nil, err
		}
		if len(lines) == 0 {
			return nil, lib.ErrNothingToOrder
		}
		if len(req.CartItemIDs) > 0 && len(lines) != len(req.CartItemIDs) {
			return nil, lib.ErrNotFound
		}

		if err := ValidateOrderLines(lines); err != nil {
			return nil, err
		}

		totalCents := ComputeOrderTotal(lines)

		paymentMethod, err := os.resolvePaymentMethod(ctx, tx, req)
		if err != nil {
			return nil, err
		}

		status := &tables.Status{Name: tables.StatusProcessing}
		if err := database.GetOrCreateByName(ctx, tx, status); err != nil {
			return nil, err
		}

		order := &tables.Order{
			UserID:           userID,
			StatusID:         status.ID,
			PaymentMethodID:  paymentMethod.ID,
			CreationDateTime: time.Now(),
		}
		if _, err := tx.NewInsert().Model(order).Returning("*").Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to insert order: %w", err)
		}

		orderLines := make([]*tables.ProductDesignOrder, 0, len(lines))
		cartItemIDs := make([]int64, 0, len(lines))
		items := make([]structs.OrderItemResponse, 0, len(lines))

		for _, line := range lines {
			orderLines = append(orderLines, &tables.ProductDesignOrder{
				OrderID:           order.ID,
				ProductDesignID:   line.ProductDesignID,
				Quantity:          line.Quantity,
				PriceAtOrderCents: line.PriceAtOrderCents,
			})
			cartItemIDs = append(cartItemIDs, line.ID)
			items = append(items, structs.OrderItemResponse{
				ProductDesignID:   line.ProductDesignID,
				ProductName:       line.ProductName,
				DesignName:        line.DesignName,
				Quantity:          line.Quantity,
				PriceAtOrderCents: line.PriceAtOrderCents,
				LineTotalCents:    int64(line.Quantity) * line.PriceAtOrderCents,
			})
		}

		if _, err := tx.NewInsert().Model(&orderLines).Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to insert order lines: %w", err)
		}

		// The guard re-checks stock under the row lock; with the FOR UPDATE
		// above it can only fail if something bypassed this code path.
		for _, line := range lines {
			res, err := tx.NewUpdate().
				Model((*tables.ProductDesign)(nil)).
				Set("quantity = quantity - ?", line.Quantity).
				Where("id = ? AND quantity >= ?", line.ProductDesignID, line.Quantity).
				Exec(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to decrement stock: %w", err)
			}
			rows, _ := res.RowsAffected()
			if rows == 0 {
				return nil, fmt.Errorf("%w for %s - %s: requested %d, in stock %d",
					lib.ErrInsufficientStock, line.ProductName, line.DesignName, line.Quantity, line.StockQuantity)
			}
		}

		if _, err := tx.NewDelete().
			Model((*tables.CartItem)(nil)).
			Where("id IN (?)", bun.In(cartItemIDs)).
			Where("user_id = ?", userID).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to clear cart rows: %w", err)
		}

		return &structs.OrderResponse{
			ID:                order.ID,
			StatusName:        status.Name,
			PaymentMethodName: paymentMethod.Name,
			CreationDateTime:  order.CreationDateTime,
			TotalCents:        totalCents,
			Items:             items,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	elapsedTime := time.Since(startTime)
	os.logger.Info("Order placed",
		gecho.Field("order_id", resp.ID),
		gecho.Field("user_id", userID),
		gecho.Field("total_cents", resp.TotalCents),
		gecho.Field("elapsed_time_ms", elapsedTime.Milliseconds()),
	)

	// Post-commit side effects; neither may fail the placed order
	go func() {
		if err := os.cacheService.InvalidateProductCaches(); err != nil {
			os.logger.Warn("Failed to invalidate product caches after order", gecho.Field("error", err))
		}
	}()
	go os.sendConfirmation(userID, resp)

	return resp, nil
}

// resolvePaymentMethod accepts either an explicit id or a symbolic selector.
// Selectors are get-or-created by unique name so a fresh database works
// without seeding.
func (os *OrderService) resolvePaymentMethod(ctx context.Context, tx bun.Tx, req *structs.PlaceOrderRequest) (*tables.PaymentMethod, error) {
	if req.PaymentMethodID > 0 {
		pm := new(tables.PaymentMethod)
		err := tx.NewSelect().Model(pm).Where("id = ?", req.PaymentMethodID).Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: payment method %d", lib.ErrInvalidPayment, req.PaymentMethodID)
		}
		return pm, nil
	}

	switch req.PaymentMethod {
	case tables.PaymentOnDelivery, tables.OnlinePayment:
		pm := &tables.PaymentMethod{Name: req.PaymentMethod}
		if err := database.GetOrCreateByName(ctx, tx, pm); err != nil {
			return nil, err
		}
		return pm, nil
	case "":
		return nil, fmt.Errorf("%w: payment method is required", lib.ErrInvalidPayment)
	default:
		return nil, fmt.Errorf("%w: %s", lib.ErrInvalidPayment, req.PaymentMethod)
	}
}

func (os *OrderService) sendConfirmation(userID int64, order *structs.OrderResponse) {
	user, err := database.Query[tables.User](os.db).Where("id", userID).First(context.Background())
	if err != nil || user == nil {
		os.logger.Warn("Failed to load user for order confirmation email", gecho.Field("error", err), gecho.Field("user_id", userID))
		return
	}

	if err := os.emailService.SendOrderConfirmation(user, order); err != nil {
		os.logger.Warn("Failed to send order confirmation email",
			gecho.Field("error", err),
			gecho.Field("order_id", order.ID),
			gecho.Field("user_id", userID),
		)
	}
}

// ListOrders returns the user's orders, newest first
func (os *OrderService) ListOrders(ctx context.Context, userID int64) ([]structs.OrderResponse, error) {
	orders, err := database.Query[tables.Order](os.db).
		Relation("Status", "PaymentMethod").
		Relation("Lines", "Lines.ProductDesign", "Lines.ProductDesign.Product", "Lines.ProductDesign.Design").
		Where("user_id", userID).
		OrderBy("creation_date_time", database.DESC).
		All(ctx)
	if err != nil {
		os.logger.Error("Failed to list orders", gecho.Field("error", err), gecho.Field("user_id", userID))
		return nil, lib.MapPgError(err)
	}

	responses := make([]structs.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, *orderToResponse(&orders[i]))
	}
	return responses, nil
}

// GetOrder returns one of the user's orders; unowned ids read as not found
func (os *OrderService) GetOrder(ctx context.Context, userID, orderID int64) (*structs.OrderResponse, error) {
	order, err := database.Query[tables.Order](os.db).
		Relation("Status", "PaymentMethod").
		Relation("Lines", "Lines.ProductDesign", "Lines.ProductDesign.Product", "Lines.ProductDesign.Design").
		WhereRaw("o.id = ?", orderID).
		Where("user_id", userID).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if order == nil {
		return nil, lib.ErrNotFound
	}

	return orderToResponse(order), nil
}

// ListPaymentMethods returns every known payment method
func (os *OrderService) ListPaymentMethods(ctx context.Context) ([]tables.PaymentMethod, error) {
	methods, err := database.Query[tables.PaymentMethod](os.db).
		OrderBy("id", database.ASC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return methods, nil
}

func orderToResponse(order *tables.Order) *structs.OrderResponse {
	resp := &structs.OrderResponse{
		ID:                 order.ID,
		CreationDateTime:   order.CreationDateTime,
		CompletionDateTime: order.CompletionDateTime,
		Items:              make([]structs.OrderItemResponse, 0, len(order.Lines)),
	}
	if order.Status != nil {
		resp.StatusName = order.Status.Name
	}
	if order.PaymentMethod != nil {
		resp.PaymentMethodName = order.PaymentMethod.Name
	}

	for _, line := range order.Lines {
		item := structs.OrderItemResponse{
			ProductDesignID:   line.ProductDesignID,
			Quantity:          line.Quantity,
			PriceAtOrderCents: line.PriceAtOrderCents,
			LineTotalCents:    int64(line.Quantity) * line.PriceAtOrderCents,
		}
		if line.ProductDesign != nil {
			if line.ProductDesign.Product != nil {
				item.ProductName = line.ProductDesign.Product.Name
			}
			if line.ProductDesign.Design != nil {
				item.DesignName = line.ProductDesign.Design.Name
			}
		}
		resp.TotalCents += item.LineTotalCents
		resp.Items = append(resp.Items, item)
	}

	return resp
}
