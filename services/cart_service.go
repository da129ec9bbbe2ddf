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

type CartService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewCartService(logger *gecho.Logger, db *database.DB) *CartService {
	return &CartService{
		logger: logger,
		db:     db,
	}
}

// MergeCartQuantity computes the quantity a cart line ends up holding after
// adding requested units to what is already there. The design must be
// available and the merged quantity may not exceed stock; on error nothing
// may be written.
func MergeCartQuantity(existing, requested int, pd *tables.ProductDesign) (int, error) {
	if !pd.IsAvailable {
		return 0, fmt.Errorf("%w: %s - %s", lib.ErrUnavailable, pd.Product.Name, pd.Design.Name)
	}

	merged := existing + requested
	if merged > pd.Quantity {
		return 0, fmt.Errorf("%w for %s - %s: requested %d, in stock %d",
			lib.ErrInsufficientStock, pd.Product.Name, pd.Design.Name, merged, pd.Quantity)
	}

	return merged, nil
}

// CartQuantityRemoves reports whether an update quantity is the removal
// signal rather than a new line quantity.
func CartQuantityRemoves(quantity int) bool {
	return quantity <= 0
}

// loadCartLines selects cart rows joined to the live catalog. With forUpdate
// set, the matched product_design rows are locked until the surrounding
// transaction ends; the cart rows themselves need no lock because they are
// only touched by their owner.
func loadCartLines(ctx context.Context, idb bun.IDB, userID int64, cartItemIDs []int64, forUpdate bool) ([]structs.CartItemResponse, error) {
	query := idb.NewSelect().
		Model((*tables.CartItem)(nil)).
		ColumnExpr("ci.id AS cart_item_id").
		ColumnExpr("ci.quantity AS quantity").
		ColumnExpr("ci.added_date AS added_date").
		ColumnExpr("pd.id AS product_design_id").
		ColumnExpr("pd.price_cents AS price_at_order_cents").
		ColumnExpr("pd.quantity AS stock_quantity").
		ColumnExpr("pd.is_available AS is_available").
		ColumnExpr("p.id AS product_id").
		ColumnExpr("p.name AS product_name").
		ColumnExpr("p.price_cents AS product_price_cents").
		ColumnExpr("p.primary_image_url AS primary_image_url").
		ColumnExpr("d.name AS design_name").
		ColumnExpr("d.image_url AS design_image_url").
		ColumnExpr("bc.name AS base_color_name").
		Join("JOIN product_designs AS pd ON pd.id = ci.product_design_id").
		Join("JOIN products AS p ON p.id = pd.product_id").
		Join("JOIN designs AS d ON d.id = pd.design_id").
		Join("JOIN base_colors AS bc ON bc.id = p.base_color_id").
		Where("ci.user_id = ?", userID).
		OrderExpr("ci.added_date ASC")

	if len(cartItemIDs) > 0 {
		query = query.Where("ci.id IN (?)", bun.In(cartItemIDs))
	}
	if forUpdate {
		query = query.For("UPDATE OF pd")
	}

	var lines []structs.CartItemResponse
	if err := query.Scan(ctx, &lines); err != nil {
		return nil, fmt.Errorf("failed to load cart lines: %w", err)
	}

	return lines, nil
}

// List returns the user's cart joined to the live catalog, oldest first
func (cs *CartService) List(ctx context.Context, userID int64) ([]structs.CartItemResponse, error) {
	lines, err := loadCartLines(ctx, cs.db.DB, userID, nil, false)
	if err != nil {
		cs.logger.Error("Failed to list cart", gecho.Field("error", err), gecho.Field("user_id", userID))
		return nil, lib.MapPgError(err)
	}
	if lines == nil {
		lines = []structs.CartItemResponse{}
	}
	return lines, nil
}

// Add puts a product design in the user's cart. Adding a design already in
// the cart merges quantities; the merged quantity may not exceed stock.
func (cs *CartService) Add(ctx context.Context, userID int64, req *structs.AddToCartRequest) (*structs.CartItemResponse, error) {
	pd, err := database.Query[tables.ProductDesign](cs.db).
		Relation("Product", "Design").
		WhereRaw("pd.id = ?", req.ProductDesignID).
		First(ctx)
	if err != nil {
		cs.logger.Error("Failed to load product design", gecho.Field("error", err), gecho.Field("product_design_id", req.ProductDesignID))
		return nil, lib.MapPgError(err)
	}
	if pd == nil {
		return nil, lib.ErrNotFound
	}

	existing, err := database.Query[tables.CartItem](cs.db).
		Where("user_id", userID).
		Where("product_design_id", req.ProductDesignID).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	existingQuantity := 0
	if existing != nil {
		existingQuantity = existing.Quantity
	}

	newQuantity, err := MergeCartQuantity(existingQuantity, req.Quantity, pd)
	if err != nil {
		return nil, err
	}

	var cartItemID int64
	if existing != nil {
		updates := map[string]any{"quantity": newQuantity}
		if _, err := database.Query[tables.CartItem](cs.db).Where("id", existing.ID).Update(ctx, updates); err != nil {
			return nil, lib.MapPgError(err)
		}
		cartItemID = existing.ID
	} else {
		item := &tables.CartItem{
			UserID:          userID,
			ProductDesignID: req.ProductDesignID,
			Quantity:        newQuantity,
			AddedDate:       time.Now(),
		}
		item, err = database.Query[tables.CartItem](cs.db).Insert(ctx, item)
		if err != nil {
			return nil, lib.MapPgError(err)
		}
		cartItemID = item.ID
	}

	cs.logger.Debug("Cart item upserted",
		gecho.Field("user_id", userID),
		gecho.Field("cart_item_id", cartItemID),
		gecho.Field("quantity", newQuantity),
	)

	return cs.getLine(ctx, userID, cartItemID)
}

// UpdateQuantity sets a cart line's quantity; zero or negative removes the
// line. Returns (nil, nil) for the removal path.
func (cs *CartService) UpdateQuantity(ctx context.Context, userID int64, req *structs.UpdateCartQuantityRequest) (*structs.CartItemResponse, error) {
	item, err := database.Query[tables.CartItem](cs.db).
		Where("id", req.CartItemID).
		Where("user_id", userID).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if item == nil {
		return nil, lib.ErrNotFound
	}

	if CartQuantityRemoves(req.Quantity) {
		if _, err := database.Query[tables.CartItem](cs.db).Where("id", item.ID).Delete(ctx); err != nil {
			return nil, lib.MapPgError(err)
		}
		cs.logger.Debug("Cart item removed via zero quantity", gecho.Field("user_id", userID), gecho.Field("cart_item_id", item.ID))
		return nil, nil
	}

	pd, err := database.Query[tables.ProductDesign](cs.db).
		Relation("Product", "Design").
		WhereRaw("pd.id = ?", item.ProductDesignID).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if pd == nil {
		return nil, lib.ErrNotFound
	}

	if _, err := MergeCartQuantity(0, req.Quantity, pd); err != nil {
		return nil, err
	}

	updates := map[string]any{"quantity": req.Quantity}
	if _, err := database.Query[tables.CartItem](cs.db).Where("id", item.ID).Update(ctx, updates); err != nil {
		return nil, lib.MapPgError(err)
	}

	return cs.getLine(ctx, userID, item.ID)
}

// Remove deletes a cart line owned by the user
func (cs *CartService) Remove(ctx context.Context, userID int64, cartItemID int64) error {
	rows, err := database.Query[tables.CartItem](cs.db).
		Where("id", cartItemID).
		Where("user_id", userID).
		Delete(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if rows == 0 {
		return lib.ErrNotFound
	}

	cs.logger.Debug("Cart item removed", gecho.Field("user_id", userID), gecho.Field("cart_item_id", cartItemID))
	return nil
}

func (cs *CartService) getLine(ctx context.Context, userID, cartItemID int64) (*structs.CartItemResponse, error) {
	lines, err := loadCartLines(ctx, cs.db.DB, userID, []int64{cartItemID}, false)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if len(lines) == 0 {
		return nil, lib.ErrNotFound
	}
	return &lines[0], nil
}
