package services

import (
	"context"
	"strings"

	"merchshop_server/database"
	"merchshop_server/lib"
	"merchshop_server/structs"
	"merchshop_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

// CatalogService serves the public product catalog: products expanded with
// base color and nested product designs, plus reviews.
type CatalogService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewCatalogService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *CatalogService {
	return &CatalogService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

var productSortColumns = map[string]string{
	"name":  "p.name",
	"price": "p.price_cents",
	"id":    "p.id",
}

// ListProducts returns a filtered, paginated catalog page. Pages are cached
// in redis keyed by the full filter set.
func (ps *CatalogService) ListProducts(ctx context.Context, opts *structs.ProductListOptions) (*database.PaginationResult[tables.Product], error) {
	filterKey := ProductListCacheKey(opts)

	if cached, err := ps.cacheService.GetProductList(filterKey); err != nil {
		ps.logger.Warn("Failed to read product list from cache", gecho.Field("error", err))
	} else if cached != nil {
		ps.logger.Debug("Product list served from cache", gecho.Field("key", filterKey))
		return cached, nil
	}

	query := database.Query[tables.Product](ps.db).
		Relation("BaseColor", "ProductDesigns", "ProductDesigns.Design")

	if opts.SearchTerm != "" {
		pattern := "%" + opts.SearchTerm + "%"
		query = query.WhereRaw("(p.name ILIKE ? OR p.description ILIKE ?)", pattern, pattern)
	}

	if opts.Category != "" {
		query = query.WhereRaw(
			"p.id IN (SELECT cp.product_id FROM category_products cp JOIN categories c ON c.id = cp.category_id WHERE c.name = ?)",
			opts.Category,
		)
	}

	if opts.MinPriceCents != nil {
		query = query.WhereRaw("p.price_cents >= ?", *opts.MinPriceCents)
	}
	if opts.MaxPriceCents != nil {
		query = query.WhereRaw("p.price_cents <= ?", *opts.MaxPriceCents)
	}

	if opts.AvailableOnly {
		query = query.WhereRaw(
			"EXISTS (SELECT 1 FROM product_designs pd WHERE pd.product_id = p.id AND pd.is_available AND pd.quantity > 0)",
		)
	}

	if col, ok := productSortColumns[strings.ToLower(opts.SortBy)]; ok {
		direction := database.ASC
		if opts.SortDirection == "DESC" {
			direction = database.DESC
		}
		query = query.OrderBy(col, direction)
	} else {
		query = query.OrderBy("p.id", database.ASC)
	}

	page, err := database.Paginate(query, ctx, opts.Page, opts.PageSize)
	if err != nil {
		ps.logger.Error("Failed to list products", gecho.Field("error", err))
		return nil, lib.MapPgError(err)
	}

	go func() {
		if err := ps.cacheService.SetProductList(filterKey, page); err != nil {
			ps.logger.Warn("Failed to cache product list", gecho.Field("error", err))
		}
	}()

	return page, nil
}

// GetProduct returns a single product with base color and designs
func (ps *CatalogService) GetProduct(ctx context.Context, id int64) (*tables.Product, error) {
	if cached, err := ps.cacheService.GetProductByID(id); err != nil {
		ps.logger.Warn("Failed to read product from cache", gecho.Field("error", err), gecho.Field("product_id", id))
	} else if cached != nil {
		return cached, nil
	}

	product, err := database.Query[tables.Product](ps.db).
		Relation("BaseColor", "ProductDesigns", "ProductDesigns.Design").
		WhereRaw("p.id = ?", id).
		First(ctx)
	if err != nil {
		ps.logger.Error("Failed to load product", gecho.Field("error", err), gecho.Field("product_id", id))
		return nil, lib.MapPgError(err)
	}
	if product == nil {
		return nil, lib.ErrNotFound
	}

	go func() {
		if err := ps.cacheService.SetProductByID(product); err != nil {
			ps.logger.Warn("Failed to cache product", gecho.Field("error", err), gecho.Field("product_id", id))
		}
	}()

	return product, nil
}

// ListReviews returns the reviews for a product design
func (ps *CatalogService) ListReviews(ctx context.Context, productDesignID int64) ([]tables.Review, error) {
	pd, err := database.FindByID[tables.ProductDesign](ps.db, ctx, productDesignID)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if pd == nil {
		return nil, lib.ErrNotFound
	}

	reviews, err := database.Query[tables.Review](ps.db).
		Where("product_design_id", productDesignID).
		OrderBy("id", database.DESC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if reviews == nil {
		reviews = []tables.Review{}
	}
	return reviews, nil
}

// CreateReview attaches a review to a product design
func (ps *CatalogService) CreateReview(ctx context.Context, productDesignID int64, req *structs.CreateReviewRequest) (*tables.Review, error) {
	pd, err := database.FindByID[tables.ProductDesign](ps.db, ctx, productDesignID)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if pd == nil {
		return nil, lib.ErrNotFound
	}

	review := &tables.Review{
		ProductDesignID: productDesignID,
		Text:            req.Text,
		ImageURL:        req.ImageURL,
	}
	review, err = database.Query[tables.Review](ps.db).Insert(ctx, review)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	return review, nil
}
