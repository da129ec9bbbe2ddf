package tables

// Catalog tables. Prices are stored in cents; ProductDesign carries the
// sellable unit price and the stock counter, Product.Price is the display
// base price.

type Product struct {
	tableName       struct{}         `bun:"table:products,alias:p"`
	ID              int64            `bun:"id,pk,autoincrement" json:"id"`
	Name            string           `bun:"name,notnull" json:"name"`
	PriceCents      int64            `bun:"price_cents,notnull" json:"price_cents"`
	Description     string           `bun:"description" json:"description,omitempty"`
	BaseColorID     int64            `bun:"base_color_id,notnull" json:"base_color_id"`
	PrimaryImageURL string           `bun:"primary_image_url" json:"primary_image_url,omitempty"`
	BaseColor       *BaseColor       `bun:"rel:belongs-to,join:base_color_id=id" json:"base_color,omitempty"`
	ProductDesigns  []*ProductDesign `bun:"rel:has-many,join:id=product_id" json:"product_designs,omitempty"`
}

type BaseColor struct {
	tableName  struct{} `bun:"table:base_colors,alias:bc"`
	ID         int64    `bun:"id,pk,autoincrement" json:"id"`
	Name       string   `bun:"name,notnull" json:"name"`
	ColorValue string   `bun:"color_value,notnull" json:"color_value"` // hex, e.g. "#1A1A1A"
}

type Design struct {
	tableName struct{} `bun:"table:designs,alias:d"`
	ID        int64    `bun:"id,pk,autoincrement" json:"id"`
	Name      string   `bun:"name,notnull" json:"name"`
	ImageURL  string   `bun:"image_url" json:"image_url,omitempty"`
}

type Category struct {
	tableName struct{} `bun:"table:categories,alias:c"`
	ID        int64    `bun:"id,pk,autoincrement" json:"id"`
	Name      string   `bun:"name,notnull,unique" json:"name"`
}

// CategoryProduct is the explicit join row between categories and products.
type CategoryProduct struct {
	tableName  struct{} `bun:"table:category_products,alias:cp"`
	ID         int64    `bun:"id,pk,autoincrement" json:"id"`
	CategoryID int64    `bun:"category_id,notnull" json:"category_id"`
	ProductID  int64    `bun:"product_id,notnull" json:"product_id"`
}

// ProductDesign is the sellable unit: a design placed on a product at a
// coordinate. Quantity is the stock counter the order transaction decrements.
type ProductDesign struct {
	tableName   struct{} `bun:"table:product_designs,alias:pd"`
	ID          int64    `bun:"id,pk,autoincrement" json:"id"`
	ProductID   int64    `bun:"product_id,notnull" json:"product_id"`
	DesignID    int64    `bun:"design_id,notnull" json:"design_id"`
	CoordinateX int      `bun:"coordinate_x,notnull" json:"coordinate_x"`
	CoordinateY int      `bun:"coordinate_y,notnull" json:"coordinate_y"`
	IsAvailable bool     `bun:"is_available,notnull,default:true" json:"is_available"`
	PriceCents  int64    `bun:"price_cents,notnull" json:"price_cents"`
	Quantity    int      `bun:"quantity,notnull,default:0" json:"quantity"`
	Product     *Product `bun:"rel:belongs-to,join:product_id=id" json:"product,omitempty"`
	Design      *Design  `bun:"rel:belongs-to,join:design_id=id" json:"design,omitempty"`
}

type Review struct {
	tableName       struct{} `bun:"table:reviews,alias:rv"`
	ID              int64    `bun:"id,pk,autoincrement" json:"id"`
	ProductDesignID int64    `bun:"product_design_id,notnull" json:"product_design_id"`
	Text            string   `bun:"text,notnull" json:"text"`
	ImageURL        string   `bun:"image_url" json:"image_url,omitempty"`
}
