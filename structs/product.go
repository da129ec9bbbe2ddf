package structs

// ProductListOptions are the public catalog filters parsed from query params.
type ProductListOptions struct {
	Category      string
	SearchTerm    string
	MinPriceCents *int64
	MaxPriceCents *int64
	AvailableOnly bool

	Page     int
	PageSize int

	SortBy        string
	SortDirection string
}

type CreateReviewRequest struct {
	Text     string `json:"text" validate:"required,min=1,max=2000"`
	ImageURL string `json:"image_url" validate:"omitempty,url"`
}
