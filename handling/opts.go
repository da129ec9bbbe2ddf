package handling

import (
	"merchshop_server/structs"
	"net/http"
	"strconv"
	"strings"
)

// ParseProductListOptions parses HTTP query parameters into ProductListOptions
func ParseProductListOptions(r *http.Request) (*structs.ProductListOptions, error) {
	query := r.URL.Query()

	// Early return if no query params
	if len(query) == 0 {
		return &structs.ProductListOptions{}, nil
	}

	opts := &structs.ProductListOptions{}
	var err error
	var valInt int
	var valBool bool

	// Parse pagination parameters
	if page := query.Get("page"); page != "" {
		if valInt, err = strconv.Atoi(page); err != nil {
			return nil, err
		}
		opts.Page = valInt
	}

	if pageSize := query.Get("page_size"); pageSize != "" {
		if valInt, err = strconv.Atoi(pageSize); err != nil {
			return nil, err
		}
		opts.PageSize = valInt
	}

	if category := query.Get("category"); category != "" {
		opts.Category = category
	}

	if searchTerm := query.Get("search"); searchTerm != "" {
		opts.SearchTerm = searchTerm
	}

	// Parse price filters (cents)
	if minPrice := query.Get("min_price"); minPrice != "" {
		minCents, err := strconv.ParseInt(minPrice, 10, 64)
		if err != nil {
			return nil, err
		}
		opts.MinPriceCents = &minCents
	}

	if maxPrice := query.Get("max_price"); maxPrice != "" {
		maxCents, err := strconv.ParseInt(maxPrice, 10, 64)
		if err != nil {
			return nil, err
		}
		opts.MaxPriceCents = &maxCents
	}

	if available := query.Get("available"); available != "" {
		if valBool, err = strconv.ParseBool(available); err != nil {
			return nil, err
		}
		opts.AvailableOnly = valBool
	}

	// Parse sorting parameters
	if sortBy := query.Get("sort_by"); sortBy != "" {
		opts.SortBy = sortBy
	}

	if sortDirection := query.Get("sort_direction"); sortDirection != "" {
		opts.SortDirection = strings.ToUpper(sortDirection)
	}

	return opts, nil
}
