package handling

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProductListOptionsDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/products", nil)

	opts, err := ParseProductListOptions(r)
	require.NoError(t, err)
	assert.Zero(t, opts.Page)
	assert.Zero(t, opts.PageSize)
	assert.Nil(t, opts.MinPriceCents)
	assert.Nil(t, opts.MaxPriceCents)
	assert.False(t, opts.AvailableOnly)
}

func TestParseProductListOptionsFull(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/api/products?page=2&page_size=25&category=mugs&search=dragon&min_price=1000&max_price=5000&available=true&sort_by=price&sort_direction=desc", nil)

	opts, err := ParseProductListOptions(r)
	require.NoError(t, err)

	assert.Equal(t, 2, opts.Page)
	assert.Equal(t, 25, opts.PageSize)
	assert.Equal(t, "mugs", opts.Category)
	assert.Equal(t, "dragon", opts.SearchTerm)
	require.NotNil(t, opts.MinPriceCents)
	require.NotNil(t, opts.MaxPriceCents)
	assert.Equal(t, int64(1000), *opts.MinPriceCents)
	assert.Equal(t, int64(5000), *opts.MaxPriceCents)
	assert.True(t, opts.AvailableOnly)
	assert.Equal(t, "price", opts.SortBy)
	assert.Equal(t, "DESC", opts.SortDirection)
}

func TestParseProductListOptionsInvalidValues(t *testing.T) {
	for _, q := range []string{
		"page=abc",
		"page_size=abc",
		"min_price=cheap",
		"max_price=1e9",
		"available=maybe",
	} {
		r := httptest.NewRequest("GET", "/api/products?"+q, nil)
		_, err := ParseProductListOptions(r)
		assert.Error(t, err, q)
	}
}
