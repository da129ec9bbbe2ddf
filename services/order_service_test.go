package services

import (
	"testing"

	"merchshop_server/lib"
	"merchshop_server/structs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(product, design string, qty, stock int, available bool, priceCents int64) structs.CartItemResponse {
	return structs.CartItemResponse{
		ProductName:       product,
		DesignName:        design,
		Quantity:          qty,
		StockQuantity:     stock,
		IsAvailable:       available,
		PriceAtOrderCents: priceCents,
	}
}

func TestValidateOrderLines(t *testing.T) {
	t.Run("all lines in stock", func(t *testing.T) {
		lines := []structs.CartItemResponse{
			line("Hoodie", "Dragon", 2, 5, true, 4500),
			line("Mug", "Logo", 1, 1, true, 1250),
		}
		assert.NoError(t, ValidateOrderLines(lines))
	})

	t.Run("empty", func(t *testing.T) {
		assert.NoError(t, ValidateOrderLines(nil))
	})

	t.Run("insufficient stock names the item", func(t *testing.T) {
		lines := []structs.CartItemResponse{
			line("Hoodie", "Dragon", 2, 5, true, 4500),
			line("Mug", "Logo", 2, 1, true, 1250),
		}
		err := ValidateOrderLines(lines)
		require.Error(t, err)
		assert.ErrorIs(t, err, lib.ErrInsufficientStock)
		assert.Contains(t, err.Error(), "Mug - Logo")
		assert.Contains(t, err.Error(), "requested 2, in stock 1")
	})

	t.Run("unavailable design", func(t *testing.T) {
		lines := []structs.CartItemResponse{
			line("Shirt", "Retired", 1, 10, false, 2000),
		}
		err := ValidateOrderLines(lines)
		require.Error(t, err)
		assert.ErrorIs(t, err, lib.ErrUnavailable)
		assert.Contains(t, err.Error(), "Shirt - Retired")
	})

	t.Run("unavailability wins over stock", func(t *testing.T) {
		lines := []structs.CartItemResponse{
			line("Shirt", "Retired", 5, 1, false, 2000),
		}
		assert.ErrorIs(t, ValidateOrderLines(lines), lib.ErrUnavailable)
	})
}

func TestComputeOrderTotal(t *testing.T) {
	lines := []structs.CartItemResponse{
		line("Hoodie", "Dragon", 2, 5, true, 4500),
		line("Mug", "Logo", 3, 10, true, 1250),
	}

	assert.Equal(t, int64(2*4500+3*1250), ComputeOrderTotal(lines))
	assert.Equal(t, int64(0), ComputeOrderTotal(nil))
}

func TestProductListCacheKey(t *testing.T) {
	minP := int64(1000)

	a := ProductListCacheKey(&structs.ProductListOptions{Category: "mugs", Page: 1, PageSize: 20})
	b := ProductListCacheKey(&structs.ProductListOptions{Category: "mugs", Page: 1, PageSize: 20})
	c := ProductListCacheKey(&structs.ProductListOptions{Category: "mugs", Page: 2, PageSize: 20})
	d := ProductListCacheKey(&structs.ProductListOptions{Category: "mugs", Page: 1, PageSize: 20, MinPriceCents: &minP})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)
}
