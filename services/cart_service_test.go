package services

import (
	"testing"

	"merchshop_server/lib"
	"merchshop_server/structs/tables"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func design(product, designName string, stock int, available bool) *tables.ProductDesign {
	return &tables.ProductDesign{
		Quantity:    stock,
		IsAvailable: available,
		Product:     &tables.Product{Name: product},
		Design:      &tables.Design{Name: designName},
	}
}

func TestMergeCartQuantity(t *testing.T) {
	t.Run("fresh add within stock", func(t *testing.T) {
		merged, err := MergeCartQuantity(0, 2, design("Hoodie", "Dragon", 5, true))
		require.NoError(t, err)
		assert.Equal(t, 2, merged)
	})

	t.Run("merge up to exact stock", func(t *testing.T) {
		merged, err := MergeCartQuantity(3, 2, design("Hoodie", "Dragon", 5, true))
		require.NoError(t, err)
		assert.Equal(t, 5, merged)
	})

	t.Run("merged quantity over stock names the item", func(t *testing.T) {
		_, err := MergeCartQuantity(4, 2, design("Hoodie", "Dragon", 5, true))
		require.Error(t, err)
		assert.ErrorIs(t, err, lib.ErrInsufficientStock)
		assert.Contains(t, err.Error(), "Hoodie - Dragon")
		assert.Contains(t, err.Error(), "requested 6, in stock 5")
	})

	t.Run("fresh add over stock", func(t *testing.T) {
		_, err := MergeCartQuantity(0, 2, design("Mug", "Logo", 1, true))
		assert.ErrorIs(t, err, lib.ErrInsufficientStock)
	})

	t.Run("unavailable design", func(t *testing.T) {
		_, err := MergeCartQuantity(0, 1, design("Shirt", "Retired", 10, false))
		require.Error(t, err)
		assert.ErrorIs(t, err, lib.ErrUnavailable)
		assert.Contains(t, err.Error(), "Shirt - Retired")
	})

	t.Run("unavailability wins over stock", func(t *testing.T) {
		_, err := MergeCartQuantity(4, 2, design("Shirt", "Retired", 5, false))
		assert.ErrorIs(t, err, lib.ErrUnavailable)
	})
}

func TestCartQuantityRemoves(t *testing.T) {
	assert.True(t, CartQuantityRemoves(0))
	assert.True(t, CartQuantityRemoves(-3))
	assert.False(t, CartQuantityRemoves(1))
}
