package catalog

import (
	"testing"

	"github.com/localvendor/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("creates valid product", func(t *testing.T) {
		product, err := NewProduct("Notebook", decimal.NewFromFloat(5.50), 100)

		require.NoError(t, err)
		assert.Equal(t, "Notebook", product.Name)
		assert.True(t, product.Price.Equal(decimal.NewFromFloat(5.50)))
		assert.Equal(t, int64(100), product.Stock)
		assert.False(t, product.CreatedAt.IsZero())
	})

	t.Run("trims whitespace from name", func(t *testing.T) {
		product, err := NewProduct("  Pen  ", decimal.NewFromInt(2), 10)

		require.NoError(t, err)
		assert.Equal(t, "Pen", product.Name)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewProduct("   ", decimal.NewFromInt(1), 1)

		require.Error(t, err)
		domainErr, ok := err.(*shared.DomainError)
		require.True(t, ok)
		assert.Equal(t, shared.CodeValidation, domainErr.Code)
	})

	t.Run("rejects zero price", func(t *testing.T) {
		_, err := NewProduct("Pen", decimal.Zero, 1)
		assert.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewProduct("Pen", decimal.NewFromInt(-1), 1)
		assert.Error(t, err)
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		_, err := NewProduct("Pen", decimal.NewFromInt(1), -1)
		assert.Error(t, err)
	})

	t.Run("allows zero stock", func(t *testing.T) {
		product, err := NewProduct("Pen", decimal.NewFromInt(1), 0)

		require.NoError(t, err)
		assert.Equal(t, int64(0), product.Stock)
	})
}

func TestProduct_DecreaseStock(t *testing.T) {
	t.Run("decreases stock", func(t *testing.T) {
		product, _ := NewProduct("Pen", decimal.NewFromInt(2), 10)

		err := product.DecreaseStock(4)

		require.NoError(t, err)
		assert.Equal(t, int64(6), product.Stock)
	})

	t.Run("allows draining stock to zero", func(t *testing.T) {
		product, _ := NewProduct("Pen", decimal.NewFromInt(2), 10)

		err := product.DecreaseStock(10)

		require.NoError(t, err)
		assert.Equal(t, int64(0), product.Stock)
	})

	t.Run("rejects qty exceeding stock and leaves it unchanged", func(t *testing.T) {
		product, _ := NewProduct("Pen", decimal.NewFromInt(2), 10)

		err := product.DecreaseStock(11)

		require.Error(t, err)
		domainErr, ok := err.(*shared.DomainError)
		require.True(t, ok)
		assert.Equal(t, shared.CodeInsufficientStock, domainErr.Code)
		assert.Contains(t, domainErr.Message, "Pen")
		assert.Equal(t, int64(10), product.Stock)
	})

	t.Run("rejects non-positive qty", func(t *testing.T) {
		product, _ := NewProduct("Pen", decimal.NewFromInt(2), 10)

		assert.Error(t, product.DecreaseStock(0))
		assert.Error(t, product.DecreaseStock(-3))
		assert.Equal(t, int64(10), product.Stock)
	})
}

func TestProduct_IncreaseStock(t *testing.T) {
	product, _ := NewProduct("Pen", decimal.NewFromInt(2), 1)

	require.NoError(t, product.IncreaseStock(5))
	assert.Equal(t, int64(6), product.Stock)

	assert.Error(t, product.IncreaseStock(0))
}

func TestProduct_HasStock(t *testing.T) {
	product, _ := NewProduct("Pen", decimal.NewFromInt(2), 5)

	assert.True(t, product.HasStock(5))
	assert.True(t, product.HasStock(1))
	assert.False(t, product.HasStock(6))
}
