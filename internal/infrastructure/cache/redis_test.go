package cache

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/speed-edit-api/internal/domain/entity"
)

func TestProductKey(t *testing.T) {
	assert.Equal(t, "speed-edit:product:42", productKey(42))
}

func TestEncodeDecodeProduct(t *testing.T) {
	in := &entity.Product{
		ID: 3, ParentID: 2, Type: entity.ProductTypeVariation, SKU: "CAM-01-M", Name: "Camisa M",
		Price: decimal.RequireFromString("49900.50"), StockQuantity: -2, Location: "A-1",
		UpdatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	raw, err := encodeProduct(in)
	require.NoError(t, err)

	out, err := decodeProduct(raw)
	require.NoError(t, err)
	assert.True(t, in.Price.Equal(out.Price))
	out.Price = in.Price
	assert.Equal(t, in, out)
}

func TestDecodeProduct_Invalido(t *testing.T) {
	_, err := decodeProduct([]byte("{no-json"))
	assert.Error(t, err)
}
