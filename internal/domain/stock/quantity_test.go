package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/speed-edit-api/internal/domain"
	"github.com/jhoicas/speed-edit-api/internal/domain/entity"
	"github.com/jhoicas/speed-edit-api/internal/domain/stock"
)

func TestNewQuantity(t *testing.T) {
	cases := []struct {
		name       string
		action     entity.StockAction
		current    int
		value      int
		openOrders int
		want       int
	}{
		{"suma", entity.StockActionAdd, 10, 5, 0, 15},
		{"resta", entity.StockActionDelete, 3, 1, 0, 2},
		{"resta bajo cero no se recorta", entity.StockActionDelete, 2, 5, 0, -3},
		{"reemplazo ignora el actual", entity.StockActionReplace, 7, 20, 4, 16},
		{"reemplazo puede quedar negativo", entity.StockActionReplace, 7, 2, 4, -2},
		{"suma ignora pedidos abiertos", entity.StockActionAdd, 1, 1, 99, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := stock.NewQuantity(tc.action, tc.current, tc.value, tc.openOrders)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewQuantity_AccionSinCantidad(t *testing.T) {
	got, err := stock.NewQuantity(entity.StockActionLocation, 9, 1, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidAction)
	assert.Equal(t, 9, got)

	_, err = stock.NewQuantity("", 9, 1, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidAction)
}

func TestNewQuantity_FueraDeRango(t *testing.T) {
	got, err := stock.NewQuantity(entity.StockActionAdd, stock.MaxQuantity, 1, 0)
	assert.ErrorIs(t, err, domain.ErrQuantityOutOfRange)
	assert.Equal(t, stock.MaxQuantity, got, "devuelve la cantidad actual sin cambios")

	_, err = stock.NewQuantity(entity.StockActionDelete, stock.MinQuantity, 1, 0)
	assert.ErrorIs(t, err, domain.ErrQuantityOutOfRange)

	_, err = stock.NewQuantity(entity.StockActionReplace, 0, stock.MinQuantity, 1)
	assert.ErrorIs(t, err, domain.ErrQuantityOutOfRange)

	got, err = stock.NewQuantity(entity.StockActionAdd, stock.MaxQuantity-1, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, stock.MaxQuantity, got)
}

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{" 12 ", 12, true},
		{"-4", -4, true},
		{"2147483647", 2147483647, true},
		{"2147483648", 0, false},
		{"3000000000", 0, false},
		{"-3000000000", 0, false},
		{"1.5", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := stock.ParseQuantity(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}
