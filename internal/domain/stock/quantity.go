package stock

import (
	"math"
	"strconv"
	"strings"

	"github.com/jhoicas/speed-edit-api/internal/domain"
	"github.com/jhoicas/speed-edit-api/internal/domain/entity"
)

// Rango de la columna stock_quantity (INTEGER de PostgreSQL).
const (
	MinQuantity = math.MinInt32
	MaxQuantity = math.MaxInt32
)

// NewQuantity calcula la nueva cantidad en stock (servicio de dominio).
//
//	add_stock     = actual + valor
//	delete_stock  = actual - valor
//	replace_stock = valor - pedidos abiertos
//
// No se recorta a cero: un resultado negativo se persiste tal cual.
// Un resultado que no cabe en la columna devuelve ErrQuantityOutOfRange.
func NewQuantity(action entity.StockAction, current, value, openOrders int) (int, error) {
	var next int64
	switch action {
	case entity.StockActionAdd:
		next = int64(current) + int64(value)
	case entity.StockActionDelete:
		next = int64(current) - int64(value)
	case entity.StockActionReplace:
		next = int64(value) - int64(openOrders)
	default:
		return current, domain.ErrInvalidAction
	}
	if next < MinQuantity || next > MaxQuantity {
		return current, domain.ErrQuantityOutOfRange
	}
	return int(next), nil
}

// ParseQuantity interpreta una cantidad entera que cabe en la columna de stock.
func ParseQuantity(s string) (int, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}
