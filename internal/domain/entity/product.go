package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de producto del catálogo.
const (
	ProductTypeSimple    = "simple"
	ProductTypeVariable  = "variable"
	ProductTypeVariation = "variation"
)

// Product representa un producto del catálogo: simple, variable (con variaciones) o una variación.
// Una variación siempre tiene ParentID distinto de cero.
type Product struct {
	ID            int64
	ParentID      int64 // 0 si es un producto de primer nivel
	Type          string
	SKU           string
	Name          string
	Price         decimal.Decimal
	StockQuantity int
	Location      string // metadato "location" (ubicación en bodega)
	UpdatedAt     time.Time
}

// IsVariation indica si el producto cuelga de un producto variable.
func (p *Product) IsVariation() bool {
	return p.ParentID != 0
}

// TopLevelID devuelve el ID del producto de primer nivel (el padre si es variación).
func (p *Product) TopLevelID() int64 {
	if p.ParentID != 0 {
		return p.ParentID
	}
	return p.ID
}
