package repository

import (
	"context"

	"github.com/jhoicas/speed-edit-api/internal/domain/entity"
)

// CatalogRepository define el puerto hacia el catálogo de productos (DIP).
// El catálogo es la única fuente de verdad del stock; UpdateStock devuelve la cantidad realmente guardada.
type CatalogRepository interface {
	// GetByID devuelve (nil, nil) si el producto no existe.
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetChildren(ctx context.Context, parentID int64) ([]int64, error)
	UpdateStock(ctx context.Context, product *entity.Product, quantity int) (int, error)
	GetLocation(ctx context.Context, productID int64) (string, error)
	SetLocation(ctx context.Context, productID int64, location string) error
}
