package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/speed-edit-api/internal/domain"
	"github.com/jhoicas/speed-edit-api/internal/domain/entity"
	"github.com/jhoicas/speed-edit-api/internal/domain/repository"
)

// LocationMetaKey clave de metadato donde se guarda la ubicación física del producto.
const LocationMetaKey = "location"

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo implementación de CatalogRepository sobre PostgreSQL (usable con pool o tx).
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador del catálogo. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// GetByID obtiene un producto con su ubicación. (nil, nil) si no existe.
func (r *CatalogRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `
		SELECT p.id, p.parent_id, p.type, p.sku, p.name, p.price, p.stock_quantity,
		       COALESCE(m.meta_value, ''), p.updated_at
		FROM products p
		LEFT JOIN product_meta m ON m.product_id = p.id AND m.meta_key = $2
		WHERE p.id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id, LocationMetaKey).Scan(
		&p.ID, &p.ParentID, &p.Type, &p.SKU, &p.Name, &p.Price, &p.StockQuantity,
		&p.Location, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetChildren devuelve los IDs de las variaciones de un producto en su orden de menú.
func (r *CatalogRepo) GetChildren(ctx context.Context, parentID int64) ([]int64, error) {
	query := `
		SELECT id FROM products
		WHERE parent_id = $1 AND type = $2
		ORDER BY menu_order, id`
	rows, err := r.q.Query(ctx, query, parentID, entity.ProductTypeVariation)
	if err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("scan children: %w", err)
	}
	return ids, nil
}

// UpdateStock guarda la cantidad tal cual (puede ser negativa) y devuelve la almacenada.
func (r *CatalogRepo) UpdateStock(ctx context.Context, product *entity.Product, quantity int) (int, error) {
	query := `
		UPDATE products SET stock_quantity = $2, updated_at = now()
		WHERE id = $1
		RETURNING stock_quantity`
	var stored int
	err := r.q.QueryRow(ctx, query, product.ID, quantity).Scan(&stored)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrProductNotFound
		}
		return 0, fmt.Errorf("update stock: %w", err)
	}
	return stored, nil
}

// GetLocation devuelve la ubicación del producto; vacío si nunca se asignó.
func (r *CatalogRepo) GetLocation(ctx context.Context, productID int64) (string, error) {
	query := `SELECT meta_value FROM product_meta WHERE product_id = $1 AND meta_key = $2`
	var loc string
	err := r.q.QueryRow(ctx, query, productID, LocationMetaKey).Scan(&loc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get location: %w", err)
	}
	return loc, nil
}

// SetLocation inserta o reemplaza la ubicación del producto.
func (r *CatalogRepo) SetLocation(ctx context.Context, productID int64, location string) error {
	query := `
		INSERT INTO product_meta (product_id, meta_key, meta_value)
		VALUES ($1, $2, $3)
		ON CONFLICT (product_id, meta_key)
		DO UPDATE SET meta_value = EXCLUDED.meta_value`
	if _, err := r.q.Exec(ctx, query, productID, LocationMetaKey, location); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProductNotFound
		}
		return fmt.Errorf("set location: %w", err)
	}
	return nil
}

// Create inserta un producto del catálogo (uso: cmd/seed). Asigna ID y UpdatedAt.
func (r *CatalogRepo) Create(ctx context.Context, p *entity.Product, menuOrder int) error {
	query := `
		INSERT INTO products (parent_id, type, sku, name, price, stock_quantity, menu_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, updated_at`
	err := r.q.QueryRow(ctx, query,
		p.ParentID, p.Type, p.SKU, p.Name, p.Price, p.StockQuantity, menuOrder,
	).Scan(&p.ID, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	if p.Location != "" {
		return r.SetLocation(ctx, p.ID, p.Location)
	}
	return nil
}
