package cache

import (
	"context"

	"github.com/jhoicas/speed-edit-api/internal/domain/entity"
	"github.com/jhoicas/speed-edit-api/internal/domain/repository"
	"github.com/jhoicas/speed-edit-api/pkg/logger"
)

// ProductCache almacén de productos por ID.
type ProductCache interface {
	Get(ctx context.Context, id int64) (*entity.Product, bool, error)
	Set(ctx context.Context, p *entity.Product) error
	Delete(ctx context.Context, ids ...int64) error
}

var _ repository.CatalogRepository = (*CachedCatalog)(nil)

// CachedCatalog decorador read-through sobre el catálogo.
// Las escrituras invalidan el producto y su padre. Un fallo de la caché nunca corta la operación:
// se registra y se sigue contra la base de datos.
type CachedCatalog struct {
	next  repository.CatalogRepository
	cache ProductCache
	log   *logger.Logger
}

// NewCachedCatalog envuelve next con la caché dada.
func NewCachedCatalog(next repository.CatalogRepository, cache ProductCache, log *logger.Logger) *CachedCatalog {
	if log == nil {
		log = logger.Nop()
	}
	return &CachedCatalog{next: next, cache: cache, log: log}
}

func (c *CachedCatalog) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	if p, ok, err := c.cache.Get(ctx, id); err != nil {
		c.log.Warn().Err(err).Int64("product_id", id).Msg("caché de productos no disponible")
	} else if ok {
		return p, nil
	}
	p, err := c.next.GetByID(ctx, id)
	if err != nil || p == nil {
		return p, err
	}
	if err := c.cache.Set(ctx, p); err != nil {
		c.log.Warn().Err(err).Int64("product_id", id).Msg("no se pudo guardar producto en caché")
	}
	return p, nil
}

func (c *CachedCatalog) GetChildren(ctx context.Context, parentID int64) ([]int64, error) {
	return c.next.GetChildren(ctx, parentID)
}

func (c *CachedCatalog) UpdateStock(ctx context.Context, product *entity.Product, quantity int) (int, error) {
	stored, err := c.next.UpdateStock(ctx, product, quantity)
	c.invalidate(ctx, product.ID, product.ParentID)
	return stored, err
}

func (c *CachedCatalog) GetLocation(ctx context.Context, productID int64) (string, error) {
	return c.next.GetLocation(ctx, productID)
}

func (c *CachedCatalog) SetLocation(ctx context.Context, productID int64, location string) error {
	err := c.next.SetLocation(ctx, productID, location)
	c.invalidate(ctx, productID)
	return err
}

// invalidate borra las claves aunque la escritura haya fallado: el estado en DB es incierto.
func (c *CachedCatalog) invalidate(ctx context.Context, ids ...int64) {
	keys := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id > 0 {
			keys = append(keys, id)
		}
	}
	if err := c.cache.Delete(ctx, keys...); err != nil {
		c.log.Warn().Err(err).Ints64("product_ids", keys).Msg("no se pudo invalidar caché de productos")
	}
}
