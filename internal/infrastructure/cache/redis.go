// Package cache implementa la caché de productos sobre Redis y el decorador de catálogo que la usa.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/speed-edit-api/internal/domain/entity"
	"github.com/jhoicas/speed-edit-api/pkg/config"
)

const keyPrefix = "speed-edit:product:"

// NewRedisClient abre el cliente y verifica la conexión con PING.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// RedisProductCache guarda productos serializados en JSON con vencimiento.
type RedisProductCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisProductCache construye la caché. client puede ser *redis.Client o un pipeline.
func NewRedisProductCache(client redis.Cmdable, ttl time.Duration) *RedisProductCache {
	return &RedisProductCache{client: client, ttl: ttl}
}

// Get devuelve (nil, false, nil) cuando la clave no existe.
func (c *RedisProductCache) Get(ctx context.Context, id int64) (*entity.Product, bool, error) {
	raw, err := c.client.Get(ctx, productKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	p, err := decodeProduct(raw)
	if err != nil {
		return nil, false, err
	}
	return p, true, nil
}

func (c *RedisProductCache) Set(ctx context.Context, p *entity.Product) error {
	raw, err := encodeProduct(p)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, productKey(p.ID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *RedisProductCache) Delete(ctx context.Context, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, productKey(id))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func productKey(id int64) string {
	return keyPrefix + strconv.FormatInt(id, 10)
}

// cachedProduct forma serializada; desacopla la caché de cambios en entity.Product.
type cachedProduct struct {
	ID            int64           `json:"id"`
	ParentID      int64           `json:"parent_id"`
	Type          string          `json:"type"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	Location      string          `json:"location"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func encodeProduct(p *entity.Product) ([]byte, error) {
	raw, err := json.Marshal(cachedProduct{
		ID:            p.ID,
		ParentID:      p.ParentID,
		Type:          p.Type,
		SKU:           p.SKU,
		Name:          p.Name,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		Location:      p.Location,
		UpdatedAt:     p.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("encode product: %w", err)
	}
	return raw, nil
}

func decodeProduct(raw []byte) (*entity.Product, error) {
	var c cachedProduct
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode product: %w", err)
	}
	return &entity.Product{
		ID:            c.ID,
		ParentID:      c.ParentID,
		Type:          c.Type,
		SKU:           c.SKU,
		Name:          c.Name,
		Price:         c.Price,
		StockQuantity: c.StockQuantity,
		Location:      c.Location,
		UpdatedAt:     c.UpdatedAt,
	}, nil
}
