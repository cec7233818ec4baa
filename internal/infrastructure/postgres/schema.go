package postgres

import (
	"context"
	"fmt"
)

// Historial de ediciones rápidas. Solo se inserta; nunca se actualiza ni borra.
var editLogDDL = []string{
	`CREATE TABLE IF NOT EXISTS speed_edit_log (
		id           BIGSERIAL PRIMARY KEY,
		product_id   BIGINT       NOT NULL,
		variation_id BIGINT       NOT NULL DEFAULT 0,
		action       VARCHAR(100) NOT NULL,
		old_value    VARCHAR(255) NOT NULL DEFAULT '',
		new_value    VARCHAR(255) NOT NULL DEFAULT '',
		user_id      BIGINT       NOT NULL,
		log_time     TIMESTAMPTZ  NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_speed_edit_log_product_time
		ON speed_edit_log (product_id, log_time DESC)`,
}

// Catálogo y operadores. En producción el catálogo lo administra la tienda; el seed lo crea para demos.
var catalogDDL = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id             BIGSERIAL PRIMARY KEY,
		parent_id      BIGINT        NOT NULL DEFAULT 0,
		type           VARCHAR(20)   NOT NULL,
		sku            VARCHAR(100)  NOT NULL DEFAULT '',
		name           VARCHAR(255)  NOT NULL,
		price          NUMERIC(14,2) NOT NULL DEFAULT 0,
		stock_quantity INTEGER       NOT NULL DEFAULT 0,
		menu_order     INTEGER       NOT NULL DEFAULT 0,
		updated_at     TIMESTAMPTZ   NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_parent ON products (parent_id, menu_order, id)`,
	`CREATE TABLE IF NOT EXISTS product_meta (
		product_id BIGINT       NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		meta_key   VARCHAR(255) NOT NULL,
		meta_value TEXT         NOT NULL DEFAULT '',
		PRIMARY KEY (product_id, meta_key)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		email         VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		name          VARCHAR(200) NOT NULL,
		role          VARCHAR(20)  NOT NULL,
		status        VARCHAR(20)  NOT NULL DEFAULT 'active',
		created_at    TIMESTAMPTZ  NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ  NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema crea la tabla del historial si no existe. Se puede llamar en cada arranque.
func EnsureSchema(ctx context.Context, q Querier) error {
	return execAll(ctx, q, editLogDDL)
}

// EnsureCatalogSchema crea las tablas de catálogo y operadores (uso: cmd/seed).
func EnsureCatalogSchema(ctx context.Context, q Querier) error {
	return execAll(ctx, q, catalogDDL)
}

func execAll(ctx context.Context, q Querier, stmts []string) error {
	for _, stmt := range stmts {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
