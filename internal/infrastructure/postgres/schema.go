package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaDDL esquema mínimo del ledger. stock_movements no lleva FK hacia
// inventory_items: la historia debe sobrevivir al borrado del ítem.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS inventory_items (
	id            text PRIMARY KEY,
	sku           text NOT NULL UNIQUE,
	name          text NOT NULL,
	description   text NOT NULL DEFAULT '',
	category      text NOT NULL DEFAULT '',
	current_stock integer NOT NULL CHECK (current_stock >= 0),
	minimum_stock integer NOT NULL CHECK (minimum_stock >= 0),
	cost_price    numeric(14,2) NOT NULL DEFAULT 0,
	selling_price numeric(14,2) NOT NULL DEFAULT 0,
	warehouse_id  text NOT NULL DEFAULT '',
	supplier_id   text NOT NULL DEFAULT '',
	created_at    timestamptz NOT NULL,
	updated_at    timestamptz NOT NULL
);

CREATE TABLE IF NOT EXISTS stock_movements (
	id              text PRIMARY KEY,
	sku             text NOT NULL,
	delta           integer NOT NULL,
	resulting_stock integer NOT NULL CHECK (resulting_stock >= 0),
	reason          text NOT NULL,
	actor           text NOT NULL DEFAULT '',
	created_at      timestamptz NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_stock_movements_sku_created
	ON stock_movements (sku, created_at DESC);

CREATE INDEX IF NOT EXISTS idx_inventory_items_category
	ON inventory_items (category);
`

// EnsureSchema crea las tablas del ledger si no existen (arranque idempotente).
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
