// Package db provides a pgxpool-based connection pool with prepared statement
// registration, health checking, and schema setup.
package db

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ptpsports/clinic-facts/internal/config"
)

//go:embed schema.sql
var schemaSQL string

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	// Register prepared statements on every new connection.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// Migrate applies schema.sql over a dedicated connection. It runs before
// any pool exists because prepared statements need the tables in place.
func Migrate(ctx context.Context, databaseURL string) error {
	conn, err := pgx.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Prepared statement names.
const (
	StmtHealthCheck    = "health_check"
	StmtProductListing = "product_listing"
	StmtProductAttr    = "product_attribute"
	StmtProductMeta    = "product_meta"
	StmtUpsertMeta     = "upsert_product_meta"
	StmtUpsertAttr     = "upsert_product_attribute"
	StmtUpsertProduct  = "upsert_product"
	StmtListProductIDs = "list_product_ids"
	StmtTouchProduct   = "touch_product"
)

// registerPreparedStatements registers all statements the API and CLI use.
func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	stmts := map[string]string{
		// Health
		StmtHealthCheck: "SELECT 1",

		// Listing row (price cast so it scans into *float64)
		StmtProductListing: `SELECT id, title, short_description, description, price::float8,
			currency, stock_quantity, in_stock, image_url, permalink_url
			FROM products WHERE id = $1`,
		StmtListProductIDs: "SELECT id FROM products ORDER BY id",

		// Field lookups
		StmtProductAttr: "SELECT value FROM product_attributes WHERE product_id = $1 AND name = $2",
		StmtProductMeta: "SELECT meta_value FROM product_meta WHERE product_id = $1 AND meta_key = $2",

		// Writes
		StmtUpsertMeta: `INSERT INTO product_meta (product_id, meta_key, meta_value, updated_at)
			VALUES ($1, $2, $3, NOW())
			ON CONFLICT (product_id, meta_key)
			DO UPDATE SET meta_value = EXCLUDED.meta_value, updated_at = NOW()`,
		StmtUpsertAttr: `INSERT INTO product_attributes (product_id, name, value)
			VALUES ($1, $2, $3)
			ON CONFLICT (product_id, name) DO UPDATE SET value = EXCLUDED.value`,
		StmtUpsertProduct: `INSERT INTO products (id, title, short_description, description, price,
			currency, stock_quantity, in_stock, image_url, permalink_url, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
			ON CONFLICT (id) DO UPDATE SET
				title = EXCLUDED.title,
				short_description = EXCLUDED.short_description,
				description = EXCLUDED.description,
				price = EXCLUDED.price,
				currency = EXCLUDED.currency,
				stock_quantity = EXCLUDED.stock_quantity,
				in_stock = EXCLUDED.in_stock,
				image_url = EXCLUDED.image_url,
				permalink_url = EXCLUDED.permalink_url,
				updated_at = NOW()`,
		StmtTouchProduct: "UPDATE products SET updated_at = NOW() WHERE id = $1",
	}

	for name, sql := range stmts {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
