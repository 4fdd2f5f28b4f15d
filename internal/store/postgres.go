package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ptpsports/clinic-facts/internal/db"
	"github.com/ptpsports/clinic-facts/internal/eventfacts"
)

// Postgres is a Store over a pool prepared by db.New.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres wraps pool.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// Attribute returns a product attribute, "" when unset.
func (p *Postgres) Attribute(ctx context.Context, productID int64, name string) (string, error) {
	return p.lookup(ctx, db.StmtProductAttr, productID, name)
}

// Metadata returns a metadata value, "" when unset.
func (p *Postgres) Metadata(ctx context.Context, productID int64, key string) (string, error) {
	return p.lookup(ctx, db.StmtProductMeta, productID, key)
}

func (p *Postgres) lookup(ctx context.Context, stmt string, productID int64, name string) (string, error) {
	var v string
	err := p.pool.QueryRow(ctx, stmt, productID, name).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%s(%d, %q): %w", stmt, productID, name, err)
	}
	return v, nil
}

// Listing returns the product row or ErrNotFound.
func (p *Postgres) Listing(ctx context.Context, productID int64) (eventfacts.Listing, error) {
	var l eventfacts.Listing
	err := p.pool.QueryRow(ctx, db.StmtProductListing, productID).Scan(
		&l.ID, &l.Title, &l.ShortDescription, &l.Description, &l.Price,
		&l.Currency, &l.StockQuantity, &l.InStock, &l.ImageURL, &l.PermalinkURL,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return eventfacts.Listing{}, fmt.Errorf("product %d: %w", productID, ErrNotFound)
	}
	if err != nil {
		return eventfacts.Listing{}, fmt.Errorf("get product %d: %w", productID, err)
	}
	return l, nil
}

// ListingIDs returns every product ID in ascending order.
func (p *Postgres) ListingIDs(ctx context.Context) ([]int64, error) {
	rows, err := p.pool.Query(ctx, db.StmtListProductIDs)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("scan product ids: %w", err)
	}
	return ids, nil
}

// PutListing inserts or updates a product row.
func (p *Postgres) PutListing(ctx context.Context, l eventfacts.Listing) error {
	_, err := p.pool.Exec(ctx, db.StmtUpsertProduct,
		l.ID, l.Title, l.ShortDescription, l.Description, l.Price,
		l.Currency, l.StockQuantity, l.InStock, l.ImageURL, l.PermalinkURL,
	)
	if err != nil {
		return fmt.Errorf("upsert product %d: %w", l.ID, err)
	}
	return nil
}

// SetAttribute writes a product attribute.
func (p *Postgres) SetAttribute(ctx context.Context, productID int64, name, value string) error {
	return p.write(ctx, db.StmtUpsertAttr, productID, name, value)
}

// SetMetadata writes a metadata value and bumps the product's updated_at.
func (p *Postgres) SetMetadata(ctx context.Context, productID int64, key, value string) error {
	return p.write(ctx, db.StmtUpsertMeta, productID, key, value)
}

func (p *Postgres) write(ctx context.Context, stmt string, productID int64, name, value string) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, db.StmtTouchProduct, productID)
	if err != nil {
		return fmt.Errorf("touch product %d: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %d: %w", productID, ErrNotFound)
	}
	if _, err := tx.Exec(ctx, stmt, productID, name, value); err != nil {
		return fmt.Errorf("%s(%d, %q): %w", stmt, productID, name, err)
	}
	return tx.Commit(ctx)
}

// Ping verifies connectivity with the prepared health check.
func (p *Postgres) Ping(ctx context.Context) error {
	var n int
	return p.pool.QueryRow(ctx, db.StmtHealthCheck).Scan(&n)
}
