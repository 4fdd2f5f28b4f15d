package store

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ptpsports/clinic-facts/internal/eventfacts"
)

// Fixture is a file-backed snapshot of products with their attributes and
// metadata. YAML or JSON.
type Fixture struct {
	Products []FixtureProduct `yaml:"products"`
}

// FixtureProduct is one product in a Fixture.
type FixtureProduct struct {
	ID               int64             `yaml:"id"`
	Title            string            `yaml:"title"`
	ShortDescription string            `yaml:"short_description"`
	Description      string            `yaml:"description"`
	Price            *float64          `yaml:"price"`
	Currency         string            `yaml:"currency"`
	StockQuantity    *int              `yaml:"stock_quantity"`
	InStock          *bool             `yaml:"in_stock"`
	ImageURL         string            `yaml:"image_url"`
	PermalinkURL     string            `yaml:"permalink_url"`
	Attributes       map[string]string `yaml:"attributes"`
	Meta             map[string]string `yaml:"meta"`
}

// Listing converts the product row. InStock defaults to true.
func (p FixtureProduct) Listing() eventfacts.Listing {
	inStock := true
	if p.InStock != nil {
		inStock = *p.InStock
	}
	return eventfacts.Listing{
		ID:               p.ID,
		Title:            p.Title,
		ShortDescription: p.ShortDescription,
		Description:      p.Description,
		Price:            p.Price,
		Currency:         p.Currency,
		StockQuantity:    p.StockQuantity,
		InStock:          inStock,
		ImageURL:         p.ImageURL,
		PermalinkURL:     p.PermalinkURL,
	}
}

// ReadFixture parses a fixture file.
func ReadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	for i, p := range f.Products {
		if p.ID <= 0 {
			return nil, fmt.Errorf("parse fixture %s: product %d has no positive id", path, i)
		}
	}
	return &f, nil
}

// Import writes every fixture product into dst and returns the count.
func Import(ctx context.Context, dst Store, f *Fixture) (int, error) {
	for i, p := range f.Products {
		if err := dst.PutListing(ctx, p.Listing()); err != nil {
			return i, fmt.Errorf("put listing %d: %w", p.ID, err)
		}
		for name, v := range p.Attributes {
			if err := dst.SetAttribute(ctx, p.ID, name, v); err != nil {
				return i, fmt.Errorf("set attribute %s on %d: %w", name, p.ID, err)
			}
		}
		for key, v := range p.Meta {
			if err := dst.SetMetadata(ctx, p.ID, key, v); err != nil {
				return i, fmt.Errorf("set metadata %s on %d: %w", key, p.ID, err)
			}
		}
	}
	return len(f.Products), nil
}

// LoadMemory reads a fixture file into a fresh Memory store.
func LoadMemory(ctx context.Context, path string) (*Memory, error) {
	f, err := ReadFixture(path)
	if err != nil {
		return nil, err
	}
	m := NewMemory()
	if _, err := Import(ctx, m, f); err != nil {
		return nil, err
	}
	return m, nil
}
