package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptpsports/clinic-facts/internal/eventfacts"
)

const fixtureYAML = `
products:
  - id: 101
    title: Philadelphia Winter Clinic
    price: 149
    stock_quantity: 8
    permalink_url: https://ptpsummercamps.com/product/philadelphia/
    attributes:
      date: "2026-01-15"
      city: Philadelphia
    meta:
      _ptp_state: PA
  - id: 102
    title: Sold Out Clinic
    in_stock: false
`

func writeFixture(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMemory(t *testing.T) {
	ctx := context.Background()
	m, err := LoadMemory(ctx, writeFixture(t, fixtureYAML))
	require.NoError(t, err)

	l, err := m.Listing(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, "Philadelphia Winter Clinic", l.Title)
	require.NotNil(t, l.Price)
	assert.Equal(t, 149.0, *l.Price)
	require.NotNil(t, l.StockQuantity)
	assert.Equal(t, 8, *l.StockQuantity)
	assert.True(t, l.InStock, "in_stock defaults to true")

	sold, err := m.Listing(ctx, 102)
	require.NoError(t, err)
	assert.False(t, sold.InStock)
	assert.Nil(t, sold.Price)

	city, err := m.Attribute(ctx, 101, eventfacts.AttrCity)
	require.NoError(t, err)
	assert.Equal(t, "Philadelphia", city)

	state, err := m.Metadata(ctx, 101, eventfacts.MetaState)
	require.NoError(t, err)
	assert.Equal(t, "PA", state)
}

func TestLoadMemoryJSON(t *testing.T) {
	path := writeFixture(t, `{"products": [{"id": 7, "title": "JSON Clinic", "attributes": {"city": "Camden"}}]}`)
	m, err := LoadMemory(context.Background(), path)
	require.NoError(t, err)

	ids, err := m.ListingIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, ids)
}

func TestReadFixtureErrors(t *testing.T) {
	_, err := ReadFixture(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = ReadFixture(writeFixture(t, "products:\n  - title: no id\n"))
	require.Error(t, err)

	_, err = ReadFixture(writeFixture(t, "products: [oops"))
	require.Error(t, err)
}
