package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/ptpsports/clinic-facts/internal/eventfacts"
)

// Memory is a map-backed Store. It backs tests and the CLI's fixture mode.
type Memory struct {
	mu       sync.RWMutex
	listings map[int64]eventfacts.Listing
	attrs    map[int64]map[string]string
	meta     map[int64]map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		listings: make(map[int64]eventfacts.Listing),
		attrs:    make(map[int64]map[string]string),
		meta:     make(map[int64]map[string]string),
	}
}

// Attribute returns a product attribute, "" when unset.
func (m *Memory) Attribute(ctx context.Context, productID int64, name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.attrs[productID][name], nil
}

// Metadata returns a metadata value, "" when unset.
func (m *Memory) Metadata(ctx context.Context, productID int64, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.meta[productID][key], nil
}

// Listing returns the product row or ErrNotFound.
func (m *Memory) Listing(ctx context.Context, productID int64) (eventfacts.Listing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	l, ok := m.listings[productID]
	if !ok {
		return eventfacts.Listing{}, fmt.Errorf("product %d: %w", productID, ErrNotFound)
	}
	return l, nil
}

// ListingIDs returns every product ID in ascending order.
func (m *Memory) ListingIDs(ctx context.Context) ([]int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]int64, 0, len(m.listings))
	for id := range m.listings {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// PutListing inserts or replaces a product row.
func (m *Memory) PutListing(ctx context.Context, l eventfacts.Listing) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listings[l.ID] = l
	return nil
}

// SetAttribute writes a product attribute.
func (m *Memory) SetAttribute(ctx context.Context, productID int64, name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.listings[productID]; !ok {
		return fmt.Errorf("product %d: %w", productID, ErrNotFound)
	}
	set(m.attrs, productID, name, value)
	return nil
}

// SetMetadata writes a metadata value.
func (m *Memory) SetMetadata(ctx context.Context, productID int64, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.listings[productID]; !ok {
		return fmt.Errorf("product %d: %w", productID, ErrNotFound)
	}
	set(m.meta, productID, key, value)
	return nil
}

// Ping always succeeds.
func (m *Memory) Ping(ctx context.Context) error { return nil }

func set(tbl map[int64]map[string]string, id int64, k, v string) {
	row, ok := tbl[id]
	if !ok {
		row = make(map[string]string)
		tbl[id] = row
	}
	row[k] = v
}
