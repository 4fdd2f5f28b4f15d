// Package store provides content store implementations: product listings,
// structured attributes, and _ptp_* post metadata.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/ptpsports/clinic-facts/internal/eventfacts"
)

// ErrNotFound is returned when a product does not exist.
var ErrNotFound = errors.New("product not found")

// Store is the full content store: the read side consumed by the
// normalizer plus the small admin write path.
type Store interface {
	eventfacts.FieldSource

	Listing(ctx context.Context, productID int64) (eventfacts.Listing, error)
	ListingIDs(ctx context.Context) ([]int64, error)
	PutListing(ctx context.Context, l eventfacts.Listing) error

	SetAttribute(ctx context.Context, productID int64, name, value string) error
	SetMetadata(ctx context.Context, productID int64, key, value string) error

	Ping(ctx context.Context) error
}

// Schedule reads and decodes the stored agenda. A missing or undecodable
// value yields nil so callers fall back to the default agenda.
func Schedule(ctx context.Context, s eventfacts.FieldSource, productID int64) ([]eventfacts.ScheduleItem, error) {
	raw, err := s.Metadata(ctx, productID, eventfacts.MetaSchedule)
	if err != nil {
		return nil, fmt.Errorf("read schedule: %w", err)
	}
	if raw == "" {
		return nil, nil
	}
	var items []eventfacts.ScheduleItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, nil
	}
	return items, nil
}

// SetSchedule cleans and stores the agenda for a product.
func SetSchedule(ctx context.Context, s Store, productID int64, items []eventfacts.ScheduleItem) ([]eventfacts.ScheduleItem, error) {
	cleaned := eventfacts.CleanSchedule(items)
	data, err := json.Marshal(cleaned)
	if err != nil {
		return nil, fmt.Errorf("encode schedule: %w", err)
	}
	if err := s.SetMetadata(ctx, productID, eventfacts.MetaSchedule, string(data)); err != nil {
		return nil, err
	}
	return cleaned, nil
}

// LocationUpdate carries admin edits to the location box. Nil fields are
// left untouched.
type LocationUpdate struct {
	VenueName   *string `json:"venue_name"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Zip         *string `json:"zip"`
	ParkingInfo *string `json:"parking_info"`
	MapsURL     *string `json:"google_maps_url"`
	MapsEmbed   *string `json:"google_maps_embed"`
}

// ApplyLocation sanitizes and writes a LocationUpdate. Text fields are
// stripped of markup, parking info keeps line breaks, the maps URL must be
// http(s), and embed code is reduced to a Google Maps iframe.
func ApplyLocation(ctx context.Context, s Store, productID int64, u LocationUpdate) error {
	writes := []struct {
		key   string
		value *string
		clean func(string) string
	}{
		{eventfacts.MetaVenue, u.VenueName, eventfacts.SanitizeTextField},
		{eventfacts.MetaAddress, u.Address, eventfacts.SanitizeTextField},
		{eventfacts.MetaCity, u.City, eventfacts.SanitizeTextField},
		{eventfacts.MetaState, u.State, eventfacts.SanitizeTextField},
		{eventfacts.MetaZip, u.Zip, eventfacts.SanitizeTextField},
		{eventfacts.MetaParkingInfo, u.ParkingInfo, eventfacts.SanitizeTextarea},
		{eventfacts.MetaGoogleMapsURL, u.MapsURL, cleanURL},
		{eventfacts.MetaGoogleMapsEmbed, u.MapsEmbed, eventfacts.SanitizeMapsEmbed},
	}
	for _, w := range writes {
		if w.value == nil {
			continue
		}
		if err := s.SetMetadata(ctx, productID, w.key, w.clean(*w.value)); err != nil {
			return fmt.Errorf("set %s: %w", w.key, err)
		}
	}
	return nil
}

// SetSafetyReminders stores reminder text, keeping safe inline markup.
func SetSafetyReminders(ctx context.Context, s Store, productID int64, text string) (string, error) {
	cleaned := eventfacts.SanitizeRichText(text)
	if err := s.SetMetadata(ctx, productID, eventfacts.MetaSafetyReminders, cleaned); err != nil {
		return "", err
	}
	return cleaned, nil
}

// cleanURL keeps absolute http(s) URLs and drops anything else.
func cleanURL(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ""
	}
	return u.String()
}
