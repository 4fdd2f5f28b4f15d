// Package eventfacts turns the loosely typed fields stored for a clinic or
// camp product into display strings and a schema.org SportsEvent record.
//
// Everything here is a pure function of its inputs. Missing or malformed
// fields degrade to empty output; the only hard outcome is suppressing the
// structured record when no start date can be determined.
package eventfacts

import (
	"strings"
	"time"
)

// Listing is the product-level data a store holds outside of attributes and
// metadata.
type Listing struct {
	ID               int64
	Title            string
	ShortDescription string
	Description      string
	Price            *float64
	Currency         string
	StockQuantity    *int
	InStock          bool
	ImageURL         string
	PermalinkURL     string
}

// Input is the raw material for one render. Raw* fields hold whatever the
// store returned: a date string, a UNIX timestamp, or nil.
type Input struct {
	RawDate    any
	RawTime    any
	RawEndDate any

	Venue    string
	Address  string
	City     string
	State    string
	Zip      string
	AgeRange string

	Price         *float64
	Currency      string
	StockQuantity *int
	InStock       bool

	Title            string
	ShortDescription string
	Description      string
	ImageURL         string
	PermalinkURL     string
}

// Facts is the normalized view of an Input.
type Facts struct {
	DisplayDate  string        `json:"displayDate"`
	DisplayTime  string        `json:"displayTime"`
	ISOStart     *string       `json:"isoStart"`
	ISOEnd       *string       `json:"isoEnd"`
	Venue        string        `json:"venue"`
	AgeRange     string        `json:"ageRange"`
	LocationLine string        `json:"locationLine"`
	FullAddress  string        `json:"fullAddress"`
	Availability *Availability `json:"availability,omitempty"`

	StructuredEvent *EventRecord `json:"structuredEvent"`
}

// HasWhen reports whether both a display date and time are available, which
// is when the "When:" line of the facts bar is shown.
func (f Facts) HasWhen() bool {
	return f.DisplayDate != "" && f.DisplayTime != ""
}

// Normalizer binds a timezone and event profile. It holds no mutable state
// and is safe for concurrent use.
type Normalizer struct {
	loc      *time.Location
	profile  Profile
	currency string
}

// New creates a Normalizer rendering in loc (system default when nil).
func New(loc *time.Location, profile Profile) *Normalizer {
	return &Normalizer{
		loc:     ResolveLocation(loc, ""),
		profile: profile.withDefaults(),
	}
}

// WithCurrency returns a copy of n that prices offers in code when a listing
// carries no currency of its own.
func (n *Normalizer) WithCurrency(code string) *Normalizer {
	c := *n
	c.currency = strings.ToUpper(strings.TrimSpace(code))
	return &c
}

// Location returns the timezone used for rendering.
func (n *Normalizer) Location() *time.Location { return n.loc }

// Profile returns the event profile with defaults applied.
func (n *Normalizer) Profile() Profile { return n.profile }

// Normalize computes every derived value for in.
func (n *Normalizer) Normalize(in Input) Facts {
	return Facts{
		DisplayDate:     NormalizeDate(in.RawDate, n.loc),
		DisplayTime:     NormalizeTime(in.RawTime, n.loc),
		ISOStart:        ToISO8601(in.RawDate, n.loc),
		ISOEnd:          ToISO8601(in.RawEndDate, n.loc),
		Venue:           in.Venue,
		AgeRange:        in.AgeRange,
		LocationLine:    LocationLine(in.City, in.State),
		FullAddress:     FullAddress(in.Address, in.City, in.State, in.Zip),
		Availability:    StockAvailability(in.StockQuantity),
		StructuredEvent: n.BuildEventRecord(in),
	}
}

// LocationLine renders "City, State", or whichever part is present.
func LocationLine(city, state string) string {
	return joinNonEmpty(", ", strings.TrimSpace(city), strings.TrimSpace(state))
}

// FullAddress joins street, city and state with commas and appends the zip
// after a space.
func FullAddress(address, city, state, zip string) string {
	full := joinNonEmpty(", ", strings.TrimSpace(address), strings.TrimSpace(city), strings.TrimSpace(state))
	if zip = strings.TrimSpace(zip); zip != "" {
		full = strings.TrimSpace(full + " " + zip)
	}
	return full
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
