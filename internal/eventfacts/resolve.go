package eventfacts

import (
	"context"
	"fmt"
)

// Field names used for product attributes and their metadata fallbacks.
// Metadata keys carry the "_ptp_" prefix written by the admin location box.
const (
	AttrVenue   = "venue"
	AttrAddress = "address"
	AttrCity    = "city"
	AttrState   = "state"
	AttrZip     = "zip"
	AttrDate    = "date"
	AttrTime    = "time"
	AttrEndDate = "end-date"
	AttrAge     = "age"

	MetaVenue      = "_ptp_venue_name"
	MetaAddress    = "_ptp_address"
	MetaCity       = "_ptp_city"
	MetaState      = "_ptp_state"
	MetaZip        = "_ptp_zip"
	MetaEventStart = "_ptp_event_start"
	MetaEventEnd   = "_ptp_event_end"
	MetaAgeBand    = "_ptp_age_band"

	MetaParkingInfo     = "_ptp_parking_info"
	MetaGoogleMapsURL   = "_ptp_google_maps_url"
	MetaGoogleMapsEmbed = "_ptp_google_maps_embed"
	MetaSafetyReminders = "_ptp_safety_reminders"
	MetaSchedule        = "_ptp_schedule"
)

// FieldSource is the read side of the content store: structured product
// attributes and free-form post metadata. An absent value is "" with a nil
// error.
type FieldSource interface {
	Attribute(ctx context.Context, productID int64, name string) (string, error)
	Metadata(ctx context.Context, productID int64, key string) (string, error)
}

// Field pairs an attribute name with the metadata key consulted when the
// attribute is blank.
type Field struct {
	Attribute string
	MetaKey   string
}

// The fields every product page resolves.
var (
	FieldVenue   = Field{AttrVenue, MetaVenue}
	FieldAddress = Field{AttrAddress, MetaAddress}
	FieldCity    = Field{AttrCity, MetaCity}
	FieldState   = Field{AttrState, MetaState}
	FieldZip     = Field{AttrZip, MetaZip}
	FieldDate    = Field{AttrDate, MetaEventStart}
	FieldTime    = Field{AttrTime, MetaEventStart}
	FieldEndDate = Field{AttrEndDate, MetaEventEnd}
	FieldAge     = Field{AttrAge, MetaAgeBand}
)

// Resolver reads fields with attribute-over-metadata precedence.
type Resolver struct {
	src FieldSource

	// OnError, when set, receives store failures. The failed tier is
	// treated as empty either way.
	OnError func(productID int64, name string, err error)
}

// NewResolver creates a Resolver over src.
func NewResolver(src FieldSource) *Resolver {
	return &Resolver{src: src}
}

// ResolveField returns the attribute value when it is non-empty, else the
// metadata value, else "". The attribute wins even when metadata was edited
// more recently.
func (r *Resolver) ResolveField(ctx context.Context, productID int64, attribute, metaKey string) string {
	if attribute != "" {
		v, err := r.src.Attribute(ctx, productID, attribute)
		if err != nil {
			r.report(productID, attribute, fmt.Errorf("attribute %q: %w", attribute, err))
		} else if v != "" {
			return v
		}
	}
	if metaKey == "" {
		return ""
	}
	v, err := r.src.Metadata(ctx, productID, metaKey)
	if err != nil {
		r.report(productID, metaKey, fmt.Errorf("metadata %q: %w", metaKey, err))
		return ""
	}
	return v
}

// Resolve is ResolveField for a predeclared Field.
func (r *Resolver) Resolve(ctx context.Context, productID int64, f Field) string {
	return r.ResolveField(ctx, productID, f.Attribute, f.MetaKey)
}

// Meta reads a metadata-only key, degrading errors to "".
func (r *Resolver) Meta(ctx context.Context, productID int64, key string) string {
	return r.ResolveField(ctx, productID, "", key)
}

func (r *Resolver) report(productID int64, name string, err error) {
	if r.OnError != nil {
		r.OnError(productID, name, err)
	}
}
