package eventfacts

import "math"

// schema.org vocabulary used in the SportsEvent record.
const (
	SchemaContext = "https://schema.org"

	TypeSportsEvent   = "SportsEvent"
	TypePlace         = "Place"
	TypePostalAddress = "PostalAddress"
	TypeOffer         = "Offer"
	TypeOrganization  = "Organization"

	AvailabilityInStock    = "https://schema.org/InStock"
	AvailabilityOutOfStock = "https://schema.org/OutOfStock"
	AttendanceOffline      = "https://schema.org/OfflineEventAttendanceMode"
	StatusScheduled        = "https://schema.org/EventScheduled"

	// DefaultVenueName stands in for an unset venue.
	DefaultVenueName = "Indoor Training Facility"

	// AddressCountry is fixed; every listed venue is in the US.
	AddressCountry = "US"
)

// EventRecord is the JSON-LD SportsEvent tree. Field order matches the
// emitted document.
type EventRecord struct {
	Context             string       `json:"@context"`
	Type                string       `json:"@type"`
	Name                string       `json:"name"`
	Description         string       `json:"description"`
	StartDate           string       `json:"startDate"`
	Sport               string       `json:"sport"`
	EventAttendanceMode string       `json:"eventAttendanceMode"`
	EventStatus         string       `json:"eventStatus"`
	Location            Place        `json:"location"`
	Offers              Offer        `json:"offers"`
	Organizer           Organization `json:"organizer"`
	Performer           Organization `json:"performer"`
	EndDate             string       `json:"endDate,omitempty"`
	Image               []string     `json:"image,omitempty"`
}

type Place struct {
	Type    string        `json:"@type"`
	Name    string        `json:"name"`
	Address PostalAddress `json:"address"`
}

type PostalAddress struct {
	Type            string `json:"@type"`
	StreetAddress   string `json:"streetAddress"`
	AddressLocality string `json:"addressLocality"`
	AddressRegion   string `json:"addressRegion"`
	PostalCode      string `json:"postalCode"`
	AddressCountry  string `json:"addressCountry"`
}

// Offer omits price entirely when the listing has none.
type Offer struct {
	Type          string   `json:"@type"`
	URL           string   `json:"url"`
	PriceCurrency string   `json:"priceCurrency"`
	Availability  string   `json:"availability"`
	ValidFrom     string   `json:"validFrom"`
	Price         *float64 `json:"price,omitempty"`
}

// Organization is used for both organizer and performer. The performer has
// no URL.
type Organization struct {
	Type string `json:"@type" yaml:"-"`
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url,omitempty" yaml:"url"`
}

// BuildEventRecord assembles the SportsEvent record for in. It returns nil
// when the start date does not resolve: a record without a start time is
// never emitted.
func (n *Normalizer) BuildEventRecord(in Input) *EventRecord {
	start := ToISO8601(in.RawDate, n.loc)
	if start == nil {
		return nil
	}

	description := in.ShortDescription
	if StripTags(description) == "" {
		description = in.Description
	}

	venue := StripTags(in.Venue)
	if venue == "" {
		venue = DefaultVenueName
	}

	currency := in.Currency
	if currency == "" {
		currency = n.currency
	}

	availability := AvailabilityOutOfStock
	if in.InStock {
		availability = AvailabilityInStock
	}

	rec := &EventRecord{
		Context:             SchemaContext,
		Type:                TypeSportsEvent,
		Name:                StripTags(in.Title),
		Description:         StripTags(description),
		StartDate:           *start,
		Sport:               n.profile.Sport,
		EventAttendanceMode: AttendanceOffline,
		EventStatus:         StatusScheduled,
		Location: Place{
			Type: TypePlace,
			Name: venue,
			Address: PostalAddress{
				Type:            TypePostalAddress,
				StreetAddress:   StripTags(in.Address),
				AddressLocality: StripTags(in.City),
				AddressRegion:   StripTags(in.State),
				PostalCode:      StripTags(in.Zip),
				AddressCountry:  AddressCountry,
			},
		},
		Offers: Offer{
			Type:          TypeOffer,
			URL:           in.PermalinkURL,
			PriceCurrency: currency,
			Availability:  availability,
			ValidFrom:     *start,
			Price:         validPrice(in.Price),
		},
		Organizer: n.profile.organizer(),
		Performer: n.profile.performer(),
	}

	if end := ToISO8601(in.RawEndDate, n.loc); end != nil {
		rec.EndDate = *end
	}
	if in.ImageURL != "" {
		rec.Image = []string{in.ImageURL}
	}
	return rec
}

// validPrice drops NaN and infinities, which cannot be encoded.
func validPrice(p *float64) *float64 {
	if p == nil || math.IsNaN(*p) || math.IsInf(*p, 0) {
		return nil
	}
	v := *p
	return &v
}
