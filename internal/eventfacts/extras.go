package eventfacts

import (
	"fmt"
	"net/url"
	"strings"
)

// --------------------------------------------------------------------------
// Buy box
// --------------------------------------------------------------------------

// LowStockThreshold is the spot count at or below which availability is
// flagged as low.
const LowStockThreshold = 10

// Availability is the "N spots available" line of the buy box.
type Availability struct {
	Spots    int    `json:"spots"`
	LowStock bool   `json:"lowStock"`
	Label    string `json:"label"`
}

// StockAvailability returns nil when stock is untracked or exhausted.
func StockAvailability(qty *int) *Availability {
	if qty == nil || *qty <= 0 {
		return nil
	}
	unit := "spots"
	if *qty == 1 {
		unit = "spot"
	}
	return &Availability{
		Spots:    *qty,
		LowStock: *qty <= LowStockThreshold,
		Label:    fmt.Sprintf("%d %s available", *qty, unit),
	}
}

// --------------------------------------------------------------------------
// Schedule
// --------------------------------------------------------------------------

// ScheduleItem is one agenda row.
type ScheduleItem struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
}

// DefaultSchedule is shown when a product has no agenda of its own.
func DefaultSchedule() []ScheduleItem {
	return []ScheduleItem{
		{Time: "4:45 PM", Activity: "Check-in & shirt pickup"},
		{Time: "5:00 PM", Activity: "Warm-up & introductions"},
		{Time: "5:15 PM", Activity: "Skills stations (dribbling, passing, finishing)"},
		{Time: "6:30 PM", Activity: "Small-sided games & 1v1s"},
		{Time: "7:45 PM", Activity: "Cool down & Q&A with coaches"},
		{Time: "8:00 PM", Activity: "Clinic concludes"},
	}
}

// CleanSchedule sanitizes each row and drops rows with neither a time nor
// an activity.
func CleanSchedule(items []ScheduleItem) []ScheduleItem {
	out := make([]ScheduleItem, 0, len(items))
	for _, it := range items {
		row := ScheduleItem{
			Time:     SanitizeTextField(it.Time),
			Activity: SanitizeTextField(it.Activity),
		}
		if row.Time == "" && row.Activity == "" {
			continue
		}
		out = append(out, row)
	}
	return out
}

// ScheduleOrDefault returns the stored rows, or DefaultSchedule when none
// survive cleaning.
func ScheduleOrDefault(items []ScheduleItem) []ScheduleItem {
	var kept []ScheduleItem
	for _, it := range items {
		if it.Time == "" && it.Activity == "" {
			continue
		}
		kept = append(kept, it)
	}
	if len(kept) == 0 {
		return DefaultSchedule()
	}
	return kept
}

// --------------------------------------------------------------------------
// Location tab
// --------------------------------------------------------------------------

// DefaultParkingInfo is used when no parking note is stored.
const DefaultParkingInfo = "Free parking available on-site"

// mapsMinAddressLen is the shortest full address worth a generated map.
const mapsMinAddressLen = 5

// LocationDetails is the content of the location tab.
type LocationDetails struct {
	Venue        string `json:"venue"`
	LocationLine string `json:"locationLine"`
	FullAddress  string `json:"fullAddress"`
	ShowAddress  bool   `json:"showAddress"`
	ParkingInfo  string `json:"parkingInfo"`
	MapsURL      string `json:"mapsUrl,omitempty"`
	MapsEmbed    string `json:"mapsEmbed,omitempty"`
	MapsEmbedURL string `json:"mapsEmbedUrl,omitempty"`
}

// LocationInput is the raw location tab data.
type LocationInput struct {
	Venue, Address, City, State, Zip string
	ParkingInfo                      string
	MapsURL                          string
	MapsEmbed                        string
}

// BuildLocation fills in venue and parking defaults and, when no embed code
// is stored, derives a Google Maps embed URL from the full address.
func BuildLocation(in LocationInput) LocationDetails {
	d := LocationDetails{
		Venue:       strings.TrimSpace(in.Venue),
		FullAddress: FullAddress(in.Address, in.City, in.State, in.Zip),
		ShowAddress: strings.TrimSpace(in.Address) != "" || strings.TrimSpace(in.Zip) != "",
		ParkingInfo: strings.TrimSpace(in.ParkingInfo),
		MapsURL:     strings.TrimSpace(in.MapsURL),
		MapsEmbed:   strings.TrimSpace(in.MapsEmbed),
	}
	if d.Venue == "" {
		d.Venue = DefaultVenueName
	}
	if strings.TrimSpace(in.City) != "" {
		d.LocationLine = LocationLine(in.City, in.State)
	}
	if d.ParkingInfo == "" {
		d.ParkingInfo = DefaultParkingInfo
	}
	if d.MapsEmbed == "" && len(d.FullAddress) > mapsMinAddressLen {
		d.MapsEmbedURL = MapsEmbedURL(d.FullAddress)
	}
	return d
}

// MapsEmbedURL builds the keyless Google Maps embed URL for an address.
func MapsEmbedURL(address string) string {
	q := strings.ReplaceAll(url.QueryEscape(address), "+", "%20")
	return "https://www.google.com/maps?q=" + q + "&output=embed"
}

// --------------------------------------------------------------------------
// Page meta
// --------------------------------------------------------------------------

// PageMeta holds the head tags derived for a product page.
type PageMeta struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	OGTitle       string `json:"ogTitle"`
	OGDescription string `json:"ogDescription"`
	OGType        string `json:"ogType"`
	PlaceName     string `json:"placeName,omitempty"`
	Keywords      string `json:"keywords,omitempty"`
	Breadcrumb    string `json:"breadcrumb,omitempty"`
}

// PageMeta derives the SEO title, description and Open Graph strings.
func (n *Normalizer) PageMeta(in Input) PageMeta {
	p := n.profile
	title := StripTags(in.Title)
	location := LocationLine(in.City, in.State)
	date := NormalizeDate(in.RawDate, n.loc)

	var seoTitle string
	if location != "" {
		seoTitle = fmt.Sprintf("%s in %s | %s | %s", p.ClinicLabel, location, title, p.Brand)
	} else {
		seoTitle = fmt.Sprintf("%s | %s | %s", title, p.SeriesLabel, p.Brand)
	}

	var b strings.Builder
	b.WriteString(p.Pitch)
	if location != "" {
		b.WriteString(" in " + location)
	}
	if date != "" {
		b.WriteString(" on " + date)
	}
	b.WriteString(". ")
	b.WriteString(p.SellingLines)
	description := b.String()

	m := PageMeta{
		Title:         seoTitle,
		Description:   description,
		OGTitle:       seoTitle,
		OGDescription: description,
		OGType:        "event",
	}
	if location != "" {
		sport := strings.ToLower(p.Sport)
		m.PlaceName = location
		m.Keywords = strings.Join([]string{
			fmt.Sprintf("%s camps %s", sport, location),
			fmt.Sprintf("youth %s clinic %s", sport, strings.TrimSpace(in.City)),
			fmt.Sprintf("indoor %s training %s", sport, strings.TrimSpace(in.State)),
			fmt.Sprintf("winter %s camp near me", sport),
			fmt.Sprintf("kids %s programs %s", sport, location),
		}, ", ")
		m.Breadcrumb = location + " • " + p.Duration
	}
	return m
}
