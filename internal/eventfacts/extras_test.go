package eventfacts

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationLineAndFullAddress(t *testing.T) {
	assert.Equal(t, "Philadelphia, PA", LocationLine("Philadelphia", "PA"))
	assert.Equal(t, "PA", LocationLine(" ", "PA"))
	assert.Equal(t, "", LocationLine("", ""))

	assert.Equal(t, "1 Main St, Camden, NJ 08102", FullAddress("1 Main St", "Camden", "NJ", "08102"))
	assert.Equal(t, "Camden, NJ", FullAddress("", "Camden", "NJ", ""))
	assert.Equal(t, "08102", FullAddress("", "", "", "08102"))
}

func TestStockAvailability(t *testing.T) {
	assert.Nil(t, StockAvailability(nil))
	assert.Nil(t, StockAvailability(ptr(0)))
	assert.Nil(t, StockAvailability(ptr(-3)))

	assert.Equal(t, &Availability{Spots: 1, LowStock: true, Label: "1 spot available"}, StockAvailability(ptr(1)))
	assert.Equal(t, &Availability{Spots: 10, LowStock: true, Label: "10 spots available"}, StockAvailability(ptr(10)))
	assert.Equal(t, &Availability{Spots: 25, LowStock: false, Label: "25 spots available"}, StockAvailability(ptr(25)))
}

func TestNormalizeCarriesAvailability(t *testing.T) {
	n := New(time.UTC, DefaultProfile())
	facts := n.Normalize(Input{StockQuantity: ptr(4), AgeRange: "U10", Venue: "Hub"})
	require.NotNil(t, facts.Availability)
	assert.True(t, facts.Availability.LowStock)
	assert.Equal(t, "U10", facts.AgeRange)
	assert.False(t, facts.HasWhen())
}

func TestCleanSchedule(t *testing.T) {
	got := CleanSchedule([]ScheduleItem{
		{Time: " 9:00 AM ", Activity: "<b>Arrival</b>"},
		{Time: "", Activity: ""},
		{Time: "", Activity: "   "},
		{Time: "10:00", Activity: "Drills"},
	})
	want := []ScheduleItem{
		{Time: "9:00 AM", Activity: "Arrival"},
		{Time: "10:00", Activity: "Drills"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CleanSchedule mismatch (-want +got):\n%s", diff)
	}
}

func TestScheduleOrDefault(t *testing.T) {
	assert.Equal(t, DefaultSchedule(), ScheduleOrDefault(nil))
	assert.Equal(t, DefaultSchedule(), ScheduleOrDefault([]ScheduleItem{{}}))
	assert.Len(t, DefaultSchedule(), 6)

	own := []ScheduleItem{{Time: "6:00 PM", Activity: "Scrimmage"}}
	assert.Equal(t, own, ScheduleOrDefault(own))
}

func TestBuildLocationDefaults(t *testing.T) {
	got := BuildLocation(LocationInput{})
	assert.Equal(t, LocationDetails{
		Venue:       DefaultVenueName,
		ParkingInfo: DefaultParkingInfo,
	}, got)
}

func TestBuildLocationGeneratesEmbedURL(t *testing.T) {
	got := BuildLocation(LocationInput{
		Venue:   "Hub Arena",
		Address: "1 Main St",
		City:    "Camden",
		State:   "NJ",
		Zip:     "08102",
		MapsURL: "https://maps.google.com/?q=hub",
	})
	assert.Equal(t, "Hub Arena", got.Venue)
	assert.Equal(t, "Camden, NJ", got.LocationLine)
	assert.Equal(t, "1 Main St, Camden, NJ 08102", got.FullAddress)
	assert.True(t, got.ShowAddress)
	assert.Equal(t, "https://maps.google.com/?q=hub", got.MapsURL)
	assert.Equal(t, "https://www.google.com/maps?q=1%20Main%20St%2C%20Camden%2C%20NJ%2008102&output=embed", got.MapsEmbedURL)
}

func TestBuildLocationStoredEmbedWins(t *testing.T) {
	got := BuildLocation(LocationInput{
		Address:   "1 Main St",
		MapsEmbed: `<iframe src="https://www.google.com/maps/embed?pb=x"></iframe>`,
	})
	assert.Empty(t, got.MapsEmbedURL)
	assert.NotEmpty(t, got.MapsEmbed)
}

func TestBuildLocationShortAddressHasNoMap(t *testing.T) {
	got := BuildLocation(LocationInput{State: "NJ"})
	assert.Equal(t, "NJ", got.FullAddress)
	assert.Empty(t, got.MapsEmbedURL)
	assert.Empty(t, got.LocationLine, "location line needs a city")
}

func TestPageMetaWithLocation(t *testing.T) {
	n := New(time.UTC, DefaultProfile())
	m := n.PageMeta(Input{
		RawDate: "2026-01-15",
		City:    "Philadelphia",
		State:   "PA",
		Title:   "Philadelphia <em>Winter</em> Clinic",
	})

	assert.Equal(t, "Winter Soccer Clinic in Philadelphia, PA | Philadelphia Winter Clinic | PTP Sports", m.Title)
	assert.Equal(t, "Join PTP's elite winter soccer clinic in Philadelphia, PA on Jan 15, 2026. "+
		"Led by NCAA & Pro coaches. Small groups, game-speed reps, 3-hour indoor training. "+
		"Limited spots available. Register now!", m.Description)
	assert.Equal(t, m.Title, m.OGTitle)
	assert.Equal(t, m.Description, m.OGDescription)
	assert.Equal(t, "event", m.OGType)
	assert.Equal(t, "Philadelphia, PA", m.PlaceName)
	assert.Contains(t, m.Keywords, "soccer camps Philadelphia, PA")
	assert.Contains(t, m.Keywords, "youth soccer clinic Philadelphia")
	assert.Equal(t, "Philadelphia, PA • 3-hour clinic", m.Breadcrumb)
}

func TestPageMetaWithoutLocation(t *testing.T) {
	n := New(time.UTC, DefaultProfile())
	m := n.PageMeta(Input{Title: "Holiday Clinic"})

	assert.Equal(t, "Holiday Clinic | Winter Soccer Clinics | PTP Sports", m.Title)
	assert.Equal(t, "Join PTP's elite winter soccer clinic. Led by NCAA & Pro coaches. "+
		"Small groups, game-speed reps, 3-hour indoor training. Limited spots available. Register now!", m.Description)
	assert.Empty(t, m.PlaceName)
	assert.Empty(t, m.Keywords)
}

func TestSanitizers(t *testing.T) {
	assert.Equal(t, "Hub Arena", SanitizeTextField("  Hub\n <i>Arena</i>  "))
	assert.Equal(t, "Lot B\nbehind gym", SanitizeTextarea("Lot B\n  <b>behind</b>   gym\n"))
	assert.Equal(t, "<strong>Bring</strong> water", SanitizeRichText("<strong>Bring</strong> water<script>alert(1)</script>"))
	assert.Equal(t, "Tom & Jerry", StripTags("Tom &amp; <span>Jerry</span>"))
}

func TestSanitizeMapsEmbed(t *testing.T) {
	got := SanitizeMapsEmbed(`<iframe src="https://www.google.com/maps/embed?pb=abc" width="600" height="450" onload="steal()"></iframe><script>alert(1)</script>`)
	assert.Contains(t, got, `src="https://www.google.com/maps/embed?pb=abc"`)
	assert.Contains(t, got, `width="600"`)
	assert.NotContains(t, got, "onload")
	assert.NotContains(t, got, "script")

	evil := SanitizeMapsEmbed(`<iframe src="https://evil.example/maps"></iframe>`)
	assert.NotContains(t, evil, "evil.example")
}
