package eventfacts

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestPhiladelphiaClinic(t *testing.T) {
	n := New(time.UTC, DefaultProfile())
	in := Input{
		RawDate:      "2026-01-15",
		City:         "Philadelphia",
		State:        "PA",
		Price:        ptr(149.00),
		Currency:     "USD",
		InStock:      true,
		Title:        "Philadelphia Winter Clinic",
		PermalinkURL: "https://ptpsummercamps.com/product/philadelphia-winter-clinic/",
	}

	facts := n.Normalize(in)
	assert.Equal(t, "Jan 15, 2026", facts.DisplayDate)
	assert.Equal(t, "Philadelphia, PA", facts.LocationLine)
	require.NotNil(t, facts.StructuredEvent)

	rec := facts.StructuredEvent
	assert.Equal(t, "Indoor Training Facility", rec.Location.Name)
	require.NotNil(t, rec.Offers.Price)
	assert.Equal(t, 149.0, *rec.Offers.Price)
	assert.Equal(t, AvailabilityInStock, rec.Offers.Availability)
}

func TestBuildEventRecordFull(t *testing.T) {
	profile := DefaultProfile()
	profile.Organizer.URL = "https://ptpsummercamps.com"
	n := New(time.UTC, profile)

	in := Input{
		RawDate:          "2026-01-15 17:00",
		RawEndDate:       "2026-01-15 20:00",
		Venue:            "Hub <b>Arena</b>",
		Address:          "1 Main St",
		City:             "Camden",
		State:            "NJ",
		Zip:              "08102",
		Price:            ptr(99.5),
		Currency:         "USD",
		InStock:          false,
		Title:            "Camden &amp; Friends Clinic",
		ShortDescription: "<p></p>",
		Description:      "<p>Three hours of <em>game-speed</em> reps.</p>",
		ImageURL:         "https://cdn.example.com/clinic.jpg",
		PermalinkURL:     "https://ptpsummercamps.com/product/camden/",
	}

	want := &EventRecord{
		Context:             SchemaContext,
		Type:                TypeSportsEvent,
		Name:                "Camden & Friends Clinic",
		Description:         "Three hours of game-speed reps.",
		StartDate:           "2026-01-15T17:00:00+00:00",
		Sport:               "Soccer",
		EventAttendanceMode: AttendanceOffline,
		EventStatus:         StatusScheduled,
		Location: Place{
			Type: TypePlace,
			Name: "Hub Arena",
			Address: PostalAddress{
				Type:            TypePostalAddress,
				StreetAddress:   "1 Main St",
				AddressLocality: "Camden",
				AddressRegion:   "NJ",
				PostalCode:      "08102",
				AddressCountry:  "US",
			},
		},
		Offers: Offer{
			Type:          TypeOffer,
			URL:           "https://ptpsummercamps.com/product/camden/",
			PriceCurrency: "USD",
			Availability:  AvailabilityOutOfStock,
			ValidFrom:     "2026-01-15T17:00:00+00:00",
			Price:         ptr(99.5),
		},
		Organizer: Organization{Type: TypeOrganization, Name: "PTP Sports", URL: "https://ptpsummercamps.com"},
		Performer: Organization{Type: TypeOrganization, Name: "NCAA & Professional Coaches"},
		EndDate:   "2026-01-15T20:00:00+00:00",
		Image:     []string{"https://cdn.example.com/clinic.jpg"},
	}

	got := n.BuildEventRecord(in)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildEventRecord mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildEventRecordNilWithoutStart(t *testing.T) {
	n := New(time.UTC, DefaultProfile())
	full := Input{
		Venue:    "Hub Arena",
		City:     "Camden",
		State:    "NJ",
		Price:    ptr(149.0),
		InStock:  true,
		Title:    "Clinic",
		ImageURL: "https://cdn.example.com/a.jpg",
	}

	for _, raw := range []any{nil, "", "not-a-date"} {
		in := full
		in.RawDate = raw
		assert.Nil(t, n.BuildEventRecord(in), "raw date %#v", raw)
		assert.Nil(t, n.Normalize(in).StructuredEvent)
	}
}

func TestBuildEventRecordMinimalInput(t *testing.T) {
	n := New(time.UTC, DefaultProfile())
	rec := n.BuildEventRecord(Input{RawDate: int64(1768496400)})
	require.NotNil(t, rec)

	assert.Equal(t, "2026-01-15T17:00:00+00:00", rec.StartDate)
	assert.Equal(t, DefaultVenueName, rec.Location.Name)
	assert.Equal(t, "", rec.Name)
	assert.Nil(t, rec.Offers.Price)
	assert.Equal(t, AvailabilityOutOfStock, rec.Offers.Availability)
	assert.Empty(t, rec.EndDate)
	assert.Nil(t, rec.Image)
}

func TestBuildEventRecordDropsInvalidPrice(t *testing.T) {
	n := New(time.UTC, DefaultProfile())
	for _, p := range []float64{math.NaN(), math.Inf(1)} {
		rec := n.BuildEventRecord(Input{RawDate: "2026-01-15", Price: ptr(p)})
		require.NotNil(t, rec)
		assert.Nil(t, rec.Offers.Price)
	}
}

func TestBuildEventRecordShortDescriptionWins(t *testing.T) {
	n := New(time.UTC, DefaultProfile())
	rec := n.BuildEventRecord(Input{
		RawDate:          "2026-01-15",
		ShortDescription: "Short <strong>pitch</strong>",
		Description:      "Long copy",
	})
	require.NotNil(t, rec)
	assert.Equal(t, "Short pitch", rec.Description)
}

func TestProfileOverrides(t *testing.T) {
	n := New(time.UTC, Profile{Sport: "Futsal", Organizer: Organization{Name: "City Futsal"}})
	rec := n.BuildEventRecord(Input{RawDate: "2026-01-15"})
	require.NotNil(t, rec)
	assert.Equal(t, "Futsal", rec.Sport)
	assert.Equal(t, "City Futsal", rec.Organizer.Name)
	assert.Equal(t, "NCAA & Professional Coaches", rec.Performer.Name, "blank fields keep defaults")
	assert.Equal(t, AddressCountry, rec.Location.Address.AddressCountry)
}

func TestDefaultCurrency(t *testing.T) {
	n := New(time.UTC, DefaultProfile()).WithCurrency(" cad ")

	rec := n.BuildEventRecord(Input{RawDate: "2026-01-15"})
	require.NotNil(t, rec)
	assert.Equal(t, "CAD", rec.Offers.PriceCurrency)

	rec = n.BuildEventRecord(Input{RawDate: "2026-01-15", Currency: "USD"})
	require.NotNil(t, rec)
	assert.Equal(t, "USD", rec.Offers.PriceCurrency, "listing currency wins")
}
