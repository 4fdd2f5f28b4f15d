package eventfacts

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustZone(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestEmptyInputsYieldNothing(t *testing.T) {
	for _, raw := range []any{nil, "", "0", 0, int64(0), 0.0, time.Time{}} {
		assert.Equal(t, "", NormalizeDate(raw, time.UTC), "date %#v", raw)
		assert.Equal(t, "", NormalizeTime(raw, time.UTC), "time %#v", raw)
		assert.Nil(t, ToISO8601(raw, time.UTC), "iso %#v", raw)
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want string
	}{
		{"iso date", "2026-01-15", "Jan 15, 2026"},
		{"long month", "January 15, 2026", "Jan 15, 2026"},
		{"ordinal", "Jan 15th, 2026", "Jan 15, 2026"},
		{"us numeric", "1/15/2026", "Jan 15, 2026"},
		{"with time and joiner", "January 15, 2026 at 5:00 PM", "Jan 15, 2026"},
		{"datetime", "2026-01-15 17:00:00", "Jan 15, 2026"},
		{"lowercase month", "jan 15 2026", "Jan 15, 2026"},
		{"unix int", int64(1768496400), "Jan 15, 2026"},
		{"unix string", "1768496400", "Jan 15, 2026"},
		{"time value", time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC), "Jan 15, 2026"},
		{"unparseable", "not-a-date", "not-a-date"},
		{"free text", "Every Tuesday in January", "Every Tuesday in January"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDate(tt.raw, time.UTC))
		})
	}
}

func TestNormalizeDateUsesSiteZone(t *testing.T) {
	ny := mustZone(t, "America/New_York")
	// 02:00 UTC on the 16th is still the 15th in New York.
	assert.Equal(t, "Jan 15, 2026", NormalizeDate("2026-01-16T02:00:00Z", ny))
	assert.Equal(t, "Jan 16, 2026", NormalizeDate("2026-01-16T02:00:00Z", time.UTC))
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want string
	}{
		{"preformatted", "5:00 PM", "5:00 PM"},
		{"24h short", "17:30", "17:30"},
		{"short with digit", "6pm", "6pm"},
		{"numeric-looking date", "1/5/26", "1/5/26"},
		{"datetime", "2026-01-15 17:00", "5:00 PM"},
		{"long form", "January 15, 2026 9:30 AM", "9:30 AM"},
		{"unix", int64(1768496400), "5:00 PM"},
		{"no digits", "noon", "noon"},
		{"unparseable long", "sometime after school", "sometime after school"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTime(tt.raw, time.UTC))
		})
	}
}

func TestShortTimeFastPathReturnsInputUnchanged(t *testing.T) {
	for _, s := range []string{"5:00 PM", "9am", "17:30", "12:00", "1", "10-12"} {
		require.LessOrEqual(t, len(s), 8)
		assert.Equal(t, s, NormalizeTime(s, time.UTC))
	}
}

func TestToISO8601(t *testing.T) {
	ny := mustZone(t, "America/New_York")

	tests := []struct {
		name string
		raw  any
		loc  *time.Location
		want string
	}{
		{"date only utc", "2026-01-15", time.UTC, "2026-01-15T00:00:00+00:00"},
		{"date only ny", "2026-01-15", ny, "2026-01-15T00:00:00-05:00"},
		{"unix utc", int64(1768496400), time.UTC, "2026-01-15T17:00:00+00:00"},
		{"unix ny", int64(1768496400), ny, "2026-01-15T12:00:00-05:00"},
		{"unix string", "1768496400", ny, "2026-01-15T12:00:00-05:00"},
		{"unix float", 1768496400.75, time.UTC, "2026-01-15T17:00:00+00:00"},
		{"offset input converted", "2026-07-04T18:00:00+02:00", ny, "2026-07-04T12:00:00-04:00"},
		{"summer offset", "2026-07-04 10:00", ny, "2026-07-04T10:00:00-04:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToISO8601(tt.raw, tt.loc)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestToISO8601Unparseable(t *testing.T) {
	assert.Nil(t, ToISO8601("not-a-date", time.UTC))
	assert.Nil(t, ToISO8601(struct{}{}, time.UTC))
}

func TestParseTimeOfDayAnchorsToToday(t *testing.T) {
	orig := now
	now = func() time.Time { return time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = orig })

	p := Parse("5 PM", time.UTC)
	require.True(t, p.OK)
	assert.Equal(t, time.Date(2026, 3, 1, 17, 0, 0, 0, time.UTC), p.Time)

	p = Parse("17:45", time.UTC)
	require.True(t, p.OK)
	assert.Equal(t, time.Date(2026, 3, 1, 17, 45, 0, 0, time.UTC), p.Time)
}

func TestParseReportsUnparseable(t *testing.T) {
	p := Parse("next week-ish", time.UTC)
	assert.False(t, p.OK)
	assert.True(t, p.Time.IsZero())
}

func TestResolveLocation(t *testing.T) {
	ny := mustZone(t, "America/New_York")

	assert.Equal(t, ny, ResolveLocation(ny, "Europe/London"))
	assert.Equal(t, "America/Chicago", ResolveLocation(nil, "America/Chicago").String())
	assert.Equal(t, time.Local, ResolveLocation(nil, ""))
	assert.Equal(t, time.Local, ResolveLocation(nil, "Not/AZone"))

	ref := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	for name, offset := range map[string]int{
		"+05:30": 5*3600 + 30*60,
		"-0400":  -4 * 3600,
		"UTC+2":  2 * 3600,
	} {
		loc := ResolveLocation(nil, name)
		_, got := ref.In(loc).Zone()
		assert.Equal(t, offset, got, name)
	}
}
