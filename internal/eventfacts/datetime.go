package eventfacts

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Output layouts
// --------------------------------------------------------------------------

const (
	DisplayDateLayout = "Jan 2, 2006"
	DisplayTimeLayout = "3:04 PM"

	// ISOLayout always writes a numeric offset, including "+00:00" for UTC.
	ISOLayout = "2006-01-02T15:04:05-07:00"

	// shortTimeMaxLen bounds the "already formatted" time fast path.
	shortTimeMaxLen = 8
)

// Input layouts tried in order. Inputs are upper-cased before parsing, which
// Go accepts for month and weekday names and which "PM" requires.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05Z07:00",
	time.RFC1123Z,
	time.RFC1123,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 3:04 PM",
	"2006-01-02 3:04PM",
	"2006-01-02",
	"2006/01/02",
	"1/2/2006 3:04 PM",
	"1/2/2006 3:04PM",
	"1/2/2006 15:04",
	"1/2/2006",
	"January 2, 2006 3:04 PM",
	"January 2, 2006 3:04PM",
	"Jan 2, 2006 3:04 PM",
	"Jan 2, 2006 3:04PM",
	"Monday, January 2, 2006",
	"Mon, Jan 2, 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// Time-of-day layouts are anchored to the current date in the target zone.
var timeOfDayLayouts = []string{
	"3:04:05 PM",
	"3:04 PM",
	"3:04PM",
	"3 PM",
	"3PM",
	"15:04:05",
	"15:04",
}

var (
	numericPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)
	ordinalPattern = regexp.MustCompile(`(\d)(ST|ND|RD|TH)\b`)
	spacePattern   = regexp.MustCompile(`\s+`)
	digitPattern   = regexp.MustCompile(`\d`)
)

// now is swapped in tests that exercise time-of-day anchoring.
var now = time.Now

// --------------------------------------------------------------------------
// Parse result
// --------------------------------------------------------------------------

// Parsed is the outcome of interpreting a raw date/time value. OK is false
// when the value is empty or could not be understood; Time is then zero.
type Parsed struct {
	Time time.Time
	OK   bool
}

func unparseable() Parsed { return Parsed{} }

// Parse interprets raw (string, number, time.Time, or nil) in loc.
// Numeric input is treated as UNIX seconds.
func Parse(raw any, loc *time.Location) Parsed {
	if loc == nil {
		loc = time.Local
	}
	if isEmpty(raw) {
		return unparseable()
	}
	if ts, ok := unixSeconds(raw); ok {
		return Parsed{Time: time.Unix(ts, 0).In(loc), OK: true}
	}
	switch v := raw.(type) {
	case time.Time:
		return Parsed{Time: v.In(loc), OK: true}
	case *time.Time:
		if v == nil {
			return unparseable()
		}
		return Parsed{Time: v.In(loc), OK: true}
	case string:
		return parseString(v, loc)
	case fmt.Stringer:
		return parseString(v.String(), loc)
	default:
		return unparseable()
	}
}

func parseString(s string, loc *time.Location) Parsed {
	clean := cleanDateString(s)
	if clean == "" {
		return unparseable()
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, clean, loc); err == nil {
			return Parsed{Time: t.In(loc), OK: true}
		}
	}
	for _, layout := range timeOfDayLayouts {
		if t, err := time.ParseInLocation(layout, clean, loc); err == nil {
			today := now().In(loc)
			anchored := time.Date(today.Year(), today.Month(), today.Day(),
				t.Hour(), t.Minute(), t.Second(), 0, loc)
			return Parsed{Time: anchored, OK: true}
		}
	}
	return unparseable()
}

// cleanDateString upper-cases s, collapses whitespace, drops ordinal
// suffixes ("15th") and the "at" joiner ("Jan 15, 2026 at 5 PM").
func cleanDateString(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = spacePattern.ReplaceAllString(s, " ")
	s = ordinalPattern.ReplaceAllString(s, "$1")
	s = strings.ReplaceAll(s, " AT ", " ")
	s = strings.ReplaceAll(s, " @ ", " ")
	return s
}

// --------------------------------------------------------------------------
// Normalizers
// --------------------------------------------------------------------------

// NormalizeDate renders raw as "Jan 2, 2006" in loc. Empty input yields "";
// an unparseable string is returned verbatim.
func NormalizeDate(raw any, loc *time.Location) string {
	if isEmpty(raw) {
		return ""
	}
	p := Parse(raw, loc)
	if !p.OK || p.Time.Unix() == 0 {
		return verbatim(raw)
	}
	return p.Time.Format(DisplayDateLayout)
}

// NormalizeTime renders raw as "3:04 PM" in loc.
//
// Short values (up to 8 bytes) containing a digit are assumed to be a time
// someone already typed by hand ("5:00 PM", "17:30") and are returned as-is.
// This also catches some numeric-looking dates such as "1/5/26".
func NormalizeTime(raw any, loc *time.Location) string {
	if isEmpty(raw) {
		return ""
	}
	if s := scalarString(raw); s != "" && len(s) <= shortTimeMaxLen && digitPattern.MatchString(s) {
		return s
	}
	p := Parse(raw, loc)
	if !p.OK || p.Time.Unix() == 0 {
		return verbatim(raw)
	}
	return p.Time.Format(DisplayTimeLayout)
}

// ToISO8601 renders raw as an offset-qualified ISO 8601 timestamp in loc.
// It returns nil when raw is empty or unparseable.
func ToISO8601(raw any, loc *time.Location) *string {
	p := Parse(raw, loc)
	if !p.OK {
		return nil
	}
	s := p.Time.Format(ISOLayout)
	return &s
}

// ResolveLocation picks the timezone used for rendering: an explicit
// location, then an IANA zone name, then the system default.
func ResolveLocation(loc *time.Location, name string) *time.Location {
	if loc != nil {
		return loc
	}
	if name = strings.TrimSpace(name); name != "" {
		if l, err := time.LoadLocation(name); err == nil {
			return l
		}
		if l, ok := fixedOffsetZone(name); ok {
			return l
		}
	}
	return time.Local
}

// fixedOffsetZone accepts "+05:30" / "-0400" / "UTC+2" style offsets, which
// sites without a named zone store instead of an IANA name.
func fixedOffsetZone(name string) (*time.Location, bool) {
	s := strings.TrimPrefix(strings.ToUpper(name), "UTC")
	if s == "" || (s[0] != '+' && s[0] != '-') {
		return nil, false
	}
	sign := 1
	if s[0] == '-' {
		sign = -1
	}
	s = strings.ReplaceAll(s[1:], ":", "")
	var hours, minutes int
	var err error
	switch {
	case len(s) <= 2:
		hours, err = strconv.Atoi(s)
	case len(s) == 4:
		hours, err = strconv.Atoi(s[:2])
		if err == nil {
			minutes, err = strconv.Atoi(s[2:])
		}
	default:
		return nil, false
	}
	if err != nil || hours > 14 || minutes > 59 {
		return nil, false
	}
	offset := sign * (hours*3600 + minutes*60)
	return time.FixedZone(name, offset), true
}

// --------------------------------------------------------------------------
// Raw value helpers
// --------------------------------------------------------------------------

// isEmpty mirrors how content stores represent "no value": nil, "", "0",
// and numeric zero.
func isEmpty(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case string:
		return v == "" || v == "0"
	case *string:
		return v == nil || *v == "" || *v == "0"
	case int:
		return v == 0
	case int64:
		return v == 0
	case int32:
		return v == 0
	case float64:
		return v == 0
	case float32:
		return v == 0
	case time.Time:
		return v.IsZero()
	case *time.Time:
		return v == nil || v.IsZero()
	default:
		return false
	}
}

// unixSeconds reports whether raw is numeric and returns it truncated to
// whole seconds.
func unixSeconds(raw any) (int64, bool) {
	switch v := raw.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case int32:
		return int64(v), true
	case float64:
		return int64(v), true
	case float32:
		return int64(v), true
	case *string:
		if v == nil {
			return 0, false
		}
		return unixSeconds(*v)
	case string:
		s := strings.TrimSpace(v)
		if !numericPattern.MatchString(s) {
			return 0, false
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return int64(f), true
	default:
		return 0, false
	}
}

// scalarString is the textual form of a string or number, "" otherwise.
func scalarString(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case *string:
		if v == nil {
			return ""
		}
		return *v
	case int, int32, int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return ""
	}
}

// verbatim is the fallback for values that could not be parsed: strings come
// back untouched, anything else becomes "".
func verbatim(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case *string:
		if v == nil {
			return ""
		}
		return *v
	default:
		return ""
	}
}
