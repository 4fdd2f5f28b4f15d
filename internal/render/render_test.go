package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptpsports/clinic-facts/internal/eventfacts"
)

func philadelphia() (*eventfacts.Normalizer, eventfacts.Input) {
	price := 149.0
	return eventfacts.New(time.UTC, eventfacts.DefaultProfile()), eventfacts.Input{
		RawDate:      "2026-01-15",
		City:         "Philadelphia",
		State:        "PA",
		Price:        &price,
		Currency:     "USD",
		InStock:      true,
		Title:        "Philly Winter &amp; Spring Clinic",
		PermalinkURL: "https://ptpsummercamps.com/product/philly/",
	}
}

func TestJSONLDNilRecord(t *testing.T) {
	data, err := JSONLD(nil)
	require.NoError(t, err)
	assert.Nil(t, data)

	tag, err := ScriptTag(nil)
	require.NoError(t, err)
	assert.Empty(t, tag)
}

func TestJSONLDDocument(t *testing.T) {
	n, in := philadelphia()
	data, err := JSONLD(n.BuildEventRecord(in))
	require.NoError(t, err)

	doc := string(data)
	assert.True(t, strings.HasPrefix(doc, `{"@context":"https://schema.org","@type":"SportsEvent","name":`), doc)
	assert.Contains(t, doc, `"price":149,`)
	assert.Contains(t, doc, `"url":"https://ptpsummercamps.com/product/philly/"`, "slashes are not escaped")
	assert.Contains(t, doc, `"name":"NCAA \u0026 Professional Coaches"`, "& is escaped for the script element")
	assert.NotContains(t, doc, "<")
	assert.False(t, strings.HasSuffix(doc, "\n"))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	location := decoded["location"].(map[string]interface{})
	assert.Equal(t, "Indoor Training Facility", location["name"])
	assert.NotContains(t, decoded, "endDate")
	assert.NotContains(t, decoded, "image")
}

func TestScriptTag(t *testing.T) {
	n, in := philadelphia()
	tag, err := ScriptTag(n.BuildEventRecord(in))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(tag, `<script type="application/ld+json">{`))
	assert.True(t, strings.HasSuffix(tag, "}</script>\n"))
}

func TestHeadWithRecord(t *testing.T) {
	n, in := philadelphia()
	var buf bytes.Buffer
	require.NoError(t, Head(&buf, n.PageMeta(in), n.BuildEventRecord(in)))

	out := buf.String()
	assert.Contains(t, out, "<title>Winter Soccer Clinic in Philadelphia, PA | Philly Winter &amp; Spring Clinic | PTP Sports</title>")
	assert.Contains(t, out, `<meta property="og:type" content="event">`)
	assert.Contains(t, out, `<meta name="geo.placename" content="Philadelphia, PA">`)
	assert.Contains(t, out, "NCAA &amp; Pro coaches")
	assert.Contains(t, out, `<script type="application/ld+json">{"@context":"https://schema.org"`)
	assert.Equal(t, 1, strings.Count(out, "</script>"))
}

func TestHeadWithoutRecord(t *testing.T) {
	n, in := philadelphia()
	in.RawDate = nil
	in.City, in.State = "", ""

	var buf bytes.Buffer
	require.NoError(t, Head(&buf, n.PageMeta(in), n.BuildEventRecord(in)))

	out := buf.String()
	assert.Contains(t, out, "<title>")
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "geo.placename")
}
