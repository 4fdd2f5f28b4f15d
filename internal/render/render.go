// Package render turns normalized facts into the page fragments a product
// page embeds: the JSON-LD script tag and the head meta tags.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/ptpsports/clinic-facts/internal/eventfacts"
)

// ContentTypeJSONLD is the media type of a structured-data document.
const ContentTypeJSONLD = "application/ld+json"

// JSONLD encodes rec as a compact JSON document. Slashes and non-ASCII text
// are written as-is; <, > and & are escaped so the document can sit inside a
// script element. A nil record encodes to nil.
func JSONLD(rec *eventfacts.EventRecord) ([]byte, error) {
	if rec == nil {
		return nil, nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	if err := enc.Encode(rec); err != nil {
		return nil, fmt.Errorf("encode event record: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// ScriptTag returns the <script type="application/ld+json"> element for rec,
// or "" when there is no record to emit.
func ScriptTag(rec *eventfacts.EventRecord) (string, error) {
	data, err := JSONLD(rec)
	if err != nil || data == nil {
		return "", err
	}
	return `<script type="` + ContentTypeJSONLD + `">` + string(data) + "</script>\n", nil
}

var headTmpl = template.Must(template.New("head").Parse(`<title>{{.Meta.Title}}</title>
<meta name="description" content="{{.Meta.Description}}">
<meta property="og:title" content="{{.Meta.OGTitle}}">
<meta property="og:description" content="{{.Meta.OGDescription}}">
<meta property="og:type" content="{{.Meta.OGType}}">
{{- if .Meta.PlaceName}}
<meta name="geo.placename" content="{{.Meta.PlaceName}}">
<meta name="keywords" content="{{.Meta.Keywords}}">
{{- end}}
{{- if .JSONLD}}
<script type="application/ld+json">{{.JSONLD}}</script>
{{- end}}
`))

type headData struct {
	Meta   eventfacts.PageMeta
	JSONLD template.JS
}

// Head writes the meta tags for a product page followed by the structured
// data script when rec is non-nil.
func Head(w io.Writer, meta eventfacts.PageMeta, rec *eventfacts.EventRecord) error {
	data, err := JSONLD(rec)
	if err != nil {
		return err
	}
	// JSONLD escapes <, > and &, so the document is safe inside the script.
	if err := headTmpl.Execute(w, headData{Meta: meta, JSONLD: template.JS(data)}); err != nil {
		return fmt.Errorf("render head: %w", err)
	}
	return nil
}
