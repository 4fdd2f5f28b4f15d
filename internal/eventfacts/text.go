package eventfacts

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// strictPolicy removes every tag and drops script/style bodies.
	strictPolicy = bluemonday.StrictPolicy()

	// ugcPolicy keeps the inline markup editors use in reminder text.
	ugcPolicy = bluemonday.UGCPolicy()

	// mapsEmbedPolicy admits a single Google Maps iframe.
	mapsEmbedPolicy = newMapsEmbedPolicy()

	mapsSrcPattern   = regexp.MustCompile(`^https://(www\.)?google\.[a-z.]+/maps(/embed)?\b`)
	lineSpacePattern = regexp.MustCompile(`[ \t\r\n\f\v]+`)
)

func newMapsEmbedPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowStandardURLs()
	p.AllowAttrs("src").Matching(mapsSrcPattern).OnElements("iframe")
	p.AllowAttrs("width", "height").Matching(bluemonday.NumberOrPercent).OnElements("iframe")
	p.AllowAttrs("title", "loading", "allowfullscreen", "referrerpolicy").OnElements("iframe")
	return p
}

// StripTags returns s as plain text: markup removed, entities decoded,
// surrounding whitespace trimmed.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

// SanitizeTextField is applied to single-line admin input: tags stripped and
// runs of whitespace collapsed to one space.
func SanitizeTextField(s string) string {
	return lineSpacePattern.ReplaceAllString(StripTags(s), " ")
}

// SanitizeTextarea strips tags but keeps line breaks.
func SanitizeTextarea(s string) string {
	lines := strings.Split(StripTags(s), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(lineSpacePattern.ReplaceAllString(line, " "))
	}
	return strings.Join(lines, "\n")
}

// SanitizeRichText keeps safe user-content markup (links, emphasis, lists).
func SanitizeRichText(s string) string {
	return strings.TrimSpace(ugcPolicy.Sanitize(s))
}

// SanitizeMapsEmbed keeps only a Google Maps iframe from pasted embed code.
func SanitizeMapsEmbed(s string) string {
	return strings.TrimSpace(mapsEmbedPolicy.Sanitize(s))
}
