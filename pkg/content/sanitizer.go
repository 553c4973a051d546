// Package content converts article bodies between the stored form (plain text or HTML)
// and what the pages and the reading time calculation need.
package content

import (
	"html"
	"regexp"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

// known markup tags only, so "x <y and z> w" in plain text is not taken for HTML
var tagRegex = regexp.MustCompile(`(?i)</?(?:p|br|hr|div|span|a|b|i|u|em|strong|small|sub|sup|ul|ol|li|h[1-6]|img|figure|figcaption|` +
	`blockquote|pre|code|table|thead|tbody|tr|td|th|iframe|video|source|script|style)(?:\s[^>]*)?/?>`)

var (
	paragraphRegex = regexp.MustCompile(`\n\s*\n`)
	spaceRegex     = regexp.MustCompile(`\s+`)
)

// Sanitizer cleans article HTML for rendering and strips it for text processing
type Sanitizer struct {
	ugc    *bluemonday.Policy
	strict *bluemonday.Policy
}

// NewSanitizer makes a sanitizer allowing user-generated-content markup
func NewSanitizer() *Sanitizer {
	ugc := bluemonday.UGCPolicy()
	ugc.RequireNoFollowOnLinks(true)
	ugc.AddTargetBlankToFullyQualifiedLinks(true)
	return &Sanitizer{ugc: ugc, strict: bluemonday.StrictPolicy()}
}

// IsHTML reports whether the text looks like it contains markup
func IsHTML(s string) bool {
	return tagRegex.MatchString(s)
}

// HTML returns safe HTML for the article body. Plain text is split into paragraphs
// on blank lines and escaped; markup is passed through the UGC policy.
func (s *Sanitizer) HTML(body string) string {
	body = strings.TrimSpace(body)
	if body == "" {
		return ""
	}
	if IsHTML(body) {
		return s.ugc.Sanitize(body)
	}

	var sb strings.Builder
	for _, p := range paragraphRegex.Split(body, -1) {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		sb.WriteString("<p>")
		sb.WriteString(html.EscapeString(p))
		sb.WriteString("</p>")
	}
	return sb.String()
}

// Text strips all markup and collapses whitespace
func (s *Sanitizer) Text(body string) string {
	if !IsHTML(body) {
		return strings.TrimSpace(body)
	}
	// keep words in adjacent block elements apart before stripping
	spaced := strings.ReplaceAll(body, "<", " <")
	stripped := html.UnescapeString(s.strict.Sanitize(spaced))
	return strings.TrimSpace(spaceRegex.ReplaceAllString(stripped, " "))
}

// Excerpt returns the plain text cut to at most maxRunes runes on a word boundary
func (s *Sanitizer) Excerpt(body string, maxRunes int) string {
	text := s.Text(body)
	runes := []rune(text)
	if maxRunes <= 0 || len(runes) <= maxRunes {
		return text
	}
	cut := string(runes[:maxRunes])
	if !unicode.IsSpace(runes[maxRunes]) {
		if idx := strings.LastIndexAny(cut, " \t\n"); idx > 0 {
			cut = cut[:idx]
		}
	}
	return strings.TrimRight(cut, " ,.;:-") + "…"
}
