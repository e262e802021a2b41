package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// Placeholder tokens frame an ordinal index with a rare multi-character
// delimiter. They contain only ASCII letters, digits, and the section sign,
// so they pass through HTML escaping unchanged and are never partially
// matched by URL detection.
const (
	placeholderDelimiter = "§§"
	markdownKind         = "MD"
	literalKind          = "LIT"

	// markdownMarker is the prefix URL detection checks for to avoid
	// re-wrapping spans already claimed by Markdown link extraction.
	markdownMarker = placeholderDelimiter + markdownKind
)

// Absolute URI schemes recognized in Markdown link targets. Targets with
// any other prefix are treated as internal document references.
var absoluteSchemes = []string{"http://", "https://", "ftp://", "mailto:"}

// Schemes whose anchors open in a new browsing context.
var externalSchemes = []string{"http://", "https://", "ftp://"}

// Precompiled patterns for link detection.
var (
	// [display text](target), no nested brackets.
	markdownLinkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

	// Bare URLs: absolute http(s)/ftp, www.-prefixed hosts, or domain-like
	// tokens with an optional path, stopping at whitespace, quotes, and
	// angle brackets.
	literalURLPattern = regexp.MustCompile(
		`https?://[^\s<>"']+|ftp://[^\s<>"']+|www\.[^\s<>"']+|[a-zA-Z0-9-]+\.[a-zA-Z]{2,}(?:/[^\s<>"']*)?`)
)

// tokenGenerator produces unique placeholder tokens of one kind using a
// monotonic counter.
type tokenGenerator struct {
	kind string
	next int
}

// Next returns the next placeholder token, e.g. "§§MD0§§".
func (g *tokenGenerator) Next() string {
	token := placeholderDelimiter + g.kind + strconv.Itoa(g.next) + placeholderDelimiter
	g.next++
	return token
}

// LinkExtractor finds Markdown links and bare URLs in raw text, replaces
// each detected span with a unique placeholder, and records the anchor
// markup to restore after escaping.
type LinkExtractor struct{}

// anchorBinding pairs a placeholder token with its final anchor markup.
type anchorBinding struct {
	token  string
	anchor string
}

// Extraction holds placeholder-substituted text and the anchor markup for
// each placeholder token, in extraction order. Ordered restoration keeps
// the output deterministic even if the source text itself contains a
// literal placeholder token.
type Extraction struct {
	Text    string
	anchors []anchorBinding
}

// Extract runs both detection passes in order: Markdown links first, then
// literal URLs over the already-substituted text. A literal URL candidate
// whose span contains a Markdown placeholder marker is left untouched, so
// text consumed by a Markdown link can never be double-linked.
func (LinkExtractor) Extract(raw string) Extraction {
	var anchors []anchorBinding

	md := tokenGenerator{kind: markdownKind}
	text := markdownLinkPattern.ReplaceAllStringFunc(raw, func(match string) string {
		groups := markdownLinkPattern.FindStringSubmatch(match)
		token := md.Next()
		anchors = append(anchors, anchorBinding{token, markdownAnchor(groups[1], groups[2])})
		return token
	})

	lit := tokenGenerator{kind: literalKind}
	text = literalURLPattern.ReplaceAllStringFunc(text, func(match string) string {
		if strings.Contains(match, markdownMarker) {
			return match
		}
		token := lit.Next()
		anchors = append(anchors, anchorBinding{token, literalAnchor(match)})
		return token
	})

	return Extraction{Text: text, anchors: anchors}
}

// Restore substitutes every placeholder with its final anchor markup, in
// extraction order.
func (e Extraction) Restore(escaped string) string {
	restored := escaped
	for _, b := range e.anchors {
		restored = strings.ReplaceAll(restored, b.token, b.anchor)
	}
	return restored
}

// markdownAnchor resolves a Markdown link target into anchor markup.
// Absolute targets pass through unchanged; http/https/ftp targets open in
// a new browsing context. Anything else is an internal document reference:
// one leading path separator is stripped and a .html suffix appended
// unless already present.
func markdownAnchor(label, target string) string {
	if hasPrefixAny(target, absoluteSchemes) {
		if hasPrefixAny(target, externalSchemes) {
			return `<a href="` + target + `" target="_blank">` + label + `</a>`
		}
		return `<a href="` + target + `">` + label + `</a>`
	}

	href := strings.TrimPrefix(target, "/")
	if !strings.HasSuffix(href, ".html") {
		href += ".html"
	}
	return `<a href="` + href + `">` + label + `</a>`
}

// literalAnchor wraps a bare URL in anchor markup. The visible label keeps
// the original text; schemeless matches get http:// prepended in the href.
// Literal URLs always open in a new browsing context.
func literalAnchor(url string) string {
	href := url
	if !hasPrefixAny(url, externalSchemes) {
		href = "http://" + url
	}
	return `<a href="` + href + `" target="_blank">` + url + `</a>`
}

// hasPrefixAny reports whether s starts with any of the given prefixes.
func hasPrefixAny(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
