package pipeline

import "strings"

// htmlEscaper replaces exactly the three reserved characters. Quotes are
// intentionally preserved: the body lands inside a <pre> block, never in an
// attribute, and terminal art relies on verbatim punctuation.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeHTML escapes &, <, and > for safe embedding in the document body.
// Placeholder tokens survive unchanged since they contain none of these
// characters.
func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}
