package pipeline

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Fixed grid metrics. The content block is 80 terminal cells wide; below
// 85ch the block shrinks with the viewport, and below the mobile breakpoint
// the font size drops so 80 columns still fit on a phone screen.
const (
	gridFontSize       = "32px"
	gridMobileFontSize = "20px"
	gridColumns        = "80ch"
	gridNarrowBreak    = "85ch"
	gridMobileBreak    = "768px"
)

// GridStyle holds the parameters for terminal-grid CSS generation.
type GridStyle struct {
	FontStack        []string
	EmbeddedFontName string // empty = no @font-face block
	EmbeddedFontPath string
	LetterSpacing    float64 // em
}

// BuildGridCSS generates a stylesheet that forces one-character-per-cell
// alignment: ligatures, kerning, and font smoothing disabled, white-space
// preserved, line height of exactly one text row, and a letter-spacing
// offset compensating for font advance-width mismatch.
func BuildGridCSS(style GridStyle) string {
	var buf strings.Builder

	if style.EmbeddedFontName != "" {
		buf.WriteString(fmt.Sprintf(`
@font-face {
  font-family: '%s';
  src: url('%s') format('woff2');
  font-display: swap;
}
`, style.EmbeddedFontName, style.EmbeddedFontPath))
	}

	buf.WriteString(`
body {
  margin: 0;
  padding: 20px;
  display: flex;
  justify-content: center;
  min-height: 100vh;
  background: #fff;
}
`)

	buf.WriteString(fmt.Sprintf(`
.content {
  font-family: %s;
  font-size: %s;
  line-height: 1em;          /* 1 terminal row */
  white-space: pre;
  word-spacing: 0;
  letter-spacing: %sem;  /* tighten cols */
  font-variant-ligatures: none;
  font-kerning: none;
  -webkit-font-smoothing: none;
  -moz-osx-font-smoothing: unset;
  text-rendering: optimizeSpeed;
  width: %s;
}
`, fontFamilyList(style.FontStack), gridFontSize, formatEm(style.LetterSpacing), gridColumns))

	buf.WriteString(fmt.Sprintf(`
@media (max-width: %s) {
  .content { width: 100%%; max-width: %s; }
}
@media (max-width: %s) {
  .content { font-size: %s; }
}
`, gridNarrowBreak, gridColumns, gridMobileBreak, gridMobileFontSize))

	return buf.String()
}

// fontFamilyList renders the font stack as a CSS font-family value.
// Names containing spaces are quoted; single-word names and the generic
// monospace keyword stay bare.
func fontFamilyList(fonts []string) string {
	quoted := make([]string, len(fonts))
	for i, f := range fonts {
		if strings.Contains(f, " ") {
			quoted[i] = `"` + f + `"`
		} else {
			quoted[i] = f
		}
	}
	return strings.Join(quoted, ", ")
}

// formatEm renders a spacing value with minimal digits (e.g. "-0.05").
// Rounding to four decimal places first absorbs float64 artifacts from
// derived values like 0.9 - 1.0, and 'f' formatting keeps the output in
// plain decimal notation for arbitrarily small inputs.
func formatEm(v float64) string {
	rounded := math.Round(v*1e4) / 1e4
	if rounded == 0 {
		return "0"
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
