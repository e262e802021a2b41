package pipeline

import "strings"

// Braille Patterns block bounds.
const (
	brailleBlockStart = '⠀' // BRAILLE PATTERN BLANK
	brailleBlockEnd   = '⣿'
)

// AlignBraille replaces every ordinary space with U+2800 (blank Braille
// pattern) on lines that contain at least one Braille-block character.
// In several monospace fonts the space and Braille-blank advance widths
// differ, which shears Braille art; substituting the blank pattern keeps
// whitespace on the same grid. Lines without Braille characters are left
// untouched.
func AlignBraille(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !containsBraille(line) {
			continue
		}
		lines[i] = strings.Map(func(r rune) rune {
			if r == ' ' {
				return brailleBlockStart
			}
			return r
		}, line)
	}
	return strings.Join(lines, "\n")
}

// containsBraille reports whether the line has a rune in U+2800-U+28FF.
func containsBraille(line string) bool {
	for _, r := range line {
		if r >= brailleBlockStart && r <= brailleBlockEnd {
			return true
		}
	}
	return false
}
