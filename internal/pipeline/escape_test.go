package pipeline

import "testing"

func TestEscapeHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "ampersand",
			input:    "fish & chips",
			expected: "fish &amp; chips",
		},
		{
			name:     "angle brackets",
			input:    "<pre>",
			expected: "&lt;pre&gt;",
		},
		{
			name:     "all three reserved characters",
			input:    "a < b && b > c",
			expected: "a &lt; b &amp;&amp; b &gt; c",
		},
		{
			name:     "quotes preserved verbatim",
			input:    `she said "hi" and 'bye'`,
			expected: `she said "hi" and 'bye'`,
		},
		{
			name:     "already escaped entity is escaped again",
			input:    "&amp;",
			expected: "&amp;amp;",
		},
		{
			name:     "unicode passes through",
			input:    "⠁⠃⠉ braille",
			expected: "⠁⠃⠉ braille",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := EscapeHTML(tt.input)
			if got != tt.expected {
				t.Errorf("EscapeHTML() = %q, want %q", got, tt.expected)
			}
		})
	}
}
