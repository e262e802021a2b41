package term2html_test

import (
	"context"
	"fmt"
	"strings"

	term2html "github.com/alnah/go-term2html"
)

// Example demonstrates basic text to terminal-grid HTML rendering.
func Example() {
	svc := term2html.New()

	html, err := svc.Render(context.Background(), term2html.Input{
		Text:  "see [docs](guide) or www.example.com",
		Title: "index",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(html, `<a href="guide.html">docs</a>`) {
		fmt.Println("markdown link resolved")
	}
	if strings.Contains(html, `<a href="http://www.example.com" target="_blank">www.example.com</a>`) {
		fmt.Println("bare URL wrapped")
	}
	// Output:
	// markdown link resolved
	// bare URL wrapped
}

// Example_braille demonstrates Braille art alignment.
func Example_braille() {
	svc := term2html.New(term2html.WithBrailleAlignment(true))

	html, err := svc.Render(context.Background(), term2html.Input{
		Text:  "⠋⠊⠛ ⠁⠗⠞",
		Title: "art",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(html, "⠋⠊⠛⠀⠁⠗⠞") {
		fmt.Println("spaces aligned to braille grid")
	}
	// Output: spaces aligned to braille grid
}
