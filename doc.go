// Package term2html converts plain-text and Markdown sources into HTML
// documents that reproduce a monospaced terminal grid, one character per
// cell, including Braille-block art (U+2800-U+28FF).
//
// # Quick Start
//
// Create a service and render text:
//
//	svc := term2html.New()
//	html, err := svc.Render(ctx, term2html.Input{
//	    Text:  "visit [docs](guide) or www.example.com",
//	    Title: "index",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("index.html", []byte(html), 0644)
//
// # Rendering Pipeline
//
// Rendering follows these stages:
//
//  1. Braille alignment (optional, space -> U+2800 on Braille lines)
//  2. Markdown link extraction ([text](target) -> placeholder)
//  3. Literal URL extraction (bare URLs -> placeholder)
//  4. HTML escaping of the remaining text (&, <, > only)
//  5. Placeholder restoration with final anchor markup
//  6. Terminal-grid CSS generation and document assembly
//
// Markdown links take precedence over literal URLs: a span consumed by link
// extraction is never re-wrapped by URL detection.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := term2html.New(
//	    term2html.WithBrailleAlignment(true),
//	    term2html.WithTightening(0.08),
//	    term2html.WithFontStack([]string{"Unifont", "monospace"}),
//	)
//
// Rendering is a pure function of the input and configuration: identical
// inputs produce byte-identical output, and a Service is safe for
// concurrent use.
package term2html
