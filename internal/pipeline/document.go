package pipeline

import "fmt"

// documentShell is the minimal HTML wrapper around the transformed body:
// doctype, charset and viewport metadata, title, embedded stylesheet, and a
// single preformatted content block.
const documentShell = `<!DOCTYPE html><html lang='en'><head>
<meta charset='UTF-8'><meta name='viewport' content='width=device-width, initial-scale=1.0'>
<title>%s</title><style>%s</style></head>
<body><pre class='content'>%s</pre></body></html>`

// AssembleDocument wraps the escaped body and generated CSS in a complete,
// self-contained HTML document. The title goes through the same
// three-character escaping as the body.
func AssembleDocument(title, css, body string) string {
	return fmt.Sprintf(documentShell, EscapeHTML(title), css, body)
}
