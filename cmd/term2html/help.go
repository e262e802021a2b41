package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: term2html [flags] <source> <destination>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Compile plain-text or Markdown files to terminal-grid HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  source         File or directory; a directory is compiled recursively")
	fmt.Fprintln(w, "                 (*.md, *.markdown), mirrored under the destination root")
	fmt.Fprintln(w, "  destination    Output file (single-file mode) or directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --out-dir <dir>     Output directory prefix for the destination")
	fmt.Fprintln(w, "      --title <s>         Custom title (single-file mode only)")
	fmt.Fprintln(w, "      --braille           Swap spaces for U+2800 on lines containing Braille")
	fmt.Fprintln(w, "      --tight <f>         Extra horizontal tightening in em (default 0.05)")
	fmt.Fprintln(w, "      --cell-width <f>    Target cell width in em (selects cell-width spacing)")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show detailed timing")
	fmt.Fprintln(w, "      --version           Show version information")
}
