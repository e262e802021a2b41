// Package pipeline implements the text-to-HTML transformation stages:
// link and URL extraction with placeholder substitution, HTML escaping,
// Braille alignment, terminal-grid CSS generation, and document assembly.
package pipeline
