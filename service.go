package term2html

import (
	"context"

	"github.com/alnah/go-term2html/internal/pipeline"
)

// Service orchestrates the text-to-HTML rendering pipeline.
type Service struct {
	cfg       serviceConfig
	extractor pipeline.LinkExtractor
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithBrailleAlignment).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			spacingModel: SpacingModelOffset,
			spacing:      DefaultTightening,
			fontStack:    DefaultFontStack(),
			embeddedFont: &EmbeddedFont{
				Name: DefaultEmbeddedFontName,
				Path: DefaultEmbeddedFontPath,
			},
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Render converts raw text into a complete HTML document string.
// The transformation is pure in-memory string computation; the only error
// source is context cancellation.
func (s *Service) Render(ctx context.Context, input Input) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	text := input.Text

	// Braille alignment runs first so anchor markup inserted later keeps
	// ordinary spaces inside its attributes.
	if s.cfg.braille {
		text = pipeline.AlignBraille(text)
	}

	// Extract links, escape the remainder, restore anchors.
	extraction := s.extractor.Extract(text)
	escaped := pipeline.EscapeHTML(extraction.Text)
	body := extraction.Restore(escaped)

	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	css := pipeline.BuildGridCSS(s.gridStyle())
	return pipeline.AssembleDocument(input.Title, css, body), nil
}

// gridStyle converts the service configuration into pipeline CSS parameters.
func (s *Service) gridStyle() pipeline.GridStyle {
	style := pipeline.GridStyle{
		FontStack:     s.cfg.fontStack,
		LetterSpacing: s.letterSpacing(),
	}
	if s.cfg.embeddedFont != nil {
		style.EmbeddedFontName = s.cfg.embeddedFont.Name
		style.EmbeddedFontPath = s.cfg.embeddedFont.Path
	}
	return style
}

// letterSpacing computes the final letter-spacing in em units from the
// configured spacing model.
func (s *Service) letterSpacing() float64 {
	if s.cfg.spacingModel == SpacingModelCellWidth {
		return s.cfg.spacing - 1.0
	}
	return -s.cfg.spacing
}
