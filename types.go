package term2html

// Spacing model constants.
const (
	// SpacingModelOffset applies a direct letter-spacing tightening:
	// letter-spacing = -offset em.
	SpacingModelOffset = "offset"

	// SpacingModelCellWidth derives letter-spacing from a target cell
	// width: letter-spacing = (width - 1.0) em.
	SpacingModelCellWidth = "cellwidth"
)

// Spacing defaults.
const (
	// DefaultTightening is the default horizontal tightening in em units.
	DefaultTightening = 0.05

	// DefaultCellWidth is the neutral cell width (no letter-spacing
	// adjustment) for the cell-width spacing model.
	DefaultCellWidth = 1.0
)

// Default embedded web font, served next to the generated documents.
const (
	DefaultEmbeddedFontName = "SimBrailleWeb"
	DefaultEmbeddedFontPath = "fonts/SimBrailleWeb.woff2"
)

// defaultFontStack is the font fallback chain used when no custom stack is
// configured. It ends in the generic monospace keyword so every glyph still
// lands on a fixed-width font.
var defaultFontStack = []string{
	DefaultEmbeddedFontName,
	"Unifont",
	"DejaVu Sans Mono",
	"FreeMono",
	"monospace",
}

// DefaultFontStack returns a copy of the default font fallback chain.
func DefaultFontStack() []string {
	stack := make([]string, len(defaultFontStack))
	copy(stack, defaultFontStack)
	return stack
}

// Input contains rendering parameters for a single document.
type Input struct {
	Text  string // Raw UTF-8 source content
	Title string // Document title
}

// EmbeddedFont declares a web font to embed via @font-face ahead of the
// regular font stack.
type EmbeddedFont struct {
	Name string // font-family name
	Path string // URL or relative path to the WOFF2 file
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	spacingModel string
	spacing      float64 // tightening offset or cell width, per model
	braille      bool
	fontStack    []string
	embeddedFont *EmbeddedFont
}

// WithTightening selects the offset spacing model with the given horizontal
// tightening in em units. Larger values pull columns closer together.
func WithTightening(offset float64) Option {
	return func(s *Service) {
		s.cfg.spacingModel = SpacingModelOffset
		s.cfg.spacing = offset
	}
}

// WithCellWidth selects the cell-width spacing model: letter-spacing is
// computed as (width - 1.0) em. Panics if width <= 0 (programmer error,
// similar to time.NewTicker).
func WithCellWidth(width float64) Option {
	if width <= 0 {
		panic("term2html: WithCellWidth width must be positive")
	}
	return func(s *Service) {
		s.cfg.spacingModel = SpacingModelCellWidth
		s.cfg.spacing = width
	}
}

// WithBrailleAlignment toggles space-to-U+2800 substitution on lines that
// contain Braille-block characters.
func WithBrailleAlignment(enabled bool) Option {
	return func(s *Service) {
		s.cfg.braille = enabled
	}
}

// WithFontStack replaces the font fallback chain. Panics if fonts is empty
// (programmer error).
func WithFontStack(fonts []string) Option {
	if len(fonts) == 0 {
		panic("term2html: WithFontStack requires at least one font")
	}
	stack := make([]string, len(fonts))
	copy(stack, fonts)
	return func(s *Service) {
		s.cfg.fontStack = stack
	}
}

// WithEmbeddedFont declares a web font to load via @font-face.
func WithEmbeddedFont(name, path string) Option {
	return func(s *Service) {
		s.cfg.embeddedFont = &EmbeddedFont{Name: name, Path: path}
	}
}

// WithoutEmbeddedFont disables the @font-face declaration entirely,
// relying on locally installed fonts.
func WithoutEmbeddedFont() Option {
	return func(s *Service) {
		s.cfg.embeddedFont = nil
	}
}
