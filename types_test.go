package term2html

import "testing"

func TestDefaultFontStack_ReturnsCopy(t *testing.T) {
	t.Parallel()

	stack := DefaultFontStack()
	stack[0] = "mutated"

	fresh := DefaultFontStack()
	if fresh[0] != DefaultEmbeddedFontName {
		t.Errorf("DefaultFontStack() shares backing array: got %q", fresh[0])
	}
}

func TestWithFontStack_CopiesInput(t *testing.T) {
	t.Parallel()

	fonts := []string{"Unifont", "monospace"}
	svc := New(WithFontStack(fonts))
	fonts[0] = "mutated"

	if svc.cfg.fontStack[0] != "Unifont" {
		t.Errorf("WithFontStack() shares caller slice: got %q", svc.cfg.fontStack[0])
	}
}

func TestWithCellWidth_PanicsOnNonPositive(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithCellWidth(0) did not panic")
		}
	}()
	WithCellWidth(0)
}

func TestWithFontStack_PanicsOnEmpty(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithFontStack(nil) did not panic")
		}
	}()
	WithFontStack(nil)
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	svc := New()

	if svc.cfg.spacingModel != SpacingModelOffset {
		t.Errorf("spacingModel = %q, want %q", svc.cfg.spacingModel, SpacingModelOffset)
	}
	if svc.cfg.spacing != DefaultTightening {
		t.Errorf("spacing = %v, want %v", svc.cfg.spacing, DefaultTightening)
	}
	if svc.cfg.braille {
		t.Error("braille enabled by default")
	}
	if svc.cfg.embeddedFont == nil || svc.cfg.embeddedFont.Name != DefaultEmbeddedFontName {
		t.Errorf("embeddedFont = %+v, want default %q", svc.cfg.embeddedFont, DefaultEmbeddedFontName)
	}
	if len(svc.cfg.fontStack) == 0 || svc.cfg.fontStack[len(svc.cfg.fontStack)-1] != "monospace" {
		t.Errorf("fontStack = %v, want stack ending in monospace", svc.cfg.fontStack)
	}
}

func TestNew_OptionsOverrideDefaults(t *testing.T) {
	t.Parallel()

	svc := New(
		WithCellWidth(1.1),
		WithBrailleAlignment(true),
		WithEmbeddedFont("Custom", "fonts/custom.woff2"),
	)

	if svc.cfg.spacingModel != SpacingModelCellWidth {
		t.Errorf("spacingModel = %q, want %q", svc.cfg.spacingModel, SpacingModelCellWidth)
	}
	if svc.cfg.spacing != 1.1 {
		t.Errorf("spacing = %v, want 1.1", svc.cfg.spacing)
	}
	if !svc.cfg.braille {
		t.Error("braille not enabled")
	}
	if svc.cfg.embeddedFont.Name != "Custom" || svc.cfg.embeddedFont.Path != "fonts/custom.woff2" {
		t.Errorf("embeddedFont = %+v", svc.cfg.embeddedFont)
	}
}
