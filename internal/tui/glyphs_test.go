package tui

import "testing"

func TestGlyphs_FromEnv(t *testing.T) {
	t.Setenv("ORGANISER_TUI_GLYPHS", "")
	if got := glyphSetFromEnv(); got != glyphSetUnicode {
		t.Fatalf("expected unicode glyphs by default; got %v", got)
	}

	t.Setenv("ORGANISER_TUI_GLYPHS", "ascii")
	if got := glyphSetFromEnv(); got != glyphSetASCII {
		t.Fatalf("expected ascii glyphs; got %v", got)
	}

	t.Setenv("ORGANISER_TUI_GLYPHS", "bogus")
	if got := glyphSetFromEnv(); got != glyphSetUnicode {
		t.Fatalf("expected unknown values to fall back to unicode; got %v", got)
	}
}

func TestGlyphs_TwistyReflectsState(t *testing.T) {
	g := glyphs{set: glyphSetASCII}
	if g.twisty(true) == g.twisty(false) {
		t.Fatalf("expected distinct collapsed/expanded glyphs")
	}
}
