package tui

import (
	"os"
	"strings"
)

// Unicode or ASCII affordances; some fonts render the Unicode set poorly.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

func glyphSetFromEnv() glyphSet {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("ORGANISER_TUI_GLYPHS"))) {
	case "ascii":
		return glyphSetASCII
	default:
		return glyphSetUnicode
	}
}

type glyphs struct {
	set glyphSet
}

func (g glyphs) twisty(collapsed bool) string {
	if g.set == glyphSetASCII {
		if collapsed {
			return ">"
		}
		return "v"
	}
	if collapsed {
		return "▶"
	}
	return "▼"
}

func (g glyphs) folder() string {
	if g.set == glyphSetASCII {
		return "[+]"
	}
	return "📁"
}

func (g glyphs) playlist() string {
	if g.set == glyphSetASCII {
		return "[~]"
	}
	return "🎵"
}

func (g glyphs) handle() string {
	if g.set == glyphSetASCII {
		return "="
	}
	return "≡"
}

func (g glyphs) indicator() string {
	if g.set == glyphSetASCII {
		return "-"
	}
	return "━"
}

func (g glyphs) gap() string {
	if g.set == glyphSetASCII {
		return "."
	}
	return "┄"
}
