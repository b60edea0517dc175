package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted     lipgloss.TerminalColor = ac("240", "243")
	colorChromeFg  lipgloss.TerminalColor = ac("240", "245")
	colorAccent    lipgloss.TerminalColor = ac("27", "62") // blue, the drop indicator
	colorAccentFg  lipgloss.TerminalColor = ac("255", "235")
	colorFolderFg  lipgloss.TerminalColor = ac("235", "252")
	colorLeafFg    lipgloss.TerminalColor = ac("238", "250")
	colorGhostBg   lipgloss.TerminalColor = ac("252", "238")
	colorGhostFg   lipgloss.TerminalColor = ac("235", "255")
	colorRejectFg  lipgloss.TerminalColor = ac("160", "203")
	colorSubtleBar lipgloss.TerminalColor = ac("252", "236")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleHeader() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorChromeFg).
		BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(colorMuted)
}

func styleFolder() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorFolderFg)
}

func styleLeaf() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorLeafFg)
}

// styleDragSource dims the row of the item currently being dragged.
func styleDragSource() lipgloss.Style {
	return styleMuted().Italic(true)
}

func styleIndicator() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
}

func styleIdleGap() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorSubtleBar)
}

func styleGhost() lipgloss.Style {
	return lipgloss.NewStyle().Background(colorGhostBg).Foreground(colorGhostFg).Padding(0, 1)
}

func styleStatus() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorChromeFg)
}

func styleRejected() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorRejectFg)
}

func styleAccentBadge() lipgloss.Style {
	return lipgloss.NewStyle().Background(colorAccent).Foreground(colorAccentFg).Padding(0, 1)
}

// applyColorProfilePreference only honors NO_COLOR; otherwise it trusts termenv's detection,
// upgraded when TERM/COLORTERM advertise more than termenv detected.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	profile := termenv.ColorProfile()
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") && (profile == termenv.Ascii || profile == termenv.ANSI) {
		profile = termenv.ANSI256
	}
	lipgloss.SetColorProfile(profile)
}

// applyThemePreference picks the light or dark palette.
//
// Priority: the configured theme (light|dark), then the COLORFGBG "fg;bg" heuristic, then
// termenv's background query.
func applyThemePreference(theme string) {
	switch strings.ToLower(strings.TrimSpace(theme)) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
			return
		}
	}
	lipgloss.SetHasDarkBackground(termenv.HasDarkBackground())
}
