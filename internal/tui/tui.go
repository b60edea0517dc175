package tui

import (
	"playlist-organiser/internal/drag"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/sirupsen/logrus"
)

type Options struct {
	// Theme is auto, light or dark.
	Theme  string
	Indent int
	Logger logrus.FieldLogger
	// Zones is used for mouse hit testing; Run creates one when nil.
	Zones *zone.Manager
}

// Run starts the full-screen organiser. Every drag is routed through ctrl; the caller owns
// ctrl's observers (journal, logging).
func Run(ctrl *drag.Controller, opts Options) error {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)

	if opts.Zones == nil {
		opts.Zones = zone.New()
		defer opts.Zones.Close()
	}
	m := newAppModel(ctrl, opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
