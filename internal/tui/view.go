package tui

import (
	"fmt"
	"strings"

	"playlist-organiser/internal/drag"
	"playlist-organiser/internal/index"
	"playlist-organiser/internal/mutate"

	"github.com/charmbracelet/x/ansi"
)

func (m appModel) View() string {
	if m.showHelp {
		return m.viewHelp()
	}

	st := m.ctrl.State()
	var b strings.Builder
	b.WriteString(styleHeader().Render("Playlists"))
	b.WriteString("\n")
	for _, r := range m.rows {
		b.WriteString(m.renderRow(r, st))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.statusLine(st))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	out := b.String()
	if m.zones != nil {
		out = m.zones.Scan(out)
	}
	if st.Dragging() {
		out = overlayLine(out, m.pointerY, m.pointerX, m.ghost(st))
	}
	return out
}

func (m appModel) viewHelp() string {
	w := m.width
	if w <= 0 {
		w = 80
	}
	return renderMarkdown(helpMarkdown(), w-2) + "\n\n" + styleMuted().Render("esc or ? to close")
}

func (m appModel) lineWidth() int {
	if m.width > 0 {
		return m.width
	}
	return 80
}

func (m appModel) renderRow(r row, st drag.State) string {
	pad := strings.Repeat(" ", r.depth*m.indent)
	w := m.lineWidth()

	if r.kind == rowGap {
		line := strings.Repeat(" ", w)
		switch {
		case st.Candidate != nil && *st.Candidate == r.point.InsertionPoint:
			bar := w - ansi.StringWidth(pad)
			if bar < 1 {
				bar = 1
			}
			line = pad + styleIndicator().Render(strings.Repeat(m.glyphs.indicator(), bar))
		case st.Dragging() && m.legalGap(st.ItemID, r.point):
			bar := w - ansi.StringWidth(pad)
			if bar > 12 {
				bar = 12
			}
			if bar < 1 {
				bar = 1
			}
			line = pad + styleIdleGap().Render(strings.Repeat(m.glyphs.gap(), bar))
		}
		return m.mark("gap", r.point.Key, fitWidth(line, w))
	}

	n := r.node
	var head string
	if n.IsFolder() {
		head = m.mark("toggle", n.ID, m.glyphs.twisty(r.collapsed)) + " "
	} else {
		head = "  "
	}

	icon := m.glyphs.playlist()
	title := styleLeaf().Render(n.Title)
	if n.IsFolder() {
		icon = m.glyphs.folder()
		title = styleFolder().Render(n.Title)
		if r.collapsed {
			title += styleMuted().Render(fmt.Sprintf(" (%d)", len(n.Children)))
		}
	}
	body := m.glyphs.handle() + " " + icon + " " + title
	if st.Dragging() && st.ItemID == n.ID {
		body = styleDragSource().Render(m.glyphs.handle() + " " + icon + " " + n.Title)
	}
	return fitWidth(pad+head+m.mark("item", n.ID, body), w)
}

func (m appModel) legalGap(itemID string, p index.Point) bool {
	return mutate.CheckMove(m.ctrl.Tree(), itemID, p.InsertionPoint) == nil
}

func (m appModel) statusLine(st drag.State) string {
	if st.Dragging() {
		title := m.titleOf(st.ItemID)
		if st.Candidate == nil {
			return styleStatus().Render(fmt.Sprintf("Dragging %q: no drop target", title))
		}
		return styleAccentBadge().Render("drop") + " " +
			styleStatus().Render(fmt.Sprintf("%q into %s", title, m.describeTarget(st.Candidate)))
	}
	if m.last == nil {
		return styleMuted().Render("Drag a folder or playlist with the mouse to reorder.")
	}
	o := *m.last
	title := m.titleOf(o.ItemID)
	switch o.Kind {
	case drag.OutcomeCommitted:
		if !o.Changed {
			return styleStatus().Render(fmt.Sprintf("%q dropped back in place", title))
		}
		return styleStatus().Render(fmt.Sprintf("Moved %q to %s", title, m.describeTarget(o.Landed)))
	case drag.OutcomeRejected:
		msg := fmt.Sprintf("Cannot move %q there", title)
		if o.Err != nil {
			msg += ": " + o.Err.Error()
		}
		return styleRejected().Render(msg)
	case drag.OutcomeDroppedOutside, drag.OutcomeCancelled:
		return styleMuted().Render("Nothing changed.")
	}
	return ""
}

func (m appModel) ghost(st drag.State) string {
	return styleGhost().Render(m.glyphs.handle() + " " + m.titleOf(st.ItemID))
}

func fitWidth(line string, w int) string {
	if w <= 0 {
		return line
	}
	return ansi.Truncate(line, w, "…")
}

// overlayLine draws s over line y of view starting at column x; text to the right of the
// overlay is dropped.
func overlayLine(view string, y, x int, s string) string {
	lines := strings.Split(view, "\n")
	if y < 0 || y >= len(lines) || x < 0 {
		return view
	}
	x++
	left := ansi.Truncate(lines[y], x, "")
	if gap := x - ansi.StringWidth(left); gap > 0 {
		left += strings.Repeat(" ", gap)
	}
	lines[y] = left + s
	return strings.Join(lines, "\n")
}
