package tui

import (
	"fmt"
	"io"

	"playlist-organiser/internal/drag"
	"playlist-organiser/internal/index"
	"playlist-organiser/internal/model"
	"playlist-organiser/internal/store"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/sirupsen/logrus"
)

type hitKind int

const (
	hitNone hitKind = iota
	hitItem
	hitToggle
	hitGap
)

// hit is what lies under the pointer.
type hit struct {
	kind     hitKind
	itemID   string
	pointKey string
}

type appModel struct {
	ctrl *drag.Controller
	log  logrus.FieldLogger

	zones  *zone.Manager
	prefix string
	// hitTest overrides zone lookups when set.
	hitTest func(msg tea.MouseMsg) hit

	keys   keyMap
	help   help.Model
	glyphs glyphs
	indent int

	width  int
	height int

	collapsed map[string]bool
	rows      []row
	ix        index.Index

	pointerX int
	pointerY int

	last     *drag.Outcome
	showHelp bool
}

func newAppModel(ctrl *drag.Controller, opts Options) appModel {
	log := opts.Logger
	if log == nil {
		quiet := logrus.New()
		quiet.SetOutput(io.Discard)
		log = quiet
	}
	indent := opts.Indent
	if indent <= 0 {
		indent = 2
	}
	m := appModel{
		ctrl:      ctrl,
		log:       log,
		keys:      defaultKeyMap(),
		help:      help.New(),
		glyphs:    glyphs{set: glyphSetFromEnv()},
		indent:    indent,
		collapsed: map[string]bool{},
	}
	if opts.Zones != nil {
		m.zones = opts.Zones
		m.prefix = opts.Zones.NewPrefix()
	}
	m.refresh()
	return m
}

func (m *appModel) refresh() {
	tree := m.ctrl.Tree()
	m.ix = index.Build(tree)
	m.rows = flattenTree(tree, m.ix, m.collapsed)
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.ctrl.State().Dragging() {
			m.dispatch(drag.DragCancel{})
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		if m.ctrl.State().Dragging() {
			m.dispatch(drag.DragCancel{})
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.ExpandAll):
		if !m.ctrl.State().Dragging() {
			m.collapsed = map[string]bool{}
			m.refresh()
		}
		return m, nil
	case key.Matches(msg, m.keys.CollapseAll):
		if !m.ctrl.State().Dragging() {
			m.collapseAll()
			m.refresh()
		}
		return m, nil
	}
	return m, nil
}

func (m appModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.pointerX, m.pointerY = msg.X, msg.Y
	dragging := m.ctrl.State().Dragging()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || dragging || m.showHelp {
			return m, nil
		}
		h := m.hitAt(msg)
		switch h.kind {
		case hitToggle:
			m.toggle(h.itemID)
		case hitItem:
			m.dispatch(drag.DragStart{ItemID: h.itemID})
		}
	case tea.MouseActionMotion:
		if dragging {
			m.dispatch(drag.DragHover{PointKey: m.hitAt(msg).gapKey()})
		}
	case tea.MouseActionRelease:
		if dragging {
			m.dispatch(drag.DragRelease{PointKey: m.hitAt(msg).gapKey()})
		}
	}
	return m, nil
}

func (h hit) gapKey() string {
	if h.kind != hitGap {
		return ""
	}
	return h.pointKey
}

func (m *appModel) dispatch(ev drag.Event) {
	out, done := m.ctrl.Dispatch(ev)
	if !done {
		return
	}
	if out.Kind != drag.OutcomeIgnored {
		o := out
		m.last = &o
	}
	m.refresh()
}

func (m *appModel) toggle(id string) {
	if m.collapsed[id] {
		delete(m.collapsed, id)
	} else {
		m.collapsed[id] = true
	}
	m.log.WithFields(logrus.Fields{"folder": id, "collapsed": m.collapsed[id]}).Debug("toggle folder")
	m.refresh()
}

func (m *appModel) collapseAll() {
	var walk func(nodes []model.Node)
	walk = func(nodes []model.Node) {
		for _, n := range nodes {
			if n.IsFolder() {
				m.collapsed[n.ID] = true
				walk(n.Children)
			}
		}
	}
	walk(m.ctrl.Tree())
}

func (m appModel) zoneID(kind, id string) string {
	return m.prefix + kind + ":" + id
}

func (m appModel) mark(kind, id, v string) string {
	if m.zones == nil {
		return v
	}
	return m.zones.Mark(m.zoneID(kind, id), v)
}

func (m appModel) hitAt(msg tea.MouseMsg) hit {
	if m.hitTest != nil {
		return m.hitTest(msg)
	}
	if m.zones == nil {
		return hit{}
	}
	for _, r := range m.rows {
		switch r.kind {
		case rowItem:
			if r.node.IsFolder() && m.zones.Get(m.zoneID("toggle", r.node.ID)).InBounds(msg) {
				return hit{kind: hitToggle, itemID: r.node.ID}
			}
			if m.zones.Get(m.zoneID("item", r.node.ID)).InBounds(msg) {
				return hit{kind: hitItem, itemID: r.node.ID}
			}
		case rowGap:
			if m.zones.Get(m.zoneID("gap", r.point.Key)).InBounds(msg) {
				return hit{kind: hitGap, pointKey: r.point.Key}
			}
		}
	}
	return hit{}
}

func (m appModel) titleOf(id string) string {
	if n, ok := store.FindByID(m.ctrl.Tree(), id); ok && n.Title != "" {
		return n.Title
	}
	return id
}

func (m appModel) describeTarget(p *model.InsertionPoint) string {
	if p == nil {
		return "nowhere"
	}
	if p.IsRoot() {
		return fmt.Sprintf("top level, position %d", p.Index+1)
	}
	return fmt.Sprintf("%s, position %d", m.titleOf(p.ParentID), p.Index+1)
}
