// Package drag turns a normalized stream of drag events into validated tree moves.
//
// A Controller is either idle or dragging exactly one item. While dragging it tracks a single
// candidate insertion point, recomputed from scratch on every hover. Release commits a move
// only when the release point passes the same legality rule that drives the hover indicator.
//
// A Controller is not safe for concurrent use; the presentation layer owns it on one goroutine.
package drag

import (
	"io"
	"strings"

	"playlist-organiser/internal/model"
	"playlist-organiser/internal/mutate"
	"playlist-organiser/internal/store"

	"github.com/sirupsen/logrus"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
)

func (p Phase) String() string {
	switch p {
	case PhaseDragging:
		return "dragging"
	default:
		return "idle"
	}
}

// State is the outbound view read by the presentation layer.
type State struct {
	Phase     Phase
	ItemID    string
	Candidate *model.InsertionPoint
}

func (s State) Dragging() bool { return s.Phase == PhaseDragging }

type Controller struct {
	store     *store.Store
	log       logrus.FieldLogger
	observers []Observer

	phase     Phase
	itemID    string
	candidate *model.InsertionPoint
}

type Option func(*Controller)

func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

func WithObserver(o Observer) Option {
	return func(c *Controller) {
		if o != nil {
			c.observers = append(c.observers, o)
		}
	}
}

func NewController(s *store.Store, opts ...Option) *Controller {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	c := &Controller{store: s, log: quiet}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Controller) State() State {
	st := State{Phase: c.phase, ItemID: c.itemID}
	if c.candidate != nil {
		p := *c.candidate
		st.Candidate = &p
	}
	return st
}

func (c *Controller) Tree() model.Tree { return c.store.Tree() }

// Start begins a drag of itemID. Surrounding whitespace is dropped from the id, which is then
// the one stored for the session. It reports false (and changes nothing) when a drag is
// already in progress or the id does not resolve.
func (c *Controller) Start(itemID string) bool {
	itemID = strings.TrimSpace(itemID)
	if c.phase == PhaseDragging {
		c.log.WithFields(logrus.Fields{"item": itemID, "active": c.itemID}).Debug("drag start while dragging; ignored")
		return false
	}
	if _, ok := store.Peek(c.store.Tree(), itemID); !ok {
		c.log.WithField("item", itemID).Debug("drag start on unknown item; ignored")
		return false
	}
	c.phase = PhaseDragging
	c.itemID = itemID
	c.candidate = nil
	c.log.WithField("item", itemID).Debug("drag started")
	return true
}

// Hover replaces the candidate with p when p is legal for the dragged item, and clears it
// otherwise (including p == nil). It reports whether a candidate is set.
func (c *Controller) Hover(p *model.InsertionPoint) bool {
	if c.phase != PhaseDragging {
		return false
	}
	c.candidate = c.legal(c.store.Tree(), normalizePoint(p))
	return c.candidate != nil
}

// legal returns a copy of p when it passes the move rule against tree, nil otherwise.
func (c *Controller) legal(tree model.Tree, p *model.InsertionPoint) *model.InsertionPoint {
	if p == nil {
		return nil
	}
	if err := mutate.CheckMove(tree, c.itemID, *p); err != nil {
		c.log.WithFields(logrus.Fields{"item": c.itemID, "parent": p.ParentID, "index": p.Index}).WithError(err).Debug("hover rejected")
		return nil
	}
	next := *p
	return &next
}

// Release ends the session. The release point goes through the same rule as a hover, on a
// single snapshot of the tree; a legal point commits the move as one whole-tree replacement.
func (c *Controller) Release(p *model.InsertionPoint) Outcome {
	if c.phase != PhaseDragging {
		return c.finish(Outcome{Kind: OutcomeIgnored})
	}
	p = normalizePoint(p)
	tree := c.store.Tree()

	out := Outcome{ItemID: c.itemID}
	out.From, _ = store.ParentOf(tree, c.itemID)
	if p == nil {
		out.Kind = OutcomeDroppedOutside
		return c.finish(out)
	}

	target := *p
	out.Target = &target
	res, err := mutate.Move(tree, c.itemID, target)
	if err != nil {
		out.Kind = OutcomeRejected
		out.Err = err
		return c.finish(out)
	}
	c.store.Replace(res.Tree)
	out.Kind = OutcomeCommitted
	landed := res.To
	out.Landed = &landed
	out.Changed = res.Changed
	return c.finish(out)
}

// normalizePoint gives direct callers the same parent id that index.ParseKey yields for a key.
func normalizePoint(p *model.InsertionPoint) *model.InsertionPoint {
	if p == nil {
		return nil
	}
	n := model.InsertionPoint{ParentID: strings.TrimSpace(p.ParentID), Index: p.Index}
	return &n
}

// Cancel ends the session without touching the tree.
func (c *Controller) Cancel() Outcome {
	if c.phase != PhaseDragging {
		return c.finish(Outcome{Kind: OutcomeIgnored})
	}
	out := Outcome{Kind: OutcomeCancelled, ItemID: c.itemID}
	out.From, _ = store.ParentOf(c.store.Tree(), c.itemID)
	return c.finish(out)
}

func (c *Controller) finish(out Outcome) Outcome {
	c.phase = PhaseIdle
	c.itemID = ""
	c.candidate = nil
	out.Version = c.store.Version()

	f := logrus.Fields{"outcome": string(out.Kind)}
	if out.ItemID != "" {
		f["item"] = out.ItemID
	}
	if out.Target != nil {
		f["parent"] = out.Target.ParentID
		f["index"] = out.Target.Index
	}
	entry := c.log.WithFields(f)
	if out.Err != nil {
		entry = entry.WithError(out.Err)
	}
	if out.Kind == OutcomeCommitted {
		entry.Info("drag finished")
	} else {
		entry.Debug("drag finished")
	}

	for _, o := range c.observers {
		o.Observe(out)
	}
	return out
}
