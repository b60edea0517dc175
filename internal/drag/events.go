package drag

import (
	"playlist-organiser/internal/index"
	"playlist-organiser/internal/model"
)

// Event is one entry of the normalized stream produced by a presentation layer.
type Event interface {
	isEvent()
}

type DragStart struct {
	ItemID string
}

// DragHover names the insertion point under the pointer. An empty or malformed key means
// the pointer is over no insertion point.
type DragHover struct {
	PointKey string
}

type DragRelease struct {
	PointKey string
}

type DragCancel struct{}

func (DragStart) isEvent()   {}
func (DragHover) isEvent()   {}
func (DragRelease) isEvent() {}
func (DragCancel) isEvent()  {}

// Dispatch applies ev. It returns the session outcome and true when ev ended a session
// (release/cancel, including ignored ones); start and hover return false.
func (c *Controller) Dispatch(ev Event) (Outcome, bool) {
	switch e := ev.(type) {
	case DragStart:
		c.Start(e.ItemID)
	case DragHover:
		c.Hover(decodePoint(e.PointKey))
	case DragRelease:
		return c.Release(decodePoint(e.PointKey)), true
	case DragCancel:
		return c.Cancel(), true
	}
	return Outcome{}, false
}

func decodePoint(key string) *model.InsertionPoint {
	if key == "" {
		return nil
	}
	p, ok := index.ParseKey(key)
	if !ok {
		return nil
	}
	return &p
}
