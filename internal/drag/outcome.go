package drag

import "playlist-organiser/internal/model"

type OutcomeKind string

const (
	// OutcomeCommitted: the release landed on a legal point and the tree was replaced.
	OutcomeCommitted OutcomeKind = "committed"
	// OutcomeRejected: the release named a point that failed the legality rule.
	OutcomeRejected OutcomeKind = "rejected"
	// OutcomeDroppedOutside: the release named no insertion point.
	OutcomeDroppedOutside OutcomeKind = "dropped-outside"
	OutcomeCancelled      OutcomeKind = "cancelled"
	// OutcomeIgnored: a release or cancel arrived with no drag in progress.
	OutcomeIgnored OutcomeKind = "ignored"
)

// Outcome describes how a drag session ended. Only OutcomeCommitted changes the tree.
type Outcome struct {
	Kind   OutcomeKind
	ItemID string
	Target *model.InsertionPoint
	// From is where the item sat when the session ended (before any commit).
	From model.InsertionPoint
	// Landed is the item's final position after a commit.
	Landed  *model.InsertionPoint
	Changed bool
	Err     error
	// Version is the store version after the session ended.
	Version uint64
}

func (o Outcome) Committed() bool { return o.Kind == OutcomeCommitted }

type Observer interface {
	Observe(Outcome)
}

type ObserverFunc func(Outcome)

func (f ObserverFunc) Observe(o Outcome) { f(o) }
