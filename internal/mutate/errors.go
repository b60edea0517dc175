package mutate

import "fmt"

type IllegalMoveReason string

const (
	ReasonIntoSelf       IllegalMoveReason = "into-self"
	ReasonIntoDescendant IllegalMoveReason = "into-descendant"
)

// IllegalMoveError reports a folder dropped onto itself or into its own subtree.
type IllegalMoveError struct {
	ItemID   string
	ParentID string
	Reason   IllegalMoveReason
}

func (e IllegalMoveError) Error() string {
	switch e.Reason {
	case ReasonIntoSelf:
		return fmt.Sprintf("illegal move: %s cannot be dropped into itself", e.ItemID)
	default:
		return fmt.Sprintf("illegal move: %s cannot be dropped into its descendant %s", e.ItemID, e.ParentID)
	}
}

// IndexOutOfRangeError reports an index outside [0, Count] of its folder.
type IndexOutOfRangeError struct {
	ParentID string
	Index    int
	Count    int
}

func (e IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("insertion index %d out of range [0, %d] for %s", e.Index, e.Count, e.ParentID)
}
