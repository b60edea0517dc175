package mutate

import (
	"playlist-organiser/internal/model"
	"playlist-organiser/internal/store"
)

// CheckMove is the legality rule shared by hover and release.
// A nil error means the point may be offered as a drop target for itemID.
//
// Folders may not land on themselves or inside their own subtree. Playlists are never
// rejected for cycles. Either kind needs to already exist in tree, and to must name an
// existing insertion point of the current (pre-removal) tree.
//
// The index range is checked against that pre-removal tree rather than clamped the way
// store.InsertAt clamps. An out-of-range key therefore never shows an indicator, and a
// release on it is rejected instead of landing at the end of the parent.
//
// Ids are compared exactly; callers normalise them where events enter the system.
func CheckMove(tree model.Tree, itemID string, to model.InsertionPoint) error {
	dragged, ok := store.Peek(tree, itemID)
	if !ok {
		return store.NotFoundError{Kind: "item", ID: itemID}
	}
	if dragged.IsFolder() {
		if to.ParentID == itemID {
			return IllegalMoveError{ItemID: itemID, ParentID: to.ParentID, Reason: ReasonIntoSelf}
		}
		if store.IsDescendant(dragged, to.ParentID) {
			return IllegalMoveError{ItemID: itemID, ParentID: to.ParentID, Reason: ReasonIntoDescendant}
		}
	}
	n, ok := store.ChildCount(tree, to.ParentID)
	if !ok {
		return store.TargetNotFoundError{ParentID: to.ParentID}
	}
	if to.Index < 0 || to.Index > n {
		return IndexOutOfRangeError{ParentID: to.ParentID, Index: to.Index, Count: n}
	}
	return nil
}

type MoveResult struct {
	Tree    model.Tree
	Moved   model.Node
	From    model.InsertionPoint
	To      model.InsertionPoint
	Changed bool
}

// Move relocates itemID to the point to. The index is interpreted against the tree after
// the item has been removed. On any error the returned tree is tree itself.
func Move(tree model.Tree, itemID string, to model.InsertionPoint) (MoveResult, error) {
	if err := CheckMove(tree, itemID, to); err != nil {
		return MoveResult{Tree: tree}, err
	}
	from, _ := store.ParentOf(tree, itemID)

	afterRemoval, removed, ok := store.Remove(tree, itemID)
	if !ok {
		return MoveResult{Tree: tree}, store.NotFoundError{Kind: "item", ID: itemID}
	}
	final, err := store.InsertAt(afterRemoval, to.ParentID, to.Index, removed)
	if err != nil {
		return MoveResult{Tree: tree}, err
	}

	landed, _ := store.ParentOf(final, itemID)
	return MoveResult{
		Tree:    final,
		Moved:   removed,
		From:    from,
		To:      landed,
		Changed: from != landed,
	}, nil
}
