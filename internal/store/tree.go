package store

import "playlist-organiser/internal/model"

// FindByID searches depth-first, parent before children, children in order.
// Ids are compared exactly. The returned node is a copy; editing it does not touch tree.
func FindByID(tree model.Tree, id string) (model.Node, bool) {
	n, ok := Peek(tree, id)
	if !ok {
		return model.Node{}, false
	}
	return n.Clone(), true
}

// Peek is FindByID without the copy: the node's Children alias tree and must not be modified.
func Peek(tree model.Tree, id string) (model.Node, bool) {
	if id == "" {
		return model.Node{}, false
	}
	var find func(nodes []model.Node) (model.Node, bool)
	find = func(nodes []model.Node) (model.Node, bool) {
		for _, n := range nodes {
			if n.ID == id {
				return n, true
			}
			if n.IsFolder() {
				if got, ok := find(n.Children); ok {
					return got, true
				}
			}
		}
		return model.Node{}, false
	}
	return find(tree)
}

// IsDescendant reports whether candidateID names a node strictly below node.
func IsDescendant(node model.Node, candidateID string) bool {
	if !node.IsFolder() {
		return false
	}
	for _, ch := range node.Children {
		if ch.ID == candidateID {
			return true
		}
		if IsDescendant(ch, candidateID) {
			return true
		}
	}
	return false
}

// Remove excises the node with the given id from wherever it lives.
// When nothing matches, the returned tree is a structural copy of the input and ok is false.
func Remove(tree model.Tree, id string) (out model.Tree, removed model.Node, ok bool) {
	var filter func(nodes []model.Node) []model.Node
	filter = func(nodes []model.Node) []model.Node {
		if nodes == nil {
			return nil
		}
		kept := make([]model.Node, 0, len(nodes))
		for _, n := range nodes {
			if !ok && n.ID == id {
				removed = n.Clone()
				ok = true
				continue
			}
			c := n
			if n.IsFolder() {
				c.Children = filter(n.Children)
			} else {
				c.Children = nil
			}
			kept = append(kept, c)
		}
		return kept
	}
	return model.Tree(filter(tree)), removed, ok
}

// InsertAt splices node into the children of parentID at index, clamped to [0, len(children)].
// parentID may be model.RootID. A missing or non-folder parent yields TargetNotFoundError and
// an unchanged copy of tree.
func InsertAt(tree model.Tree, parentID string, index int, node model.Node) (model.Tree, error) {
	if parentID == model.RootID {
		return model.Tree(splice(tree, index, node)), nil
	}

	found := false
	var insert func(nodes []model.Node) []model.Node
	insert = func(nodes []model.Node) []model.Node {
		if nodes == nil {
			return nil
		}
		out := make([]model.Node, len(nodes))
		for i, n := range nodes {
			c := n.Clone()
			if !found && c.ID == parentID && c.IsFolder() {
				c.Children = splice(c.Children, index, node)
				found = true
			} else if c.IsFolder() && !found {
				c.Children = insert(n.Children)
			}
			out[i] = c
		}
		return out
	}
	out := model.Tree(insert(tree))
	if !found {
		return tree.Clone(), TargetNotFoundError{ParentID: parentID}
	}
	return out, nil
}

func splice(nodes []model.Node, index int, node model.Node) []model.Node {
	if index < 0 {
		index = 0
	}
	if index > len(nodes) {
		index = len(nodes)
	}
	out := make([]model.Node, 0, len(nodes)+1)
	for _, n := range nodes[:index] {
		out = append(out, n.Clone())
	}
	out = append(out, node.Clone())
	for _, n := range nodes[index:] {
		out = append(out, n.Clone())
	}
	return out
}

// ChildCount returns the number of children of parentID (or of the root list).
func ChildCount(tree model.Tree, parentID string) (int, bool) {
	if parentID == model.RootID {
		return len(tree), true
	}
	n, ok := Peek(tree, parentID)
	if !ok || !n.IsFolder() {
		return 0, false
	}
	return len(n.Children), true
}

// ParentOf returns the insertion point currently occupied by id.
func ParentOf(tree model.Tree, id string) (model.InsertionPoint, bool) {
	var walk func(parentID string, nodes []model.Node) (model.InsertionPoint, bool)
	walk = func(parentID string, nodes []model.Node) (model.InsertionPoint, bool) {
		for i, n := range nodes {
			if n.ID == id {
				return model.InsertionPoint{ParentID: parentID, Index: i}, true
			}
			if n.IsFolder() {
				if p, ok := walk(n.ID, n.Children); ok {
					return p, true
				}
			}
		}
		return model.InsertionPoint{}, false
	}
	return walk(model.RootID, tree)
}
