package model

import "strings"

type Kind string

const (
	KindFolder   Kind = "folder"
	KindPlaylist Kind = "playlist"
)

// RootID addresses the synthetic container that holds the root-level nodes.
const RootID = "root"

func (k Kind) Valid() bool {
	switch k {
	case KindFolder, KindPlaylist:
		return true
	default:
		return false
	}
}

// ParseKind accepts the canonical names plus a few aliases used in hand-written tree files.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "folder", "container", "dir":
		return KindFolder, true
	case "playlist", "leaf", "item":
		return KindPlaylist, true
	default:
		return "", false
	}
}

type Node struct {
	ID       string `json:"id" yaml:"id"`
	Kind     Kind   `json:"type" yaml:"type"`
	Title    string `json:"title" yaml:"title"`
	Children []Node `json:"children,omitempty" yaml:"children,omitempty"`
}

func (n Node) IsFolder() bool { return n.Kind == KindFolder }

// Clone returns a deep copy; the result shares no slices with n.
func (n Node) Clone() Node {
	out := n
	if n.Children != nil {
		out.Children = make([]Node, len(n.Children))
		for i := range n.Children {
			out.Children[i] = n.Children[i].Clone()
		}
	}
	return out
}

// Tree is the ordered list of root-level nodes.
type Tree []Node

func (t Tree) Clone() Tree {
	if t == nil {
		return nil
	}
	out := make(Tree, len(t))
	for i := range t {
		out[i] = t[i].Clone()
	}
	return out
}

// Count returns the total number of nodes at every depth.
func (t Tree) Count() int {
	n := 0
	var walk func(nodes []Node)
	walk = func(nodes []Node) {
		for _, x := range nodes {
			n++
			walk(x.Children)
		}
	}
	walk(t)
	return n
}

// InsertionPoint is the gap before child Index of container ParentID.
// Index == len(children) means "append".
type InsertionPoint struct {
	ParentID string `json:"parentId" yaml:"parentId"`
	Index    int    `json:"index" yaml:"index"`
}

func (p InsertionPoint) IsRoot() bool { return p.ParentID == RootID }
