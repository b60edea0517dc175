package tui

import (
	"playlist-organiser/internal/index"
	"playlist-organiser/internal/model"
)

type rowKind int

const (
	rowItem rowKind = iota
	rowGap
)

// row is one rendered line: either an item or the insertion gap before/after items.
type row struct {
	kind  rowKind
	depth int

	node      model.Node
	collapsed bool

	point index.Point
}

// flattenTree interleaves items with the gaps reported by ix. Collapsed folders hide their
// children and their gaps; the index itself still lists them.
func flattenTree(tree model.Tree, ix index.Index, collapsed map[string]bool) []row {
	var out []row
	var walk func(parentID string, children []model.Node, depth int)
	walk = func(parentID string, children []model.Node, depth int) {
		gaps := ix.For(parentID)
		for i, ch := range children {
			if i < len(gaps) {
				out = append(out, row{kind: rowGap, depth: gaps[i].Depth, point: gaps[i]})
			}
			out = append(out, row{
				kind:      rowItem,
				depth:     depth,
				node:      ch,
				collapsed: ch.IsFolder() && collapsed[ch.ID],
			})
			if ch.IsFolder() && !collapsed[ch.ID] {
				walk(ch.ID, ch.Children, depth+1)
			}
		}
		if n := len(children); n < len(gaps) {
			out = append(out, row{kind: rowGap, depth: gaps[n].Depth, point: gaps[n]})
		}
	}
	walk(model.RootID, tree, 0)
	return out
}

func rowIndexOfItem(rows []row, id string) int {
	for i, r := range rows {
		if r.kind == rowItem && r.node.ID == id {
			return i
		}
	}
	return -1
}
