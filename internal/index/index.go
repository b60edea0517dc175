// Package index derives the addressable insertion points of a tree.
//
// Every folder (and the root list) with n children has n+1 points: one before each child and
// one after the last. Points are recomputed from the current tree on every change; nothing here
// caches across tree values.
package index

import (
	"strconv"
	"strings"

	"playlist-organiser/internal/model"
)

const keySep = "/insertion/"

// Key encodes p for the input layer. Keys are only used at the event boundary.
func Key(p model.InsertionPoint) string {
	return p.ParentID + keySep + strconv.Itoa(p.Index)
}

// ParseKey decodes a key produced by Key. Surrounding whitespace is dropped from the key and
// from its parent id, so the point it returns is canonical. Malformed keys report ok=false.
func ParseKey(key string) (model.InsertionPoint, bool) {
	key = strings.TrimSpace(key)
	i := strings.LastIndex(key, keySep)
	if i < 0 {
		return model.InsertionPoint{}, false
	}
	parent := strings.TrimSpace(key[:i])
	if parent == "" {
		return model.InsertionPoint{}, false
	}
	n, err := strconv.Atoi(key[i+len(keySep):])
	if err != nil || n < 0 {
		return model.InsertionPoint{}, false
	}
	return model.InsertionPoint{ParentID: parent, Index: n}, true
}

type Point struct {
	model.InsertionPoint
	Key string `json:"key" yaml:"key"`
	// Depth is the nesting level of the children this point sits between (0 for the root list).
	Depth int `json:"depth" yaml:"depth"`
}

type Index struct {
	points   []Point
	byParent map[string][]Point
	byKey    map[string]int
}

// Build lists root points first, then every folder in depth-first order.
func Build(tree model.Tree) Index {
	ix := Index{
		byParent: map[string][]Point{},
		byKey:    map[string]int{},
	}
	var add func(parentID string, children []model.Node, depth int)
	add = func(parentID string, children []model.Node, depth int) {
		for i := 0; i <= len(children); i++ {
			ip := model.InsertionPoint{ParentID: parentID, Index: i}
			p := Point{InsertionPoint: ip, Key: Key(ip), Depth: depth}
			ix.byKey[p.Key] = len(ix.points)
			ix.points = append(ix.points, p)
			ix.byParent[parentID] = append(ix.byParent[parentID], p)
		}
		for _, ch := range children {
			if ch.IsFolder() {
				add(ch.ID, ch.Children, depth+1)
			}
		}
	}
	add(model.RootID, tree, 0)
	return ix
}

func (ix Index) Points() []Point {
	return append([]Point(nil), ix.points...)
}

func (ix Index) Len() int { return len(ix.points) }

// For returns the points of one container in index order.
func (ix Index) For(parentID string) []Point {
	return append([]Point(nil), ix.byParent[parentID]...)
}

func (ix Index) Contains(p model.InsertionPoint) bool {
	_, ok := ix.byKey[Key(p)]
	return ok
}

// Lookup resolves a key against this index; keys naming points absent from the tree miss.
func (ix Index) Lookup(key string) (Point, bool) {
	p, ok := ParseKey(key)
	if !ok {
		return Point{}, false
	}
	i, ok := ix.byKey[Key(p)]
	if !ok {
		return Point{}, false
	}
	return ix.points[i], true
}
