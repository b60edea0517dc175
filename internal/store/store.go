package store

import (
	"sync"

	"playlist-organiser/internal/model"
)

// Store owns the current tree value. The tree is only ever replaced wholesale.
type Store struct {
	mu      sync.RWMutex
	tree    model.Tree
	version uint64
}

func New(initial model.Tree) *Store {
	return &Store{tree: initial.Clone()}
}

// Tree returns a deep copy of the current tree.
func (s *Store) Tree() model.Tree {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Clone()
}

// Version increments on every Replace; renderers use it to detect a new tree value.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *Store) Replace(t model.Tree) {
	next := t.Clone()
	s.mu.Lock()
	s.tree = next
	s.version++
	s.mu.Unlock()
}
