package store

import (
	"testing"

	"playlist-organiser/internal/model"
)

func TestDoctor_DemoTreeIsClean(t *testing.T) {
	r := Doctor(DemoTree())
	if r.HasErrors() {
		t.Fatalf("unexpected issues: %+v", r.Issues)
	}
	if r.Nodes != 8 {
		t.Fatalf("expected 8 nodes; got %d", r.Nodes)
	}
	if r.Issues == nil {
		t.Fatalf("issues should be an empty slice for stable JSON output")
	}
}

func TestDoctor_ReportsStructuralProblems(t *testing.T) {
	tree := model.Tree{
		{ID: "a", Kind: model.KindFolder, Title: "A", Children: []model.Node{
			{ID: "dup", Kind: model.KindPlaylist, Title: "x"},
		}},
		{ID: "dup", Kind: model.KindPlaylist, Title: "y", Children: []model.Node{
			{ID: "c", Kind: model.KindPlaylist, Title: "c"},
		}},
		{ID: "", Kind: model.KindPlaylist, Title: "nameless"},
		{ID: "root", Kind: model.KindFolder, Title: "R"},
		{ID: "k", Kind: model.Kind("album"), Title: ""},
	}
	r := Doctor(tree)
	if !r.HasErrors() {
		t.Fatalf("expected errors")
	}
	codes := map[string]bool{}
	for _, it := range r.Issues {
		codes[it.Code] = true
	}
	for _, want := range []string{"duplicate_id", "leaf_has_children", "empty_id", "reserved_id", "unknown_kind", "empty_title"} {
		if !codes[want] {
			t.Fatalf("expected issue %s; got %+v", want, r.Issues)
		}
	}
	if err := r.FirstError(); err == nil {
		t.Fatalf("expected FirstError to be non-nil")
	}
}
