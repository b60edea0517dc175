package tui

import (
	"testing"

	"playlist-organiser/internal/index"
	"playlist-organiser/internal/model"
	"playlist-organiser/internal/store"
)

func rowLabels(rows []row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		if r.kind == rowGap {
			out = append(out, "gap:"+r.point.Key)
		} else {
			out = append(out, r.node.ID)
		}
	}
	return out
}

func TestFlattenTree_InterleavesGapsWithItems(t *testing.T) {
	tree := store.DemoTree()
	rows := flattenTree(tree, index.Build(tree), map[string]bool{})

	want := []string{
		"gap:root/insertion/0",
		"folder-1",
		"gap:folder-1/insertion/0",
		"folder-2",
		"gap:folder-2/insertion/0",
		"playlist-1",
		"gap:folder-2/insertion/1",
		"gap:folder-1/insertion/1",
		"playlist-2",
		"gap:folder-1/insertion/2",
		"gap:root/insertion/1",
		"folder-3",
		"gap:folder-3/insertion/0",
		"playlist-3",
		"gap:folder-3/insertion/1",
		"gap:root/insertion/2",
		"folder-4",
		"gap:folder-4/insertion/0",
		"playlist-4",
		"gap:folder-4/insertion/1",
		"gap:root/insertion/3",
	}
	got := rowLabels(rows)
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
	if rows[5].depth != 2 || rows[4].depth != 2 {
		t.Fatalf("expected playlist-1 and its gap at depth 2; got %d/%d", rows[5].depth, rows[4].depth)
	}
}

func TestFlattenTree_CollapsedFolderHidesChildrenAndGaps(t *testing.T) {
	tree := store.DemoTree()
	rows := flattenTree(tree, index.Build(tree), map[string]bool{"folder-1": true})

	got := rowLabels(rows)
	if len(got) != 13 {
		t.Fatalf("expected 13 rows, got %d: %v", len(got), got)
	}
	if got[1] != "folder-1" || got[2] != "gap:root/insertion/1" {
		t.Fatalf("expected folder-1 followed by the next root gap; got %v", got[:3])
	}
	if !rows[1].collapsed {
		t.Fatalf("expected folder-1 row to be marked collapsed")
	}
	if i := rowIndexOfItem(rows, "playlist-1"); i != -1 {
		t.Fatalf("expected playlist-1 hidden, found at %d", i)
	}
}

func TestFlattenTree_EmptyFolderKeepsItsOnlyGap(t *testing.T) {
	tree := store.DemoTree()
	tree[2].Children = []model.Node{}
	rows := flattenTree(tree, index.Build(tree), map[string]bool{})

	i := rowIndexOfItem(rows, "folder-4")
	if i < 0 || i+1 >= len(rows) {
		t.Fatalf("folder-4 row missing")
	}
	next := rows[i+1]
	if next.kind != rowGap || next.point.Key != "folder-4/insertion/0" {
		t.Fatalf("expected the empty folder's gap right after it; got %v", rowLabels(rows)[i+1])
	}
	if next.depth != 1 {
		t.Fatalf("expected gap depth 1, got %d", next.depth)
	}
}
