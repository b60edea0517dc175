package index

import (
	"testing"

	"playlist-organiser/internal/model"
	"playlist-organiser/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_CountsPerContainer(t *testing.T) {
	tree := model.Tree{
		{ID: "f1", Kind: model.KindFolder, Title: "F1", Children: []model.Node{
			{ID: "f2", Kind: model.KindFolder, Title: "F2", Children: []model.Node{}},
			{ID: "p1", Kind: model.KindPlaylist, Title: "P1"},
			{ID: "p2", Kind: model.KindPlaylist, Title: "P2"},
		}},
	}
	ix := Build(tree)

	assert.Len(t, ix.For(model.RootID), 2)
	assert.Len(t, ix.For("f1"), 4)
	assert.Len(t, ix.For("f2"), 1, "empty folders expose exactly one point")
	assert.Empty(t, ix.For("p1"), "playlists have no insertion points")
	assert.Equal(t, 7, ix.Len())

	for i, p := range ix.For("f1") {
		assert.Equal(t, i, p.Index)
		assert.Equal(t, 1, p.Depth)
	}
}

func TestBuild_DistinctKeysAndOrder(t *testing.T) {
	ix := Build(store.DemoTree())
	seen := map[string]bool{}
	for _, p := range ix.Points() {
		require.False(t, seen[p.Key], "duplicate key %s", p.Key)
		seen[p.Key] = true
	}
	pts := ix.Points()
	require.NotEmpty(t, pts)
	assert.Equal(t, model.RootID, pts[0].ParentID)
	// root(4) + folder-1(3) + folder-2(2) + folder-3(2) + folder-4(2)
	assert.Equal(t, 13, ix.Len())
	assert.Equal(t, "folder-1", pts[4].ParentID)
	assert.Equal(t, "folder-2", pts[7].ParentID)
}

func TestKeyRoundTrip(t *testing.T) {
	for _, p := range []model.InsertionPoint{
		{ParentID: "folder-1", Index: 0},
		{ParentID: model.RootID, Index: 3},
		{ParentID: "odd/insertion/id", Index: 12},
	} {
		got, ok := ParseKey(Key(p))
		require.True(t, ok, "key %q", Key(p))
		assert.Equal(t, p, got)
	}
}

func TestParseKey_Malformed(t *testing.T) {
	for _, k := range []string{"", "folder-1", "/insertion/2", "folder-1/insertion/", "folder-1/insertion/x", "folder-1/insertion/-1", "  /insertion/0", "folder-1/insertion/ 1"} {
		_, ok := ParseKey(k)
		assert.False(t, ok, "expected %q to be malformed", k)
	}
}

func TestParseKey_TrimsParent(t *testing.T) {
	for _, k := range []string{"folder-2 /insertion/0", " folder-2/insertion/0 ", "\tfolder-2\t/insertion/0"} {
		got, ok := ParseKey(k)
		require.True(t, ok, "key %q", k)
		assert.Equal(t, model.InsertionPoint{ParentID: "folder-2", Index: 0}, got, "key %q", k)
	}
}

func TestLookupAndContains(t *testing.T) {
	ix := Build(store.DemoTree())
	p, ok := ix.Lookup("folder-2/insertion/1")
	require.True(t, ok)
	assert.Equal(t, model.InsertionPoint{ParentID: "folder-2", Index: 1}, p.InsertionPoint)
	assert.Equal(t, 2, p.Depth)

	padded, ok := ix.Lookup(" folder-2 /insertion/1")
	require.True(t, ok)
	assert.Equal(t, p, padded)

	assert.True(t, ix.Contains(model.InsertionPoint{ParentID: "folder-3", Index: 1}))
	assert.False(t, ix.Contains(model.InsertionPoint{ParentID: "folder-3", Index: 2}))
	assert.False(t, ix.Contains(model.InsertionPoint{ParentID: "playlist-1", Index: 0}))
}
