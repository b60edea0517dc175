package drag

import (
	"errors"
	"strings"
	"testing"

	"playlist-organiser/internal/index"
	"playlist-organiser/internal/model"
	"playlist-organiser/internal/mutate"
	"playlist-organiser/internal/store"
)

func shape(t model.Tree) string {
	var b strings.Builder
	var walk func(nodes []model.Node)
	walk = func(nodes []model.Node) {
		for i, n := range nodes {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(n.ID)
			if n.IsFolder() {
				b.WriteByte('[')
				walk(n.Children)
				b.WriteByte(']')
			}
		}
	}
	walk(t)
	return b.String()
}

func pt(parent string, i int) *model.InsertionPoint {
	return &model.InsertionPoint{ParentID: parent, Index: i}
}

func scenarioTree() model.Tree {
	return model.Tree{
		{ID: "F1", Kind: model.KindFolder, Title: "F1", Children: []model.Node{
			{ID: "F2", Kind: model.KindFolder, Title: "F2", Children: []model.Node{
				{ID: "P1", Kind: model.KindPlaylist, Title: "P1"},
			}},
			{ID: "P2", Kind: model.KindPlaylist, Title: "P2"},
		}},
	}
}

type recorder struct{ got []Outcome }

func (r *recorder) Observe(o Outcome) { r.got = append(r.got, o) }

func TestController_ScenarioA(t *testing.T) {
	c := NewController(store.New(scenarioTree()))
	if !c.Start("P1") {
		t.Fatalf("Start(P1) = false")
	}
	if !c.Hover(pt("F1", 1)) {
		t.Fatalf("expected (F1,1) to be a legal candidate")
	}
	st := c.State()
	if !st.Dragging() || st.ItemID != "P1" || st.Candidate == nil || *st.Candidate != *pt("F1", 1) {
		t.Fatalf("unexpected state: %+v", st)
	}

	out := c.Release(pt("F1", 1))
	if !out.Committed() {
		t.Fatalf("expected commit; got %+v", out)
	}
	if got, want := shape(c.Tree()), "F1[F2[],P1,P2]"; got != want {
		t.Fatalf("got %s want %s", got, want)
	}
	if c.State().Dragging() || c.State().Candidate != nil {
		t.Fatalf("expected idle after release; got %+v", c.State())
	}
	if out.Version != 1 {
		t.Fatalf("expected store version 1; got %d", out.Version)
	}
}

func TestController_ScenarioB_HoverIntoSelfClearsCandidate(t *testing.T) {
	s := store.New(scenarioTree())
	c := NewController(s)
	c.Start("F2")

	if !c.Hover(pt("F1", 0)) {
		t.Fatalf("expected (F1,0) legal for F2")
	}
	if c.Hover(pt("F2", 0)) {
		t.Fatalf("expected (F2,0) illegal for F2")
	}
	if c.State().Candidate != nil {
		t.Fatalf("an illegal hover must clear the previous candidate")
	}

	out := c.Release(pt("F2", 0))
	if out.Kind != OutcomeRejected {
		t.Fatalf("expected rejected; got %s", out.Kind)
	}
	var ill mutate.IllegalMoveError
	if !errors.As(out.Err, &ill) {
		t.Fatalf("expected IllegalMoveError; got %v", out.Err)
	}
	if shape(c.Tree()) != shape(scenarioTree()) || s.Version() != 0 {
		t.Fatalf("tree must be unchanged")
	}
}

func TestController_ScenarioC(t *testing.T) {
	c := NewController(store.New(scenarioTree()))
	c.Start("P2")
	c.Hover(pt("F2", 1))
	out := c.Release(pt("F2", 1))
	if !out.Committed() {
		t.Fatalf("expected commit; got %+v", out)
	}
	if got, want := shape(c.Tree()), "F1[F2[P1,P2]]"; got != want {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestController_ScenarioD_DeepDescendant(t *testing.T) {
	tree := model.Tree{
		{ID: "F1", Kind: model.KindFolder, Title: "F1", Children: []model.Node{
			{ID: "A", Kind: model.KindFolder, Title: "A", Children: []model.Node{
				{ID: "B", Kind: model.KindFolder, Title: "B", Children: []model.Node{
					{ID: "C", Kind: model.KindFolder, Title: "C", Children: []model.Node{}},
				}},
			}},
		}},
	}
	c := NewController(store.New(tree))
	c.Start("F1")
	for _, target := range []string{"F1", "A", "B", "C"} {
		if c.Hover(pt(target, 0)) {
			t.Fatalf("hover into %s must be illegal", target)
		}
	}
	out := c.Release(pt("C", 0))
	if out.Committed() {
		t.Fatalf("must not commit into a descendant")
	}
	if shape(c.Tree()) != shape(tree) {
		t.Fatalf("tree changed: %s", shape(c.Tree()))
	}
}

func TestController_ReleaseOutsideAndCancelAreNoOps(t *testing.T) {
	s := store.New(scenarioTree())
	rec := &recorder{}
	c := NewController(s, WithObserver(rec))

	c.Start("P1")
	c.Hover(pt("F1", 0))
	out := c.Release(nil)
	if out.Kind != OutcomeDroppedOutside {
		t.Fatalf("expected dropped-outside; got %s", out.Kind)
	}

	c.Start("P1")
	c.Hover(pt("F1", 0))
	out = c.Cancel()
	if out.Kind != OutcomeCancelled {
		t.Fatalf("expected cancelled; got %s", out.Kind)
	}
	if out.From != *pt("F2", 0) {
		t.Fatalf("expected From=(F2,0); got %+v", out.From)
	}

	if s.Version() != 0 || shape(c.Tree()) != shape(scenarioTree()) {
		t.Fatalf("tree must be unchanged")
	}
	if len(rec.got) != 2 {
		t.Fatalf("expected 2 observed outcomes; got %d", len(rec.got))
	}
}

func TestController_IgnoresProtocolViolations(t *testing.T) {
	c := NewController(store.New(scenarioTree()))

	if c.Hover(pt("F1", 0)) {
		t.Fatalf("hover while idle must not set a candidate")
	}
	if out := c.Release(pt("F1", 0)); out.Kind != OutcomeIgnored {
		t.Fatalf("release while idle: %s", out.Kind)
	}
	if c.Start("ghost") {
		t.Fatalf("start on unknown id must be ignored")
	}

	c.Start("P1")
	if c.Start("P2") {
		t.Fatalf("second start while dragging must be ignored")
	}
	if c.State().ItemID != "P1" {
		t.Fatalf("active drag must survive a second start; got %q", c.State().ItemID)
	}
}

func TestController_HoverRecomputesEveryTime(t *testing.T) {
	c := NewController(store.New(scenarioTree()))
	c.Start("F2")
	for i := 0; i < 1000; i++ {
		if i%2 == 0 {
			c.Hover(pt("F1", i%3))
		} else {
			c.Hover(pt("F2", 0))
		}
	}
	// Last hover (i=999) was illegal.
	if c.State().Candidate != nil {
		t.Fatalf("stale candidate survived an illegal hover")
	}
	c.Hover(pt("nope", 0))
	if c.State().Candidate != nil {
		t.Fatalf("unknown parent must not become a candidate")
	}
	c.Hover(pt("F1", 7))
	if c.State().Candidate != nil {
		t.Fatalf("out-of-range index must not become a candidate")
	}
}

func TestController_EveryLegalCandidateCommitsCleanly(t *testing.T) {
	base := store.DemoTree()
	ix := index.Build(base)
	for _, item := range []string{"folder-1", "folder-2", "playlist-1", "playlist-4"} {
		for _, p := range ix.Points() {
			s := store.New(base)
			c := NewController(s)
			c.Start(item)
			ip := p.InsertionPoint
			legal := c.Hover(&ip)
			out := c.Release(&ip)
			if legal != out.Committed() {
				t.Fatalf("%s -> %s: hover legal=%v but release %s", item, p.Key, legal, out.Kind)
			}
			after := s.Tree()
			if after.Count() != base.Count() {
				t.Fatalf("%s -> %s: node count changed", item, p.Key)
			}
			if rep := store.Doctor(after); rep.HasErrors() {
				t.Fatalf("%s -> %s: invalid tree %+v", item, p.Key, rep.Issues)
			}
		}
	}
}

func TestDispatch_HoverAgreesWithRelease(t *testing.T) {
	cases := []struct {
		item string
		key  string
		want bool
	}{
		{"P1", "F1/insertion/1", true},
		{"P1", "root/insertion/0", true},
		{"P1", "root/insertion/1", true},
		{"P1", " F1/insertion/0 ", true},
		{"P1", "F1 /insertion/2", true},
		{"P1", "\tF2\t/insertion/1", true},
		{" P1", "F1/insertion/1", true},
		{"P1\t", "root/insertion/0", true},
		{" P1 ", " F2 /insertion/0", true},
		{"F1", "F2/insertion/0", false},
		{"F1", "F2 /insertion/0", false},
		{"F1", " F1/insertion/0", false},
		{" F1", "F2/insertion/0", false},
		{"F2", "F2/insertion/0", false},
		{"F2", "root/insertion/0", true},
		{"P2", "F2/insertion/1", true},
		{"P2", "F2/insertion/2", false},
		{"P1", "F1/insertion/3", false},
		{"P1", "F1/insertion/-1", false},
		{"P1", "F1/insertion/x", false},
		{"P1", "F1/insertion/ 1", false},
		{"P1", "  /insertion/0", false},
		{"P1", "ghost/insertion/0", false},
		{"P1", "P2/insertion/0", false},
		{"P1", "", false},
	}
	for _, tc := range cases {
		s := store.New(scenarioTree())
		c := NewController(s)
		c.Dispatch(DragStart{ItemID: tc.item})
		if !c.State().Dragging() {
			t.Fatalf("%q: drag did not start", tc.item)
		}
		c.Dispatch(DragHover{PointKey: tc.key})
		hovered := c.State().Candidate != nil
		out, ended := c.Dispatch(DragRelease{PointKey: tc.key})
		if !ended {
			t.Fatalf("%q -> %q: release did not end the session", tc.item, tc.key)
		}
		if hovered != out.Committed() {
			t.Fatalf("%q -> %q: hover=%v but release %s (%v)", tc.item, tc.key, hovered, out.Kind, out.Err)
		}
		if hovered != tc.want {
			t.Fatalf("%q -> %q: hover=%v, want %v", tc.item, tc.key, hovered, tc.want)
		}
		if rep := store.Doctor(s.Tree()); rep.HasErrors() {
			t.Fatalf("%q -> %q: invalid tree %+v", tc.item, tc.key, rep.Issues)
		}
	}
}

func TestController_PaddedParentCannotSmuggleFolderIntoDescendant(t *testing.T) {
	s := store.New(scenarioTree())
	c := NewController(s)
	c.Start("F1")
	if c.Hover(pt("F2 ", 0)) {
		t.Fatalf("padded descendant parent must not become a candidate")
	}
	out := c.Release(pt("F2 ", 0))
	if out.Kind != OutcomeRejected {
		t.Fatalf("release: %s", out.Kind)
	}
	var illegal mutate.IllegalMoveError
	if !errors.As(out.Err, &illegal) || illegal.Reason != mutate.ReasonIntoDescendant {
		t.Fatalf("expected into-descendant rejection, got %v", out.Err)
	}
	if got := shape(s.Tree()); got != "F1[F2[P1],P2]" {
		t.Fatalf("tree changed: %s", got)
	}
}

func TestController_PaddedItemIDIsStoredTrimmed(t *testing.T) {
	s := store.New(scenarioTree())
	c := NewController(s)
	if !c.Start(" P1") {
		t.Fatalf("Start(\" P1\") = false")
	}
	if got := c.State().ItemID; got != "P1" {
		t.Fatalf("ItemID = %q, want P1", got)
	}
	if !c.Hover(pt("F1", 2)) {
		t.Fatalf("expected (F1,2) to be legal")
	}
	out := c.Release(pt("F1", 2))
	if !out.Committed() {
		t.Fatalf("release: %s (%v)", out.Kind, out.Err)
	}
	if out.ItemID != "P1" || out.From.ParentID != "F2" {
		t.Fatalf("outcome = %+v", out)
	}
	if got := shape(s.Tree()); got != "F1[F2[],P2,P1]" {
		t.Fatalf("tree = %s", got)
	}
}

func TestController_ReleaseTouchesStoreOncePerCommit(t *testing.T) {
	s := store.New(scenarioTree())
	c := NewController(s)
	before := s.Version()

	c.Start("P1")
	c.Hover(pt("F1", 3))
	if out := c.Release(pt("F1", 3)); out.Kind != OutcomeRejected {
		t.Fatalf("release: %s", out.Kind)
	}
	if s.Version() != before {
		t.Fatalf("rejected release bumped version to %d", s.Version())
	}

	c.Start("P1")
	out := c.Release(pt("root", 0))
	if !out.Committed() {
		t.Fatalf("release: %s (%v)", out.Kind, out.Err)
	}
	if s.Version() != before+1 || out.Version != before+1 {
		t.Fatalf("version = %d (outcome %d), want %d", s.Version(), out.Version, before+1)
	}
}
