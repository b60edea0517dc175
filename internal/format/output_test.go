package format

import (
	"bytes"
	"strings"
	"testing"
)

type point struct {
	ParentID string `json:"parentId"`
	Index    int    `json:"index"`
}

func TestWrite_EDN(t *testing.T) {
	var buf bytes.Buffer
	v := map[string]any{"points": []point{{ParentID: "folder-1", Index: 2}}, "ok": true, "none": nil}
	if err := Write(&buf, v, "edn", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := `{:none nil :ok true :points [{:index 2 :parent-id "folder-1"}]}` + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
}

func TestWrite_EDNPrettyEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, map[string]any{"a": []any{}, "b": map[string]any{}}, "edn", true); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := "{\n  :a []\n  :b {}\n}\n"
	if got := buf.String(); got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
}

func TestWrite_YAMLUsesJSONFieldNames(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, point{ParentID: "root", Index: 0}, "yaml", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "parentId: root") || !strings.Contains(out, "index: 0") {
		t.Fatalf("unexpected yaml: %q", out)
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, 1, "xml", false); err == nil {
		t.Fatalf("expected error")
	}
}
