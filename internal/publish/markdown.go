package publish

import (
	"bytes"
	"fmt"
	"strings"

	"playlist-organiser/internal/model"
)

type RenderOptions struct {
	// Title heads the document; empty means "Library".
	Title string
	// IncludeIDs appends each node id in backticks.
	IncludeIDs bool
}

// RenderTreeMarkdown renders tree as a nested markdown list, folders in bold, with the
// folder/playlist counts in a summary line.
func RenderTreeMarkdown(tree model.Tree, opt RenderOptions) string {
	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	title := strings.TrimSpace(opt.Title)
	if title == "" {
		title = "Library"
	}
	writeLn("# " + title)
	writeLn("")

	folders, playlists := countKinds(tree)
	writeLn(fmt.Sprintf("%d folders, %d playlists", folders, playlists))
	writeLn("")

	if len(tree) == 0 {
		writeLn("_Empty._")
		return buf.String()
	}
	for _, n := range tree {
		renderNodeLine(&buf, n, 0, opt)
	}
	return buf.String()
}

func renderNodeLine(buf *bytes.Buffer, n model.Node, depth int, opt RenderOptions) {
	prefix := strings.Repeat("  ", depth)
	title := strings.TrimSpace(n.Title)
	if title == "" {
		title = n.ID
	}
	if n.IsFolder() {
		title = "**" + title + "**"
		if len(n.Children) == 0 {
			title += " _(empty)_"
		}
	}
	id := ""
	if opt.IncludeIDs {
		id = " `" + n.ID + "`"
	}
	fmt.Fprintf(buf, "%s- %s%s\n", prefix, title, id)
	for _, ch := range n.Children {
		renderNodeLine(buf, ch, depth+1, opt)
	}
}

func countKinds(tree model.Tree) (folders, playlists int) {
	var walk func(nodes []model.Node)
	walk = func(nodes []model.Node) {
		for _, n := range nodes {
			if n.IsFolder() {
				folders++
			} else {
				playlists++
			}
			walk(n.Children)
		}
	}
	walk(tree)
	return folders, playlists
}
