package cli

import (
	"errors"
	"strings"

	"playlist-organiser/internal/index"
	"playlist-organiser/internal/store"

	"github.com/spf13/cobra"
)

func newTreeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the folder/playlist tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := loadTree(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": tree,
				"meta": map[string]any{
					"nodes":  tree.Count(),
					"source": treeSource(app),
				},
			})
		},
	}
}

func newPointsCmd(app *App) *cobra.Command {
	var parent string

	cmd := &cobra.Command{
		Use:   "points",
		Short: "List every insertion point (drop target) of the tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := loadTree(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			ix := index.Build(tree)
			points := ix.Points()
			parent = strings.TrimSpace(parent)
			if parent != "" {
				points = ix.For(parent)
				if len(points) == 0 {
					return writeErr(cmd, store.TargetNotFoundError{ParentID: parent})
				}
			}
			return writeOut(cmd, app, map[string]any{
				"data": points,
				"meta": map[string]any{"count": len(points), "total": ix.Len()},
			})
		},
	}
	cmd.Flags().StringVar(&parent, "parent", "", "Only list points of this container (use \"root\" for the top level)")
	return cmd
}

var errCheckFailed = errors.New("tree has errors")

func newCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate tree invariants (ids, kinds, children on playlists)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree := store.DemoTree()
			if app.TreeFile != "" {
				t, err := store.DecodeFile(app.TreeFile)
				if err != nil {
					return writeErr(cmd, err)
				}
				tree = t
			}

			report := store.Doctor(tree)
			if err := writeOut(cmd, app, map[string]any{
				"data": report,
				"meta": map[string]any{
					"issues":    len(report.Issues),
					"hasErrors": report.HasErrors(),
					"source":    treeSource(app),
				},
			}); err != nil {
				return err
			}
			if report.HasErrors() {
				return errCheckFailed
			}
			return nil
		},
	}
}
