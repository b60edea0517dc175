package cli

import (
	"fmt"
	"strings"

	"playlist-organiser/internal/drag"
	"playlist-organiser/internal/index"
	"playlist-organiser/internal/store"

	"github.com/spf13/cobra"
)

func newMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move <item-id> <point-key>",
		Short: "Drag one item to an insertion point and print the resulting tree",
		Long: strings.TrimSpace(`
Runs a full drag (start, hover, release) through the same controller the TUI uses. The
result is printed, not saved. Point keys look like "folder-1/insertion/0"; list them with
"organiser points".
`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID := strings.TrimSpace(args[0])
			key := strings.TrimSpace(args[1])
			if _, ok := index.ParseKey(key); !ok {
				return writeErr(cmd, badPointKeyError{key: key})
			}

			tree, err := loadTree(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			sess := openSession(cmd.Context(), app, tree)
			defer sess.Close()

			sess.ctrl.Dispatch(drag.DragStart{ItemID: itemID})
			if !sess.ctrl.State().Dragging() {
				return writeErr(cmd, store.NotFoundError{Kind: "item", ID: itemID})
			}
			sess.ctrl.Dispatch(drag.DragHover{PointKey: key})
			out, _ := sess.ctrl.Dispatch(drag.DragRelease{PointKey: key})

			if err := writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"outcome": viewOutcome(out),
					"tree":    sess.store.Tree(),
				},
				"meta": map[string]any{"saved": false},
			}); err != nil {
				return err
			}
			if !out.Committed() {
				return writeErr(cmd, moveFailedError{outcome: out})
			}
			return nil
		},
	}
}

func newReplayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <events-file>",
		Short: "Feed a recorded list of drag events through the controller",
		Long: strings.TrimSpace(`
The events file is a YAML or JSON list such as:

  - {type: start, item: playlist-1}
  - {type: hover, point: folder-3/insertion/1}
  - {type: release, point: folder-3/insertion/1}

Each finished session's outcome is printed along with the final tree. Nothing is saved.
`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := drag.LoadScript(args[0])
			if err != nil {
				return writeErr(cmd, fmt.Errorf("load events: %w", err))
			}
			tree, err := loadTree(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			sess := openSession(cmd.Context(), app, tree)
			defer sess.Close()

			outcomes := []outcomeView{}
			committed := 0
			for _, ev := range events {
				out, done := sess.ctrl.Dispatch(ev)
				if !done {
					continue
				}
				if out.Committed() {
					committed++
				}
				outcomes = append(outcomes, viewOutcome(out))
			}

			unfinished := sess.ctrl.State().Dragging()
			if unfinished {
				outcomes = append(outcomes, viewOutcome(sess.ctrl.Cancel()))
			}

			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"outcomes": outcomes,
					"tree":     sess.store.Tree(),
				},
				"meta": map[string]any{
					"events":     len(events),
					"committed":  committed,
					"unfinished": unfinished,
					"version":    sess.store.Version(),
				},
			})
		},
	}
}
