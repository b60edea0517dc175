package cli

import (
	"fmt"

	"playlist-organiser/internal/journal"

	"github.com/spf13/cobra"
)

func newJournalCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "List recorded drag outcomes (newest first)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.JournalPath == "" {
				return writeErr(cmd, errJournalDisabled)
			}
			j, err := journal.Open(cmd.Context(), app.JournalPath, journal.WithLogger(app.log))
			if err != nil {
				return writeErr(cmd, fmt.Errorf("open journal: %w", err))
			}
			defer j.Close()

			entries, err := j.List(cmd.Context(), limit)
			if err != nil {
				return writeErr(cmd, fmt.Errorf("list journal: %w", err))
			}
			summary, err := j.Summary(cmd.Context())
			if err != nil {
				return writeErr(cmd, fmt.Errorf("summarize journal: %w", err))
			}
			return writeOut(cmd, app, map[string]any{
				"data": entries,
				"meta": map[string]any{
					"count":    len(entries),
					"outcomes": summary,
					"path":     app.JournalPath,
				},
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "Max entries to return (0 = all)")
	return cmd
}
