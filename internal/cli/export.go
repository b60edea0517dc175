package cli

import (
	"fmt"

	"playlist-organiser/internal/publish"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var (
		to        string
		title     string
		withIDs   bool
		overwrite bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the library as a markdown outline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := loadTree(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			opt := publish.RenderOptions{Title: title, IncludeIDs: withIDs}
			if to == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), publish.RenderTreeMarkdown(tree, opt))
				return err
			}
			res, err := publish.WriteTree(tree, to, publish.WriteOptions{RenderOptions: opt, Overwrite: overwrite})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": res})
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Write to this file instead of stdout")
	cmd.Flags().StringVar(&title, "title", "", "Document title (default \"Library\")")
	cmd.Flags().BoolVar(&withIDs, "ids", false, "Include node ids")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite an existing file")
	return cmd
}
