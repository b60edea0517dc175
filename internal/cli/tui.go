package cli

import (
	"playlist-organiser/internal/tui"

	"github.com/spf13/cobra"
)

func runTUI(cmd *cobra.Command, app *App) error {
	tree, err := loadTree(app)
	if err != nil {
		return writeErr(cmd, err)
	}
	sess := openSession(cmd.Context(), app, tree)
	defer sess.Close()

	app.log.WithField("nodes", tree.Count()).Info("organiser started")
	return tui.Run(sess.ctrl, tui.Options{
		Theme:  app.cfg.Theme,
		Indent: app.cfg.Indent,
		Logger: app.log,
	})
}
