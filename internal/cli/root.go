package cli

import (
	"fmt"
	"os"
	"strings"

	"playlist-organiser/internal/config"
	"playlist-organiser/internal/format"
	"playlist-organiser/internal/model"
	"playlist-organiser/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type App struct {
	ConfigFile  string
	TreeFile    string
	JournalPath string
	NoJournal   bool
	LogLevel    string
	LogFile     string
	PrettyJSON  bool
	Format      string

	cfg config.Config
	log *logrus.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "organiser",
		Short:        "Reorder a folder/playlist library by drag and drop",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive organiser
  organiser

  # Inspect the tree and its drop targets
  organiser tree --pretty
  organiser points

  # Move without the mouse (shortcut for: organiser move <item-id> <point-key>)
  organiser playlist-1 folder-3/insertion/1

  # Replay a recorded drag session
  organiser replay session.yaml
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup(cmd)
	}

	cmd.PersistentFlags().StringVar(&app.ConfigFile, "config", envOr("ORGANISER_CONFIG", ""), "Config file (default is $HOME/.config/organiser/config.yaml)")
	cmd.PersistentFlags().StringVar(&app.TreeFile, "tree", "", "Tree file (.json|.yaml); default is the demo library")
	cmd.PersistentFlags().StringVar(&app.JournalPath, "journal", "", "Drag journal path (sqlite)")
	cmd.PersistentFlags().BoolVar(&app.NoJournal, "no-journal", false, "Do not record drag outcomes")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "", "Log level (trace|debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", "", "Write logs to this file instead of stderr")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", "", "Output format (json|edn|yaml)")

	cmd.AddCommand(newTreeCmd(app))
	cmd.AddCommand(newPointsCmd(app))
	cmd.AddCommand(newCheckCmd(app))
	cmd.AddCommand(newMoveCmd(app))
	cmd.AddCommand(newReplayCmd(app))
	cmd.AddCommand(newJournalCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

// setup merges config with flags; explicitly set flags win.
func (app *App) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(app.ConfigFile)
	if err != nil {
		return writeErr(cmd, err)
	}
	app.cfg = cfg

	if app.TreeFile == "" {
		app.TreeFile = cfg.TreeFile
	}
	if app.JournalPath == "" {
		app.JournalPath = cfg.JournalPath
	}
	if app.NoJournal {
		app.JournalPath = ""
	}
	if app.LogLevel == "" {
		app.LogLevel = cfg.LogLevel
	}
	if app.LogFile == "" {
		app.LogFile = cfg.LogFile
	}
	if app.Format == "" {
		app.Format = cfg.Format
	}
	switch app.Format {
	case "json", "edn", "yaml":
	default:
		return writeErr(cmd, fmt.Errorf("invalid --format %q (json|edn|yaml)", app.Format))
	}

	// The TUI owns the terminal, so its logs go to a file or nowhere.
	tuiMode := cmd.Root() == cmd
	log, err := newLogger(cmd.ErrOrStderr(), app.LogLevel, app.LogFile, tuiMode)
	if err != nil {
		return writeErr(cmd, err)
	}
	app.log = log
	if cfg.Source != "" {
		app.log.WithField("config", cfg.Source).Debug("config loaded")
	}
	return nil
}

// loadTree returns the configured tree (validated) or the demo library.
func loadTree(app *App) (model.Tree, error) {
	if strings.TrimSpace(app.TreeFile) == "" {
		return store.DemoTree(), nil
	}
	t, err := store.LoadFile(app.TreeFile)
	if err != nil {
		return nil, fmt.Errorf("load tree: %w", err)
	}
	return t, nil
}

func treeSource(app *App) string {
	if strings.TrimSpace(app.TreeFile) == "" {
		return "demo"
	}
	return app.TreeFile
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
