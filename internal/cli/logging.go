package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// newLogger builds the process logger. With no log file, CLI commands log to stderr and the
// TUI discards logs.
func newLogger(stderr io.Writer, level, file string, tui bool) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}

	log := logrus.New()
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: file != ""})

	switch {
	case strings.TrimSpace(file) != "":
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		log.SetOutput(f)
	case tui:
		log.SetOutput(io.Discard)
	default:
		log.SetOutput(stderr)
	}
	return log, nil
}
