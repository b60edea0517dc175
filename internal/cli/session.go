package cli

import (
	"context"

	"playlist-organiser/internal/drag"
	"playlist-organiser/internal/journal"
	"playlist-organiser/internal/model"
	"playlist-organiser/internal/store"
)

type session struct {
	store   *store.Store
	ctrl    *drag.Controller
	journal *journal.Journal
}

// openSession wires a controller over tree with the process logger and, when configured, the
// drag journal. A journal that cannot be opened is logged and skipped.
func openSession(ctx context.Context, app *App, tree model.Tree) *session {
	s := &session{store: store.New(tree)}
	opts := []drag.Option{drag.WithLogger(app.log)}

	if app.JournalPath != "" {
		j, err := journal.Open(ctx, app.JournalPath, journal.WithLogger(app.log))
		if err != nil {
			app.log.WithError(err).WithField("path", app.JournalPath).Warn("journal unavailable; outcomes will not be recorded")
		} else {
			s.journal = j
			opts = append(opts, drag.WithObserver(j))
			app.log.WithField("session", j.SessionID()).Debug("journal opened")
		}
	}
	s.ctrl = drag.NewController(s.store, opts...)
	return s
}

func (s *session) Close() error {
	if s.journal == nil {
		return nil
	}
	return s.journal.Close()
}
