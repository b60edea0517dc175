// Package journal records how drag sessions end in a local SQLite database.
//
// The journal is instrumentation only: it never stores the tree, so nothing read back from it
// can influence a later session.
package journal

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"playlist-organiser/internal/drag"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

type Entry struct {
	ID          string    `json:"id" yaml:"id"`
	SessionID   string    `json:"sessionId" yaml:"sessionId"`
	Outcome     string    `json:"outcome" yaml:"outcome"`
	ItemID      string    `json:"itemId,omitempty" yaml:"itemId,omitempty"`
	FromParent  string    `json:"fromParent,omitempty" yaml:"fromParent,omitempty"`
	FromIndex   int       `json:"fromIndex" yaml:"fromIndex"`
	ToParent    string    `json:"toParent,omitempty" yaml:"toParent,omitempty"`
	ToIndex     *int      `json:"toIndex,omitempty" yaml:"toIndex,omitempty"`
	Changed     bool      `json:"changed" yaml:"changed"`
	Error       string    `json:"error,omitempty" yaml:"error,omitempty"`
	TreeVersion uint64    `json:"treeVersion" yaml:"treeVersion"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
}

type Journal struct {
	db        *sql.DB
	sessionID string
	log       logrus.FieldLogger
	now       func() time.Time
}

type Option func(*Journal)

func WithLogger(l logrus.FieldLogger) Option {
	return func(j *Journal) {
		if l != nil {
			j.log = l
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(j *Journal) {
		if now != nil {
			j.now = now
		}
	}
}

// Open creates (or reuses) the journal at path. Each Open starts a new session id.
func Open(ctx context.Context, path string, opts ...Option) (*Journal, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("journal: empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	j := &Journal{
		db:        db,
		sessionID: uuid.NewString(),
		log:       quiet,
		now:       time.Now,
	}
	for _, o := range opts {
		o(j)
	}
	return j, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS drag_outcomes (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			outcome TEXT NOT NULL,
			item_id TEXT NOT NULL,
			from_parent TEXT NOT NULL,
			from_index INTEGER NOT NULL,
			to_parent TEXT,
			to_index INTEGER,
			changed INTEGER NOT NULL,
			error TEXT,
			tree_version INTEGER NOT NULL,
			created_at_unixms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_drag_outcomes_created ON drag_outcomes(created_at_unixms);`,
		`CREATE INDEX IF NOT EXISTS idx_drag_outcomes_item ON drag_outcomes(item_id);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

func (j *Journal) SessionID() string { return j.sessionID }

func (j *Journal) Close() error {
	if j == nil || j.db == nil {
		return nil
	}
	return j.db.Close()
}

func (j *Journal) Record(ctx context.Context, o drag.Outcome) (Entry, error) {
	e := Entry{
		ID:          uuid.NewString(),
		SessionID:   j.sessionID,
		Outcome:     string(o.Kind),
		ItemID:      o.ItemID,
		FromParent:  o.From.ParentID,
		FromIndex:   o.From.Index,
		Changed:     o.Changed,
		TreeVersion: o.Version,
		CreatedAt:   j.now().UTC(),
	}
	if o.Target != nil {
		e.ToParent = o.Target.ParentID
		idx := o.Target.Index
		e.ToIndex = &idx
	}
	if o.Err != nil {
		e.Error = o.Err.Error()
	}

	var toParent, errText sql.NullString
	var toIndex sql.NullInt64
	if e.ToIndex != nil {
		toParent = sql.NullString{String: e.ToParent, Valid: true}
		toIndex = sql.NullInt64{Int64: int64(*e.ToIndex), Valid: true}
	}
	if e.Error != "" {
		errText = sql.NullString{String: e.Error, Valid: true}
	}
	changed := 0
	if e.Changed {
		changed = 1
	}
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO drag_outcomes(
			id, session_id, outcome, item_id, from_parent, from_index,
			to_parent, to_index, changed, error, tree_version, created_at_unixms
		) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.SessionID, e.Outcome, e.ItemID, e.FromParent, e.FromIndex,
		toParent, toIndex, changed, errText, int64(e.TreeVersion), e.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return Entry{}, err
	}
	return e, nil
}

// Observe implements drag.Observer. Write failures are logged, never surfaced to the drag.
func (j *Journal) Observe(o drag.Outcome) {
	if o.Kind == drag.OutcomeIgnored {
		return
	}
	if _, err := j.Record(context.Background(), o); err != nil {
		j.log.WithError(err).WithField("outcome", string(o.Kind)).Warn("journal write failed")
	}
}

// List returns the newest entries first. limit <= 0 means no limit.
func (j *Journal) List(ctx context.Context, limit int) ([]Entry, error) {
	q := `SELECT id, session_id, outcome, item_id, from_parent, from_index,
		to_parent, to_index, changed, error, tree_version, created_at_unixms
		FROM drag_outcomes ORDER BY created_at_unixms DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := j.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Entry{}
	for rows.Next() {
		var (
			e        Entry
			toParent sql.NullString
			toIndex  sql.NullInt64
			changed  int
			errText  sql.NullString
			version  int64
			created  int64
		)
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Outcome, &e.ItemID, &e.FromParent, &e.FromIndex,
			&toParent, &toIndex, &changed, &errText, &version, &created); err != nil {
			return nil, err
		}
		e.ToParent = toParent.String
		if toIndex.Valid {
			idx := int(toIndex.Int64)
			e.ToIndex = &idx
		}
		e.Changed = changed != 0
		e.Error = errText.String
		e.TreeVersion = uint64(version)
		e.CreatedAt = time.UnixMilli(created).UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}

// Summary counts entries per outcome kind.
func (j *Journal) Summary(ctx context.Context) (map[string]int, error) {
	rows, err := j.db.QueryContext(ctx, `SELECT outcome, COUNT(*) FROM drag_outcomes GROUP BY outcome`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string]int{}
	for rows.Next() {
		var k string
		var n int
		if err := rows.Scan(&k, &n); err != nil {
			return nil, err
		}
		out[k] = n
	}
	return out, rows.Err()
}
