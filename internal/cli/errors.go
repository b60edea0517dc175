package cli

import (
	"errors"
	"fmt"

	"playlist-organiser/internal/drag"
)

var errJournalDisabled = errors.New("journal disabled (set journal_path or pass --journal)")

type badPointKeyError struct {
	key string
}

func (e badPointKeyError) Error() string {
	return fmt.Sprintf("invalid insertion point %q (want <parent-id>/insertion/<index>)", e.key)
}

// moveFailedError reports a drag session that ended without committing.
type moveFailedError struct {
	outcome drag.Outcome
}

func (e moveFailedError) Error() string {
	if e.outcome.Err != nil {
		return fmt.Sprintf("move %s: %s: %v", e.outcome.ItemID, e.outcome.Kind, e.outcome.Err)
	}
	return fmt.Sprintf("move %s: %s", e.outcome.ItemID, e.outcome.Kind)
}

func (e moveFailedError) Unwrap() error { return e.outcome.Err }
