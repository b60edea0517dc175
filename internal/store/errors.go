package store

import "fmt"

type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// TargetNotFoundError reports an insertion point whose parent is missing or is not a folder.
type TargetNotFoundError struct {
	ParentID string
}

func (e TargetNotFoundError) Error() string {
	return fmt.Sprintf("target folder not found: %s", e.ParentID)
}
