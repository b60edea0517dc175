package store

import (
	"fmt"
	"strings"

	"playlist-organiser/internal/model"
)

type DoctorIssueLevel string

const (
	DoctorIssueLevelError DoctorIssueLevel = "error"
	DoctorIssueLevelWarn  DoctorIssueLevel = "warn"
)

type DoctorIssue struct {
	Level   DoctorIssueLevel `json:"level" yaml:"level"`
	Code    string           `json:"code" yaml:"code"`
	Message string           `json:"message" yaml:"message"`
	// Path is the slash-joined chain of ancestor ids leading to the node.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
	ID   string `json:"id,omitempty" yaml:"id,omitempty"`
}

type DoctorReport struct {
	Nodes  int           `json:"nodes" yaml:"nodes"`
	Issues []DoctorIssue `json:"issues" yaml:"issues"`
}

func (r DoctorReport) HasErrors() bool {
	for _, it := range r.Issues {
		if it.Level == DoctorIssueLevelError {
			return true
		}
	}
	return false
}

// FirstError returns the first error-level issue as an error, or nil.
func (r DoctorReport) FirstError() error {
	for _, it := range r.Issues {
		if it.Level == DoctorIssueLevelError {
			if it.Path != "" {
				return fmt.Errorf("%s (%s): %s", it.Code, it.Path, it.Message)
			}
			return fmt.Errorf("%s: %s", it.Code, it.Message)
		}
	}
	return nil
}

// Doctor checks the structural invariants every tree must satisfy before a session starts.
func Doctor(tree model.Tree) DoctorReport {
	var issues []DoctorIssue
	seen := map[string]string{}
	nodes := 0

	var walk func(path []string, list []model.Node)
	walk = func(path []string, list []model.Node) {
		for _, n := range list {
			nodes++
			id := strings.TrimSpace(n.ID)
			childPath := append(append([]string{}, path...), id)
			p := strings.Join(childPath, "/")
			switch {
			case id == "":
				issues = append(issues, DoctorIssue{
					Level:   DoctorIssueLevelError,
					Code:    "empty_id",
					Message: fmt.Sprintf("node %q has an empty id", n.Title),
					Path:    p,
				})
			case id != n.ID:
				issues = append(issues, DoctorIssue{
					Level:   DoctorIssueLevelError,
					Code:    "id_whitespace",
					Message: fmt.Sprintf("id %q has surrounding whitespace", n.ID),
					Path:    p,
					ID:      n.ID,
				})
			case id == model.RootID:
				issues = append(issues, DoctorIssue{
					Level:   DoctorIssueLevelError,
					Code:    "reserved_id",
					Message: fmt.Sprintf("id %q is reserved for the root list", id),
					Path:    p,
					ID:      id,
				})
			}
			if id != "" {
				if prev, ok := seen[id]; ok {
					issues = append(issues, DoctorIssue{
						Level:   DoctorIssueLevelError,
						Code:    "duplicate_id",
						Message: fmt.Sprintf("id %q also appears at %s", id, prev),
						Path:    p,
						ID:      id,
					})
				} else {
					seen[id] = p
				}
			}
			if !n.Kind.Valid() {
				issues = append(issues, DoctorIssue{
					Level:   DoctorIssueLevelError,
					Code:    "unknown_kind",
					Message: fmt.Sprintf("unknown node type %q", n.Kind),
					Path:    p,
					ID:      id,
				})
			}
			if n.Kind == model.KindPlaylist && len(n.Children) > 0 {
				issues = append(issues, DoctorIssue{
					Level:   DoctorIssueLevelError,
					Code:    "leaf_has_children",
					Message: fmt.Sprintf("playlist %q carries %d children", id, len(n.Children)),
					Path:    p,
					ID:      id,
				})
			}
			if strings.TrimSpace(n.Title) == "" {
				issues = append(issues, DoctorIssue{
					Level:   DoctorIssueLevelWarn,
					Code:    "empty_title",
					Message: fmt.Sprintf("node %q has no title", id),
					Path:    p,
					ID:      id,
				})
			}
			walk(childPath, n.Children)
		}
	}
	walk(nil, tree)

	return DoctorReport{Nodes: nodes, Issues: issuesOrEmpty(issues)}
}

func issuesOrEmpty(xs []DoctorIssue) []DoctorIssue {
	if xs == nil {
		return []DoctorIssue{}
	}
	return xs
}
