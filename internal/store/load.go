package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"playlist-organiser/internal/model"

	"gopkg.in/yaml.v3"
)

// fileNode is the on-disk shape. Type accepts the aliases understood by model.ParseKind.
type fileNode struct {
	ID       string     `json:"id" yaml:"id"`
	Type     string     `json:"type" yaml:"type"`
	Title    string     `json:"title" yaml:"title"`
	Children []fileNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// LoadFile reads a tree from a .json, .yaml or .yml file and validates it.
func LoadFile(path string) (model.Tree, error) {
	t, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}
	if err := Doctor(t).FirstError(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// DecodeFile is LoadFile without the invariant checks, for callers that report them.
func DecodeFile(path string) (model.Tree, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := DecodeTree(b, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ParseTree decodes and validates a tree document.
func ParseTree(b []byte, ext string) (model.Tree, error) {
	t, err := DecodeTree(b, ext)
	if err != nil {
		return nil, err
	}
	if err := Doctor(t).FirstError(); err != nil {
		return nil, err
	}
	return t, nil
}

// DecodeTree decodes a tree document. ext selects the decoder (".json", ".yaml", ".yml"); an
// empty ext sniffs JSON by its leading bracket.
func DecodeTree(b []byte, ext string) (model.Tree, error) {
	var raw []fileNode
	switch strings.ToLower(strings.TrimSpace(ext)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &raw); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	default:
		trimmed := bytes.TrimSpace(b)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			if err := json.Unmarshal(trimmed, &raw); err != nil {
				return nil, fmt.Errorf("parse json: %w", err)
			}
		} else if err := yaml.Unmarshal(b, &raw); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	}
	return convertNodes(raw)
}

func convertNodes(raw []fileNode) (model.Tree, error) {
	out := make(model.Tree, 0, len(raw))
	for _, r := range raw {
		kind, ok := model.ParseKind(r.Type)
		if !ok {
			if strings.TrimSpace(r.Type) != "" {
				return nil, fmt.Errorf("node %q: unknown type %q", r.ID, r.Type)
			}
			// Untyped nodes are folders when they carry children.
			kind = model.KindPlaylist
			if r.Children != nil {
				kind = model.KindFolder
			}
		}
		n := model.Node{ID: r.ID, Kind: kind, Title: r.Title}
		if kind == model.KindFolder {
			ch, err := convertNodes(r.Children)
			if err != nil {
				return nil, err
			}
			n.Children = []model.Node(ch)
		} else if len(r.Children) > 0 {
			return nil, fmt.Errorf("leaf_has_children: playlist %q carries %d children", r.ID, len(r.Children))
		}
		out = append(out, n)
	}
	return out, nil
}
