// Package publish exports the library as markdown.
package publish

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"playlist-organiser/internal/model"
)

type WriteOptions struct {
	RenderOptions
	Overwrite bool
}

type WriteResult struct {
	Written []string `json:"written"`
	Bytes   int      `json:"bytes"`
}

// WriteTree renders tree to the markdown file at path, creating parent directories.
func WriteTree(tree model.Tree, path string, opt WriteOptions) (WriteResult, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return WriteResult{}, errors.New("missing --to")
	}
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return WriteResult{}, err
	}

	md := RenderTreeMarkdown(tree, opt.RenderOptions)
	if err := writeFile(path, []byte(md), opt.Overwrite); err != nil {
		return WriteResult{}, err
	}
	return WriteResult{Written: []string{path}, Bytes: len(md)}, nil
}

func writeFile(path string, b []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.New("file exists (use --overwrite): " + path)
		}
	}
	return os.WriteFile(path, b, 0o644)
}
