// Package storage loads and saves buffer text.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Store persists plain text by path.
type Store interface {
	Load(ctx context.Context, path string) (string, error)
	Save(ctx context.Context, path, text string) error
}

// FileStore is a Store on the local file system.
type FileStore struct {
	// Perm is the mode of created files. Zero means 0644.
	Perm fs.FileMode
}

// Load reads the file at path. A missing file loads as empty text.
func (s FileStore) Load(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// Save creates or truncates the file at path and writes text.
func (s FileStore) Save(ctx context.Context, path, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	perm := s.Perm
	if perm == 0 {
		perm = 0o644
	}
	if err := os.WriteFile(path, []byte(text), perm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// CollapseTabs replaces every run of width tabs with a single tab. A
// shorter run of tabs is left as is.
func CollapseTabs(text string, width int) string {
	if width <= 1 {
		return text
	}
	return strings.ReplaceAll(text, strings.Repeat("\t", width), "\t")
}

// ExpandTabs replaces every tab with width tabs, so that
// CollapseTabs(ExpandTabs(s, w), w) == s.
func ExpandTabs(text string, width int) string {
	if width <= 1 {
		return text
	}
	return strings.ReplaceAll(text, "\t", strings.Repeat("\t", width))
}
