// Package source provides the places raw dataset text is read from: a
// directory of CSV files or a PostgreSQL table of raw CSV blobs.
package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/JonMunkholm/riskreport/internal/core"
)

// Dir reads datasets from files in a directory.
type Dir struct {
	root string
}

// NewDir returns a source rooted at dir.
func NewDir(dir string) *Dir {
	return &Dir{root: dir}
}

// ReadDataset reads the file called name from the directory.
func (d *Dir) ReadDataset(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// Names come from dataset definitions, but never let one escape the root
	safe := filepath.Base(name)
	if safe != name || strings.Contains(name, "..") {
		return "", fmt.Errorf("invalid dataset name: %q", name)
	}

	f, err := os.Open(filepath.Join(d.root, safe))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s: %w", core.ErrSourceNotFound, name, err)
		}
		return "", fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	text, _, err := core.ReadText(f)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return text, nil
}
