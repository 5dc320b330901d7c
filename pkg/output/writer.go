package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bedrockclaw/bedrockclaw/pkg/logger"
)

// ErrOutputWrite means the output directory or one of its files could not
// be created.
var ErrOutputWrite = errors.New("output write failed")

// Writer persists a Decision's files under a single output directory,
// creating it on demand.
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Apply writes every file of the decision and returns the written paths.
// Existing files are overwritten; a warning names each clobbered path so the
// silent-overwrite contract at least leaves a trace.
func (w *Writer) Apply(d Decision) ([]string, error) {
	if d.Mode == ModeConsole || len(d.Files) == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: create %s: %v", ErrOutputWrite, w.dir, err)
	}

	paths := make([]string, 0, len(d.Files))
	for _, f := range d.Files {
		path := filepath.Join(w.dir, f.Name)
		if _, err := os.Stat(path); err == nil {
			logger.WarnCF("output", "Overwriting existing file", map[string]interface{}{
				"path": path,
			})
		}
		if err := os.WriteFile(path, []byte(f.Content), 0644); err != nil {
			return paths, fmt.Errorf("%w: write %s: %v", ErrOutputWrite, path, err)
		}
		logger.InfoCF("output", "Saved output file", map[string]interface{}{
			"path": path,
		})
		paths = append(paths, path)
	}
	return paths, nil
}
