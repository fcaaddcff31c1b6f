// Package storage persists generated reports.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileSink writes each report to a single file, replacing the previous one.
// Concurrent saves do not block each other; the last rename wins.
type FileSink struct {
	path string
}

// NewFileSink returns a sink that writes to path. Relative paths resolve
// against the process working directory.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Path returns the file the sink writes to.
func (s *FileSink) Path() string { return s.path }

// Save writes data to a temporary file in the target directory and renames
// it over the target, so readers never observe a partially written report.
func (s *FileSink) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp report file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("writing report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("closing report: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		cleanup()
		return fmt.Errorf("setting report permissions: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		cleanup()
		return fmt.Errorf("replacing report: %w", err)
	}
	return nil
}
