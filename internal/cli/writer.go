package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/pawel-sp/Catchable/internal/errors"
)

// OutputWriter writes generated files atomically: the content lands in a
// uniquely named temporary file next to the target and is renamed into
// place, so a failed run never leaves a truncated output behind.
type OutputWriter struct{}

// NewOutputWriter creates an output writer
func NewOutputWriter() *OutputWriter {
	return &OutputWriter{}
}

// Write stores content at path, creating parent directories as needed
func (w *OutputWriter) Write(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.WrapFileSystemError("create directory for", path, err)
	}

	temp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	if err := os.WriteFile(temp, []byte(content), 0644); err != nil {
		return errors.WrapFileSystemError("write", temp, err)
	}

	if err := os.Rename(temp, path); err != nil {
		os.Remove(temp)
		return errors.WrapFileSystemError("replace", path, err)
	}

	return nil
}
