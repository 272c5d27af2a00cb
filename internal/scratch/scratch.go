// Package scratch stages request bytes on disk for engines that need a
// filesystem path. Every helper returns a cleanup closure; callers defer it so
// nothing created for a request outlives that request.
package scratch

import (
	"fmt"
	"os"
)

// File writes data to a uniquely named temporary file with the given
// extension suffix and syncs it so downstream readers see all bytes.
// The cleanup closure removes the file and may be called more than once.
func File(data []byte, ext string) (string, func(), error) {
	f, err := os.CreateTemp("", "ocr-input-*"+ext)
	if err != nil {
		return "", nil, fmt.Errorf("create scratch file: %w", err)
	}
	cleanup := func() {
		f.Close()
		os.Remove(f.Name())
	}
	if _, err := f.Write(data); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("write scratch file: %w", err)
	}
	if err := f.Sync(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("sync scratch file: %w", err)
	}
	return f.Name(), cleanup, nil
}

// Dir creates a private scratch directory. The cleanup closure removes the
// directory and everything written into it.
func Dir(pattern string) (string, func(), error) {
	dir, err := os.MkdirTemp("", pattern)
	if err != nil {
		return "", nil, fmt.Errorf("create scratch dir: %w", err)
	}
	return dir, func() { os.RemoveAll(dir) }, nil
}
