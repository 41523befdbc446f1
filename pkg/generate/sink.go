package generate

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sink is the output capability handed to the emitter. Paths are
// slash-separated and relative to the sink root. Keeping this an interface
// keeps emission testable without touching a real filesystem.
type Sink interface {
	WriteFile(path string, data []byte) error
	ReadFile(path string) ([]byte, error)
	MkdirAll(path string) error
	Exists(path string) bool
}

// DirSink writes into a directory tree rooted at Root.
type DirSink struct {
	Root string
}

func (s *DirSink) WriteFile(path string, data []byte) error {
	full := filepath.Join(s.Root, filepath.FromSlash(path))
	if err := os.WriteFile(full, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (s *DirSink) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.Root, filepath.FromSlash(path)))
}

func (s *DirSink) MkdirAll(path string) error {
	full := filepath.Join(s.Root, filepath.FromSlash(path))
	if err := os.MkdirAll(full, 0755); err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	return nil
}

func (s *DirSink) Exists(path string) bool {
	_, err := os.Stat(filepath.Join(s.Root, filepath.FromSlash(path)))
	return err == nil
}
