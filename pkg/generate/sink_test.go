package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// memSink is an in-memory Sink for exercising emission without a filesystem.
type memSink struct {
	files map[string][]byte
	dirs  map[string]bool
}

func newMemSink() *memSink {
	return &memSink{files: make(map[string][]byte), dirs: make(map[string]bool)}
}

func (s *memSink) WriteFile(path string, data []byte) error {
	s.files[path] = append([]byte(nil), data...)
	return nil
}

func (s *memSink) ReadFile(path string) ([]byte, error) {
	data, ok := s.files[path]
	if !ok {
		return nil, fmt.Errorf("no such file: %s", path)
	}
	return data, nil
}

func (s *memSink) MkdirAll(path string) error {
	s.dirs[path] = true
	return nil
}

func (s *memSink) Exists(path string) bool {
	_, ok := s.files[path]
	return ok || s.dirs[path]
}

func TestDirSink(t *testing.T) {
	root := t.TempDir()
	sink := &DirSink{Root: root}

	if err := sink.MkdirAll("content-types"); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	// Idempotent on existing directories.
	if err := sink.MkdirAll("content-types"); err != nil {
		t.Fatalf("MkdirAll (repeat): %v", err)
	}

	if err := sink.WriteFile("content-types/Foo.ts", []byte("x")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if !sink.Exists("content-types/Foo.ts") {
		t.Error("Exists = false after write")
	}
	data, err := sink.ReadFile("content-types/Foo.ts")
	if err != nil || string(data) != "x" {
		t.Errorf("ReadFile = %q, %v", data, err)
	}

	onDisk, err := os.ReadFile(filepath.Join(root, "content-types", "Foo.ts"))
	if err != nil || string(onDisk) != "x" {
		t.Errorf("file on disk = %q, %v", onDisk, err)
	}
	if sink.Exists("content-types/Missing.ts") {
		t.Error("Exists = true for missing file")
	}
}
