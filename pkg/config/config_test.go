package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	cfg, err := Load(strings.NewReader(`
out: build/types
content_types_file: cms/content-types.json
package_version: 0.3.0
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Out != "build/types" {
		t.Errorf("out = %q", cfg.Out)
	}
	if cfg.ContentTypesFile != "cms/content-types.json" {
		t.Errorf("content_types_file = %q", cfg.ContentTypesFile)
	}
	if cfg.PackageVersion != "0.3.0" {
		t.Errorf("package_version = %q", cfg.PackageVersion)
	}
	if cfg.SectionsFile != "" || cfg.ZodVersion != "" {
		t.Errorf("unset fields should be empty: %+v", cfg)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader("outt: typo\n"))
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestLoadWorkspace(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadWorkspace(dir)
	if err != nil || cfg != nil {
		t.Fatalf("missing config should yield (nil, nil), got (%v, %v)", cfg, err)
	}

	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("zod_version: ^3.25.0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadWorkspace(dir)
	if err != nil {
		t.Fatalf("LoadWorkspace: %v", err)
	}
	if cfg.ZodVersion != "^3.25.0" {
		t.Errorf("zod_version = %q", cfg.ZodVersion)
	}
}
