package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsZeroValue(t *testing.T) {
	dir := t.TempDir()
	restore := chdir(t, dir)
	defer restore()

	f, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error for a missing file: %v", err)
	}
	if f.MaxSousChefDepth != 0 || f.MaxStatements != 0 {
		t.Errorf("Load() = %+v; want zero value", f)
	}
}

func TestLoadReadsOverrides(t *testing.T) {
	dir := t.TempDir()
	restore := chdir(t, dir)
	defer restore()

	data := []byte("maxSousChefDepth: 50\nmaxStatements: 1000\n")
	if err := os.WriteFile(filepath.Join(dir, fileName), data, 0o644); err != nil {
		t.Fatalf("writing chef.yaml: %v", err)
	}

	f, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if f.MaxSousChefDepth != 50 || f.MaxStatements != 1000 {
		t.Errorf("Load() = %+v; want {50 1000}", f)
	}
}

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	return func() { os.Chdir(old) }
}
