package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/kbtool-cli/internal/utils"
)

func TestSafeWriteFileOverwritesAndLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "out.md")
	if err := utils.SafeWriteFile(p, []byte("first")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := utils.SafeWriteFile(p, []byte("second")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "second" {
		t.Fatalf("unexpected content: %q", b)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the target file, got %d entries", len(entries))
	}
}

func TestSafeWriteFileModeKeepsPermissions(t *testing.T) {
	p := filepath.Join(t.TempDir(), "run.sh")
	if err := utils.SafeWriteFileMode(p, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write: %v", err)
	}
	info, err := os.Stat(p)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Fatalf("expected 0755, got %v", info.Mode().Perm())
	}
}

func TestEnsureParentDir(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a", "b", "c.md")
	if err := utils.EnsureParentDir(p); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if info, err := os.Stat(filepath.Dir(p)); err != nil || !info.IsDir() {
		t.Fatalf("expected parent dir to exist: %v", err)
	}
	if err := utils.EnsureParentDir("relative.md"); err != nil {
		t.Fatalf("bare file name should be a no-op: %v", err)
	}
}
