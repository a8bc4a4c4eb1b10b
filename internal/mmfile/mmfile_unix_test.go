//go:build unix

package mmfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMapReadOnlyUnix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.pol")
	want := []byte{'P', 'R', 'e', 'g', 0x01, 0x00, 0x00, 0x00}
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, cleanup, err := Map(path)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if string(data) != string(want) {
		t.Fatalf("content mismatch: got %x want %x", data, want)
	}
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	// Second cleanup is a no-op.
	if err := cleanup(); err != nil {
		t.Fatalf("second cleanup: %v", err)
	}
}

func TestMapZeroLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pol")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, cleanup, err := Map(path)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if len(data) != 0 {
		t.Fatalf("expected zero-length mapping, got %d", len(data))
	}
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
}

func TestMapMissingFile(t *testing.T) {
	_, cleanup, err := Map(filepath.Join(t.TempDir(), "missing.pol"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if cleanup == nil || cleanup() != nil {
		t.Fatalf("cleanup should be a callable no-op on error")
	}
}
