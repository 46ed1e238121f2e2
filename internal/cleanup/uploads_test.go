package cleanup

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func touchAge(t *testing.T, path string, age time.Duration) {
	t.Helper()
	writeFile(t, path, "payload")
	mtime := time.Now().Add(-age)
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("chtimes %s: %v", path, err)
	}
}

func TestPruneUploadsAgeCutoff(t *testing.T) {
	work := t.TempDir()
	uploads := filepath.Join(work, "media", "uploads")

	tests := []struct {
		name string
		age  time.Duration
		gone bool
	}{
		{"fresh.xlsx", 23 * time.Hour, false},
		{"stale.xlsx", 25 * time.Hour, true},
		{"ancient.xlsx", 48 * time.Hour, true},
	}
	for _, tt := range tests {
		touchAge(t, filepath.Join(uploads, tt.name), tt.age)
	}

	r := testRunner(work)
	if err := r.pruneUploads(); err != nil {
		t.Fatalf("pruneUploads: %v", err)
	}

	for _, tt := range tests {
		got := !exists(filepath.Join(uploads, tt.name))
		if got != tt.gone {
			t.Errorf("%s: deleted=%v, want %v", tt.name, got, tt.gone)
		}
	}
}

func TestPruneUploadsNeverDescends(t *testing.T) {
	work := t.TempDir()
	uploads := filepath.Join(work, "media", "uploads")

	old := filepath.Join(uploads, "archive", "very-old.xlsx")
	touchAge(t, old, 30*24*time.Hour)
	dir := filepath.Join(uploads, "archive")
	mtime := time.Now().Add(-30 * 24 * time.Hour)
	if err := os.Chtimes(dir, mtime, mtime); err != nil {
		t.Fatalf("chtimes dir: %v", err)
	}

	r := testRunner(work)
	if err := r.pruneUploads(); err != nil {
		t.Fatalf("pruneUploads: %v", err)
	}

	if !exists(dir) {
		t.Error("subdirectory of uploads was deleted")
	}
	if !exists(old) {
		t.Error("file inside a subdirectory was deleted")
	}
}

func TestPruneUploadsMissingDirIsNoop(t *testing.T) {
	r := testRunner(t.TempDir())
	if err := r.pruneUploads(); err != nil {
		t.Fatalf("expected no error for missing uploads dir, got %v", err)
	}
}
