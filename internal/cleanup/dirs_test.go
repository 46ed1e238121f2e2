package cleanup

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDirectoriesIsIdempotent(t *testing.T) {
	work := t.TempDir()
	r := testRunner(work)

	if err := r.ensureDirectories(); err != nil {
		t.Fatalf("first ensureDirectories: %v", err)
	}
	if err := r.ensureDirectories(); err != nil {
		t.Fatalf("second ensureDirectories: %v", err)
	}
}

func TestEnsureMarkersPreservesExistingContent(t *testing.T) {
	work := t.TempDir()
	r := testRunner(work)
	if err := r.ensureDirectories(); err != nil {
		t.Fatalf("ensureDirectories: %v", err)
	}

	marker := filepath.Join(r.cfg.Paths.OutputsDir, ".gitkeep")
	writeFile(t, marker, "custom content")

	if err := r.ensureMarkers(); err != nil {
		t.Fatalf("ensureMarkers: %v", err)
	}

	got, err := os.ReadFile(marker)
	if err != nil {
		t.Fatalf("read marker: %v", err)
	}
	if string(got) != "custom content" {
		t.Errorf("marker content overwritten: %q", got)
	}

	// The uploads marker did not exist and must now be an empty file.
	up := filepath.Join(r.cfg.Paths.UploadsDir, ".gitkeep")
	fi, err := os.Stat(up)
	if err != nil {
		t.Fatalf("uploads marker missing: %v", err)
	}
	if fi.Size() != 0 {
		t.Errorf("new marker is not empty: %d bytes", fi.Size())
	}
}
