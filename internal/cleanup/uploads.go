package cleanup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// pruneUploads deletes stale files from the top level of media/uploads.
// Only regular files older than the retention threshold go; subdirectories
// are never entered or removed, whatever their age. A missing uploads
// directory is a no-op.
func (r *Runner) pruneUploads() error {
	dir := r.cfg.Paths.UploadsDir

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read uploads dir: %w", err)
	}

	cutoff := r.now().Add(-r.cfg.Retention.UploadMaxAge)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if info.ModTime().Before(cutoff) {
			r.removeFile(filepath.Join(dir, e.Name()), "upload")
		}
	}
	return nil
}
