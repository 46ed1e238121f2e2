package cleanup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ensureDirectories creates the directories the application expects to
// find after a deploy. Existing directories are left untouched.
func (r *Runner) ensureDirectories() error {
	dirs := []string{r.cfg.Paths.UploadsDir, r.cfg.Paths.OutputsDir}
	dirs = append(dirs, r.cfg.Paths.StaticDirs...)

	var firstErr error
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			r.log.Debug().Err(err).Str("dir", d).Msg("could not create directory")
			if firstErr == nil {
				firstErr = fmt.Errorf("create %s: %w", d, err)
			}
		}
	}
	return firstErr
}

// ensureMarkers drops a .gitkeep into each media subdirectory so version
// control keeps tracking them when the sweeps leave them empty. O_EXCL
// guarantees a marker that already exists is never truncated.
func (r *Runner) ensureMarkers() error {
	var firstErr error
	for _, dir := range []string{r.cfg.Paths.UploadsDir, r.cfg.Paths.OutputsDir} {
		path := filepath.Join(dir, ".gitkeep")
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err != nil {
			if errors.Is(err, fs.ErrExist) {
				continue
			}
			r.log.Debug().Err(err).Str("path", path).Msg("could not create marker")
			if firstErr == nil {
				firstErr = fmt.Errorf("create %s: %w", path, err)
			}
			continue
		}
		f.Close()
	}
	return firstErr
}
