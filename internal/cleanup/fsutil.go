package cleanup

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/local/deployjanitor/internal/metrics"
)

// removeFile deletes path if it exists, recording the freed bytes.
// Per-file errors (already gone, permissions) are logged at debug and
// swallowed: individual misses never fail a step.
func (r *Runner) removeFile(path, category string) {
	st, err := os.Lstat(path)
	if err != nil {
		return
	}
	if err := os.Remove(path); err != nil {
		r.log.Debug().Err(err).Str("path", path).Msg("could not remove file")
		return
	}
	metrics.IncRemoved(category)
	metrics.AddBytesFreed(st.Size())
	r.log.Debug().Str("path", path).Msg("removed")
}

// removeTree deletes a whole directory tree if present.
func (r *Runner) removeTree(path, category string) {
	if _, err := os.Lstat(path); err != nil {
		return
	}
	size := treeSize(path)
	if err := os.RemoveAll(path); err != nil {
		r.log.Debug().Err(err).Str("path", path).Msg("could not remove tree")
		return
	}
	metrics.IncRemoved(category)
	metrics.AddBytesFreed(size)
	r.log.Debug().Str("path", path).Msg("removed tree")
}

// sweepFiles walks root and deletes every file whose base name matches.
// Walk errors on individual entries are suppressed so one unreadable
// directory does not abort the sweep.
func (r *Runner) sweepFiles(root, category string, match func(name string) bool) {
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if match(d.Name()) {
			r.removeFile(path, category)
		}
		return nil
	})
}

// sweepDirs walks root and deletes every directory with the given name,
// contents included, without descending into it afterwards.
func (r *Runner) sweepDirs(root, name, category string) {
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() && d.Name() == name && path != root {
			r.removeTree(path, category)
			return fs.SkipDir
		}
		return nil
	})
}

// treeSize sums the size of all regular files under root. Unreadable
// entries count as zero.
func treeSize(root string) int64 {
	var total int64
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if info, err := d.Info(); err == nil && info.Mode().IsRegular() {
			total += info.Size()
		}
		return nil
	})
	return total
}
