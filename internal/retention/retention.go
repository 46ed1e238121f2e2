package retention

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
)

// Options controls an age-based sweep.
type Options struct {
	MaxAge time.Duration
	DryRun bool
	// Force also deletes files above the large-file threshold, which are
	// otherwise kept and reported.
	Force bool
}

// Result accumulates what a sweep deleted (or would delete in dry-run).
type Result struct {
	Files int
	Bytes int64
}

func (r *Result) add(o Result) {
	r.Files += o.Files
	r.Bytes += o.Bytes
}

// Files that must survive any sweep.
var criticalNames = map[string]bool{
	".gitkeep":    true,
	"README.md":   true,
	"__init__.py": true,
}

const largeFileBytes = 10 * 1024 * 1024

// Sweeper performs recursive age-based pruning of application data
// directories, the interactive-maintenance counterpart of the fixed
// deploy checklist.
type Sweeper struct {
	log zerolog.Logger
	now func() time.Time
}

func New(log zerolog.Logger) *Sweeper {
	return &Sweeper{log: log, now: time.Now}
}

// SweepDirectory deletes every file under root older than opts.MaxAge,
// recursively, then removes directories the sweep left empty. A missing
// root is a no-op; a root that exists but is not a directory is an error.
func (s *Sweeper) SweepDirectory(root string, opts Options) (Result, error) {
	var res Result

	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return res, nil
		}
		return res, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return res, fmt.Errorf("%s is not a directory", root)
	}

	cutoff := s.now().Add(-opts.MaxAge)
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if criticalNames[d.Name()] {
			return nil
		}
		fi, err := d.Info()
		if err != nil || !fi.ModTime().Before(cutoff) {
			return nil
		}
		if fi.Size() > largeFileBytes && !opts.Force {
			s.log.Info().
				Str("path", path).
				Str("size", humanize.IBytes(uint64(fi.Size()))).
				Msg("large file kept, rerun with --force to delete")
			return nil
		}
		res.add(s.remove(path, fi, opts))
		return nil
	})

	if !opts.DryRun {
		s.removeEmptyDirs(root)
	}
	return res, nil
}

// SweepRotatedLogs prunes rotated log files (name.log.1, name.log.2.gz,
// ...) older than MaxAge directly under logsDir. Active *.log files are
// kept. A missing logs directory is a no-op.
func (s *Sweeper) SweepRotatedLogs(logsDir string, opts Options) (Result, error) {
	var res Result

	matches, err := filepath.Glob(filepath.Join(logsDir, "*.log.*"))
	if err != nil {
		return res, fmt.Errorf("glob rotated logs: %w", err)
	}

	cutoff := s.now().Add(-opts.MaxAge)
	for _, path := range matches {
		fi, err := os.Stat(path)
		if err != nil || fi.IsDir() {
			continue
		}
		if fi.ModTime().Before(cutoff) {
			res.add(s.remove(path, fi, opts))
		}
	}
	return res, nil
}

func (s *Sweeper) remove(path string, fi fs.FileInfo, opts Options) Result {
	age := formatAge(s.now().Sub(fi.ModTime()))
	if opts.DryRun {
		s.log.Info().
			Str("path", path).
			Str("size", humanize.IBytes(uint64(fi.Size()))).
			Str("age", age).
			Msg("would delete (dry-run)")
		return Result{Files: 1, Bytes: fi.Size()}
	}
	if err := os.Remove(path); err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("could not delete")
		return Result{}
	}
	s.log.Info().
		Str("path", path).
		Str("size", humanize.IBytes(uint64(fi.Size()))).
		Str("age", age).
		Msg("deleted")
	return Result{Files: 1, Bytes: fi.Size()}
}

// removeEmptyDirs prunes directories left empty by a sweep, deepest first.
// Best effort throughout.
func (s *Sweeper) removeEmptyDirs(root string) {
	var dirs []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err == nil && d.IsDir() && path != root {
			dirs = append(dirs, path)
		}
		return nil
	})
	for i := len(dirs) - 1; i >= 0; i-- {
		entries, err := os.ReadDir(dirs[i])
		if err == nil && len(entries) == 0 {
			if err := os.Remove(dirs[i]); err == nil {
				s.log.Debug().Str("dir", dirs[i]).Msg("removed empty directory")
			}
		}
	}
}

// formatAge renders a file age the way the maintenance reports expect:
// hours below a day, days below a month, months beyond.
func formatAge(age time.Duration) string {
	days := age.Hours() / 24
	switch {
	case days < 1:
		return fmt.Sprintf("%.1f hours", age.Hours())
	case days < 30:
		return fmt.Sprintf("%.1f days", days)
	default:
		return fmt.Sprintf("%.1f months", days/30)
	}
}

// DaysToAge converts the --days flag into the duration the sweeps use.
func DaysToAge(days int) time.Duration {
	return time.Duration(days) * 24 * time.Hour
}
