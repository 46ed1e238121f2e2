package cleanup

import "strings"

// removeCaches clears interpreter bytecode caches and OS metadata files
// from the whole tree: __pycache__ directories, *.pyc/*.pyo files and
// .DS_Store droppings.
func (r *Runner) removeCaches() error {
	work := r.cfg.Paths.WorkDir

	r.sweepDirs(work, "__pycache__", "cache")
	r.sweepFiles(work, "cache", func(name string) bool {
		return strings.HasSuffix(name, ".pyc") || strings.HasSuffix(name, ".pyo")
	})
	r.sweepFiles(work, "os-metadata", func(name string) bool {
		return name == ".DS_Store"
	})
	return nil
}
