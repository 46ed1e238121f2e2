package cleanup

import "path/filepath"

// Leftovers from older deploy configurations that shadow the current WSGI
// entry point when present at the project root.
var conflictFiles = []string{"app.py", "wsgi.py", "start.sh"}

func (r *Runner) removeConflicts() error {
	for _, name := range conflictFiles {
		r.removeFile(filepath.Join(r.cfg.Paths.WorkDir, name), "conflict")
	}
	return nil
}
