package cleanup

import "strings"

// removeLogs drops the logs directory and any stray *.log file anywhere
// under the tree. Application logging is reconfigured on every deploy, so
// nothing in here is worth keeping.
func (r *Runner) removeLogs() error {
	r.removeTree(r.cfg.Paths.LogsDir, "logs")
	r.sweepFiles(r.cfg.Paths.WorkDir, "logs", func(name string) bool {
		return strings.HasSuffix(name, ".log")
	})
	return nil
}
