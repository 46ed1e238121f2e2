package cleanup

import (
	"github.com/dustin/go-humanize"
	"golang.org/x/sys/unix"
)

// reportDiskUsage logs how much the deployment tree occupies and how much
// space is left on its filesystem. Either line degrades to a fallback
// message on error; the report never fails the run.
func (r *Runner) reportDiskUsage() error {
	work := r.cfg.Paths.WorkDir

	r.log.Info().
		Str("dir", work).
		Str("used", humanize.IBytes(uint64(treeSize(work)))).
		Msg("deployment tree usage")

	var st unix.Statfs_t
	if err := unix.Statfs(work, &st); err != nil {
		r.log.Info().Msg("filesystem stats unavailable")
		return nil
	}

	bsize := uint64(st.Bsize)
	total := st.Blocks * bsize
	free := st.Bavail * bsize
	r.log.Info().
		Str("total", humanize.IBytes(total)).
		Str("free", humanize.IBytes(free)).
		Str("in_use", humanize.IBytes(total-free)).
		Msg("filesystem space")
	return nil
}
