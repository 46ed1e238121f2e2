package cleanup

import (
	"os"

	"github.com/local/deployjanitor/internal/db"
	"github.com/local/deployjanitor/internal/metrics"
)

// compactDatabase vacuums db.sqlite3 when one exists at the project root.
// The deploy window is the one moment the database is guaranteed to have
// no other writers.
func (r *Runner) compactDatabase() error {
	path := r.cfg.Paths.Database

	var before int64
	if st, err := os.Stat(path); err == nil {
		before = st.Size()
	}

	vacuumed, err := db.Vacuum(path)
	if err != nil {
		return err
	}
	if !vacuumed {
		r.log.Info().Str("path", path).Msg("no database to compact")
		return nil
	}

	var after int64
	if st, err := os.Stat(path); err == nil {
		after = st.Size()
	}
	if before > after {
		metrics.AddBytesFreed(before - after)
	}
	r.log.Info().
		Str("path", path).
		Int64("bytes_before", before).
		Int64("bytes_after", after).
		Msg("database compacted")
	return nil
}
