package cleanup

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/local/deployjanitor/internal/config"
	"github.com/local/deployjanitor/internal/metrics"
)

// Runner executes the fixed deploy-cleanup checklist against the
// deployment tree described by the config. Steps run strictly in order
// and are best effort: a failed step is logged and counted but never
// stops the steps after it.
type Runner struct {
	cfg config.Config
	log zerolog.Logger
	now func() time.Time
}

func New(cfg config.Config, log zerolog.Logger) *Runner {
	return &Runner{cfg: cfg, log: log, now: time.Now}
}

type step struct {
	name string
	fn   func() error
}

// Run executes every cleanup step in order and always completes.
func (r *Runner) Run() {
	steps := []step{
		{"conflicts", r.removeConflicts},
		{"logs", r.removeLogs},
		{"caches", r.removeCaches},
		{"uploads", r.pruneUploads},
		{"database", r.compactDatabase},
		{"directories", r.ensureDirectories},
		{"markers", r.ensureMarkers},
		{"report", r.reportDiskUsage},
	}

	for _, s := range steps {
		r.log.Info().Str("step", s.name).Msg("step start")
		if err := s.fn(); err != nil {
			metrics.IncStepFailure(s.name)
			r.log.Warn().Err(err).Str("step", s.name).Msg("step failed, continuing")
		}
	}

	r.log.Info().Msg("cleanup checklist finished")
}
