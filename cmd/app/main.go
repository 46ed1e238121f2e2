package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/local/deployjanitor/internal/cleanup"
	cfgpkg "github.com/local/deployjanitor/internal/config"
	logpkg "github.com/local/deployjanitor/internal/logger"
	"github.com/local/deployjanitor/internal/metrics"
	"github.com/local/deployjanitor/internal/retention"
)

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "deployjanitor",
		Short: "Deploy-time filesystem janitor for the Excel web application",
		Long: `Runs the fixed pre-restart cleanup checklist against the current
directory: removes conflicting framework artifacts, clears logs and
caches, prunes stale uploads, compacts db.sqlite3, recreates required
directories and markers, and reports disk usage. Every step is best
effort and the command always exits 0 so a deploy is never blocked.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runChecklist()
		},
	}
	root.AddCommand(newPruneCmd())

	// Usage errors (unknown flags or subcommands) still exit non-zero;
	// the checklist itself never fails.
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runChecklist() {
	cfg := cfgpkg.FromEnv()

	_ = logpkg.Init(loggerOptions(cfg))
	defer logpkg.Close()
	metrics.Init()

	log := logpkg.Get().With().Str("run_id", uuid.NewString()).Logger()
	log.Info().Str("work_dir", cfg.Paths.WorkDir).Msg("starting deploy cleanup")

	start := time.Now()
	cleanup.New(cfg, log).Run()
	metrics.ObserveRunDuration(time.Since(start))

	if err := metrics.Push(cfg.Metrics.PushgatewayURL, cfg.Metrics.JobName); err != nil {
		log.Warn().Err(err).Msg("metrics push failed")
	}

	log.Info().Dur("elapsed", time.Since(start)).Msg("deploy cleanup complete")
}

func newPruneCmd() *cobra.Command {
	var (
		days   int
		dryRun bool
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Age-based sweep of media and temp directories",
		Long: `Recursively deletes files older than --days from media/uploads,
media/outputs and temp, prunes rotated logs under logs/, and removes
directories left empty. Critical files (.gitkeep, README.md,
__init__.py) are always kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cfgpkg.FromEnv()

			_ = logpkg.Init(loggerOptions(cfg))
			defer logpkg.Close()

			log := logpkg.Get().With().Str("run_id", uuid.NewString()).Logger()
			if dryRun {
				log.Info().Msg("dry-run: nothing will be deleted")
			}

			sw := retention.New(log)
			opts := retention.Options{
				MaxAge: retention.DaysToAge(days),
				DryRun: dryRun,
				Force:  force,
			}

			var total retention.Result
			for _, root := range []string{cfg.Paths.UploadsDir, cfg.Paths.OutputsDir, cfg.Paths.TempDir} {
				res, err := sw.SweepDirectory(root, opts)
				if err != nil {
					return err
				}
				total.Files += res.Files
				total.Bytes += res.Bytes
			}

			res, err := sw.SweepRotatedLogs(cfg.Paths.LogsDir, opts)
			if err != nil {
				return err
			}
			total.Files += res.Files
			total.Bytes += res.Bytes

			fmt.Printf("Prune complete: %d files, %s freed\n",
				total.Files, humanize.IBytes(uint64(total.Bytes)))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 2, "delete files older than this many days")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would be deleted without deleting")
	cmd.Flags().BoolVar(&force, "force", false, "also delete files larger than 10MB")
	return cmd
}

func loggerOptions(cfg cfgpkg.Config) logpkg.Options {
	return logpkg.Options{
		Level:        cfg.Logging.Level,
		Pretty:       cfg.Logging.Pretty,
		File:         cfg.Logging.File,
		MaxSizeMB:    cfg.Logging.MaxSizeMB,
		MaxBackups:   cfg.Logging.MaxBackups,
		MaxAgeDays:   cfg.Logging.MaxAgeDays,
		Compress:     cfg.Logging.Compress,
		SendToAxiom:  cfg.Axiom.Send && cfg.Axiom.APIKey != "",
		AxiomAPIKey:  cfg.Axiom.APIKey,
		AxiomOrgID:   cfg.Axiom.OrgID,
		AxiomDataset: cfg.Axiom.Dataset,
		AxiomFlush:   cfg.Axiom.FlushInterval,
	}
}
