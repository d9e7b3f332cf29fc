package main

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/singleflight"

	"github.com/subweave/subweave/internal/pipeline"
	"github.com/subweave/subweave/pkg/file"
	"github.com/subweave/subweave/pkg/log"
	"github.com/subweave/subweave/pkg/schedule"
)

// autoRunner is what a sweep needs from the pipeline.
type autoRunner interface {
	Auto(ctx context.Context, video string, opts pipeline.AutoOptions) error
}

type watchOptions struct {
	auto     autoOptions
	cronExpr string
	runNow   bool
}

var videoExts = []string{".mkv", ".mp4", ".avi", ".m4v"}

func newWatchCommand(ctx *commandContext) *cobra.Command {
	var opts watchOptions

	cmd := &cobra.Command{
		Use:   "watch <dir>...",
		Short: "Run auto over directories on a cron schedule",
		Long: "Scan the given directories for video files on every cron tick and\n" +
			"run the auto chain on each. Videos whose outputs already exist are\n" +
			"skipped, so repeated sweeps only pick up new arrivals.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.pipeline()
			if err != nil {
				return err
			}
			expr := opts.cronExpr
			if expr == "" {
				expr = ctx.cfg.CronExpr
			}
			info, err := schedule.Describe(expr, time.Now())
			if err != nil {
				return err
			}

			// Overlapping fires collapse into one running sweep.
			var group singleflight.Group
			sweep := func() {
				_, _, _ = group.Do("sweep", func() (any, error) {
					for _, dir := range args {
						log.Info("Sweeping %s", dir)
						if err := sweepDir(cmd, p, dir, opts.auto); err != nil {
							log.Error("Sweep of %s failed: %v", dir, err)
						}
					}
					return nil, nil
				})
			}

			c := cron.New()
			if _, err := c.AddFunc(expr, sweep); err != nil {
				return err
			}
			if opts.runNow {
				sweep()
			}
			log.Info("Watching %d directories, schedule %q, next sweep at %s",
				len(args), expr, info.Next.Format(time.RFC3339))
			c.Start()
			<-cmd.Context().Done()
			<-c.Stop().Done()
			return cmd.Context().Err()
		},
	}

	addAutoFlags(cmd, &opts.auto)
	cmd.Flags().StringVar(&opts.cronExpr, "cron", "", "cron schedule (default from CRON_EXPR)")
	cmd.Flags().BoolVar(&opts.runNow, "run-now", false, "run one sweep immediately, then follow the schedule")
	return cmd
}

// sweepDir runs the auto chain over every video found under dir. One
// failing video ends the sweep; what finished stays on disk.
func sweepDir(cmd *cobra.Command, p autoRunner, dir string, opts autoOptions) error {
	videos, err := file.FindByExt(dir, videoExts...)
	if err != nil {
		return err
	}
	log.Info("Found %d videos in %s", len(videos), dir)
	for _, video := range videos {
		if err := p.Auto(cmd.Context(), video, opts.pipelineOptions()); err != nil {
			return err
		}
	}
	return nil
}
