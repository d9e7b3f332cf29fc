package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/subweave/subweave/internal/pipeline"
	"github.com/subweave/subweave/internal/subtitle"
)

func newCombineCommand(ctx *commandContext) *cobra.Command {
	var shiftMs int

	cmd := &cobra.Command{
		Use:   "combine <subs1> <subs2> <out.srt>",
		Short: "Merge two subtitle streams into one track, coloring the second",
		Long: "Merge two subtitle streams into one time-ordered, renumbered track.\n" +
			"The second stream is wrapped in the configured color. Inputs may be\n" +
			".srt files, media files (first subtitle track), or media files with a\n" +
			":lang:N track selector suffix.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.pipeline()
			if err != nil {
				return err
			}

			subs1, err := pipeline.ReadSubs(args[0])
			if err != nil {
				return err
			}
			subs2, err := pipeline.ReadSubs(args[1])
			if err != nil {
				return err
			}

			merged := p.Combine(subs1, subs2, time.Duration(shiftMs)*time.Millisecond)
			return subtitle.WriteFile(args[2], merged)
		},
	}

	cmd.Flags().IntVar(&shiftMs, "shift-ms", 0,
		"shift the second stream by this many milliseconds before merging")
	return cmd
}
