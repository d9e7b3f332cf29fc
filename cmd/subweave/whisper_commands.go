package main

import (
	"github.com/spf13/cobra"

	"github.com/subweave/subweave/internal/pipeline"
	"github.com/subweave/subweave/internal/subtitle"
	"github.com/subweave/subweave/pkg/file"
)

func newTranscribeCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "transcribe <video>...",
		Short: "Transcribe videos to <video>.<lang>.srt",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.pipeline()
			if err != nil {
				return err
			}
			cfg := ctx.cfg
			for _, video := range args {
				out := output
				if out == "" {
					out = file.WithSuffix(video, "."+cfg.Lang+".srt")
				}
				if _, err := pipeline.Cached(out, false, func() ([]subtitle.Entry, error) {
					return p.Transcribe(video, false)
				}); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "override the output file")
	return cmd
}

func newTranslateCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "translate <video>...",
		Short: "Transcribe and translate videos with the speech-to-text engine to <video>.q<target>.srt",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.pipeline()
			if err != nil {
				return err
			}
			cfg := ctx.cfg
			for _, video := range args {
				out := output
				if out == "" {
					out = file.WithSuffix(video, ".q"+cfg.TargetLang+".srt")
				}
				if _, err := pipeline.Cached(out, false, func() ([]subtitle.Entry, error) {
					return p.Transcribe(video, true)
				}); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "override the output file")
	return cmd
}
