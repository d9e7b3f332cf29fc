package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/subweave/subweave/internal/pipeline"
	"github.com/subweave/subweave/internal/subtitle"
	"github.com/subweave/subweave/internal/translate"
	"github.com/subweave/subweave/pkg/log"
)

func newTransSrtCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trans-srt <backend> <subs> <out.srt>",
		Short: fmt.Sprintf("Translate a subtitle stream through a backend (%s)", strings.Join(translate.Names(), ", ")),
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, input, output := args[0], args[1], args[2]

			p, err := ctx.pipeline()
			if err != nil {
				return err
			}
			subs, err := pipeline.ReadSubs(input)
			if err != nil {
				return err
			}
			if detected := subtitle.DetectLanguage(subs); detected != language.Und &&
				detected.String() != ctx.cfg.Lang {
				log.Warn("Subtitles look like %q but the source language is %q",
					detected, ctx.cfg.Lang)
			}

			engine, closeAll, err := p.Engine(backend, filepath.Dir(input))
			if err != nil {
				return err
			}
			defer closeAll()

			translated, err := engine.Translate(cmd.Context(), subs)
			if err != nil {
				return err
			}
			return subtitle.WriteFile(output, translated)
		},
	}
	return cmd
}
