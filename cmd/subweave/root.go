package main

import (
	"github.com/spf13/cobra"

	"github.com/subweave/subweave/internal/config"
	"github.com/subweave/subweave/internal/pipeline"
)

// commandContext loads configuration once and hands subcommands their
// pipeline. Every subcommand owns its flag variables; nothing mutable is
// shared between them.
type commandContext struct {
	cfg *config.Config

	// flag overrides applied over the environment
	color    string
	lang     string
	model    string
	subCache string
}

func (ctx *commandContext) ensureConfig() (*config.Config, error) {
	if ctx.cfg != nil {
		return ctx.cfg, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if ctx.color != "" {
		cfg.Color = ctx.color
	}
	if ctx.lang != "" {
		cfg.Lang = ctx.lang
	}
	if ctx.model != "" {
		cfg.WhisperModel = ctx.model
	}
	if ctx.subCache != "" {
		cfg.CachePath = ctx.subCache
	}
	ctx.cfg = cfg
	return cfg, nil
}

func (ctx *commandContext) pipeline() (*pipeline.Pipeline, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}
	return pipeline.New(cfg), nil
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	root := &cobra.Command{
		Use:           "subweave",
		Short:         "Compose multi-track subtitles: transcribe, translate, combine, mux",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&ctx.color, "color", "", "font color for the second stream of a combined track")
	flags.StringVar(&ctx.lang, "lang", "", "original language of the videos")
	flags.StringVar(&ctx.model, "model", "", "speech-to-text model")
	flags.StringVar(&ctx.subCache, "sub-cache", "", `translation cache db ("@/..." is relative to each video)`)

	root.AddCommand(
		newCombineCommand(ctx),
		newTranscribeCommand(ctx),
		newTranslateCommand(ctx),
		newTransSrtCommand(ctx),
		newAutoCommand(ctx),
		newWatchCommand(ctx),
	)
	return root
}
