package main

import (
	"github.com/spf13/cobra"

	"github.com/subweave/subweave/internal/pipeline"
)

// autoOptions is this subcommand's own flag state. Other subcommands have
// their own structs; nothing here leaks into them.
type autoOptions struct {
	whisper       bool
	whisperTrans  bool
	argos         bool
	google        bool
	azure         bool
	argosWhisper  bool
	googleWhisper bool
	azureWhisper  bool
	sidOriginal   string
	noNewMkv      bool
	reCombine     bool
}

func (o autoOptions) pipelineOptions() pipeline.AutoOptions {
	opts := pipeline.AutoOptions{
		Whisper:          o.whisper,
		WhisperTranslate: o.whisperTrans,
		OrigTrack:        o.sidOriginal,
		NoMux:            o.noNewMkv,
		Recombine:        o.reCombine,
	}
	add := func(dst []string, name string, enabled bool) []string {
		if enabled {
			return append(dst, name)
		}
		return dst
	}
	opts.Backends = add(opts.Backends, "argos", o.argosWhisper)
	opts.Backends = add(opts.Backends, "google", o.googleWhisper)
	opts.Backends = add(opts.Backends, "azure", o.azureWhisper)
	opts.OrigBackends = add(opts.OrigBackends, "argos", o.argos)
	opts.OrigBackends = add(opts.OrigBackends, "google", o.google)
	opts.OrigBackends = add(opts.OrigBackends, "azure", o.azure)
	return opts
}

func newAutoCommand(ctx *commandContext) *cobra.Command {
	var opts autoOptions

	cmd := &cobra.Command{
		Use:   "auto <video>...",
		Short: "Transcribe, translate and combine subtitles, then mux a .new.mkv",
		Long: "Run the whole chain for each video: transcribe and/or translate with\n" +
			"the speech-to-text engine, translate through the selected backends,\n" +
			"combine streams into multi-language tracks, and mux everything into\n" +
			"<video>.new.mkv. Every intermediate srt next to the video is reused\n" +
			"if it already exists.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.pipeline()
			if err != nil {
				return err
			}
			// a fatal error aborts the remaining queue; finished files stay
			for _, video := range args {
				if err := p.Auto(cmd.Context(), video, opts.pipelineOptions()); err != nil {
					return err
				}
			}
			return nil
		},
	}

	addAutoFlags(cmd, &opts)
	return cmd
}

// addAutoFlags registers the auto flag set on cmd. The watch subcommand
// shares it so a sweep accepts the same switches as a one-shot run.
func addAutoFlags(cmd *cobra.Command, opts *autoOptions) {
	flags := cmd.Flags()
	flags.BoolVarP(&opts.whisper, "whisper", "w", false, "transcribe with the speech-to-text engine")
	flags.BoolVarP(&opts.whisperTrans, "whisper-trans", "W", false, "translate with the speech-to-text engine")
	flags.BoolVarP(&opts.argos, "argos", "r", false, "argos-translate the original subtitles (set --sid-original)")
	flags.BoolVarP(&opts.google, "google", "g", false, "google-translate the original subtitles via the clipboard (set --sid-original)")
	flags.BoolVarP(&opts.azure, "azure", "z", false, "azure-translate the original subtitles, requires AZURE_KEY (set --sid-original)")
	flags.BoolVarP(&opts.argosWhisper, "argos-whisper", "R", false, "argos-translate the transcript")
	flags.BoolVarP(&opts.googleWhisper, "google-whisper", "G", false, "google-translate the transcript via the clipboard")
	flags.BoolVarP(&opts.azureWhisper, "azure-whisper", "Z", false, "azure-translate the transcript, requires AZURE_KEY")
	flags.StringVar(&opts.sidOriginal, "sid-original", "",
		`original subtitle track: "N" or "lang:N", negative N counts from the end`)
	flags.BoolVar(&opts.noNewMkv, "no-new-mkv", false, "stop before muxing the .new.mkv")
	flags.BoolVar(&opts.reCombine, "re-combine", false, "regenerate combined srt files and the .new.mkv even if they exist")
}
