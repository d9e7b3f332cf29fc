package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/subweave/subweave/internal/fault"
	"github.com/subweave/subweave/internal/media"
	"github.com/subweave/subweave/internal/subtitle"
	"github.com/subweave/subweave/pkg/file"
	"github.com/subweave/subweave/pkg/log"
)

// AutoOptions selects what the auto job produces for a video.
type AutoOptions struct {
	Whisper          bool     // transcribe with the speech-to-text engine
	WhisperTranslate bool     // let the engine produce its own English track
	Backends         []string // translation backends to run on the transcript
	OrigBackends     []string // translation backends to run on the original track
	OrigTrack        string   // track selector for the original subtitles
	NoMux            bool     // stop before producing the .new.mkv
	Recombine        bool     // regenerate combined srt files and the .new.mkv
}

// Suffix letters for per-backend output files: uppercase for translations
// of the transcript, lowercase for translations of the original track.
var backendSuffix = map[string]string{
	"google": "g",
	"argos":  "r",
	"azure":  "z",
}

// translatedShift puts translated entries one millisecond before their
// source entries so the pair interleaves the same way in every player.
const translatedShift = -time.Millisecond

// Auto runs the full transcribe / translate / combine / mux chain for one
// video. Every intermediate srt is cached next to the video and reused on
// the next run.
func (p *Pipeline) Auto(ctx context.Context, video string, opts AutoOptions) error {
	if strings.HasSuffix(video, ".new.mkv") {
		log.Info("skipping already-processed video (mistaken glob?): %s", video)
		return nil
	}
	output := autoOutput(video)

	var tracks []media.SubtitleTrack
	var subsWhisper, subsWhisperT []subtitle.Entry
	var err error

	if opts.Whisper {
		subsWhisper, err = Cached(srtPath(video, p.cfg.Lang), false, func() ([]subtitle.Entry, error) {
			return p.Transcribe(video, false)
		})
		if err != nil {
			return err
		}
		tracks = append(tracks, media.SubtitleTrack{
			Language: p.cfg.Lang,
			Name:     "Whisper " + p.cfg.Lang,
			Path:     srtPath(video, p.cfg.Lang),
		})
	}

	if opts.WhisperTranslate {
		subsWhisperT, err = Cached(srtPath(video, "q"+p.cfg.TargetLang), false, func() ([]subtitle.Entry, error) {
			return p.Transcribe(video, true)
		})
		if err != nil {
			return err
		}
		tracks = append(tracks, media.SubtitleTrack{
			Language: p.cfg.TargetLang,
			Name:     "Whisper " + p.cfg.TargetLang,
			Path:     srtPath(video, "q"+p.cfg.TargetLang),
		})
	}

	if opts.Whisper && opts.WhisperTranslate {
		mulPath := srtPath(video, "mul")
		if _, err := Cached(mulPath, opts.Recombine, func() ([]subtitle.Entry, error) {
			return p.Combine(subsWhisper, subsWhisperT, translatedShift), nil
		}); err != nil {
			return err
		}
		tracks = append(tracks, media.SubtitleTrack{
			Language: "mul",
			Name:     fmt.Sprintf("Whisper %s+%s", p.cfg.TargetLang, p.cfg.Lang),
			Path:     mulPath,
		})
	}

	// translations of the transcript
	if len(opts.Backends) > 0 && !opts.Whisper {
		return fault.New(fault.KindConfig,
			"translating the transcript requires transcription (enable whisper)")
	}
	for _, name := range opts.Backends {
		track, err := p.translateAndCombine(ctx, video, name, subsWhisper,
			strings.ToUpper(suffixFor(name)), opts.Recombine,
			fmt.Sprintf("Whisper %s + %s(whisper-%s)", p.cfg.Lang, name, p.cfg.Lang))
		if err != nil {
			return err
		}
		tracks = append(tracks, track)
	}

	// translations of the original subtitle track
	if len(opts.OrigBackends) > 0 {
		if opts.OrigTrack == "" {
			return fault.New(fault.KindConfig,
				"translating the original subtitles requires a track selector")
		}
		sel, err := media.ParseTrackSelector(opts.OrigTrack)
		if err != nil {
			return err
		}
		subsOrig, err := media.ExtractTrack(video, sel)
		if err != nil {
			return err
		}
		for _, name := range opts.OrigBackends {
			track, err := p.translateAndCombine(ctx, video, name, subsOrig,
				suffixFor(name), opts.Recombine,
				fmt.Sprintf("orig + %s(orig)", name))
			if err != nil {
				return err
			}
			tracks = append(tracks, track)
		}
	}

	if opts.NoMux {
		return nil
	}
	if !opts.Recombine && file.Exists(output) {
		log.Info("already exists: %s", output)
		return nil
	}
	return media.Mux(video, tracks, output)
}

// translateAndCombine produces the translated srt (suffix "qeX") and the
// combined source+translation srt (suffix "muX") for one backend, and
// returns the combined file's mux track.
func (p *Pipeline) translateAndCombine(
	ctx context.Context,
	video string,
	backend string,
	source []subtitle.Entry,
	suffix string,
	recombine bool,
	trackName string,
) (media.SubtitleTrack, error) {
	translatedPath := srtPath(video, "qe"+suffix)
	combinedPath := srtPath(video, "mu"+suffix)

	translated, err := Cached(translatedPath, false, func() ([]subtitle.Entry, error) {
		engine, closeAll, err := p.Engine(backend, filepath.Dir(video))
		if err != nil {
			return nil, err
		}
		defer closeAll()
		return engine.Translate(ctx, source)
	})
	if err != nil {
		return media.SubtitleTrack{}, err
	}

	if _, err := Cached(combinedPath, recombine, func() ([]subtitle.Entry, error) {
		return p.Combine(subtitle.CollapseNewlines(source), translated, translatedShift), nil
	}); err != nil {
		return media.SubtitleTrack{}, err
	}

	return media.SubtitleTrack{Language: "mul", Name: trackName, Path: combinedPath}, nil
}

func suffixFor(name string) string {
	if s, ok := backendSuffix[name]; ok {
		return s
	}
	// unknown backends fail later in the registry; any letter will do here
	return "x"
}

func autoOutput(video string) string {
	if strings.HasSuffix(video, ".orig.mkv") {
		return strings.TrimSuffix(video, ".orig.mkv") + ".new.mkv"
	}
	return file.WithSuffix(video, ".new.mkv")
}
