package pipeline

import (
	"time"

	"github.com/subweave/subweave/internal/config"
	"github.com/subweave/subweave/internal/media"
	"github.com/subweave/subweave/internal/persistence"
	"github.com/subweave/subweave/internal/subtitle"
	"github.com/subweave/subweave/internal/translate"
	"github.com/subweave/subweave/pkg/file"
	"github.com/subweave/subweave/pkg/log"
)

// Pipeline wires the composition engine, the translation layer and the
// external media tools together for one configuration.
type Pipeline struct {
	cfg         *config.Config
	transcriber media.Transcriber
}

func New(cfg *config.Config) *Pipeline {
	return &Pipeline{
		cfg: cfg,
		transcriber: media.Transcriber{
			Model:         cfg.WhisperModel,
			Language:      cfg.Lang,
			Threads:       cfg.WhisperThreads,
			InitialPrompt: cfg.WhisperPrompt,
		},
	}
}

// Combine merges two streams into one track: the second stream is styled
// in the configured color and time-shifted by shift before merging, so at
// identical timestamps its entries land deterministically relative to the
// first stream's.
func (p *Pipeline) Combine(a, b []subtitle.Entry, shift time.Duration) []subtitle.Entry {
	return subtitle.Merge(a, subtitle.TimeShift(subtitle.Style(b, p.cfg.Color), shift))
}

// Engine builds a translation engine for the named backend, backed by the
// persistent cache store when one is configured. videoDir anchors an "@/"
// cache path. The returned close function releases the backend and store.
func (p *Pipeline) Engine(name string, videoDir string) (*translate.Engine, func(), error) {
	var opts []translate.EngineOption
	var store *persistence.Store

	if p.cfg.CachePath != "" {
		path := file.ResolveAlias(p.cfg.CachePath, map[string]string{"@": videoDir})
		s, err := persistence.Open(path)
		if err != nil {
			// degrade to the run-scoped memory cache
			log.Warn("cache store %s unavailable, translating without persistence: %v", path, err)
		} else if bucket, err := s.Bucket(name); err != nil {
			log.Warn("cache bucket %s unavailable, translating without persistence: %v", name, err)
			_ = s.Close()
		} else {
			store = s
			opts = append(opts, translate.WithCache(bucket))
		}
	}

	engine, backend, err := translate.NewEngineFor(name, p.cfg.BackendConfig(), opts...)
	if err != nil {
		if store != nil {
			_ = store.Close()
		}
		return nil, nil, err
	}

	closeAll := func() {
		if err := backend.Close(); err != nil {
			log.Warn("closing %s backend: %v", name, err)
		}
		if store != nil {
			_ = store.Close()
		}
	}
	return engine, closeAll, nil
}

// Transcribe runs the speech-to-text engine on video.
func (p *Pipeline) Transcribe(video string, translateTask bool) ([]subtitle.Entry, error) {
	return p.transcriber.Transcribe(video, translateTask)
}

// srtPath returns the video's sibling srt file for a given tag, e.g.
// tag "fi" for movie.mkv gives movie.fi.srt.
func srtPath(video, tag string) string {
	return file.WithSuffix(video, "."+tag+".srt")
}
