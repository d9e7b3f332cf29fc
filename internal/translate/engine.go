package translate

import (
	"context"
	"strings"

	"github.com/subweave/subweave/internal/fault"
	"github.com/subweave/subweave/internal/subtitle"
	"github.com/subweave/subweave/pkg/log"
)

// DefaultIgnore lists texts that are never worth a backend call. They pass
// through untranslated and are never cached.
var DefaultIgnore = map[string]bool{".": true}

// Engine drives one backend through the dedup / ignore / segment / batch
// steps and distributes results back onto the entries and into the cache.
type Engine struct {
	backend       Backend
	cache         Cache
	ignore        map[string]bool
	splitSpeakers bool
}

type EngineOption func(*Engine)

// WithCache replaces the default run-scoped memory cache, typically with a
// persistent store bucket.
func WithCache(cache Cache) EngineOption {
	return func(e *Engine) { e.cache = cache }
}

// WithIgnore replaces the default ignore set.
func WithIgnore(ignore map[string]bool) EngineOption {
	return func(e *Engine) { e.ignore = ignore }
}

// WithSpeakerSplit makes the engine translate each speaker-attributed span
// of an entry independently and rejoin the results.
func WithSpeakerSplit(enabled bool) EngineOption {
	return func(e *Engine) { e.splitSpeakers = enabled }
}

func NewEngine(backend Backend, opts ...EngineOption) *Engine {
	e := &Engine{
		backend: backend,
		cache:   NewMemoryCache(),
		ignore:  DefaultIgnore,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// pending links an outstanding fragment back to its representative entry
// and segment slot.
type pending struct {
	entry   int
	segment int
	key     string
}

// Translate returns a translated copy of entries, same length and order.
// Each distinct normalized text is translated once; ignore-set entries pass
// through untouched; everything already in the cache costs no backend call.
func (e *Engine) Translate(ctx context.Context, entries []subtitle.Entry) ([]subtitle.Entry, error) {
	result := subtitle.CloneAll(entries)

	// Dedup: the first occurrence of each normalized text is the
	// representative, later ones just copy its result at the end.
	keys := make([]string, len(result))
	repOf := make(map[string]int, len(result))
	var reps []int
	for i := range result {
		key := normalize(result[i].Text())
		keys[i] = key
		if key == "" || e.ignore[key] {
			continue
		}
		if _, seen := repOf[key]; !seen {
			repOf[key] = i
			reps = append(reps, i)
		}
	}

	// Segment the representatives and collect cache misses as fragments.
	segments := make(map[int][]Segment, len(reps))
	translated := make(map[int][]string, len(reps))
	var fragments []Fragment
	var pendings []pending
	for _, i := range reps {
		var segs []Segment
		if e.splitSpeakers {
			segs = SplitSpeakers(result[i].Text())
		} else {
			segs = []Segment{{Text: keys[i]}}
		}
		segments[i] = segs
		translated[i] = make([]string, len(segs))
		for j, seg := range segs {
			key := normalize(seg.Text)
			if cached, ok := e.cache.Get(key); ok {
				translated[i][j] = cached
				continue
			}
			tag := len(pendings)
			fragments = append(fragments, Fragment{Tag: tag, Text: key})
			pendings = append(pendings, pending{entry: i, segment: j, key: key})
		}
	}

	if len(fragments) > 0 {
		log.Info("translating %d fragments via %s (%d entries, %d unique)",
			len(fragments), e.backend.Name(), len(entries), len(reps))

		batches, err := MakeBatches(fragments, e.backend.ByteBudget())
		if err != nil {
			return nil, err
		}
		for _, batch := range batches {
			mapping, err := e.backend.TranslateBatch(ctx, batch)
			if err != nil {
				return nil, err
			}
			for _, f := range batch {
				text, ok := mapping[f.Tag]
				if !ok {
					return nil, fault.Newf(fault.KindTransport,
						"backend %s returned no result for fragment %d", e.backend.Name(), f.Tag)
				}
				p := pendings[f.Tag]
				translated[p.entry][p.segment] = text
				e.cache.Put(p.key, text)
			}
		}
	}

	// Distribute: representatives first, duplicates from the cache last.
	final := make(map[string]string, len(reps))
	for _, i := range reps {
		text := JoinSegments(segments[i], translated[i])
		result[i].SetText(text)
		final[keys[i]] = text
	}
	for i := range result {
		key := keys[i]
		if key == "" || e.ignore[key] {
			continue
		}
		if repOf[key] != i {
			result[i].SetText(final[key])
		}
	}

	return result, nil
}

// normalize collapses embedded newlines to spaces and trims: the canonical
// cache-key form of a text.
func normalize(text string) string {
	return strings.TrimSpace(strings.Join(strings.Fields(text), " "))
}
