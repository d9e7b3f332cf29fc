package translate

import (
	"sort"

	"github.com/subweave/subweave/internal/fault"
)

// variant is one registered backend: its constructor plus the translation
// path options that go with it. The speaker-splitting path belongs to the
// pipe backend, which translates dialogue spans independently.
type variant struct {
	build         func(BackendConfig) (Backend, error)
	splitSpeakers bool
}

var registry = map[string]variant{
	"argos":  {build: func(cfg BackendConfig) (Backend, error) { return NewPipeBackend(cfg) }, splitSpeakers: true},
	"google": {build: func(cfg BackendConfig) (Backend, error) { return NewClipboardBackend(cfg) }},
	"azure":  {build: func(cfg BackendConfig) (Backend, error) { return NewAzureBackend(cfg) }},
}

// Names lists the registered backend identifiers, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewEngineFor constructs the named backend wrapped in an engine configured
// for that backend's translation path. Close the backend via the returned
// Backend when the job is done.
func NewEngineFor(name string, cfg BackendConfig, opts ...EngineOption) (*Engine, Backend, error) {
	v, ok := registry[name]
	if !ok {
		return nil, nil, fault.Newf(fault.KindConfig, "unknown translation backend %q (have %v)", name, Names())
	}
	backend, err := v.build(cfg)
	if err != nil {
		return nil, nil, err
	}
	opts = append([]EngineOption{WithSpeakerSplit(v.splitSpeakers)}, opts...)
	return NewEngine(backend, opts...), backend, nil
}
