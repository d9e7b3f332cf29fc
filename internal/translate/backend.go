package translate

import (
	"context"
	"time"
)

// Fragment is one tagged piece of text awaiting translation. The tag is the
// only link back to the originating entry once the text has been through a
// backend, so it must survive the round trip.
type Fragment struct {
	Tag  int
	Text string
}

// Backend translates a set of tagged fragments. Implementations return a
// complete tag-to-text mapping or an error for the whole batch, never a
// partial result. How many backend round trips a batch costs is the
// adapter's business: the pipe sends one fragment per exchange, the
// clipboard moves the whole serialized batch at once and the HTTP backend
// issues one request per fragment.
type Backend interface {
	// Name identifies the backend in the registry, cache store and logs.
	Name() string

	// ByteBudget is the maximum serialized batch size this backend
	// accepts. Zero means unbounded.
	ByteBudget() int

	TranslateBatch(ctx context.Context, fragments []Fragment) (map[int]string, error)

	// Close releases any long-lived resources (the pipe's child process).
	Close() error
}

// BackendConfig carries everything an adapter needs at construction time.
type BackendConfig struct {
	SourceLang string
	TargetLang string

	// PipeCommand is the argv of the line-oriented translator coprocess.
	// Source and target languages are appended as its final arguments.
	PipeCommand []string

	// AzureKey authorizes the HTTP backend. Sourced from AZURE_KEY.
	AzureKey      string
	AzureEndpoint string

	// ClipboardBudget overrides the serialized batch size limit for the
	// clipboard backend. Zero keeps the default.
	ClipboardBudget int
	// PollInterval overrides the clipboard wait loop interval.
	PollInterval time.Duration
}
