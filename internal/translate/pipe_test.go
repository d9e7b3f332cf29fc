package translate

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subweave/subweave/internal/fault"
)

// cat echoes each JSON-encoded request line straight back, which makes it a
// perfect identity translator for exercising the FIFO exchange.
func newCatBackend(t *testing.T) *PipeBackend {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("needs a line-echoing coprocess")
	}
	b, err := NewPipeBackend(BackendConfig{
		// the appended language arguments land in $0/$1, cat reads stdin
		PipeCommand: []string{"sh", "-c", "cat"},
		SourceLang:  "fi",
		TargetLang:  "en",
	})
	require.NoError(t, err)
	return b
}

func TestPipeExchange(t *testing.T) {
	b := newCatBackend(t)
	defer b.Close()

	fragments := []Fragment{
		{0, "Hei"},
		{1, `text with "quotes" and — dashes`},
		{2, "Mitä kuuluu?"},
	}

	mapping, err := b.TranslateBatch(context.Background(), fragments)
	require.NoError(t, err)
	for _, f := range fragments {
		assert.Equal(t, f.Text, mapping[f.Tag])
	}
}

func TestPipeRequiresCommand(t *testing.T) {
	_, err := NewPipeBackend(BackendConfig{})
	require.Error(t, err)
	assert.True(t, fault.IsConfig(err))
}

func TestPipeBrokenProcessIsFatal(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs /bin/true")
	}
	b, err := NewPipeBackend(BackendConfig{PipeCommand: []string{"true"}})
	require.NoError(t, err)
	defer b.Close()

	_, err = b.TranslateBatch(context.Background(), []Fragment{{0, "Hei"}})
	require.Error(t, err)
	assert.True(t, fault.IsTransport(err))
}
