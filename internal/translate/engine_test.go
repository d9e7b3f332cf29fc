package translate

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subweave/subweave/internal/subtitle"
)

// fakeBackend upcases every fragment and counts calls.
type fakeBackend struct {
	budget    int
	calls     int
	fragments int
	fail      bool
	dropTag   int // -1 to disable
}

func newFakeBackend(budget int) *fakeBackend {
	return &fakeBackend{budget: budget, dropTag: -1}
}

func (b *fakeBackend) Name() string    { return "fake" }
func (b *fakeBackend) ByteBudget() int { return b.budget }
func (b *fakeBackend) Close() error    { return nil }

func (b *fakeBackend) TranslateBatch(_ context.Context, fragments []Fragment) (map[int]string, error) {
	b.calls++
	b.fragments += len(fragments)
	if b.fail {
		return nil, fmt.Errorf("backend down")
	}
	ret := make(map[int]string, len(fragments))
	for _, f := range fragments {
		if f.Tag == b.dropTag {
			continue
		}
		ret[f.Tag] = strings.ToUpper(f.Text)
	}
	return ret, nil
}

func textEntry(start time.Duration, lines ...string) subtitle.Entry {
	return subtitle.Entry{Start: start, End: start + time.Second, Content: lines}
}

func TestTranslateDeduplicates(t *testing.T) {
	backend := newFakeBackend(0)
	engine := NewEngine(backend)

	entries := []subtitle.Entry{
		textEntry(0, "hello world"),
		textEntry(time.Second, "something else"),
		textEntry(2*time.Second, "hello world"),
	}

	out, err := engine.Translate(context.Background(), entries)
	require.NoError(t, err)
	require.Len(t, out, 3)

	// one backend fragment for the duplicated text
	assert.Equal(t, 2, backend.fragments)
	assert.Equal(t, "HELLO WORLD", out[0].Text())
	assert.Equal(t, "HELLO WORLD", out[2].Text())
	assert.Equal(t, "SOMETHING ELSE", out[1].Text())

	// input untouched
	assert.Equal(t, "hello world", entries[0].Text())
}

func TestTranslateIgnoreSetPassesThrough(t *testing.T) {
	backend := newFakeBackend(0)
	engine := NewEngine(backend)

	out, err := engine.Translate(context.Background(), []subtitle.Entry{textEntry(0, ".")})
	require.NoError(t, err)

	assert.Equal(t, 0, backend.calls)
	assert.Equal(t, ".", out[0].Text())
}

func TestTranslateCacheRoundTrip(t *testing.T) {
	cache := NewMemoryCache()

	first := newFakeBackend(0)
	out1, err := NewEngine(first, WithCache(cache)).Translate(context.Background(),
		[]subtitle.Entry{textEntry(0, "hello world")})
	require.NoError(t, err)
	assert.Equal(t, 1, first.calls)

	// a second job sharing the cache issues zero backend calls
	second := newFakeBackend(0)
	out2, err := NewEngine(second, WithCache(cache)).Translate(context.Background(),
		[]subtitle.Entry{textEntry(0, "hello world")})
	require.NoError(t, err)
	assert.Equal(t, 0, second.calls)
	assert.Equal(t, out1[0].Text(), out2[0].Text())
}

func TestTranslateCollapsesNewlinesInKey(t *testing.T) {
	backend := newFakeBackend(0)
	engine := NewEngine(backend)

	entries := []subtitle.Entry{
		textEntry(0, "two", "lines"),
		textEntry(time.Second, "two lines"),
	}

	out, err := engine.Translate(context.Background(), entries)
	require.NoError(t, err)

	// both normalize to the same key
	assert.Equal(t, 1, backend.fragments)
	assert.Equal(t, "TWO LINES", out[0].Text())
	assert.Equal(t, "TWO LINES", out[1].Text())
}

func TestTranslateSpeakerSplit(t *testing.T) {
	backend := newFakeBackend(0)
	engine := NewEngine(backend, WithSpeakerSplit(true))

	out, err := engine.Translate(context.Background(),
		[]subtitle.Entry{textEntry(0, "hei.", "-mitä kuuluu?")})
	require.NoError(t, err)

	assert.Equal(t, 2, backend.fragments)
	assert.Equal(t, "HEI.  \n-MITÄ KUULUU?", out[0].Text())
}

func TestTranslateBatchesUnderBudget(t *testing.T) {
	backend := newFakeBackend(120)
	engine := NewEngine(backend)

	var entries []subtitle.Entry
	for i := 0; i < 12; i++ {
		entries = append(entries,
			textEntry(time.Duration(i)*time.Second, fmt.Sprintf("unique sentence number %d", i)))
	}

	out, err := engine.Translate(context.Background(), entries)
	require.NoError(t, err)
	require.Len(t, out, 12)
	assert.Greater(t, backend.calls, 1)
	assert.Equal(t, 12, backend.fragments)
}

func TestTranslateBackendFailureAborts(t *testing.T) {
	backend := newFakeBackend(0)
	backend.fail = true

	_, err := NewEngine(backend).Translate(context.Background(),
		[]subtitle.Entry{textEntry(0, "hello")})
	assert.Error(t, err)
}

func TestTranslateIncompleteMappingIsError(t *testing.T) {
	backend := newFakeBackend(0)
	backend.dropTag = 0

	_, err := NewEngine(backend).Translate(context.Background(),
		[]subtitle.Entry{textEntry(0, "hello")})
	assert.Error(t, err)
}
