package translate

import (
	"context"
	"time"

	"github.com/atotto/clipboard"

	"github.com/subweave/subweave/internal/fault"
	"github.com/subweave/subweave/pkg/log"
)

// ClipboardBackend moves batches through the OS clipboard with a human in
// the loop: the serialized batch is placed on the clipboard, the user
// pastes it into a web translator and copies the output back, and the
// adapter polls until the clipboard content differs from what it placed
// there. A parse failure re-enters the wait loop rather than aborting, so
// the human can simply re-copy. The loop has no timeout and only ends on
// success or context cancellation.
type ClipboardBackend struct {
	sourceLang   string
	targetLang   string
	budget       int
	pollInterval time.Duration

	// injectable for tests
	readAll  func() (string, error)
	writeAll func(string) error
}

func NewClipboardBackend(cfg BackendConfig) (*ClipboardBackend, error) {
	budget := cfg.ClipboardBudget
	if budget <= 0 {
		budget = DefaultByteBudget
	}
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = time.Second
	}
	return &ClipboardBackend{
		sourceLang:   cfg.SourceLang,
		targetLang:   cfg.TargetLang,
		budget:       budget,
		pollInterval: interval,
		readAll:      clipboard.ReadAll,
		writeAll:     clipboard.WriteAll,
	}, nil
}

func (b *ClipboardBackend) Name() string { return "google" }

func (b *ClipboardBackend) ByteBudget() int { return b.budget }

func (b *ClipboardBackend) TranslateBatch(ctx context.Context, fragments []Fragment) (map[int]string, error) {
	if len(fragments) == 0 {
		return map[int]string{}, nil
	}
	payload := SerializeBatch(fragments)

	for {
		if err := b.writeAll(payload); err != nil {
			return nil, err
		}
		log.Info("copied %d bytes to the clipboard; paste into the translator (%s→%s) and copy the result",
			len(payload), b.sourceLang, b.targetLang)

		content, err := b.waitForChange(ctx, payload)
		if err != nil {
			return nil, err
		}

		mapping, err := ParseBatch(content)
		if err == nil {
			err = verifyComplete(mapping, fragments)
		}
		if err != nil {
			log.Warn("failed to parse clipboard content, try copying again: %v", err)
			continue
		}
		return mapping, nil
	}
}

// waitForChange polls the clipboard at a fixed interval until its content
// differs from what we placed there.
func (b *ClipboardBackend) waitForChange(ctx context.Context, placed string) (string, error) {
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(b.pollInterval):
		}
		log.Info("waiting for the translated text to be copied...")
		content, err := b.readAll()
		if err != nil {
			return "", err
		}
		if content != placed {
			return content, nil
		}
	}
}

// verifyComplete checks that every sent fragment came back: a caller sees
// either the whole batch or a retry, never a partial mapping.
func verifyComplete(mapping map[int]string, fragments []Fragment) error {
	for _, f := range fragments {
		if _, ok := mapping[f.Tag]; !ok {
			return errMissingTag(f.Tag)
		}
	}
	return nil
}

func errMissingTag(tag int) error {
	return fault.Newf(fault.KindParse, "no line for fragment %d in pasted text", tag)
}

func (b *ClipboardBackend) Close() error { return nil }
