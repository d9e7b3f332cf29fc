package subtitle

import (
	"strings"
	"time"
)

// Entry is a single timed caption.
type Entry struct {
	Index   int           // sequence index, assigned by Merge
	Start   time.Duration // start time since zero
	End     time.Duration // end time since zero
	Content []string      // text lines, in display order
}

// Text returns the content joined with newlines, the way it appears in an
// SRT block.
func (e Entry) Text() string {
	return strings.Join(e.Content, "\n")
}

// SetText replaces the content with the lines of text.
func (e *Entry) SetText(text string) {
	if text == "" {
		e.Content = nil
		return
	}
	e.Content = strings.Split(text, "\n")
}

// Clone returns a deep copy of the entry.
func (e Entry) Clone() Entry {
	dup := e
	dup.Content = append([]string(nil), e.Content...)
	return dup
}

// CloneAll deep-copies a whole sequence.
func CloneAll(entries []Entry) []Entry {
	ret := make([]Entry, len(entries))
	for i, e := range entries {
		ret[i] = e.Clone()
	}
	return ret
}
