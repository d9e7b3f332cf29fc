package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Compose renders entries back into SRT text. Players and our own reader
// both consume this, so the block shape is always exactly
// index / timestamps / text / blank.
func Compose(entries []Entry) string {
	var b strings.Builder
	_ = Write(&b, entries)
	return b.String()
}

// Write streams entries as SRT blocks to w.
func Write(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%d\n%s --> %s\n%s\n\n",
			e.Index,
			FormatDuration(e.Start),
			FormatDuration(e.End),
			e.Text()); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes entries as an SRT file at path.
func WriteFile(path string, entries []Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := Write(w, entries); err != nil {
		return fmt.Errorf("failed to write subtitle file: %w", err)
	}
	return w.Flush()
}

// FormatDuration formats a duration in the SRT timestamp shape
// HH:MM:SS,mmm. Negative durations clamp to zero: a time-shifted entry
// can land before the stream start, and SRT has no representation for
// that (nor would our reader accept one).
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}
