package translate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/subweave/subweave/internal/fault"
)

// TagDelimiter separates the fragment tag from its text in serialized
// batches. An em dash is vanishingly rare in subtitle text, so splitting on
// its first occurrence recovers the tag even after backend-side rewording.
const TagDelimiter = "—"

// DefaultByteBudget bounds the serialized clipboard batch. Web translators
// truncate somewhere above this.
const DefaultByteBudget = 4990

// EncodeFragment serializes one fragment as "<tag>— <text>".
func EncodeFragment(f Fragment) string {
	return fmt.Sprintf("%d%s %s", f.Tag, TagDelimiter, f.Text)
}

// SerializeBatch joins encoded fragments with newlines, the exact form
// placed on the clipboard.
func SerializeBatch(fragments []Fragment) string {
	lines := make([]string, len(fragments))
	for i, f := range fragments {
		lines[i] = EncodeFragment(f)
	}
	return strings.Join(lines, "\n")
}

// MakeBatches partitions fragments into groups whose serialized form stays
// strictly under budget bytes. Fragments keep their order and each appears
// in exactly one batch. A budget of zero means a single unbounded batch.
// A lone fragment whose encoded line already reaches the budget cannot be
// sent at all and is a configuration error.
func MakeBatches(fragments []Fragment, budget int) ([][]Fragment, error) {
	if len(fragments) == 0 {
		return nil, nil
	}
	if budget <= 0 {
		return [][]Fragment{fragments}, nil
	}

	var batches [][]Fragment
	var current []Fragment
	size := 0 // serialized size of current

	for _, f := range fragments {
		line := EncodeFragment(f)
		if len(line) >= budget {
			return nil, fault.Newf(fault.KindConfig,
				"fragment %d serializes to %d bytes, over the %d byte batch budget",
				f.Tag, len(line), budget).WithContext("text", f.Text)
		}
		next := size + len(line)
		if len(current) > 0 {
			next++ // joining newline
		}
		if next >= budget {
			batches = append(batches, current)
			current = nil
			next = len(line)
		}
		current = append(current, f)
		size = next
	}
	if len(current) > 0 {
		batches = append(batches, current)
	}
	return batches, nil
}

// ParseBatchLine splits a serialized line on the first tag delimiter and
// returns the tag and the (trimmed) translated text.
func ParseBatchLine(line string) (int, string, error) {
	tagStr, text, ok := strings.Cut(line, TagDelimiter)
	if !ok {
		return 0, "", fault.Newf(fault.KindParse, "no tag delimiter in line %q", line)
	}
	tag, err := strconv.Atoi(strings.TrimSpace(tagStr))
	if err != nil {
		return 0, "", fault.Newf(fault.KindParse, "bad tag in line %q", line)
	}
	return tag, strings.TrimSpace(text), nil
}

// ParseBatch parses a whole round-tripped batch, one tagged line at a time.
// Blank lines are skipped; any malformed non-blank line fails the parse.
func ParseBatch(text string) (map[int]string, error) {
	ret := make(map[int]string)
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		tag, translated, err := ParseBatchLine(line)
		if err != nil {
			return nil, err
		}
		ret[tag] = translated
	}
	return ret, nil
}
