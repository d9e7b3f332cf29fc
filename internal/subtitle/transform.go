package subtitle

import (
	"fmt"
	"strings"
	"time"
)

// Style wraps every content line of every entry in a font color marker.
// The input sequence is not modified.
func Style(entries []Entry, color string) []Entry {
	ret := CloneAll(entries)
	for i := range ret {
		for j, line := range ret[i].Content {
			ret[i].Content[j] = fmt.Sprintf(`<font color="%s">%s</font>`, color, line)
		}
	}
	return ret
}

// TimeShift adds a fixed signed offset to every entry's start and end.
// Callers shift one stream by a sub-visible amount (a millisecond) before
// merging so entries at identical timestamps interleave deterministically
// instead of by tie-break order. The input sequence is not modified.
func TimeShift(entries []Entry, offset time.Duration) []Entry {
	ret := CloneAll(entries)
	for i := range ret {
		ret[i].Start += offset
		ret[i].End += offset
	}
	return ret
}

// CollapseNewlines joins each entry's content lines with a single space,
// leaving single-line content. Translation backends and tag serialization
// require content without embedded line breaks. The input sequence is not
// modified.
func CollapseNewlines(entries []Entry) []Entry {
	ret := CloneAll(entries)
	for i := range ret {
		if len(ret[i].Content) > 1 {
			ret[i].Content = []string{strings.Join(ret[i].Content, " ")}
		}
	}
	return ret
}
