package translate

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Segment is one speaker-attributed span of an entry's content. Delim is
// the marker exactly as it appeared (including the whitespace before the
// dash) and is re-prepended verbatim after translation. The leading span
// before any marker has an empty Delim.
type Segment struct {
	Delim string
	Text  string
}

// SplitSpeakers splits content on speaker markers: a "-" at the start of
// the text or right after whitespace, immediately followed by a word
// character. Segments that are empty after trimming are dropped, so they
// are neither sent to a backend nor rejoined into the result.
func SplitSpeakers(content string) []Segment {
	type marker struct{ delimStart, delimEnd int }
	var markers []marker

	prev := rune(0)
	prevSize := 0
	for i, r := range content {
		if r == '-' && (i == 0 || unicode.IsSpace(prev)) {
			next, _ := utf8.DecodeRuneInString(content[i+1:])
			if isWordRune(next) {
				start := i
				if i > 0 {
					start = i - prevSize
				}
				markers = append(markers, marker{start, i + 1})
			}
		}
		prev = r
		prevSize = utf8.RuneLen(r)
	}

	var segments []Segment
	appendSegment := func(delim, text string) {
		if strings.TrimSpace(text) == "" {
			return
		}
		segments = append(segments, Segment{Delim: delim, Text: text})
	}

	if len(markers) == 0 {
		appendSegment("", content)
		return segments
	}

	appendSegment("", content[:markers[0].delimStart])
	for k, m := range markers {
		end := len(content)
		if k+1 < len(markers) {
			end = markers[k+1].delimStart
		}
		appendSegment(content[m.delimStart:m.delimEnd], content[m.delimEnd:end])
	}
	return segments
}

// JoinSegments rejoins translated segment texts with their original
// delimiters, separated by two spaces.
func JoinSegments(segments []Segment, translated []string) string {
	parts := make([]string, len(segments))
	for i, seg := range segments {
		parts[i] = seg.Delim + translated[i]
	}
	return strings.Join(parts, "  ")
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
