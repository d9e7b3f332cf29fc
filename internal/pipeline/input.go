package pipeline

import (
	"regexp"
	"strings"

	"github.com/subweave/subweave/internal/media"
	"github.com/subweave/subweave/internal/subtitle"
)

var trackSuffixRe = regexp.MustCompile(`:([a-zA-Z]+):(-?[0-9]+)$`)

// ReadSubs reads subtitles from wherever the argument points: an .srt file
// directly, a media file with a ":lang:N" track suffix, or a media file's
// first subtitle track.
func ReadSubs(arg string) ([]subtitle.Entry, error) {
	if strings.HasSuffix(strings.ToLower(arg), ".srt") {
		return subtitle.ReadFile(arg)
	}

	if m := trackSuffixRe.FindStringSubmatchIndex(arg); m != nil {
		sel, err := media.ParseTrackSelector(arg[m[0]+1:])
		if err != nil {
			return nil, err
		}
		return media.ExtractTrack(arg[:m[0]], sel)
	}

	return media.ExtractTrack(arg, media.TrackSelector{Index: 0})
}
