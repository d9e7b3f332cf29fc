package media

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/subweave/subweave/internal/fault"
	"github.com/subweave/subweave/pkg/log"
)

// Stream is one stream of a media container as reported by ffprobe. Index
// is the absolute stream index, usable directly in an ffmpeg -map spec.
type Stream struct {
	Index     int
	CodecType string
	CodecName string
	Language  string
	Title     string
}

// Probe lists the streams of a media file via ffprobe.
func Probe(path string) ([]Stream, error) {
	cmdPath, err := exec.LookPath("ffprobe")
	if err != nil {
		return nil, fault.Wrap(err, fault.KindTransport, "ffprobe not found")
	}
	cmd := exec.Command(cmdPath,
		"file:"+path,
		"-loglevel", "warning",
		"-print_format", "json",
		"-show_format", "-show_streams",
	)
	output, err := cmd.Output()
	if err != nil {
		log.Error("ffprobe failed on %s: %v", path, err)
		return nil, fault.Wrap(err, fault.KindTransport, "ffprobe failed").WithContext("file", path)
	}
	return parseProbeOutput(output)
}

func parseProbeOutput(output []byte) ([]Stream, error) {
	var probeResult struct {
		Streams []struct {
			Index     int    `json:"index"`
			CodecType string `json:"codec_type"`
			CodecName string `json:"codec_name"`
			Tags      struct {
				Language string `json:"language"`
				Title    string `json:"title"`
			} `json:"tags"`
		} `json:"streams"`
	}
	if err := json.Unmarshal(output, &probeResult); err != nil {
		return nil, fault.Wrap(err, fault.KindTransport, "parse ffprobe output")
	}

	streams := make([]Stream, 0, len(probeResult.Streams))
	for _, s := range probeResult.Streams {
		streams = append(streams, Stream{
			Index:     s.Index,
			CodecType: s.CodecType,
			CodecName: s.CodecName,
			Language:  s.Tags.Language,
			Title:     s.Tags.Title,
		})
	}
	return streams, nil
}

// TrackSelector picks one subtitle track. With a language, Index counts
// within that language's subtitle tracks only, and may be negative to count
// from the end (-1 is the last one). Without a language, Index is the
// container's Nth subtitle track.
type TrackSelector struct {
	Language string
	Index    int
}

// ParseTrackSelector parses "N" or "lang:N".
func ParseTrackSelector(s string) (TrackSelector, error) {
	var sel TrackSelector
	if lang, idx, ok := strings.Cut(s, ":"); ok {
		sel.Language = lang
		s = idx
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return TrackSelector{}, fault.Newf(fault.KindConfig, "invalid track selector %q", s)
	}
	sel.Index = n
	return sel, nil
}

// MapSpec resolves the selector against probed streams into an ffmpeg -map
// argument. An unresolvable selector is a configuration error that lists
// the subtitle tracks the file actually has.
func (sel TrackSelector) MapSpec(streams []Stream) (string, error) {
	if sel.Language == "" {
		if sel.Index < 0 {
			return "", fault.Newf(fault.KindConfig,
				"negative track index %d requires a language selector", sel.Index)
		}
		return fmt.Sprintf("0:s:%d", sel.Index), nil
	}

	var matching []Stream
	var available []string
	for _, s := range streams {
		if s.CodecType != "subtitle" {
			continue
		}
		available = append(available, fmt.Sprintf("%d:%s", s.Index, s.Language))
		if s.Language == sel.Language {
			matching = append(matching, s)
		}
	}

	idx := sel.Index
	if idx < 0 {
		idx += len(matching)
	}
	if idx < 0 || idx >= len(matching) {
		return "", fault.Newf(fault.KindConfig,
			"no subtitle track %d for language %q (subtitle tracks: %s)",
			sel.Index, sel.Language, strings.Join(available, ", "))
	}
	return fmt.Sprintf("0:%d", matching[idx].Index), nil
}
