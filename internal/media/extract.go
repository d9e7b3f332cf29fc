package media

import (
	"bytes"
	"os/exec"

	"github.com/subweave/subweave/internal/fault"
	"github.com/subweave/subweave/internal/subtitle"
)

// ExtractTrack pulls one subtitle track out of a media container as SRT
// text and parses it.
func ExtractTrack(video string, sel TrackSelector) ([]subtitle.Entry, error) {
	streams, err := Probe(video)
	if err != nil {
		return nil, err
	}
	mapSpec, err := sel.MapSpec(streams)
	if err != nil {
		return nil, err
	}

	cmdPath, err := exec.LookPath("ffmpeg")
	if err != nil {
		return nil, fault.Wrap(err, fault.KindTransport, "ffmpeg not found")
	}
	cmd := exec.Command(cmdPath,
		"-i", "file:"+video,
		"-map", mapSpec,
		"-f", "srt",
		"-loglevel", "warning",
		"-", // srt text on stdout
	)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return nil, fault.Wrap(err, fault.KindTransport, "ffmpeg subtitle extract failed").
			WithContext("file", video).
			WithContext("map", mapSpec)
	}

	return subtitle.Parse(&stdout)
}
