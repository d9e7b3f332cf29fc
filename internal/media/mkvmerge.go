package media

import (
	"os"
	"os/exec"

	"github.com/subweave/subweave/internal/fault"
	"github.com/subweave/subweave/pkg/log"
)

// SubtitleTrack is one subtitle file to mux into the output container,
// with its language tag and display name.
type SubtitleTrack struct {
	Language string // ISO 639-2 style tag, e.g. "fi", "eng", "mul"
	Name     string // display name shown by players
	Path     string
}

// Mux merges the original video and the subtitle tracks, in order, into a
// new container at output.
func Mux(video string, tracks []SubtitleTrack, output string) error {
	cmdPath, err := exec.LookPath("mkvmerge")
	if err != nil {
		return fault.Wrap(err, fault.KindTransport, "mkvmerge not found")
	}

	args := []string{video}
	for _, t := range tracks {
		args = append(args,
			"--language", "0:"+t.Language,
			"--track-name", "0:"+t.Name,
			t.Path,
		)
	}
	args = append(args, "--output", output)

	log.Info("muxing %d subtitle tracks into %s", len(tracks), output)
	cmd := exec.Command(cmdPath, args...)
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fault.Wrap(err, fault.KindTransport, "mkvmerge failed").
			WithContext("output", output)
	}
	return nil
}
