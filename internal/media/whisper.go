package media

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/subweave/subweave/internal/fault"
	"github.com/subweave/subweave/internal/subtitle"
	"github.com/subweave/subweave/pkg/log"
)

// Transcriber runs an external speech-to-text engine that drops an SRT file
// into an output directory.
type Transcriber struct {
	Cmd      string // default whisper-ctranslate2
	Model    string
	Language string // empty lets the engine auto-detect
	Threads  int    // 0 means 8

	// InitialPrompt primes the decoder; lecture-style phrasing improves
	// punctuation on lecture recordings.
	InitialPrompt string
}

const defaultTranscriberCmd = "whisper-ctranslate2"

// Transcribe runs the engine on video and reads the produced subtitles
// back. With translate set the engine emits its own English translation
// instead of a transcript.
func (t Transcriber) Transcribe(video string, translate bool) ([]subtitle.Entry, error) {
	cmdName := t.Cmd
	if cmdName == "" {
		cmdName = defaultTranscriberCmd
	}
	cmdPath, err := exec.LookPath(cmdName)
	if err != nil {
		return nil, fault.Wrap(err, fault.KindTransport, cmdName+" not found")
	}

	tmpDir, err := os.MkdirTemp("", "whisper-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	threads := t.Threads
	if threads <= 0 {
		threads = 8
	}
	args := []string{
		"file:" + video,
		"--compute_type=float32", // works on CPUs
		"--threads=" + strconv.Itoa(threads),
		"--condition_on_previous_text=False",
		"--output_format=srt",
		"--model=" + t.Model,
		"--output_dir=" + tmpDir,
	}
	if t.Language != "" {
		args = append(args, "--language="+t.Language)
	}
	if t.InitialPrompt != "" {
		args = append(args, "--initial_prompt="+t.InitialPrompt)
	}
	if translate {
		args = append(args, "--task=translate")
	}

	log.Info("transcribing %s (translate=%v)", video, translate)
	cmd := exec.Command(cmdPath, args...)
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return nil, fault.Wrap(err, fault.KindTransport, "transcription failed").
			WithContext("file", video)
	}

	// the engine names its output after the input's stem
	stem := strings.TrimSuffix(filepath.Base("file:"+video), filepath.Ext(video))
	return subtitle.ReadFile(filepath.Join(tmpDir, stem+".srt"))
}
