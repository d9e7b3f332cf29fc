package pipeline

import (
	"os"

	"github.com/subweave/subweave/internal/subtitle"
	"github.com/subweave/subweave/pkg/log"
)

// Cached returns the entries stored at path if it exists, otherwise runs
// gen, writes its result to path and returns it. An existing file is
// authoritative and never regenerated unless force is set, so a job that
// failed midway resumes from the files it already produced.
func Cached(path string, force bool, gen func() ([]subtitle.Entry, error)) ([]subtitle.Entry, error) {
	if !force {
		if _, err := os.Stat(path); err == nil {
			log.Info("already exists, reusing: %s", path)
			return subtitle.ReadFile(path)
		}
	}

	entries, err := gen()
	if err != nil {
		return nil, err
	}
	if err := subtitle.WriteFile(path, entries); err != nil {
		return nil, err
	}
	return entries, nil
}
