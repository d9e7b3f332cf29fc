package file

import (
	"os"
	"path/filepath"
	"strings"
)

// FindByExt walks dir and returns files whose extension (lowercased) is in
// exts. Used to discover videos for batch processing.
func FindByExt(dir string, exts ...string) ([]string, error) {
	want := make(map[string]bool, len(exts))
	for _, e := range exts {
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		want[strings.ToLower(e)] = true
	}

	var found []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo,
		err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && want[strings.ToLower(filepath.Ext(path))] {
			found = append(found, path)
		}
		return nil
	})

	return found, err
}
