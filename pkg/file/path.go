package file

import (
	"os"
	"path/filepath"
	"strings"
)

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func ReplaceExt(path, ext string) string {
	if path == "" {
		return path
	}

	dir := filepath.Dir(path)
	filename := filepath.Base(path)

	lastDot := strings.LastIndex(filename, ".")

	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	if lastDot <= 0 {
		return filepath.Join(dir, filename+ext)
	}

	return filepath.Join(dir, filename[:lastDot]+ext)
}

// WithSuffix replaces the final extension of path with suffix, which may be
// a compound like ".fi.srt". An empty original extension just appends.
func WithSuffix(path, suffix string) string {
	return ReplaceExt(path, suffix)
}

// ResolveAlias resolves a leading alias component in path against a concrete
// directory. "@/cache.db" with aliases{"@": "/videos/s01"} becomes
// "/videos/s01/cache.db". Paths that do not start with a known alias are
// returned unchanged.
func ResolveAlias(path string, aliases map[string]string) string {
	if path == "" {
		return path
	}
	parts := strings.Split(filepath.ToSlash(path), "/")
	base, ok := aliases[parts[0]]
	if !ok {
		return path
	}
	return filepath.Join(append([]string{base}, parts[1:]...)...)
}
