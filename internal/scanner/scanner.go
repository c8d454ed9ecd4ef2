// Package scanner discovers convertible files (exported ADF documents and
// editable Markdown) under the configured content directories.
package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/frherrer/adfsync/internal/domain"
)

// Scanner discovers content files in a directory tree.
type Scanner interface {
	Scan(rootDir string, include []string, exclude []string) ([]string, error)
}

// FileScanner implements Scanner using filepath.WalkDir.
type FileScanner struct {
	Recursive bool
}

// NewScanner creates a new FileScanner.
func NewScanner(recursive bool) *FileScanner {
	return &FileScanner{Recursive: recursive}
}

// Scan walks rootDir and returns sorted file paths matching any include
// pattern and no exclude pattern. Patterns are globs relative to rootDir;
// "**" matches across directory boundaries.
func (s *FileScanner) Scan(rootDir string, include []string, exclude []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(rootDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(rootDir, path)
		if relErr != nil {
			rel = path
		}

		if d.IsDir() {
			if !s.Recursive && rel != "." {
				return filepath.SkipDir
			}
			for _, pattern := range exclude {
				if matchGlob(rel, pattern) {
					return filepath.SkipDir
				}
			}
			return nil
		}

		for _, pattern := range exclude {
			if matchGlob(rel, pattern) {
				return nil
			}
		}
		for _, pattern := range include {
			if matchGlob(rel, pattern) {
				files = append(files, path)
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, domain.NewSyncError("scan", rootDir, "failed to scan directory", err)
	}

	sort.Strings(files)
	return files, nil
}

// matchGlob matches a relative path against a glob pattern. A plain pattern
// is tried against both the basename and the full relative path; "**"
// splits the pattern into a literal prefix and a suffix matched against
// every tail of the remaining path.
func matchGlob(path, pattern string) bool {
	if !strings.Contains(pattern, "**") {
		if ok, _ := filepath.Match(pattern, filepath.Base(path)); ok {
			return true
		}
		ok, _ := filepath.Match(pattern, path)
		return ok
	}

	parts := strings.SplitN(pattern, "**", 2)
	prefix := strings.TrimSuffix(parts[0], string(filepath.Separator))
	suffix := strings.TrimPrefix(parts[1], string(filepath.Separator))

	if prefix != "" {
		if !strings.HasPrefix(path, prefix) {
			return false
		}
		path = strings.TrimPrefix(strings.TrimPrefix(path, prefix), string(filepath.Separator))
	}
	if suffix == "" {
		return true
	}

	segments := strings.Split(path, string(filepath.Separator))
	for i := range segments {
		tail := strings.Join(segments[i:], string(filepath.Separator))
		if ok, _ := filepath.Match(suffix, tail); ok {
			return true
		}
	}
	return false
}
