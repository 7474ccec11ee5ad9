// Package walker collects the candidate files under a root directory,
// filtering by ignore globs and by registered file types. The pipeline
// never sees an excluded path.
package walker

import (
	"io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/arthur-debert/autoheader/pkg/logging"
)

// vcsDirs are never descended into
var vcsDirs = map[string]bool{
	".git": true,
	".hg":  true,
	".svn": true,
}

// Walk returns the candidate files under root in lexical order. Ignore
// patterns are doublestar globs matched against the root-relative slash
// path and against the basename, so both "docs/**" and "*.gen.yml" work as
// expected. Deciding whether a file's type is supported stays with the
// dispatcher; the walk only filters exclusions.
func Walk(root string, ignore []string) ([]string, error) {
	logger := logging.GetLogger("walker")

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if path == root {
				return nil
			}
			if vcsDirs[d.Name()] || ignored(rel, d.Name(), ignore) {
				logger.Debug().Str("dir", rel).Msg("skipping directory")
				return filepath.SkipDir
			}
			return nil
		}

		if ignored(rel, d.Name(), ignore) {
			logger.Debug().Str("file", rel).Msg("ignored by pattern")
			return nil
		}

		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("root", root).
		Int("candidates", len(paths)).
		Msg("walk complete")
	return paths, nil
}

// ignored reports whether rel (or its basename) matches any ignore glob.
// Invalid patterns never match.
func ignored(rel, base string, ignore []string) bool {
	for _, pattern := range ignore {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}
