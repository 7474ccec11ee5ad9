package walker_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/autoheader/pkg/walker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func relPaths(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestWalk(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"run.sh":              "#!/bin/bash\n",
		"module.py":           "import os\n",
		"deep/nested/main.tf": "resource {}\n",
		"notes.txt":           "unsupported\n",
		"image.png":           "\x89PNG",
		".git/config":         "[core]\n",
	})

	paths, err := walker.Walk(root, nil)
	require.NoError(t, err)

	// Every non-ignored file outside VCS dirs is a candidate; deciding
	// supportedness is the dispatcher's job, not the walker's.
	assert.Equal(t, []string{
		"deep/nested/main.tf",
		"image.png",
		"module.py",
		"notes.txt",
		"run.sh",
	}, relPaths(t, root, paths))
}

func TestWalk_IgnorePatterns(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"keep.sh":            "#!/bin/bash\n",
		"skip.sh":            "#!/bin/bash\n",
		"gen/schema.yaml":    "key: value\n",
		"docs/guide.md":      "# Guide\n",
		"docs/deep/notes.md": "# Notes\n",
	})

	t.Run("basename_glob", func(t *testing.T) {
		paths, err := walker.Walk(root, []string{"skip.sh"})
		require.NoError(t, err)
		assert.NotContains(t, relPaths(t, root, paths), "skip.sh")
		assert.Contains(t, relPaths(t, root, paths), "keep.sh")
	})

	t.Run("directory_glob", func(t *testing.T) {
		paths, err := walker.Walk(root, []string{"docs/**"})
		require.NoError(t, err)
		rels := relPaths(t, root, paths)
		assert.NotContains(t, rels, "docs/guide.md")
		assert.NotContains(t, rels, "docs/deep/notes.md")
		assert.Contains(t, rels, "keep.sh")
	})

	t.Run("extension_glob", func(t *testing.T) {
		paths, err := walker.Walk(root, []string{"*.yaml"})
		require.NoError(t, err)
		assert.NotContains(t, relPaths(t, root, paths), "gen/schema.yaml")
	})

	t.Run("directory_name_prunes", func(t *testing.T) {
		paths, err := walker.Walk(root, []string{"gen"})
		require.NoError(t, err)
		assert.NotContains(t, relPaths(t, root, paths), "gen/schema.yaml")
	})
}

func TestWalk_MissingRoot(t *testing.T) {
	_, err := walker.Walk(filepath.Join(t.TempDir(), "nope"), nil)
	assert.Error(t, err)
}
