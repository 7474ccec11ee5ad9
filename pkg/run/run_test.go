package run_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/autoheader/pkg/errors"
	"github.com/arthur-debert/autoheader/pkg/run"
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

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func statuses(result *run.Result) map[string]run.Status {
	out := make(map[string]run.Status, len(result.Files))
	for _, f := range result.Files {
		out[filepath.Base(f.Path)] = f.Status
	}
	return out
}

func TestRun_Directory(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"script.sh":  "#!/bin/bash\necho hi\n",
		"current.sh": "# Copyright Acme 2024\necho hi\n",
		"stale.sh":   "# legacy notice\necho hi\n",
		"notes.txt":  "unsupported\n",
	})

	result, err := run.Run(context.Background(), run.Options{
		Root:   root,
		Header: "Copyright Acme 2025",
		Jobs:   4,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Processed)
	assert.Equal(t, 2, result.Modified)
	assert.Equal(t, 1, result.Unchanged)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 0, result.Failed)
	assert.Empty(t, result.Errors())

	byName := statuses(result)
	assert.Equal(t, run.StatusInserted, byName["script.sh"])
	assert.Equal(t, run.StatusUnchanged, byName["current.sh"])
	assert.Equal(t, run.StatusReplaced, byName["stale.sh"])
	assert.Equal(t, run.StatusSkipped, byName["notes.txt"])

	assert.Equal(t, "#!/bin/bash\n# Copyright Acme 2025\necho hi\n",
		readFile(t, filepath.Join(root, "script.sh")))
	assert.Equal(t, "# Copyright Acme 2025\necho hi\n",
		readFile(t, filepath.Join(root, "stale.sh")))
	// Year-only difference: file untouched
	assert.Equal(t, "# Copyright Acme 2024\necho hi\n",
		readFile(t, filepath.Join(root, "current.sh")))
}

func TestRun_SecondRunIsNoOp(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.sh": "#!/bin/bash\necho a\n",
		"b.py": "import os\n",
		"c.tf": "resource \"x\" \"y\" {}\n",
	})
	opts := run.Options{Root: root, Header: "Copyright Acme 2025", Jobs: 2}

	first, err := run.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 3, first.Modified)

	second, err := run.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Modified)
	assert.Equal(t, 3, second.Unchanged)
}

func TestRun_CheckModeDoesNotWrite(t *testing.T) {
	root := t.TempDir()
	original := "#!/bin/bash\necho hi\n"
	writeTree(t, root, map[string]string{"script.sh": original})

	result, err := run.Run(context.Background(), run.Options{
		Root:   root,
		Header: "Copyright Acme 2025",
		Check:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Modified)
	assert.Equal(t, original, readFile(t, filepath.Join(root, "script.sh")))
}

func TestRun_IgnorePatterns(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"keep.sh":         "echo keep\n",
		"vendor/dep.sh":   "echo vendored\n",
		"schema.gen.yaml": "key: value\n",
	})

	result, err := run.Run(context.Background(), run.Options{
		Root:   root,
		Header: "Copyright Acme 2025",
		Ignore: []string{"vendor/**", "*.gen.yaml"},
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	assert.Equal(t, "keep.sh", filepath.Base(result.Files[0].Path))
}

func TestRun_InvalidHeader(t *testing.T) {
	_, err := run.Run(context.Background(), run.Options{
		Root:   t.TempDir(),
		Header: "",
	})
	assert.True(t, errors.IsErrorCode(err, errors.ErrHeaderEmpty))
}

func TestRun_FailedFileDoesNotAbortBatch(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"good.sh": "echo hi\n",
	})
	// A dangling symlink with a supported extension fails to read
	require.NoError(t, os.Symlink(filepath.Join(root, "nonexistent"), filepath.Join(root, "broken.sh")))

	result, err := run.Run(context.Background(), run.Options{
		Root:   root,
		Header: "Copyright Acme 2025",
	})
	require.NoError(t, err)

	byName := statuses(result)
	assert.Equal(t, run.StatusInserted, byName["good.sh"])
	assert.Equal(t, run.StatusFailed, byName["broken.sh"])
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors(), 1)
	assert.True(t, errors.IsErrorCode(result.Errors()[0], errors.ErrFileRead))
}

func TestRun_MissingRoot(t *testing.T) {
	_, err := run.Run(context.Background(), run.Options{
		Root:   filepath.Join(t.TempDir(), "nope"),
		Header: "Copyright Acme 2025",
	})
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileRead))
}

func TestRun_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.sh": "echo a\n"})

	_, err := run.Run(ctx, run.Options{Root: root, Header: "Copyright Acme 2025"})
	assert.ErrorIs(t, err, context.Canceled)
}
