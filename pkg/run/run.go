// Package run orchestrates a batch: walk the tree, process every candidate
// file through the pipeline, and write the results back. Files are
// independent, so processing is concurrent with a bounded worker count;
// per-file failures are collected and never abort the batch.
package run

import (
	"context"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/arthur-debert/autoheader/pkg/editor"
	"github.com/arthur-debert/autoheader/pkg/errors"
	"github.com/arthur-debert/autoheader/pkg/fileio"
	"github.com/arthur-debert/autoheader/pkg/filetype"
	"github.com/arthur-debert/autoheader/pkg/header"
	"github.com/arthur-debert/autoheader/pkg/logging"
	"github.com/arthur-debert/autoheader/pkg/pipeline"
	"github.com/arthur-debert/autoheader/pkg/walker"
)

// Status is the per-file outcome of a batch run.
type Status int

const (
	// StatusUnchanged means the file already carried a current header
	StatusUnchanged Status = iota

	// StatusInserted means a header was added
	StatusInserted

	// StatusReplaced means a stale header was rewritten
	StatusReplaced

	// StatusSkipped means the file's type has no descriptor
	StatusSkipped

	// StatusFailed means the file could not be read, processed, or written
	StatusFailed
)

// String returns the status name
func (s Status) String() string {
	switch s {
	case StatusUnchanged:
		return "unchanged"
	case StatusInserted:
		return "inserted"
	case StatusReplaced:
		return "replaced"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FileResult records what happened to one file.
type FileResult struct {
	Path   string
	Status Status
	Err    error
}

// Result aggregates a whole batch.
type Result struct {
	Processed int
	Modified  int
	Unchanged int
	Skipped   int
	Failed    int
	Files     []FileResult
}

// Errors returns the per-file errors of all failed files
func (r *Result) Errors() []error {
	var errs []error
	for _, f := range r.Files {
		if f.Err != nil {
			errs = append(errs, f.Err)
		}
	}
	return errs
}

// Options configures a batch run.
type Options struct {
	// Root is the directory to scan
	Root string

	// Header is the resolved desired header text
	Header string

	// Ignore lists doublestar globs excluded from the walk
	Ignore []string

	// Jobs bounds concurrent file processing; values below 1 mean 1
	Jobs int

	// Check computes decisions without writing; out-of-date files are
	// still reported as modified
	Check bool

	// DryRun is like Check but logs what would change
	DryRun bool
}

// Run executes a batch. The returned error covers setup problems (bad
// header text, unreadable root); per-file problems land in the Result.
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.GetLogger("run")
	defer logging.LogDuration(time.Now(), "batch run")

	spec, err := header.New(opts.Header)
	if err != nil {
		return nil, err
	}

	paths, err := walker.Walk(opts.Root, opts.Ignore)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to walk %s", opts.Root)
	}

	jobs := opts.Jobs
	if jobs < 1 {
		jobs = 1
	}

	var (
		mu      sync.Mutex
		results []FileResult
	)
	record := func(fr FileResult) {
		mu.Lock()
		results = append(results, fr)
		mu.Unlock()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for _, path := range paths {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			record(processOne(path, spec, opts))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })

	result := &Result{Files: results}
	for _, fr := range results {
		switch fr.Status {
		case StatusInserted, StatusReplaced:
			result.Processed++
			result.Modified++
		case StatusUnchanged:
			result.Processed++
			result.Unchanged++
		case StatusSkipped:
			result.Skipped++
		case StatusFailed:
			result.Failed++
		}
	}

	logger.Info().
		Int("processed", result.Processed).
		Int("modified", result.Modified).
		Int("skipped", result.Skipped).
		Int("failed", result.Failed).
		Msg("batch complete")
	return result, nil
}

// processOne runs the pipeline over a single file and writes back when the
// run mode allows it. All failures are folded into the FileResult.
func processOne(path string, spec *header.Spec, opts Options) FileResult {
	logger := logging.GetLogger("run")

	// Cheap dispatch check before touching the file's bytes
	if !filetype.Supported(path) {
		logger.Info().Str("file", path).Msg("unsupported file type, skipping")
		return FileResult{Path: path, Status: StatusSkipped}
	}

	content, err := fileio.Read(path)
	if err != nil {
		return FileResult{Path: path, Status: StatusFailed, Err: err}
	}

	outcome, err := pipeline.Process(path, content.Lines, spec)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrUnsupportedType) {
			return FileResult{Path: path, Status: StatusSkipped}
		}
		return FileResult{Path: path, Status: StatusFailed, Err: err}
	}

	status := StatusUnchanged
	switch outcome.Action {
	case editor.Insert:
		status = StatusInserted
	case editor.Replace:
		status = StatusReplaced
	}

	if !outcome.Changed {
		return FileResult{Path: path, Status: status}
	}

	if opts.Check || opts.DryRun {
		logger.Info().
			Str("file", path).
			Str("action", outcome.Action.String()).
			Msg("would update header")
		return FileResult{Path: path, Status: status}
	}

	if err := fileio.Write(path, content.WithLines(outcome.Lines)); err != nil {
		return FileResult{Path: path, Status: StatusFailed, Err: err}
	}

	logger.Debug().
		Str("file", path).
		Str("action", outcome.Action.String()).
		Msg("header updated")
	return FileResult{Path: path, Status: status}
}
