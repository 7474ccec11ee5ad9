// Package pipeline wires the per-file chain together: descriptor lookup,
// preamble scan, header classification, edit decision, and the post-edit
// self-check. It is pure data-in/data-out; reading and writing file bytes
// belongs to the caller.
package pipeline

import (
	"github.com/arthur-debert/autoheader/pkg/editor"
	"github.com/arthur-debert/autoheader/pkg/errors"
	"github.com/arthur-debert/autoheader/pkg/filetype"
	"github.com/arthur-debert/autoheader/pkg/header"
	"github.com/arthur-debert/autoheader/pkg/logging"
	"github.com/arthur-debert/autoheader/pkg/matcher"
	"github.com/arthur-debert/autoheader/pkg/scanner"
)

// Outcome is the result of processing one file's content.
type Outcome struct {
	// Action is what the editor decided
	Action editor.Action

	// Lines is the complete new file content; equal to the input when
	// Action is NoChange
	Lines []string

	// Changed reports whether Lines differ from the input
	Changed bool
}

// Process runs the full pipeline over one file's lines. The path is used
// only for descriptor lookup and logging; no I/O happens here.
//
// When the decision changes the file, the new leading region is re-scanned
// and re-classified: anything but Current is a RENDER_MISMATCH, a
// programming-error-class failure that must abort the write for this file.
func Process(path string, lines []string, spec *header.Spec) (Outcome, error) {
	logger := logging.GetLogger("pipeline")

	desc, err := filetype.Lookup(path)
	if err != nil {
		return Outcome{}, err
	}

	scan := scanner.Scan(lines, desc)
	if scan.Malformed {
		logger.Debug().Str("file", path).Msg("unterminated preamble block, treating rest as code")
	}
	decision := editor.Decide(scan, spec, desc)

	logger.Debug().
		Str("file", path).
		Str("type", desc.Name).
		Str("action", decision.Action.String()).
		Int("segments", len(scan.Segments)).
		Msg("decision computed")

	out := editor.Apply(scan, decision)

	if decision.Changed() {
		if err := verify(out, spec, desc); err != nil {
			return Outcome{}, errors.Wrapf(err, errors.ErrRenderMismatch,
				"post-edit verification failed for %s", path).
				WithDetail("file", path)
		}
	}

	return Outcome{
		Action:  decision.Action,
		Lines:   out,
		Changed: decision.Changed(),
	}, nil
}

// verify re-scans the edited content and demands the header classify as
// current. Catching a renderer/scanner disagreement here keeps corrupted
// output from ever reaching the file.
func verify(lines []string, spec *header.Spec, desc filetype.Descriptor) error {
	rescan := scanner.Scan(lines, desc)
	seg := rescan.Header()
	if seg == nil {
		return errors.New(errors.ErrInternal, "edited content has no header segment")
	}
	if got := matcher.Classify(seg, spec, desc); got != matcher.Current {
		return errors.Newf(errors.ErrInternal, "edited header classified as %s", got)
	}
	return nil
}
