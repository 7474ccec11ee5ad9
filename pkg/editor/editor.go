// Package editor computes the minimal edit that brings a file's leading
// region to the desired header: insert when absent, replace when stale,
// nothing when current. Every segment other than the header keeps its
// content and relative order byte for byte; that guarantee is the whole
// point of the subsystem.
package editor

import (
	"github.com/arthur-debert/autoheader/pkg/filetype"
	"github.com/arthur-debert/autoheader/pkg/header"
	"github.com/arthur-debert/autoheader/pkg/matcher"
	"github.com/arthur-debert/autoheader/pkg/renderer"
	"github.com/arthur-debert/autoheader/pkg/scanner"
)

// Action is what the editor decided to do with the file.
type Action int

const (
	// NoChange means the existing header is current; the file is untouched
	NoChange Action = iota

	// Insert means no header exists; the rendered header goes in at Index
	Insert

	// Replace means a stale header exists; only its lines are substituted
	Replace
)

// String returns the action name
func (a Action) String() string {
	switch a {
	case NoChange:
		return "no-change"
	case Insert:
		return "insert"
	case Replace:
		return "replace"
	default:
		return "unknown"
	}
}

// Decision carries the editor's verdict plus everything Apply needs to
// materialize it.
type Decision struct {
	Action Action

	// Lines is the rendered header, empty for NoChange
	Lines []string

	// Index is the segment position the edit targets: the insertion slot
	// for Insert, the existing-header segment for Replace
	Index int

	// PadBefore/PadAfter request one blank separator line around an
	// inserted header, per the descriptor's blank-line convention
	PadBefore bool
	PadAfter  bool
}

// Changed reports whether applying the decision modifies the file
func (d Decision) Changed() bool {
	return d.Action != NoChange
}

// Decide classifies the scanned file against the desired header and
// computes the edit.
func Decide(scan scanner.Result, spec *header.Spec, desc filetype.Descriptor) Decision {
	switch matcher.Classify(scan.Header(), spec, desc) {
	case matcher.Current:
		return Decision{Action: NoChange}

	case matcher.Stale:
		return Decision{
			Action: Replace,
			Lines:  renderer.Render(spec, desc),
			Index:  scan.HeaderIndex(),
		}
	}

	idx := insertionIndex(scan)
	d := Decision{
		Action: Insert,
		Lines:  renderer.Render(spec, desc),
		Index:  idx,
	}

	if desc.SeparateBlank {
		// One blank line toward the preamble and one toward the content,
		// reusing blanks already present instead of stacking new ones.
		d.PadBefore = idx > 0
		if idx < len(scan.Segments) {
			next := scan.Segments[idx]
			d.PadAfter = next.Kind != scanner.KindBlank && len(next.Lines) > 0
		}
	}
	return d
}

// insertionIndex returns the segment slot directly after the last segment
// that must precede the header. Blank segments do not count when locating
// it, so a blank that followed the preamble ends up after the header.
func insertionIndex(scan scanner.Result) int {
	idx := 0
	for i, seg := range scan.Segments {
		switch seg.Kind {
		case scanner.KindShebang, scanner.KindDirective, scanner.KindFrontMatter:
			idx = i + 1
		}
	}
	return idx
}

// Apply materializes the decision over the scanned segments, returning the
// complete new file lines.
func Apply(scan scanner.Result, d Decision) []string {
	switch d.Action {
	case Replace:
		var out []string
		for i, seg := range scan.Segments {
			if i == d.Index {
				out = append(out, d.Lines...)
				continue
			}
			out = append(out, seg.Lines...)
		}
		return out

	case Insert:
		var out []string
		for _, seg := range scan.Segments[:d.Index] {
			out = append(out, seg.Lines...)
		}
		if d.PadBefore {
			out = append(out, "")
		}
		out = append(out, d.Lines...)
		if d.PadAfter {
			out = append(out, "")
		}
		for _, seg := range scan.Segments[d.Index:] {
			out = append(out, seg.Lines...)
		}
		return out

	default:
		return scan.Lines()
	}
}
