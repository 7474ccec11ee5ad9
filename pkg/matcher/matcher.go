// Package matcher decides whether an existing header segment already
// matches the desired header.
package matcher

import (
	"strings"

	"github.com/arthur-debert/autoheader/pkg/filetype"
	"github.com/arthur-debert/autoheader/pkg/header"
	"github.com/arthur-debert/autoheader/pkg/scanner"
)

// Classification is the matcher's verdict on a file's existing header.
type Classification int

const (
	// Absent means the file has no header segment at all
	Absent Classification = iota

	// Current means the existing header matches the desired one up to
	// placeholder tokens; no rewrite is needed
	Current

	// Stale means a header segment exists but its text differs; it must be
	// replaced, never duplicated by a second insert
	Stale
)

// String returns the classification name
func (c Classification) String() string {
	switch c {
	case Absent:
		return "absent"
	case Current:
		return "current"
	case Stale:
		return "stale"
	default:
		return "unknown"
	}
}

// Classify compares the existing header segment (nil when the scan found
// none) against the desired spec. Comparison happens on comment-stripped
// text under the spec's placeholder tolerance: placeholder spans are
// masked, whitespace collapses, case is ignored. Any other textual
// difference is Stale.
func Classify(existing *scanner.Segment, spec *header.Spec, desc filetype.Descriptor) Classification {
	if existing == nil {
		return Absent
	}

	existingText := strings.Join(StripComment(existing.Lines, desc), "\n")
	if spec.Normalize(existingText) == spec.Normalize(spec.Text) {
		return Current
	}
	return Stale
}

// StripComment removes the descriptor's comment markers from the raw lines
// of a comment region, returning the bare text.
func StripComment(lines []string, desc filetype.Descriptor) []string {
	if len(lines) == 0 {
		return nil
	}

	first := strings.TrimSpace(lines[0])
	if desc.HasBlockComment() && strings.HasPrefix(first, desc.BlockStart) {
		return stripBlock(lines, desc)
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		text := strings.TrimSpace(line)
		text = strings.TrimPrefix(text, desc.LineComment)
		out = append(out, strings.TrimSpace(text))
	}
	return out
}

func stripBlock(lines []string, desc filetype.Descriptor) []string {
	// Single-line form: <start> text <end>
	if len(lines) == 1 {
		text := strings.TrimSpace(lines[0])
		text = strings.TrimPrefix(text, desc.BlockStart)
		if idx := strings.LastIndex(text, desc.BlockEnd); idx >= 0 {
			text = text[:idx]
		}
		return []string{strings.TrimSpace(text)}
	}

	// Only block styles that render a " * " interior get it stripped back
	// out; a literal "*" at the start of a header line in other styles is
	// part of the text
	starred := strings.HasPrefix(strings.TrimSpace(desc.BlockLinePrefix), "*")

	var out []string
	for i, line := range lines {
		text := strings.TrimSpace(line)
		if i == 0 {
			text = strings.TrimSpace(strings.TrimPrefix(text, desc.BlockStart))
			if text == "" {
				continue
			}
		}
		if i == len(lines)-1 {
			if idx := strings.LastIndex(text, desc.BlockEnd); idx >= 0 {
				text = strings.TrimSpace(text[:idx])
			}
			if text == "" {
				continue
			}
		}
		if starred {
			text = strings.TrimSpace(strings.TrimPrefix(text, "*"))
		}
		out = append(out, text)
	}
	return out
}
