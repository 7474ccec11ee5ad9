// Package renderer formats desired header text into the comment syntax of
// a file type. Rendered output must scan straight back into an
// existing-header segment that classifies as current (the round-trip
// property the pipeline's self-check relies on).
package renderer

import (
	"strings"

	"github.com/arthur-debert/autoheader/pkg/filetype"
	"github.com/arthur-debert/autoheader/pkg/header"
)

// Render wraps the spec's text in the descriptor's comment syntax. Block
// form is used when the descriptor declares and prefers one: a single
// header line collapses to one `<start> text <end>` line, multiple lines
// get start and end marker lines around prefixed interior lines. Line form
// prefixes every line with the marker, bare for empty lines.
func Render(spec *header.Spec, desc filetype.Descriptor) []string {
	lines := spec.Lines()

	if desc.HasBlockComment() && (desc.PreferBlock || !desc.HasLineComment()) {
		return renderBlock(lines, desc)
	}
	return renderLines(lines, desc)
}

func renderBlock(lines []string, desc filetype.Descriptor) []string {
	if len(lines) == 1 {
		return []string{desc.BlockStart + " " + lines[0] + " " + desc.BlockEnd}
	}

	out := make([]string, 0, len(lines)+2)
	out = append(out, desc.BlockStart)
	for _, line := range lines {
		rendered := desc.BlockLinePrefix + line
		if line == "" {
			rendered = strings.TrimRight(desc.BlockLinePrefix, " ")
		}
		out = append(out, rendered)
	}
	out = append(out, closingMarker(desc))
	return out
}

func renderLines(lines []string, desc filetype.Descriptor) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			out = append(out, desc.LineComment)
			continue
		}
		out = append(out, desc.LineComment+" "+line)
	}
	return out
}

// closingMarker matches the hand-written convention for each block style:
// C-style blocks close with " */" aligned under the stars, others close
// with the bare end marker.
func closingMarker(desc filetype.Descriptor) string {
	if strings.HasPrefix(strings.TrimSpace(desc.BlockLinePrefix), "*") {
		return " " + desc.BlockEnd
	}
	return desc.BlockEnd
}
