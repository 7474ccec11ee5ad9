// Package scanner splits a file's leading region into typed segments using
// a file-type descriptor: shebang, directives, front matter, an existing
// header comment, blank separators, and the opaque code-start tail.
//
// The scan is a top-down, longest-match pass in the priority order the
// descriptor declares. It never fails: anything it cannot classify
// confidently becomes part of the code-start segment.
package scanner

import (
	"strings"

	"github.com/arthur-debert/autoheader/pkg/filetype"
	"github.com/arthur-debert/autoheader/pkg/logging"
)

// Scan segments the leading region of lines according to desc.
func Scan(lines []string, desc filetype.Descriptor) Result {
	logger := logging.GetLogger("scanner")

	var result Result
	i := 0
	headerSeen := false

	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		// Shebang is only legal on the very first line
		if i == 0 && desc.AllowShebang && strings.HasPrefix(line, "#!") {
			result.Segments = append(result.Segments, Segment{
				Kind:  KindShebang,
				Lines: []string{line},
				Start: i,
			})
			i++
			continue
		}

		if trimmed == "" {
			start := i
			for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
				i++
			}
			result.Segments = append(result.Segments, Segment{
				Kind:  KindBlank,
				Lines: lines[start:i],
				Start: start,
			})
			continue
		}

		if seg, next, ok := matchDirective(lines, i, desc); ok {
			if next < 0 {
				// Unterminated block: fold the rest into code start
				logger.Debug().
					Str("directive", seg.Name).
					Int("line", i).
					Msg("unterminated directive block, treating remainder as code")
				result.Malformed = true
				break
			}
			result.Segments = append(result.Segments, seg)
			i = next
			continue
		}

		if !headerSeen {
			if seg, next, malformed, ok := matchComment(lines, i, desc); ok {
				if malformed {
					logger.Debug().
						Int("line", i).
						Msg("unterminated block comment, treating remainder as code")
					result.Malformed = true
					break
				}
				result.Segments = append(result.Segments, seg)
				headerSeen = true
				i = next
				continue
			}
		}

		break
	}

	result.Segments = append(result.Segments, Segment{
		Kind:  KindCodeStart,
		Lines: lines[i:],
		Start: i,
	})
	return result
}

// matchDirective tries the descriptor's directive patterns at position i.
// It returns the consumed segment and the next position. A next position of
// -1 flags an unterminated multi-line block.
func matchDirective(lines []string, i int, desc filetype.Descriptor) (Segment, int, bool) {
	line := lines[i]
	trimmed := strings.TrimSpace(line)

	for _, dir := range desc.Directives {
		if dir.AtTopOnly && i != 0 {
			continue
		}
		if !dir.Start.MatchString(trimmed) {
			continue
		}

		kind := KindDirective
		if dir.FrontMatter {
			kind = KindFrontMatter
		}

		switch {
		case dir.End != nil:
			// Block directive: consume up to and including the end line,
			// searching from the line after the opening one
			for j := i + 1; j < len(lines); j++ {
				if dir.End.MatchString(strings.TrimSpace(lines[j])) {
					return Segment{Kind: kind, Name: dir.Name, Lines: lines[i : j+1], Start: i}, j + 1, true
				}
			}
			return Segment{Name: dir.Name}, -1, true

		case dir.Balanced:
			// Parenthesis-balanced block, e.g. a PowerShell param(...)
			depth := 0
			for j := i; j < len(lines); j++ {
				depth += strings.Count(lines[j], "(") - strings.Count(lines[j], ")")
				if depth <= 0 {
					return Segment{Kind: kind, Name: dir.Name, Lines: lines[i : j+1], Start: i}, j + 1, true
				}
			}
			return Segment{Name: dir.Name}, -1, true

		default:
			return Segment{Kind: kind, Name: dir.Name, Lines: []string{line}, Start: i}, i + 1, true
		}
	}
	return Segment{}, 0, false
}

// matchComment tries to consume a contiguous comment region at position i.
// Only a region beginning within the still-leading area qualifies, which is
// guaranteed by the caller; the first comment region found is the
// existing-header candidate.
func matchComment(lines []string, i int, desc filetype.Descriptor) (Segment, int, bool, bool) {
	trimmed := strings.TrimSpace(lines[i])

	// Block comment form first: its start marker may itself begin with the
	// line marker (PowerShell's <# vs #)
	if desc.HasBlockComment() && strings.HasPrefix(trimmed, desc.BlockStart) {
		rest := trimmed[len(desc.BlockStart):]
		if strings.Contains(rest, desc.BlockEnd) {
			return Segment{Kind: KindExistingHeader, Lines: []string{lines[i]}, Start: i}, i + 1, false, true
		}
		for j := i + 1; j < len(lines); j++ {
			if strings.Contains(lines[j], desc.BlockEnd) {
				return Segment{Kind: KindExistingHeader, Lines: lines[i : j+1], Start: i}, j + 1, false, true
			}
		}
		return Segment{}, 0, true, true
	}

	if desc.HasLineComment() && strings.HasPrefix(trimmed, desc.LineComment) {
		if desc.DocComment != nil && desc.DocComment.MatchString(trimmed) {
			return Segment{}, 0, false, false
		}
		j := i
		for j < len(lines) {
			t := strings.TrimSpace(lines[j])
			if !strings.HasPrefix(t, desc.LineComment) {
				break
			}
			// A directive or doc comment buried in the run belongs to the
			// following segments, not to the header candidate
			if j > i && directiveAt(t, j, desc) {
				break
			}
			if j > i && desc.DocComment != nil && desc.DocComment.MatchString(t) {
				break
			}
			if desc.HasBlockComment() && strings.HasPrefix(t, desc.BlockStart) {
				break
			}
			j++
		}
		if j == i {
			return Segment{}, 0, false, false
		}
		return Segment{Kind: KindExistingHeader, Lines: lines[i:j], Start: i}, j, false, true
	}

	return Segment{}, 0, false, false
}

// directiveAt reports whether the trimmed line at position pos would be
// consumed as a directive by matchDirective.
func directiveAt(trimmed string, pos int, desc filetype.Descriptor) bool {
	for _, dir := range desc.Directives {
		if dir.AtTopOnly && pos != 0 {
			continue
		}
		if dir.Start.MatchString(trimmed) {
			return true
		}
	}
	return false
}
