// Package header defines the desired header content and the placeholder
// tolerance contract used when comparing an existing header against it.
package header

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/autoheader/pkg/errors"
)

// Placeholder is a named token within header text that is allowed to vary
// between the current and desired header without forcing a rewrite.
type Placeholder struct {
	Name    string
	Pattern *regexp.Regexp
}

// Year matches any 4-digit year, so a header written last year still
// counts as current.
func Year() Placeholder {
	return Placeholder{Name: "year", Pattern: regexp.MustCompile(`\d{4}`)}
}

// DefaultPlaceholders returns the placeholder set used when a spec does not
// declare its own.
func DefaultPlaceholders() []Placeholder {
	return []Placeholder{Year()}
}

// Spec is the desired header: its text plus the placeholders tolerated when
// deciding whether an existing header is current.
type Spec struct {
	Text         string
	Placeholders []Placeholder
}

// codePatterns flag header text that looks like source code rather than a
// notice. Writing code into every file of a repository is never intended.
var codePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\s*(def|class|func|import|from|package|return)\s`),
	regexp.MustCompile(`^#include\b`),
	regexp.MustCompile(`[{;]\s*$`),
}

// New creates a validated header spec. With no placeholders given, the
// default set is used.
func New(text string, placeholders ...Placeholder) (*Spec, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New(errors.ErrHeaderEmpty, "header text cannot be empty")
	}
	for _, line := range strings.Split(text, "\n") {
		for _, p := range codePatterns {
			if p.MatchString(line) {
				return nil, errors.Newf(errors.ErrHeaderInvalid,
					"header text contains code-like syntax: %q", line)
			}
		}
	}
	if len(placeholders) == 0 {
		placeholders = DefaultPlaceholders()
	}
	return &Spec{Text: text, Placeholders: placeholders}, nil
}

// Lines returns the header text split into lines, trailing newline ignored.
func (s *Spec) Lines() []string {
	return strings.Split(strings.TrimSuffix(s.Text, "\n"), "\n")
}

// Mask replaces every placeholder match in text with a fixed sentinel.
// Masking both sides of a comparison makes placeholder spans compare equal
// whatever their actual value.
func (s *Spec) Mask(text string) string {
	for _, p := range s.Placeholders {
		text = p.Pattern.ReplaceAllString(text, "\x00"+p.Name+"\x00")
	}
	return text
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize prepares text for the current-vs-desired comparison: placeholder
// spans are masked, whitespace runs collapse to a single space, edges are
// trimmed, and case is ignored. Punctuation stays significant.
func (s *Spec) Normalize(text string) string {
	masked := s.Mask(text)
	collapsed := whitespaceRun.ReplaceAllString(masked, " ")
	return strings.ToLower(strings.TrimSpace(collapsed))
}
