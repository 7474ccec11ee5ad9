package scanner

// Kind classifies a segment of a file's leading region.
type Kind int

const (
	// KindShebang is a #! interpreter line on the first line of the file
	KindShebang Kind = iota

	// KindDirective is a language directive (encoding cookie, #Requires,
	// build constraint) that must stay ahead of the header
	KindDirective

	// KindFrontMatter is fence-style metadata (YAML document start,
	// Markdown front matter)
	KindFrontMatter

	// KindExistingHeader is the first contiguous comment region found in
	// the leading region
	KindExistingHeader

	// KindBlank is a run of blank lines, preserved verbatim
	KindBlank

	// KindCodeStart is the sentinel holding everything from the first
	// unrecognized line onward; its content is opaque and never touched
	KindCodeStart
)

// String returns the kind name for logs and test failures
func (k Kind) String() string {
	switch k {
	case KindShebang:
		return "shebang"
	case KindDirective:
		return "directive"
	case KindFrontMatter:
		return "front-matter"
	case KindExistingHeader:
		return "existing-header"
	case KindBlank:
		return "blank"
	case KindCodeStart:
		return "code-start"
	default:
		return "unknown"
	}
}

// Segment is a classified contiguous span of lines within the leading
// region of a file.
type Segment struct {
	Kind Kind

	// Name carries the directive name for directive/front-matter segments
	Name string

	// Lines are the raw lines of the span, unmodified
	Lines []string

	// Start is the index of the first line within the original input
	Start int
}

// Result is the segmented view of one file's leading region. Segments
// partition the input contiguously and in original order; the last segment
// is always KindCodeStart.
type Result struct {
	Segments []Segment

	// Malformed records that an unterminated block was folded into the
	// code-start segment instead of being classified
	Malformed bool
}

// HeaderIndex returns the index of the existing-header segment, or -1
func (r Result) HeaderIndex() int {
	for i, seg := range r.Segments {
		if seg.Kind == KindExistingHeader {
			return i
		}
	}
	return -1
}

// Header returns the existing-header segment, or nil
func (r Result) Header() *Segment {
	if i := r.HeaderIndex(); i >= 0 {
		return &r.Segments[i]
	}
	return nil
}

// Lines reassembles the original input from the segments
func (r Result) Lines() []string {
	var lines []string
	for _, seg := range r.Segments {
		lines = append(lines, seg.Lines...)
	}
	return lines
}
