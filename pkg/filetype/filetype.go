// Package filetype holds the per-language comment-syntax descriptors and
// the registry that maps file extensions to them.
//
// A Descriptor is pure data: comment markers, whether a shebang is legal,
// and the ordered directive patterns that must keep their place ahead of a
// header comment. Adding a language is registering one descriptor; no other
// component changes.
package filetype

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/arthur-debert/autoheader/pkg/errors"
	"github.com/arthur-debert/autoheader/pkg/registry"
)

// Directive describes one preamble construct the scanner recognizes and the
// editor keeps ahead of the header. Directives are tried in the order they
// are declared.
type Directive struct {
	// Name identifies the directive in logs and scan results
	Name string

	// Start matches the opening (or only) line of the directive
	Start *regexp.Regexp

	// End, when set, makes the directive a multi-line block consumed up to
	// and including the first line matching End
	End *regexp.Regexp

	// Balanced, when set, makes the directive a multi-line block consumed
	// until its parentheses balance out (PowerShell param blocks)
	Balanced bool

	// FrontMatter marks fence-style metadata (YAML document start,
	// Markdown front matter) rather than a language directive
	FrontMatter bool

	// AtTopOnly restricts the directive to the very first line of the file
	AtTopOnly bool
}

// Descriptor is the immutable per-language comment-syntax description.
type Descriptor struct {
	// Name is the registry key, e.g. "bash"
	Name string

	// Extensions this descriptor claims, lowercase with leading dot
	Extensions []string

	// LineComment is the per-line comment marker, empty if none
	LineComment string

	// BlockStart/BlockEnd delimit block comments, empty if none
	BlockStart string
	BlockEnd   string

	// BlockLinePrefix prefixes interior lines of a rendered block header
	BlockLinePrefix string

	// PreferBlock selects block style when rendering a header
	PreferBlock bool

	// AllowShebang permits a #! line at the top of the file
	AllowShebang bool

	// Directives are the preamble constructs that must stay ahead of the
	// header, in matching priority order
	Directives []Directive

	// DocComment, when set, matches leading comment lines that document
	// the code itself (Go package doc comments). Such a comment run is
	// never a header candidate and is left untouched.
	DocComment *regexp.Regexp

	// SeparateBlank asks for one blank line between the header and its
	// neighbors when inserting
	SeparateBlank bool
}

// HasLineComment reports whether the language has a per-line comment marker
func (d Descriptor) HasLineComment() bool { return d.LineComment != "" }

// HasBlockComment reports whether the language has block comment markers
func (d Descriptor) HasBlockComment() bool { return d.BlockStart != "" && d.BlockEnd != "" }

var (
	descriptors = registry.New[Descriptor]()

	extMu    sync.RWMutex
	extIndex = make(map[string]string)
)

// Register adds a descriptor to the table and indexes its extensions.
// Duplicate names or extensions panic; the table is built in init functions
// where such clashes are programming errors.
func Register(d Descriptor) {
	registry.MustRegister(descriptors, d.Name, d)

	extMu.Lock()
	defer extMu.Unlock()
	for _, ext := range d.Extensions {
		ext = strings.ToLower(ext)
		if prev, exists := extIndex[ext]; exists {
			panic("extension " + ext + " already claimed by " + prev)
		}
		extIndex[ext] = d.Name
	}
}

// Lookup maps a file path to its descriptor by extension. Unsupported
// extensions return ErrUnsupportedType.
func Lookup(path string) (Descriptor, error) {
	ext := strings.ToLower(filepath.Ext(path))

	extMu.RLock()
	name, ok := extIndex[ext]
	extMu.RUnlock()

	if !ok {
		return Descriptor{}, errors.Newf(errors.ErrUnsupportedType,
			"no descriptor registered for %q", ext)
	}
	return descriptors.Get(name)
}

// Get retrieves a descriptor by registry name
func Get(name string) (Descriptor, error) {
	return descriptors.Get(name)
}

// Names returns all registered descriptor names, sorted
func Names() []string {
	return descriptors.List()
}

// Supported reports whether path has a registered descriptor
func Supported(path string) bool {
	_, err := Lookup(path)
	return err == nil
}

// Extensions returns every registered extension, sorted
func Extensions() []string {
	extMu.RLock()
	defer extMu.RUnlock()

	exts := make([]string, 0, len(extIndex))
	for ext := range extIndex {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
