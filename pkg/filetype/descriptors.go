package filetype

import "regexp"

// Built-in descriptor table. Ordering rules per language:
//
//   - bash: a shebang stays on the first line, header goes directly after it
//   - python: shebang, encoding cookie and __future__ imports stay first
//   - powershell: #Requires, using, [CmdletBinding], param(...) and
//     <#PSScriptInfo#> blocks all stay ahead of the header
//   - yaml: the --- document fence and %YAML/%TAG directives stay first,
//     the header becomes the first comment after the fence
//   - markdown: a leading --- front-matter block stays first
//   - go: build constraint lines stay ahead of the header, and a package
//     doc comment is never mistaken for one
func init() {
	Register(Descriptor{
		Name:         "bash",
		Extensions:   []string{".sh", ".bash"},
		LineComment:  "#",
		AllowShebang: true,
	})

	Register(Descriptor{
		Name:         "python",
		Extensions:   []string{".py", ".pyi"},
		LineComment:  "#",
		AllowShebang: true,
		Directives: []Directive{
			{Name: "encoding", Start: regexp.MustCompile(`^#\s*-\*-.*-\*-\s*$`)},
			{Name: "future-import", Start: regexp.MustCompile(`^from __future__ import\s`)},
		},
		SeparateBlank: true,
	})

	Register(Descriptor{
		Name:            "powershell",
		Extensions:      []string{".ps1", ".psm1"},
		LineComment:     "#",
		BlockStart:      "<#",
		BlockEnd:        "#>",
		BlockLinePrefix: "",
		PreferBlock:     true,
		Directives: []Directive{
			{Name: "requires", Start: regexp.MustCompile(`(?i)^#requires\s`)},
			{Name: "using", Start: regexp.MustCompile(`(?i)^using\s+(namespace|module)\s`)},
			{Name: "script-info", Start: regexp.MustCompile(`(?i)^<#PSScriptInfo`), End: regexp.MustCompile(`#>\s*$`)},
			{Name: "cmdlet-binding", Start: regexp.MustCompile(`(?i)^\[CmdletBinding.*\]$`)},
			{Name: "param", Start: regexp.MustCompile(`(?i)^param\s*\(`), Balanced: true},
		},
	})

	Register(Descriptor{
		Name:        "yaml",
		Extensions:  []string{".yml", ".yaml"},
		LineComment: "#",
		Directives: []Directive{
			{Name: "document-start", Start: regexp.MustCompile(`^---\s*$`), FrontMatter: true},
			{Name: "yaml-directive", Start: regexp.MustCompile(`^%(YAML|TAG)\b`)},
		},
		SeparateBlank: true,
	})

	Register(Descriptor{
		Name:            "terraform",
		Extensions:      []string{".tf"},
		BlockStart:      "/*",
		BlockEnd:        "*/",
		BlockLinePrefix: " * ",
		PreferBlock:     true,
		SeparateBlank:   true,
	})

	Register(Descriptor{
		Name:          "tfvars",
		Extensions:    []string{".tfvars"},
		LineComment:   "#",
		SeparateBlank: true,
	})

	Register(Descriptor{
		Name:            "markdown",
		Extensions:      []string{".md", ".markdown"},
		BlockStart:      "<!--",
		BlockEnd:        "-->",
		BlockLinePrefix: "",
		PreferBlock:     true,
		Directives: []Directive{
			{
				Name:        "front-matter",
				Start:       regexp.MustCompile(`^---\s*$`),
				End:         regexp.MustCompile(`^(---|\.\.\.)\s*$`),
				FrontMatter: true,
				AtTopOnly:   true,
			},
		},
		SeparateBlank: true,
	})

	Register(Descriptor{
		Name:        "go",
		Extensions:  []string{".go"},
		LineComment: "//",
		Directives: []Directive{
			{Name: "build-constraint", Start: regexp.MustCompile(`^//go:[a-z]+`)},
			{Name: "legacy-build-tag", Start: regexp.MustCompile(`^// \+build\s`)},
		},
		DocComment:    regexp.MustCompile(`^// (Package|Command) [A-Za-z_]`),
		SeparateBlank: true,
	})

	Register(Descriptor{
		Name:          "toml",
		Extensions:    []string{".toml"},
		LineComment:   "#",
		SeparateBlank: true,
	})
}
