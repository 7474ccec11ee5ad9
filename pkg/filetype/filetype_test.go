package filetype_test

import (
	"testing"

	"github.com/arthur-debert/autoheader/pkg/errors"
	"github.com/arthur-debert/autoheader/pkg/filetype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		path string
		name string
	}{
		{"script.sh", "bash"},
		{"script.bash", "bash"},
		{"module.py", "python"},
		{"stub.pyi", "python"},
		{"Deploy.ps1", "powershell"},
		{"Module.psm1", "powershell"},
		{"config.yml", "yaml"},
		{"config.yaml", "yaml"},
		{"main.tf", "terraform"},
		{"prod.tfvars", "tfvars"},
		{"README.md", "markdown"},
		{"main.go", "go"},
		{"pyproject.toml", "toml"},
		{"nested/dir/file.sh", "bash"},
		{"UPPER.SH", "bash"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			desc, err := filetype.Lookup(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.name, desc.Name)
		})
	}
}

func TestLookup_Unsupported(t *testing.T) {
	for _, path := range []string{"binary.exe", "noextension", "archive.tar.gz", "style.css"} {
		_, err := filetype.Lookup(path)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedType), "path: %s", path)
	}
	assert.False(t, filetype.Supported("binary.exe"))
	assert.True(t, filetype.Supported("ok.sh"))
}

func TestDescriptor_CommentSyntax(t *testing.T) {
	t.Run("bash_line_only", func(t *testing.T) {
		d, err := filetype.Get("bash")
		require.NoError(t, err)
		assert.True(t, d.HasLineComment())
		assert.False(t, d.HasBlockComment())
		assert.True(t, d.AllowShebang)
		assert.Empty(t, d.Directives)
	})

	t.Run("powershell_block_preferred", func(t *testing.T) {
		d, err := filetype.Get("powershell")
		require.NoError(t, err)
		assert.True(t, d.HasBlockComment())
		assert.True(t, d.PreferBlock)
		assert.Equal(t, "<#", d.BlockStart)
		assert.Equal(t, "#>", d.BlockEnd)
		assert.False(t, d.AllowShebang)
	})

	t.Run("terraform_block_with_star_prefix", func(t *testing.T) {
		d, err := filetype.Get("terraform")
		require.NoError(t, err)
		assert.Equal(t, " * ", d.BlockLinePrefix)
	})
}

func TestDescriptor_Directives(t *testing.T) {
	t.Run("powershell_requires", func(t *testing.T) {
		d, err := filetype.Get("powershell")
		require.NoError(t, err)

		byName := make(map[string]filetype.Directive)
		for _, dir := range d.Directives {
			byName[dir.Name] = dir
		}

		assert.True(t, byName["requires"].Start.MatchString("#Requires -Version 5.1"))
		assert.True(t, byName["requires"].Start.MatchString("#requires -Modules Az"))
		assert.False(t, byName["requires"].Start.MatchString("# Requires care"))
		assert.True(t, byName["param"].Balanced)
		assert.NotNil(t, byName["script-info"].End)
	})

	t.Run("yaml_front_matter", func(t *testing.T) {
		d, err := filetype.Get("yaml")
		require.NoError(t, err)
		assert.True(t, d.Directives[0].FrontMatter)
		assert.True(t, d.Directives[0].Start.MatchString("---"))
		assert.False(t, d.Directives[0].Start.MatchString("--- foo"))
	})

	t.Run("go_build_constraints", func(t *testing.T) {
		d, err := filetype.Get("go")
		require.NoError(t, err)
		assert.True(t, d.Directives[0].Start.MatchString("//go:build linux"))
		assert.True(t, d.Directives[1].Start.MatchString("// +build linux"))
	})
}

func TestRegister_DuplicateExtensionPanics(t *testing.T) {
	assert.Panics(t, func() {
		filetype.Register(filetype.Descriptor{
			Name:        "shell-clone",
			Extensions:  []string{".sh"},
			LineComment: "#",
		})
	})
}

func TestExtensions(t *testing.T) {
	exts := filetype.Extensions()
	assert.Contains(t, exts, ".sh")
	assert.Contains(t, exts, ".ps1")
	assert.Contains(t, exts, ".tf")
	assert.GreaterOrEqual(t, len(exts), 10)
}
