// Package fileio owns all file bytes for the pipeline: it reads a file
// into lines while remembering its line-ending style, and writes decided
// content back atomically. The core pipeline never touches the filesystem.
package fileio

import (
	"bytes"
	"os"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/arthur-debert/autoheader/pkg/errors"
)

// Content is one file's text split into lines plus the formatting detail
// needed to write it back byte-compatibly.
type Content struct {
	Lines []string

	// EOL is the detected line ending, "\n" or "\r\n"
	EOL string

	// TrailingNewline records whether the file ended with a newline
	TrailingNewline bool
}

// Read loads path into a Content. Line endings are detected, not assumed:
// a file with any CRLF ending is treated as CRLF throughout.
func Read(path string) (Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Content{}, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path)
	}
	return FromBytes(data), nil
}

// FromBytes splits raw bytes into a Content
func FromBytes(data []byte) Content {
	c := Content{
		EOL:             "\n",
		TrailingNewline: true,
	}
	if len(data) == 0 {
		return c
	}
	if bytes.Contains(data, []byte("\r\n")) {
		c.EOL = "\r\n"
	}
	c.TrailingNewline = data[len(data)-1] == '\n'

	text := string(data)
	if c.TrailingNewline {
		text = strings.TrimSuffix(text, "\n")
		text = strings.TrimSuffix(text, "\r")
	}
	for _, line := range strings.Split(text, "\n") {
		c.Lines = append(c.Lines, strings.TrimSuffix(line, "\r"))
	}
	return c
}

// WithLines returns a copy of c carrying new lines but the same line-ending
// style and trailing-newline convention
func (c Content) WithLines(lines []string) Content {
	return Content{Lines: lines, EOL: c.EOL, TrailingNewline: c.TrailingNewline}
}

// Bytes re-joins the lines using the detected line-ending style
func (c Content) Bytes() []byte {
	if len(c.Lines) == 0 {
		return nil
	}
	joined := strings.Join(c.Lines, c.EOL)
	if c.TrailingNewline {
		joined += c.EOL
	}
	return []byte(joined)
}

// Write replaces path's content atomically: the new bytes are written to a
// temp file which then renames over the original, so a crash never leaves
// a half-written file. Existing permissions, including executable bits on
// scripts, are preserved.
func Write(path string, c Content) error {
	if err := atomic.WriteFile(path, bytes.NewReader(c.Bytes())); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}
	return nil
}
