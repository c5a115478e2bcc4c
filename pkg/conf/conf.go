// Package conf holds the raw configuration text model shared by the
// analyzer and the validator. A Config is an ordered, immutable sequence
// of source lines; all interpretation happens in the extractors.
package conf

import (
	"fmt"
	"os"
	"strings"

	"github.com/frrlint/frrlint/pkg/util"
)

// Line is a single source line with its 1-indexed position.
// Text is trimmed of leading and trailing whitespace; the raw line is
// kept so reports can echo the original.
type Line struct {
	Num  int    `json:"num"`
	Text string `json:"text"`
	Raw  string `json:"-"`
}

// IsComment reports whether the line is a comment (starts with '!').
func (l Line) IsComment() bool {
	return strings.HasPrefix(l.Text, "!")
}

// IsBlank reports whether the line is empty after trimming.
func (l Line) IsBlank() bool {
	return l.Text == ""
}

// Config is an ordered sequence of configuration lines loaded from one
// file. It is never mutated after load; extractors share it freely.
type Config struct {
	path  string
	lines []Line
}

// Load reads a configuration file into a Config. A missing or unreadable
// file is an error; callers that tolerate absent files check with
// os.Stat first or ignore the error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, util.NewLoadError(path, err.Error())
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(path, string(data)), nil
}

// Parse builds a Config from raw text. Used directly by tests and by
// Load after reading a file.
func Parse(path, text string) *Config {
	// Preserve line numbering for a trailing newline-less final line.
	raw := strings.Split(text, "\n")
	if n := len(raw); n > 0 && raw[n-1] == "" {
		raw = raw[:n-1]
	}

	c := &Config{path: path, lines: make([]Line, 0, len(raw))}
	for i, r := range raw {
		c.lines = append(c.lines, Line{
			Num:  i + 1,
			Text: strings.TrimSpace(r),
			Raw:  r,
		})
	}
	return c
}

// Empty returns a Config with no lines, used when an optional input file
// is absent.
func Empty(path string) *Config {
	return &Config{path: path}
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string {
	return c.path
}

// Len returns the number of lines.
func (c *Config) Len() int {
	return len(c.lines)
}

// Lines returns the full line sequence. The returned slice is shared;
// callers must not modify it.
func (c *Config) Lines() []Line {
	return c.lines
}
