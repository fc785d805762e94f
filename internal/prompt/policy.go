// Package prompt implements the interactive prompt loop and the acceptance
// policies it drives.
package prompt

import (
	"fmt"
	"io"
	"strings"
)

// Policy decides whether a raw input line is accepted and renders the
// instruction shown before each attempt.
type Policy interface {
	// Describe writes a one-line instruction to w. It must not affect Select.
	Describe(w io.Writer)
	// Select returns the accepted value and true, or "" and false when the
	// input is rejected. It is a pure function of raw.
	Select(raw string) (string, bool)
}

// Choice accepts only exact, case-sensitive matches against a fixed list of
// options.
type Choice struct {
	description string
	options     []string
}

// NewChoice returns a Choice over options. The slice is copied.
func NewChoice(description string, options ...string) *Choice {
	opts := make([]string, len(options))
	copy(opts, options)
	return &Choice{description: description, options: opts}
}

// Options returns a copy of the candidate list in its original order.
func (c *Choice) Options() []string {
	out := make([]string, len(c.options))
	copy(out, c.options)
	return out
}

func (c *Choice) Describe(w io.Writer) {
	render(w, c.description, fmt.Sprintf("[%s]", strings.Join(c.options, "/")))
}

func (c *Choice) Select(raw string) (string, bool) {
	for _, opt := range c.options {
		if opt == raw {
			return opt, true
		}
	}
	return "", false
}

// FreeText accepts any non-empty input. Whitespace is not trimmed, so "  " is
// accepted; callers that want trimming must do it in their input source.
type FreeText struct {
	description string
}

// NewFreeText returns a FreeText policy.
func NewFreeText(description string) *FreeText {
	return &FreeText{description: description}
}

func (f *FreeText) Describe(w io.Writer) {
	render(w, f.description, "")
}

func (f *FreeText) Select(raw string) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	return raw, true
}

// Compile-time checks: both variants must implement Policy
var (
	_ Policy = (*Choice)(nil)
	_ Policy = (*FreeText)(nil)
)
