package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// InputSource returns one line of user input per call, without its trailing
// newline. The loop calls it again for every attempt.
type InputSource func() string

// LineSource reads one line from r per call. Lines may be of any length; a
// final line without a newline is still returned. When r is exhausted or
// fails, fatal is called. There is no way to continue a prompt without input,
// so fatal must end the process; if it returns anyway, the source panics
// rather than feeding the loop empty input forever.
func LineSource(r io.Reader, fatal func(error)) InputSource {
	br := bufio.NewReader(r)
	return func() string {
		line, err := br.ReadString('\n')
		if err == nil || (err == io.EOF && line != "") {
			line = strings.TrimSuffix(line, "\n")
			return strings.TrimSuffix(line, "\r")
		}
		fatal(err)
		panic(fmt.Errorf("prompt: input source failed: %w", err))
	}
}

// Lines returns a scripted source that yields values in order. It panics when
// called more times than there are values.
func Lines(values ...string) InputSource {
	next := 0
	return func() string {
		if next >= len(values) {
			panic(fmt.Sprintf("prompt: scripted input exhausted after %d lines", len(values)))
		}
		v := values[next]
		next++
		return v
	}
}
