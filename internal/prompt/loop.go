package prompt

import (
	"io"

	"github.com/gwyn/texidor/internal/debug"
)

// Loop repeatedly describes a policy, reads one input and applies the policy
// until the input is accepted.
type Loop struct {
	// Out receives the policy description before every attempt. A nil Out
	// discards it.
	Out io.Writer
	// MaxAttempts bounds the number of inputs read. Zero or less means the
	// loop never gives up.
	MaxAttempts int
}

// Unbounded returns a Loop that prompts until the policy accepts.
func Unbounded(out io.Writer) *Loop {
	return &Loop{Out: out}
}

// Bounded returns a Loop that fails with a *TimeoutError after maxAttempts
// rejected inputs.
func Bounded(out io.Writer, maxAttempts int) *Loop {
	return &Loop{Out: out, MaxAttempts: maxAttempts}
}

// Bounded reports whether the loop gives up after MaxAttempts.
func (l *Loop) Bounded() bool {
	return l.MaxAttempts > 0
}

// Prompt runs the loop. in is called exactly once per attempt, and never again
// after an input is accepted. Rejected inputs are not surfaced; in unbounded
// mode the only way out is acceptance or the input source ending the process.
func (l *Loop) Prompt(p Policy, in InputSource) (string, error) {
	debug.Log("Loop.Prompt", "max_attempts", l.MaxAttempts)

	for attempt := 1; !l.Bounded() || attempt <= l.MaxAttempts; attempt++ {
		p.Describe(l.Out)
		raw := in()

		if v, ok := p.Select(raw); ok {
			debug.Log("Loop.Prompt", "attempt", attempt, "result", "accepted")
			return v, nil
		}
		debug.Log("Loop.Prompt", "attempt", attempt, "result", "rejected", "input", raw)
	}

	err := newTimeoutError(l.MaxAttempts)
	debug.Error("Loop.Prompt", err, "stage", "exhausted")
	return "", err
}
