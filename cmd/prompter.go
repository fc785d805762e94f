package cmd

import "github.com/gwyn/texidor/internal/prompt"

// Prompter handles interactive user prompts.
type Prompter interface {
	Prompt(p prompt.Policy, in prompt.InputSource) (string, error)
}

// Compile-time check: prompt.Loop must implement Prompter
var _ Prompter = (*prompt.Loop)(nil)
