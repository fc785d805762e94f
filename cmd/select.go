package cmd

import (
	"fmt"

	"github.com/gwyn/texidor/internal/debug"
	"github.com/gwyn/texidor/internal/files"
	"github.com/gwyn/texidor/internal/prompt"
)

// Menu actions offered by SelectIntent.
const (
	ActionCreate = "create"
	ActionEdit   = "edit"
)

var actionIntents = map[string]files.Intent{
	ActionCreate: files.IntentNew,
	ActionEdit:   files.IntentExisting,
}

// SelectIntent asks whether to create a new file or edit an existing one.
func SelectIntent(p Prompter, in prompt.InputSource) (files.Intent, error) {
	policy := prompt.NewChoice("Action", ActionCreate, ActionEdit)

	debug.Log("SelectIntent", "action", "prompting_user", "options", policy.Options())
	action, err := p.Prompt(policy, in)
	if err != nil {
		debug.Error("SelectIntent", err, "stage", "prompt_select")
		return 0, fmt.Errorf("select action: %w", err)
	}

	intent, ok := actionIntents[action]
	if !ok {
		// Only reachable with a Prompter that ignores the policy.
		return 0, fmt.Errorf("unsupported action %q", action)
	}
	debug.Log("SelectIntent", "selected", action, "intent", intent.String())
	return intent, nil
}

// SelectFilename asks for the name of the file to work on.
func SelectFilename(p Prompter, in prompt.InputSource) (string, error) {
	name, err := p.Prompt(prompt.NewFreeText("File name"), in)
	if err != nil {
		debug.Error("SelectFilename", err, "stage", "prompt_text")
		return "", fmt.Errorf("select file name: %w", err)
	}
	return name, nil
}
