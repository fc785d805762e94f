package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/gwyn/texidor/internal/debug"
	"github.com/gwyn/texidor/internal/files"
	"github.com/gwyn/texidor/internal/prompt"
)

// MenuOptions contains the parsed command line options for the menu.
type MenuOptions struct {
	// Filename skips the file name prompt when set.
	Filename string
}

// FileResolver defines the interface for turning a name and intent into a
// file handle.
type FileResolver interface {
	Resolve(name string, intent files.Intent) (*os.File, error)
}

// MenuRunner runs the two-step create/edit interaction.
type MenuRunner struct {
	Prompter Prompter
	Input    prompt.InputSource
	Resolver FileResolver
	Out      io.Writer
}

// Open asks for an action and a file name, then resolves the file. The caller
// must close the returned file. Resolver errors are returned unchanged.
func (r *MenuRunner) Open(opts MenuOptions) (*os.File, files.Intent, error) {
	debug.Log("MenuRunner.Open", "filename", opts.Filename)

	intent, err := SelectIntent(r.Prompter, r.Input)
	if err != nil {
		return nil, 0, err
	}

	name := opts.Filename
	if name == "" {
		name, err = SelectFilename(r.Prompter, r.Input)
		if err != nil {
			return nil, intent, err
		}
	}

	f, err := r.Resolver.Resolve(name, intent)
	if err != nil {
		debug.Error("MenuRunner.Open", err, "stage", "resolve", "name", name)
		return nil, intent, err
	}
	return f, intent, nil
}

// Run executes the menu and reports what happened to the file.
func (r *MenuRunner) Run(opts MenuOptions) error {
	f, intent, err := r.Open(opts)
	if err != nil {
		return err
	}
	defer f.Close()

	switch intent {
	case files.IntentNew:
		fmt.Fprintf(r.Out, "Created %s\n", f.Name())
	default:
		info, err := f.Stat()
		if err != nil {
			return err
		}
		fmt.Fprintf(r.Out, "Opened %s (%d bytes)\n", f.Name(), info.Size())
	}

	debug.Log("MenuRunner.Run", "result", "success", "intent", intent.String(), "path", f.Name())
	return nil
}
