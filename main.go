package main

import (
	"fmt"
	"os"

	"github.com/cli/go-gh/v2/pkg/term"

	"github.com/gwyn/texidor/cmd"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	t := term.FromEnv()

	root := cmd.NewRootCmd(cmd.Streams{
		In:     t.In(),
		Out:    t.Out(),
		ErrOut: t.ErrOut(),
		Color:  t.IsColorEnabled(),
	})
	root.SetArgs(args)
	return root.Execute()
}
