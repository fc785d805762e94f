package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gwyn/texidor/internal/config"
	"github.com/gwyn/texidor/internal/debug"
	"github.com/gwyn/texidor/internal/files"
	"github.com/gwyn/texidor/internal/prompt"
)

// Version is the texidor release.
const Version = "0.1.0"

// Streams are the process streams commands read from and write to.
type Streams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
	// Color enables styled prompt descriptions on Out.
	Color bool
	// Fatal is called when In can no longer supply input. It must not
	// return; if it does, the prompt panics instead of reading again. Nil
	// prints the error to ErrOut (or stderr) and exits with status 1.
	Fatal func(error)
}

func (s Streams) errOut() io.Writer {
	if s.ErrOut == nil {
		return os.Stderr
	}
	return s.ErrOut
}

func (s Streams) fatal() func(error) {
	if s.Fatal != nil {
		return s.Fatal
	}
	errOut := s.errOut()
	return func(err error) {
		fmt.Fprintf(errOut, "error: reading input: %v\n", err)
		os.Exit(1)
	}
}

// NewRootCmd creates the root command
func NewRootCmd(s Streams) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "texidor [filename]",
		Short: "texidor - create or open a file interactively",
		Long: `texidor asks whether to create a new file or edit an existing one,
then asks for a file name and opens it.

Passing a file name skips the second question.`,
		Example: `  texidor
  texidor notes.md
  texidor --max-attempts 3 --dir ~/notes`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			debug.InitWithWriter(s.errOut(), cfg.Log.Debug)
			defer func() { _ = debug.Sync() }()

			debug.Log("texidor", "max_attempts", cfg.Prompt.MaxAttempts, "dir", cfg.Files.Dir)

			opts := MenuOptions{}
			if len(args) == 1 {
				opts.Filename = args[0]
			}

			promptOut := s.Out
			if !s.Color {
				promptOut = prompt.NoColor(s.Out)
			}

			runner := &MenuRunner{
				Prompter: &prompt.Loop{Out: promptOut, MaxAttempts: cfg.Prompt.MaxAttempts},
				Input:    prompt.LineSource(s.In, s.fatal()),
				Resolver: &files.Resolver{Dir: cfg.Files.Dir},
				Out:      s.Out,
			}
			return runner.Run(opts)
		},
	}

	cmd.SetIn(s.In)
	cmd.SetOut(s.Out)
	cmd.SetErr(s.errOut())

	flags := cmd.Flags()
	flags.IntP("max-attempts", "n", 0, "Give up after this many invalid answers (0 asks forever)")
	flags.StringP("dir", "C", "", "Directory file names are relative to")
	flags.Bool("debug", false, "Write debug logs to stderr")

	_ = v.BindPFlag("prompt.max_attempts", flags.Lookup("max-attempts"))
	_ = v.BindPFlag("files.dir", flags.Lookup("dir"))
	_ = v.BindPFlag("log.debug", flags.Lookup("debug"))

	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of texidor",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "texidor version %s\n", Version)
		},
	}
}
