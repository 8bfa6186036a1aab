package core

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/diorchen/shell/core/config"
	"github.com/diorchen/shell/core/logger"
)

// Name is the shell's name, used to prefix diagnostics.
const Name = "lsh"

// Continuation signals returned by builtins and the launcher. The loop
// keeps running while the signal is nonzero.
const (
	statusExit     = 0
	statusContinue = 1
)

// Shell drives the read, tokenize, dispatch loop over a line source.
type Shell struct {
	Reader LineReader
	Stdout io.Writer
	Stderr io.Writer
	Config *config.Configuration
	Log    *logger.SessionLogger

	// launch runs an external program; swapped out in tests.
	launch func(args []string) int
}

// NewShell creates a shell reading from reader. Output defaults to the
// process's stdout and stderr and logging is discarded until wired up.
func NewShell(reader LineReader, cfg *config.Configuration) *Shell {
	s := &Shell{
		Reader: reader,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Config: cfg,
		Log:    logger.Discard().NewSession(),
	}
	s.launch = s.launchProcess
	return s
}

// Run repeats {prompt, read, tokenize, dispatch} until exit is
// requested or input runs out. End of input is the shell's normal exit
// path and yields a nil error.
func (s *Shell) Run() error {
	if motd := s.Config.Motd; motd != "" {
		fmt.Fprintln(s.Stdout, motd)
	}

	for {
		line, err := s.Reader.ReadLine(s.Config.Prompt)
		switch {
		case errors.Is(err, io.EOF):
			return nil

		case err != nil:
			// Reported by the caller; reading is not recoverable.
			return fmt.Errorf("%s: %w", Name, err)
		}

		if s.Execute(Tokenize(line)) == statusExit {
			return nil
		}
	}
}

// Execute dispatches one tokenized command line and returns the
// continuation signal. An empty line is a no-op. The first token is
// matched against the builtin table exactly and case-sensitively;
// anything else is launched as an external program.
func (s *Shell) Execute(args []string) int {
	if len(args) == 0 {
		return statusContinue
	}

	for _, b := range builtins {
		if b.Name == args[0] {
			s.Log.BuiltinRun(args)
			return b.Run(s, args)
		}
	}

	return s.launch(args)
}
