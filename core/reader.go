package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/abiosoft/readline"
)

// LineReader produces one command line per call, blocking until a full
// line is available. It reports io.EOF when input is exhausted, which
// the loop driver treats as the shell's normal exit path.
type LineReader interface {
	// ReadLine shows the prompt and returns the next line with its
	// trailing newline stripped.
	ReadLine(prompt string) (string, error)
	io.Closer
}

// initialLineSize is the starting capacity for buffered line storage;
// longer lines grow the buffer geometrically, there is no upper bound.
const initialLineSize = 1024

// bufferedReader reads newline-terminated lines from a plain stream,
// writing the prompt to out before each read. Used when stdin is not a
// terminal, e.g. piped input.
type bufferedReader struct {
	in  *bufio.Reader
	out io.Writer

	// drained marks that the final unterminated line was already
	// handed back and the next call must report EOF.
	drained bool
}

// NewBufferedReader wraps in as a LineReader that prompts on out.
func NewBufferedReader(in io.Reader, out io.Writer) LineReader {
	return &bufferedReader{
		in:  bufio.NewReaderSize(in, initialLineSize),
		out: out,
	}
}

func (r *bufferedReader) ReadLine(prompt string) (string, error) {
	if r.drained {
		return "", io.EOF
	}

	fmt.Fprint(r.out, prompt)

	line, err := r.in.ReadString('\n')
	switch {
	case err == nil:
		// Full line.

	case errors.Is(err, io.EOF):
		if line == "" {
			return "", io.EOF
		}
		// Input ended mid-line. Hand the partial line back and
		// report EOF on the next call.
		r.drained = true

	default:
		return "", err
	}

	line = trimLineEnding(line)
	return line, nil
}

func (r *bufferedReader) Close() error {
	return nil
}

func trimLineEnding(line string) string {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line
}

// terminalReader wraps readline for interactive use, giving line
// editing and history when stdin is a terminal.
type terminalReader struct {
	rl *readline.Instance
}

// NewTerminalReader creates an interactive LineReader. historyFile may
// be empty to keep history in memory only.
func NewTerminalReader(historyFile string) (LineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile: historyFile,
	})
	if err != nil {
		return nil, err
	}
	return &terminalReader{rl: rl}, nil
}

func (r *terminalReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)

	for {
		line, err := r.rl.Readline()
		if err == readline.ErrInterrupt {
			// Ctrl-C at the prompt discards the line.
			continue
		}
		return line, err
	}
}

func (r *terminalReader) Close() error {
	return r.rl.Close()
}
