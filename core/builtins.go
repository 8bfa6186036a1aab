package core

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// BuiltinFunc runs a builtin with the full token sequence, args[0]
// being the builtin's own name, and returns the continuation signal.
type BuiltinFunc func(s *Shell, args []string) int

// Builtin is one entry of the builtin table.
type Builtin struct {
	Name string
	Run  BuiltinFunc
}

// builtins holds the registered builtins in registration order. Help
// lists them in this order and dispatch scans them in this order.
var builtins []Builtin

func registerBuiltin(name string, fn BuiltinFunc) {
	for _, b := range builtins {
		if b.Name == name {
			panic(fmt.Sprintf("duplicate builtin %q", name))
		}
	}
	builtins = append(builtins, Builtin{Name: name, Run: fn})
}

func init() {
	registerBuiltin("cd", Cd)
	registerBuiltin("help", Help)
	registerBuiltin("exit", Exit)
}

// Cd changes the shell's working directory to args[1].
func Cd(s *Shell, args []string) int {
	if len(args) < 2 {
		fmt.Fprintf(s.Stderr, "%s: expected argument to \"cd\"\n", Name)
		return statusContinue
	}

	if err := os.Chdir(args[1]); err != nil {
		fmt.Fprintf(s.Stderr, "%s: %v\n", Name, err)
	}
	return statusContinue
}

var bannerColor = color.New(color.FgCyan, color.Bold)

// Help prints the banner and the builtin list.
func Help(s *Shell, args []string) int {
	w := s.Stdout
	bannerColor.Fprintln(w, "Dior's LSH")
	fmt.Fprintln(w, "Type program names and arguments, and hit enter.")
	fmt.Fprintln(w, "The following are built in:")

	for _, b := range builtins {
		fmt.Fprintf(w, "  %s\n", b.Name)
	}

	fmt.Fprintln(w, "Use the man command for information on other programs.")
	return statusContinue
}

// Exit requests loop termination. Arguments are ignored.
func Exit(s *Shell, args []string) int {
	return statusExit
}
