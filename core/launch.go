package core

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// launchProcess forks a child running the named external program and
// blocks until it exits or dies from a signal. args is used unchanged
// as the child's argument vector, program name first. The child
// inherits the shell's environment, working directory and standard
// streams.
//
// The shell's continuation never depends on the child's exit status;
// a failed command leaves the loop running just like a successful one.
func (s *Shell) launchProcess(args []string) int {
	path, err := exec.LookPath(args[0])
	if err != nil {
		fmt.Fprintf(s.Stderr, "%s: %v\n", Name, err)
		s.Log.LaunchError(args, err)
		return statusContinue
	}

	pid, err := syscall.ForkExec(path, args, &syscall.ProcAttr{
		Env:   os.Environ(),
		Files: []uintptr{uintptr(syscall.Stdin), uintptr(syscall.Stdout), uintptr(syscall.Stderr)},
	})
	if err != nil {
		fmt.Fprintf(s.Stderr, "%s: %v\n", Name, err)
		s.Log.LaunchError(args, err)
		return statusContinue
	}

	var ws syscall.WaitStatus
	for {
		_, err := syscall.Wait4(pid, &ws, syscall.WUNTRACED, nil)
		if err == syscall.EINTR {
			continue
		}
		if err != nil {
			fmt.Fprintf(s.Stderr, "%s: wait: %v\n", Name, err)
			return statusContinue
		}

		if ws.Exited() || ws.Signaled() {
			break
		}
		// The child stopped. There is no job control, so keep
		// waiting until it resumes and finishes or is killed.
	}

	s.Log.ProgramRun(args, ws.ExitStatus())
	return statusContinue
}
