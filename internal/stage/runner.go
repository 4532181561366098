// Package stage invokes the external conversion tools and locates the
// artifacts they produce.
package stage

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Command is a fully-built invocation of one external tool. Builders in this
// package fix the argument order so callers cannot get it wrong.
type Command struct {
	Name string
	Args []string

	// Hint is shown when the binary is not installed.
	Hint string
}

// String returns the command line for diagnostics.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Runner executes commands. The production implementation is Exec; tests
// substitute fakes.
type Runner interface {
	Run(Command) error
}

// ExecMissingError reports a required external tool that is not on PATH.
type ExecMissingError struct {
	Name string
	Hint string
}

func (e *ExecMissingError) Error() string {
	msg := fmt.Sprintf("%s is not installed or not on PATH", e.Name)
	if e.Hint != "" {
		msg += "\n" + e.Hint
	}
	return msg
}

// StageError reports an external tool that ran and exited non-zero. Output
// carries the tool's combined stdout and stderr verbatim.
type StageError struct {
	Command  string
	ExitCode int
	Output   string
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed (exit %d):\n%s", e.Command, e.ExitCode, e.Output)
}

// Exec runs commands as real processes, capturing combined output and
// waiting for completion. Failures are terminal for the render; there are
// no retries.
type Exec struct{}

func (Exec) Run(c Command) error {
	cmd := exec.Command(c.Name, c.Args...)
	out, err := cmd.CombinedOutput()
	if err == nil {
		return nil
	}

	if errors.Is(err, exec.ErrNotFound) {
		return &ExecMissingError{Name: c.Name, Hint: c.Hint}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &StageError{
			Command:  c.String(),
			ExitCode: exitErr.ExitCode(),
			Output:   string(out),
		}
	}

	return fmt.Errorf("run %s: %w", c.Name, err)
}
