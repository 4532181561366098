package stage

import (
	"errors"
	"strings"
	"testing"
)

func TestExecSuccess(t *testing.T) {
	err := Exec{}.Run(Command{Name: "sh", Args: []string{"-c", "exit 0"}})
	if err != nil {
		t.Fatalf("Run = %v, want nil", err)
	}
}

func TestExecMissingBinary(t *testing.T) {
	cmd := Command{
		Name: "abcforge-no-such-tool",
		Hint: "install the thing",
	}
	err := Exec{}.Run(cmd)

	var missing *ExecMissingError
	if !errors.As(err, &missing) {
		t.Fatalf("err = %v, want *ExecMissingError", err)
	}
	if missing.Name != "abcforge-no-such-tool" {
		t.Errorf("Name = %q", missing.Name)
	}
	if !strings.Contains(missing.Error(), "install the thing") {
		t.Errorf("error should carry the install hint: %v", missing)
	}
}

func TestExecNonZeroExit(t *testing.T) {
	cmd := Command{
		Name: "sh",
		Args: []string{"-c", "echo tool diagnostics; echo more on stderr >&2; exit 3"},
	}
	err := Exec{}.Run(cmd)

	var stageErr *StageError
	if !errors.As(err, &stageErr) {
		t.Fatalf("err = %v, want *StageError", err)
	}
	if stageErr.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", stageErr.ExitCode)
	}
	// Combined output, verbatim, both streams.
	if !strings.Contains(stageErr.Output, "tool diagnostics") {
		t.Errorf("Output missing stdout text: %q", stageErr.Output)
	}
	if !strings.Contains(stageErr.Output, "more on stderr") {
		t.Errorf("Output missing stderr text: %q", stageErr.Output)
	}
	if !strings.HasPrefix(stageErr.Command, "sh ") {
		t.Errorf("Command = %q, want full command line", stageErr.Command)
	}
}

func TestCommandString(t *testing.T) {
	c := Command{Name: "abc2midi", Args: []string{"in.abc", "-o", "out.mid"}}
	if got := c.String(); got != "abc2midi in.abc -o out.mid" {
		t.Errorf("String() = %q", got)
	}
}
