package domain

import (
	"fmt"
	"strings"
)

// Command is a subprocess invocation. Arguments are passed as a vector, never through a shell.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Stdin is piped to the process when non-empty.
	Stdin string
	// Env overrides entries of the inherited environment.
	Env map[string]string
	// MergeStderr sends stderr into Output, like `2>&1`.
	MergeStderr bool
}

// String renders the command line for logs.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// CommandResult holds the captured output of a finished subprocess.
type CommandResult struct {
	// Output is stdout, or stdout and stderr interleaved when MergeStderr is set.
	Output string
	// Stderr is empty when MergeStderr is set.
	Stderr   string
	ExitCode int
}

// CommandError is returned when a subprocess fails. It keeps the captured output so callers can
// report what the tool said.
type CommandError struct {
	Command string
	Result  CommandResult
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: exit code %d", e.Command, e.Result.ExitCode)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
