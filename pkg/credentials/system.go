package credentials

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"path/filepath"
)

// DefaultShell is the interpreter used for shell-literal helper
// commands when none is configured. On Windows this only works under
// git-bash or WSL.
const DefaultShell = "/bin/sh"

// RunResult is the outcome of a completed helper process.
type RunResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// System abstracts process execution and executable lookup so they can
// be substituted deterministically in tests.
//
// Run and RunShell reserve their error return for commands that never
// started; a process that ran to completion with a non-zero status is
// reported through [RunResult.ExitCode]. Implementations must drain
// both output pipes and release the process on every exit path.
type System interface {
	// Run executes an argv-form command, supplying input on its
	// standard input. The error wraps [ErrExecutableNotFound] when name
	// does not exist.
	Run(ctx context.Context, name string, args []string, input []byte) (RunResult, error)

	// RunShell executes script through the shell.
	RunShell(ctx context.Context, script string, input []byte) (RunResult, error)

	// LookPath searches for an executable on the standard search path.
	LookPath(file string) (string, error)

	// LookPathIn searches for an executable in dir only, returning its
	// absolute path.
	LookPathIn(dir, file string) (string, error)
}

// NewSystem initializes the os/exec backed [System]. shell is the
// interpreter used by RunShell; empty selects [DefaultShell].
func NewSystem(shell string) System {
	if shell == "" {
		shell = DefaultShell
	}
	return &defaultSystem{shell: shell}
}

// defaultSystem is the default implementation of [System].
type defaultSystem struct {
	shell string
}

func (s *defaultSystem) Run(ctx context.Context, name string, args []string, input []byte) (RunResult, error) {
	return runCmd(exec.CommandContext(ctx, name, args...), input)
}

func (s *defaultSystem) RunShell(ctx context.Context, script string, input []byte) (RunResult, error) {
	return runCmd(exec.CommandContext(ctx, s.shell, "-c", script), input)
}

func (s *defaultSystem) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (s *defaultSystem) LookPathIn(dir, file string) (string, error) {
	return exec.LookPath(filepath.Join(dir, file))
}

func runCmd(cmd *exec.Cmd, input []byte) (RunResult, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdin = bytes.NewReader(input)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		return RunResult{
			Stdout:   stdout.Bytes(),
			Stderr:   stderr.Bytes(),
			ExitCode: exitErr.ExitCode(),
		}, nil
	case errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist):
		return RunResult{}, fmt.Errorf("%w: %s", ErrExecutableNotFound, cmd.Path)
	case err != nil:
		return RunResult{}, fmt.Errorf("running %s: %w", cmd.Path, err)
	}

	return RunResult{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}, nil
}
