package credentials

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"unicode"

	"mvdan.cc/sh/v3/shell"
)

// helperPrefix is prepended to short helper names to form the
// executable name, e.g. "store" becomes "git-credential-store".
const helperPrefix = "git-credential-"

// Credentials is the key=value mapping produced by a helper. A mapping
// returned by [Helper.Get] always contains the username and password
// keys; any other keys the helper emitted are preserved unvalidated.
type Credentials map[string]string

// Username returns the username value.
func (c Credentials) Username() string { return c["username"] }

// Password returns the password value.
func (c Credentials) Password() string { return c["password"] }

// Helper invokes a git credential helper program.
//
// Usage:
//
//	helper, err := credentials.NewHelper("store") // use `git credential-store`
//	creds, err := helper.Get(ctx, "https://github.com/act3-ai/aprivaterepo")
//	username, password := creds.Username(), creds.Password()
type Helper struct {
	command string
	shell   bool // command is a shell literal, run it through the shell
	git     string
	sys     System
}

// Option configures a [Helper].
type Option func(*Helper)

// WithSystem overrides the process-execution collaborator.
func WithSystem(sys System) Option {
	return func(h *Helper) { h.sys = sys }
}

// WithGit overrides the executable queried for its helper directory
// when a short-name helper is not on the search path. Defaults to
// "git".
func WithGit(git string) Option {
	return func(h *Helper) { h.git = git }
}

// NewHelper creates a Helper from a credential.helper command string.
// The command must be non-empty; a present-but-empty configuration
// value is rejected here rather than failing obscurely at lookup time.
func NewHelper(command string, opts ...Option) (*Helper, error) {
	if command == "" {
		return nil, errors.New("empty credential helper command")
	}

	h := &Helper{
		command: command,
		shell:   command[0] == '!',
		git:     "git",
		sys:     NewSystem(""),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Resolve derives the invocation for the helper command. Resolution is
// recomputed on every call so search-path changes between calls are
// honored. A helper executable that cannot be found is not an error
// here; that surfaces uniformly at invocation time.
func (h *Helper) Resolve(ctx context.Context) (Invocation, error) {
	if h.shell {
		return ShellInvocation(h.command[1:]), nil
	}

	argv, err := shell.Fields(h.command, nil)
	if err != nil {
		return nil, fmt.Errorf("splitting helper command %q: %w", h.command, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("blank helper command %q", h.command)
	}
	if runtime.GOOS == "windows" {
		// backslash paths are mangled by the POSIX lexer
		argv[0] = strings.Fields(h.command)[0]
	}

	if filepath.IsAbs(argv[0]) {
		return ArgvInvocation(argv), nil
	}

	executable := helperPrefix + argv[0]
	if _, err := h.sys.LookPath(executable); err != nil {
		if _, err := h.sys.LookPath(h.git); err == nil {
			// the helper might be a C git helper living in GIT_EXEC_PATH
			if dir, err := h.execPath(ctx); err == nil {
				if path, err := h.sys.LookPathIn(dir, executable); err == nil {
					executable = path
				}
			}
		}
	}

	argv[0] = executable
	return ArgvInvocation(argv), nil
}

// execPath queries git for the directory its helper executables are
// installed in.
func (h *Helper) execPath(ctx context.Context) (string, error) {
	res, err := h.sys.Run(ctx, h.git, []string{"--exec-path"}, nil)
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		return "", fmt.Errorf("%s --exec-path exited with status %d", h.git, res.ExitCode)
	}
	return strings.TrimSpace(string(res.Stdout)), nil
}

// Get requests the credential for url from the helper. Exactly one
// helper process is spawned and the call blocks until it exits; no
// timeout is imposed beyond cancellation of ctx.
//
// Every way of failing to obtain a complete credential reports
// [ErrCredentialNotFound]: the helper executable could not be started,
// the process exited non-zero (the error carries its stderr), or the
// output was missing the username or password keys.
func (h *Helper) Get(ctx context.Context, url string) (Credentials, error) {
	inv, err := h.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	inv = inv.withVerb("get")

	input, err := requestBody(url)
	if err != nil {
		return nil, err
	}

	res, err := inv.run(ctx, h.sys, input)
	switch {
	case errors.Is(err, ErrExecutableNotFound):
		return nil, fmt.Errorf("%w: helper not found", ErrCredentialNotFound)
	case err != nil:
		return nil, fmt.Errorf("%w: invoking helper: %s", ErrCredentialNotFound, err)
	case res.ExitCode != 0:
		return nil, fmt.Errorf("%w: %s", ErrCredentialNotFound, bytes.TrimSpace(res.Stderr))
	}

	creds := parseResponse(res.Stdout)
	if _, ok := creds["username"]; !ok {
		return nil, fmt.Errorf("%w: helper output is missing credentials", ErrCredentialNotFound)
	}
	if _, ok := creds["password"]; !ok {
		return nil, fmt.Errorf("%w: helper output is missing credentials", ErrCredentialNotFound)
	}
	return creds, nil
}

// Store would persist a credential in the helper's storage. It is not
// implemented and always reports [ErrUnsupportedOperation], never
// silently succeeding, so callers can tell "helper cannot store" apart
// from a store that worked.
func (h *Helper) Store(context.Context, Credentials) error {
	return fmt.Errorf("%w: store", ErrUnsupportedOperation)
}

// Erase would remove a matching credential, if any, from the helper's
// storage. Like [Helper.Store] it always reports
// [ErrUnsupportedOperation].
func (h *Helper) Erase(context.Context, string) error {
	return fmt.Errorf("%w: erase", ErrUnsupportedOperation)
}

// requestBody builds the single-line get request. Non-ASCII URLs are a
// caller error and are never silently transcoded.
func requestBody(url string) ([]byte, error) {
	for i := 0; i < len(url); i++ {
		if url[i] > unicode.MaxASCII {
			return nil, fmt.Errorf("url %q is not ASCII", url)
		}
	}
	return []byte("url=" + url + lineSeparator()), nil
}

func lineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// parseResponse accumulates the key=value lines of a helper response.
// Lines that are not exactly one key=value pair are helper chatter and
// are skipped; the last occurrence of a duplicated key wins.
func parseResponse(stdout []byte) Credentials {
	creds := make(Credentials)
	scanner := bufio.NewScanner(bytes.NewReader(bytes.TrimSpace(stdout)))
	for scanner.Scan() {
		parts := strings.Split(scanner.Text(), "=")
		if len(parts) != 2 {
			continue
		}
		creds[parts[0]] = parts[1]
	}
	return creds
}
