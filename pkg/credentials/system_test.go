//go:build !windows

package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystem_Run(t *testing.T) {
	sys := NewSystem("")

	t.Run("Success", func(t *testing.T) {
		res, err := sys.Run(t.Context(), "sh", []string{"-c", "cat"}, []byte("url=https://example.com\n"))
		assert.NoError(t, err)
		assert.Zero(t, res.ExitCode)
		assert.Equal(t, "url=https://example.com\n", string(res.Stdout))
	})

	t.Run("Non-Zero Exit", func(t *testing.T) {
		res, err := sys.Run(t.Context(), "sh", []string{"-c", "echo boom >&2; exit 3"}, nil)
		assert.NoError(t, err)
		assert.Equal(t, 3, res.ExitCode)
		assert.Equal(t, "boom\n", string(res.Stderr))
	})

	t.Run("Not Found - Name", func(t *testing.T) {
		_, err := sys.Run(t.Context(), "gitcreds-no-such-executable", nil, nil)
		assert.ErrorIs(t, err, ErrExecutableNotFound)
	})

	t.Run("Not Found - Absolute Path", func(t *testing.T) {
		_, err := sys.Run(t.Context(), filepath.Join(t.TempDir(), "missing"), nil, nil)
		assert.ErrorIs(t, err, ErrExecutableNotFound)
	})
}

func TestSystem_RunShell(t *testing.T) {
	sys := NewSystem("")

	t.Run("Pipes And Functions", func(t *testing.T) {
		res, err := sys.RunShell(t.Context(), `f() { printf 'username=u\npassword=p\n'; }; f get`, nil)
		assert.NoError(t, err)
		assert.Zero(t, res.ExitCode)
		assert.Equal(t, "username=u\npassword=p\n", string(res.Stdout))
	})

	t.Run("Reads Stdin", func(t *testing.T) {
		res, err := sys.RunShell(t.Context(), "cat", []byte("url=https://example.com\n"))
		assert.NoError(t, err)
		assert.Equal(t, "url=https://example.com\n", string(res.Stdout))
	})
}

func TestSystem_LookPath(t *testing.T) {
	sys := NewSystem("")

	t.Run("Found", func(t *testing.T) {
		path, err := sys.LookPath("sh")
		assert.NoError(t, err)
		assert.NotEmpty(t, path)
	})

	t.Run("Not Found", func(t *testing.T) {
		_, err := sys.LookPath("gitcreds-no-such-executable")
		assert.Error(t, err)
	})
}

func TestSystem_LookPathIn(t *testing.T) {
	sys := NewSystem("")

	t.Run("Found", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "git-credential-foo")
		require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))

		got, err := sys.LookPathIn(dir, "git-credential-foo")
		assert.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("Not Executable", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "git-credential-foo"), []byte("data"), 0o644))

		_, err := sys.LookPathIn(dir, "git-credential-foo")
		assert.Error(t, err)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := sys.LookPathIn(t.TempDir(), "git-credential-foo")
		assert.Error(t, err)
	})
}
