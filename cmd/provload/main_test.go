package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/provload/pkg/core"
)

// run executes the CLI in-process with fresh flag values.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	verbose, configPath = false, ""
	loadJSON = false
	discoverPattern, discoverProbe = "**/*.so", false

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestLoadCommand_Dummy(t *testing.T) {
	out, logs, err := run(t, "load", "none", "--json")
	require.NoError(t, err)

	var state core.HandleState
	require.NoError(t, json.Unmarshal([]byte(out), &state))
	assert.Equal(t, core.KindDummy, state.Kind)
	assert.Equal(t, core.InterfaceVersion, state.Version)
	assert.Contains(t, logs, "provider loaded successfully")
}

func TestLoadCommand_MissingLibrary(t *testing.T) {
	_, logs, err := run(t, "load", filepath.Join(t.TempDir(), "missing.so"))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
	assert.Equal(t, int(syscall.EINVAL), exitCode(err))
	assert.Contains(t, logs, "level=ERROR")
}

func TestLoadCommand_Config(t *testing.T) {
	path := filepath.Join(t.TempDir(), "provload.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: none\nvariables:\n  - name: a\n    value: b\n"), 0644))

	out, _, err := run(t, "load", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "kind:    dummy")
	assert.Contains(t, out, "spec:    none")
}

func TestDiscoverCommand(t *testing.T) {
	root := t.TempDir()
	lib := filepath.Join(root, "lib", "libprovider.so")
	require.NoError(t, os.MkdirAll(filepath.Dir(lib), 0755))
	require.NoError(t, os.WriteFile(lib, []byte("not a library"), 0644))

	out, _, err := run(t, "discover", root)
	require.NoError(t, err)
	assert.Equal(t, lib+"\n", out)

	out, _, err = run(t, "discover", root, "--probe")
	require.Error(t, err)
	assert.Contains(t, out, "FAIL "+lib)
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "interface "+core.InterfaceVersion)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, int(syscall.ENOMEM), exitCode(core.ErrOutOfMemory))
	assert.Equal(t, 1, exitCode(errors.New("plain")))
}
