package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/soliterra/markfile/errors"
	e "github.com/soliterra/markfile/internal/exec"
	"github.com/soliterra/markfile/pkg/version"
)

func TestRootCmdWritesMarker(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("markfile only runs on Linux")
	}

	path := filepath.Join(t.TempDir(), "fixture.txt")
	require.NoError(t, os.WriteFile(path, []byte("previous content"), 0o644))

	RootCmd.SetArgs([]string{path})
	require.NoError(t, RootCmd.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, e.Marker, string(data))
}

func TestRootCmdFileNotFound(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("markfile only runs on Linux")
	}

	RootCmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.txt")})
	err := RootCmd.Execute()
	require.Error(t, err)
	assert.Equal(t, "File not found", err.Error())
	assert.Equal(t, 1, errUtils.GetExitCode(err))
}

func TestRootCmdMissingArgument(t *testing.T) {
	RootCmd.SetArgs([]string{})
	err := RootCmd.Execute()
	require.Error(t, err)
	assert.NotEqual(t, 0, errUtils.GetExitCode(err))
}

func TestVersionCmd(t *testing.T) {
	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	defer RootCmd.SetOut(nil)

	RootCmd.SetArgs([]string{"version"})
	require.NoError(t, RootCmd.Execute())
	assert.Contains(t, buf.String(), version.Version)
}
