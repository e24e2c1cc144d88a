package modding_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xishang0128/mvgl-mods/modding"
)

// writeScript creates an executable shell script standing in for the tool.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script tool needs a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "DSCSToolsCLI")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755))
	return path
}

func TestDefaultToolPath(t *testing.T) {
	got := modding.DefaultToolPath("/app")
	want := filepath.Join("/app", "THL-Tools", "DSCSToolsCLI")
	if runtime.GOOS == "windows" {
		want += ".exe"
	}
	assert.Equal(t, want, got)
}

func TestNewToolMissing(t *testing.T) {
	_, err := modding.NewTool(filepath.Join(t.TempDir(), "nope"), nil)
	assert.True(t, errors.Is(err, modding.ErrToolNotFound))

	_, err = modding.NewTool(t.TempDir(), nil)
	assert.True(t, errors.Is(err, modding.ErrToolNotFound), "a directory is not a tool")
}

func TestToolExtractArguments(t *testing.T) {
	script := writeScript(t, `echo "mode=$1"
echo ""
echo "archive=$2"
mkdir -p "$3"
echo ok > "$3/done"
`)
	log := &recordingLogger{}
	tool, err := modding.NewTool(script, log)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out")
	require.NoError(t, tool.Extract(context.Background(), "/game/a.mvgl", out))

	assert.FileExists(t, filepath.Join(out, "done"))
	assert.True(t, log.contains("--extract /game/a.mvgl "+out), "command line is logged")
	assert.True(t, log.contains("INFO: mode=--extract"))
	assert.True(t, log.contains("INFO: archive=/game/a.mvgl"))
	assert.True(t, log.contains("SUCCESS: "))
	for _, line := range log.lines {
		assert.NotEqual(t, "INFO: ", line, "blank lines are dropped")
	}
}

func TestToolPackArguments(t *testing.T) {
	script := writeScript(t, `[ "$1" = "--pack" ] || exit 9
printf '%s' "$2" > "$3"
`)
	tool, err := modding.NewTool(script, nil)
	require.NoError(t, err)

	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "Patch_0.dx11.MVGL")
	require.NoError(t, tool.Pack(context.Background(), in, out))
	assert.Equal(t, in, readFile(t, out))
}

func TestToolNonzeroExit(t *testing.T) {
	script := writeScript(t, `echo "working"
echo "bad archive" >&2
exit 3
`)
	log := &recordingLogger{}
	tool, err := modding.NewTool(script, log)
	require.NoError(t, err)

	err = tool.Extract(context.Background(), "a.mvgl", t.TempDir())

	var exitErr *modding.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.Code)
	assert.Equal(t, "bad archive", exitErr.Stderr)
	assert.True(t, strings.Contains(exitErr.Error(), "code 3"))

	assert.True(t, log.contains("INFO: working"))
	assert.True(t, log.contains("ERROR: "), "stderr is logged as an error")
	assert.True(t, log.contains("bad archive"))
	assert.True(t, log.contains("3"))
}

func TestToolRemovedAfterLookup(t *testing.T) {
	script := writeScript(t, "exit 0\n")
	tool, err := modding.NewTool(script, nil)
	require.NoError(t, err)
	require.NoError(t, os.Remove(script))

	err = tool.Pack(context.Background(), t.TempDir(), "out.MVGL")
	assert.True(t, errors.Is(err, modding.ErrToolNotFound))
}

func TestToolCancelled(t *testing.T) {
	script := writeScript(t, "sleep 5\n")
	tool, err := modding.NewTool(script, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, tool.Extract(ctx, "a.mvgl", t.TempDir()))
}
