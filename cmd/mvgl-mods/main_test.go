package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xishang0128/mvgl-mods/common/config"
	"github.com/xishang0128/mvgl-mods/common/i18n"
	"github.com/xishang0128/mvgl-mods/modding"
)

func TestDescribeErrorSeverity(t *testing.T) {
	tests := []struct {
		name string
		err  error
		sev  severity
	}{
		{"nothing to pack", modding.ErrNothingToPack, severityInfo},
		{"no archives", modding.ErrNoArchives, severityInfo},
		{"no mods", modding.ErrNoModsSelected, severityWarning},
		{"no selection", modding.ErrNoSelection, severityWarning},
		{"mod exists", fmt.Errorf("%w: x", modding.ErrModExists), severityWarning},
		{"packing failed", modding.ErrPackingFailed, severityError},
		{"missing base", &modding.MissingBasePatchError{Patch: "Patch_1.dx11"}, severityError},
		{"tool missing", fmt.Errorf("%w: /x", modding.ErrToolNotFound), severityError},
		{"other", errors.New("disk on fire"), severityError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sev, title, body := describeError(tt.err)
			assert.Equal(t, tt.sev, sev)
			assert.NotEmpty(t, title)
			assert.NotEmpty(t, body)
		})
	}
}

func TestDescribeErrorBodies(t *testing.T) {
	_, _, body := describeError(&modding.MissingBasePatchError{Patch: "Patch_text01.dx11"})
	assert.Contains(t, body, "Patch_text01.dx11")
	assert.Contains(t, body, modding.ExtractedPatchesDirName)

	_, _, body = describeError(fmt.Errorf("%w: Cool Mod", modding.ErrModExists))
	assert.Contains(t, body, "'Cool Mod'")

	_, _, body = describeError(&modding.ExitError{Code: 7, Stderr: "bad header"})
	assert.Contains(t, body, "7")
	assert.Contains(t, body, "bad header")
}

func TestReportErrorExitDecision(t *testing.T) {
	assert.False(t, reportError(errCancelled))
	assert.False(t, reportError(modding.ErrNothingToPack))
	assert.True(t, reportError(modding.ErrPackingFailed))
}

func TestPaneLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mvgl-mods.log")
	var out bytes.Buffer

	l, err := newPaneLogger(&out, path, false)
	require.NoError(t, err)
	l.Infof("hello %s", "world")
	l.Successf("done")
	l.Errorf("failed: %d", 2)
	l.close()

	assert.Contains(t, out.String(), "hello world")
	assert.Contains(t, out.String(), "failed: 2")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[0], "INFO: hello world"))
	assert.True(t, strings.HasSuffix(lines[1], "INFO: done"))
	assert.True(t, strings.HasSuffix(lines[2], "ERROR: failed: 2"))
}

func TestPaneLoggerQuiet(t *testing.T) {
	var out bytes.Buffer
	l, err := newPaneLogger(&out, "", true)
	require.NoError(t, err)
	l.Infof("hidden")
	l.close()
	assert.Empty(t, out.String())
}

func TestResolveToolPath(t *testing.T) {
	root := t.TempDir()

	old := toolPath
	defer func() { toolPath = old }()

	toolPath = "/custom/tool"
	assert.Equal(t, "/custom/tool", resolveToolPath(root))

	toolPath = ""
	t.Setenv(toolEnvVar, "/env/tool")
	assert.Equal(t, "/env/tool", resolveToolPath(root))

	t.Setenv(toolEnvVar, "")
	assert.Equal(t, modding.DefaultToolPath(root), resolveToolPath(root))
}

func TestSetupAppMissingToolNamesWorkdirPath(t *testing.T) {
	root := t.TempDir()

	oldWorkdir, oldTool, oldLog, oldApp := workdir, toolPath, logFile, app
	defer func() { workdir, toolPath, logFile, app = oldWorkdir, oldTool, oldLog, oldApp }()

	workdir = root
	toolPath = ""
	logFile = ""
	app = nil
	t.Setenv(toolEnvVar, "")

	err := setupApp(&cobra.Command{Use: "pack"})
	require.True(t, errors.Is(err, modding.ErrToolNotFound))
	require.NotNil(t, app)

	want := modding.DefaultToolPath(root)
	assert.Equal(t, want, app.toolPathOrDefault())
	_, _, body := describeError(err)
	assert.Contains(t, body, want)

	// Without an application the fallback still honours --workdir.
	app = nil
	assert.Equal(t, want, app.toolPathOrDefault())
}

func TestConfigReportPatchMap(t *testing.T) {
	ws := modding.NewWorkspace(t.TempDir())
	require.NoError(t, ws.EnsureDirs())
	require.NoError(t, os.MkdirAll(filepath.Join(ws.PatchesDir, "Patch_0.dx11"), 0755))

	a := &application{
		ws:       ws,
		cfg:      config.Config{Language: modding.Japanese},
		toolPath: filepath.Join(ws.Root, "missing-tool"),
		manager:  modding.NewManager(ws, nil, nil),
	}

	report := newConfigReport(a)
	assert.False(t, report.ToolFound)
	assert.False(t, report.GameData)
	assert.True(t, report.BasePatches["Patch_0.dx11"])
	assert.False(t, report.BasePatches["Patch_text00.dx11"])

	assert.Len(t, report.PatchMap, len(modding.Subfolders))
	assert.Equal(t, "Patch_0.dx11", report.PatchMap[modding.SubfolderLua])
	assert.Equal(t, "Patch_text00.dx11", report.PatchMap[modding.SubfolderMessage])
	assert.Equal(t, "Patch_0.dx11", report.PatchMap[modding.SubfolderRoot])
}

func TestHasAnnotation(t *testing.T) {
	parent := &cobra.Command{Use: "config", Annotations: map[string]string{annotationSkipTool: "true"}}
	child := &cobra.Command{Use: "show"}
	parent.AddCommand(child)
	other := &cobra.Command{Use: "pack"}

	assert.True(t, hasAnnotation(child, annotationSkipTool))
	assert.False(t, hasAnnotation(child, annotationSkipSetup))
	assert.False(t, hasAnnotation(other, annotationSkipTool))
}

func TestCopyPatchesQuestion(t *testing.T) {
	q := copyPatchesQuestion(modding.SimplifiedChinese)
	assert.Contains(t, q, "Patch_0.dx11")
	assert.Contains(t, q, "Patch_2.dx11")
	assert.Contains(t, q, "Patch_text02.dx11")
	assert.Contains(t, q, string(modding.SimplifiedChinese))
	assert.NotContains(t, q, "%!")
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "0.5KB", formatSize(512))
	assert.Equal(t, "1.5MB", formatSize(3*512*1024))
	assert.Equal(t, "2.0GB", formatSize(2*1024*1024*1024))
}

func TestStageLabels(t *testing.T) {
	assert.Equal(t, i18n.I18nMsg.Modding.StagePacking, stageLabel(modding.StagePacking))
	assert.Equal(t, "custom", stageLabel(modding.Stage("custom")))
}

func TestDescribeContent(t *testing.T) {
	dir := t.TempDir()
	mod := modding.Mod{Name: "m", Path: dir}
	assert.Contains(t, describeContent(mod), i18n.I18nMsg.Mod.EmptyLabel)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "lua"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lua", "a.lua"), nil, 0644))
	assert.Contains(t, describeContent(mod), "lua")
}

func TestBuiltinCommandsSkipSetup(t *testing.T) {
	root := &cobra.Command{Use: "mvgl-mods"}
	help := &cobra.Command{Use: "help"}
	completion := &cobra.Command{Use: "completion"}
	bash := &cobra.Command{Use: "bash"}
	pack := &cobra.Command{Use: "pack"}
	completion.AddCommand(bash)
	root.AddCommand(help, completion, pack)

	assert.True(t, isBuiltinCommand(help))
	assert.True(t, isBuiltinCommand(bash))
	assert.False(t, isBuiltinCommand(pack))
	assert.False(t, isBuiltinCommand(root))
}
