package modding_test

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xishang0128/mvgl-mods/modding"
)

// fakeArchiver stands in for the external tool. Extract writes a marker file
// into the output folder; Pack writes a manifest of the input tree, one
// "path=content" line per file, so tests can inspect what was staged.
type fakeArchiver struct {
	mu       sync.Mutex
	extracts []string
	packs    []string
	// failPack and failExtract hold base names that should fail.
	failPack    map[string]bool
	failExtract map[string]bool
	// staged records the working copy listing seen by each Pack call.
	staged map[string]map[string]string
}

func newFakeArchiver() *fakeArchiver {
	return &fakeArchiver{
		failPack:    make(map[string]bool),
		failExtract: make(map[string]bool),
		staged:      make(map[string]map[string]string),
	}
}

func (f *fakeArchiver) Extract(ctx context.Context, archive, outDir string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := filepath.Base(archive)
	f.extracts = append(f.extracts, name)
	if f.failExtract[name] {
		return &modding.ExitError{Code: 1, Stderr: "boom"}
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outDir, "from-"+name), []byte(name), 0644)
}

func (f *fakeArchiver) Pack(ctx context.Context, inDir, outArchive string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	patch := filepath.Base(inDir)
	f.packs = append(f.packs, patch)
	if f.failPack[patch] {
		return &modding.ExitError{Code: 2, Stderr: "pack failed"}
	}

	tree, err := readTree(inDir)
	if err != nil {
		return err
	}
	f.staged[patch] = tree

	var lines []string
	for path, content := range tree {
		lines = append(lines, path+"="+content)
	}
	sort.Strings(lines)
	return os.WriteFile(outArchive, []byte(strings.Join(lines, "\n")), 0644)
}

// recordingLogger keeps log lines for assertions.
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) add(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, level+": "+fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Infof(format string, args ...any)    { l.add("INFO", format, args...) }
func (l *recordingLogger) Successf(format string, args ...any) { l.add("SUCCESS", format, args...) }
func (l *recordingLogger) Errorf(format string, args ...any)   { l.add("ERROR", format, args...) }

func (l *recordingLogger) contains(substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range l.lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

type fixture struct {
	ws       modding.Workspace
	gamedata string
	archiver *fakeArchiver
	log      *recordingLogger
	manager  *modding.Manager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	root := t.TempDir()
	ws := modding.NewWorkspace(filepath.Join(root, "workspace"))
	require.NoError(t, ws.EnsureDirs())

	gamedata := filepath.Join(root, "game", "gamedata")
	require.NoError(t, os.MkdirAll(gamedata, 0755))

	f := &fixture{
		ws:       ws,
		gamedata: gamedata,
		archiver: newFakeArchiver(),
		log:      &recordingLogger{},
	}
	f.manager = modding.NewManager(ws, f.archiver, f.log)
	return f
}

// writeFile creates path (and its parents) with content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// readTree maps slash-separated relative file paths under dir to contents.
func readTree(dir string) (map[string]string, error) {
	tree := make(map[string]string)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		tree[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	return tree, err
}

// seedPatch places a base patch in Extracted_Patches with one file.
func (f *fixture) seedPatch(t *testing.T, patch string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		writeFile(t, filepath.Join(f.ws.PatchesDir, patch, filepath.FromSlash(rel)), content)
	}
}

// newMod creates a mod and fills the given files, keyed "sub/rel/path".
func (f *fixture) newMod(t *testing.T, name string, files map[string]string) modding.Mod {
	t.Helper()
	mod, err := f.manager.CreateMod(name)
	require.NoError(t, err)
	for rel, content := range files {
		writeFile(t, filepath.Join(mod.Path, filepath.FromSlash(rel)), content)
	}
	return mod
}

func stagingDirs(t *testing.T, ws modding.Workspace) []string {
	t.Helper()
	dirs, err := ws.StaleStagingDirs()
	require.NoError(t, err)
	return dirs
}
