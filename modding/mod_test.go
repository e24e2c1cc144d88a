package modding_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xishang0128/mvgl-mods/modding"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My Mod", "My Mod"},
		{"My Mod!", "My Mod"},
		{"cool_mod-2", "cool_mod-2"},
		{"trailing   ", "trailing"},
		{"  leading", "  leading"},
		{"a/b\\c", "abc"},
		{"日本語mod", "mod"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := modding.SanitizeName(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizeNameRejectsEmptyResult(t *testing.T) {
	for _, in := range []string{"", "   ", "!!!", "日本語", "../"} {
		_, err := modding.SanitizeName(in)
		assert.True(t, errors.Is(err, modding.ErrInvalidModName), in)
	}
}

func TestCreateModLayout(t *testing.T) {
	f := newFixture(t)

	mod, err := f.manager.CreateMod("My Mod!")
	require.NoError(t, err)
	assert.Equal(t, "My Mod", mod.Name)
	assert.Equal(t, filepath.Join(f.ws.ModsDir, "My Mod"), mod.Path)

	entries, err := os.ReadDir(mod.Path)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		assert.True(t, e.IsDir())
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"lua", "images", "text", "message", "data", "root"}, names)

	for _, sub := range modding.Subfolders {
		sub := filepath.Join(mod.Path, string(sub))
		children, err := os.ReadDir(sub)
		require.NoError(t, err)
		assert.Empty(t, children)
	}
	assert.Empty(t, mod.ContentSubfolders())
	assert.True(t, f.log.contains("My Mod"))
}

func TestCreateModRefusesExisting(t *testing.T) {
	f := newFixture(t)

	_, err := f.manager.CreateMod("dup")
	require.NoError(t, err)

	_, err = f.manager.CreateMod("dup!")
	assert.True(t, errors.Is(err, modding.ErrModExists))
}

func TestCreateModInvalidName(t *testing.T) {
	f := newFixture(t)

	_, err := f.manager.CreateMod("???")
	assert.True(t, errors.Is(err, modding.ErrInvalidModName))

	mods, err := f.manager.ListMods()
	require.NoError(t, err)
	assert.Empty(t, mods)
}

func TestListModsSortedAndCreatesFolder(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.RemoveAll(f.ws.ModsDir))

	mods, err := f.manager.ListMods()
	require.NoError(t, err)
	assert.Empty(t, mods)
	assert.DirExists(t, f.ws.ModsDir)

	for _, name := range []string{"zeta", "Alpha", "beta"} {
		_, err := f.manager.CreateMod(name)
		require.NoError(t, err)
	}
	writeFile(t, filepath.Join(f.ws.ModsDir, "notes.txt"), "not a mod")

	mods, err = f.manager.ListMods()
	require.NoError(t, err)
	var names []string
	for _, m := range mods {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"Alpha", "beta", "zeta"}, names)
}

func TestFindMods(t *testing.T) {
	f := newFixture(t)
	f.newMod(t, "one", nil)
	f.newMod(t, "two", nil)

	mods, err := f.manager.FindMods([]string{"two", "one"})
	require.NoError(t, err)
	require.Len(t, mods, 2)
	assert.Equal(t, "two", mods[0].Name)
	assert.Equal(t, "one", mods[1].Name)

	_, err = f.manager.FindMods([]string{"one", "missing"})
	assert.True(t, errors.Is(err, modding.ErrModNotFound))
}

func TestContentSubfolders(t *testing.T) {
	f := newFixture(t)
	mod := f.newMod(t, "content", map[string]string{
		"text/a.txt":        "a",
		"lua/main.lua":      "print()",
		"root/deep/x.bin":   "x",
		"images/.gitignore": "",
	})
	require.NoError(t, os.RemoveAll(mod.SubfolderPath(modding.SubfolderData)))

	assert.Equal(t, []modding.Subfolder{
		modding.SubfolderLua,
		modding.SubfolderImages,
		modding.SubfolderText,
		modding.SubfolderRoot,
	}, mod.ContentSubfolders())
}
