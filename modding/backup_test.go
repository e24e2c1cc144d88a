package modding_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xishang0128/mvgl-mods/modding"
)

func TestListBackupsEmpty(t *testing.T) {
	f := newFixture(t)
	backups, err := f.manager.ListBackups()
	require.NoError(t, err)
	assert.Empty(t, backups)
}

func TestInstallBacksUpOnlyExistingArchives(t *testing.T) {
	f := newFixture(t)
	f.seedPatch(t, "Patch_0.dx11", map[string]string{"lua/a": "a"})
	f.seedPatch(t, "Patch_1.dx11", map[string]string{"images/a": "a"})
	original := strings.Repeat("original archive bytes ", 512)
	writeFile(t, filepath.Join(f.gamedata, "Patch_0.dx11.MVGL"), original)
	mod := f.newMod(t, "m", map[string]string{"lua/a": "b", "images/a": "b"})

	res, err := f.manager.Pack(context.Background(), []modding.Mod{mod},
		modding.PackOptions{Language: modding.English, Install: true, GameDataDir: f.gamedata})
	require.NoError(t, err)
	assert.Equal(t, []string{"Patch_0.dx11.MVGL"}, res.BackedUp, "new archives have nothing to back up")

	backups, err := f.manager.ListBackups()
	require.NoError(t, err)
	require.Len(t, backups, 1)
	assert.Equal(t, "Patch_0.dx11.MVGL", backups[0].Archive)
	assert.Equal(t, filepath.Join(f.ws.BackupsDir, "Patch_0.dx11.MVGL.xz"), backups[0].Path)
	assert.Less(t, backups[0].Size, int64(len(original)), "backups are compressed")

	restored, err := f.manager.Restore(f.gamedata, []string{"Patch_0.dx11.MVGL"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Patch_0.dx11.MVGL"}, restored)
	assert.Equal(t, original, readFile(t, filepath.Join(f.gamedata, "Patch_0.dx11.MVGL")))
}

func TestRestoreErrors(t *testing.T) {
	f := newFixture(t)

	_, err := f.manager.Restore(f.gamedata, nil)
	assert.True(t, errors.Is(err, modding.ErrNoSelection))

	_, err = f.manager.Restore(f.gamedata, []string{"Patch_9.dx11.MVGL"})
	assert.True(t, errors.Is(err, modding.ErrBackupNotFound))

	_, err = f.manager.Restore(filepath.Join(f.gamedata, "missing"), []string{"x"})
	assert.True(t, errors.Is(err, modding.ErrGameDataNotFound))
}
