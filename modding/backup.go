package modding

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xishang0128/mvgl-mods/common/file"
	"github.com/xishang0128/mvgl-mods/common/i18n"
	"github.com/xishang0128/mvgl-mods/compression"
)

// ErrBackupNotFound means no backup exists for the requested archive.
var ErrBackupNotFound = errors.New("backup not found")

// backupCompression is the codec for new backups.
const backupCompression = compression.TypeXZ

// Backup is a saved copy of an original game archive.
type Backup struct {
	Archive string `json:"archive"`
	Path    string `json:"path"`
	Size    int64  `json:"size"`
}

// backupArchive saves gamedataDir/name into the backups folder before it is
// overwritten. Only the first backup is kept so it stays the game's original.
func (m *Manager) backupArchive(gamedataDir, name string) (bool, error) {
	src := filepath.Join(gamedataDir, name)
	if !file.Exists(src) {
		return false, nil
	}

	dst := filepath.Join(m.ws.BackupsDir, name+backupCompression.Extension())
	if file.Exists(dst) {
		return false, nil
	}

	if err := compression.CompressFile(src, dst, backupCompression); err != nil {
		return false, err
	}
	m.log.Infof(i18n.I18nMsg.Modding.BackedUp, name, BackupsDirName)
	return true, nil
}

// ListBackups returns the saved archives, sorted by archive name.
func (m *Manager) ListBackups() ([]Backup, error) {
	entries, err := os.ReadDir(m.ws.BackupsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var backups []Backup
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		ext := compression.TypeForPath(entry.Name()).Extension()
		backups = append(backups, Backup{
			Archive: strings.TrimSuffix(entry.Name(), ext),
			Path:    filepath.Join(m.ws.BackupsDir, entry.Name()),
			Size:    info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool { return backups[i].Archive < backups[j].Archive })
	return backups, nil
}

// Restore writes the named backups back into gamedataDir. The backups are
// kept. It stops at the first failure and returns what was restored so far.
func (m *Manager) Restore(gamedataDir string, archives []string) ([]string, error) {
	if len(archives) == 0 {
		return nil, ErrNoSelection
	}
	if !file.IsDir(gamedataDir) {
		return nil, fmt.Errorf("%w: %s", ErrGameDataNotFound, gamedataDir)
	}

	backups, err := m.ListBackups()
	if err != nil {
		return nil, err
	}
	byName := make(map[string]Backup, len(backups))
	for _, b := range backups {
		byName[b.Archive] = b
	}

	var restored []string
	for _, archive := range archives {
		b, ok := byName[archive]
		if !ok {
			return restored, fmt.Errorf("%w: %s", ErrBackupNotFound, archive)
		}
		dst := filepath.Join(gamedataDir, archive)
		if err := m.codecs.DecompressFile(b.Path, dst, compression.TypeForPath(b.Path)); err != nil {
			m.log.Errorf(i18n.I18nMsg.Modding.ErrorRestore, archive, err)
			return restored, fmt.Errorf(i18n.I18nMsg.Modding.ErrorRestore, archive, err)
		}
		m.log.Successf(i18n.I18nMsg.Modding.Restored, archive)
		restored = append(restored, archive)
	}
	return restored, nil
}
