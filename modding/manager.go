// Package modding stages mod content over extracted MVGL patches and drives
// the external archive tool that extracts and packs them.
package modding

import (
	"context"
	"os"

	"github.com/xishang0128/mvgl-mods/common/i18n"
	"github.com/xishang0128/mvgl-mods/compression"
)

// Archiver performs the container (de)serialization the manager delegates.
type Archiver interface {
	Extract(ctx context.Context, archive, outDir string) error
	Pack(ctx context.Context, inDir, outArchive string) error
}

// Manager runs mod operations inside one workspace. Operations are
// synchronous and run to completion before returning.
type Manager struct {
	ws       Workspace
	archiver Archiver
	log      Logger
	progress ProgressCallback
	codecs   *compression.DecompressorManager
}

// NewManager creates a manager. A nil logger discards log lines.
func NewManager(ws Workspace, archiver Archiver, log Logger) *Manager {
	if log == nil {
		log = NopLogger
	}
	return &Manager{
		ws:       ws,
		archiver: archiver,
		log:      log,
		codecs:   compression.NewDecompressorManager(),
	}
}

// SetProgressCallback registers cb for progress updates; nil disables them.
func (m *Manager) SetProgressCallback(cb ProgressCallback) {
	m.progress = cb
}

func (m *Manager) report(stage Stage, name string, completed, total int) {
	if m.progress == nil {
		return
	}
	m.progress(ProgressInfo{Stage: stage, Name: name, Completed: completed, Total: total})
}

// CleanStaleStaging removes working directories of interrupted runs.
func (m *Manager) CleanStaleStaging() {
	dirs, err := m.ws.StaleStagingDirs()
	if err != nil {
		return
	}
	for _, dir := range dirs {
		if err := os.RemoveAll(dir); err != nil {
			m.log.Errorf(i18n.I18nMsg.Modding.ErrorRemoveStaging, dir, err)
		}
	}
}
