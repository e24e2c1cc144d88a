package modding

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/xishang0128/mvgl-mods/common/file"
)

const (
	ModsDirName             = "Mods"
	ExtractedDirName        = "Extracted"
	ExtractedPatchesDirName = "Extracted_Patches"
	PackedDirName           = "Packed"
	BackupsDirName          = "Backups"

	stagingDirPrefix = ".staging-"
)

// Workspace is the on-disk layout the manager works in.
type Workspace struct {
	Root         string
	ModsDir      string
	ExtractedDir string
	PatchesDir   string
	PackedDir    string
	BackupsDir   string
}

// NewWorkspace lays out the standard folders under root.
func NewWorkspace(root string) Workspace {
	return Workspace{
		Root:         root,
		ModsDir:      filepath.Join(root, ModsDirName),
		ExtractedDir: filepath.Join(root, ExtractedDirName),
		PatchesDir:   filepath.Join(root, ExtractedPatchesDirName),
		PackedDir:    filepath.Join(root, PackedDirName),
		BackupsDir:   filepath.Join(root, BackupsDirName),
	}
}

// EnsureDirs creates the persistent workspace folders.
func (w Workspace) EnsureDirs() error {
	return file.EnsureDirs(w.ModsDir, w.ExtractedDir, w.PatchesDir, w.PackedDir, w.BackupsDir)
}

// newStagingDir creates a fresh working directory for one packing run.
func (w Workspace) newStagingDir() (string, error) {
	dir := filepath.Join(w.Root, stagingDirPrefix+uuid.NewString())
	if err := os.RemoveAll(dir); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// StaleStagingDirs lists working directories left behind by runs that were
// interrupted before cleanup.
func (w Workspace) StaleStagingDirs() ([]string, error) {
	return filepath.Glob(filepath.Join(w.Root, stagingDirPrefix+"*"))
}
