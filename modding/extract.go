package modding

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xishang0128/mvgl-mods/common/file"
	"github.com/xishang0128/mvgl-mods/common/i18n"
)

const archiveExt = ".mvgl"

var (
	ErrGameDataNotFound = errors.New("game data folder not found")
	ErrNoArchives       = errors.New("no .mvgl files found")
	ErrNoSelection      = errors.New("no archives selected")
)

// ExtractResult summarizes one extraction run.
type ExtractResult struct {
	Extracted []string `json:"extracted"`
	Failed    []string `json:"failed"`
	// Patches are the base names of extracted patch archives, the candidates
	// for the Extracted_Patches staging area.
	Patches []string `json:"patches"`
}

// ArchiveBaseName strips the container extension: "Patch_1.dx11.mvgl"
// becomes "Patch_1.dx11".
func ArchiveBaseName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// IsPatchArchive reports whether name is one of the game's patch archives.
func IsPatchArchive(name string) bool {
	return strings.HasPrefix(strings.ToLower(name), "patch")
}

// ListGameArchives returns the .mvgl files in gamedataDir, sorted.
func ListGameArchives(gamedataDir string) ([]string, error) {
	if !file.IsDir(gamedataDir) {
		return nil, fmt.Errorf("%w: %s", ErrGameDataNotFound, gamedataDir)
	}

	entries, err := os.ReadDir(gamedataDir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), archiveExt) {
			names = append(names, entry.Name())
		}
	}

	if len(names) == 0 {
		return nil, ErrNoArchives
	}
	sort.Strings(names)
	return names, nil
}

// Extract unpacks each named archive from gamedataDir into
// Extracted/<base name>, replacing earlier output. A failing archive is logged
// and skipped so the rest of the selection still runs.
func (m *Manager) Extract(ctx context.Context, gamedataDir string, names []string) (ExtractResult, error) {
	var res ExtractResult
	if len(names) == 0 {
		return res, ErrNoSelection
	}
	if !file.IsDir(gamedataDir) {
		return res, fmt.Errorf("%w: %s", ErrGameDataNotFound, gamedataDir)
	}
	if err := file.EnsureDirs(m.ws.ExtractedDir); err != nil {
		return res, err
	}

	for i, name := range names {
		baseName := ArchiveBaseName(name)
		m.report(StageExtract, name, i, len(names))

		outDir := filepath.Join(m.ws.ExtractedDir, baseName)
		if err := os.RemoveAll(outDir); err != nil {
			m.log.Errorf(i18n.I18nMsg.Modding.ErrorRemoveOld, outDir, err)
			res.Failed = append(res.Failed, name)
			continue
		}

		err := m.archiver.Extract(ctx, filepath.Join(gamedataDir, name), outDir)
		if errors.Is(err, ErrToolNotFound) {
			return res, err
		}
		if err != nil {
			res.Failed = append(res.Failed, name)
			continue
		}

		res.Extracted = append(res.Extracted, name)
		if IsPatchArchive(name) {
			res.Patches = append(res.Patches, baseName)
		}
	}
	m.report(StageExtract, "", len(names), len(names))

	m.log.Successf("%s", i18n.I18nMsg.Modding.ExtractionFinished)
	return res, nil
}

// CopyPatches copies extracted patches into the Extracted_Patches staging
// area, replacing older copies, so they can serve as packing bases.
func (m *Manager) CopyPatches(baseNames []string) error {
	m.log.Infof("%s", i18n.I18nMsg.Modding.CopyingPatches)
	if err := file.EnsureDirs(m.ws.PatchesDir); err != nil {
		return err
	}

	for _, name := range baseNames {
		src := filepath.Join(m.ws.ExtractedDir, name)
		dst := filepath.Join(m.ws.PatchesDir, name)
		if err := file.ReplaceDir(src, dst); err != nil {
			return fmt.Errorf(i18n.I18nMsg.Modding.ErrorCopyPatch, name, err)
		}
		m.log.Infof(i18n.I18nMsg.Modding.CopiedPatch, name, ExtractedPatchesDirName)
	}
	return nil
}

// BasePatches lists the patches available in the staging area.
func (m *Manager) BasePatches() ([]string, error) {
	entries, err := os.ReadDir(m.ws.PatchesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
