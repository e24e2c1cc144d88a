package modding

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xishang0128/mvgl-mods/common/file"
	"github.com/xishang0128/mvgl-mods/common/i18n"
)

// PackedExt is appended to a patch name to form the produced archive name.
const PackedExt = ".MVGL"

var (
	ErrNoModsSelected = errors.New("no mods selected")
	ErrNothingToPack  = errors.New("nothing to pack")
	ErrPackingFailed  = errors.New("no archives were produced")
)

// MissingBasePatchError means a mod has content for a patch that was never
// copied to the Extracted_Patches staging area.
type MissingBasePatchError struct {
	Patch     string
	Path      string
	Subfolder Subfolder
}

func (e *MissingBasePatchError) Error() string {
	return fmt.Sprintf("base patch %s for %s/ not found at %s", e.Patch, e.Subfolder, e.Path)
}

// MoveError reports a produced archive that could not reach its destination.
type MoveError struct {
	Archive     string
	Destination string
	Err         error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move %s to %s: %v", e.Archive, e.Destination, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// PackOptions selects the language tables and the final destination.
type PackOptions struct {
	Language Language
	// Install moves the archives into GameDataDir instead of the Packed folder.
	Install     bool
	GameDataDir string
}

// PackResult summarizes one packing run.
type PackResult struct {
	// Patches are the patch working copies that received mod content.
	Patches []string `json:"patches"`
	// Produced are the archive file names the tool created.
	Produced []string `json:"produced"`
	// Moved are the archives that reached Destination.
	Moved       []string `json:"moved"`
	Failed      []string `json:"failed"`
	BackedUp    []string `json:"backed_up"`
	Destination string   `json:"destination"`
}

type stagedPatch struct {
	name string
	dir  string
}

// Pack merges the content of mods over copies of their base patches, packs
// every modified patch and moves the archives to the Packed folder or, with
// Install, into the game's data folder. The working directory is removed when
// Pack returns. Steps already completed are not rolled back on failure.
func (m *Manager) Pack(ctx context.Context, mods []Mod, opts PackOptions) (PackResult, error) {
	var res PackResult
	if len(mods) == 0 {
		return res, ErrNoModsSelected
	}
	if opts.Install && !file.IsDir(opts.GameDataDir) {
		return res, fmt.Errorf("%w: %s", ErrGameDataNotFound, opts.GameDataDir)
	}

	lang := opts.Language
	if !lang.Valid() {
		m.log.Errorf(i18n.I18nMsg.Modding.NoLanguageSelected, DefaultLanguage)
		lang = DefaultLanguage
	}

	names := make([]string, 0, len(mods))
	for _, mod := range mods {
		names = append(names, mod.Name)
	}
	if opts.Install {
		m.log.Infof(i18n.I18nMsg.Modding.StartPackInstall, strings.Join(names, ", "))
	} else {
		m.log.Infof(i18n.I18nMsg.Modding.StartPack, strings.Join(names, ", "))
	}
	m.log.Infof(i18n.I18nMsg.Modding.UsingLanguage, lang, lang.Code())

	workDir, err := m.ws.newStagingDir()
	if err != nil {
		return res, fmt.Errorf(i18n.I18nMsg.Modding.ErrorCreateStaging, err)
	}
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			m.log.Errorf(i18n.I18nMsg.Modding.ErrorRemoveStaging, workDir, err)
		}
	}()

	staged, err := m.stage(mods, lang, workDir)
	if err != nil {
		return res, err
	}
	if len(staged) == 0 {
		m.log.Infof("%s", i18n.I18nMsg.Modding.NothingToPack)
		return res, ErrNothingToPack
	}
	for _, p := range staged {
		res.Patches = append(res.Patches, p.name)
	}

	m.log.Infof("%s", i18n.I18nMsg.Modding.PackingArchives)
	var produced []string
	for i, p := range staged {
		m.report(StagePacking, p.name, i, len(staged))
		out := filepath.Join(workDir, p.name+PackedExt)
		err := m.archiver.Pack(ctx, p.dir, out)
		if errors.Is(err, ErrToolNotFound) {
			return res, err
		}
		if err != nil || !file.Exists(out) {
			res.Failed = append(res.Failed, p.name)
			continue
		}
		produced = append(produced, out)
		res.Produced = append(res.Produced, filepath.Base(out))
	}
	m.report(StagePacking, "", len(staged), len(staged))

	if len(produced) == 0 {
		return res, ErrPackingFailed
	}

	if opts.Install {
		res.Destination = opts.GameDataDir
		m.log.Infof("%s", i18n.I18nMsg.Modding.Installing)
	} else {
		res.Destination = m.ws.PackedDir
		m.log.Infof(i18n.I18nMsg.Modding.MovingPacked, PackedDirName)
		if err := file.EnsureDirs(m.ws.PackedDir); err != nil {
			return res, err
		}
	}

	for i, src := range produced {
		m.report(StageMoving, filepath.Base(src), i, len(produced))
		name := filepath.Base(src)
		if opts.Install {
			name = matchExisting(opts.GameDataDir, name)
			backedUp, err := m.backupArchive(opts.GameDataDir, name)
			if err != nil {
				m.log.Errorf(i18n.I18nMsg.Modding.ErrorBackup, name, err)
				return res, &MoveError{Archive: name, Destination: res.Destination, Err: err}
			}
			if backedUp {
				res.BackedUp = append(res.BackedUp, name)
			}
		}

		dst := filepath.Join(res.Destination, name)
		if err := file.MoveFile(src, dst); err != nil {
			m.log.Errorf(i18n.I18nMsg.Modding.ErrorMove, name, err)
			return res, &MoveError{Archive: name, Destination: res.Destination, Err: err}
		}
		res.Moved = append(res.Moved, name)

		if opts.Install {
			m.log.Successf(i18n.I18nMsg.Modding.InstalledArchive, name)
		} else {
			m.log.Successf(i18n.I18nMsg.Modding.MovedArchive, name, PackedDirName)
		}
	}
	m.report(StageMoving, "", len(produced), len(produced))

	return res, nil
}

// stage builds the patch working copies in workDir, in first-touched order.
func (m *Manager) stage(mods []Mod, lang Language, workDir string) ([]stagedPatch, error) {
	var staged []stagedPatch
	index := make(map[string]int)

	for i, mod := range mods {
		m.report(StageStaging, mod.Name, i, len(mods))
		m.log.Infof(i18n.I18nMsg.Modding.ProcessingMod, mod.Name)

		for _, sub := range mod.ContentSubfolders() {
			patch, err := PatchFor(lang, sub)
			if err != nil {
				return nil, err
			}
			m.log.Infof(i18n.I18nMsg.Modding.FoundContent, sub, patch)

			patchDir := filepath.Join(workDir, patch)
			if _, ok := index[patch]; !ok {
				basePath := filepath.Join(m.ws.PatchesDir, patch)
				if !file.IsDir(basePath) {
					m.log.Errorf(i18n.I18nMsg.Modding.BasePatchMissing, basePath)
					return nil, &MissingBasePatchError{Patch: patch, Path: basePath, Subfolder: sub}
				}
				if err := file.CopyDir(basePath, patchDir); err != nil {
					return nil, fmt.Errorf(i18n.I18nMsg.Modding.ErrorSeedPatch, patch, err)
				}
				index[patch] = len(staged)
				staged = append(staged, stagedPatch{name: patch, dir: patchDir})
			}

			if err := file.CopyDir(mod.SubfolderPath(sub), sub.mergeTarget(patchDir)); err != nil {
				return nil, fmt.Errorf(i18n.I18nMsg.Modding.ErrorMergeContent, sub, patch, err)
			}
			if sub == SubfolderRoot {
				m.log.Infof("%s", i18n.I18nMsg.Modding.CopiedRoot)
			} else {
				m.log.Infof(i18n.I18nMsg.Modding.CopiedSubfolder, sub)
			}
		}
	}
	m.report(StageStaging, "", len(mods), len(mods))

	return staged, nil
}

// matchExisting returns the name of an archive already in dir that equals
// name case-insensitively, so installing replaces it on case-sensitive file
// systems too. Without a match name is returned unchanged.
func matchExisting(dir, name string) string {
	if file.Exists(filepath.Join(dir, name)) {
		return name
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return name
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.EqualFold(entry.Name(), name) {
			return entry.Name()
		}
	}
	return name
}
