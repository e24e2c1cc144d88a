package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/xishang0128/mvgl-mods/common/config"
	"github.com/xishang0128/mvgl-mods/common/file"
	"github.com/xishang0128/mvgl-mods/common/i18n"
	"github.com/xishang0128/mvgl-mods/modding"
)

// copyPatchesMode decides what happens with extracted patch archives.
type copyPatchesMode int

const (
	copyPatchesAsk copyPatchesMode = iota
	copyPatchesAlways
	copyPatchesNever
)

func (a *application) selectGame(path string) error {
	if path == "" {
		var err error
		path, err = askFolder(i18n.I18nMsg.Config.PromptGameFolder, a.cfg.GamePath)
		if err != nil {
			return err
		}
		if path == "" {
			return nil
		}
	}

	candidate := config.Config{GamePath: path}
	if !file.IsDir(candidate.GameDataDir()) {
		a.log.Errorf(i18n.I18nMsg.Config.InvalidGameFolder, path)
		return fmt.Errorf("%w: %s", modding.ErrGameDataNotFound, candidate.GameDataDir())
	}

	a.cfg.GamePath = path
	a.log.Infof(i18n.I18nMsg.Config.GameFolderSet, path)
	return a.saveConfig()
}

func languageNames() []string {
	langs := modding.Languages()
	names := make([]string, 0, len(langs))
	for _, l := range langs {
		names = append(names, l.String())
	}
	return names
}

func (a *application) setLanguage(value string) error {
	if value == "" {
		var err error
		value, err = askSelect(i18n.I18nMsg.Config.PromptLanguage, languageNames(), a.cfg.Language.String())
		if err != nil {
			return err
		}
	}

	lang, err := modding.ParseLanguage(value)
	if err != nil {
		return fmt.Errorf(i18n.I18nMsg.Config.ErrorInvalidLanguage, value, strings.Join(languageNames(), ", "))
	}
	a.cfg.Language = lang
	return a.saveConfig()
}

func (a *application) createMod(name string) (modding.Mod, error) {
	if name == "" {
		var err error
		name, err = askInput(i18n.I18nMsg.Mod.PromptModName, "")
		if err != nil {
			return modding.Mod{}, err
		}
		if name == "" {
			return modding.Mod{}, errCancelled
		}
	}
	return a.manager.CreateMod(name)
}

func (a *application) extract(ctx context.Context, names []string, mode copyPatchesMode) error {
	gamedata, err := a.gameDataDir()
	if err != nil {
		a.log.Errorf("%s", i18n.I18nMsg.Menu.ExtractDisabled)
		return err
	}

	if len(names) == 0 {
		archives, err := modding.ListGameArchives(gamedata)
		if err != nil {
			return err
		}
		names, err = askChecklist(i18n.I18nMsg.Extract.InteractiveSelection, archives)
		if err != nil {
			return err
		}
	}

	done := attachProgress(a.manager)
	res, err := a.manager.Extract(ctx, gamedata, names)
	done()
	if err != nil {
		return err
	}
	a.log.Infof(i18n.I18nMsg.Extract.Summary, len(res.Extracted), len(res.Failed))

	if len(res.Patches) > 0 && mode != copyPatchesNever {
		doCopy := mode == copyPatchesAlways
		if !doCopy {
			doCopy, err = confirm(copyPatchesQuestion(a.cfg.Language), true)
			if err != nil {
				return err
			}
		}
		if doCopy {
			if err := a.manager.CopyPatches(res.Patches); err != nil {
				return err
			}
			a.log.Successf("%s", i18n.I18nMsg.Extract.PatchesCopied)
		}
	}

	showSuccess(i18n.I18nMsg.Extract.ExtractionCompleted)
	return nil
}

func copyPatchesQuestion(lang modding.Language) string {
	lua, _ := modding.PatchFor(lang, modding.SubfolderLua)
	images, _ := modding.PatchFor(lang, modding.SubfolderImages)
	text, _ := modding.PatchFor(lang, modding.SubfolderText)
	return fmt.Sprintf(i18n.I18nMsg.Extract.CopyPatchesPrompt, lua, lang, images, text)
}

// selectMods resolves mod names from arguments, --all, or the checklist.
func (a *application) selectMods(names []string, all bool) ([]modding.Mod, error) {
	if len(names) > 0 {
		return a.manager.FindMods(names)
	}

	mods, err := a.manager.ListMods()
	if err != nil {
		return nil, err
	}
	if all || len(mods) == 0 {
		return mods, nil
	}

	options := make([]string, 0, len(mods))
	for _, mod := range mods {
		options = append(options, mod.Name)
	}
	selected, err := askChecklist(i18n.I18nMsg.Pack.InteractiveSelection, options)
	if err != nil {
		return nil, err
	}
	return a.manager.FindMods(selected)
}

func (a *application) pack(ctx context.Context, names []string, all, install bool) error {
	mods, err := a.selectMods(names, all)
	if err != nil {
		return err
	}

	opts := modding.PackOptions{Language: a.cfg.Language, Install: install}
	if install {
		if opts.GameDataDir, err = a.gameDataDir(); err != nil {
			return err
		}
	}

	done := attachProgress(a.manager)
	res, err := a.manager.Pack(ctx, mods, opts)
	done()

	if len(res.BackedUp) > 0 {
		a.log.Infof(i18n.I18nMsg.Pack.BackupsCreated, strings.Join(res.BackedUp, ", "))
	}
	if len(res.Failed) > 0 {
		a.log.Errorf(i18n.I18nMsg.Pack.PartialFailure, strings.Join(res.Failed, ", "))
	}
	if err != nil {
		return err
	}

	if install {
		showSuccess(i18n.I18nMsg.Pack.InstallSuccess)
	} else {
		showSuccess(fmt.Sprintf(i18n.I18nMsg.Pack.PackSuccess, modding.PackedDirName))
	}
	return nil
}

func (a *application) restore(names []string) error {
	gamedata, err := a.gameDataDir()
	if err != nil {
		return err
	}

	if len(names) == 0 {
		backups, err := a.manager.ListBackups()
		if err != nil {
			return err
		}
		if len(backups) == 0 {
			a.log.Infof(i18n.I18nMsg.Restore.NoBackups, modding.BackupsDirName)
			return nil
		}
		options := make([]string, 0, len(backups))
		for _, b := range backups {
			options = append(options, b.Archive)
		}
		if names, err = askChecklist(i18n.I18nMsg.Restore.InteractiveSelection, options); err != nil {
			return err
		}
	}

	restored, err := a.manager.Restore(gamedata, names)
	if err != nil {
		return err
	}
	showSuccess(fmt.Sprintf(i18n.I18nMsg.Restore.RestoreSuccess, len(restored)))
	return nil
}
