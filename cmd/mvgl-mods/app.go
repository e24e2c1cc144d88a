package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/xishang0128/mvgl-mods/common/config"
	"github.com/xishang0128/mvgl-mods/common/file"
	"github.com/xishang0128/mvgl-mods/common/i18n"
	"github.com/xishang0128/mvgl-mods/modding"
)

const (
	// Commands carrying these annotations, or whose parent does, skip the
	// corresponding startup step.
	annotationSkipSetup = "skip-setup"
	annotationSkipTool  = "skip-tool"

	toolEnvVar = "MVGL_TOOL"
)

// application is the state shared by every command of one invocation.
type application struct {
	ws       modding.Workspace
	cfgPath  string
	cfg      config.Config
	log      *paneLogger
	toolPath string
	tool     *modding.Tool
	manager  *modding.Manager
}

var app *application

func hasAnnotation(cmd *cobra.Command, key string) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[key] != "" {
			return true
		}
	}
	return false
}

// isBuiltinCommand reports cobra's own help and completion commands.
func isBuiltinCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return true
		}
	}
	return false
}

func setupApp(cmd *cobra.Command) error {
	if hasAnnotation(cmd, annotationSkipSetup) || isBuiltinCommand(cmd) {
		return nil
	}

	root, err := filepath.Abs(workdir)
	if err != nil {
		return fmt.Errorf(i18n.I18nMsg.Common.ErrorFailedToGetWorkdir, err)
	}

	ws := modding.NewWorkspace(root)
	if err := ws.EnsureDirs(); err != nil {
		return fmt.Errorf(i18n.I18nMsg.Common.ErrorFailedToCreateDir, err)
	}

	logger, err := newPaneLogger(os.Stdout, logFile, showProgress)
	if err != nil {
		return fmt.Errorf(i18n.I18nMsg.Common.ErrorFailedToOpenLog, err)
	}

	a := &application{
		ws:      ws,
		cfgPath: filepath.Join(root, config.FileName),
		log:     logger,
	}

	a.cfg, err = config.Load(a.cfgPath)
	if err != nil {
		logger.Errorf(i18n.I18nMsg.Common.ErrorFailedToLoadConfig, err)
	}

	a.toolPath = resolveToolPath(root)
	var archiver modding.Archiver
	if !hasAnnotation(cmd, annotationSkipTool) {
		a.tool, err = modding.NewTool(a.toolPath, logger)
		if err != nil {
			logger.close()
			// Kept so the error dialog names the path that was checked.
			app = a
			return err
		}
		archiver = a.tool
	}

	a.manager = modding.NewManager(ws, archiver, logger)
	if stale, _ := ws.StaleStagingDirs(); len(stale) > 0 {
		a.manager.CleanStaleStaging()
		logger.Infof("%s", i18n.I18nMsg.Common.StaleStagingRemoved)
	}

	app = a
	return nil
}

func (a *application) close() {
	if a == nil {
		return
	}
	a.log.close()
}

// resolveToolPath picks the archive tool from the --tool flag, the
// environment, or the THL-Tools folder next to the executable. When the
// executable folder has no tool the workspace folder is tried as well.
func resolveToolPath(root string) string {
	if toolPath != "" {
		return toolPath
	}
	if env := os.Getenv(toolEnvVar); env != "" {
		return env
	}

	if exe, err := os.Executable(); err == nil {
		candidate := modding.DefaultToolPath(filepath.Dir(exe))
		if file.Exists(candidate) {
			return candidate
		}
	}
	return modding.DefaultToolPath(root)
}

func (a *application) saveConfig() error {
	if err := a.cfg.Save(a.cfgPath); err != nil {
		return fmt.Errorf(i18n.I18nMsg.Common.ErrorFailedToSaveConfig, err)
	}
	a.log.Infof(i18n.I18nMsg.Common.ConfigSaved, a.cfg.Language)
	return nil
}

// gameDataDir returns the gamedata folder of the configured game or an
// error when no valid game folder is selected.
func (a *application) gameDataDir() (string, error) {
	if !a.cfg.HasValidGamePath() {
		return "", fmt.Errorf("%w: %s", modding.ErrGameDataNotFound, a.cfg.GameDataDir())
	}
	return a.cfg.GameDataDir(), nil
}

var errCancelled = errors.New("cancelled")
