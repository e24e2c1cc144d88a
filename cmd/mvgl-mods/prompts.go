package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/xishang0128/mvgl-mods/common/i18n"
	"github.com/xishang0128/mvgl-mods/modding"
)

type severity int

const (
	severityInfo severity = iota
	severityWarning
	severityError
)

// showDialog renders a modal-style notice box on stderr.
func showDialog(sev severity, title, body string) {
	style := infoStyle
	switch sev {
	case severityWarning:
		style = warningStyle
	case severityError:
		style = errorStyle
	}
	box := dialogStyle.BorderForeground(style.GetForeground()).
		Render(style.Render(title) + "\n\n" + body)
	fmt.Fprintln(os.Stderr, box)
}

func showSuccess(body string) {
	showDialog(severityInfo, i18n.I18nMsg.Dialog.SuccessTitle, successStyle.Render(body))
}

// reportError shows err as a dialog. It returns false when the error was
// informational or a cancelled prompt, true when it should fail the command.
func reportError(err error) bool {
	if errors.Is(err, errCancelled) {
		return false
	}
	sev, title, body := describeError(err)
	showDialog(sev, title, body)
	return sev != severityInfo
}

func describeError(err error) (severity, string, string) {
	msg := i18n.I18nMsg.Dialog

	var missing *modding.MissingBasePatchError
	var moveErr *modding.MoveError
	var exitErr *modding.ExitError

	switch {
	case errors.Is(err, modding.ErrToolNotFound):
		path := app.toolPathOrDefault()
		return severityError, msg.ToolNotFoundTitle, fmt.Sprintf(msg.ToolNotFoundBody, path)
	case errors.As(err, &missing):
		return severityError, msg.MissingBasePatchTitle,
			fmt.Sprintf(msg.MissingBasePatchBody, missing.Patch, modding.ExtractedPatchesDirName)
	case errors.Is(err, modding.ErrNothingToPack):
		return severityInfo, msg.NothingToPackTitle, msg.NothingToPackBody
	case errors.Is(err, modding.ErrNoModsSelected):
		return severityWarning, msg.NoModsSelectedTitle, msg.NoModsSelectedBody
	case errors.Is(err, modding.ErrPackingFailed):
		return severityError, msg.PackingFailedTitle, msg.PackingFailedBody
	case errors.As(err, &moveErr):
		if app != nil && moveErr.Destination != app.ws.PackedDir {
			return severityError, msg.InstallFailedTitle, fmt.Sprintf(msg.InstallFailedBody, moveErr.Err)
		}
		return severityError, msg.MoveFailedTitle, fmt.Sprintf(msg.MoveFailedBody, moveErr.Err)
	case errors.As(err, &exitErr):
		return severityError, msg.ErrorTitle, fmt.Sprintf(msg.ToolFailedBody, exitErr.Code, exitErr.Stderr)
	case errors.Is(err, modding.ErrInvalidModName):
		return severityError, msg.InvalidNameTitle, msg.InvalidNameBody
	case errors.Is(err, modding.ErrModExists):
		return severityWarning, msg.ModExistsTitle, fmt.Sprintf(msg.ModExistsBody, detail(err, modding.ErrModExists))
	case errors.Is(err, modding.ErrModNotFound):
		return severityError, msg.ErrorTitle, fmt.Sprintf(msg.ModNotFoundBody, detail(err, modding.ErrModNotFound))
	case errors.Is(err, modding.ErrGameDataNotFound):
		return severityError, msg.ErrorTitle, msg.GameDataNotFoundBody
	case errors.Is(err, modding.ErrNoArchives):
		return severityInfo, msg.NoFilesTitle, msg.NoFilesBody
	case errors.Is(err, modding.ErrNoSelection):
		return severityWarning, msg.NoSelectionTitle, msg.NoSelectionBody
	case errors.Is(err, modding.ErrBackupNotFound):
		return severityError, msg.ErrorTitle, fmt.Sprintf(msg.BackupNotFoundBody, detail(err, modding.ErrBackupNotFound))
	default:
		return severityError, msg.ErrorTitle, err.Error()
	}
}

// detail strips the "<sentinel>: " prefix added when wrapping a sentinel.
func detail(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}

func (a *application) toolPathOrDefault() string {
	if a != nil && a.toolPath != "" {
		return a.toolPath
	}
	root, err := filepath.Abs(workdir)
	if err != nil {
		root = workdir
	}
	return resolveToolPath(root)
}

func promptErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errCancelled
	}
	return fmt.Errorf(i18n.I18nMsg.Common.ErrorPromptCancelled, err)
}

// confirm asks a yes/no question. --yes answers it positively.
func confirm(message string, def bool) (bool, error) {
	if assumeYes {
		return true, nil
	}
	ok := def
	if err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &ok); err != nil {
		return false, promptErr(err)
	}
	return ok, nil
}

func askInput(message, def string, opts ...survey.AskOpt) (string, error) {
	var answer string
	if err := survey.AskOne(&survey.Input{Message: message, Default: def}, &answer, opts...); err != nil {
		return "", promptErr(err)
	}
	return strings.TrimSpace(answer), nil
}

// askFolder is the folder picker: free text input with directory completion.
func askFolder(message, def string) (string, error) {
	prompt := &survey.Input{
		Message: message,
		Default: def,
		Suggest: suggestDirs,
	}
	var answer string
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", promptErr(err)
	}
	return strings.TrimSpace(answer), nil
}

func suggestDirs(toComplete string) []string {
	matches, _ := filepath.Glob(toComplete + "*")
	var dirs []string
	for _, m := range matches {
		if info, err := os.Stat(m); err == nil && info.IsDir() {
			dirs = append(dirs, m+string(filepath.Separator))
		}
	}
	return dirs
}

func askSelect(message string, options []string, def string) (string, error) {
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: 15,
	}
	if def != "" {
		prompt.Default = def
	}
	var answer string
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", promptErr(err)
	}
	return answer, nil
}

// askChecklist is the multi-selection list used for mods and archives.
func askChecklist(message string, options []string) ([]string, error) {
	prompt := &survey.MultiSelect{
		Message:  message,
		Options:  options,
		PageSize: 15,
	}
	var result []string
	if err := survey.AskOne(prompt, &result); err != nil {
		return nil, promptErr(err)
	}
	return result, nil
}
