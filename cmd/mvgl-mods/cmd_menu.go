package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/xishang0128/mvgl-mods/common/i18n"
	"github.com/xishang0128/mvgl-mods/modding"
)

// runMenu is the one-screen interactive front end used when no command is
// given. It loops until Quit or an interrupted prompt.
func runMenu(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	msg := i18n.I18nMsg.Menu

	for {
		fmt.Println(renderHeader(app))

		options := []string{
			msg.OptionSelectGame,
			msg.OptionLanguage,
			msg.OptionCreateMod,
		}
		// Extract only becomes available with a valid game folder.
		if app.cfg.HasValidGamePath() {
			options = append(options, msg.OptionExtract)
		}
		options = append(options,
			msg.OptionPackOnly,
			msg.OptionPackInstall,
			msg.OptionRestore,
			msg.OptionQuit,
		)

		choice, err := askSelect(msg.Prompt, options, "")
		if err != nil {
			if errors.Is(err, errCancelled) {
				return nil
			}
			return err
		}

		switch choice {
		case msg.OptionSelectGame:
			err = app.selectGame("")
		case msg.OptionLanguage:
			err = app.setLanguage("")
		case msg.OptionCreateMod:
			_, err = app.createMod("")
		case msg.OptionExtract:
			err = app.extract(ctx, nil, copyPatchesAsk)
		case msg.OptionPackOnly:
			err = app.pack(ctx, nil, false, false)
		case msg.OptionPackInstall:
			err = app.pack(ctx, nil, false, true)
		case msg.OptionRestore:
			err = app.restore(nil)
		case msg.OptionQuit:
			return nil
		}

		if err != nil {
			reportError(err)
		}
	}
}

func renderHeader(a *application) string {
	cfgMsg := i18n.I18nMsg.Config
	msg := i18n.I18nMsg.Menu

	gamePath := a.cfg.GamePath
	if gamePath == "" {
		gamePath = cfgMsg.NotSet
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(msg.Title))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(cfgMsg.GameFolderLabel+":"), gamePath)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(cfgMsg.LanguageLabel+":"), a.cfg.Language)
	if !a.cfg.HasValidGamePath() {
		b.WriteString(warningStyle.Render(msg.ExtractDisabled))
		b.WriteString("\n")
	}

	b.WriteString(labelStyle.Render(cfgMsg.BasePatchesLabel + ":"))
	b.WriteString("\n")
	for _, patch := range modding.RequiredPatches(a.cfg.Language) {
		status := errorStyle.Render(cfgMsg.Missing)
		if hasBasePatch(a, patch) {
			status = successStyle.Render(cfgMsg.Present)
		}
		fmt.Fprintf(&b, "  %s %s\n", patch, status)
	}

	b.WriteString(labelStyle.Render(msg.ModsLabel + ":"))
	b.WriteString("\n")
	mods, _ := a.manager.ListMods()
	if len(mods) == 0 {
		fmt.Fprintf(&b, "  "+i18n.I18nMsg.Mod.NoMods+"\n", modding.ModsDirName)
	}
	for _, mod := range mods {
		fmt.Fprintf(&b, "  %s %s\n", mod.Name, labelStyle.Render(describeContent(mod)))
	}

	return dialogStyle.BorderForeground(lipgloss.Color("241")).Render(strings.TrimRight(b.String(), "\n"))
}

func hasBasePatch(a *application, patch string) bool {
	patches, _ := a.manager.BasePatches()
	for _, p := range patches {
		if p == patch {
			return true
		}
	}
	return false
}

func describeContent(mod modding.Mod) string {
	subs := mod.ContentSubfolders()
	if len(subs) == 0 {
		return "(" + i18n.I18nMsg.Mod.EmptyLabel + ")"
	}
	names := make([]string, 0, len(subs))
	for _, s := range subs {
		names = append(names, string(s))
	}
	return "(" + i18n.I18nMsg.Mod.ContentLabel + ": " + strings.Join(names, ", ") + ")"
}
