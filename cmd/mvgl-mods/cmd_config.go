package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xishang0128/mvgl-mods/common/file"
	"github.com/xishang0128/mvgl-mods/common/i18n"
	"github.com/xishang0128/mvgl-mods/modding"
)

var configShowJSON bool

func initConfigCmd() {
	configCmd := &cobra.Command{
		Use:         i18n.I18nMsg.Config.Use,
		Short:       i18n.I18nMsg.Config.Short,
		Long:        i18n.I18nMsg.Config.Long,
		Annotations: map[string]string{annotationSkipTool: "true"},
	}

	showCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Config.ShowUse,
		Short: i18n.I18nMsg.Config.ShowShort,
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}
	showCmd.Flags().BoolVar(&configShowJSON, "json", false, i18n.I18nMsg.Common.FlagJSON)

	setGameCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Config.SetGameUse,
		Short: i18n.I18nMsg.Config.SetGameShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.selectGame(firstArg(args))
		},
	}

	setLanguageCmd := &cobra.Command{
		Use:       i18n.I18nMsg.Config.SetLanguageUse,
		Short:     i18n.I18nMsg.Config.SetLanguageShort,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: languageNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.setLanguage(firstArg(args))
		},
	}

	configCmd.AddCommand(showCmd, setGameCmd, setLanguageCmd)
	rootCmd.AddCommand(configCmd)
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

type configReport struct {
	GamePath    string                       `json:"game_path"`
	GameData    bool                         `json:"gamedata_found"`
	Language    modding.Language             `json:"language"`
	Workspace   string                       `json:"workspace"`
	Tool        string                       `json:"tool"`
	ToolFound   bool                         `json:"tool_found"`
	BasePatches map[string]bool              `json:"base_patches"`
	PatchMap    map[modding.Subfolder]string `json:"patch_map"`
}

func newConfigReport(a *application) configReport {
	basePatches := make(map[string]bool)
	for _, patch := range modding.RequiredPatches(a.cfg.Language) {
		basePatches[patch] = hasBasePatch(a, patch)
	}

	return configReport{
		GamePath:    a.cfg.GamePath,
		GameData:    a.cfg.HasValidGamePath(),
		Language:    a.cfg.Language,
		Workspace:   a.ws.Root,
		Tool:        a.toolPath,
		ToolFound:   file.Exists(a.toolPath),
		BasePatches: basePatches,
		PatchMap:    modding.PatchMap(a.cfg.Language),
	}
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	report := newConfigReport(app)

	if configShowJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf(i18n.I18nMsg.Common.ErrorFailedToMarshalJSON, err)
		}
		fmt.Println(string(data))
		return nil
	}

	msg := i18n.I18nMsg.Config
	status := func(ok bool) string {
		if ok {
			return successStyle.Render(msg.Present)
		}
		return errorStyle.Render(msg.Missing)
	}

	gamePath := report.GamePath
	if gamePath == "" {
		gamePath = msg.NotSet
	}
	fmt.Printf("%-16s %s\n", msg.GameFolderLabel+":", gamePath)
	fmt.Printf("%-16s %s\n", msg.LanguageLabel+":", report.Language)
	fmt.Printf("%-16s %s\n", msg.WorkspaceLabel+":", report.Workspace)
	fmt.Printf("%-16s %s (%s)\n", msg.ToolLabel+":", report.Tool, status(report.ToolFound))
	fmt.Printf("%s:\n", msg.BasePatchesLabel)
	for _, patch := range modding.RequiredPatches(report.Language) {
		fmt.Printf("  %-20s %s\n", patch, status(report.BasePatches[patch]))
	}
	fmt.Printf("%s:\n", msg.PatchMapLabel)
	for _, sub := range modding.Subfolders {
		fmt.Printf("  %-20s %s\n", sub, report.PatchMap[sub])
	}
	return nil
}
