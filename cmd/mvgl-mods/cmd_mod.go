package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xishang0128/mvgl-mods/common/i18n"
	"github.com/xishang0128/mvgl-mods/modding"
)

func initModCmd() {
	modCmd := &cobra.Command{
		Use:         i18n.I18nMsg.Mod.Use,
		Short:       i18n.I18nMsg.Mod.Short,
		Long:        i18n.I18nMsg.Mod.Long,
		Annotations: map[string]string{annotationSkipTool: "true"},
	}

	createCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Mod.CreateUse,
		Short: i18n.I18nMsg.Mod.CreateShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := app.createMod(firstArg(args))
			return err
		},
	}

	listCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Mod.ListUse,
		Short: i18n.I18nMsg.Mod.ListShort,
		Args:  cobra.NoArgs,
		RunE:  runModList,
	}

	modCmd.AddCommand(createCmd, listCmd)
	rootCmd.AddCommand(modCmd)
}

func runModList(cmd *cobra.Command, args []string) error {
	mods, err := app.manager.ListMods()
	if err != nil {
		return err
	}
	if len(mods) == 0 {
		fmt.Printf(i18n.I18nMsg.Mod.NoMods+"\n", modding.ModsDirName)
		return nil
	}

	for _, mod := range mods {
		fmt.Printf("%-30s %s\n", mod.Name, labelStyle.Render(describeContent(mod)))
	}
	fmt.Printf("\n"+i18n.I18nMsg.Mod.TotalMods+"\n", len(mods))
	return nil
}
