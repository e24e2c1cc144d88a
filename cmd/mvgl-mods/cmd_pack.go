package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/xishang0128/mvgl-mods/common/i18n"
)

var (
	packInstall bool
	packAll     bool
)

func initPackCmd() {
	packCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Pack.Use,
		Short: i18n.I18nMsg.Pack.Short,
		Long:  i18n.I18nMsg.Pack.Long,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(cmd, args, packInstall)
		},
	}
	packCmd.Flags().BoolVarP(&packInstall, "install", "i", false, i18n.I18nMsg.Pack.FlagInstall)
	packCmd.Flags().BoolVarP(&packAll, "all", "a", false, i18n.I18nMsg.Pack.FlagAll)

	installCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Pack.InstallUse,
		Short: i18n.I18nMsg.Pack.InstallShort,
		Long:  i18n.I18nMsg.Pack.InstallLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(cmd, args, true)
		},
	}
	installCmd.Flags().BoolVarP(&packAll, "all", "a", false, i18n.I18nMsg.Pack.FlagAll)

	rootCmd.AddCommand(packCmd, installCmd)
}

func runPack(cmd *cobra.Command, args []string, install bool) error {
	start := time.Now()
	defer func() {
		fmt.Printf(i18n.I18nMsg.Common.ElapsedTime+"\n", time.Since(start).Round(time.Millisecond))
	}()

	return app.pack(cmd.Context(), args, packAll, install)
}
