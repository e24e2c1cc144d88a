package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/xishang0128/mvgl-mods/common/i18n"
)

var (
	rootCmd      *cobra.Command
	workdir      string
	toolPath     string
	logFile      string
	showProgress bool
	assumeYes    bool
)

func init() {
	i18n.InitLanguage()

	rootCmd = &cobra.Command{
		Use:           "mvgl-mods",
		Short:         i18n.I18nMsg.App.AppDescription,
		Long:          i18n.I18nMsg.App.AppLongDescription,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupApp(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.close()
		},
		RunE: runMenu,
	}

	rootCmd.PersistentFlags().StringVarP(&workdir, "workdir", "C", ".", i18n.I18nMsg.Common.FlagWorkdir)
	rootCmd.PersistentFlags().StringVar(&toolPath, "tool", "", i18n.I18nMsg.Common.FlagTool)
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", i18n.I18nMsg.Common.FlagLogFile)
	rootCmd.PersistentFlags().BoolVar(&showProgress, "progress", false, i18n.I18nMsg.Common.FlagProgress)
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, i18n.I18nMsg.Common.FlagYes)

	initConfigCmd()
	initModCmd()
	initExtractCmd()
	initPackCmd()
	initRestoreCmd()
	initVersionCmd()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if reportError(err) {
			os.Exit(1)
		}
	}
}
