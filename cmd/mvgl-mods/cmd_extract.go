package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/xishang0128/mvgl-mods/common/i18n"
)

var (
	extractCopyPatches   bool
	extractNoCopyPatches bool
)

func initExtractCmd() {
	extractCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Extract.Use,
		Short: i18n.I18nMsg.Extract.Short,
		Long:  i18n.I18nMsg.Extract.Long,
		RunE:  runExtract,
	}

	extractCmd.Flags().BoolVar(&extractCopyPatches, "copy-patches", false, i18n.I18nMsg.Extract.FlagCopyPatches)
	extractCmd.Flags().BoolVar(&extractNoCopyPatches, "no-copy-patches", false, i18n.I18nMsg.Extract.FlagNoCopyPatches)
	extractCmd.MarkFlagsMutuallyExclusive("copy-patches", "no-copy-patches")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	start := time.Now()
	defer func() {
		fmt.Printf(i18n.I18nMsg.Common.ElapsedTime+"\n", time.Since(start).Round(time.Millisecond))
	}()

	mode := copyPatchesAsk
	switch {
	case extractCopyPatches:
		mode = copyPatchesAlways
	case extractNoCopyPatches:
		mode = copyPatchesNever
	}
	return app.extract(cmd.Context(), args, mode)
}
