package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xishang0128/mvgl-mods/common/i18n"
	"github.com/xishang0128/mvgl-mods/modding"
)

var restoreList bool

func initRestoreCmd() {
	restoreCmd := &cobra.Command{
		Use:         i18n.I18nMsg.Restore.Use,
		Short:       i18n.I18nMsg.Restore.Short,
		Long:        i18n.I18nMsg.Restore.Long,
		Annotations: map[string]string{annotationSkipTool: "true"},
		RunE:        runRestore,
	}
	restoreCmd.Flags().BoolVarP(&restoreList, "list", "l", false, i18n.I18nMsg.Restore.FlagList)

	rootCmd.AddCommand(restoreCmd)
}

func runRestore(cmd *cobra.Command, args []string) error {
	if !restoreList {
		return app.restore(args)
	}

	backups, err := app.manager.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Printf(i18n.I18nMsg.Restore.NoBackups+"\n", modding.BackupsDirName)
		return nil
	}
	for _, b := range backups {
		fmt.Printf("%-30s %10s\n", b.Archive, formatSize(b.Size))
	}
	fmt.Printf("\n"+i18n.I18nMsg.Restore.TotalBackups+"\n", len(backups))
	return nil
}

// formatSize converts bytes into a human-readable string.
func formatSize(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	if bytes >= GB {
		return fmt.Sprintf("%.1fGB", float64(bytes)/GB)
	} else if bytes >= MB {
		return fmt.Sprintf("%.1fMB", float64(bytes)/MB)
	} else {
		return fmt.Sprintf("%.1fKB", float64(bytes)/KB)
	}
}
