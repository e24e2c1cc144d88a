package main

import (
	"fmt"
	"runtime"
	"sort"

	"github.com/spf13/cobra"

	"github.com/xishang0128/mvgl-mods/common/file"
	"github.com/xishang0128/mvgl-mods/common/i18n"
	"github.com/xishang0128/mvgl-mods/compression"
	"github.com/xishang0128/mvgl-mods/constant"
)

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       i18n.I18nMsg.App.VersionCmdShort,
	Long:        i18n.I18nMsg.App.VersionCmdLong,
	Annotations: map[string]string{annotationSkipSetup: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s\n", i18n.I18nMsg.App.VersionTitle)
		fmt.Printf("%s: %s(%s)\n", i18n.I18nMsg.App.VersionLabel, constant.Version, constant.BuildTime)
		fmt.Printf("%s: %s\n", i18n.I18nMsg.App.GoVersionLabel, runtime.Version())
		fmt.Printf("%s: %s/%s\n", i18n.I18nMsg.App.PlatformLabel, runtime.GOOS, runtime.GOARCH)

		tool := resolveToolPath(workdir)
		status := i18n.I18nMsg.Config.Missing
		if file.Exists(tool) {
			status = i18n.I18nMsg.Config.Present
		}
		fmt.Printf("%s: %s (%s)\n", i18n.I18nMsg.App.ArchiveToolLabel, tool, status)

		fmt.Printf("\n%s\n", i18n.I18nMsg.App.CompressionTitle)
		implementations := compression.NewDecompressorManager().GetImplementationInfo()

		types := make([]compression.CompressionType, 0, len(implementations))
		for t := range implementations {
			types = append(types, t)
		}
		sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

		for _, t := range types {
			fmt.Printf("  %-8s: %s\n", t, implementations[t])
		}

		info := compression.GetBuildInfo()
		fmt.Printf("\n%s: %v\n", i18n.I18nMsg.App.CGOEnabledLabel, info["cgo_enabled"])
	},
}

func initVersionCmd() {
	rootCmd.AddCommand(versionCmd)
}
