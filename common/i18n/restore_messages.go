package i18n

// RestoreMessages holds restore command translatable strings
type RestoreMessages struct {
	Use   string
	Short string
	Long  string

	FlagList string

	InteractiveSelection string
	NoBackups            string
	TotalBackups         string
	RestoreSuccess       string
}

// English restore messages
var EnglishRestoreMessages = RestoreMessages{
	Use:   "restore [archive...]",
	Short: "Restore original game archives from Backups/",
	Long: `Restore original game archives that were backed up before mods were
installed over them. Without arguments an interactive selection is shown.`,

	FlagList: "only list the available backups",

	InteractiveSelection: "Select archives to restore:",
	NoBackups:            "No backups found in '%s'.",
	TotalBackups:         "Total %d backups",
	RestoreSuccess:       "%d archive(s) restored to the game folder.",
}

// Chinese restore messages
var ChineseRestoreMessages = RestoreMessages{
	Use:   "restore [封包...]",
	Short: "从 Backups/ 恢复原始游戏封包",
	Long: `恢复在安装 Mod 前备份的原始游戏封包。
不带参数时显示交互式选择。`,

	FlagList: "仅列出可用的备份",

	InteractiveSelection: "选择要恢复的封包:",
	NoBackups:            "在 '%s' 中未找到备份。",
	TotalBackups:         "共 %d 个备份",
	RestoreSuccess:       "已将 %d 个封包恢复到游戏文件夹。",
}
