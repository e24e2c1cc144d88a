package i18n

// PackMessages holds pack and install command translatable strings
type PackMessages struct {
	Use   string
	Short string
	Long  string

	InstallUse   string
	InstallShort string
	InstallLong  string

	FlagInstall string
	FlagAll     string

	InteractiveSelection string
	PackSuccess          string
	InstallSuccess       string
	PartialFailure       string
	BackupsCreated       string
}

// English pack messages
var EnglishPackMessages = PackMessages{
	Use:   "pack [mod...]",
	Short: "Pack selected mods into MVGL archives (Pack Only)",
	Long: `Merge the content of the selected mods over the base patches in
Extracted_Patches, pack every modified patch and move the archives to
Packed/. Without arguments an interactive mod checklist is shown.`,

	InstallUse:   "install [mod...]",
	InstallShort: "Pack selected mods and install them into the game (Pack and Install)",
	InstallLong: `Same as pack, but the produced archives replace the ones in the
game's gamedata folder. Original archives are backed up to Backups/ the
first time they are replaced.`,

	FlagInstall: "install the archives into the game instead of Packed/",
	FlagAll:     "select every mod",

	InteractiveSelection: "Select mods to pack (space to select, enter to confirm, type to filter):",
	PackSuccess:          "Mods packed successfully! The .MVGL files are in the '%s' folder.",
	InstallSuccess:       "Mods were packed and installed successfully!",
	PartialFailure:       "These patches failed to pack and were skipped: %s",
	BackupsCreated:       "Original archives backed up: %s",
}

// Chinese pack messages
var ChinesePackMessages = PackMessages{
	Use:   "pack [mod...]",
	Short: "将选中的 Mod 打包为 MVGL 封包 (仅打包)",
	Long: `将选中 Mod 的内容合并到 Extracted_Patches 中的基础补丁上，
打包每个修改过的补丁，并将封包移动到 Packed/。
不带参数时显示交互式 Mod 列表。`,

	InstallUse:   "install [mod...]",
	InstallShort: "打包选中的 Mod 并安装到游戏中 (打包并安装)",
	InstallLong: `与 pack 相同，但生成的封包会替换游戏 gamedata 文件夹中的封包。
原始封包在第一次被替换时会备份到 Backups/。`,

	FlagInstall: "将封包安装到游戏中而不是 Packed/",
	FlagAll:     "选择所有 Mod",

	InteractiveSelection: "选择要打包的 Mod (空格键选择，回车确认，输入文本筛选):",
	PackSuccess:          "Mod 打包成功！.MVGL 文件位于 '%s' 文件夹中。",
	InstallSuccess:       "Mod 已成功打包并安装！",
	PartialFailure:       "以下补丁打包失败并已跳过: %s",
	BackupsCreated:       "已备份原始封包: %s",
}
