package i18n

// DialogMessages holds titles and bodies of the modal notices
type DialogMessages struct {
	ErrorTitle   string
	SuccessTitle string

	ToolNotFoundTitle     string
	ToolNotFoundBody      string
	MissingBasePatchTitle string
	MissingBasePatchBody  string
	NothingToPackTitle    string
	NothingToPackBody     string
	NoModsSelectedTitle   string
	NoModsSelectedBody    string
	PackingFailedTitle    string
	PackingFailedBody     string
	InstallFailedTitle    string
	InstallFailedBody     string
	MoveFailedTitle       string
	MoveFailedBody        string
	InvalidNameTitle      string
	InvalidNameBody       string
	ModExistsTitle        string
	ModExistsBody         string
	GameDataNotFoundBody  string
	NoFilesTitle          string
	NoFilesBody           string
	NoSelectionTitle      string
	NoSelectionBody       string
	BackupNotFoundBody    string
	ModNotFoundBody       string
	ToolFailedBody        string
}

// English dialog messages
var EnglishDialogMessages = DialogMessages{
	ErrorTitle:   "Error",
	SuccessTitle: "Success",

	ToolNotFoundTitle:     "Tool Not Found",
	ToolNotFoundBody:      "The helper tool was not found at the expected location:\n%s\n\nPlease make sure the THL-Tools folder is next to the application.",
	MissingBasePatchTitle: "Missing Base Patch",
	MissingBasePatchBody:  "The required base patch '%s' was not found in '%s'.\nPlease extract the correct language patches from the game first.",
	NothingToPackTitle:    "Nothing to Pack",
	NothingToPackBody:     "The selected mods have no content in their subfolders.",
	NoModsSelectedTitle:   "No Mods Selected",
	NoModsSelectedBody:    "Please select at least one mod to pack.",
	PackingFailedTitle:    "Packing Failed",
	PackingFailedBody:     "No MVGL files were created. Check the log for errors.",
	InstallFailedTitle:    "Install Failed",
	InstallFailedBody:     "Could not install MVGL files:\n%v",
	MoveFailedTitle:       "Move Failed",
	MoveFailedBody:        "Could not move MVGL files:\n%v",
	InvalidNameTitle:      "Invalid Name",
	InvalidNameBody:       "Mod name contains invalid characters.",
	ModExistsTitle:        "Mod Exists",
	ModExistsBody:         "A mod named '%s' already exists.",
	GameDataNotFoundBody:  "Game 'gamedata' folder not found.",
	NoFilesTitle:          "No Files",
	NoFilesBody:           "No .mvgl files found in the gamedata folder.",
	NoSelectionTitle:      "No Selection",
	NoSelectionBody:       "Please select one or more files.",
	BackupNotFoundBody:    "No backup exists for '%s'.",
	ModNotFoundBody:       "Mod '%s' does not exist.",
	ToolFailedBody:        "The archive tool failed (exit code %d):\n%s",
}

// Chinese dialog messages
var ChineseDialogMessages = DialogMessages{
	ErrorTitle:   "错误",
	SuccessTitle: "成功",

	ToolNotFoundTitle:     "未找到工具",
	ToolNotFoundBody:      "在预期位置未找到辅助工具:\n%s\n\n请确认 THL-Tools 文件夹位于程序旁边。",
	MissingBasePatchTitle: "缺少基础补丁",
	MissingBasePatchBody:  "在 '%[2]s' 中未找到所需的基础补丁 '%[1]s'。\n请先从游戏中解包对应语言的补丁。",
	NothingToPackTitle:    "没有可打包的内容",
	NothingToPackBody:     "所选 Mod 的子文件夹中没有内容。",
	NoModsSelectedTitle:   "未选择 Mod",
	NoModsSelectedBody:    "请至少选择一个要打包的 Mod。",
	PackingFailedTitle:    "打包失败",
	PackingFailedBody:     "未生成任何 MVGL 文件。请查看日志中的错误。",
	InstallFailedTitle:    "安装失败",
	InstallFailedBody:     "无法安装 MVGL 文件:\n%v",
	MoveFailedTitle:       "移动失败",
	MoveFailedBody:        "无法移动 MVGL 文件:\n%v",
	InvalidNameTitle:      "名称无效",
	InvalidNameBody:       "Mod 名称包含无效字符。",
	ModExistsTitle:        "Mod 已存在",
	ModExistsBody:         "名为 '%s' 的 Mod 已存在。",
	GameDataNotFoundBody:  "未找到游戏的 'gamedata' 文件夹。",
	NoFilesTitle:          "没有文件",
	NoFilesBody:           "gamedata 文件夹中未找到 .mvgl 文件。",
	NoSelectionTitle:      "未选择",
	NoSelectionBody:       "请选择一个或多个文件。",
	BackupNotFoundBody:    "'%s' 没有备份。",
	ModNotFoundBody:       "Mod '%s' 不存在。",
	ToolFailedBody:        "封包工具执行失败 (退出码 %d):\n%s",
}
