package i18n

// MenuMessages holds interactive menu translatable strings
type MenuMessages struct {
	Title     string
	Prompt    string
	ModsLabel string

	OptionSelectGame  string
	OptionLanguage    string
	OptionCreateMod   string
	OptionExtract     string
	OptionPackOnly    string
	OptionPackInstall string
	OptionRestore     string
	OptionQuit        string

	ExtractDisabled string
}

// English menu messages
var EnglishMenuMessages = MenuMessages{
	Title:     "The Hundred Line - Mod Manager",
	Prompt:    "Choose an action:",
	ModsLabel: "Available Mods",

	OptionSelectGame:  "Select game folder...",
	OptionLanguage:    "Change mod language",
	OptionCreateMod:   "Create New Mod",
	OptionExtract:     "Extract MVGL",
	OptionPackOnly:    "Pack Only",
	OptionPackInstall: "Pack and Install",
	OptionRestore:     "Restore original archives",
	OptionQuit:        "Quit",

	ExtractDisabled: "Select a game folder containing 'gamedata' first.",
}

// Chinese menu messages
var ChineseMenuMessages = MenuMessages{
	Title:     "The Hundred Line - Mod 管理器",
	Prompt:    "选择操作:",
	ModsLabel: "可用 Mod",

	OptionSelectGame:  "选择游戏文件夹...",
	OptionLanguage:    "切换 Mod 语言",
	OptionCreateMod:   "创建新 Mod",
	OptionExtract:     "解包 MVGL",
	OptionPackOnly:    "仅打包",
	OptionPackInstall: "打包并安装",
	OptionRestore:     "恢复原始封包",
	OptionQuit:        "退出",

	ExtractDisabled: "请先选择包含 'gamedata' 的游戏文件夹。",
}
