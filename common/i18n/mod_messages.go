package i18n

// ModMessages holds mod command translatable strings
type ModMessages struct {
	Use   string
	Short string
	Long  string

	CreateUse   string
	CreateShort string
	ListUse     string
	ListShort   string

	PromptModName string
	NoMods        string
	TotalMods     string
	ContentLabel  string
	EmptyLabel    string
}

// English mod messages
var EnglishModMessages = ModMessages{
	Use:   "mod",
	Short: "Create and list mods",
	Long: `Create and list mods. Each mod is a folder under Mods/ with the
subfolders lua, images, text, message, data and root.`,

	CreateUse:   "create [name]",
	CreateShort: "Create a new mod with empty content folders",
	ListUse:     "list",
	ListShort:   "List available mods",

	PromptModName: "Enter the name for the new mod:",
	NoMods:        "No mods found in '%s'.",
	TotalMods:     "Total %d mods",
	ContentLabel:  "content",
	EmptyLabel:    "empty",
}

// Chinese mod messages
var ChineseModMessages = ModMessages{
	Use:   "mod",
	Short: "创建和列出 Mod",
	Long: `创建和列出 Mod。每个 Mod 是 Mods/ 下的一个文件夹，
包含 lua、images、text、message、data 和 root 子文件夹。`,

	CreateUse:   "create [名称]",
	CreateShort: "创建带有空内容文件夹的新 Mod",
	ListUse:     "list",
	ListShort:   "列出可用的 Mod",

	PromptModName: "输入新 Mod 的名称:",
	NoMods:        "在 '%s' 中未找到 Mod。",
	TotalMods:     "共 %d 个 Mod",
	ContentLabel:  "内容",
	EmptyLabel:    "空",
}
