package i18n

// ConfigMessages holds config command translatable strings
type ConfigMessages struct {
	Use   string
	Short string
	Long  string

	ShowUse          string
	ShowShort        string
	SetGameUse       string
	SetGameShort     string
	SetLanguageUse   string
	SetLanguageShort string

	GameFolderLabel  string
	LanguageLabel    string
	WorkspaceLabel   string
	ToolLabel        string
	BasePatchesLabel string
	PatchMapLabel    string
	NotSet           string
	Present          string
	Missing          string

	PromptGameFolder     string
	PromptLanguage       string
	GameFolderSet        string
	InvalidGameFolder    string
	ErrorInvalidLanguage string
}

// English config messages
var EnglishConfigMessages = ConfigMessages{
	Use:   "config",
	Short: "Show or change the game folder and mod language",
	Long:  `Show or change the persisted configuration (config.json).`,

	ShowUse:          "show",
	ShowShort:        "Show the current configuration",
	SetGameUse:       "set-game [game folder]",
	SetGameShort:     "Select the game installation folder",
	SetLanguageUse:   "set-language [language]",
	SetLanguageShort: "Select the language whose patches mods are packed into",

	GameFolderLabel:  "Game Folder",
	LanguageLabel:    "Mod Language",
	WorkspaceLabel:   "Workspace",
	ToolLabel:        "Archive Tool",
	BasePatchesLabel: "Base patches",
	PatchMapLabel:    "Subfolder targets",
	NotSet:           "(not set)",
	Present:          "present",
	Missing:          "missing",

	PromptGameFolder:     "Select The Hundred Line game folder:",
	PromptLanguage:       "Mod Language:",
	GameFolderSet:        "Game folder set to: %s",
	InvalidGameFolder:    "Invalid game folder selected: %s. 'gamedata' not found.",
	ErrorInvalidLanguage: "Unsupported language %q, choose one of: %s",
}

// Chinese config messages
var ChineseConfigMessages = ConfigMessages{
	Use:   "config",
	Short: "查看或修改游戏文件夹和 Mod 语言",
	Long:  `查看或修改保存的配置 (config.json)。`,

	ShowUse:          "show",
	ShowShort:        "显示当前配置",
	SetGameUse:       "set-game [游戏文件夹]",
	SetGameShort:     "选择游戏安装文件夹",
	SetLanguageUse:   "set-language [语言]",
	SetLanguageShort: "选择 Mod 打包所针对的语言补丁",

	GameFolderLabel:  "游戏文件夹",
	LanguageLabel:    "Mod 语言",
	WorkspaceLabel:   "工作区",
	ToolLabel:        "封包工具",
	BasePatchesLabel: "基础补丁",
	PatchMapLabel:    "子文件夹目标",
	NotSet:           "(未设置)",
	Present:          "已就绪",
	Missing:          "缺失",

	PromptGameFolder:     "选择 The Hundred Line 游戏文件夹:",
	PromptLanguage:       "Mod 语言:",
	GameFolderSet:        "游戏文件夹已设置为: %s",
	InvalidGameFolder:    "所选游戏文件夹无效: %s。未找到 'gamedata'。",
	ErrorInvalidLanguage: "不支持的语言 %q，可选: %s",
}
