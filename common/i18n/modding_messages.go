package i18n

// ModdingMessages holds modding package translatable strings
type ModdingMessages struct {
	// Error messages
	ErrorCreateMod     string
	ErrorRemoveStaging string
	ErrorCreateStaging string
	ErrorRemoveOld     string
	ErrorCopyPatch     string
	ErrorSeedPatch     string
	ErrorMergeContent  string
	ErrorBackup        string
	ErrorMove          string
	ErrorRestore       string
	ErrorUnexpected    string

	// Tool messages
	Executing        string
	ToolNotFound     string
	ToolStderr       string
	CommandFailed    string
	CommandSucceeded string

	// Info messages
	CreatedMod         string
	ExtractionFinished string
	CopyingPatches     string
	CopiedPatch        string
	NoLanguageSelected string
	StartPack          string
	StartPackInstall   string
	UsingLanguage      string
	ProcessingMod      string
	FoundContent       string
	BasePatchMissing   string
	CopiedSubfolder    string
	CopiedRoot         string
	NothingToPack      string
	PackingArchives    string
	Installing         string
	MovingPacked       string
	InstalledArchive   string
	MovedArchive       string
	BackedUp           string
	Restored           string

	// Progress stage labels
	StageExtract string
	StageStaging string
	StagePacking string
	StageMoving  string
}

// English modding messages
var EnglishModdingMessages = ModdingMessages{
	ErrorCreateMod:     "could not create mod directory: %v",
	ErrorRemoveStaging: "could not remove working folder %s: %v",
	ErrorCreateStaging: "could not create working folder: %v",
	ErrorRemoveOld:     "could not remove previous output %s: %v",
	ErrorCopyPatch:     "failed to copy patch %s: %v",
	ErrorSeedPatch:     "failed to copy base patch %s: %v",
	ErrorMergeContent:  "failed to merge %s into %s: %v",
	ErrorBackup:        "could not back up '%s': %v",
	ErrorMove:          "error during file move of '%s': %v",
	ErrorRestore:       "failed to restore %s: %v",
	ErrorUnexpected:    "An unexpected error occurred: %v",

	Executing:        "Executing: %s",
	ToolNotFound:     "Command not found. Make sure '%s' exists.",
	ToolStderr:       "ERROR: %s",
	CommandFailed:    "Command failed with return code %d",
	CommandSucceeded: "Command executed successfully.",

	CreatedMod:         "Created mod: %s",
	ExtractionFinished: "Extraction process finished.",
	CopyingPatches:     "Copying extracted patches...",
	CopiedPatch:        "Copied '%s' to '%s'.",
	NoLanguageSelected: "Warning: No language selected, defaulting to %s.",
	StartPack:          "Starting to pack mods: %s",
	StartPackInstall:   "Starting to pack and install mods: %s",
	UsingLanguage:      "Using language '%s' (Code: %s)",
	ProcessingMod:      "Processing mod: %s",
	FoundContent:       "-> Found content in '%s'. Preparing '%s'.",
	BasePatchMissing:   "ERROR: Base patch missing: %s",
	CopiedSubfolder:    "   - Copied folder '%s' into temp patch.",
	CopiedRoot:         "   - Copied 'root' contents into base of temp patch.",
	NothingToPack:      "Packing cancelled: No mod content found.",
	PackingArchives:    "All mods processed. Now packing into .mvgl files...",
	Installing:         "Installing packed files...",
	MovingPacked:       "Moving packed files to '%s' directory...",
	InstalledArchive:   "Installed '%s' to game folder.",
	MovedArchive:       "Moved '%s' to '%s' directory.",
	BackedUp:           "Backed up original '%s' to '%s'.",
	Restored:           "Restored '%s' to game folder.",

	StageExtract: "Extracting",
	StageStaging: "Staging",
	StagePacking: "Packing",
	StageMoving:  "Moving",
}

// Chinese modding messages
var ChineseModdingMessages = ModdingMessages{
	ErrorCreateMod:     "无法创建 Mod 文件夹: %v",
	ErrorRemoveStaging: "无法删除工作文件夹 %s: %v",
	ErrorCreateStaging: "无法创建工作文件夹: %v",
	ErrorRemoveOld:     "无法删除之前的输出 %s: %v",
	ErrorCopyPatch:     "复制补丁 %s 失败: %v",
	ErrorSeedPatch:     "复制基础补丁 %s 失败: %v",
	ErrorMergeContent:  "将 %s 合并到 %s 失败: %v",
	ErrorBackup:        "无法备份 '%s': %v",
	ErrorMove:          "移动 '%s' 时出错: %v",
	ErrorRestore:       "恢复 %s 失败: %v",
	ErrorUnexpected:    "发生意外错误: %v",

	Executing:        "执行: %s",
	ToolNotFound:     "未找到命令。请确认 '%s' 存在。",
	ToolStderr:       "错误: %s",
	CommandFailed:    "命令执行失败，返回码 %d",
	CommandSucceeded: "命令执行成功。",

	CreatedMod:         "已创建 Mod: %s",
	ExtractionFinished: "解包流程结束。",
	CopyingPatches:     "正在复制解包的补丁...",
	CopiedPatch:        "已将 '%s' 复制到 '%s'。",
	NoLanguageSelected: "警告: 未选择语言，默认使用 %s。",
	StartPack:          "开始打包 Mod: %s",
	StartPackInstall:   "开始打包并安装 Mod: %s",
	UsingLanguage:      "使用语言 '%s' (代码: %s)",
	ProcessingMod:      "正在处理 Mod: %s",
	FoundContent:       "-> 在 '%s' 中发现内容。准备 '%s'。",
	BasePatchMissing:   "错误: 缺少基础补丁: %s",
	CopiedSubfolder:    "   - 已将文件夹 '%s' 复制到临时补丁。",
	CopiedRoot:         "   - 已将 'root' 内容复制到临时补丁根目录。",
	NothingToPack:      "打包已取消: 未找到 Mod 内容。",
	PackingArchives:    "所有 Mod 已处理。正在打包为 .mvgl 文件...",
	Installing:         "正在安装打包的文件...",
	MovingPacked:       "正在将打包的文件移动到 '%s' 文件夹...",
	InstalledArchive:   "已将 '%s' 安装到游戏文件夹。",
	MovedArchive:       "已将 '%s' 移动到 '%s' 文件夹。",
	BackedUp:           "已将原始 '%s' 备份到 '%s'。",
	Restored:           "已将 '%s' 恢复到游戏文件夹。",

	StageExtract: "解包",
	StageStaging: "暂存",
	StagePacking: "打包",
	StageMoving:  "移动",
}
