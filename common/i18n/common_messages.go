package i18n

// CommonMessages holds common translatable strings
type CommonMessages struct {
	// Error messages
	ErrorFailedToLoadConfig  string
	ErrorFailedToSaveConfig  string
	ErrorFailedToCreateDir   string
	ErrorFailedToOpenLog     string
	ErrorFailedToMarshalJSON string
	ErrorFailedToGetWorkdir  string
	ErrorPromptCancelled     string

	// Info messages
	ConfigSaved         string
	StaleStagingRemoved string

	// Common flag descriptions
	FlagWorkdir  string
	FlagTool     string
	FlagLogFile  string
	FlagProgress string
	FlagYes      string
	FlagJSON     string
	ElapsedTime  string
}

// English common messages
var EnglishCommonMessages = CommonMessages{
	ErrorFailedToLoadConfig:  "Could not read config file. Using defaults. (%v)",
	ErrorFailedToSaveConfig:  "Failed to save configuration: %v",
	ErrorFailedToCreateDir:   "Failed to create workspace folders: %v",
	ErrorFailedToOpenLog:     "Failed to open log file: %v",
	ErrorFailedToMarshalJSON: "Failed to marshal JSON: %v",
	ErrorFailedToGetWorkdir:  "Failed to resolve workspace folder: %v",
	ErrorPromptCancelled:     "Prompt cancelled: %v",

	ConfigSaved:         "Configuration saved. (Language: %s)",
	StaleStagingRemoved: "Removed leftover working folders from an interrupted run.",

	FlagWorkdir:  "workspace folder holding Mods, Extracted, Extracted_Patches and Packed",
	FlagTool:     "path to the archive tool (default: THL-Tools next to the executable)",
	FlagLogFile:  "also append log lines to this file",
	FlagProgress: "show progress bars instead of streaming the log",
	FlagYes:      "answer yes to confirmation prompts",
	FlagJSON:     "output as JSON",
	ElapsedTime:  "Elapsed time: %s",
}

// Chinese common messages
var ChineseCommonMessages = CommonMessages{
	ErrorFailedToLoadConfig:  "无法读取配置文件，使用默认配置。(%v)",
	ErrorFailedToSaveConfig:  "无法保存配置: %v",
	ErrorFailedToCreateDir:   "无法创建工作区文件夹: %v",
	ErrorFailedToOpenLog:     "无法打开日志文件: %v",
	ErrorFailedToMarshalJSON: "无法序列化JSON: %v",
	ErrorFailedToGetWorkdir:  "无法解析工作区文件夹: %v",
	ErrorPromptCancelled:     "输入已取消: %v",

	ConfigSaved:         "配置已保存。(语言: %s)",
	StaleStagingRemoved: "已删除上次中断运行遗留的工作文件夹。",

	FlagWorkdir:  "存放 Mods、Extracted、Extracted_Patches 和 Packed 的工作区文件夹",
	FlagTool:     "封包工具路径（默认: 程序旁的 THL-Tools）",
	FlagLogFile:  "同时将日志追加写入此文件",
	FlagProgress: "显示进度条而不是实时输出日志",
	FlagYes:      "对所有确认提示回答“是”",
	FlagJSON:     "以JSON格式输出",
	ElapsedTime:  "耗时: %s",
}
