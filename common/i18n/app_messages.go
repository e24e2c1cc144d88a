package i18n

// AppMessages holds application-level translatable strings
type AppMessages struct {
	AppDescription     string
	AppLongDescription string

	// Version command messages
	VersionTitle     string
	VersionLabel     string
	GoVersionLabel   string
	PlatformLabel    string
	CompressionTitle string
	CGOEnabledLabel  string
	ArchiveToolLabel string
	VersionCmdShort  string
	VersionCmdLong   string
}

// English app messages
var EnglishAppMessages = AppMessages{
	AppDescription: "Mod manager for MVGL game archives",
	AppLongDescription: `A tool for managing mods packed into MVGL container archives.

It extracts the game's .mvgl archives with the bundled archive tool,
keeps each mod as a folder of content categories, and repacks the
modified patch archives into the Packed folder or the game itself.

Run without a command to open the interactive menu.`,

	VersionTitle:     "mvgl-mods",
	VersionLabel:     "Version",
	GoVersionLabel:   "Go Version",
	PlatformLabel:    "Platform",
	CompressionTitle: "Backup codecs:",
	CGOEnabledLabel:  "CGO enabled",
	ArchiveToolLabel: "Archive tool",
	VersionCmdShort:  "Show version information",
	VersionCmdLong:   "Display version information including backup codec details",
}

// Chinese app messages
var ChineseAppMessages = AppMessages{
	AppDescription: "MVGL 游戏封包的 Mod 管理工具",
	AppLongDescription: `用于管理打包进 MVGL 容器封包的 Mod 的工具。

它使用附带的封包工具解包游戏的 .mvgl 文件，
将每个 Mod 保存为按内容分类的文件夹，
并将修改后的补丁封包重新打包到 Packed 文件夹或直接安装到游戏中。

不带子命令运行即可打开交互菜单。`,

	VersionTitle:     "mvgl-mods",
	VersionLabel:     "版本",
	GoVersionLabel:   "Go 版本",
	PlatformLabel:    "平台",
	CompressionTitle: "备份编解码器:",
	CGOEnabledLabel:  "启用 CGO",
	ArchiveToolLabel: "封包工具",
	VersionCmdShort:  "显示版本信息",
	VersionCmdLong:   "显示版本信息，包括备份编解码器详情",
}
