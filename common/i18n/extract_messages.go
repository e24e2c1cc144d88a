package i18n

// ExtractMessages holds extract command translatable strings
type ExtractMessages struct {
	Use   string
	Short string
	Long  string

	FlagCopyPatches   string
	FlagNoCopyPatches string

	InteractiveSelection string
	CopyPatchesPrompt    string
	PatchesCopied        string
	Summary              string
	ExtractionCompleted  string
}

// English extract messages
var EnglishExtractMessages = ExtractMessages{
	Use:   "extract [archive.mvgl...]",
	Short: "Extract MVGL archives from the game",
	Long: `Extract the selected .mvgl archives from the game's gamedata folder
into Extracted/. Without arguments an interactive selection is shown.`,

	FlagCopyPatches:   "copy extracted patches to Extracted_Patches without asking",
	FlagNoCopyPatches: "never copy extracted patches to Extracted_Patches",

	InteractiveSelection: "Select MVGL files to extract (space to select, enter to confirm, type to filter):",
	CopyPatchesPrompt: `You have extracted patch files. Would you like to copy them to a dedicated 'Extracted_Patches' folder?

IMPORTANT:
- You need '%s' for Lua modding.
- For the selected language '%s', you need '%s' for Images/Data/Root and '%s' for Text/Message.`,
	PatchesCopied:       "Patches copied successfully to Extracted_Patches folder.",
	Summary:             "Extracted %d archive(s), %d failed.",
	ExtractionCompleted: "Extraction completed!",
}

// Chinese extract messages
var ChineseExtractMessages = ExtractMessages{
	Use:   "extract [封包.mvgl...]",
	Short: "从游戏中解包 MVGL 封包",
	Long: `将游戏 gamedata 文件夹中选中的 .mvgl 封包解包到 Extracted/。
不带参数时显示交互式选择。`,

	FlagCopyPatches:   "不询问，直接将解包的补丁复制到 Extracted_Patches",
	FlagNoCopyPatches: "不将解包的补丁复制到 Extracted_Patches",

	InteractiveSelection: "选择要解包的 MVGL 文件 (空格键选择，回车确认，输入文本筛选):",
	CopyPatchesPrompt: `已解包补丁文件。是否将它们复制到专用的 'Extracted_Patches' 文件夹？

重要:
- Lua Mod 需要 '%s'。
- 对于所选语言 '%s'，Images/Data/Root 需要 '%s'，Text/Message 需要 '%s'。`,
	PatchesCopied:       "补丁已成功复制到 Extracted_Patches 文件夹。",
	Summary:             "已解包 %d 个封包，%d 个失败。",
	ExtractionCompleted: "解包完成！",
}
