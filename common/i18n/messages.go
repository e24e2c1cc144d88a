package i18n

import (
	"os"
	"strings"
)

// Language represents supported languages
type Language string

const (
	English Language = "en"
	Chinese Language = "zh"
)

// AllMessages holds all translatable strings grouped by module
type AllMessages struct {
	App     AppMessages
	Common  CommonMessages
	Config  ConfigMessages
	Mod     ModMessages
	Extract ExtractMessages
	Pack    PackMessages
	Restore RestoreMessages
	Menu    MenuMessages
	Dialog  DialogMessages
	Modding ModdingMessages
}

// CurrentLanguage holds the current language setting
var CurrentLanguage Language = English

// I18nMsg holds the current message set - Global variable for easy access
var I18nMsg = EnglishAllMessages

// English messages
var EnglishAllMessages = AllMessages{
	App:     EnglishAppMessages,
	Common:  EnglishCommonMessages,
	Config:  EnglishConfigMessages,
	Mod:     EnglishModMessages,
	Extract: EnglishExtractMessages,
	Pack:    EnglishPackMessages,
	Restore: EnglishRestoreMessages,
	Menu:    EnglishMenuMessages,
	Dialog:  EnglishDialogMessages,
	Modding: EnglishModdingMessages,
}

// Chinese messages
var ChineseAllMessages = AllMessages{
	App:     ChineseAppMessages,
	Common:  ChineseCommonMessages,
	Config:  ChineseConfigMessages,
	Mod:     ChineseModMessages,
	Extract: ChineseExtractMessages,
	Pack:    ChinesePackMessages,
	Restore: ChineseRestoreMessages,
	Menu:    ChineseMenuMessages,
	Dialog:  ChineseDialogMessages,
	Modding: ChineseModdingMessages,
}

// DetectLanguage detects the user's language preference based on environment variables
func DetectLanguage() Language {
	envVars := []string{"MVGL_MODS_LANG", "LANG", "LANGUAGE", "LC_ALL", "LC_MESSAGES"}

	for _, envVar := range envVars {
		if lang := os.Getenv(envVar); lang != "" {
			lang = strings.ToLower(lang)
			if strings.Contains(lang, "zh") ||
				strings.Contains(lang, "chinese") ||
				strings.Contains(lang, "cn") {
				return Chinese
			}
			if envVar == "MVGL_MODS_LANG" {
				return English
			}
		}
	}

	return English
}

// SetLanguage sets the current language and updates messages
func SetLanguage(lang Language) {
	CurrentLanguage = lang
	switch lang {
	case Chinese:
		I18nMsg = ChineseAllMessages
	default:
		I18nMsg = EnglishAllMessages
	}
}

// InitLanguage initializes the language system
func InitLanguage() {
	detectedLang := DetectLanguage()
	SetLanguage(detectedLang)
}

// IsChineseEnvironment returns true if the current environment is Chinese
func IsChineseEnvironment() bool {
	return CurrentLanguage == Chinese
}
