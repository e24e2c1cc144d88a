// Package config persists the selected game folder and mod language.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xishang0128/mvgl-mods/common/file"
	"github.com/xishang0128/mvgl-mods/modding"
)

// FileName is the config file kept in the workspace root.
const FileName = "config.json"

// GameDataDirName is the folder inside the game install holding the archives.
const GameDataDirName = "gamedata"

// ErrUnreadable means the config file exists but could not be read or parsed.
var ErrUnreadable = errors.New("config file unreadable")

// Config is the persisted application state.
type Config struct {
	GamePath string           `json:"game_path"`
	Language modding.Language `json:"language"`
}

// Default returns the configuration used when nothing is stored.
func Default() Config {
	return Config{Language: modding.DefaultLanguage}
}

// Load reads the config at path. A missing file yields the defaults. An
// unreadable file yields the defaults together with an error wrapping
// ErrUnreadable. A game path that is no longer a directory is dropped and an
// unknown language is replaced by the default.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	var stored struct {
		GamePath string `json:"game_path"`
		Language string `json:"language"`
	}
	if err := json.Unmarshal(data, &stored); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	if stored.GamePath != "" && file.IsDir(stored.GamePath) {
		cfg.GamePath = stored.GamePath
	}
	if lang := modding.Language(stored.Language); lang.Valid() {
		cfg.Language = lang
	}
	return cfg, nil
}

// Save writes cfg to path as indented JSON.
func (c Config) Save(path string) error {
	if !c.Language.Valid() {
		c.Language = modding.DefaultLanguage
	}

	data, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GameDataDir returns the archive folder of the selected game, or "" when no
// game is selected.
func (c Config) GameDataDir() string {
	if c.GamePath == "" {
		return ""
	}
	return filepath.Join(c.GamePath, GameDataDirName)
}

// HasValidGamePath reports whether the selected game has a gamedata folder.
func (c Config) HasValidGamePath() bool {
	dir := c.GameDataDir()
	return dir != "" && file.IsDir(dir)
}
