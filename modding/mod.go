package modding

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xishang0128/mvgl-mods/common/file"
	"github.com/xishang0128/mvgl-mods/common/i18n"
)

var (
	ErrInvalidModName = errors.New("mod name contains no valid characters")
	ErrModExists      = errors.New("mod already exists")
	ErrModNotFound    = errors.New("mod not found")
)

// Mod is a directory under the mods folder holding one subfolder per
// content category.
type Mod struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// SanitizeName keeps ASCII letters, digits, space, underscore and hyphen and
// drops trailing whitespace.
func SanitizeName(name string) (string, error) {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '_', r == '-':
			b.WriteRune(r)
		}
	}

	sanitized := strings.TrimRight(b.String(), " ")
	if sanitized == "" {
		return "", ErrInvalidModName
	}
	return sanitized, nil
}

// CreateMod creates a new mod with all content subfolders present and empty.
func (m *Manager) CreateMod(name string) (Mod, error) {
	sanitized, err := SanitizeName(name)
	if err != nil {
		return Mod{}, err
	}

	modPath := filepath.Join(m.ws.ModsDir, sanitized)
	if file.Exists(modPath) {
		return Mod{}, fmt.Errorf("%w: %s", ErrModExists, sanitized)
	}

	dirs := make([]string, 0, len(Subfolders))
	for _, sub := range Subfolders {
		dirs = append(dirs, filepath.Join(modPath, string(sub)))
	}
	if err := file.EnsureDirs(dirs...); err != nil {
		return Mod{}, fmt.Errorf(i18n.I18nMsg.Modding.ErrorCreateMod, err)
	}

	m.log.Successf(i18n.I18nMsg.Modding.CreatedMod, sanitized)
	return Mod{Name: sanitized, Path: modPath}, nil
}

// ListMods returns every mod directory sorted by name. The mods folder is
// created when missing.
func (m *Manager) ListMods() ([]Mod, error) {
	if err := file.EnsureDirs(m.ws.ModsDir); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(m.ws.ModsDir)
	if err != nil {
		return nil, err
	}

	var mods []Mod
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		mods = append(mods, Mod{
			Name: entry.Name(),
			Path: filepath.Join(m.ws.ModsDir, entry.Name()),
		})
	}

	sort.Slice(mods, func(i, j int) bool { return mods[i].Name < mods[j].Name })
	return mods, nil
}

// FindMods resolves mod names to mods, failing on the first unknown name.
func (m *Manager) FindMods(names []string) ([]Mod, error) {
	mods := make([]Mod, 0, len(names))
	for _, name := range names {
		modPath := filepath.Join(m.ws.ModsDir, name)
		if !file.IsDir(modPath) {
			return nil, fmt.Errorf("%w: %s", ErrModNotFound, name)
		}
		mods = append(mods, Mod{Name: name, Path: modPath})
	}
	return mods, nil
}

// SubfolderPath returns the path of one content subfolder of the mod.
func (mod Mod) SubfolderPath(sub Subfolder) string {
	return filepath.Join(mod.Path, string(sub))
}

// ContentSubfolders returns the subfolders that hold at least one entry.
func (mod Mod) ContentSubfolders() []Subfolder {
	var subs []Subfolder
	for _, sub := range Subfolders {
		if !file.IsDirEmpty(mod.SubfolderPath(sub)) {
			subs = append(subs, sub)
		}
	}
	return subs
}
