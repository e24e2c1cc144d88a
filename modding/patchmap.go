package modding

import (
	"fmt"
	"path/filepath"
)

// Subfolder is one of the fixed content folders inside a mod.
type Subfolder string

const (
	SubfolderLua     Subfolder = "lua"
	SubfolderImages  Subfolder = "images"
	SubfolderText    Subfolder = "text"
	SubfolderMessage Subfolder = "message"
	SubfolderData    Subfolder = "data"
	SubfolderRoot    Subfolder = "root"
)

// Subfolders lists every mod subfolder in staging order. root comes last so
// that its files land on top of the images patch after images/ was merged.
var Subfolders = []Subfolder{
	SubfolderLua,
	SubfolderImages,
	SubfolderText,
	SubfolderMessage,
	SubfolderData,
	SubfolderRoot,
}

// PatchFor returns the patch archive that content from sub is packed into.
func PatchFor(lang Language, sub Subfolder) (string, error) {
	code := lang.Code()
	switch sub {
	case SubfolderLua:
		return "Patch_0.dx11", nil
	case SubfolderImages, SubfolderData, SubfolderRoot:
		return fmt.Sprintf("Patch_%s.dx11", code), nil
	case SubfolderText, SubfolderMessage:
		return fmt.Sprintf("Patch_text0%s.dx11", code), nil
	default:
		return "", fmt.Errorf("unknown mod subfolder %q", sub)
	}
}

// PatchMap returns the target patch of every subfolder for lang.
func PatchMap(lang Language) map[Subfolder]string {
	m := make(map[Subfolder]string, len(Subfolders))
	for _, sub := range Subfolders {
		name, _ := PatchFor(lang, sub)
		m[sub] = name
	}
	return m
}

// RequiredPatches lists the distinct base patches a mod for lang may need,
// in subfolder order.
func RequiredPatches(lang Language) []string {
	seen := make(map[string]bool)
	var out []string
	for _, sub := range Subfolders {
		name, _ := PatchFor(lang, sub)
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}

// mergeTarget is the directory inside a patch working copy that receives the
// subfolder's files. root content goes to the top of the patch.
func (s Subfolder) mergeTarget(patchDir string) string {
	if s == SubfolderRoot {
		return patchDir
	}
	return filepath.Join(patchDir, string(s))
}
