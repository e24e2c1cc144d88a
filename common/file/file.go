// Package file provides the directory copy, merge and move primitives used to
// stage mod content over extracted archives.
package file

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/otiai10/copy"
)

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsDirEmpty reports whether path has no entries.
// A missing path or a path that is not a directory counts as empty.
func IsDirEmpty(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return true
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.IsDir() {
		return true
	}

	_, err = f.Readdirnames(1)
	return errors.Is(err, io.EOF)
}

// EnsureDirs creates every directory in dirs, including parents.
func EnsureDirs(dirs ...string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

// CopyFile copies src to dst through a temporary file in the same directory
// that is renamed into place, so dst is never observed half written. The file
// mode is preserved.
func CopyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	info, err := srcFile.Stat()
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+"-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	_, copyErr := io.Copy(tmp, srcFile)
	closeErr := tmp.Close()

	switch {
	case copyErr != nil:
		err = copyErr
	case closeErr != nil:
		err = closeErr
	default:
		err = os.Chmod(tmpPath, info.Mode().Perm())
	}
	if err == nil {
		err = os.Rename(tmpPath, dst)
	}
	if err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// CopyDir copies the tree rooted at src into dst. Existing directories in dst
// are merged and existing files are overwritten; nothing in dst is removed.
// Symlinks are followed so the copied tree is self-contained.
func CopyDir(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", src)
	}

	return copy.Copy(src, dst, copy.Options{
		OnSymlink: func(string) copy.SymlinkAction { return copy.Deep },
	})
}

// ReplaceDir removes dst if present and copies src to it.
func ReplaceDir(src, dst string) error {
	if err := os.RemoveAll(dst); err != nil {
		return err
	}
	return CopyDir(src, dst)
}

// MoveFile moves src to dst, replacing dst. When a rename is not possible,
// for instance across volumes, the file is copied and the source removed.
func MoveFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	if err := CopyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}
