// Package compression provides the stream codecs used for archive backups.
package compression

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ulikunitz/xz"
)

type CompressionType int

const (
	TypeNone CompressionType = iota
	TypeXZ
)

// String returns the string representation of compression type
func (t CompressionType) String() string {
	switch t {
	case TypeXZ:
		return "XZ"
	default:
		return "None"
	}
}

// Extension returns the file suffix used for the type, including the dot.
func (t CompressionType) Extension() string {
	switch t {
	case TypeXZ:
		return ".xz"
	default:
		return ""
	}
}

// TypeForPath picks the compression type from a file name suffix.
func TypeForPath(path string) CompressionType {
	if strings.EqualFold(filepath.Ext(path), ".xz") {
		return TypeXZ
	}
	return TypeNone
}

// Decompressor is the interface for decompression operations
type Decompressor interface {
	NewReader(r io.Reader) (io.ReadCloser, error)
	Type() CompressionType
	Implementation() string
}

type nopDecompressor struct{}

func (nopDecompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}

func (nopDecompressor) Type() CompressionType { return TypeNone }

func (nopDecompressor) Implementation() string { return "Passthrough" }

type DecompressorManager struct {
	decompressors map[CompressionType]Decompressor
}

// NewDecompressorManager creates a new decompressor manager with all available decompressors
func NewDecompressorManager() *DecompressorManager {
	manager := &DecompressorManager{
		decompressors: make(map[CompressionType]Decompressor),
	}

	manager.decompressors[TypeNone] = nopDecompressor{}
	manager.decompressors[TypeXZ] = NewXZDecompressor()

	return manager
}

// GetDecompressor returns the decompressor for the specified type
func (m *DecompressorManager) GetDecompressor(compType CompressionType) (Decompressor, error) {
	decompressor, exists := m.decompressors[compType]
	if !exists {
		return nil, fmt.Errorf("unsupported compression type: %s", compType.String())
	}
	return decompressor, nil
}

// GetImplementationInfo returns information about the implementation of each decompressor
func (m *DecompressorManager) GetImplementationInfo() map[CompressionType]string {
	info := make(map[CompressionType]string)
	for t, d := range m.decompressors {
		info[t] = d.Implementation()
	}
	return info
}

// GetBuildInfo returns build information about compression support
func GetBuildInfo() map[string]interface{} {
	info := map[string]interface{}{
		"go_version": runtime.Version(),
		"goos":       runtime.GOOS,
		"goarch":     runtime.GOARCH,
	}

	info["cgo_enabled"] = isCGOEnabled()

	return info
}

func isCGOEnabled() bool {
	return getCGOStatus()
}

// CompressFile writes src compressed with compType to dst.
// dst is written to a temporary name first and renamed on success.
func CompressFile(src, dst string, compType CompressionType) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	return writeAtomic(dst, func(out io.Writer) error {
		switch compType {
		case TypeNone:
			_, err := io.Copy(out, in)
			return err
		case TypeXZ:
			w, err := xz.NewWriter(out)
			if err != nil {
				return fmt.Errorf("failed to create xz writer: %w", err)
			}
			if _, err := io.Copy(w, in); err != nil {
				w.Close()
				return err
			}
			return w.Close()
		default:
			return fmt.Errorf("unsupported compression type: %s", compType.String())
		}
	})
}

// DecompressFile restores src, compressed with compType, into dst.
func (m *DecompressorManager) DecompressFile(src, dst string, compType CompressionType) error {
	d, err := m.GetDecompressor(compType)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	r, err := d.NewReader(in)
	if err != nil {
		return fmt.Errorf("failed to create %s reader: %w", compType, err)
	}
	defer r.Close()

	return writeAtomic(dst, func(out io.Writer) error {
		_, err := io.Copy(out, r)
		return err
	})
}

func writeAtomic(dst string, fill func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+"-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	fillErr := fill(tmp)
	closeErr := tmp.Close()

	switch {
	case fillErr != nil:
		err = fillErr
	case closeErr != nil:
		err = closeErr
	default:
		err = os.Chmod(tmpPath, 0644)
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
