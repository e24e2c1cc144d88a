//go:build (!cgo) || force_pure_compression || pure_xz
// +build !cgo force_pure_compression pure_xz

package compression

import (
	"io"

	"github.com/ulikunitz/xz"
)

type XZDecompressor struct{}

// NewXZDecompressor creates a new XZ decompressor using pure Go implementation
func NewXZDecompressor() Decompressor {
	return &XZDecompressor{}
}

func (d *XZDecompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	reader, err := xz.NewReader(r)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(reader), nil
}

func (d *XZDecompressor) Type() CompressionType {
	return TypeXZ
}

func (d *XZDecompressor) Implementation() string {
	return "Pure Go (ulikunitz/xz)"
}

func getCGOStatus() bool {
	return false
}
