//go:build (cgo && !force_pure_compression && !pure_xz) || force_cgo_compression || cgo_xz
// +build cgo,!force_pure_compression,!pure_xz force_cgo_compression cgo_xz

package compression

import (
	"io"

	"github.com/spencercw/go-xz"
)

type XZDecompressor struct{}

// NewXZDecompressor creates a new XZ decompressor using CGO implementation
func NewXZDecompressor() Decompressor {
	return &XZDecompressor{}
}

type xzReadCloser struct {
	read  func(p []byte) (int, error)
	close func()
}

func (r *xzReadCloser) Read(p []byte) (int, error) {
	return r.read(p)
}

func (r *xzReadCloser) Close() error {
	r.close()
	return nil
}

func (d *XZDecompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	reader := xz.NewDecompressionReader(r)
	return &xzReadCloser{
		read:  reader.Read,
		close: func() { reader.Close() },
	}, nil
}

func (d *XZDecompressor) Type() CompressionType {
	return TypeXZ
}

func (d *XZDecompressor) Implementation() string {
	return "CGO (spencercw/go-xz)"
}

func getCGOStatus() bool {
	return true
}
