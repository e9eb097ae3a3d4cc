package memory

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// LoadImage reads a raw guest image from path. Files ending in ".lz4" or ".xz" are decompressed.
func LoadImage(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadImage(f, filepath.Base(path))
}

// ReadImage reads a guest image from r, decompressing it according to the extension of name.
func ReadImage(r io.Reader, name string) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".lz4":
		r = lz4.NewReader(r)
	case ".xz":
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		r = xr
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return buf.Bytes(), nil
}
