// internal/assets/files.go
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"

	_ "image/png"

	_ "golang.org/x/image/webp"

	"rtd-tower-defense/internal/interfaces"
)

// Resolve joins a relative asset path to the asset root.
func Resolve(root, path string) string {
	if root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// WrapLoadError marks missing files with interfaces.ErrAssetNotFound.
func WrapLoadError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w: %w", path, interfaces.ErrAssetNotFound, err)
	}
	return fmt.Errorf("load %s: %w", path, err)
}

// ReadFile reads an asset relative to root.
func ReadFile(root, path string) ([]byte, error) {
	data, err := os.ReadFile(Resolve(root, path))
	if err != nil {
		return nil, WrapLoadError(path, err)
	}
	return data, nil
}

// DecodeImage reads and decodes a png or webp sprite.
func DecodeImage(root, path string) (image.Image, error) {
	data, err := ReadFile(root, path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Exists reports whether the asset can be opened. Any other error is returned wrapped.
func Exists(root, path string) error {
	if _, err := os.Stat(Resolve(root, path)); err != nil {
		return WrapLoadError(path, err)
	}
	return nil
}
