// pkg/render/font.go
package render

import (
	"fmt"

	"rtd-tower-defense/internal/assets"
	"rtd-tower-defense/pkg/logger"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// LoadFace loads a TTF face of the given size.
func LoadFace(root, path string, size float64) (font.Face, error) {
	fontData, err := assets.ReadFile(root, path)
	if err != nil {
		return nil, err
	}
	tt, err := opentype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face %s: %w", path, err)
	}
	return face, nil
}

// FaceOrDefault loads a face and falls back to the built-in 7x13 bitmap font.
func FaceOrDefault(root, path string, size float64) font.Face {
	face, err := LoadFace(root, path, size)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{"path": path, "size": size, "error": err}).Warn("Font not loaded, using basicfont")
		return basicfont.Face7x13
	}
	return face
}
