// internal/ui/fonts.go
package ui

import (
	"rtd-tower-defense/internal/config"
	"rtd-tower-defense/internal/defs"
	"rtd-tower-defense/pkg/render"

	"golang.org/x/image/font"
)

// Fonts holds every face the screens draw with.
type Fonts struct {
	Title     font.Face
	HUD       font.Face
	Small     font.Face
	EndTitle  font.Face
	EndDetail font.Face
}

// LoadFonts loads the level font at every size. A missing font falls back to basicfont.
func LoadFonts(root string) *Fonts {
	return &Fonts{
		Title:     render.FaceOrDefault(root, defs.FontPath, config.TitleFontSize),
		HUD:       render.FaceOrDefault(root, defs.FontPath, config.HUDFontSize),
		Small:     render.FaceOrDefault(root, defs.FontPath, config.SmallFontSize),
		EndTitle:  render.FaceOrDefault(root, defs.FontPath, config.EndTitleFontSize),
		EndDetail: render.FaceOrDefault(root, defs.FontPath, config.EndDetailFontSize),
	}
}
