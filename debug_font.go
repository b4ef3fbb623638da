package rcore

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/google/uuid"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

type GlyphInfo struct {
	UVMin [2]float32
	UVMax [2]float32
	Size  [2]float32
	Off   [2]float32
	Adv   float32
}

// DebugFont is the built-in bitmap font handed to the text module. The
// atlas is CPU side; uploading it is the renderer's job.
type DebugFont struct {
	// ID tags this load so a renderer can key its uploaded atlas by it.
	// The core never looks fonts up by ID.
	ID     string
	Atlas  *image.Alpha
	Glyphs map[rune]GlyphInfo
	Face   font.Face
}

const debugFontAtlasSize = 256

// LoadDebugFont rasterizes printable ASCII from the 7x13 fixed face.
func LoadDebugFont() (*DebugFont, error) {
	face := basicfont.Face7x13

	atlas := image.NewAlpha(image.Rect(0, 0, debugFontAtlasSize, debugFontAtlasSize))
	glyphs := make(map[rune]GlyphInfo)

	x, y := 2, 2
	rowHeight := 0

	for r := rune(32); r < 127; r++ {
		bounds, mask, maskp, adv, ok := face.Glyph(fixed.Point26_6{}, r)
		if !ok {
			continue
		}

		w := bounds.Dx()
		h := bounds.Dy()

		if x+w >= debugFontAtlasSize {
			x = 2
			y += rowHeight + 4
			rowHeight = 0
		}
		if y+h >= debugFontAtlasSize {
			return nil, fmt.Errorf("debug font: atlas full at %q", r)
		}

		draw.Draw(atlas, image.Rect(x, y, x+w, y+h), mask, maskp, draw.Src)

		glyphs[r] = GlyphInfo{
			UVMin: [2]float32{float32(x) / debugFontAtlasSize, float32(y) / debugFontAtlasSize},
			UVMax: [2]float32{float32(x+w) / debugFontAtlasSize, float32(y+h) / debugFontAtlasSize},
			Size:  [2]float32{float32(w), float32(h)},
			Off:   [2]float32{float32(bounds.Min.X), float32(bounds.Min.Y)},
			Adv:   float32(adv) / 64.0,
		}

		x += w + 4
		if h > rowHeight {
			rowHeight = h
		}
	}

	return &DebugFont{
		ID:     uuid.NewString(),
		Atlas:  atlas,
		Glyphs: glyphs,
		Face:   face,
	}, nil
}

// MeasureText returns the width of the longest line and the total height.
func (f *DebugFont) MeasureText(text string, scale float32) (float32, float32) {
	if f == nil {
		return 0, 0
	}
	lineHeight := float32(f.Face.Metrics().Height.Ceil())

	maxW, currentW := float32(0), float32(0)
	lines := 1
	for _, r := range text {
		if r == '\n' {
			if currentW > maxW {
				maxW = currentW
			}
			currentW = 0
			lines++
			continue
		}
		if g, ok := f.Glyphs[r]; ok {
			currentW += g.Adv * scale
		}
	}
	if currentW > maxW {
		maxW = currentW
	}
	return maxW, lineHeight * scale * float32(lines)
}

// DefaultFont is the debug font loaded at init when the text module is on.
func (c *Core) DefaultFont() *DebugFont { return c.defaultFont }
