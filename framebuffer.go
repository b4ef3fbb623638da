package rcore

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Framebuffer is the render geometry derived from a requested screen size
// and the display it must fit.
type Framebuffer struct {
	Screen       Size
	Render       Size
	RenderOffset Point
	ScreenScale  mgl32.Mat4
}

// SetupFramebuffer fits screen onto display, preserving aspect ratio with
// border bars. A screen larger than the display is downscaled and rendered
// at full display resolution through ScreenScale; a smaller one is expanded
// along the axis the aspect mismatch requires. A screen with a zero side
// is taken to be the display.
func SetupFramebuffer(screen, display Size) Framebuffer {
	if screen.IsZero() {
		screen = display
	}
	fb := Framebuffer{Screen: screen, ScreenScale: mgl32.Ident4()}

	switch {
	case screen.Larger(display):
		widthRatio := float64(display.Width) / float64(screen.Width)
		heightRatio := float64(display.Height) / float64(screen.Height)

		if widthRatio <= heightRatio {
			fb.Render.Width = display.Width
			fb.Render.Height = int(math.Round(float64(screen.Height) * widthRatio))
			fb.RenderOffset = Point{X: 0, Y: display.Height - fb.Render.Height}
		} else {
			fb.Render.Width = int(math.Round(float64(screen.Width) * heightRatio))
			fb.Render.Height = display.Height
			fb.RenderOffset = Point{X: display.Width - fb.Render.Width, Y: 0}
		}

		ratio := float32(fb.Render.Width) / float32(screen.Width)
		fb.ScreenScale = scaleMatrix(ratio, ratio)

		// Content renders at full display resolution through the scale matrix.
		fb.Render = display

	case screen.Smaller(display):
		displayRatio := float64(display.Width) / float64(display.Height)
		screenRatio := float64(screen.Width) / float64(screen.Height)

		if displayRatio <= screenRatio {
			fb.Render.Width = screen.Width
			fb.Render.Height = int(math.Round(float64(screen.Width) / displayRatio))
			fb.RenderOffset = Point{X: 0, Y: fb.Render.Height - screen.Height}
		} else {
			fb.Render.Width = int(math.Round(float64(screen.Height) * displayRatio))
			fb.Render.Height = screen.Height
			fb.RenderOffset = Point{X: fb.Render.Width - screen.Width, Y: 0}
		}

	default:
		fb.Render = screen
	}
	return fb
}

// ScaleFactor is the uniform x scale carried by ScreenScale.
func (fb Framebuffer) ScaleFactor() float32 { return fb.ScreenScale.At(0, 0) }
