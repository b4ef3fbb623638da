package rcore

import "github.com/go-gl/mathgl/mgl32"

type Point struct {
	X, Y int
}

type Size struct {
	Width, Height int
}

func (s Size) IsZero() bool { return s.Width == 0 || s.Height == 0 }

// Larger reports whether s exceeds o in either dimension.
func (s Size) Larger(o Size) bool { return s.Width > o.Width || s.Height > o.Height }

// Smaller reports whether s falls short of o in either dimension.
func (s Size) Smaller(o Size) bool { return s.Width < o.Width || s.Height < o.Height }

func (s Size) Vec2() mgl32.Vec2 { return mgl32.Vec2{float32(s.Width), float32(s.Height)} }

func (p Point) Vec2() mgl32.Vec2 { return mgl32.Vec2{float32(p.X), float32(p.Y)} }

// scaleMatrix is a uniform-in-z scale used for screen and HighDPI scaling.
func scaleMatrix(x, y float32) mgl32.Mat4 {
	return mgl32.Scale3D(x, y, 1)
}
