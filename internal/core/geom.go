// Package core provides fundamental types and utilities for cubehop.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Vec3 is a point in world space. The playfield lives on the z = 0 plane.
type Vec3 struct {
	X, Y, Z float64
}

// Box is an axis-aligned bounding box described by its center and half-extent.
type Box struct {
	Center Vec3
	Half   float64
}

// NewBox creates a box centered at c with the given half-extent on every axis.
func NewBox(c Vec3, half float64) Box {
	return Box{Center: c, Half: half}
}

// Left returns the x-coordinate of the left face.
func (b Box) Left() float64 { return b.Center.X - b.Half }

// Right returns the x-coordinate of the right face.
func (b Box) Right() float64 { return b.Center.X + b.Half }

// Bottom returns the y-coordinate of the bottom face.
func (b Box) Bottom() float64 { return b.Center.Y - b.Half }

// Top returns the y-coordinate of the top face.
func (b Box) Top() float64 { return b.Center.Y + b.Half }

// SpansX reports whether x lies strictly between the left and right faces.
func (b Box) SpansX(x float64) bool {
	return x > b.Left() && x < b.Right()
}

// SpansY reports whether y lies strictly between the bottom and top faces.
func (b Box) SpansY(y float64) bool {
	return y > b.Bottom() && y < b.Top()
}

// Rect represents an integer rectangle on the character grid.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
