package interact

import "github.com/designspace/designspace/internal/geometry"

// Viewport describes where a chart of ChartWidth x ChartHeight units is
// displayed on screen. The displayed box may be scaled by CSS.
type Viewport struct {
	Left, Top     float64
	Width, Height float64

	ChartWidth, ChartHeight float64
}

// Matrix maps chart-local coordinates to client coordinates.
func (v Viewport) Matrix() geometry.Matrix2D {
	sx, sy := 1.0, 1.0
	if v.ChartWidth > 0 && v.Width > 0 {
		sx = v.Width / v.ChartWidth
	}
	if v.ChartHeight > 0 && v.Height > 0 {
		sy = v.Height / v.ChartHeight
	}
	return geometry.Translate(v.Left, v.Top).Multiply(geometry.Scale(sx, sy))
}

// ToChart maps a client pointer position to chart-local coordinates.
func (v Viewport) ToChart(clientX, clientY float64) geometry.Point {
	return v.Matrix().Invert().Apply(geometry.Point{X: clientX, Y: clientY})
}
