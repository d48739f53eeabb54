// Package geometry maps the abstract chart model onto plane coordinates.
//
// Axes radiate from the chart center, evenly spaced, starting at north and
// advanced by RotationOffset. Each axis is divided into discrete levels that
// sit on concentric rings between an inner and an outer radius; level 0 is the
// innermost ring and the last level the outermost.
//
// All functions are pure and safe for concurrent use.
package geometry

import "math"

const (
	// RotationOffset turns the first axis 15 degrees clockwise from north.
	RotationOffset = math.Pi / 12

	// Radii and axis overhang as fractions of min(width, height).
	MinRadiusFactor     = 0.10
	MaxRadiusFactor     = 0.31
	AxisExtensionFactor = 0.075
)

// Point is a position in chart-local coordinates (y grows downward).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// AngleForAxis returns the angle in radians of axis index out of total evenly
// spaced axes. Angle 0 points east; -π/2 is north.
func AngleForAxis(index, total int, rotationOffset float64) float64 {
	if total <= 0 {
		return -math.Pi/2 + rotationOffset
	}
	return float64(index)*2*math.Pi/float64(total) - math.Pi/2 + rotationOffset
}

// PointAt returns the point at the given angle and distance from center.
func PointAt(center Point, angle, distance float64) Point {
	return Point{
		X: center.X + distance*math.Cos(angle),
		Y: center.Y + distance*math.Sin(angle),
	}
}

// RadiusForLevel linearly interpolates the ring radius of a level.
// levelCount is at least 2 for any well-formed dimension; smaller counts
// collapse onto minRadius.
func RadiusForLevel(level, levelCount int, minRadius, maxRadius float64) float64 {
	if levelCount < 2 {
		return minRadius
	}
	return minRadius + float64(level)/float64(levelCount-1)*(maxRadius-minRadius)
}

// LevelForDistance is the inverse of RadiusForLevel: it returns the level
// whose ring is nearest to distance, clamped to [0, levelCount-1].
func LevelForDistance(distance float64, levelCount int, minRadius, maxRadius float64) int {
	if levelCount < 2 || maxRadius == minRadius {
		return 0
	}
	maxLevel := levelCount - 1
	level := int(math.Round((distance - minRadius) / (maxRadius - minRadius) * float64(maxLevel)))
	return Clamp(level, 0, maxLevel)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Layout holds the derived geometry for a chart of a given pixel size.
type Layout struct {
	Width         float64
	Height        float64
	Center        Point
	MinRadius     float64
	MaxRadius     float64
	AxisExtension float64
}

// NewLayout derives radii from the smaller of width and height so the chart
// stays proportional and leaves a margin for dimension labels.
func NewLayout(width, height float64) Layout {
	minDim := math.Min(width, height)
	return Layout{
		Width:         width,
		Height:        height,
		Center:        Point{X: width / 2, Y: height / 2},
		MinRadius:     minDim * MinRadiusFactor,
		MaxRadius:     minDim * MaxRadiusFactor,
		AxisExtension: minDim * AxisExtensionFactor,
	}
}

// Angle returns the angle of axis index out of total.
func (l Layout) Angle(index, total int) float64 {
	return AngleForAxis(index, total, RotationOffset)
}

// LevelPoint returns the position of level on axis index out of total.
func (l Layout) LevelPoint(index, total, level, levelCount int) Point {
	return PointAt(l.Center, l.Angle(index, total), RadiusForLevel(level, levelCount, l.MinRadius, l.MaxRadius))
}

// AxisEnd returns the tip of axis index, past the outermost ring.
func (l Layout) AxisEnd(index, total int) Point {
	return PointAt(l.Center, l.Angle(index, total), l.MaxRadius+l.AxisExtension)
}

// LevelAt returns the level nearest to p for a dimension with levelCount levels.
// Only the distance from the center matters; the pointer need not be on the axis.
func (l Layout) LevelAt(p Point, levelCount int) int {
	return LevelForDistance(Distance(p, l.Center), levelCount, l.MinRadius, l.MaxRadius)
}
