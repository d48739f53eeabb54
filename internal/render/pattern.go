package render

import (
	"strconv"

	"github.com/designspace/designspace/internal/geometry"
	"github.com/designspace/designspace/internal/scene"
)

// Pattern is a polygon fill texture.
type Pattern string

const (
	PatternSolid         Pattern = "solid"
	PatternHorizontal    Pattern = "horizontal"
	PatternVertical      Pattern = "vertical"
	PatternDiagonalRight Pattern = "diagonal-right"
	PatternDiagonalLeft  Pattern = "diagonal-left"
	PatternCrosshatch    Pattern = "crosshatch"
	PatternDots          Pattern = "dots"
)

// Patterns is the fill cycle, indexed by position among visible data points.
var Patterns = []Pattern{
	PatternSolid,
	PatternHorizontal,
	PatternVertical,
	PatternDiagonalRight,
	PatternDiagonalLeft,
	PatternCrosshatch,
	PatternDots,
}

// PatternTileSize is the edge of a square pattern tile in user-space units.
const PatternTileSize = 8

// PatternFor returns the pattern of the visible data point at index.
func PatternFor(index int) Pattern {
	if index < 0 {
		index = -index
	}
	return Patterns[index%len(Patterns)]
}

// PatternID is the definition id referenced by a data point's polygon fill.
func PatternID(dataPointID int) string {
	return "pattern-" + strconv.Itoa(dataPointID)
}

// BuildPattern returns the tile definition of p drawn in color.
func BuildPattern(dataPointID int, p Pattern, color string) scene.Pattern {
	def := scene.Pattern{
		ID:     PatternID(dataPointID),
		Width:  PatternTileSize,
		Height: PatternTileSize,
		Children: []*scene.Node{{
			Type:        scene.NodeRect,
			Rect:        scene.Rect{Width: PatternTileSize, Height: PatternTileSize},
			Fill:        color,
			FillOpacity: SolidFillOpacity,
		}},
	}

	line := func(x1, y1, x2, y2 float64) *scene.Node {
		return &scene.Node{
			Type:        scene.NodeLine,
			From:        geometry.Point{X: x1, Y: y1},
			To:          geometry.Point{X: x2, Y: y2},
			Stroke:      color,
			StrokeWidth: 1,
		}
	}
	dot := func(x, y float64) *scene.Node {
		return &scene.Node{Type: scene.NodeCircle, Center: geometry.Point{X: x, Y: y}, Radius: 1, Fill: color}
	}

	switch p {
	case PatternHorizontal:
		def.Children = append(def.Children, line(0, 2, 8, 2), line(0, 6, 8, 6))
	case PatternVertical:
		def.Children = append(def.Children, line(2, 0, 2, 8), line(6, 0, 6, 8))
	case PatternDiagonalRight:
		def.Children = append(def.Children, line(0, 8, 8, 0))
	case PatternDiagonalLeft:
		def.Children = append(def.Children, line(0, 0, 8, 8))
	case PatternCrosshatch:
		def.Children = append(def.Children, line(0, 8, 8, 0), line(0, 0, 8, 8))
	case PatternDots:
		def.Children = append(def.Children, dot(2, 2), dot(6, 6))
	}
	return def
}
