// Package render turns a chart state into a retained scene graph.
package render

import (
	"fmt"

	"github.com/designspace/designspace/internal/chart"
	"github.com/designspace/designspace/internal/geometry"
	"github.com/designspace/designspace/internal/scene"
)

// Placeholder is shown instead of a chart when there are no dimensions.
const Placeholder = "Add dimensions to see the chart"

// Styling at scale 1.
const (
	PolygonStrokeWidth = 2
	SolidFillOpacity   = 0.3

	AxisColor       = "#94a3b8"
	AxisStrokeWidth = 1

	MarkerRadius = 5
	MarkerFill   = "#ffffff"
	MarkerStroke = "#475569"

	LabelColor         = "#1e293b"
	LevelLabelSize     = 12
	LevelLabelHalo     = 3
	DimensionLabelSize = 14

	HandleRadius      = 8
	HandleStroke      = "#ffffff"
	HandleStrokeWidth = 2
)

// BuildSceneGraph renders s at the given scale. Interactive scenes carry one
// handle per visible data point and dimension. A state without dimensions
// yields a placeholder graph.
func BuildSceneGraph(s *chart.State, scale float64, interactive bool) *scene.Graph {
	width := float64(s.Theme.Width) * scale
	height := float64(s.Theme.Height) * scale
	g := scene.NewGraph(width, height)

	if len(s.Dimensions) == 0 {
		g.Placeholder = Placeholder
		return g
	}

	layout := geometry.NewLayout(width, height)
	visible := s.VisibleDataPoints()
	n := len(s.Dimensions)

	for i, dp := range visible {
		g.Patterns = append(g.Patterns, BuildPattern(dp.ID, PatternFor(i), s.Theme.ColorScheme.Color(i)))
	}

	polygons := &scene.Node{ID: "polygons", Type: scene.NodeGroup, Transform: geometry.Identity()}
	for i, dp := range visible {
		pattern := PatternFor(i)
		color := s.Theme.ColorScheme.Color(i)
		poly := &scene.Node{
			ID:          fmt.Sprintf("polygon-%d", dp.ID),
			Type:        scene.NodePolygon,
			Stroke:      color,
			StrokeWidth: PolygonStrokeWidth * scale,
		}
		for j := range s.Dimensions {
			dim := &s.Dimensions[j]
			poly.Points = append(poly.Points, layout.LevelPoint(j, n, dim.LevelOf(dp), len(dim.Levels)))
		}
		if pattern == PatternSolid {
			poly.Fill = color
			poly.FillOpacity = SolidFillOpacity
		} else {
			poly.Fill = "url(#" + PatternID(dp.ID) + ")"
			poly.FillOpacity = 1
		}
		polygons.Children = append(polygons.Children, poly)
	}
	g.Add(polygons)

	axes := &scene.Node{ID: "axes", Type: scene.NodeGroup, Transform: geometry.Identity()}
	for j := range s.Dimensions {
		axes.Children = append(axes.Children, buildAxis(s, layout, j, scale))
	}
	g.Add(axes)

	if interactive {
		handles := &scene.Node{ID: "handles", Type: scene.NodeGroup, Transform: geometry.Identity()}
		for i, dp := range visible {
			color := s.Theme.ColorScheme.Color(i)
			for j := range s.Dimensions {
				dim := &s.Dimensions[j]
				level := dim.LevelOf(dp)
				handles.Children = append(handles.Children, &scene.Node{
					ID:          fmt.Sprintf("handle-%d-%d", i, dim.ID),
					Type:        scene.NodeHandle,
					Center:      layout.LevelPoint(j, n, level, len(dim.Levels)),
					Radius:      HandleRadius * scale,
					Fill:        color,
					Stroke:      HandleStroke,
					StrokeWidth: HandleStrokeWidth * scale,
					Handle: &scene.HandleInfo{
						DataPointIndex: i,
						DimensionID:    dim.ID,
						Label:          dp.Name + ": " + dim.Name,
						Value:          level,
						Min:            0,
						Max:            dim.MaxLevel(),
					},
				})
			}
		}
		g.Add(handles)
	}

	return g
}

// buildAxis draws one dimension: axis line, level markers and labels.
func buildAxis(s *chart.State, layout geometry.Layout, j int, scale float64) *scene.Node {
	n := len(s.Dimensions)
	dim := &s.Dimensions[j]
	group := &scene.Node{ID: fmt.Sprintf("axis-%d", dim.ID), Type: scene.NodeGroup, Transform: geometry.Identity()}

	group.Children = append(group.Children, &scene.Node{
		ID:          fmt.Sprintf("axis-line-%d", dim.ID),
		Type:        scene.NodeLine,
		From:        layout.Center,
		To:          layout.AxisEnd(j, n),
		Stroke:      AxisColor,
		StrokeWidth: AxisStrokeWidth * scale,
	})

	for _, lvl := range dim.Levels {
		p := layout.LevelPoint(j, n, lvl.ID, len(dim.Levels))
		group.Children = append(group.Children, &scene.Node{
			ID:          fmt.Sprintf("marker-%d-%d", dim.ID, lvl.ID),
			Type:        scene.NodeCircle,
			Center:      p,
			Radius:      MarkerRadius * scale,
			Fill:        MarkerFill,
			Stroke:      MarkerStroke,
			StrokeWidth: scale,
		})
		if s.Theme.ShowLevelLabels {
			group.Children = append(group.Children, &scene.Node{
				ID:        fmt.Sprintf("level-label-%d-%d", dim.ID, lvl.ID),
				Type:      scene.NodeText,
				Center:    p,
				Text:      lvl.Name,
				Fill:      LabelColor,
				FontSize:  LevelLabelSize * scale,
				HaloWidth: LevelLabelHalo * scale,
			})
		}
	}

	if s.Theme.ShowDimensionNames {
		group.Children = append(group.Children, &scene.Node{
			ID:         fmt.Sprintf("dimension-label-%d", dim.ID),
			Type:       scene.NodeText,
			Center:     layout.AxisEnd(j, n),
			Text:       dim.Name,
			Fill:       LabelColor,
			FontSize:   DimensionLabelSize * scale,
			FontWeight: "600",
		})
	}
	return group
}
