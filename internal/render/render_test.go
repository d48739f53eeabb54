package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/designspace/designspace/internal/chart"
	"github.com/designspace/designspace/internal/geometry"
	"github.com/designspace/designspace/internal/scene"
)

func threeDimensionState() *chart.State {
	s := chart.New()
	for i := 0; i < 3; i++ {
		s.AddDimension()
	}
	dp, err := s.AddDataPoint()
	if err != nil {
		panic(err)
	}
	s.SetValue(dp.ID, 0, 0)
	s.SetValue(dp.ID, 1, 1)
	s.SetValue(dp.ID, 2, 2)
	return s
}

func TestBuildSceneGraphCounts(t *testing.T) {
	tests := []struct {
		description string
		interactive bool
		wantHandles int
	}{
		{description: "interactive", interactive: true, wantHandles: 3},
		{description: "static", interactive: false, wantHandles: 0},
	}
	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			s := threeDimensionState()
			g := BuildSceneGraph(s, 1, test.interactive)

			lines := 0
			for _, n := range g.Nodes(scene.NodeLine) {
				if n.Stroke == AxisColor {
					lines++
				}
			}
			if lines != 3 {
				t.Errorf("axis lines = %d, want 3", lines)
			}
			polys := g.Nodes(scene.NodePolygon)
			if len(polys) != 1 {
				t.Fatalf("polygons = %d, want 1", len(polys))
			}
			if got := len(polys[0].Points); got != 3 {
				t.Errorf("polygon vertices = %d, want 3", got)
			}
			if got := g.Count(scene.NodeHandle); got != test.wantHandles {
				t.Errorf("handles = %d, want %d", got, test.wantHandles)
			}
		})
	}
}

func TestBuildSceneGraphPlaceholder(t *testing.T) {
	g := BuildSceneGraph(chart.New(), 1, true)
	if !g.Empty() || g.Placeholder != Placeholder {
		t.Errorf("placeholder = %q, want %q", g.Placeholder, Placeholder)
	}
	if got := scene.CompileDrawCommands(g); got != nil {
		t.Errorf("placeholder compiled to %d commands", len(got))
	}
}

func TestPolygonVerticesFollowValues(t *testing.T) {
	s := threeDimensionState()
	g := BuildSceneGraph(s, 1, false)
	layout := geometry.NewLayout(800, 800)
	want := []geometry.Point{
		layout.LevelPoint(0, 3, 0, 3),
		layout.LevelPoint(1, 3, 1, 3),
		layout.LevelPoint(2, 3, 2, 3),
	}
	if diff := cmp.Diff(want, g.Nodes(scene.NodePolygon)[0].Points); diff != "" {
		t.Errorf("vertices mismatch (-want +got):\n%s", diff)
	}
}

func TestFillByVisiblePosition(t *testing.T) {
	s := threeDimensionState()
	second, _ := s.AddDataPoint()
	third, _ := s.AddDataPoint()
	s.ToggleVisibility(second.ID)

	g := BuildSceneGraph(s, 1, false)
	polys := g.Nodes(scene.NodePolygon)
	if len(polys) != 2 {
		t.Fatalf("polygons = %d, want 2", len(polys))
	}
	if polys[0].Fill != chart.SchemeDefault.Color(0) || polys[0].FillOpacity != SolidFillOpacity {
		t.Errorf("first polygon fill = %s@%v, want solid color", polys[0].Fill, polys[0].FillOpacity)
	}
	if want := "url(#" + PatternID(third.ID) + ")"; polys[1].Fill != want || polys[1].FillOpacity != 1 {
		t.Errorf("second polygon fill = %s@%v, want %s@1", polys[1].Fill, polys[1].FillOpacity, want)
	}
	if polys[1].Stroke != chart.SchemeDefault.Color(1) {
		t.Errorf("second polygon stroke = %s, want color of visible index 1", polys[1].Stroke)
	}
	if len(g.Patterns) != 2 {
		t.Errorf("patterns = %d, want one per visible data point", len(g.Patterns))
	}
}

func TestHandleMetadata(t *testing.T) {
	s := threeDimensionState()
	g := BuildSceneGraph(s, 1, true)
	h := g.NodesByID["handle-0-2"]
	if h == nil {
		t.Fatal("handle-0-2 missing")
	}
	want := &scene.HandleInfo{DataPointIndex: 0, DimensionID: 2, Label: "Data Point 1: New Dimension", Value: 2, Min: 0, Max: 2}
	if diff := cmp.Diff(want, h.Handle); diff != "" {
		t.Errorf("handle mismatch (-want +got):\n%s", diff)
	}
}

func TestLabelToggles(t *testing.T) {
	s := threeDimensionState()
	if got := BuildSceneGraph(s, 1, false).Count(scene.NodeText); got != 3*3+3 {
		t.Errorf("labels = %d, want 12", got)
	}
	s.SetShowLevelLabels(false)
	s.SetShowDimensionNames(false)
	if got := BuildSceneGraph(s, 1, false).Count(scene.NodeText); got != 0 {
		t.Errorf("labels = %d, want 0", got)
	}
}

func TestScaleShrinksScene(t *testing.T) {
	g := BuildSceneGraph(threeDimensionState(), 0.5, false)
	if g.Width != 400 || g.Height != 400 {
		t.Errorf("size = %vx%v, want 400x400", g.Width, g.Height)
	}
}

func TestPatternFor(t *testing.T) {
	for i, want := range []Pattern{PatternSolid, PatternHorizontal, PatternVertical, PatternDiagonalRight, PatternDiagonalLeft, PatternCrosshatch, PatternDots, PatternSolid} {
		if got := PatternFor(i); got != want {
			t.Errorf("PatternFor(%d) = %s, want %s", i, got, want)
		}
	}
}
