package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo/float"

	"github.com/designspace/designspace/internal/chart"
	"github.com/designspace/designspace/internal/render"
	"github.com/designspace/designspace/internal/scene"
)

// Vector export layout.
const (
	SVGScale = 0.5

	LegendRowPitch   = 30
	LegendPadding    = 40
	LegendInset      = 20
	LegendSwatchSize = 20
	LegendSwatchRX   = 4
	LegendLabelGap   = 30
	LegendLabelSize  = 14
)

// LegendHeight returns the height of the legend block for n visible data points.
func LegendHeight(n int) float64 {
	if n == 0 {
		return 0
	}
	return math.Ceil(float64(n)/2)*LegendRowPitch + LegendPadding
}

// WriteSVG writes a standalone SVG document of s: the chart at half scale
// without handles, followed by a two-column legend of visible data points.
func WriteSVG(w io.Writer, s *chart.State) error {
	g := render.BuildSceneGraph(s, SVGScale, false)
	visible := s.VisibleDataPoints()
	height := g.Height + LegendHeight(len(visible))

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(g.Width, height, fmt.Sprintf(`viewBox="0 0 %s %s"`, num(g.Width), num(height)))
	canvas.Title(s.ChartTitle)
	if s.Description != "" {
		canvas.Desc(s.Description)
	}

	if g.Empty() {
		canvas.Text(g.Width/2, g.Height/2, g.Placeholder, "text-anchor:middle;dominant-baseline:middle;fill:"+render.MarkerStroke)
	} else {
		if len(g.Patterns) > 0 {
			canvas.Def()
			for _, p := range g.Patterns {
				canvas.Pattern(p.ID, 0, 0, p.Width, p.Height, "user")
				for _, n := range p.Children {
					writeNode(canvas, n)
				}
				canvas.PatternEnd()
			}
			canvas.DefEnd()
		}
		writeNode(canvas, g.Root)
	}

	if len(visible) > 0 {
		canvas.Gtransform(fmt.Sprintf("translate(0, %s)", num(g.Height)))
		for i, dp := range visible {
			color := s.Theme.ColorScheme.Color(i)
			x := float64(i%2)*(g.Width/2) + LegendInset
			y := float64(i/2)*LegendRowPitch + LegendInset
			canvas.Roundrect(x, y, LegendSwatchSize, LegendSwatchSize, LegendSwatchRX, LegendSwatchRX, "fill:"+color+";stroke:"+color)
			canvas.Text(x+LegendLabelGap, y+15, dp.Name, fmt.Sprintf("font-size:%dpx;fill:%s", LegendLabelSize, render.LabelColor))
		}
		canvas.Gend()
	}
	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("write svg: %w", ew.err)
	}
	return nil
}

func writeNode(canvas *svg.SVG, n *scene.Node) {
	switch n.Type {
	case scene.NodeGroup:
		if n.ID == "root" {
			for _, c := range n.Children {
				writeNode(canvas, c)
			}
			return
		}
		canvas.Group(fmt.Sprintf(`id="%s"`, n.ID))
		for _, c := range n.Children {
			writeNode(canvas, c)
		}
		canvas.Gend()
	case scene.NodePolygon:
		xs := make([]float64, len(n.Points))
		ys := make([]float64, len(n.Points))
		for i, p := range n.Points {
			xs[i], ys[i] = p.X, p.Y
		}
		canvas.Polygon(xs, ys, style(n))
	case scene.NodeLine:
		canvas.Line(n.From.X, n.From.Y, n.To.X, n.To.Y, style(n))
	case scene.NodeCircle, scene.NodeHandle:
		canvas.Circle(n.Center.X, n.Center.Y, n.Radius, style(n))
	case scene.NodeRect:
		canvas.Rect(n.Rect.X, n.Rect.Y, n.Rect.Width, n.Rect.Height, style(n))
	case scene.NodeText:
		canvas.Text(n.Center.X, n.Center.Y, n.Text, style(n))
	}
}

// style renders node paint as an inline CSS declaration list.
func style(n *scene.Node) string {
	var decls []string
	add := func(k, v string) { decls = append(decls, k+":"+v) }

	if n.Type == scene.NodeText {
		add("text-anchor", "middle")
		add("dominant-baseline", "middle")
		add("font-size", num(n.FontSize)+"px")
		if n.FontWeight != "" {
			add("font-weight", n.FontWeight)
		}
		if n.HaloWidth > 0 {
			add("stroke", "white")
			add("stroke-width", num(n.HaloWidth))
			add("paint-order", "stroke")
		}
	}
	switch {
	case n.Fill != "":
		add("fill", n.Fill)
	case n.Type == scene.NodeLine:
	default:
		add("fill", "none")
	}
	if n.FillOpacity > 0 {
		add("fill-opacity", num(n.FillOpacity))
	}
	if n.Stroke != "" {
		add("stroke", n.Stroke)
	}
	if n.StrokeWidth > 0 {
		add("stroke-width", num(n.StrokeWidth))
	}
	return strings.Join(decls, ";")
}

func num(v float64) string {
	return fmt.Sprintf("%g", math.Round(v*100)/100)
}

// errWriter keeps the first write error so the svgo calls can stay unchecked.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
