// Package interact turns pointer drags and key presses on chart handles into
// level assignments.
//
// The controller is presentation-agnostic: a binding layer forwards pointer
// positions (already mapped to chart-local coordinates, see Viewport) and
// key names, and the controller updates the model through the Chart
// interface. A drag updates the model on every move and is recorded once,
// on release. A key step is recorded immediately.
package interact

import (
	"github.com/designspace/designspace/internal/chart"
	"github.com/designspace/designspace/internal/geometry"
)

// Target identifies one handle: a data point by its position among the
// visible data points, and a dimension by id.
type Target struct {
	DataPointIndex int `json:"dataPointIndex"`
	DimensionID    int `json:"dimensionId"`
}

// Step is a one-level keyboard adjustment.
type Step int

const (
	StepDown Step = -1
	StepUp   Step = 1
)

// Button is a pointer button as reported by the presentation layer.
type Button int

const ButtonPrimary Button = 0

// HandleRadius is the unscaled hit radius of a handle.
const HandleRadius = 8

// Chart is the slice of the application the controller drives.
type Chart interface {
	// State returns the live model. The controller mutates it in place.
	State() *chart.State
	// Changed is called after a transient change that needs re-rendering.
	Changed()
	// Commit records the current state as a durable change.
	Commit()
}

// Controller is not safe for concurrent use.
type Controller struct {
	chart  Chart
	active *Target
	moved  bool
}

func NewController(c Chart) *Controller {
	return &Controller{chart: c}
}

// Dragging reports the active drag target, if any.
func (c *Controller) Dragging() (Target, bool) {
	if c.active == nil {
		return Target{}, false
	}
	return *c.active, true
}

// DragStart begins a drag session on target. Only the primary button starts
// a drag, and the target must reference a visible data point and an
// existing dimension.
func (c *Controller) DragStart(target Target, button Button) bool {
	if button != ButtonPrimary {
		return false
	}
	if _, _, ok := c.resolve(target); !ok {
		return false
	}
	t := target
	c.active = &t
	c.moved = false
	return true
}

// DragMove maps pos to the nearest level of the active dimension and applies
// it. Every move is applied; there is no threshold. It reports whether the
// model changed.
func (c *Controller) DragMove(pos geometry.Point) bool {
	if c.active == nil {
		return false
	}
	s := c.chart.State()
	dp, dim, ok := c.resolve(*c.active)
	if !ok {
		return false
	}
	layout := geometry.NewLayout(float64(s.Theme.Width), float64(s.Theme.Height))
	level := layout.LevelAt(pos, len(dim.Levels))
	if !s.SetValue(dp.ID, dim.ID, level) {
		return false
	}
	c.moved = true
	c.chart.Changed()
	return true
}

// DragEnd finishes the drag session and records the result once.
func (c *Controller) DragEnd() bool {
	if c.active == nil {
		return false
	}
	c.active = nil
	c.chart.Commit()
	moved := c.moved
	c.moved = false
	return moved
}

// Cancel abandons a drag session without recording it.
func (c *Controller) Cancel() {
	c.active = nil
	c.moved = false
}

// KeyStep moves target one level in dir, clamped at the extremes, and
// records the change immediately. It reports whether the level changed.
func (c *Controller) KeyStep(target Target, dir Step) bool {
	dp, dim, ok := c.resolve(target)
	if !ok {
		return false
	}
	next := geometry.Clamp(dim.LevelOf(dp)+int(dir), 0, dim.MaxLevel())
	if !c.chart.State().SetValue(dp.ID, dim.ID, next) {
		return false
	}
	c.chart.Commit()
	return true
}

// HandleAt returns the topmost handle under pos for a chart rendered at
// scale 1. Handles of later visible data points are drawn on top.
func (c *Controller) HandleAt(pos geometry.Point) (Target, bool) {
	s := c.chart.State()
	layout := geometry.NewLayout(float64(s.Theme.Width), float64(s.Theme.Height))
	visible := s.VisibleDataPoints()
	n := len(s.Dimensions)
	for i := len(visible) - 1; i >= 0; i-- {
		for j := n - 1; j >= 0; j-- {
			dim := &s.Dimensions[j]
			p := layout.LevelPoint(j, n, dim.LevelOf(visible[i]), len(dim.Levels))
			if geometry.Distance(p, pos) <= HandleRadius {
				return Target{DataPointIndex: i, DimensionID: dim.ID}, true
			}
		}
	}
	return Target{}, false
}

func (c *Controller) resolve(t Target) (*chart.DataPoint, *chart.Dimension, bool) {
	s := c.chart.State()
	dp := s.VisibleDataPoint(t.DataPointIndex)
	dim := s.Dimension(t.DimensionID)
	if dp == nil || dim == nil || len(dim.Levels) == 0 {
		return nil, nil, false
	}
	return dp, dim, true
}
