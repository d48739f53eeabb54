package engine

import (
	"errors"

	"github.com/designspace/designspace/internal/chart"
)

// changed commits when ok is true and passes ok through.
func (e *Engine) changed(ok bool) bool {
	if ok {
		e.commit()
	}
	return ok
}

// AddDimension appends a dimension with the default levels and returns its id.
func (e *Engine) AddDimension() int {
	d := e.state.AddDimension()
	id := d.ID
	e.commit()
	return id
}

func (e *Engine) DeleteDimension(id int) bool {
	return e.changed(e.state.DeleteDimension(id))
}

func (e *Engine) MoveDimension(id int, dir chart.Direction) bool {
	return e.changed(e.state.MoveDimension(id, dir))
}

func (e *Engine) UpdateDimension(id int, name, description string) bool {
	return e.changed(e.state.UpdateDimension(id, name, description))
}

func (e *Engine) AddLevel(dimensionID int) bool {
	_, ok := e.state.AddLevel(dimensionID)
	return e.changed(ok)
}

// DeleteLevel removes a level. A dimension never drops below
// chart.MinLevels levels; such requests are ignored.
func (e *Engine) DeleteLevel(dimensionID, levelID int) bool {
	ok := e.state.DeleteLevel(dimensionID, levelID)
	if !ok {
		e.logger.Warn("level not deleted", "dimension", dimensionID, "level", levelID)
	}
	return e.changed(ok)
}

func (e *Engine) UpdateLevel(dimensionID, levelID int, name, description string) bool {
	return e.changed(e.state.UpdateLevel(dimensionID, levelID, name, description))
}

// AddDataPoint appends a visible data point at the lowest level of every
// dimension and returns its id. Without dimensions it queues an error
// notice and returns false.
func (e *Engine) AddDataPoint() (int, bool) {
	dp, err := e.state.AddDataPoint()
	if errors.Is(err, chart.ErrNoDimensions) {
		e.notify(NoticeError, MsgAddDimensionsFirst)
		e.logger.Warn("data point not added", "error", err)
		return 0, false
	}
	id := dp.ID
	e.commit()
	return id, true
}

func (e *Engine) DeleteDataPoint(id int) bool {
	return e.changed(e.state.DeleteDataPoint(id))
}

func (e *Engine) RenameDataPoint(id int, name string) bool {
	return e.changed(e.state.RenameDataPoint(id, name))
}

func (e *Engine) ToggleVisibility(id int) bool {
	return e.changed(e.state.ToggleVisibility(id))
}

func (e *Engine) SetAllVisible(visible bool) bool {
	return e.changed(e.state.SetAllVisible(visible))
}

// SetValue assigns a level outside of a drag or key gesture, for example
// from an edit form.
func (e *Engine) SetValue(dataPointID, dimensionID, levelID int) bool {
	return e.changed(e.state.SetValue(dataPointID, dimensionID, levelID))
}

func (e *Engine) SetTitle(title, description string) {
	e.state.SetTitle(title, description)
	e.commit()
}

func (e *Engine) SetSize(width, height int) bool {
	return e.changed(e.state.SetSize(width, height))
}

func (e *Engine) SetColorScheme(scheme chart.ColorScheme) error {
	if err := e.state.SetColorScheme(scheme); err != nil {
		return err
	}
	e.commit()
	return nil
}

func (e *Engine) SetShowLevelLabels(show bool) {
	e.state.SetShowLevelLabels(show)
	e.commit()
}

func (e *Engine) SetShowDimensionNames(show bool) {
	e.state.SetShowDimensionNames(show)
	e.commit()
}
