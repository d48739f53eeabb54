package chart

import (
	"errors"
	"fmt"
)

var (
	ErrNoDimensions       = errors.New("add dimensions before adding data points")
	ErrUnknownColorScheme = errors.New("unknown color scheme")
)

// Direction moves a dimension toward the front (Up) or back (Down) of the list.
type Direction int

const (
	Up Direction = iota
	Down
)

// --- Lookups ---

func (s *State) dimensionIndex(id int) int {
	for i := range s.Dimensions {
		if s.Dimensions[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *State) dataPointIndex(id int) int {
	for i := range s.DataPoints {
		if s.DataPoints[i].ID == id {
			return i
		}
	}
	return -1
}

// Dimension returns the dimension with the given id, or nil.
func (s *State) Dimension(id int) *Dimension {
	if i := s.dimensionIndex(id); i >= 0 {
		return &s.Dimensions[i]
	}
	return nil
}

// DataPoint returns the data point with the given id, or nil.
func (s *State) DataPoint(id int) *DataPoint {
	if i := s.dataPointIndex(id); i >= 0 {
		return &s.DataPoints[i]
	}
	return nil
}

// VisibleDataPoints returns the visible data points in list order. Colors,
// patterns and drag targets are all keyed by position in this slice.
func (s *State) VisibleDataPoints() []*DataPoint {
	var out []*DataPoint
	for i := range s.DataPoints {
		if s.DataPoints[i].Visible {
			out = append(out, &s.DataPoints[i])
		}
	}
	return out
}

// VisibleDataPoint returns the data point at position index among visible ones.
func (s *State) VisibleDataPoint(index int) *DataPoint {
	visible := s.VisibleDataPoints()
	if index < 0 || index >= len(visible) {
		return nil
	}
	return visible[index]
}

// LevelOf returns the level dp holds on d. Missing entries read as 0; stored
// values left out of range by a level deletion are clamped.
func (d *Dimension) LevelOf(dp *DataPoint) int {
	v := dp.Values[d.ID]
	if v < 0 {
		return 0
	}
	if n := len(d.Levels); v >= n && n > 0 {
		return n - 1
	}
	return v
}

// MaxLevel returns the highest level id of d.
func (d *Dimension) MaxLevel() int {
	return len(d.Levels) - 1
}

// --- Dimensions ---

// AddDimension appends a dimension with a fresh id and three default levels.
func (s *State) AddDimension() *Dimension {
	id := 0
	for _, d := range s.Dimensions {
		if d.ID >= id {
			id = d.ID + 1
		}
	}
	s.Dimensions = append(s.Dimensions, Dimension{
		ID:     id,
		Name:   DefaultDimensionName,
		Levels: DefaultLevels(),
	})
	return &s.Dimensions[len(s.Dimensions)-1]
}

// DeleteDimension removes the dimension and its entry in every data point.
// Remaining dimension ids are left untouched.
func (s *State) DeleteDimension(id int) bool {
	i := s.dimensionIndex(id)
	if i < 0 {
		return false
	}
	s.Dimensions = append(s.Dimensions[:i], s.Dimensions[i+1:]...)
	for j := range s.DataPoints {
		delete(s.DataPoints[j].Values, id)
	}
	return true
}

// MoveDimension swaps the dimension with its neighbor in dir. It is a no-op
// at either end of the list.
func (s *State) MoveDimension(id int, dir Direction) bool {
	i := s.dimensionIndex(id)
	if i < 0 {
		return false
	}
	j := i + 1
	if dir == Up {
		j = i - 1
	}
	if j < 0 || j >= len(s.Dimensions) {
		return false
	}
	s.Dimensions[i], s.Dimensions[j] = s.Dimensions[j], s.Dimensions[i]
	return true
}

// UpdateDimension sets the name and description of a dimension.
func (s *State) UpdateDimension(id int, name, description string) bool {
	d := s.Dimension(id)
	if d == nil {
		return false
	}
	d.Name, d.Description = name, description
	return true
}

// --- Levels ---

// AddLevel appends a level to the dimension with id = current level count.
func (s *State) AddLevel(dimID int) (*Level, bool) {
	d := s.Dimension(dimID)
	if d == nil {
		return nil, false
	}
	d.Levels = append(d.Levels, Level{ID: len(d.Levels), Name: DefaultLevelName})
	return &d.Levels[len(d.Levels)-1], true
}

// DeleteLevel removes a level and renumbers the survivors to 0..N-2 in their
// existing order. Data point values are not remapped: a value that pointed at
// old level k now means whatever sits at new index k. A dimension is never
// reduced below MinLevels.
func (s *State) DeleteLevel(dimID, levelID int) bool {
	d := s.Dimension(dimID)
	if d == nil || len(d.Levels) <= MinLevels {
		return false
	}
	kept := d.Levels[:0]
	removed := false
	for _, l := range d.Levels {
		if l.ID == levelID && !removed {
			removed = true
			continue
		}
		kept = append(kept, l)
	}
	if !removed {
		return false
	}
	for i := range kept {
		kept[i].ID = i
	}
	d.Levels = kept
	return true
}

// UpdateLevel sets the name and description of a level.
func (s *State) UpdateLevel(dimID, levelID int, name, description string) bool {
	d := s.Dimension(dimID)
	if d == nil || levelID < 0 || levelID >= len(d.Levels) {
		return false
	}
	d.Levels[levelID].Name, d.Levels[levelID].Description = name, description
	return true
}

// --- Data points ---

// AddDataPoint appends a visible data point at level 0 on every dimension.
func (s *State) AddDataPoint() (*DataPoint, error) {
	if len(s.Dimensions) == 0 {
		return nil, ErrNoDimensions
	}
	id := 0
	for _, dp := range s.DataPoints {
		if dp.ID >= id {
			id = dp.ID + 1
		}
	}
	values := make(map[int]int, len(s.Dimensions))
	for _, d := range s.Dimensions {
		values[d.ID] = 0
	}
	s.DataPoints = append(s.DataPoints, DataPoint{
		ID:      id,
		Name:    fmt.Sprintf("Data Point %d", len(s.DataPoints)+1),
		Visible: true,
		Values:  values,
	})
	return &s.DataPoints[len(s.DataPoints)-1], nil
}

func (s *State) DeleteDataPoint(id int) bool {
	i := s.dataPointIndex(id)
	if i < 0 {
		return false
	}
	s.DataPoints = append(s.DataPoints[:i], s.DataPoints[i+1:]...)
	return true
}

func (s *State) RenameDataPoint(id int, name string) bool {
	dp := s.DataPoint(id)
	if dp == nil {
		return false
	}
	dp.Name = name
	return true
}

func (s *State) ToggleVisibility(id int) bool {
	dp := s.DataPoint(id)
	if dp == nil {
		return false
	}
	dp.Visible = !dp.Visible
	return true
}

// SetAllVisible shows or hides every data point and reports whether
// anything changed.
func (s *State) SetAllVisible(visible bool) bool {
	changed := false
	for i := range s.DataPoints {
		if s.DataPoints[i].Visible != visible {
			s.DataPoints[i].Visible = visible
			changed = true
		}
	}
	return changed
}

// SetValue assigns a level to a data point, clamped to the dimension's range.
// It reports false if either id is unknown or the value did not change.
func (s *State) SetValue(dataPointID, dimensionID, levelID int) bool {
	dp := s.DataPoint(dataPointID)
	d := s.Dimension(dimensionID)
	if dp == nil || d == nil {
		return false
	}
	return setValue(dp, d, levelID)
}

func setValue(dp *DataPoint, d *Dimension, levelID int) bool {
	if levelID < 0 {
		levelID = 0
	}
	if hi := d.MaxLevel(); levelID > hi {
		levelID = hi
	}
	if dp.Values == nil {
		dp.Values = map[int]int{}
	}
	if cur, ok := dp.Values[d.ID]; ok && cur == levelID {
		return false
	}
	dp.Values[d.ID] = levelID
	return true
}

// --- Title and theme ---

func (s *State) SetTitle(title, description string) {
	s.ChartTitle, s.Description = title, description
}

func (s *State) SetSize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	s.Theme.Width, s.Theme.Height = width, height
	return true
}

func (s *State) SetColorScheme(scheme ColorScheme) error {
	if _, ok := palettes[scheme]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownColorScheme, scheme)
	}
	s.Theme.ColorScheme = scheme
	return nil
}

func (s *State) SetShowLevelLabels(show bool) {
	s.Theme.ShowLevelLabels = show
}

func (s *State) SetShowDimensionNames(show bool) {
	s.Theme.ShowDimensionNames = show
}
