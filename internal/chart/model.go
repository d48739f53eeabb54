// Package chart holds the editable radar chart model: dimensions with ordered
// levels, data points that select one level per dimension, and display theme.
//
// State is the single mutable root. Every mutation goes through the methods
// in this package; callers that need durability snapshot the whole State.
package chart

import (
	"encoding/json"
	"fmt"
)

const (
	DefaultTitle         = "Design Space"
	DefaultWidth         = 800
	DefaultHeight        = 800
	DefaultDimensionName = "New Dimension"
	DefaultLevelName     = "New Level"

	// MinLevels is the number of levels a dimension keeps at all times.
	MinLevels = 2
)

type State struct {
	ChartTitle  string      `json:"chartTitle"`
	Description string      `json:"description"`
	Dimensions  []Dimension `json:"dimensions"`
	DataPoints  []DataPoint `json:"dataPoints"`
	Theme       Theme       `json:"theme"`
}

// Dimension ids are stable and never reused by AddDimension while a larger
// id exists. Level ids are dense 0..N-1 and double as the level's rank.
type Dimension struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Levels      []Level `json:"levels"`
}

type Level struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DataPoint.Values maps Dimension.ID to Level.ID. Missing entries read as 0.
type DataPoint struct {
	ID      int         `json:"id"`
	Name    string      `json:"name"`
	Visible bool        `json:"visible"`
	Values  map[int]int `json:"values"`
}

type Theme struct {
	Width              int         `json:"width"`
	Height             int         `json:"height"`
	ShowLevelLabels    bool        `json:"showLevelLabels"`
	ShowDimensionNames bool        `json:"showDimensionNames"`
	ColorScheme        ColorScheme `json:"colorScheme"`
}

// DefaultTheme returns the theme used when none is stored.
func DefaultTheme() Theme {
	return Theme{
		Width:              DefaultWidth,
		Height:             DefaultHeight,
		ShowLevelLabels:    true,
		ShowDimensionNames: true,
		ColorScheme:        SchemeDefault,
	}
}

// New returns an empty chart with default title and theme.
func New() *State {
	return &State{
		ChartTitle: DefaultTitle,
		Dimensions: []Dimension{},
		DataPoints: []DataPoint{},
		Theme:      DefaultTheme(),
	}
}

// DefaultLevels returns the three levels given to a new dimension.
func DefaultLevels() []Level {
	return []Level{
		{ID: 0, Name: "Low"},
		{ID: 1, Name: "Medium"},
		{ID: 2, Name: "High"},
	}
}

// Marshal serializes the state into its snapshot form.
func (s *State) Marshal() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal chart: %w", err)
	}
	return data, nil
}

// Unmarshal parses a snapshot produced by Marshal.
func Unmarshal(data []byte) (*State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal chart: %w", err)
	}
	s.normalize()
	return &s, nil
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	c := *s
	c.Dimensions = make([]Dimension, len(s.Dimensions))
	for i, d := range s.Dimensions {
		d.Levels = append([]Level(nil), d.Levels...)
		c.Dimensions[i] = d
	}
	c.DataPoints = make([]DataPoint, len(s.DataPoints))
	for i, dp := range s.DataPoints {
		values := make(map[int]int, len(dp.Values))
		for k, v := range dp.Values {
			values[k] = v
		}
		dp.Values = values
		c.DataPoints[i] = dp
	}
	return &c
}

// normalize replaces nil collections so that mutation and serialization
// never see a nil slice or map.
func (s *State) normalize() {
	if s.Dimensions == nil {
		s.Dimensions = []Dimension{}
	}
	if s.DataPoints == nil {
		s.DataPoints = []DataPoint{}
	}
	for i := range s.Dimensions {
		if s.Dimensions[i].Levels == nil {
			s.Dimensions[i].Levels = []Level{}
		}
	}
	for i := range s.DataPoints {
		if s.DataPoints[i].Values == nil {
			s.DataPoints[i].Values = map[int]int{}
		}
	}
}
