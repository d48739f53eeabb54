package chart

import (
	"encoding/json"
	"fmt"
)

// document mirrors State with optional fields so that absent values can be
// told apart from zero values while merging over defaults.
type document struct {
	ChartTitle  *string      `json:"chartTitle"`
	Description *string      `json:"description"`
	Dimensions  []Dimension  `json:"dimensions"`
	DataPoints  []DataPoint  `json:"dataPoints"`
	Theme       *themeFields `json:"theme"`
}

type themeFields struct {
	Width              *int         `json:"width"`
	Height             *int         `json:"height"`
	ShowLevelLabels    *bool        `json:"showLevelLabels"`
	ShowDimensionNames *bool        `json:"showDimensionNames"`
	ColorScheme        *ColorScheme `json:"colorScheme"`
}

// Decode parses a chart document and merges it over New(): an empty or
// missing title becomes DefaultTitle, missing collections become empty and
// theme fields are merged one by one over DefaultTheme().
func Decode(data []byte) (*State, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}

	s := New()
	if doc.ChartTitle != nil && *doc.ChartTitle != "" {
		s.ChartTitle = *doc.ChartTitle
	}
	if doc.Description != nil {
		s.Description = *doc.Description
	}
	if doc.Dimensions != nil {
		s.Dimensions = doc.Dimensions
	}
	if doc.DataPoints != nil {
		s.DataPoints = doc.DataPoints
	}
	if t := doc.Theme; t != nil {
		if t.Width != nil {
			s.Theme.Width = *t.Width
		}
		if t.Height != nil {
			s.Theme.Height = *t.Height
		}
		if t.ShowLevelLabels != nil {
			s.Theme.ShowLevelLabels = *t.ShowLevelLabels
		}
		if t.ShowDimensionNames != nil {
			s.Theme.ShowDimensionNames = *t.ShowDimensionNames
		}
		if t.ColorScheme != nil {
			s.Theme.ColorScheme = *t.ColorScheme
		}
	}
	s.normalize()
	return s, nil
}
