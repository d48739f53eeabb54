package chart

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ColorScheme is a key into the fixed palette table.
type ColorScheme string

const (
	SchemeDefault    ColorScheme = "default"
	SchemeColorblind ColorScheme = "colorblind"
	SchemeMonochrome ColorScheme = "monochrome"
	SchemeWarm       ColorScheme = "warm"
	SchemeCool       ColorScheme = "cool"
)

var schemeOrder = []ColorScheme{
	SchemeDefault,
	SchemeColorblind,
	SchemeMonochrome,
	SchemeWarm,
	SchemeCool,
}

var palettes = map[ColorScheme][]string{
	SchemeDefault:    {"#8884d8", "#82ca9d", "#ffc658", "#ff7c7c", "#8dd1e1", "#d084d0", "#a4de6c"},
	SchemeColorblind: {"#0173B2", "#DE8F05", "#029E73", "#CC78BC", "#CA9161", "#949494", "#ECE133"},
	SchemeMonochrome: {"#1a1a1a", "#404040", "#666666", "#8c8c8c", "#b3b3b3", "#d9d9d9", "#f2f2f2"},
	SchemeWarm:       {"#D95F02", "#E7298A", "#E6AB02", "#A6761D", "#FF6B6B", "#FFA07A", "#FFD700"},
	SchemeCool:       {"#1B9E77", "#66A61E", "#7570B3", "#6495ED", "#20B2AA", "#4682B4", "#5F9EA0"},
}

// Colors returns the palette for scheme. Unknown schemes fall back to default.
func (c ColorScheme) Colors() []string {
	if p, ok := palettes[c]; ok {
		return p
	}
	return palettes[SchemeDefault]
}

// Color returns the color for the data point at position index among the
// visible ones. Colors follow position, not identity, so hiding or
// reordering data points reassigns them.
func (c ColorScheme) Color(index int) string {
	p := c.Colors()
	return p[index%len(p)]
}

// SchemeInfo describes one selectable palette.
type SchemeInfo struct {
	Key    ColorScheme `json:"key"`
	Label  string      `json:"label"`
	Colors []string    `json:"colors"`
}

var schemeTitle = cases.Title(language.English)

// Schemes lists the palettes in display order.
func Schemes() []SchemeInfo {
	out := make([]SchemeInfo, 0, len(schemeOrder))
	for _, key := range schemeOrder {
		out = append(out, SchemeInfo{
			Key:    key,
			Label:  schemeTitle.String(string(key)),
			Colors: append([]string(nil), palettes[key]...),
		})
	}
	return out
}
