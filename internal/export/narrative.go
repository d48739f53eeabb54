package export

import (
	"fmt"
	"strings"

	"github.com/designspace/designspace/internal/chart"
)

// AltText describes the chart for screen readers: title, description,
// dimensions and the level of every visible data point on each dimension.
func AltText(s *chart.State) string {
	var b strings.Builder
	b.WriteString(`A radar chart titled "` + s.ChartTitle + `"`)
	if s.Description != "" {
		b.WriteString(" representing " + s.Description)
	}
	fmt.Fprintf(&b, " displaying %d dimensions: %s.", len(s.Dimensions), strings.Join(dimensionNames(s), ", "))

	visible := s.VisibleDataPoints()
	if len(visible) == 0 {
		return b.String()
	}
	plural := ""
	if len(visible) > 1 {
		plural = "s"
	}
	fmt.Fprintf(&b, " The chart shows %d data point%s: ", len(visible), plural)
	profiles := make([]string, len(visible))
	for i, dp := range visible {
		values := make([]string, 0, len(s.Dimensions))
		for j := range s.Dimensions {
			dim := &s.Dimensions[j]
			level := ""
			if len(dim.Levels) > 0 {
				level = dim.Levels[dim.LevelOf(dp)].Name
			}
			values = append(values, dim.Name+": "+level)
		}
		profiles[i] = fmt.Sprintf("%s (%s)", dp.Name, strings.Join(values, ", "))
	}
	b.WriteString(strings.Join(profiles, "; "))
	b.WriteString(".")
	return b.String()
}

// Caption returns a figure caption whose wording depends on how many data
// points are visible.
func Caption(s *chart.State) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Figure: %s.", s.ChartTitle)
	if s.Description != "" {
		b.WriteString(" " + s.Description)
	}
	b.WriteString(" This radar chart ")

	visible := s.VisibleDataPoints()
	names := make([]string, len(visible))
	for i, dp := range visible {
		names[i] = dp.Name
	}
	switch len(visible) {
	case 0:
		b.WriteString("presents the design space framework")
	case 1:
		b.WriteString("presents the profile of " + names[0])
	case 2:
		b.WriteString("compares " + strings.Join(names, ", "))
	default:
		fmt.Fprintf(&b, "compares %d configurations (%s)", len(visible), strings.Join(names, ", "))
	}
	fmt.Fprintf(&b, " across %d dimensions.", len(s.Dimensions))
	return b.String()
}

func dimensionNames(s *chart.State) []string {
	names := make([]string, len(s.Dimensions))
	for i, d := range s.Dimensions {
		names[i] = d.Name
	}
	return names
}
