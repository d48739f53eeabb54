package chart

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// withDimensions returns a chart holding n default dimensions.
func withDimensions(n int) *State {
	s := New()
	for i := 0; i < n; i++ {
		s.AddDimension()
	}
	return s
}

func TestAddDimensionIDs(t *testing.T) {
	s := New()
	for i := 0; i < 3; i++ {
		if got := s.AddDimension().ID; got != i {
			t.Errorf("AddDimension() #%d got id %d", i, got)
		}
	}
	s.DeleteDimension(1)
	if got := s.AddDimension().ID; got != 3 {
		t.Errorf("AddDimension() after delete got id %d, want 3", got)
	}
	s.DeleteDimension(3)
	s.DeleteDimension(2)
	if got := s.AddDimension().ID; got != 1 {
		t.Errorf("AddDimension() after deleting the max ids got id %d, want 1", got)
	}

	d := s.Dimensions[0]
	if diff := cmp.Diff(DefaultLevels(), d.Levels); diff != "" {
		t.Errorf("default levels diff (-want +got):\n%s", diff)
	}
	if d.Name != DefaultDimensionName {
		t.Errorf("default name = %q", d.Name)
	}
}

func TestDeleteDimensionRemovesValues(t *testing.T) {
	s := withDimensions(3)
	dp, err := s.AddDataPoint()
	if err != nil {
		t.Fatalf("AddDataPoint() failed: %v", err)
	}
	dp.Values = map[int]int{0: 2, 1: 1, 2: 0}
	other, _ := s.AddDataPoint()
	other.Values = map[int]int{0: 1, 1: 2}

	if !s.DeleteDimension(1) {
		t.Fatalf("DeleteDimension(1) reported no change")
	}
	if diff := cmp.Diff(map[int]int{0: 2, 2: 0}, s.DataPoints[0].Values); diff != "" {
		t.Errorf("first data point values diff (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[int]int{0: 1}, s.DataPoints[1].Values); diff != "" {
		t.Errorf("second data point values diff (-want +got):\n%s", diff)
	}
	var ids []int
	for _, d := range s.Dimensions {
		ids = append(ids, d.ID)
	}
	if diff := cmp.Diff([]int{0, 2}, ids); diff != "" {
		t.Errorf("dimension ids diff (-want +got):\n%s", diff)
	}
	if s.DeleteDimension(42) {
		t.Errorf("DeleteDimension(42) on missing id reported a change")
	}
}

func TestMoveDimension(t *testing.T) {
	for _, test := range []struct {
		description string
		id          int
		dir         Direction
		wantChanged bool
		wantOrder   []int
	}{
		{"move first up is a no-op", 0, Up, false, []int{0, 1, 2}},
		{"move last down is a no-op", 2, Down, false, []int{0, 1, 2}},
		{"move middle up", 1, Up, true, []int{1, 0, 2}},
		{"move middle down", 1, Down, true, []int{0, 2, 1}},
		{"missing id", 9, Down, false, []int{0, 1, 2}},
	} {
		t.Run(test.description, func(t *testing.T) {
			s := withDimensions(3)
			if got := s.MoveDimension(test.id, test.dir); got != test.wantChanged {
				t.Errorf("MoveDimension() = %v, want %v", got, test.wantChanged)
			}
			var order []int
			for _, d := range s.Dimensions {
				order = append(order, d.ID)
			}
			if diff := cmp.Diff(test.wantOrder, order); diff != "" {
				t.Errorf("order diff (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAddLevel(t *testing.T) {
	s := withDimensions(1)
	l, ok := s.AddLevel(0)
	if !ok {
		t.Fatalf("AddLevel(0) failed")
	}
	if l.ID != 3 || l.Name != DefaultLevelName {
		t.Errorf("AddLevel(0) = %+v", *l)
	}
	if _, ok := s.AddLevel(7); ok {
		t.Errorf("AddLevel on missing dimension succeeded")
	}
}

func TestDeleteLevelRenumbers(t *testing.T) {
	s := withDimensions(1)
	s.AddLevel(0)
	s.UpdateLevel(0, 3, "Extreme", "")
	if !s.DeleteLevel(0, 1) {
		t.Fatalf("DeleteLevel(0, 1) reported no change")
	}
	want := []Level{
		{ID: 0, Name: "Low"},
		{ID: 1, Name: "High"},
		{ID: 2, Name: "Extreme"},
	}
	if diff := cmp.Diff(want, s.Dimensions[0].Levels); diff != "" {
		t.Errorf("levels diff (-want +got):\n%s", diff)
	}
}

func TestDeleteLevelKeepsMinimum(t *testing.T) {
	s := withDimensions(1)
	if !s.DeleteLevel(0, 2) {
		t.Fatalf("DeleteLevel with 3 levels should succeed")
	}
	if s.DeleteLevel(0, 0) {
		t.Errorf("DeleteLevel with %d levels should be refused", MinLevels)
	}
	if got := len(s.Dimensions[0].Levels); got != MinLevels {
		t.Errorf("level count = %d, want %d", got, MinLevels)
	}
}

func TestDeleteLevelReinterpretsValues(t *testing.T) {
	s := withDimensions(1)
	s.AddLevel(0)
	dp, _ := s.AddDataPoint()
	dp.Values[0] = 3
	s.DeleteLevel(0, 1)
	// The stored value is not remapped; it now points past the last level and
	// reads clamped.
	if got := s.DataPoints[0].Values[0]; got != 3 {
		t.Errorf("stored value = %d, want 3", got)
	}
	if got := s.Dimensions[0].LevelOf(&s.DataPoints[0]); got != 2 {
		t.Errorf("LevelOf() = %d, want 2", got)
	}
}

func TestAddDataPoint(t *testing.T) {
	s := New()
	if _, err := s.AddDataPoint(); !errors.Is(err, ErrNoDimensions) {
		t.Errorf("AddDataPoint() with no dimensions: err = %v, want %v", err, ErrNoDimensions)
	}
	if len(s.DataPoints) != 0 {
		t.Errorf("AddDataPoint() failure altered data points: %v", s.DataPoints)
	}

	s = withDimensions(2)
	s.DeleteDimension(0)
	s.AddDimension()
	dp, err := s.AddDataPoint()
	if err != nil {
		t.Fatalf("AddDataPoint() failed: %v", err)
	}
	want := DataPoint{ID: 0, Name: "Data Point 1", Visible: true, Values: map[int]int{1: 0, 2: 0}}
	if diff := cmp.Diff(want, *dp); diff != "" {
		t.Errorf("AddDataPoint() diff (-want +got):\n%s", diff)
	}
	second, _ := s.AddDataPoint()
	if second.ID != 1 || second.Name != "Data Point 2" {
		t.Errorf("second data point = %+v", *second)
	}
}

func TestVisibility(t *testing.T) {
	s := withDimensions(1)
	s.AddDataPoint()
	s.AddDataPoint()
	s.AddDataPoint()

	if !s.ToggleVisibility(1) {
		t.Fatalf("ToggleVisibility(1) reported no change")
	}
	if s.ToggleVisibility(99) {
		t.Errorf("ToggleVisibility on missing id reported a change")
	}
	var names []string
	for _, dp := range s.VisibleDataPoints() {
		names = append(names, dp.Name)
	}
	if diff := cmp.Diff([]string{"Data Point 1", "Data Point 3"}, names); diff != "" {
		t.Errorf("visible diff (-want +got):\n%s", diff)
	}
	if got := s.VisibleDataPoint(1); got == nil || got.ID != 2 {
		t.Errorf("VisibleDataPoint(1) = %+v, want id 2", got)
	}

	if !s.SetAllVisible(false) {
		t.Errorf("SetAllVisible(false) reported no change")
	}
	if n := len(s.VisibleDataPoints()); n != 0 {
		t.Errorf("%d data points visible after hiding all", n)
	}
	if s.SetAllVisible(false) {
		t.Errorf("SetAllVisible(false) twice reported a change")
	}
	s.SetAllVisible(true)
	if n := len(s.VisibleDataPoints()); n != 3 {
		t.Errorf("%d data points visible after showing all, want 3", n)
	}
}

func TestSetValueClamps(t *testing.T) {
	s := withDimensions(1)
	s.AddDataPoint()
	for _, test := range []struct {
		level int
		want  int
	}{{2, 2}, {7, 2}, {-3, 0}, {1, 1}} {
		s.SetValue(0, 0, test.level)
		if got := s.DataPoints[0].Values[0]; got != test.want {
			t.Errorf("SetValue(%d) stored %d, want %d", test.level, got, test.want)
		}
	}
	if s.SetValue(0, 0, 1) {
		t.Errorf("SetValue with unchanged level reported a change")
	}
	if s.SetValue(5, 0, 1) || s.SetValue(0, 5, 1) {
		t.Errorf("SetValue with missing ids reported a change")
	}
}

func TestThemeSetters(t *testing.T) {
	s := New()
	if err := s.SetColorScheme("neon"); !errors.Is(err, ErrUnknownColorScheme) {
		t.Errorf("SetColorScheme(neon) err = %v", err)
	}
	if err := s.SetColorScheme(SchemeWarm); err != nil {
		t.Errorf("SetColorScheme(warm) err = %v", err)
	}
	if s.SetSize(0, 100) {
		t.Errorf("SetSize(0, 100) accepted")
	}
	s.SetSize(1200, 600)
	s.SetShowLevelLabels(false)
	want := Theme{Width: 1200, Height: 600, ShowDimensionNames: true, ColorScheme: SchemeWarm}
	if diff := cmp.Diff(want, s.Theme); diff != "" {
		t.Errorf("theme diff (-want +got):\n%s", diff)
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := Sample()
	c := s.Clone()
	c.Dimensions[0].Levels[0].Name = "changed"
	c.DataPoints[0].Values[0] = 0
	c.DeleteDimension(1)
	if diff := cmp.Diff(Sample(), s); diff != "" {
		t.Errorf("original changed through clone (-want +got):\n%s", diff)
	}
}

func TestColorCycles(t *testing.T) {
	colors := SchemeDefault.Colors()
	if got := SchemeDefault.Color(len(colors)); got != colors[0] {
		t.Errorf("Color(%d) = %q, want %q", len(colors), got, colors[0])
	}
	if got := ColorScheme("bogus").Color(1); got != colors[1] {
		t.Errorf("unknown scheme Color(1) = %q, want %q", got, colors[1])
	}
	schemes := Schemes()
	if schemes[1].Label != "Colorblind" {
		t.Errorf("Schemes()[1].Label = %q", schemes[1].Label)
	}
}
