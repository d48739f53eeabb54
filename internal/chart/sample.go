package chart

// Sample returns a small, fully populated design space for first-run demos.
func Sample() *State {
	dims := []struct {
		name, description string
		levels            []string
	}{
		{"Autonomy", "How much the system acts without user confirmation", []string{"Manual", "Assisted", "Supervised", "Autonomous"}},
		{"Scope", "Breadth of tasks covered", []string{"Single task", "Workflow", "Domain"}},
		{"Transparency", "How much of the reasoning is exposed", []string{"Opaque", "Summaries", "Full trace"}},
		{"Latency", "Expected response time", []string{"Batch", "Interactive", "Real-time"}},
	}

	s := New()
	s.ChartTitle = "Assistant Design Space"
	s.Description = "a comparison of assistant configurations"
	for _, def := range dims {
		d := s.AddDimension()
		d.Name, d.Description = def.name, def.description
		d.Levels = d.Levels[:0]
		for i, name := range def.levels {
			d.Levels = append(d.Levels, Level{ID: i, Name: name})
		}
	}

	profiles := []struct {
		name   string
		values []int
	}{
		{"Copilot", []int{1, 1, 1, 2}},
		{"Agent", []int{3, 2, 1, 1}},
	}
	for _, p := range profiles {
		dp, _ := s.AddDataPoint()
		dp.Name = p.name
		for i, v := range p.values {
			dp.Values[s.Dimensions[i].ID] = v
		}
	}
	return s
}
