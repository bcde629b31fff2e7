package model

// ShiftWindow is one named time-of-day range used to bucket assignments.
// Each window becomes one sheet in the generated workbook.
type ShiftWindow struct {
	Name        string  `json:"name"`        // tab name, e.g. "6am-2pm"
	MealPeriods string  `json:"mealPeriods"` // display label, e.g. "B BR"
	Lower       float64 `json:"lower"`       // inclusive start hour
	Upper       float64 `json:"upper"`       // exclusive end hour
}

// Contains reports whether start falls inside the window's [Lower, Upper) range.
// Overnight wrapping is handled by the bucketer, not here.
func (w ShiftWindow) Contains(start float64) bool {
	return start >= w.Lower && start < w.Upper
}

// FuzzyRule maps a role-text keyword to a station. Rules are evaluated in
// declaration order; the first keyword contained in the role text wins.
type FuzzyRule struct {
	Keyword string `json:"keyword"`
	Station string `json:"station"`
}

// LocationProfile is the full site configuration: role mappings, shift
// windows, and the chart station layout for one dining location.
// Profiles are built once at startup and never mutated.
type LocationProfile struct {
	Name string `json:"name"`

	// Roles maps normalized (lower-cased) role text to a station.
	Roles map[string]string `json:"roles"`

	// FuzzyRules is the ordered keyword fallback used when no exact
	// mapping matches.
	FuzzyRules []FuzzyRule `json:"fuzzyRules"`

	// IgnoredRoles are normalized role tokens excluded before
	// classification; they never count toward any diagnostic.
	IgnoredRoles []string `json:"ignoredRoles"`

	Windows []ShiftWindow `json:"windows"`

	// Layout is the chart grid: ordered rows of station names. Every
	// station named here gets a slot in every shift of the output.
	Layout [][]string `json:"layout"`

	// Tiled marks profiles whose three windows cover the full day,
	// including the overnight window that wraps past midnight.
	Tiled bool `json:"tiled"`
}

// LayoutStations returns every station named in the layout, in row-scan
// order, skipping padding cells.
func (p *LocationProfile) LayoutStations() []string {
	stations := make([]string, 0, len(p.Layout)*3)
	for _, row := range p.Layout {
		for _, station := range row {
			if station != "" {
				stations = append(stations, station)
			}
		}
	}
	return stations
}

// HasStation reports whether the station appears anywhere in the layout.
func (p *LocationProfile) HasStation(name string) bool {
	for _, row := range p.Layout {
		for _, station := range row {
			if station == name {
				return true
			}
		}
	}
	return false
}

// LayoutWidth returns the widest layout row.
func (p *LocationProfile) LayoutWidth() int {
	width := 0
	for _, row := range p.Layout {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}
