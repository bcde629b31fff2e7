package model

import "sort"

// Assignment is one decoded (name, time range) record from a schedule
// cell. It exists only while its date column is being processed.
type Assignment struct {
	Name      string  `json:"name"`
	TimeRange string  `json:"timeRange"` // normalized "<start> - <end>"
	StartHour float64 `json:"startHour"`
}

// ShiftChart holds one shift's station grid. Entries per station keep
// source row-scan order; that order is user-visible in the rendered chart.
type ShiftChart struct {
	Window   ShiftWindow         `json:"window"`
	Stations map[string][]string `json:"stations"`
}

// ChartGrid is the assembled Manning Chart for one date. Every station
// named in the location layout has an entry in every shift, even if empty.
type ChartGrid struct {
	DateLabel string       `json:"dateLabel"`
	Shifts    []ShiftChart `json:"shifts"`
}

// NewChartGrid builds an empty grid for the profile: one ShiftChart per
// window, each pre-populated with every layout station.
func NewChartGrid(dateLabel string, profile *LocationProfile) *ChartGrid {
	shifts := make([]ShiftChart, len(profile.Windows))
	for i, w := range profile.Windows {
		stations := make(map[string][]string)
		for _, name := range profile.LayoutStations() {
			stations[name] = []string{}
		}
		shifts[i] = ShiftChart{Window: w, Stations: stations}
	}
	return &ChartGrid{DateLabel: dateLabel, Shifts: shifts}
}

// Add appends a formatted entry to the given shift and station slot.
// Unknown stations are ignored; callers screen against the layout first.
func (g *ChartGrid) Add(shift int, station, entry string) {
	if shift < 0 || shift >= len(g.Shifts) {
		return
	}
	if _, ok := g.Shifts[shift].Stations[station]; !ok {
		return
	}
	g.Shifts[shift].Stations[station] = append(g.Shifts[shift].Stations[station], entry)
}

// VerificationCounters are the per-date diagnostics: how many assignments
// were decoded, how many landed on a known layout station, which role
// labels could not be placed, and how many starts fell outside every
// configured shift window (legacy non-tiling profiles only).
type VerificationCounters struct {
	Total       int             `json:"total"`
	Mapped      int             `json:"mapped"`
	OutOfWindow int             `json:"outOfWindow"`
	Unmapped    map[string]bool `json:"unmapped"`
}

// NewVerificationCounters creates zeroed counters.
func NewVerificationCounters() *VerificationCounters {
	return &VerificationCounters{Unmapped: make(map[string]bool)}
}

// AddUnmapped records a role label that could not be charted.
func (v *VerificationCounters) AddUnmapped(role string) {
	v.Unmapped[role] = true
}

// UnmappedRoles returns the recorded labels in sorted order for display.
func (v *VerificationCounters) UnmappedRoles() []string {
	roles := make([]string, 0, len(v.Unmapped))
	for role := range v.Unmapped {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}
