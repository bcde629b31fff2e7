package chart

import (
	"github.com/bbsatvik01/manning-sheets-ikes/internal/model"
)

// Assembler folds classified, bucketed assignments for one date into a
// ChartGrid. The grid starts with every layout station present in every
// shift; entries accumulate in the order they are added, which the
// processor keeps equal to source row-scan order.
type Assembler struct {
	profile *model.LocationProfile
	grid    *model.ChartGrid
}

// NewAssembler creates an assembler with an empty, fully-slotted grid.
func NewAssembler(dateLabel string, profile *model.LocationProfile) *Assembler {
	return &Assembler{
		profile: profile,
		grid:    model.NewChartGrid(dateLabel, profile),
	}
}

// Add places one assignment into the given shift's station slot. Stations
// the layout does not carry are refused; the caller records those in the
// unmapped diagnostics even though classification succeeded.
func (a *Assembler) Add(shift int, station string, asg model.Assignment) bool {
	if !a.profile.HasStation(station) {
		return false
	}
	a.grid.Add(shift, station, FormatEntry(asg))
	return true
}

// Grid returns the assembled chart.
func (a *Assembler) Grid() *model.ChartGrid {
	return a.grid
}

// FormatEntry renders an assignment the way it appears in a chart cell:
// the staff name over the time range.
func FormatEntry(asg model.Assignment) string {
	return asg.Name + "\n" + asg.TimeRange
}
