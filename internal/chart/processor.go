package chart

import (
	"strings"

	"github.com/bbsatvik01/manning-sheets-ikes/internal/model"
	"github.com/bbsatvik01/manning-sheets-ikes/internal/parser"
)

// DateChart bundles one date's assembled grid with its diagnostics.
type DateChart struct {
	Label    string
	Grid     *model.ChartGrid
	Counters *model.VerificationCounters
}

// Processor runs the transformation pipeline for one location: per date
// column, tokenize every cell, classify its role, bucket each start time,
// and assemble the shift/station grid.
type Processor struct {
	profile *model.LocationProfile
}

// NewProcessor creates a processor bound to a location profile.
func NewProcessor(profile *model.LocationProfile) *Processor {
	return &Processor{profile: profile}
}

// Profile returns the bound location profile.
func (p *Processor) Profile() *model.LocationProfile {
	return p.profile
}

// Process produces one DateChart per discovered date column, in column
// order. A table with no date columns yields an empty slice; that is a
// warning condition for the caller, not an error.
func (p *Processor) Process(table *model.ScheduleTable) []DateChart {
	charts := make([]DateChart, 0, len(table.DateColumns))
	for _, col := range table.DateColumns {
		charts = append(charts, p.processColumn(table, col))
	}
	return charts
}

func (p *Processor) processColumn(table *model.ScheduleTable, col model.DateColumn) DateChart {
	asm := NewAssembler(col.Label, p.profile)
	counters := model.NewVerificationCounters()

	for _, row := range table.Rows {
		// Ignored rows are excluded before anything is counted.
		if parser.IsIgnoredRole(row.Role, p.profile) {
			continue
		}

		assignments := parser.TokenizeCell(row.Cell(col.Index))
		if len(assignments) == 0 {
			continue
		}

		station, classified := parser.Classify(row.Role, p.profile)
		charted := classified && p.profile.HasStation(station)

		for _, asg := range assignments {
			counters.Total++
			if !charted {
				if label := strings.TrimSpace(row.Role); label != "" {
					counters.AddUnmapped(label)
				}
				continue
			}
			counters.Mapped++

			shift, ok := parser.BucketShift(asg.StartHour, p.profile)
			if !ok {
				// Legacy profiles leave parts of the day uncovered;
				// the assignment vanishes from the chart but the
				// counter keeps the loss visible.
				counters.OutOfWindow++
				continue
			}
			asm.Add(shift, station, asg)
		}
	}

	return DateChart{Label: col.Label, Grid: asm.Grid(), Counters: counters}
}
