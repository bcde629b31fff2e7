package generator

import (
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/bbsatvik01/manning-sheets-ikes/internal/chart"
	"github.com/bbsatvik01/manning-sheets-ikes/internal/exporter"
	"github.com/bbsatvik01/manning-sheets-ikes/internal/model"
	"github.com/bbsatvik01/manning-sheets-ikes/internal/parser"
	"github.com/bbsatvik01/manning-sheets-ikes/internal/store"
)

// Coordinator drives one uploaded schedule end to end: load the table,
// process every date column, export and save each chart workbook, and
// record the run in the history store.
type Coordinator struct {
	store    *store.Store
	exporter *exporter.Exporter
}

// NewCoordinator creates a coordinator. The store may be nil, in which
// case runs are not recorded (used by tests).
func NewCoordinator(st *store.Store) *Coordinator {
	return &Coordinator{
		store:    st,
		exporter: exporter.NewExporter(),
	}
}

// Options configures one run.
type Options struct {
	FilePath  string // the uploaded schedule workbook
	Location  string // location profile name
	OutputDir string // where chart workbooks are written
}

// OutputResult is the outcome for one date column.
type OutputResult struct {
	DateLabel   string   `json:"dateLabel"`
	Filename    string   `json:"filename,omitempty"`
	Total       int      `json:"total"`
	Mapped      int      `json:"mapped"`
	OutOfWindow int      `json:"outOfWindow"`
	Unmapped    []string `json:"unmapped,omitempty"`
	Err         string   `json:"error,omitempty"` // set when this date's workbook failed to write
}

// Report summarizes one run.
type Report struct {
	RunID         string         `json:"runId"`
	SourceFile    string         `json:"sourceFile"`
	Location      string         `json:"location"`
	DatesFound    int            `json:"datesFound"`
	ChartsWritten int            `json:"chartsWritten"`
	Outputs       []OutputResult `json:"outputs"`
	Duration      time.Duration  `json:"duration"`
}

// Filenames lists the workbooks the run actually wrote, in date order.
func (r *Report) Filenames() []string {
	files := make([]string, 0, len(r.Outputs))
	for _, o := range r.Outputs {
		if o.Filename != "" && o.Err == "" {
			files = append(files, o.Filename)
		}
	}
	return files
}

// Generate runs one schedule file to completion. An error means the
// source could not be opened or decoded; a nil error with DatesFound == 0
// means the file parsed but carried no usable schedule data. Individual
// date write failures are recorded per output and do not stop the rest.
func (c *Coordinator) Generate(opts Options) (*Report, error) {
	startTime := time.Now()

	profile, err := model.ProfileByName(opts.Location)
	if err != nil {
		return nil, err
	}

	report := &Report{
		RunID:      uuid.New().String(),
		SourceFile: filepath.Base(opts.FilePath),
		Location:   profile.Name,
	}

	if c.store != nil {
		if err := c.store.CreateRun(report.RunID, report.SourceFile, profile.Name); err != nil {
			log.Printf("WARNING: failed to record run: %v", err)
		}
	}

	table, err := parser.LoadScheduleTable(opts.FilePath)
	if err != nil {
		// Malformed source: fatal for this file, no partial charts.
		c.finishRun(report, store.RunStatusFailed, err.Error())
		return nil, err
	}

	if table.Header != "" && !parser.HeaderMentionsLocation(table.Header, profile) {
		log.Printf("WARNING: schedule header %q does not mention location %q", table.Header, profile.Name)
	}

	charts := chart.NewProcessor(profile).Process(table)
	report.DatesFound = len(charts)
	if len(charts) == 0 {
		log.Printf("WARNING: no valid date columns in %q.", report.SourceFile)
		c.finishRun(report, store.RunStatusDone, "")
		report.Duration = time.Since(startTime)
		return report, nil
	}

	stamp := startTime.Format("20060102_150405")
	failures := 0

	for _, dc := range charts {
		out := c.writeChart(dc, profile, opts.OutputDir, stamp, report)
		if out.Err != "" {
			failures++
		}
		report.Outputs = append(report.Outputs, out)
	}

	status := store.RunStatusDone
	if failures > 0 {
		status = store.RunStatusPartial
	}
	c.finishRun(report, status, "")
	report.Duration = time.Since(startTime)
	return report, nil
}

func (c *Coordinator) writeChart(dc chart.DateChart, profile *model.LocationProfile, outputDir, stamp string, report *Report) OutputResult {
	out := OutputResult{
		DateLabel:   dc.Label,
		Total:       dc.Counters.Total,
		Mapped:      dc.Counters.Mapped,
		OutOfWindow: dc.Counters.OutOfWindow,
		Unmapped:    dc.Counters.UnmappedRoles(),
	}

	if len(out.Unmapped) > 0 {
		log.Printf("WARNING: %s: %d of %d assignments unmapped; roles: %s",
			dc.Label, out.Total-out.Mapped, out.Total, strings.Join(out.Unmapped, ", "))
	}
	if out.OutOfWindow > 0 {
		log.Printf("WARNING: %s: %d assignment(s) start outside every %s shift window and were dropped",
			dc.Label, out.OutOfWindow, profile.Name)
	}

	f, err := c.exporter.Export(dc.Grid, profile)
	if err == nil {
		filename := exporter.OutputFileName(dc.Label, stamp)
		if err = saveWorkbook(f, filepath.Join(outputDir, filename)); err == nil {
			out.Filename = filename
		}
	}
	if err != nil {
		// Fatal for this date's chart only; remaining dates continue.
		out.Err = err.Error()
		log.Printf("ERROR: failed to write chart for %s: %v", dc.Label, err)
		return out
	}

	report.ChartsWritten++
	log.Printf("Generated %q from %q.", out.Filename, report.SourceFile)

	if c.store != nil {
		if err := c.store.AddOutput(store.Output{
			RunID:             report.RunID,
			DateLabel:         out.DateLabel,
			Filename:          out.Filename,
			TotalAssignments:  out.Total,
			MappedAssignments: out.Mapped,
			OutOfWindow:       out.OutOfWindow,
			UnmappedRoles:     out.Unmapped,
		}); err != nil {
			log.Printf("WARNING: failed to record output %q: %v", out.Filename, err)
		}
	}
	return out
}

func (c *Coordinator) finishRun(report *Report, status, errorMessage string) {
	if c.store == nil {
		return
	}
	total, mapped := 0, 0
	for _, o := range report.Outputs {
		total += o.Total
		mapped += o.Mapped
	}
	if err := c.store.CompleteRun(report.RunID, status, report.ChartsWritten, total, mapped, errorMessage); err != nil {
		log.Printf("WARNING: failed to finalize run: %v", err)
	}
}

func saveWorkbook(f *excelize.File, path string) error {
	defer f.Close()
	return f.SaveAs(path)
}
