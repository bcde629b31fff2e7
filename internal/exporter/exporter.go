package exporter

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/bbsatvik01/manning-sheets-ikes/internal/model"
)

// Exporter renders assembled ChartGrids into Manning Chart workbooks:
// one workbook per date, one sheet per shift window, with the location's
// station layout as a bordered header/data grid.
type Exporter struct{}

// NewExporter creates an exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export renders one date's chart into a new workbook.
func (e *Exporter) Export(grid *model.ChartGrid, profile *model.LocationProfile) (*excelize.File, error) {
	f := excelize.NewFile()

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 14, Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}
	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}
	border := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    border,
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	dataStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "top", WrapText: true},
		Border:    border,
	})
	if err != nil {
		return nil, fmt.Errorf("create data style: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(profile.LayoutWidth())
	if err != nil {
		return nil, fmt.Errorf("resolve layout width: %w", err)
	}

	for i, shift := range grid.Shifts {
		sheet := shift.Window.Name
		if i == 0 {
			f.SetSheetName("Sheet1", sheet)
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, fmt.Errorf("create sheet %q: %w", sheet, err)
			}
		}

		f.MergeCell(sheet, "A1", lastCol+"1")
		f.SetCellValue(sheet, "A1", "MANNING CHART")
		f.SetCellStyle(sheet, "A1", lastCol+"1", titleStyle)

		f.MergeCell(sheet, "A2", lastCol+"2")
		f.SetCellValue(sheet, "A2", fmt.Sprintf(
			"Date: %s%s    Meal Periods: %s    MOD:",
			grid.DateLabel, weekdaySuffix(grid.DateLabel), shift.Window.MealPeriods,
		))
		f.SetCellStyle(sheet, "A2", lastCol+"2", subtitleStyle)

		f.SetColWidth(sheet, "A", lastCol, 30)

		rowPtr := 3
		for _, group := range profile.Layout {
			for col, station := range group {
				cell, _ := excelize.CoordinatesToCellName(col+1, rowPtr)
				f.SetCellValue(sheet, cell, station)
				f.SetCellStyle(sheet, cell, cell, headerStyle)
			}
			dataRow := rowPtr + 1
			for col, station := range group {
				cell, _ := excelize.CoordinatesToCellName(col+1, dataRow)
				f.SetCellValue(sheet, cell, strings.Join(shift.Stations[station], "\n\n"))
				f.SetCellStyle(sheet, cell, cell, dataStyle)
			}
			f.SetRowHeight(sheet, rowPtr, 20)
			f.SetRowHeight(sheet, dataRow, 60)
			rowPtr += 2
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

// OutputFileName builds the workbook filename for a date label:
// "Fri_04_Jul_Manning_sheet_<stamp>.xlsx". Labels that do not parse as
// MM/DD/YYYY fall back to the sanitized label itself.
func OutputFileName(dateLabel, stamp string) string {
	if t, err := time.Parse("01/02/2006", dateLabel); err == nil {
		return t.Format("Mon_02_Jan") + "_Manning_sheet_" + stamp + ".xlsx"
	}
	sanitized := strings.NewReplacer("/", "_", "-", "_").Replace(dateLabel)
	return sanitized + "_Manning_sheet_" + stamp + ".xlsx"
}

func weekdaySuffix(dateLabel string) string {
	t, err := time.Parse("01/02/2006", dateLabel)
	if err != nil {
		return ""
	}
	return " (" + t.Weekday().String() + ")"
}
