package parser

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/bbsatvik01/manning-sheets-ikes/internal/model"
)

var (
	dateLabelRE = regexp.MustCompile(`(\d{2}/\d{2})`)
	yearRE      = regexp.MustCompile(`\d{4}`)
)

// LoadScheduleTable opens a schedule workbook from disk and reads its
// active sheet into a ScheduleTable. A failure here is the "malformed
// source" case: fatal for the file, no partial result.
func LoadScheduleTable(path string) (*model.ScheduleTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open schedule workbook: %w", err)
	}
	defer f.Close()
	return readScheduleTable(f)
}

// LoadScheduleReader reads a schedule workbook from a stream, for callers
// that hold an uploaded file in memory.
func LoadScheduleReader(r io.Reader) (*model.ScheduleTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open schedule workbook: %w", err)
	}
	defer f.Close()
	return readScheduleTable(f)
}

func readScheduleTable(f *excelize.File) (*model.ScheduleTable, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	table := &model.ScheduleTable{}
	if len(rows) > 0 && len(rows[0]) > 0 {
		table.Header = strings.TrimSpace(rows[0][0])
	}
	year := headerYear(table.Header)

	// Date columns live in the second row. Column 0 is the role column
	// and never qualifies.
	if len(rows) > 1 {
		for idx, cell := range rows[1] {
			if idx == 0 || strings.TrimSpace(cell) == "" {
				continue
			}
			label := dateLabelRE.FindString(cell)
			if label == "" {
				continue
			}
			if year != "" && !strings.Contains(label, year) {
				label = label + "/" + year
			}
			table.DateColumns = append(table.DateColumns, model.DateColumn{
				Index: idx,
				Label: label,
			})
		}
	}

	if len(rows) > 2 {
		for _, row := range rows[2:] {
			role := ""
			if len(row) > 0 {
				role = row[0]
			}
			table.Rows = append(table.Rows, model.ScheduleRow{Role: role, Cells: row})
		}
	}

	return table, nil
}

// headerYear extracts the schedule year from the A1 header cell. When the
// header carries several 4-digit runs the last one wins; MyStaff exports
// put the week-ending year last.
func headerYear(header string) string {
	matches := yearRE.FindAllString(header, -1)
	if len(matches) == 0 {
		return ""
	}
	return matches[len(matches)-1]
}

// HeaderMentionsLocation reports whether the schedule header names the
// location. Used for a warning only; schedules are processed either way.
func HeaderMentionsLocation(header string, p *model.LocationProfile) bool {
	return strings.Contains(strings.ToLower(header), p.Name)
}
