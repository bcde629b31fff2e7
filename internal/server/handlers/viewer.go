package handlers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
)

// View models for rendering a generated workbook back as HTML. The
// workbook layout alternates station header rows and data rows below the
// two title rows; the viewer walks that structure rather than guessing.

// SheetView is one shift tab of a workbook.
type SheetView struct {
	Name         string
	TotalEntries int
	Stations     []StationView
	Sections     []SectionView
}

// StationView lists the decoded entries for one station.
type StationView struct {
	Station string
	Entries []EntryView
}

// EntryView is one staff entry: name plus time range.
type EntryView struct {
	Name string
	Time string
}

// SectionView mirrors one header/data row pair of the Excel layout.
// Cells hold the raw cell text split into lines for <br> rendering.
type SectionView struct {
	Headers []string
	Cells   [][]string
}

var viewBlockRE = regexp.MustCompile(`\n{2,}`)

func buildWorkbookView(path string) ([]SheetView, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	var sheets []SheetView
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		sheets = append(sheets, buildSheetView(name, rows))
	}
	return sheets, nil
}

func buildSheetView(name string, rows [][]string) SheetView {
	view := SheetView{Name: name}

	// First two rows are the chart title and the date/meal-period line.
	rowIdx := 2
	for rowIdx < len(rows) {
		headerRow := rows[rowIdx]
		if rowIdx+1 >= len(rows) || !anyNonEmpty(headerRow) {
			rowIdx++
			continue
		}
		dataRow := rows[rowIdx+1]

		section := SectionView{}
		for col := 0; col < len(headerRow); col++ {
			station := strings.TrimSpace(headerRow[col])
			cell := ""
			if col < len(dataRow) {
				cell = dataRow[col]
			}
			section.Headers = append(section.Headers, station)
			section.Cells = append(section.Cells, strings.Split(cell, "\n"))
			if station == "" {
				continue
			}

			sv := StationView{Station: station}
			for _, block := range viewBlockRE.Split(cell, -1) {
				lines := nonEmptyLines(block)
				if len(lines) == 0 {
					continue
				}
				entry := EntryView{Name: lines[0]}
				if len(lines) > 1 {
					entry.Time = strings.Join(lines[1:], " ")
				}
				sv.Entries = append(sv.Entries, entry)
				view.TotalEntries++
			}
			view.Stations = append(view.Stations, sv)
		}
		view.Sections = append(view.Sections, section)
		rowIdx += 2
	}
	return view
}

func anyNonEmpty(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return true
		}
	}
	return false
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if l := strings.TrimSpace(line); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
