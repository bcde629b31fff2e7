package model

// DateColumn is one schedule column that carries a calendar date.
type DateColumn struct {
	Index int    `json:"index"` // zero-based column index in the source row
	Label string `json:"label"` // normalized "MM/DD" or "MM/DD/YYYY"
}

// ScheduleRow is one job-role row of the source schedule. Cells holds the
// full raw row so date columns can be addressed by index.
type ScheduleRow struct {
	Role  string   `json:"role"`
	Cells []string `json:"cells"`
}

// ScheduleTable is the parsed source spreadsheet: the A1 header (used for
// the year and location sanity check), the discovered date columns, and
// every data row in source order. Read-only once loaded.
type ScheduleTable struct {
	Header      string        `json:"header"`
	DateColumns []DateColumn  `json:"dateColumns"`
	Rows        []ScheduleRow `json:"rows"`
}

// Cell returns the raw cell text for a row at the given column index, or
// "" when the row is shorter than the index.
func (r ScheduleRow) Cell(col int) string {
	if col < 0 || col >= len(r.Cells) {
		return ""
	}
	return r.Cells[col]
}
