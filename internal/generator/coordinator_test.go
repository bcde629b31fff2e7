package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/bbsatvik01/manning-sheets-ikes/internal/store"
)

// writeScheduleFixture builds an uploaded-schedule workbook on disk.
func writeScheduleFixture(t *testing.T, dir string, rows [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, cell := range row {
			axis, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("CoordinatesToCellName: %v", err)
			}
			if err := f.SetCellStr(sheet, axis, cell); err != nil {
				t.Fatalf("SetCellStr: %v", err)
			}
		}
	}

	path := filepath.Join(dir, "schedule.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	return path
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	src := writeScheduleFixture(t, dir, [][]string{
		{"IKES Dining Schedule 2025"},
		{"Role", "Fri 07/04", "Sat 07/05"},
		{"Cashier", "Jane Doe\n\n6:00 AM - 2:00 PM", "John Roe\n\n2:00 PM - 10:00 PM"},
		{"Mystery Role", "Ghost Worker\n\n6:00 AM - 2:00 PM", ""},
		{"Open Shifts", "Somebody\n\n6:00 AM - 2:00 PM", ""},
	})
	outDir := filepath.Join(dir, "out")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	st, err := store.New(filepath.Join(dir, "manning.db"))
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	defer st.Close()

	report, err := NewCoordinator(st).Generate(Options{
		FilePath:  src,
		Location:  "ikes",
		OutputDir: outDir,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if report.DatesFound != 2 || report.ChartsWritten != 2 {
		t.Errorf("report = %+v, want 2 dates and 2 charts", report)
	}
	files := report.Filenames()
	if len(files) != 2 {
		t.Fatalf("Filenames() = %v, want 2 entries", files)
	}
	for _, name := range files {
		path := filepath.Join(outDir, name)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing output workbook %s: %v", name, err)
			continue
		}
		wb, err := excelize.OpenFile(path)
		if err != nil {
			t.Errorf("OpenFile(%s): %v", name, err)
			continue
		}
		title, _ := wb.GetCellValue("6am-2pm", "A1")
		wb.Close()
		if title != "MANNING CHART" {
			t.Errorf("%s A1 = %q", name, title)
		}
	}

	// 07/04 carries the cashier plus the unmapped mystery role; the
	// ignored row counts nowhere.
	first := report.Outputs[0]
	if first.Total != 2 || first.Mapped != 1 {
		t.Errorf("first output counters = %+v", first)
	}
	if len(first.Unmapped) != 1 || first.Unmapped[0] != "Mystery Role" {
		t.Errorf("first output unmapped = %v", first.Unmapped)
	}

	// run history recorded
	runs, err := st.RecentRuns(5)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	if runs[0].Status != store.RunStatusDone || runs[0].ChartsGenerated != 2 {
		t.Errorf("run = %+v", runs[0])
	}
	outputs, err := st.ListOutputs(5)
	if err != nil {
		t.Fatalf("ListOutputs: %v", err)
	}
	if len(outputs) != 2 {
		t.Errorf("got %d recorded outputs, want 2", len(outputs))
	}
}

func TestGenerateUnknownLocation(t *testing.T) {
	if _, err := NewCoordinator(nil).Generate(Options{Location: "nowhere"}); err == nil {
		t.Error("expected error for unknown location")
	}
}

func TestGenerateUnreadableFile(t *testing.T) {
	if _, err := NewCoordinator(nil).Generate(Options{
		FilePath: filepath.Join(t.TempDir(), "missing.xlsx"),
		Location: "ikes",
	}); err == nil {
		t.Error("expected error for unreadable schedule")
	}
}

func TestGenerateNoDateColumns(t *testing.T) {
	dir := t.TempDir()
	src := writeScheduleFixture(t, dir, [][]string{
		{"IKES Dining Schedule"},
		{"Role", "Notes"},
		{"Cashier", "not a schedule cell"},
	})

	report, err := NewCoordinator(nil).Generate(Options{
		FilePath:  src,
		Location:  "ikes",
		OutputDir: dir,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if report.DatesFound != 0 || report.ChartsWritten != 0 || len(report.Filenames()) != 0 {
		t.Errorf("report = %+v, want empty outcome", report)
	}
}
