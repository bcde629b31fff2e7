package store

import (
	"fmt"
	"strings"
	"time"
)

// Run statuses.
const (
	RunStatusProcessing = "processing"
	RunStatusDone       = "done"
	RunStatusPartial    = "partial" // some dates failed to write
	RunStatusFailed     = "failed"
)

// Run is one processing run of an uploaded schedule.
type Run struct {
	ID                string
	SourceFile        string
	Location          string
	Status            string
	ChartsGenerated   int
	TotalAssignments  int
	MappedAssignments int
	ErrorMessage      string
	CreatedAt         time.Time
}

// Output is one generated workbook within a run.
type Output struct {
	ID                int64
	RunID             string
	DateLabel         string
	Filename          string
	TotalAssignments  int
	MappedAssignments int
	OutOfWindow       int
	UnmappedRoles     []string
	CreatedAt         time.Time
}

// CreateRun records a new processing run in the 'processing' state.
func (s *Store) CreateRun(id, sourceFile, location string) error {
	_, err := s.db.Exec(`
		INSERT INTO process_runs (id, source_file, location, status)
		VALUES (?, ?, ?, ?)
	`, id, sourceFile, location, RunStatusProcessing)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}
	return nil
}

// CompleteRun finalizes a run with its summary counters and status.
func (s *Store) CompleteRun(id, status string, charts, total, mapped int, errorMessage string) error {
	_, err := s.db.Exec(`
		UPDATE process_runs SET
			status = ?,
			charts_generated = ?,
			total_assignments = ?,
			mapped_assignments = ?,
			error_message = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, status, charts, total, mapped, errorMessage, id)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// AddOutput records one generated workbook for a run.
func (s *Store) AddOutput(o Output) error {
	_, err := s.db.Exec(`
		INSERT INTO run_outputs
			(run_id, date_label, filename, total_assignments, mapped_assignments, out_of_window, unmapped_roles)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, o.RunID, o.DateLabel, o.Filename, o.TotalAssignments, o.MappedAssignments, o.OutOfWindow,
		strings.Join(o.UnmappedRoles, ","))
	if err != nil {
		return fmt.Errorf("failed to add output: %w", err)
	}
	return nil
}

// RecentRuns returns the newest runs first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	rows, err := s.db.Query(`
		SELECT id, source_file, location, status, charts_generated,
		       total_assignments, mapped_assignments, error_message, created_at
		FROM process_runs
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.SourceFile, &r.Location, &r.Status, &r.ChartsGenerated,
			&r.TotalAssignments, &r.MappedAssignments, &r.ErrorMessage, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// ListOutputs returns generated workbooks, newest first.
func (s *Store) ListOutputs(limit int) ([]Output, error) {
	rows, err := s.db.Query(`
		SELECT id, run_id, date_label, filename, total_assignments,
		       mapped_assignments, out_of_window, unmapped_roles, created_at
		FROM run_outputs
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query outputs: %w", err)
	}
	defer rows.Close()

	var outputs []Output
	for rows.Next() {
		var o Output
		var unmapped string
		if err := rows.Scan(&o.ID, &o.RunID, &o.DateLabel, &o.Filename, &o.TotalAssignments,
			&o.MappedAssignments, &o.OutOfWindow, &unmapped, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan output: %w", err)
		}
		if unmapped != "" {
			o.UnmappedRoles = strings.Split(unmapped, ",")
		}
		outputs = append(outputs, o)
	}
	return outputs, rows.Err()
}
