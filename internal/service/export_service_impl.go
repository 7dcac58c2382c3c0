package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/alexanderramin/liftlog/internal/domain"
)

// ReportRow is one logged set flattened for export.
type ReportRow struct {
	Date     string
	Program  string
	Exercise string
	SetKind  domain.SetKind
	Weight   float64
	Reps     int
	Effort   *int
}

var csvHeader = []string{"Date", "Program", "Exercise", "SetType", "Weight", "Reps", "RIR"}

type exportService struct {
	sessions SessionStore
}

func NewExportService(sessions SessionStore) ExportService {
	return &exportService{sessions: sessions}
}

// Rows flattens every logged set in history, most recent session first.
func (s *exportService) Rows() []ReportRow {
	var rows []ReportRow
	for _, sess := range s.sessions.History() {
		date := sess.Date().Format(domain.DateLayout)
		for i := range sess.Exercises {
			ex := &sess.Exercises[i]
			for _, set := range ex.LoggedSets() {
				rows = append(rows, newReportRow(date, sess.TemplateName, ex.Name, set))
			}
		}
	}
	return rows
}

// TopSetReport keeps one row per exercise per session: its logged top set.
func (s *exportService) TopSetReport() []ReportRow {
	var rows []ReportRow
	for _, sess := range s.sessions.History() {
		date := sess.Date().Format(domain.DateLayout)
		for i := range sess.Exercises {
			ex := &sess.Exercises[i]
			for _, set := range ex.LoggedSets() {
				if set.Kind == domain.SetTopSet {
					rows = append(rows, newReportRow(date, sess.TemplateName, ex.Name, set))
					break
				}
			}
		}
	}
	return rows
}

func (s *exportService) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, r := range s.Rows() {
		effort := ""
		if r.Effort != nil {
			effort = strconv.Itoa(*r.Effort)
		}
		record := []string{
			r.Date,
			r.Program,
			r.Exercise,
			r.SetKind.Label(),
			strconv.FormatFloat(r.Weight, 'f', -1, 64),
			strconv.Itoa(r.Reps),
			effort,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func newReportRow(date, program, exercise string, set domain.SetEntry) ReportRow {
	row := ReportRow{
		Date:     date,
		Program:  program,
		Exercise: exercise,
		SetKind:  set.Kind,
		Weight:   set.WeightValue(),
		Reps:     set.RepsValue(),
	}
	if set.EffortReserve != nil {
		effort := *set.EffortReserve
		row.Effort = &effort
	}
	return row
}
