// file: internals/features/finance/invoices/service/csv_service.go
package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// CSVRow is one parsed line of a bulk-generate upload. Each row drives the
// same algorithm as one form submission, scoped to a single roll number.
type CSVRow struct {
	Line          int
	RollNumber    string
	FeeName       string
	DueDate       time.Time
	PenaltyPerDay float64
}

// RowIssue reports one skipped row; partial success is the expected
// outcome of a bulk upload, not an error.
type RowIssue struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

const csvDateLayout = "2006-01-02"

var csvHeader = []string{"roll_number", "fee_name", "due_date", "penalty_per_day"}

// ParseGenerateCSV reads the upload and splits it into usable rows and
// per-row issues. Only an unreadable file or a wrong header is a hard
// error; any malformed row is collected and skipped. Row numbers count
// data rows starting at 1 (the header is row 0).
func ParseGenerateCSV(r io.Reader) ([]CSVRow, []RowIssue, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv header: %w", err)
	}
	if !headerMatches(header) {
		return nil, nil, fmt.Errorf("csv header must be %q", strings.Join(csvHeader, ","))
	}

	var (
		rows   []CSVRow
		issues []RowIssue
		line   int
	)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			issues = append(issues, RowIssue{Row: line, Reason: "malformed csv row"})
			continue
		}

		row, reason := parseRow(line, record)
		if reason != "" {
			issues = append(issues, RowIssue{Row: line, Reason: reason})
			continue
		}
		rows = append(rows, row)
	}
	return rows, issues, nil
}

func headerMatches(header []string) bool {
	if len(header) != len(csvHeader) {
		return false
	}
	for i, want := range csvHeader {
		if strings.ToLower(strings.TrimSpace(header[i])) != want {
			return false
		}
	}
	return true
}

func parseRow(line int, record []string) (CSVRow, string) {
	if len(record) != len(csvHeader) {
		return CSVRow{}, fmt.Sprintf("expected %d columns, got %d", len(csvHeader), len(record))
	}

	row := CSVRow{
		Line:       line,
		RollNumber: strings.TrimSpace(record[0]),
		FeeName:    strings.TrimSpace(record[1]),
	}
	if row.RollNumber == "" {
		return CSVRow{}, "roll_number is empty"
	}
	if row.FeeName == "" {
		return CSVRow{}, "fee_name is empty"
	}

	due, err := time.Parse(csvDateLayout, strings.TrimSpace(record[2]))
	if err != nil {
		return CSVRow{}, fmt.Sprintf("invalid due_date %q, want YYYY-MM-DD", record[2])
	}
	row.DueDate = due

	if s := strings.TrimSpace(record[3]); s != "" {
		penalty, err := strconv.ParseFloat(s, 64)
		if err != nil || penalty < 0 {
			return CSVRow{}, fmt.Sprintf("invalid penalty_per_day %q", record[3])
		}
		row.PenaltyPerDay = penalty
	}
	return row, ""
}
