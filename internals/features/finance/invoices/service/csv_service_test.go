// file: internals/features/finance/invoices/service/csv_service_test.go
package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGenerateCSV(t *testing.T) {
	input := strings.Join([]string{
		"roll_number,fee_name,due_date,penalty_per_day",
		"R-001,Tuition Fee,2025-04-15,10",
		"R-002,Tuition Fee,2025-04-15,",
		"R-003,Bus Fee,2025-05-01,5.5",
	}, "\n")

	rows, issues, err := ParseGenerateCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, issues)
	require.Len(t, rows, 3)

	assert.Equal(t, 1, rows[0].Line)
	assert.Equal(t, "R-001", rows[0].RollNumber)
	assert.Equal(t, "Tuition Fee", rows[0].FeeName)
	assert.Equal(t, time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), rows[0].DueDate)
	assert.Equal(t, 10.0, rows[0].PenaltyPerDay)

	// blank penalty defaults to zero
	assert.Equal(t, 0.0, rows[1].PenaltyPerDay)
	assert.Equal(t, 5.5, rows[2].PenaltyPerDay)
}

func TestParseGenerateCSVCollectsBadRows(t *testing.T) {
	lines := []string{"roll_number,fee_name,due_date,penalty_per_day"}
	for i := 1; i <= 7; i++ {
		lines = append(lines, "R-00"+string(rune('0'+i))+",Tuition Fee,2025-04-15,0")
	}
	lines = append(lines,
		",Tuition Fee,2025-04-15,0",    // empty roll number
		"R-008,,2025-04-15,0",          // empty fee name
		"R-009,Tuition Fee,15-04-25,0", // bad date
	)

	rows, issues, err := ParseGenerateCSV(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)
	assert.Len(t, rows, 7)
	require.Len(t, issues, 3)
	assert.Equal(t, 8, issues[0].Row)
	assert.Equal(t, 9, issues[1].Row)
	assert.Equal(t, 10, issues[2].Row)
}

func TestParseGenerateCSVWrongHeader(t *testing.T) {
	input := "roll,fee,due,penalty\nR-001,Tuition Fee,2025-04-15,0"
	_, _, err := ParseGenerateCSV(strings.NewReader(input))
	assert.Error(t, err)
}

func TestParseGenerateCSVHeaderIsCaseInsensitive(t *testing.T) {
	input := "Roll_Number, Fee_Name, Due_Date, Penalty_Per_Day\nR-001,Tuition Fee,2025-04-15,0"
	rows, issues, err := ParseGenerateCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.Len(t, rows, 1)
}

func TestParseGenerateCSVNegativePenaltyRejected(t *testing.T) {
	input := "roll_number,fee_name,due_date,penalty_per_day\nR-001,Tuition Fee,2025-04-15,-3"
	rows, issues, err := ParseGenerateCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, rows)
	require.Len(t, issues, 1)
	assert.Equal(t, 1, issues[0].Row)
}
