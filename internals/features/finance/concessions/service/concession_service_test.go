// file: internals/features/finance/concessions/service/concession_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	studentModel "feeportal_backend/internals/features/students/model"
	helper "feeportal_backend/internals/helpers"
)

func snapshot() studentModel.FeeDetails {
	return studentModel.FeeDetails{
		"2024-2025": {
			{ID: "tuition", Name: "Tuition Fee", Amount: 2000, Concession: 0},
			{ID: "bus", Name: "Bus Fee", Amount: 500, Concession: 50},
		},
	}
}

func TestApplyConcession(t *testing.T) {
	fd := snapshot()

	out, err := ApplyConcession(fd, "2024-2025", "tuition", 300)
	require.NoError(t, err)

	assert.Equal(t, 300.0, out["2024-2025"][0].Concession)
	// sibling untouched
	assert.Equal(t, 50.0, out["2024-2025"][1].Concession)
	// input document not mutated
	assert.Equal(t, 0.0, fd["2024-2025"][0].Concession)
}

func TestApplyConcessionZeroClearsIt(t *testing.T) {
	out, err := ApplyConcession(snapshot(), "2024-2025", "bus", 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, out["2024-2025"][1].Concession)
}

func TestApplyConcessionNegativeRejected(t *testing.T) {
	_, err := ApplyConcession(snapshot(), "2024-2025", "tuition", -1)
	require.Error(t, err)
	assert.True(t, helper.IsKind(err, helper.ErrKindValidation))
}

func TestApplyConcessionUnknownYear(t *testing.T) {
	_, err := ApplyConcession(snapshot(), "2019-2020", "tuition", 100)
	require.Error(t, err)
	assert.True(t, helper.IsKind(err, helper.ErrKindNotFound))
}

func TestApplyConcessionUnknownItem(t *testing.T) {
	_, err := ApplyConcession(snapshot(), "2024-2025", "hostel", 100)
	require.Error(t, err)
	assert.True(t, helper.IsKind(err, helper.ErrKindNotFound))
}
