// file: internals/features/students/model/student_model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeeItemPayable(t *testing.T) {
	assert.Equal(t, 1700.0, FeeItem{Amount: 2000, Concession: 300}.Payable())
	assert.Equal(t, 2000.0, FeeItem{Amount: 2000}.Payable())
}

func TestFeeDetailsCloneIsDeep(t *testing.T) {
	fd := FeeDetails{
		"2024-2025": {{ID: "tuition", Name: "Tuition Fee", Amount: 2000}},
	}
	cp := fd.Clone()
	cp["2024-2025"][0].Concession = 500
	cp["2025-2026"] = []FeeItem{{ID: "bus", Name: "Bus Fee", Amount: 400}}

	assert.Equal(t, 0.0, fd["2024-2025"][0].Concession)
	assert.NotContains(t, fd, "2025-2026")
}
