// file: internals/features/academics/academic_years/controller/academic_year_controller_test.go
package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidYearName(t *testing.T) {
	assert.True(t, validYearName("2024-2025"))
	assert.True(t, validYearName("1999-2000"))

	assert.False(t, validYearName("2024-2026"), "years must be consecutive")
	assert.False(t, validYearName("2025-2024"))
	assert.False(t, validYearName("24-25"))
	assert.False(t, validYearName("2024/2025"))
	assert.False(t, validYearName("2024-2025 "))
	assert.False(t, validYearName(""))
}
