// file: internals/features/finance/concessions/service/concession_service.go
package service

import (
	"fmt"

	studentModel "feeportal_backend/internals/features/students/model"
	helper "feeportal_backend/internals/helpers"
)

// ApplyConcession returns a copy of the fee snapshot with exactly one
// item's concession replaced. Siblings are untouched and the input
// document is never mutated. The (year, feeItemID) pair must already
// exist in the snapshot.
func ApplyConcession(fd studentModel.FeeDetails, yearLabel, feeItemID string, concession float64) (studentModel.FeeDetails, error) {
	if concession < 0 {
		return nil, helper.NewValidation("concession must not be negative")
	}

	if _, ok := fd[yearLabel]; !ok {
		return nil, helper.NewNotFound(fmt.Sprintf("year %q not present in fee details", yearLabel))
	}

	out := fd.Clone()
	for i, item := range out[yearLabel] {
		if item.ID == feeItemID {
			out[yearLabel][i].Concession = concession
			return out, nil
		}
	}
	return nil, helper.NewNotFound(fmt.Sprintf("fee item %q not present in year %q", feeItemID, yearLabel))
}
