// file: internals/features/finance/concessions/controller/concession_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	service "feeportal_backend/internals/features/finance/concessions/service"
	paymentModel "feeportal_backend/internals/features/finance/payments/model"
	studentModel "feeportal_backend/internals/features/students/model"
	helper "feeportal_backend/internals/helpers"
)

type ConcessionHandler struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewConcessionHandler(db *gorm.DB) *ConcessionHandler {
	return &ConcessionHandler{DB: db, Validator: validator.New()}
}

type ConcessionUpdateDTO struct {
	StudentID  uuid.UUID `json:"student_id" validate:"required"`
	Year       string    `json:"year" validate:"required"`
	FeeItemID  string    `json:"fee_item_id" validate:"required"`
	Concession float64   `json:"concession" validate:"gte=0"`
}

// PUT /api/u/concessions
//
// Read-modify-write of the whole fee_details document on one enrollment
// row. The version counter rejects a write racing another cashier's edit;
// permission is enforced by the route guard, not here.
func (h *ConcessionHandler) UpdateConcession(c *fiber.Ctx) error {
	var in ConcessionUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var student studentModel.StudentModel
	if err := h.DB.First(&student, "student_id = ? AND student_deleted_at IS NULL", in.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	updated, err := service.ApplyConcession(student.StudentFeeDetails.Data(), in.Year, in.FeeItemID, in.Concession)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	res := h.DB.Model(&studentModel.StudentModel{}).
		Where("student_id = ? AND student_fee_details_version = ?",
			student.StudentID, student.StudentFeeDetailsVersion).
		Updates(map[string]any{
			"student_fee_details":         datatypes.NewJSONType(updated),
			"student_fee_details_version": student.StudentFeeDetailsVersion + 1,
		})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonAppError(c, helper.NewConflict("fee details changed underneath this edit, reload and retry"))
	}

	logRow := paymentModel.ActivityLogModel{
		ActivityLogCashierID: helper.GetCashierIDFromContext(c),
		ActivityLogStudentID: &in.StudentID,
		ActivityLogAction:    "set_concession",
		ActivityLogDetails:   fmt.Sprintf("item %s in %s set to %.2f", in.FeeItemID, in.Year, in.Concession),
	}
	if err := h.DB.Create(&logRow).Error; err != nil {
		log.Printf("[WARN] activity log append failed: %v", err)
	}

	return helper.JsonUpdated(c, "concession updated", fiber.Map{
		"student_id":                  in.StudentID,
		"year":                        in.Year,
		"fee_item_id":                 in.FeeItemID,
		"concession":                  in.Concession,
		"student_fee_details_version": student.StudentFeeDetailsVersion + 1,
	})
}
