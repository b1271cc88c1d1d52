// file: internals/features/academics/academic_years/controller/academic_year_controller.go
package controller

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "feeportal_backend/internals/features/academics/academic_years/dto"
	model "feeportal_backend/internals/features/academics/academic_years/model"
	helper "feeportal_backend/internals/helpers"
)

type AcademicYearHandler struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAcademicYearHandler(db *gorm.DB) *AcademicYearHandler {
	return &AcademicYearHandler{DB: db, Validator: validator.New()}
}

var yearNameRe = regexp.MustCompile(`^\d{4}-\d{4}$`)

func validYearName(name string) bool {
	if !yearNameRe.MatchString(name) {
		return false
	}
	start, _ := strconv.Atoi(name[:4])
	end, _ := strconv.Atoi(name[5:])
	return end == start+1
}

// POST /api/a/academic-years
func (h *AcademicYearHandler) CreateAcademicYear(c *fiber.Ctx) error {
	var in dto.AcademicYearCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonValidatorError(c, err)
	}
	in.AcademicYearName = strings.TrimSpace(in.AcademicYearName)
	if !validYearName(in.AcademicYearName) {
		return helper.JsonError(c, fiber.StatusBadRequest, `academic_year_name must be "YYYY-YYYY" with consecutive years`)
	}

	m := dto.AcademicYearCreateDTOToModel(in)
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "academic year created", dto.ToAcademicYearResponse(m))
}

// GET /api/a/academic-years
// ?active=true returns only active rows; zero or many are both normal.
func (h *AcademicYearHandler) ListAcademicYears(c *fiber.Ctx) error {
	q := h.DB.Model(&model.AcademicYearModel{}).Where("academic_year_deleted_at IS NULL")
	if c.Query("active") == "true" {
		q = q.Where("academic_year_is_active = true")
	}
	var rows []model.AcademicYearModel
	if err := q.Order("academic_year_name DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "academic years", dto.ToAcademicYearResponses(rows))
}

// PATCH /api/a/academic-years/:id
func (h *AcademicYearHandler) UpdateAcademicYear(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.AcademicYearUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonValidatorError(c, err)
	}
	if in.AcademicYearName != nil && !validYearName(strings.TrimSpace(*in.AcademicYearName)) {
		return helper.JsonError(c, fiber.StatusBadRequest, `academic_year_name must be "YYYY-YYYY" with consecutive years`)
	}

	var m model.AcademicYearModel
	if err := h.DB.First(&m, "academic_year_id = ? AND academic_year_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "academic year not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyAcademicYearUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "academic year updated", dto.ToAcademicYearResponse(m))
}

// DELETE /api/a/academic-years/:id — blocked while the year is active.
func (h *AcademicYearHandler) DeleteAcademicYear(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.AcademicYearModel
	if err := h.DB.First(&m, "academic_year_id = ? AND academic_year_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "academic year not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.AcademicYearIsActive {
		return helper.JsonError(c, fiber.StatusConflict, "cannot delete an active academic year")
	}

	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "academic year deleted", fiber.Map{"academic_year_id": id})
}
