// file: internals/features/students/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "feeportal_backend/internals/features/students/dto"
	model "feeportal_backend/internals/features/students/model"
	helper "feeportal_backend/internals/helpers"
)

/* =======================================================
   BOOTSTRAP
======================================================= */

type StudentHandler struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentHandler(db *gorm.DB) *StudentHandler {
	return &StudentHandler{DB: db, Validator: validator.New()}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}

/* =======================================================
   CREATE (one enrollment row per student per year)
   POST /api/a/students
======================================================= */

func (h *StudentHandler) CreateStudent(c *fiber.Ctx) error {
	var in dto.StudentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	// Re-enrollment is a fresh row, but the same roll number must not be
	// enrolled twice into one academic year.
	var count int64
	if err := h.DB.Model(&model.StudentModel{}).
		Where("student_roll_number = ? AND student_academic_year_id = ? AND student_deleted_at IS NULL",
			in.StudentRollNumber, in.StudentAcademicYearID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "student already enrolled in this academic year")
	}

	m := dto.StudentCreateDTOToModel(in)
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "student enrolled", dto.ToStudentResponse(m))
}

/* =======================================================
   LIST (filters: roll_number, class, section, academic_year_id)
   GET /api/a/students
======================================================= */

func (h *StudentHandler) ListStudents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.StudentModel{}).Where("student_deleted_at IS NULL")
	if v := strings.TrimSpace(c.Query("roll_number")); v != "" {
		q = q.Where("student_roll_number = ?", v)
	}
	if v := strings.TrimSpace(c.Query("class")); v != "" {
		q = q.Where("student_class = ?", v)
	}
	if v := strings.TrimSpace(c.Query("section")); v != "" {
		q = q.Where("student_section = ?", v)
	}
	if v := strings.TrimSpace(c.Query("academic_year_id")); v != "" {
		yid, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid academic_year_id")
		}
		q = q.Where("student_academic_year_id = ?", yid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.StudentModel
	if err := q.Order("student_created_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "students", dto.ToStudentResponses(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* =======================================================
   DETAIL
   GET /api/a/students/:id
======================================================= */

func (h *StudentHandler) GetStudent(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.StudentModel
	if err := h.DB.First(&m, "student_id = ? AND student_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "student", dto.ToStudentResponse(m))
}

/* =======================================================
   UPDATE (partial; fee_details untouched here)
   PATCH /api/a/students/:id
======================================================= */

func (h *StudentHandler) UpdateStudent(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.StudentUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var m model.StudentModel
	if err := h.DB.First(&m, "student_id = ? AND student_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyStudentUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "student updated", dto.ToStudentResponse(m))
}

/* =======================================================
   DELETE (soft delete)
   DELETE /api/a/students/:id
======================================================= */

func (h *StudentHandler) DeleteStudent(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	res := h.DB.Where("student_id = ?", id).Delete(&model.StudentModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "student not found")
	}
	return helper.JsonDeleted(c, "student deleted", fiber.Map{"student_id": id})
}

/* =======================================================
   STUDENT TYPES (lookup table)
======================================================= */

func (h *StudentHandler) ListStudentTypes(c *fiber.Ctx) error {
	var rows []model.StudentTypeModel
	if err := h.DB.Order("student_type_name ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "student types", rows)
}

func (h *StudentHandler) CreateStudentType(c *fiber.Ctx) error {
	var in struct {
		StudentTypeName string `json:"student_type_name" validate:"required,max=60"`
	}
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonValidatorError(c, err)
	}
	m := model.StudentTypeModel{StudentTypeName: strings.TrimSpace(in.StudentTypeName)}
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "student type created", m)
}
