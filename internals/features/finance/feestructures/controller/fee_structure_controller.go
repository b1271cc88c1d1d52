// file: internals/features/finance/feestructures/controller/fee_structure_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "feeportal_backend/internals/features/finance/feestructures/dto"
	model "feeportal_backend/internals/features/finance/feestructures/model"
	helper "feeportal_backend/internals/helpers"
)

type FeeStructureHandler struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewFeeStructureHandler(db *gorm.DB) *FeeStructureHandler {
	return &FeeStructureHandler{DB: db, Validator: validator.New()}
}

// POST /api/a/fee-structures
func (h *FeeStructureHandler) CreateFeeStructure(c *fiber.Ctx) error {
	var in dto.FeeStructureCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var count int64
	if err := h.DB.Model(&model.FeeStructureModel{}).
		Where("fee_structure_fee_name = ? AND fee_structure_deleted_at IS NULL", in.FeeName).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "fee name already exists")
	}

	m := in.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "fee structure created", dto.ToFeeStructureResponse(m))
}

// GET /api/a/fee-structures
func (h *FeeStructureHandler) ListFeeStructures(c *fiber.Ctx) error {
	q := h.DB.Model(&model.FeeStructureModel{}).Where("fee_structure_deleted_at IS NULL")
	if name := strings.TrimSpace(c.Query("fee_name")); name != "" {
		q = q.Where("fee_structure_fee_name ILIKE ?", "%"+name+"%")
	}
	if feeType := strings.TrimSpace(c.Query("fee_type")); feeType != "" {
		q = q.Where("fee_structure_fee_type = ?", feeType)
	}

	paging := helper.ResolvePaging(c, 25, 100)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	var rows []model.FeeStructureModel
	if err := q.Order("fee_structure_fee_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "fee structures",
		dto.ToFeeStructureResponses(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/fee-structures/:id
func (h *FeeStructureHandler) GetFeeStructure(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.FeeStructureModel
	if err := h.DB.First(&m,
		"fee_structure_id = ? AND fee_structure_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee structure not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "fee structure", dto.ToFeeStructureResponse(m))
}

// PUT /api/a/fee-structures/:id
//
// Editing the template is safe for history: invoices copy the amount at
// generation time and are never re-priced.
func (h *FeeStructureHandler) UpdateFeeStructure(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.FeeStructureUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var m model.FeeStructureModel
	if err := h.DB.First(&m,
		"fee_structure_id = ? AND fee_structure_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee structure not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if in.FeeName != nil && *in.FeeName != m.FeeStructureFeeName {
		var count int64
		if err := h.DB.Model(&model.FeeStructureModel{}).
			Where("fee_structure_fee_name = ? AND fee_structure_id <> ? AND fee_structure_deleted_at IS NULL",
				*in.FeeName, id).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "fee name already exists")
		}
	}

	dto.ApplyFeeStructureUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "fee structure updated", dto.ToFeeStructureResponse(m))
}

// DELETE /api/a/fee-structures/:id (soft)
func (h *FeeStructureHandler) DeleteFeeStructure(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	res := h.DB.Where("fee_structure_id = ?", id).Delete(&model.FeeStructureModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "fee structure not found")
	}
	return helper.JsonDeleted(c, "fee structure deleted", fiber.Map{"fee_structure_id": id})
}
