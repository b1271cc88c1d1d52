// file: internals/features/finance/invoices/controller/invoice_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	feeModel "feeportal_backend/internals/features/finance/feestructures/model"
	dto "feeportal_backend/internals/features/finance/invoices/dto"
	model "feeportal_backend/internals/features/finance/invoices/model"
	service "feeportal_backend/internals/features/finance/invoices/service"
	studentModel "feeportal_backend/internals/features/students/model"
	helper "feeportal_backend/internals/helpers"
)

/* =======================================================
   BOOTSTRAP
======================================================= */

type InvoiceHandler struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewInvoiceHandler(db *gorm.DB) *InvoiceHandler {
	return &InvoiceHandler{DB: db, Validator: validator.New()}
}

/* =======================================================
   GENERATE (single form submission → one batch)
   POST /api/a/invoices/generate
======================================================= */

func (h *InvoiceHandler) GenerateInvoices(c *fiber.Ctx) error {
	var in dto.GenerateInvoicesRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonValidatorError(c, err)
	}
	dueDate, err := time.Parse("2006-01-02", in.DueDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "due_date must be YYYY-MM-DD")
	}

	// 1) Resolve the fee structure template
	var fee feeModel.FeeStructureModel
	if err := h.DB.First(&fee,
		"fee_structure_id = ? AND fee_structure_deleted_at IS NULL", in.FeeStructureID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee structure not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// 2) Resolve the target students (class, section, student-type-or-any)
	q := h.DB.Where("student_class = ? AND student_section = ? AND student_deleted_at IS NULL",
		in.Class, in.Section)
	if in.StudentTypeID != nil {
		q = q.Where("student_type_id = ?", *in.StudentTypeID)
	}
	if in.AcademicYearID != nil {
		q = q.Where("student_academic_year_id = ?", *in.AcademicYearID)
	}
	var students []studentModel.StudentModel
	if err := q.Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// 3) Resolve the student-type label for the batch description
	typeLabel := ""
	if in.StudentTypeID != nil {
		var st studentModel.StudentTypeModel
		if err := h.DB.First(&st, "student_type_id = ?", *in.StudentTypeID).Error; err == nil {
			typeLabel = st.StudentTypeName
		}
	}

	// 4) Fan out under one batch id
	studentIDs := make([]uuid.UUID, 0, len(students))
	for _, s := range students {
		studentIDs = append(studentIDs, s.StudentID)
	}
	desc := service.BuildBatchDescription(fee.FeeStructureFeeName, in.Class, in.Section, typeLabel)
	batchID, invoices, items, err := service.BuildBatch(studentIDs, desc, fee, dueDate, in.PenaltyPerDay)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		for i := range invoices {
			if err := tx.Create(&invoices[i]).Error; err != nil {
				return err
			}
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "invoices generated", dto.GenerateInvoicesResponse{
		BatchID: batchID,
		Count:   len(invoices),
	})
}

/* =======================================================
   GENERATE FROM CSV (row-scoped; partial success expected)
   POST /api/a/invoices/generate-csv  (multipart "file")
======================================================= */

func (h *InvoiceHandler) GenerateInvoicesFromCSV(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, `multipart field "file" is required`)
	}
	f, err := fileHeader.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "cannot open uploaded file")
	}
	defer f.Close()

	rows, issues, err := service.ParseGenerateCSV(f)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Rows are processed sequentially; a failure on row N leaves rows
	// 1..N-1 committed and N..M reported, never rolled back.
	created := 0
	for _, row := range rows {
		if reason := h.generateForCSVRow(row); reason != "" {
			issues = append(issues, service.RowIssue{Row: row.Line, Reason: reason})
			continue
		}
		created++
	}

	if issues == nil {
		issues = []service.RowIssue{}
	}
	return helper.JsonOK(c, "bulk generation finished", dto.GenerateCSVResponse{
		Created: created,
		Skipped: len(issues),
		Reasons: issues,
	})
}

// generateForCSVRow runs the single-row variant: resolve the latest
// enrollment for the roll number and the fee structure by name, then let
// the service build one invoice + line item under a fresh batch id.
// Returns a skip reason, or "" on success.
func (h *InvoiceHandler) generateForCSVRow(row service.CSVRow) string {
	var student *studentModel.StudentModel
	var s studentModel.StudentModel
	if err := h.DB.
		Where("student_roll_number = ? AND student_deleted_at IS NULL", row.RollNumber).
		Order("student_created_at DESC").
		First(&s).Error; err == nil {
		student = &s
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err.Error()
	}

	var fee *feeModel.FeeStructureModel
	var f feeModel.FeeStructureModel
	if err := h.DB.First(&f,
		"fee_structure_fee_name = ? AND fee_structure_deleted_at IS NULL", row.FeeName).Error; err == nil {
		fee = &f
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err.Error()
	}

	inv, item, reason := service.GenerateForRow(row, student, fee)
	if reason != "" {
		return reason
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&inv).Error; err != nil {
			return err
		}
		return tx.Create(&item).Error
	})
	if err != nil {
		return err.Error()
	}
	return ""
}

/* =======================================================
   BATCH VIEWS
======================================================= */

// GET /api/a/invoices/batches
func (h *InvoiceHandler) ListBatches(c *fiber.Ctx) error {
	var rows []dto.BatchSummaryResponse
	err := h.DB.Model(&model.InvoiceModel{}).
		Select(`invoice_batch_id AS batch_id,
			MIN(invoice_batch_description) AS batch_description,
			COUNT(*) AS invoice_count,
			SUM(invoice_total_amount) AS total_amount,
			SUM(invoice_paid_amount) AS paid_amount,
			MIN(invoice_created_at) AS created_at`).
		Where("invoice_deleted_at IS NULL").
		Group("invoice_batch_id").
		Order("created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "invoice batches", rows)
}

// GET /api/a/invoices/batches/:batch_id
func (h *InvoiceHandler) GetBatchDetail(c *fiber.Ctx) error {
	batchID, err := uuid.Parse(c.Params("batch_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid batch_id")
	}

	var invoices []model.InvoiceModel
	if err := h.DB.
		Where("invoice_batch_id = ? AND invoice_deleted_at IS NULL", batchID).
		Order("invoice_created_at ASC").
		Find(&invoices).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if len(invoices) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "batch not found")
	}

	ids := make([]uuid.UUID, 0, len(invoices))
	for _, inv := range invoices {
		ids = append(ids, inv.InvoiceID)
	}
	var items []model.InvoiceItemModel
	if err := h.DB.Where("invoice_item_invoice_id IN ?", ids).Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	itemsByInvoice := make(map[uuid.UUID][]model.InvoiceItemModel, len(invoices))
	for _, it := range items {
		itemsByInvoice[it.InvoiceItemInvoiceID] = append(itemsByInvoice[it.InvoiceItemInvoiceID], it)
	}

	out := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, dto.ToInvoiceResponse(inv, itemsByInvoice[inv.InvoiceID]))
	}
	return helper.JsonOK(c, "batch detail", out)
}

// GET /api/u/invoices/students/:student_id (unpaid invoices for settlement)
func (h *InvoiceHandler) ListStudentUnpaidInvoices(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student_id")
	}
	var invoices []model.InvoiceModel
	if err := h.DB.
		Where("invoice_student_id = ? AND invoice_status = ? AND invoice_deleted_at IS NULL",
			studentID, model.InvoiceStatusUnpaid).
		Order("invoice_due_date ASC").
		Find(&invoices).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	out := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, dto.ToInvoiceResponse(inv, nil))
	}
	return helper.JsonOK(c, "unpaid invoices", out)
}
