// file: internals/features/finance/feestructures/dto/fee_structure_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "feeportal_backend/internals/features/finance/feestructures/model"
)

/* =======================================================
   REQUEST DTOS
======================================================= */

type FeeStructureCreateDTO struct {
	FeeName       string     `json:"fee_name" validate:"required,min=1,max=120"`
	Amount        float64    `json:"amount" validate:"gte=0"`
	FeeType       string     `json:"fee_type" validate:"omitempty,oneof=Tuition Custom"`
	ClassGroup    *string    `json:"class_group" validate:"omitempty,max=60"`
	StudentTypeID *uuid.UUID `json:"student_type_id"`
}

type FeeStructureUpdateDTO struct {
	FeeName       *string    `json:"fee_name" validate:"omitempty,min=1,max=120"`
	Amount        *float64   `json:"amount" validate:"omitempty,gte=0"`
	FeeType       *string    `json:"fee_type" validate:"omitempty,oneof=Tuition Custom"`
	ClassGroup    *string    `json:"class_group" validate:"omitempty,max=60"`
	StudentTypeID *uuid.UUID `json:"student_type_id"`
}

/* =======================================================
   RESPONSE DTO
======================================================= */

type FeeStructureResponse struct {
	FeeStructureID uuid.UUID  `json:"fee_structure_id"`
	FeeName        string     `json:"fee_name"`
	Amount         float64    `json:"amount"`
	FeeType        string     `json:"fee_type"`
	ClassGroup     *string    `json:"class_group,omitempty"`
	StudentTypeID  *uuid.UUID `json:"student_type_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

/* =======================================================
   MAPPERS
======================================================= */

func (in FeeStructureCreateDTO) ToModel() model.FeeStructureModel {
	feeType := model.FeeStructureTypeCustom
	if in.FeeType != "" {
		feeType = model.FeeStructureType(in.FeeType)
	}
	return model.FeeStructureModel{
		FeeStructureFeeName:       in.FeeName,
		FeeStructureAmount:        in.Amount,
		FeeStructureFeeType:       feeType,
		FeeStructureClassGroup:    in.ClassGroup,
		FeeStructureStudentTypeID: in.StudentTypeID,
	}
}

func ApplyFeeStructureUpdate(m *model.FeeStructureModel, in FeeStructureUpdateDTO) {
	if in.FeeName != nil {
		m.FeeStructureFeeName = *in.FeeName
	}
	if in.Amount != nil {
		m.FeeStructureAmount = *in.Amount
	}
	if in.FeeType != nil {
		m.FeeStructureFeeType = model.FeeStructureType(*in.FeeType)
	}
	if in.ClassGroup != nil {
		m.FeeStructureClassGroup = in.ClassGroup
	}
	if in.StudentTypeID != nil {
		m.FeeStructureStudentTypeID = in.StudentTypeID
	}
}

func ToFeeStructureResponse(m model.FeeStructureModel) FeeStructureResponse {
	return FeeStructureResponse{
		FeeStructureID: m.FeeStructureID,
		FeeName:        m.FeeStructureFeeName,
		Amount:         m.FeeStructureAmount,
		FeeType:        string(m.FeeStructureFeeType),
		ClassGroup:     m.FeeStructureClassGroup,
		StudentTypeID:  m.FeeStructureStudentTypeID,
		CreatedAt:      m.FeeStructureCreatedAt,
		UpdatedAt:      m.FeeStructureUpdatedAt,
	}
}

func ToFeeStructureResponses(ms []model.FeeStructureModel) []FeeStructureResponse {
	out := make([]FeeStructureResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToFeeStructureResponse(m))
	}
	return out
}
