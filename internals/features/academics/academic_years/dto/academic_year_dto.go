// file: internals/features/academics/academic_years/dto/academic_year_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "feeportal_backend/internals/features/academics/academic_years/model"
)

type AcademicYearCreateDTO struct {
	// "YYYY-YYYY"
	AcademicYearName     string `json:"academic_year_name" validate:"required,len=9"`
	AcademicYearIsActive bool   `json:"academic_year_is_active"`
}

type AcademicYearUpdateDTO struct {
	AcademicYearName     *string `json:"academic_year_name,omitempty" validate:"omitempty,len=9"`
	AcademicYearIsActive *bool   `json:"academic_year_is_active,omitempty"`
}

type AcademicYearResponse struct {
	AcademicYearID        uuid.UUID `json:"academic_year_id"`
	AcademicYearName      string    `json:"academic_year_name"`
	AcademicYearIsActive  bool      `json:"academic_year_is_active"`
	AcademicYearCreatedAt time.Time `json:"academic_year_created_at"`
	AcademicYearUpdatedAt time.Time `json:"academic_year_updated_at"`
}

func ToAcademicYearResponse(m model.AcademicYearModel) AcademicYearResponse {
	return AcademicYearResponse{
		AcademicYearID:        m.AcademicYearID,
		AcademicYearName:      m.AcademicYearName,
		AcademicYearIsActive:  m.AcademicYearIsActive,
		AcademicYearCreatedAt: m.AcademicYearCreatedAt,
		AcademicYearUpdatedAt: m.AcademicYearUpdatedAt,
	}
}

func ToAcademicYearResponses(list []model.AcademicYearModel) []AcademicYearResponse {
	out := make([]AcademicYearResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToAcademicYearResponse(v))
	}
	return out
}

func AcademicYearCreateDTOToModel(d AcademicYearCreateDTO) model.AcademicYearModel {
	return model.AcademicYearModel{
		AcademicYearName:     d.AcademicYearName,
		AcademicYearIsActive: d.AcademicYearIsActive,
	}
}

func ApplyAcademicYearUpdate(m *model.AcademicYearModel, d AcademicYearUpdateDTO) {
	if d.AcademicYearName != nil {
		m.AcademicYearName = *d.AcademicYearName
	}
	if d.AcademicYearIsActive != nil {
		m.AcademicYearIsActive = *d.AcademicYearIsActive
	}
}
