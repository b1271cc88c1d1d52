// file: internals/features/students/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "feeportal_backend/internals/features/students/model"
)

////////////////////////////////////////////////////////////////////////////////
// STUDENTS — DTO
////////////////////////////////////////////////////////////////////////////////

// Create (one enrollment row; re-enrollment posts a fresh row)
type StudentCreateDTO struct {
	StudentRollNumber     string           `json:"student_roll_number" validate:"required,max=30"`
	StudentName           string           `json:"student_name" validate:"required"`
	StudentClass          string           `json:"student_class" validate:"required,max=30"`
	StudentSection        string           `json:"student_section" validate:"required,max=10"`
	StudentStudyingYear   string           `json:"student_studying_year" validate:"required,max=20"`
	StudentTypeID         *uuid.UUID       `json:"student_type_id,omitempty"`
	StudentAcademicYearID uuid.UUID        `json:"student_academic_year_id" validate:"required"`
	StudentCaste          *string          `json:"student_caste,omitempty"`
	StudentEmail          *string          `json:"student_email,omitempty" validate:"omitempty,email"`
	StudentPhone          *string          `json:"student_phone,omitempty"`
	StudentFeeDetails     model.FeeDetails `json:"student_fee_details,omitempty"`
}

// Update (partial; fee_details replaced whole when present — concession
// edits go through the concession endpoint instead)
type StudentUpdateDTO struct {
	StudentName         *string    `json:"student_name,omitempty"`
	StudentClass        *string    `json:"student_class,omitempty"`
	StudentSection      *string    `json:"student_section,omitempty"`
	StudentStudyingYear *string    `json:"student_studying_year,omitempty"`
	StudentTypeID       *uuid.UUID `json:"student_type_id,omitempty"`
	StudentCaste        *string    `json:"student_caste,omitempty"`
	StudentEmail        *string    `json:"student_email,omitempty" validate:"omitempty,email"`
	StudentPhone        *string    `json:"student_phone,omitempty"`
}

// Response
type StudentResponse struct {
	StudentID                uuid.UUID        `json:"student_id"`
	StudentRollNumber        string           `json:"student_roll_number"`
	StudentName              string           `json:"student_name"`
	StudentClass             string           `json:"student_class"`
	StudentSection           string           `json:"student_section"`
	StudentStudyingYear      string           `json:"student_studying_year"`
	StudentTypeID            *uuid.UUID       `json:"student_type_id,omitempty"`
	StudentAcademicYearID    uuid.UUID        `json:"student_academic_year_id"`
	StudentCaste             *string          `json:"student_caste,omitempty"`
	StudentEmail             *string          `json:"student_email,omitempty"`
	StudentPhone             *string          `json:"student_phone,omitempty"`
	StudentFeeDetails        model.FeeDetails `json:"student_fee_details"`
	StudentFeeDetailsVersion int              `json:"student_fee_details_version"`
	StudentCreatedAt         time.Time        `json:"student_created_at"`
	StudentUpdatedAt         time.Time        `json:"student_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS — Model <-> DTO
////////////////////////////////////////////////////////////////////////////////

func ToStudentResponse(m model.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:                m.StudentID,
		StudentRollNumber:        m.StudentRollNumber,
		StudentName:              m.StudentName,
		StudentClass:             m.StudentClass,
		StudentSection:           m.StudentSection,
		StudentStudyingYear:      m.StudentStudyingYear,
		StudentTypeID:            m.StudentTypeID,
		StudentAcademicYearID:    m.StudentAcademicYearID,
		StudentCaste:             m.StudentCaste,
		StudentEmail:             m.StudentEmail,
		StudentPhone:             m.StudentPhone,
		StudentFeeDetails:        m.StudentFeeDetails.Data(),
		StudentFeeDetailsVersion: m.StudentFeeDetailsVersion,
		StudentCreatedAt:         m.StudentCreatedAt,
		StudentUpdatedAt:         m.StudentUpdatedAt,
	}
}

func StudentCreateDTOToModel(d StudentCreateDTO) model.StudentModel {
	fd := d.StudentFeeDetails
	if fd == nil {
		fd = model.FeeDetails{}
	}
	return model.StudentModel{
		StudentRollNumber:     d.StudentRollNumber,
		StudentName:           d.StudentName,
		StudentClass:          d.StudentClass,
		StudentSection:        d.StudentSection,
		StudentStudyingYear:   d.StudentStudyingYear,
		StudentTypeID:         d.StudentTypeID,
		StudentAcademicYearID: d.StudentAcademicYearID,
		StudentCaste:          d.StudentCaste,
		StudentEmail:          d.StudentEmail,
		StudentPhone:          d.StudentPhone,
		StudentFeeDetails:     datatypes.NewJSONType(fd),
	}
}

func ApplyStudentUpdate(m *model.StudentModel, d StudentUpdateDTO) {
	if d.StudentName != nil {
		m.StudentName = *d.StudentName
	}
	if d.StudentClass != nil {
		m.StudentClass = *d.StudentClass
	}
	if d.StudentSection != nil {
		m.StudentSection = *d.StudentSection
	}
	if d.StudentStudyingYear != nil {
		m.StudentStudyingYear = *d.StudentStudyingYear
	}
	if d.StudentTypeID != nil {
		m.StudentTypeID = d.StudentTypeID
	}
	if d.StudentCaste != nil {
		m.StudentCaste = d.StudentCaste
	}
	if d.StudentEmail != nil {
		m.StudentEmail = d.StudentEmail
	}
	if d.StudentPhone != nil {
		m.StudentPhone = d.StudentPhone
	}
}

func ToStudentResponses(list []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToStudentResponse(v))
	}
	return out
}
