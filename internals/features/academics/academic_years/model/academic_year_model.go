// file: internals/features/academics/academic_years/model/academic_year_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AcademicYearModel represents the academic_years table. is_active is
// advisory: the storage layer does not enforce a single active row, so
// readers must cope with zero or multiple active years.
type AcademicYearModel struct {
	AcademicYearID uuid.UUID `gorm:"column:academic_year_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"academic_year_id"`

	// Format "YYYY-YYYY", e.g. "2024-2025".
	AcademicYearName     string `gorm:"column:academic_year_name;type:varchar(9);not null;uniqueIndex" json:"academic_year_name"`
	AcademicYearIsActive bool   `gorm:"column:academic_year_is_active;not null;default:false;index" json:"academic_year_is_active"`

	AcademicYearCreatedAt time.Time      `gorm:"column:academic_year_created_at;not null;default:now()" json:"academic_year_created_at"`
	AcademicYearUpdatedAt time.Time      `gorm:"column:academic_year_updated_at;not null;default:now()" json:"academic_year_updated_at"`
	AcademicYearDeletedAt gorm.DeletedAt `gorm:"column:academic_year_deleted_at;index" json:"-"`
}

func (AcademicYearModel) TableName() string { return "academic_years" }

func (m *AcademicYearModel) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.AcademicYearCreatedAt.IsZero() {
		m.AcademicYearCreatedAt = now
	}
	m.AcademicYearUpdatedAt = now
	return nil
}

func (m *AcademicYearModel) BeforeUpdate(tx *gorm.DB) (err error) {
	m.AcademicYearUpdatedAt = time.Now()
	return nil
}
