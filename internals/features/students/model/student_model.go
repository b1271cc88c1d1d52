// file: internals/features/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// =========================================================
// FEE SNAPSHOT (embedded document)
// =========================================================

// FeeItem is one named charge inside a year's fee snapshot.
type FeeItem struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Concession float64 `json:"concession"`
}

// Payable is the amount still owed before payments: amount - concession.
func (f FeeItem) Payable() float64 { return f.Amount - f.Concession }

// FeeDetails maps a studying-year label ("2024-2025") to its fee items.
// Stored whole as one jsonb column on the enrollment row; edits replace
// the entire document.
type FeeDetails map[string][]FeeItem

// Clone deep-copies the document so pure transforms never alias storage.
func (fd FeeDetails) Clone() FeeDetails {
	out := make(FeeDetails, len(fd))
	for year, items := range fd {
		cp := make([]FeeItem, len(items))
		copy(cp, items)
		out[year] = cp
	}
	return out
}

// =========================================================
// MODEL — one row per student per academic year
// =========================================================

type StudentModel struct {
	// PK
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`

	// Re-enrollment creates a new row for the same roll number.
	StudentRollNumber string `gorm:"column:student_roll_number;type:varchar(30);not null;index:ix_students_roll_number" json:"student_roll_number"`

	StudentName    string `gorm:"column:student_name;type:text;not null" json:"student_name"`
	StudentClass   string `gorm:"column:student_class;type:varchar(30);not null;index:ix_students_class_section" json:"student_class"`
	StudentSection string `gorm:"column:student_section;type:varchar(10);not null;index:ix_students_class_section" json:"student_section"`

	// Label like "1st Year" / "2024-2025" used as the fee snapshot key.
	StudentStudyingYear string `gorm:"column:student_studying_year;type:varchar(20);not null" json:"student_studying_year"`

	// FK → student_types (optional)
	StudentTypeID *uuid.UUID `gorm:"column:student_type_id;type:uuid;index" json:"student_type_id,omitempty"`

	// FK → academic_years
	StudentAcademicYearID uuid.UUID `gorm:"column:student_academic_year_id;type:uuid;not null;index" json:"student_academic_year_id"`

	StudentCaste *string `gorm:"column:student_caste;type:varchar(50)" json:"student_caste,omitempty"`
	StudentEmail *string `gorm:"column:student_email;type:varchar(120)" json:"student_email,omitempty"`
	StudentPhone *string `gorm:"column:student_phone;type:varchar(20)" json:"student_phone,omitempty"`

	// Fee snapshot document + optimistic version for concession edits.
	StudentFeeDetails        datatypes.JSONType[FeeDetails] `gorm:"column:student_fee_details;type:jsonb;not null" json:"student_fee_details"`
	StudentFeeDetailsVersion int                            `gorm:"column:student_fee_details_version;not null;default:0" json:"student_fee_details_version"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;not null;default:now();index:ix_students_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;not null;default:now()" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.StudentCreatedAt.IsZero() {
		m.StudentCreatedAt = now
	}
	m.StudentUpdatedAt = now
	return nil
}

func (m *StudentModel) BeforeUpdate(tx *gorm.DB) (err error) {
	m.StudentUpdatedAt = time.Now()
	return nil
}
