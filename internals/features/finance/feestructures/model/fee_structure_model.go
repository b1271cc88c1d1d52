// file: internals/features/finance/feestructures/model/fee_structure_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeeStructureType string

const (
	FeeStructureTypeTuition FeeStructureType = "Tuition"
	FeeStructureTypeCustom  FeeStructureType = "Custom"
)

// FeeStructureModel is the fee catalog: a template copied by value into
// invoices at generation time, never referenced live afterwards.
type FeeStructureModel struct {
	FeeStructureID uuid.UUID `gorm:"column:fee_structure_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"fee_structure_id"`

	FeeStructureFeeName string           `gorm:"column:fee_structure_fee_name;type:varchar(120);not null;uniqueIndex" json:"fee_structure_fee_name"`
	FeeStructureAmount  float64          `gorm:"column:fee_structure_amount;type:numeric(12,2);not null;check:fee_structure_amount>=0" json:"fee_structure_amount"`
	FeeStructureFeeType FeeStructureType `gorm:"column:fee_structure_fee_type;type:varchar(20);not null;default:'Custom'" json:"fee_structure_fee_type"`

	FeeStructureClassGroup    *string    `gorm:"column:fee_structure_class_group;type:varchar(60)" json:"fee_structure_class_group,omitempty"`
	FeeStructureStudentTypeID *uuid.UUID `gorm:"column:fee_structure_student_type_id;type:uuid;index" json:"fee_structure_student_type_id,omitempty"`

	FeeStructureCreatedAt time.Time      `gorm:"column:fee_structure_created_at;not null;default:now()" json:"fee_structure_created_at"`
	FeeStructureUpdatedAt time.Time      `gorm:"column:fee_structure_updated_at;not null;default:now()" json:"fee_structure_updated_at"`
	FeeStructureDeletedAt gorm.DeletedAt `gorm:"column:fee_structure_deleted_at;index" json:"-"`
}

func (FeeStructureModel) TableName() string { return "fee_structures" }

func (m *FeeStructureModel) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.FeeStructureCreatedAt.IsZero() {
		m.FeeStructureCreatedAt = now
	}
	m.FeeStructureUpdatedAt = now
	return nil
}

func (m *FeeStructureModel) BeforeUpdate(tx *gorm.DB) (err error) {
	m.FeeStructureUpdatedAt = time.Now()
	return nil
}
