// file: internals/features/students/model/student_type_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentTypeModel struct {
	StudentTypeID   uuid.UUID `gorm:"column:student_type_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_type_id"`
	StudentTypeName string    `gorm:"column:student_type_name;type:varchar(60);not null;uniqueIndex" json:"student_type_name"`

	StudentTypeCreatedAt time.Time      `gorm:"column:student_type_created_at;not null;default:now()" json:"student_type_created_at"`
	StudentTypeDeletedAt gorm.DeletedAt `gorm:"column:student_type_deleted_at;index" json:"-"`
}

func (StudentTypeModel) TableName() string { return "student_types" }
