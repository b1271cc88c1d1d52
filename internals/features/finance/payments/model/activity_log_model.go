// file: internals/features/finance/payments/model/activity_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLogModel is an append-only audit trail. Writes are best-effort:
// a failed append never fails the operation it describes.
type ActivityLogModel struct {
	ActivityLogID uuid.UUID `gorm:"column:activity_log_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"activity_log_id"`

	ActivityLogCashierID *uuid.UUID `gorm:"column:activity_log_cashier_id;type:uuid;index" json:"activity_log_cashier_id,omitempty"`
	ActivityLogStudentID *uuid.UUID `gorm:"column:activity_log_student_id;type:uuid;index" json:"activity_log_student_id,omitempty"`

	ActivityLogAction  string `gorm:"column:activity_log_action;type:varchar(60);not null" json:"activity_log_action"`
	ActivityLogDetails string `gorm:"column:activity_log_details;type:text;not null" json:"activity_log_details"`

	ActivityLogCreatedAt time.Time `gorm:"column:activity_log_created_at;not null;default:now();autoCreateTime" json:"activity_log_created_at"`
}

func (ActivityLogModel) TableName() string { return "activity_logs" }
