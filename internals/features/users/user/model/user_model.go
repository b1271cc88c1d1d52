// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"feeportal_backend/internals/constants"
)

// Stored in user_role; the single definition lives in constants.
const (
	UserRoleAdmin   = constants.RoleAdmin
	UserRoleCashier = constants.RoleCashier
)

type UserModel struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`

	UserName  string  `gorm:"column:user_name;type:varchar(80);not null" json:"user_name"`
	UserEmail string  `gorm:"column:user_email;type:varchar(120);not null;uniqueIndex" json:"user_email"`
	UserPhone *string `gorm:"column:user_phone;type:varchar(20)" json:"user_phone,omitempty"`

	UserPasswordHash string `gorm:"column:user_password_hash;type:varchar(100);not null" json:"-"`
	UserRole         string `gorm:"column:user_role;type:varchar(10);not null;index" json:"user_role"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;not null;default:now();autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;not null;default:now();autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"-"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	m.UserPasswordHash = string(hash)
	return nil
}

func (m *UserModel) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(m.UserPasswordHash), []byte(plain)) == nil
}
