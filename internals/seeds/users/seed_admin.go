package users

import (
	"log"

	"feeportal_backend/internals/configs"
	"feeportal_backend/internals/features/users/user/model"

	"gorm.io/gorm"
)

// SeedAdminUser creates the bootstrap admin account from env so a fresh
// deployment has a way in. Skipped when the email already exists.
func SeedAdminUser(db *gorm.DB) {
	email := configs.GetEnv("ADMIN_EMAIL", "admin@school.local")
	password := configs.GetEnv("ADMIN_PASSWORD", "")
	if password == "" {
		log.Println("ℹ️ ADMIN_PASSWORD not set, skipping admin seed.")
		return
	}

	var existing model.UserModel
	if err := db.Where("user_email = ?", email).First(&existing).Error; err == nil {
		log.Printf("ℹ️ Admin '%s' already exists, skipping.", email)
		return
	}

	admin := model.UserModel{
		UserName:  configs.GetEnv("ADMIN_NAME", "Administrator"),
		UserEmail: email,
		UserRole:  model.UserRoleAdmin,
	}
	if err := admin.SetPassword(password); err != nil {
		log.Printf("❌ Failed to hash admin password: %v", err)
		return
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("❌ Failed to seed admin '%s': %v", email, err)
		return
	}
	log.Printf("✅ Seeded admin user '%s'.", email)
}
