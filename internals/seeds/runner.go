package seeds

import (
	academics "feeportal_backend/internals/seeds/academics"
	students "feeportal_backend/internals/seeds/students"
	users "feeportal_backend/internals/seeds/users"

	"gorm.io/gorm"
)

// RunAllSeeds bootstraps a fresh database. Every seed is idempotent and
// skips rows that already exist, so the runner is safe on every start.
func RunAllSeeds(db *gorm.DB) {
	users.SeedAdminUser(db)
	academics.SeedAcademicYears(db)
	students.SeedStudentTypes(db)
}
