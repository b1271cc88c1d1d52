package students

import (
	"log"

	"feeportal_backend/internals/features/students/model"

	"gorm.io/gorm"
)

var defaultStudentTypes = []string{
	"Day Scholar",
	"Hosteller",
	"Staff Ward",
}

// SeedStudentTypes inserts the standard classification rows used by fee
// structure targeting. Existing names are skipped.
func SeedStudentTypes(db *gorm.DB) {
	for _, name := range defaultStudentTypes {
		var existing model.StudentTypeModel
		if err := db.Where("student_type_name = ?", name).First(&existing).Error; err == nil {
			continue
		}
		st := model.StudentTypeModel{StudentTypeName: name}
		if err := db.Create(&st).Error; err != nil {
			log.Printf("❌ Failed to seed student type '%s': %v", name, err)
			continue
		}
		log.Printf("✅ Seeded student type '%s'.", name)
	}
}
