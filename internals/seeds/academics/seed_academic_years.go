package academics

import (
	"fmt"
	"log"
	"time"

	"feeportal_backend/internals/features/academics/academic_years/model"

	"gorm.io/gorm"
)

// SeedAcademicYears ensures the current academic year row exists and is
// marked active when the table is empty. India school calendar: the year
// turns over in April.
func SeedAcademicYears(db *gorm.DB) {
	now := time.Now()
	startYear := now.Year()
	if now.Month() < time.April {
		startYear--
	}
	name := fmt.Sprintf("%d-%d", startYear, startYear+1)

	var existing model.AcademicYearModel
	if err := db.Where("academic_year_name = ?", name).First(&existing).Error; err == nil {
		log.Printf("ℹ️ Academic year '%s' already exists, skipping.", name)
		return
	}

	var count int64
	db.Model(&model.AcademicYearModel{}).Count(&count)

	year := model.AcademicYearModel{
		AcademicYearName:     name,
		AcademicYearIsActive: count == 0,
	}
	if err := db.Create(&year).Error; err != nil {
		log.Printf("❌ Failed to seed academic year '%s': %v", name, err)
		return
	}
	log.Printf("✅ Seeded academic year '%s' (active=%v).", name, year.AcademicYearIsActive)
}
