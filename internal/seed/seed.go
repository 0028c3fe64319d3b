package seed

import (
	"fmt"

	"askhub/internal/database/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Run inserts the first-run demo data: three global programs and the demo
// company. Each block only fires when its table is empty, so restarts are
// safe and operator-created data is never touched.
func Run(db *gorm.DB) error {
	var programCount int64
	if err := db.Model(&models.Program{}).Count(&programCount).Error; err != nil {
		return fmt.Errorf("count programs: %w", err)
	}
	if programCount == 0 {
		programs := []models.Program{
			{Name: "Health & Wellness", IsOpen: true},
			{Name: "Technology Trends", IsOpen: true},
			{Name: "Career Advice", IsOpen: false},
		}
		if err := db.Create(&programs).Error; err != nil {
			return fmt.Errorf("seed programs: %w", err)
		}
		logrus.Info("Seeded initial programs")
	}

	var companyCount int64
	if err := db.Model(&models.Company{}).Count(&companyCount).Error; err != nil {
		return fmt.Errorf("count companies: %w", err)
	}
	if companyCount == 0 {
		company := models.Company{
			Name:               "TechCorp",
			Slug:               "techcorp",
			PrimaryColor:       "#ea580c",
			SecondaryColor:     "#9a3412",
			IsPro:              true,
			SubscriptionStatus: models.SubscriptionActive,
		}
		if err := db.Create(&company).Error; err != nil {
			return fmt.Errorf("seed demo company: %w", err)
		}
		logrus.Infof("Seeded demo company: %s (slug: %s)", company.Name, company.Slug)
	}

	return nil
}
