package migrations

import (
	"github.com/hitechrobotics/catalog-api/app/models"
	"gorm.io/gorm"
)

func Models() []interface{} {
	return []interface{}{
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.ProductFeature{},
		&models.FeatureParagraph{},
		&models.Highlight{},
		&models.HighlightItem{},
		&models.AdditionalDevice{},
		&models.NavigationShowcase{},
		&models.ProductFeatureCard{},
		&models.Order{},
		&models.ContactMessage{},
		&models.AboutCompany{},
		&models.AboutFeature{},
		&models.FeaturedService{},
		&models.CountStat{},
		&models.AboutFeatureCard{},
		&models.AboutService{},
		&models.ShowroomLocation{},
		&models.ContactInfo{},
		&models.RoboticsHero{},
		&models.RobotModel3D{},
		&models.SplineModelUrl{},
		&models.PhoneNumber{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
