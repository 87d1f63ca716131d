package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/hitechrobotics/catalog-api/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SiteRepositoryImpl stores the marketing content of the site: the singleton
// blocks and the small lookup lists.
type SiteRepositoryImpl interface {
	GetAbout(ctx context.Context) (*models.AboutCompany, error)
	SaveAbout(ctx context.Context, about *models.AboutCompany) error
	GetContactInfo(ctx context.Context) (*models.ContactInfo, error)
	SaveContactInfo(ctx context.Context, info *models.ContactInfo) error
	GetHero(ctx context.Context) (*models.RoboticsHero, error)
	SaveHero(ctx context.Context, hero *models.RoboticsHero) error
	GetRobotModel(ctx context.Context) (*models.RobotModel3D, error)
	SaveRobotModel(ctx context.Context, model *models.RobotModel3D) error

	GetSplineModels(ctx context.Context) ([]models.SplineModelUrl, error)
	FirstSplineURL(ctx context.Context) (string, error)
	AddSplineModel(ctx context.Context, m *models.SplineModelUrl) error
	GetPhoneNumbers(ctx context.Context) ([]models.PhoneNumber, error)
	AddPhoneNumber(ctx context.Context, p *models.PhoneNumber) error
}

type siteRepository struct {
	db *gorm.DB
}

func NewSiteRepository(db *gorm.DB) SiteRepositoryImpl {
	return &siteRepository{db}
}

func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC, id ASC")
}

// upsertSingleton writes value under models.SingletonID, inserting or
// overwriting the row.
func upsertSingleton(tx *gorm.DB, value interface{}) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Omit(clause.Associations).Create(value).Error
}

func notFoundAsNil(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func (r *siteRepository) GetAbout(ctx context.Context) (*models.AboutCompany, error) {
	var about models.AboutCompany
	err := r.db.WithContext(ctx).
		Preload("Features", byPosition).
		Preload("FeaturedServices", byPosition).
		Preload("CountStats", byPosition).
		Preload("FeatureList", byPosition).
		Preload("Services", byPosition).
		First(&about, models.SingletonID).Error
	if err != nil {
		return nil, notFoundAsNil(err)
	}
	return &about, nil
}

// SaveAbout replaces the about block and all of its child collections.
func (r *siteRepository) SaveAbout(ctx context.Context, about *models.AboutCompany) error {
	about.ID = models.SingletonID

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := upsertSingleton(tx, about); err != nil {
			return fmt.Errorf("upsert about company: %w", err)
		}

		children := []interface{}{
			&models.AboutFeature{},
			&models.FeaturedService{},
			&models.CountStat{},
			&models.AboutFeatureCard{},
			&models.AboutService{},
		}
		for _, m := range children {
			if err := tx.Where("about_company_id = ?", models.SingletonID).Delete(m).Error; err != nil {
				return fmt.Errorf("clear %T: %w", m, err)
			}
		}

		for i := range about.Features {
			about.Features[i].ID = 0
			about.Features[i].AboutCompanyID = models.SingletonID
			about.Features[i].Position = i
		}
		for i := range about.FeaturedServices {
			about.FeaturedServices[i].ID = 0
			about.FeaturedServices[i].AboutCompanyID = models.SingletonID
			about.FeaturedServices[i].Position = i
		}
		for i := range about.CountStats {
			about.CountStats[i].ID = 0
			about.CountStats[i].AboutCompanyID = models.SingletonID
			about.CountStats[i].Position = i
		}
		for i := range about.FeatureList {
			about.FeatureList[i].ID = 0
			about.FeatureList[i].AboutCompanyID = models.SingletonID
			about.FeatureList[i].Position = i
		}
		for i := range about.Services {
			about.Services[i].ID = 0
			about.Services[i].AboutCompanyID = models.SingletonID
			about.Services[i].Position = i
		}

		if err := createAll(tx, &about.Features, len(about.Features)); err != nil {
			return err
		}
		if err := createAll(tx, &about.FeaturedServices, len(about.FeaturedServices)); err != nil {
			return err
		}
		if err := createAll(tx, &about.CountStats, len(about.CountStats)); err != nil {
			return err
		}
		if err := createAll(tx, &about.FeatureList, len(about.FeatureList)); err != nil {
			return err
		}
		return createAll(tx, &about.Services, len(about.Services))
	})
}

func createAll(tx *gorm.DB, rows interface{}, n int) error {
	if n == 0 {
		return nil
	}
	if err := tx.Create(rows).Error; err != nil {
		return fmt.Errorf("create %T: %w", rows, err)
	}
	return nil
}

func (r *siteRepository) GetContactInfo(ctx context.Context) (*models.ContactInfo, error) {
	var info models.ContactInfo
	err := r.db.WithContext(ctx).
		Preload("Locations", func(db *gorm.DB) *gorm.DB { return db.Order("showroom_locations.id ASC") }).
		First(&info, models.SingletonID).Error
	if err != nil {
		return nil, notFoundAsNil(err)
	}
	return &info, nil
}

// SaveContactInfo upserts the contact block and relinks its locations. Links
// that are dropped leave the location rows in place.
func (r *siteRepository) SaveContactInfo(ctx context.Context, info *models.ContactInfo) error {
	info.ID = models.SingletonID
	locations := info.Locations

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := upsertSingleton(tx, info); err != nil {
			return fmt.Errorf("upsert contact info: %w", err)
		}
		for i := range locations {
			if locations[i].ID == 0 {
				if err := tx.Create(&locations[i]).Error; err != nil {
					return fmt.Errorf("create showroom location: %w", err)
				}
			}
		}
		assoc := tx.Model(&models.ContactInfo{ID: models.SingletonID}).Association("Locations")
		if len(locations) == 0 {
			if err := assoc.Clear(); err != nil {
				return fmt.Errorf("unlink showroom locations: %w", err)
			}
			return nil
		}
		if err := assoc.Replace(locations); err != nil {
			return fmt.Errorf("link showroom locations: %w", err)
		}
		info.Locations = locations
		return nil
	})
}

func (r *siteRepository) GetHero(ctx context.Context) (*models.RoboticsHero, error) {
	var hero models.RoboticsHero
	if err := r.db.WithContext(ctx).First(&hero, models.SingletonID).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &hero, nil
}

func (r *siteRepository) SaveHero(ctx context.Context, hero *models.RoboticsHero) error {
	hero.ID = models.SingletonID
	return upsertSingleton(r.db.WithContext(ctx), hero)
}

func (r *siteRepository) GetRobotModel(ctx context.Context) (*models.RobotModel3D, error) {
	var m models.RobotModel3D
	if err := r.db.WithContext(ctx).First(&m, models.SingletonID).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &m, nil
}

func (r *siteRepository) SaveRobotModel(ctx context.Context, m *models.RobotModel3D) error {
	m.ID = models.SingletonID
	return upsertSingleton(r.db.WithContext(ctx), m)
}

func (r *siteRepository) GetSplineModels(ctx context.Context) ([]models.SplineModelUrl, error) {
	rows := []models.SplineModelUrl{}
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}

// FirstSplineURL returns the URL of the oldest row that has one, or "".
func (r *siteRepository) FirstSplineURL(ctx context.Context) (string, error) {
	var row models.SplineModelUrl
	err := r.db.WithContext(ctx).
		Where("spline_url IS NOT NULL AND spline_url <> ''").
		Order("id ASC").
		First(&row).Error
	if err != nil {
		return "", notFoundAsNil(err)
	}
	return row.SplineURL, nil
}

func (r *siteRepository) AddSplineModel(ctx context.Context, m *models.SplineModelUrl) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *siteRepository) GetPhoneNumbers(ctx context.Context) ([]models.PhoneNumber, error) {
	rows := []models.PhoneNumber{}
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *siteRepository) AddPhoneNumber(ctx context.Context, p *models.PhoneNumber) error {
	return r.db.WithContext(ctx).Create(p).Error
}
