package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/hitechrobotics/catalog-api/app/models"
	"github.com/hitechrobotics/catalog-api/app/repositories"
)

// SiteService is the write path for the singleton page blocks and the widget
// lookup lists.
type SiteService struct {
	siteRepo repositories.SiteRepositoryImpl
	logger   *slog.Logger
}

func NewSiteService(siteRepo repositories.SiteRepositoryImpl, logger *slog.Logger) *SiteService {
	return &SiteService{
		siteRepo: siteRepo,
		logger:   logger.With(slog.String("component", "site_service")),
	}
}

func requireText(verrs ValidationErrors, field string, t models.Text) {
	if strings.TrimSpace(t.En) == "" {
		verrs.Add(field, "This field is required.")
	}
}

func validURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func (s *SiteService) SaveAbout(ctx context.Context, about *models.AboutCompany) error {
	verrs := ValidationErrors{}
	requireText(verrs, "title", about.Title)
	if len(verrs) > 0 {
		return verrs
	}
	if err := s.siteRepo.SaveAbout(ctx, about); err != nil {
		return fmt.Errorf("save about company: %w", err)
	}
	s.logger.Info("about company saved")
	return nil
}

func (s *SiteService) SaveContactInfo(ctx context.Context, info *models.ContactInfo) error {
	verrs := ValidationErrors{}
	requireText(verrs, "title", info.Title)
	for i, loc := range info.Locations {
		if loc.Lat < -90 || loc.Lat > 90 {
			verrs.Add(fmt.Sprintf("locations[%d].lat", i), "Latitude must be between -90 and 90.")
		}
		if loc.Lon < -180 || loc.Lon > 180 {
			verrs.Add(fmt.Sprintf("locations[%d].lon", i), "Longitude must be between -180 and 180.")
		}
	}
	if len(verrs) > 0 {
		return verrs
	}
	if err := s.siteRepo.SaveContactInfo(ctx, info); err != nil {
		return fmt.Errorf("save contact info: %w", err)
	}
	s.logger.Info("contact info saved", slog.Int("locations", len(info.Locations)))
	return nil
}

func (s *SiteService) SaveHero(ctx context.Context, hero *models.RoboticsHero) error {
	verrs := ValidationErrors{}
	requireText(verrs, "title", hero.Title)
	if len(verrs) > 0 {
		return verrs
	}
	if err := s.siteRepo.SaveHero(ctx, hero); err != nil {
		return fmt.Errorf("save hero: %w", err)
	}
	s.logger.Info("mobile hero saved")
	return nil
}

func (s *SiteService) SaveRobotModel(ctx context.Context, m *models.RobotModel3D) error {
	if strings.TrimSpace(m.GlbFile) == "" {
		return ValidationErrors{"glb_file": {"This field is required."}}
	}
	if err := s.siteRepo.SaveRobotModel(ctx, m); err != nil {
		return fmt.Errorf("save robot model: %w", err)
	}
	s.logger.Info("robot model saved", slog.String("file", m.GlbFile))
	return nil
}

func (s *SiteService) AddSplineModel(ctx context.Context, m *models.SplineModelUrl) error {
	m.SplineURL = strings.TrimSpace(m.SplineURL)
	if !validURL(m.SplineURL) {
		return ValidationErrors{"spline_url": {"Enter a valid URL."}}
	}
	m.ID = 0
	if err := s.siteRepo.AddSplineModel(ctx, m); err != nil {
		return fmt.Errorf("add spline model: %w", err)
	}
	return nil
}

func (s *SiteService) AddPhoneNumber(ctx context.Context, p *models.PhoneNumber) error {
	p.PhoneNumber = strings.TrimSpace(p.PhoneNumber)
	if p.PhoneNumber == "" {
		return ValidationErrors{"phone_number": {"This field is required."}}
	}
	p.ID = 0
	if err := s.siteRepo.AddPhoneNumber(ctx, p); err != nil {
		return fmt.Errorf("add phone number: %w", err)
	}
	return nil
}
