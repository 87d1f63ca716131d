package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/hitechrobotics/catalog-api/app/repositories"
	"github.com/hitechrobotics/catalog-api/app/services"
	"github.com/hitechrobotics/catalog-api/app/views"
	"github.com/unrolled/render"
)

var (
	aboutNotFound   = map[string]string{"error": "No about data found"}
	contactNotFound = map[string]string{"error": "No contact info found"}
	heroNotFound    = map[string]string{"detail": "Not found"}
	modelNotFound   = map[string]string{"detail": "No model uploaded."}
)

// SiteHandler serves the singleton page blocks, the widget lookups and the
// spline scene proxy.
type SiteHandler struct {
	base
	repo  repositories.SiteRepositoryImpl
	proxy *services.SplineProxy
}

func NewSiteHandler(repo repositories.SiteRepositoryImpl, proxy *services.SplineProxy, rnd *render.Render, mediaURL string, logger *slog.Logger) *SiteHandler {
	return &SiteHandler{
		base: base{
			render:   rnd,
			logger:   logger.With(slog.String("component", "site_handler")),
			mediaURL: mediaURL,
		},
		repo:  repo,
		proxy: proxy,
	}
}

func (h *SiteHandler) About(w http.ResponseWriter, r *http.Request) {
	about, err := h.repo.GetAbout(r.Context())
	if err != nil {
		h.fail(w, r, fmt.Errorf("load about company: %w", err), nil)
		return
	}
	if about == nil {
		h.fail(w, r, services.ErrNotFound, aboutNotFound)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, views.About(h.view(r), about))
}

func (h *SiteHandler) ContactInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.repo.GetContactInfo(r.Context())
	if err != nil {
		h.fail(w, r, fmt.Errorf("load contact info: %w", err), nil)
		return
	}
	if info == nil {
		h.fail(w, r, services.ErrNotFound, contactNotFound)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, views.ContactInfo(h.view(r), info))
}

func (h *SiteHandler) MobileHero(w http.ResponseWriter, r *http.Request) {
	hero, err := h.repo.GetHero(r.Context())
	if err != nil {
		h.fail(w, r, fmt.Errorf("load hero: %w", err), nil)
		return
	}
	if hero == nil {
		h.fail(w, r, services.ErrNotFound, heroNotFound)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, views.RoboticsHero(h.view(r), hero))
}

func (h *SiteHandler) RobotModel(w http.ResponseWriter, r *http.Request) {
	m, err := h.repo.GetRobotModel(r.Context())
	if err != nil {
		h.fail(w, r, fmt.Errorf("load robot model: %w", err), nil)
		return
	}
	if m == nil || m.GlbFile == "" {
		h.fail(w, r, services.ErrNotFound, modelNotFound)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, views.RobotModel(h.view(r), m))
}

func (h *SiteHandler) SplineModels(w http.ResponseWriter, r *http.Request) {
	rows, err := h.repo.GetSplineModels(r.Context())
	if err != nil {
		h.fail(w, r, fmt.Errorf("list spline models: %w", err), nil)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, rows)
}

func (h *SiteHandler) PhoneNumbers(w http.ResponseWriter, r *http.Request) {
	rows, err := h.repo.GetPhoneNumbers(r.Context())
	if err != nil {
		h.fail(w, r, fmt.Errorf("list phone numbers: %w", err), nil)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, rows)
}

// SplineProxy streams the configured spline scene from our own origin.
func (h *SiteHandler) SplineProxy(w http.ResponseWriter, r *http.Request) {
	err := h.proxy.Stream(r.Context(), w, r.Header.Get("User-Agent"), r.Header.Get("Accept"))
	if err != nil {
		h.fail(w, r, err, nil)
	}
}
