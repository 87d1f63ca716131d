// Package admin is the JSON write surface used by content editors. Every
// route here sits behind the API key middleware.
package admin

import (
	"log/slog"
	"net/http"

	"github.com/hitechrobotics/catalog-api/app/handlers/respond"
	"github.com/hitechrobotics/catalog-api/app/models"
	"github.com/hitechrobotics/catalog-api/app/services"
	"github.com/hitechrobotics/catalog-api/app/views"
	"github.com/unrolled/render"
)

type AdminHandler struct {
	render      *render.Render
	logger      *slog.Logger
	mediaURL    string
	pageSize    int
	catalog     *services.CatalogService
	site        *services.SiteService
	submissions *services.SubmissionService
}

func NewAdminHandler(
	rnd *render.Render,
	catalog *services.CatalogService,
	site *services.SiteService,
	submissions *services.SubmissionService,
	mediaURL string,
	pageSize int,
	logger *slog.Logger,
) *AdminHandler {
	return &AdminHandler{
		render:      rnd,
		logger:      logger.With(slog.String("component", "admin_handler")),
		mediaURL:    mediaURL,
		pageSize:    pageSize,
		catalog:     catalog,
		site:        site,
		submissions: submissions,
	}
}

func (h *AdminHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	respond.Error(h.render, h.logger, w, r, err, nil)
}

func (h *AdminHandler) view(r *http.Request) views.Context {
	return views.NewContext(r, h.mediaURL)
}

// saveSingleton decodes a singleton block and hands it to save.
func saveSingleton[T any](h *AdminHandler, w http.ResponseWriter, r *http.Request, save func(*http.Request, *T) error) {
	var value T
	if err := respond.DecodeJSON(r, &value); err != nil {
		h.fail(w, r, err)
		return
	}
	if err := save(r, &value); err != nil {
		h.fail(w, r, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, value)
}

func (h *AdminHandler) SaveAbout(w http.ResponseWriter, r *http.Request) {
	saveSingleton(h, w, r, func(r *http.Request, v *models.AboutCompany) error {
		return h.site.SaveAbout(r.Context(), v)
	})
}

func (h *AdminHandler) SaveContactInfo(w http.ResponseWriter, r *http.Request) {
	saveSingleton(h, w, r, func(r *http.Request, v *models.ContactInfo) error {
		return h.site.SaveContactInfo(r.Context(), v)
	})
}

func (h *AdminHandler) SaveHero(w http.ResponseWriter, r *http.Request) {
	saveSingleton(h, w, r, func(r *http.Request, v *models.RoboticsHero) error {
		return h.site.SaveHero(r.Context(), v)
	})
}

func (h *AdminHandler) SaveRobotModel(w http.ResponseWriter, r *http.Request) {
	saveSingleton(h, w, r, func(r *http.Request, v *models.RobotModel3D) error {
		return h.site.SaveRobotModel(r.Context(), v)
	})
}

func (h *AdminHandler) AddSplineModel(w http.ResponseWriter, r *http.Request) {
	var m models.SplineModelUrl
	if err := respond.DecodeJSON(r, &m); err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.site.AddSplineModel(r.Context(), &m); err != nil {
		h.fail(w, r, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, m)
}

func (h *AdminHandler) AddPhoneNumber(w http.ResponseWriter, r *http.Request) {
	var p models.PhoneNumber
	if err := respond.DecodeJSON(r, &p); err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.site.AddPhoneNumber(r.Context(), &p); err != nil {
		h.fail(w, r, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, p)
}
