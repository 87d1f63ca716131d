package handlers

import (
	"log/slog"
	"net/http"

	"github.com/hitechrobotics/catalog-api/app/handlers/respond"
	"github.com/hitechrobotics/catalog-api/app/views"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

// base is embedded by every public handler.
type base struct {
	render   *render.Render
	logger   *slog.Logger
	mediaURL string
}

func (b base) view(r *http.Request) views.Context {
	return views.NewContext(r, b.mediaURL)
}

func (b base) fail(w http.ResponseWriter, r *http.Request, err error, notFound interface{}) {
	respond.Error(b.render, b.logger, w, r, err, notFound)
}

type HealthHandler struct {
	render *render.Render
	db     *gorm.DB
	logger *slog.Logger
}

func NewHealthHandler(rnd *render.Render, db *gorm.DB, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{render: rnd, db: db, logger: logger.With(slog.String("component", "health"))}
}

// Health answers 200 while the database still answers a ping.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(r.Context())
	}
	if err != nil {
		h.logger.Error("database ping failed", slog.String("error", err.Error()))
		_ = h.render.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
