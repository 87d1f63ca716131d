package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/hitechrobotics/catalog-api/app/helpers"
	"github.com/hitechrobotics/catalog-api/app/repositories"
	"github.com/hitechrobotics/catalog-api/app/views"
	"github.com/unrolled/render"
)

type CategoryHandler struct {
	base
	repo     repositories.CategoryRepositoryImpl
	pageSize int
}

func NewCategoryHandler(c repositories.CategoryRepositoryImpl, rnd *render.Render, mediaURL string, pageSize int, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		base: base{
			render:   rnd,
			logger:   logger.With(slog.String("component", "category_handler")),
			mediaURL: mediaURL,
		},
		repo:     c,
		pageSize: pageSize,
	}
}

func (h *CategoryHandler) Categories(w http.ResponseWriter, r *http.Request) {
	page := helpers.ParsePage(r.URL.Query().Get("page"))

	categories, total, err := h.repo.GetCategoriesWithProducts(r.Context(), h.pageSize, views.Offset(page, h.pageSize))
	if err != nil {
		h.fail(w, r, fmt.Errorf("list categories: %w", err), nil)
		return
	}
	items := views.CategoryItems(h.view(r), categories)
	_ = h.render.JSON(w, http.StatusOK, views.NewPage(r, total, page, h.pageSize, items))
}
