package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/hitechrobotics/catalog-api/app/helpers"
	"github.com/hitechrobotics/catalog-api/app/models"
	"github.com/hitechrobotics/catalog-api/app/repositories"
	"github.com/hitechrobotics/catalog-api/app/services"
	"github.com/hitechrobotics/catalog-api/app/views"
	"github.com/unrolled/render"
)

const noSearchResults = "No robots found matching your search."

var categoryNotFound = map[string]string{"error": "Category not found"}

type ProductHandler struct {
	base
	repo         repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	pageSize     int
}

func NewProductHandler(
	p repositories.ProductRepositoryImpl,
	c repositories.CategoryRepositoryImpl,
	rnd *render.Render,
	mediaURL string,
	pageSize int,
	logger *slog.Logger,
) *ProductHandler {
	return &ProductHandler{
		base: base{
			render:   rnd,
			logger:   logger.With(slog.String("component", "product_handler")),
			mediaURL: mediaURL,
		},
		repo:         p,
		categoryRepo: c,
		pageSize:     pageSize,
	}
}

func (h *ProductHandler) filter(r *http.Request) repositories.ProductFilter {
	q := r.URL.Query()
	return repositories.ProductFilter{
		CategorySlug: strings.TrimSpace(q.Get("category")),
		ForSale:      helpers.ParseBoolParam(q.Get("is_available_for_sale")),
		ForRent:      helpers.ParseBoolParam(q.Get("is_available_for_rent")),
		Query:        strings.TrimSpace(q.Get("q")),
	}
}

func (h *ProductHandler) list(r *http.Request, f repositories.ProductFilter) (views.Page, error) {
	page := helpers.ParsePage(r.URL.Query().Get("page"))
	products, total, err := h.repo.List(r.Context(), f, h.pageSize, views.Offset(page, h.pageSize))
	if err != nil {
		return views.Page{}, fmt.Errorf("list products: %w", err)
	}
	items := views.ProductItems(h.view(r), products)
	return views.NewPage(r, total, page, h.pageSize, items), nil
}

// Products lists the catalogue newest first, filtered by category and
// availability.
func (h *ProductHandler) Products(w http.ResponseWriter, r *http.Request) {
	f := h.filter(r)
	f.Query = ""
	page, err := h.list(r, f)
	if err != nil {
		h.fail(w, r, err, nil)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, page)
}

// Search matches q against every translation of the product and category
// names.
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	page, err := h.list(r, h.filter(r))
	if err != nil {
		h.fail(w, r, err, nil)
		return
	}
	if page.Count == 0 {
		_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
			"message": noSearchResults,
			"results": []views.ProductListItem{},
		})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, page)
}

func (h *ProductHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	product, err := h.repo.GetBySlug(r.Context(), slug)
	if err != nil {
		h.fail(w, r, fmt.Errorf("load product %q: %w", slug, err), nil)
		return
	}
	if product == nil {
		h.fail(w, r, services.ErrNotFound, nil)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, views.Detail(h.view(r), product))
}

// CategoryLanding is the card grid of one category.
func (h *ProductHandler) CategoryLanding(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	category, err := h.categoryRepo.GetBySlug(r.Context(), slug)
	if err != nil {
		h.fail(w, r, fmt.Errorf("load category %q: %w", slug, err), nil)
		return
	}
	if category == nil {
		h.fail(w, r, services.ErrNotFound, categoryNotFound)
		return
	}

	var products []models.Product
	products, err = h.repo.GetByCategoryID(r.Context(), category.ID)
	if err != nil {
		h.fail(w, r, fmt.Errorf("load products of %q: %w", slug, err), nil)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, views.CategoryLanding(h.view(r), category, products))
}
