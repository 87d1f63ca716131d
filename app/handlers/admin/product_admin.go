package admin

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hitechrobotics/catalog-api/app/handlers/respond"
	"github.com/hitechrobotics/catalog-api/app/services"
	"github.com/hitechrobotics/catalog-api/app/views"
)

// AddProduct creates a product with every child collection in the body. The
// availability flags default to true when left out.
func (h *AdminHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	in := services.NewProductInput()
	if err := respond.DecodeJSON(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	product, err := h.catalog.CreateProduct(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, views.Detail(h.view(r), product))
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	in := services.NewProductInput()
	if err := respond.DecodeJSON(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	product, err := h.catalog.UpdateProduct(r.Context(), mux.Vars(r)["slug"], in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, views.Detail(h.view(r), product))
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteProduct(r.Context(), mux.Vars(r)["slug"]); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
