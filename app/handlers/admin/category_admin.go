package admin

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hitechrobotics/catalog-api/app/handlers/respond"
	"github.com/hitechrobotics/catalog-api/app/services"
)

func (h *AdminHandler) AddCategory(w http.ResponseWriter, r *http.Request) {
	var in services.CategoryInput
	if err := respond.DecodeJSON(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	category, err := h.catalog.CreateCategory(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, category)
}

// DeleteCategory removes the category together with all of its products.
func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteCategory(r.Context(), mux.Vars(r)["slug"]); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
