package admin

import (
	"fmt"
	"net/http"

	"github.com/hitechrobotics/catalog-api/app/helpers"
	"github.com/hitechrobotics/catalog-api/app/views"
)

// Orders lists submitted orders, newest first.
func (h *AdminHandler) Orders(w http.ResponseWriter, r *http.Request) {
	page := helpers.ParsePage(r.URL.Query().Get("page"))

	orders, total, err := h.submissions.ListOrders(r.Context(), h.pageSize, views.Offset(page, h.pageSize))
	if err != nil {
		h.fail(w, r, fmt.Errorf("list orders: %w", err))
		return
	}
	items := views.InboxOrders(h.view(r), orders)
	_ = h.render.JSON(w, http.StatusOK, views.NewPage(r, total, page, h.pageSize, items))
}

func (h *AdminHandler) ContactMessages(w http.ResponseWriter, r *http.Request) {
	page := helpers.ParsePage(r.URL.Query().Get("page"))

	messages, total, err := h.submissions.ListContactMessages(r.Context(), h.pageSize, views.Offset(page, h.pageSize))
	if err != nil {
		h.fail(w, r, fmt.Errorf("list contact messages: %w", err))
		return
	}
	_ = h.render.JSON(w, http.StatusOK, views.NewPage(r, total, page, h.pageSize, views.ContactMessages(messages)))
}
