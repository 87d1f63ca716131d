package handlers

import (
	"log/slog"
	"net/http"

	"github.com/hitechrobotics/catalog-api/app/handlers/respond"
	"github.com/hitechrobotics/catalog-api/app/services"
	"github.com/hitechrobotics/catalog-api/app/views"
	"github.com/unrolled/render"
)

// SubmissionHandler takes the order and contact forms. Both accept JSON or
// form-encoded bodies.
type SubmissionHandler struct {
	base
	svc *services.SubmissionService
}

func NewSubmissionHandler(svc *services.SubmissionService, rnd *render.Render, mediaURL string, logger *slog.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		base: base{
			render:   rnd,
			logger:   logger.With(slog.String("component", "submission_handler")),
			mediaURL: mediaURL,
		},
		svc: svc,
	}
}

func (h *SubmissionHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	fields, err := respond.Fields(r)
	if err != nil {
		h.fail(w, r, err, nil)
		return
	}

	order, err := h.svc.SubmitOrder(r.Context(), services.OrderInput{
		FullName:    fields["full_name"],
		CompanyName: fields["company_name"],
		Email:       fields["email"],
		Phone:       fields["phone"],
		OrderType:   fields["order_type"],
		Product:     fields["product"],
		Message:     fields["message"],
	})
	if err != nil {
		h.fail(w, r, err, nil)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, views.OrderAccepted(h.view(r), order, services.OrderAcknowledgement))
}

func (h *SubmissionHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	fields, err := respond.Fields(r)
	if err != nil {
		h.fail(w, r, err, nil)
		return
	}

	msg, err := h.svc.SubmitContact(r.Context(), services.ContactInput{
		FullName:    fields["full_name"],
		Email:       fields["email"],
		PhoneNumber: fields["phone_number"],
		Message:     fields["message"],
	})
	if err != nil {
		h.fail(w, r, err, nil)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, views.ContactAccepted(msg, services.ContactAcknowledgement))
}
