package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/kieran237-code/Terrabia/internal/api/middleware"
	"github.com/kieran237-code/Terrabia/internal/models"
	service "github.com/kieran237-code/Terrabia/internal/services"
	"github.com/kieran237-code/Terrabia/internal/utils"
	"github.com/kieran237-code/Terrabia/internal/utils/response"
)

type ContactHandler struct {
	contactService service.ContactService
	validator      *validator.Validate
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService, validator: validator.New()}
}

// Contact godoc
// @Summary Get an instruction for reaching another user by call or WhatsApp
// @Tags contact
// @Router /api/v1/contact [post]
func (h *ContactHandler) Contact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		if _, ok := authenticatedClaims(w, r); !ok {
			return
		}

		var req models.ContactRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		resp, err := h.contactService.Contact(r.Context(), &req)
		if err != nil {
			logger.Warn("Contact lookup failed", slog.String("targetId", req.UserID.String()), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.WriteJson(w, http.StatusOK, resp)
	}
}
