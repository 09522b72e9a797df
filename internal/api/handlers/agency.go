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

type AgencyHandler struct {
	agencyService service.AgencyService
	validator     *validator.Validate
}

func NewAgencyHandler(agencyService service.AgencyService) *AgencyHandler {
	return &AgencyHandler{agencyService: agencyService, validator: validator.New()}
}

// CreateAgency godoc
// @Summary Register a delivery agency (admin only)
// @Tags agencies
// @Router /api/v1/agencies [post]
func (h *AgencyHandler) CreateAgency() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := authenticatedClaims(w, r)
		if !ok || !requireRole(w, claims, models.RoleAdmin) {
			return
		}

		var req models.CreateAgencyRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		agency, err := h.agencyService.CreateAgency(r.Context(), &req)
		if err != nil {
			logger.Error("Agency creation failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Agency created", slog.Int64("agencyId", agency.ID))
		response.Success(w, http.StatusCreated, agency)
	}
}

// GetAgency godoc
// @Summary Retrieve a delivery agency by id
// @Tags agencies
// @Router /api/v1/agencies/{id} [get]
func (h *AgencyHandler) GetAgency() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		agency, err := h.agencyService.GetAgencyByID(r.Context(), id)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, agency)
	}
}

// ListAgencies godoc
// @Summary List delivery agencies
// @Tags agencies
// @Router /api/v1/agencies [get]
func (h *AgencyHandler) ListAgencies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, size := paginationParams(r)

		agencies, total, err := h.agencyService.ListAgencies(r.Context(), page, size)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     agencies,
			Total:    total,
			Page:     page,
			PageSize: size,
		})
	}
}

// UpdateAgency godoc
// @Summary Update a delivery agency (admin only)
// @Tags agencies
// @Router /api/v1/agencies/{id} [put]
func (h *AgencyHandler) UpdateAgency() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := authenticatedClaims(w, r)
		if !ok || !requireRole(w, claims, models.RoleAdmin) {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		var req models.UpdateAgencyRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		agency, err := h.agencyService.UpdateAgency(r.Context(), id, &req)
		if err != nil {
			logger.Error("Agency update failed", slog.Int64("agencyId", id), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, agency)
	}
}

// DeleteAgency godoc
// @Summary Delete a delivery agency (admin only)
// @Tags agencies
// @Router /api/v1/agencies/{id} [delete]
func (h *AgencyHandler) DeleteAgency() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := authenticatedClaims(w, r)
		if !ok || !requireRole(w, claims, models.RoleAdmin) {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		if err := h.agencyService.DeleteAgency(r.Context(), id); err != nil {
			response.Error(w, err)

			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// WhatsAppContact godoc
// @Summary Build a WhatsApp click-to-chat link for an agency
// @Tags agencies
// @Router /api/v1/agencies/{id}/contact-whatsapp [get]
func (h *AgencyHandler) WhatsAppContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		contact, err := h.agencyService.WhatsAppContact(r.Context(), id)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, contact)
	}
}
