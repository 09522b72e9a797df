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

type OrderHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService, validator: validator.New()}
}

// CreateOrder godoc
// @Summary Confirm the open cart as an order against a delivery agency
// @Tags orders
// @Router /api/v1/orders [post]
func (h *OrderHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := authenticatedClaims(w, r)
		if !ok {
			return
		}

		var req models.CreateOrderRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		confirmation, err := h.orderService.CreateOrder(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Warn("Order creation failed", slog.Int64("agencyId", req.AgencyID), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Order created",
			slog.String("orderId", confirmation.OrderID.String()), slog.String("total", confirmation.Total))
		response.WriteJson(w, http.StatusCreated, confirmation)
	}
}
