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

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// AddItem godoc
// @Summary Add a product to the open cart, accumulating quantity on repeats
// @Tags cart
// @Router /api/v1/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := authenticatedClaims(w, r)
		if !ok {
			return
		}

		var req models.AddCartItemRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		resp, err := h.cartService.AddItem(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Add to cart failed", slog.Int64("productId", req.ProductID), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		// a fresh line is a 201, an accumulated one a 200
		status := http.StatusOK
		if resp.Created {
			status = http.StatusCreated
		}

		logger.Info("Cart item upserted",
			slog.Int64("productId", req.ProductID), slog.Bool("created", resp.Created))
		response.WriteJson(w, status, resp)
	}
}

// ViewCart godoc
// @Summary Return the open cart with items, total and count
// @Tags cart
// @Router /api/v1/cart [get]
func (h *CartHandler) ViewCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := authenticatedClaims(w, r)
		if !ok {
			return
		}

		view, err := h.cartService.ViewCart(r.Context(), claims.UserID)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.WriteJson(w, http.StatusOK, view)
	}
}

// UpdateItem godoc
// @Summary Change the quantity of a cart line
// @Tags cart
// @Router /api/v1/cart/items/{id} [put]
func (h *CartHandler) UpdateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := authenticatedClaims(w, r)
		if !ok {
			return
		}

		itemID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		var req models.UpdateCartItemRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		item, err := h.cartService.UpdateItemQuantity(r.Context(), claims.UserID, itemID, &req)
		if err != nil {
			logger.Error("Cart item update failed", slog.Int64("itemId", itemID), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, item)
	}
}

// RemoveItem godoc
// @Summary Remove a line from the open cart
// @Tags cart
// @Router /api/v1/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := authenticatedClaims(w, r)
		if !ok {
			return
		}

		itemID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		if err := h.cartService.RemoveItem(r.Context(), claims.UserID, itemID); err != nil {
			response.Error(w, err)

			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
