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

type ProductHandler struct {
	productService service.ProductService
	validator      *validator.Validate
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService, validator: validator.New()}
}

// CreateProduct godoc
// @Summary Create a product owned by the calling farmer
// @Tags products
// @Router /api/v1/products [post]
func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := authenticatedClaims(w, r)
		if !ok || !requireRole(w, claims, models.RoleFarmer, models.RoleAdmin) {
			return
		}

		var req models.CreateProductRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Product creation failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Product created", slog.Int64("productId", product.ID))
		response.Success(w, http.StatusCreated, product)
	}
}

// GetProduct godoc
// @Summary Retrieve a product with its category and photos
// @Tags products
// @Router /api/v1/products/{id} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		product, err := h.productService.GetProductByID(r.Context(), id)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// ListProducts godoc
// @Summary List products, optionally restricted to the calling farmer
// @Tags products
// @Router /api/v1/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := authenticatedClaims(w, r)
		if !ok {
			return
		}

		page, size := paginationParams(r)

		var (
			products []models.Product
			total    int
			err      error
		)

		if r.URL.Query().Get("mine") == "true" {
			products, total, err = h.productService.ListProductsByFarmer(r.Context(), claims.UserID, page, size)
		} else {
			products, total, err = h.productService.ListProducts(r.Context(), page, size)
		}

		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     products,
			Total:    total,
			Page:     page,
			PageSize: size,
		})
	}
}

// UpdateProduct godoc
// @Summary Update a product the calling farmer owns
// @Tags products
// @Router /api/v1/products/{id} [put]
func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := authenticatedClaims(w, r)
		if !ok || !requireRole(w, claims, models.RoleFarmer, models.RoleAdmin) {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		var req models.UpdateProductRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		product, err := h.productService.UpdateProduct(r.Context(), claims.UserID, id, &req)
		if err != nil {
			logger.Error("Product update failed", slog.Int64("productId", id), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// DeleteProduct godoc
// @Summary Delete a product the calling farmer owns
// @Tags products
// @Router /api/v1/products/{id} [delete]
func (h *ProductHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := authenticatedClaims(w, r)
		if !ok || !requireRole(w, claims, models.RoleFarmer, models.RoleAdmin) {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		if err := h.productService.DeleteProduct(r.Context(), claims.UserID, id); err != nil {
			response.Error(w, err)

			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// AddPhoto godoc
// @Summary Attach a photo to a product the calling farmer owns
// @Tags products
// @Router /api/v1/products/{id}/photos [post]
func (h *ProductHandler) AddPhoto() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := authenticatedClaims(w, r)
		if !ok || !requireRole(w, claims, models.RoleFarmer, models.RoleAdmin) {
			return
		}

		productID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		var req models.AddPhotoRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		// the path, not the body, decides which product the photo belongs to
		req.ProductID = productID

		photo, err := h.productService.AddPhoto(r.Context(), claims.UserID, productID, &req)
		if err != nil {
			logger.Error("Photo upload failed", slog.Int64("productId", productID), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusCreated, photo)
	}
}

// DeletePhoto godoc
// @Summary Remove a photo from a product the calling farmer owns
// @Tags products
// @Router /api/v1/products/{id}/photos/{photoId} [delete]
func (h *ProductHandler) DeletePhoto() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := authenticatedClaims(w, r)
		if !ok || !requireRole(w, claims, models.RoleFarmer, models.RoleAdmin) {
			return
		}

		productID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		photoID, err := utils.ParseID(r, "photoId")
		if err != nil {
			response.Error(w, err)

			return
		}

		if err := h.productService.DeletePhoto(r.Context(), claims.UserID, productID, photoID); err != nil {
			response.Error(w, err)

			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
