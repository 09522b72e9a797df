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

type ReviewHandler struct {
	reviewService service.ReviewService
	validator     *validator.Validate
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, validator: validator.New()}
}

// CreateReview godoc
// @Summary Leave a rating and comment on a farmer profile
// @Tags reviews
// @Router /api/v1/reviews [post]
func (h *ReviewHandler) CreateReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := authenticatedClaims(w, r)
		if !ok {
			return
		}

		var req models.CreateReviewRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		review, err := h.reviewService.CreateReview(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Review creation failed", slog.Int64("farmerProfileId", req.FarmerProfileID), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Review created", slog.Int64("reviewId", review.ID))
		response.Success(w, http.StatusCreated, review)
	}
}

// ListReviews godoc
// @Summary List reviews left on a farmer profile
// @Tags reviews
// @Router /api/v1/farmers/{id}/reviews [get]
func (h *ReviewHandler) ListReviews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		farmerProfileID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		reviews, err := h.reviewService.ListReviewsByFarmerProfile(r.Context(), farmerProfileID)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, reviews)
	}
}

// UpdateReview godoc
// @Summary Change the rating or comment of a review you wrote
// @Tags reviews
// @Router /api/v1/reviews/{id} [put]
func (h *ReviewHandler) UpdateReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := authenticatedClaims(w, r)
		if !ok {
			return
		}

		reviewID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		var req models.UpdateReviewRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		review, err := h.reviewService.UpdateReview(r.Context(), claims.UserID, reviewID, &req)
		if err != nil {
			logger.Error("Review update failed", slog.Int64("reviewId", reviewID), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, review)
	}
}

// DeleteReview godoc
// @Summary Delete a review you wrote
// @Tags reviews
// @Router /api/v1/reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := authenticatedClaims(w, r)
		if !ok {
			return
		}

		reviewID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		if err := h.reviewService.DeleteReview(r.Context(), claims.UserID, reviewID); err != nil {
			response.Error(w, err)

			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
