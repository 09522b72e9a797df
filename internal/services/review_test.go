package service_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	appErrors "github.com/kieran237-code/Terrabia/internal/errors"
	"github.com/kieran237-code/Terrabia/internal/models"
	repository "github.com/kieran237-code/Terrabia/internal/repositories"
	service "github.com/kieran237-code/Terrabia/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateReview(t *testing.T) {
	ctx := context.Background()
	authorID := uuid.New()
	profile := &models.FarmerProfile{ID: 5, UserID: uuid.New(), Specialty: models.SpecialtyFruit}

	t.Run("Success - Comment Is Sanitized", func(t *testing.T) {
		// Arrange
		mockRepo := repository.NewMockReviewRepository()
		mockUserRepo := repository.NewMockUserRepository()
		reviewService := service.NewReviewService(mockRepo, mockUserRepo)

		mockUserRepo.On("GetFarmerProfileByID", ctx, int64(5)).Return(profile, nil).Once()
		mockRepo.On("CreateReview", ctx, mock.AnythingOfType("*models.Review")).Return(nil).Once()

		req := &models.CreateReviewRequest{
			FarmerProfileID: 5,
			Rating:          4,
			Comment:         `Great produce <script>alert("x")</script>`,
		}

		// Act
		review, err := reviewService.CreateReview(ctx, authorID, req)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, authorID, review.AuthorID)
		assert.Equal(t, 4, review.Rating)
		assert.NotContains(t, review.Comment, "<script>")
		assert.Contains(t, review.Comment, "Great produce")
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Reviewing Own Profile", func(t *testing.T) {
		// Arrange
		mockRepo := repository.NewMockReviewRepository()
		mockUserRepo := repository.NewMockUserRepository()
		reviewService := service.NewReviewService(mockRepo, mockUserRepo)

		ownProfile := &models.FarmerProfile{ID: 6, UserID: authorID}
		mockUserRepo.On("GetFarmerProfileByID", ctx, int64(6)).Return(ownProfile, nil).Once()

		// Act
		review, err := reviewService.CreateReview(ctx, authorID, &models.CreateReviewRequest{
			FarmerProfileID: 6, Rating: 5, Comment: "nice",
		})

		// Assert
		assert.Nil(t, review)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
		mockRepo.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Farmer Profile Not Found", func(t *testing.T) {
		// Arrange
		mockRepo := repository.NewMockReviewRepository()
		mockUserRepo := repository.NewMockUserRepository()
		reviewService := service.NewReviewService(mockRepo, mockUserRepo)

		mockUserRepo.On("GetFarmerProfileByID", ctx, int64(99)).Return(nil, sql.ErrNoRows).Once()

		// Act
		review, err := reviewService.CreateReview(ctx, authorID, &models.CreateReviewRequest{
			FarmerProfileID: 99, Rating: 5, Comment: "nice",
		})

		// Assert
		assert.Nil(t, review)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}

func TestUpdateReview(t *testing.T) {
	ctx := context.Background()
	authorID := uuid.New()

	t.Run("Success - Partial Update Keeps Other Fields", func(t *testing.T) {
		// Arrange
		mockRepo := repository.NewMockReviewRepository()
		mockUserRepo := repository.NewMockUserRepository()
		reviewService := service.NewReviewService(mockRepo, mockUserRepo)

		existing := &models.Review{ID: 1, AuthorID: authorID, FarmerProfileID: 5, Rating: 3, Comment: "ok"}
		newRating := 5

		mockRepo.On("GetReviewByID", ctx, int64(1)).Return(existing, nil).Once()
		mockRepo.On("UpdateReview", ctx, existing).Return(nil).Once()

		// Act
		review, err := reviewService.UpdateReview(ctx, authorID, 1, &models.UpdateReviewRequest{Rating: &newRating})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 5, review.Rating)
		assert.Equal(t, "ok", review.Comment)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Not The Author", func(t *testing.T) {
		// Arrange
		mockRepo := repository.NewMockReviewRepository()
		mockUserRepo := repository.NewMockUserRepository()
		reviewService := service.NewReviewService(mockRepo, mockUserRepo)

		existing := &models.Review{ID: 1, AuthorID: uuid.New(), FarmerProfileID: 5, Rating: 3, Comment: "ok"}
		newRating := 1

		mockRepo.On("GetReviewByID", ctx, int64(1)).Return(existing, nil).Once()

		// Act
		review, err := reviewService.UpdateReview(ctx, authorID, 1, &models.UpdateReviewRequest{Rating: &newRating})

		// Assert
		assert.Nil(t, review)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeForbidden, appErr.Code)
		mockRepo.AssertNotCalled(t, "UpdateReview", mock.Anything, mock.Anything)
	})
}

func TestDeleteReview(t *testing.T) {
	ctx := context.Background()
	authorID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockRepo := repository.NewMockReviewRepository()
		mockUserRepo := repository.NewMockUserRepository()
		reviewService := service.NewReviewService(mockRepo, mockUserRepo)

		existing := &models.Review{ID: 1, AuthorID: authorID, FarmerProfileID: 5}

		mockRepo.On("GetReviewByID", ctx, int64(1)).Return(existing, nil).Once()
		mockRepo.On("DeleteReview", ctx, int64(1)).Return(nil).Once()

		// Act
		err := reviewService.DeleteReview(ctx, authorID, 1)

		// Assert
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Unknown Review", func(t *testing.T) {
		// Arrange
		mockRepo := repository.NewMockReviewRepository()
		mockUserRepo := repository.NewMockUserRepository()
		reviewService := service.NewReviewService(mockRepo, mockUserRepo)

		mockRepo.On("GetReviewByID", ctx, int64(99)).Return(nil, sql.ErrNoRows).Once()

		// Act
		err := reviewService.DeleteReview(ctx, authorID, 99)

		// Assert
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
		mockRepo.AssertNotCalled(t, "DeleteReview", mock.Anything, mock.Anything)
	})
}

func TestListReviewsByFarmerProfile(t *testing.T) {
	ctx := context.Background()
	profile := &models.FarmerProfile{ID: 5, UserID: uuid.New()}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockRepo := repository.NewMockReviewRepository()
		mockUserRepo := repository.NewMockUserRepository()
		reviewService := service.NewReviewService(mockRepo, mockUserRepo)

		stored := []models.Review{
			{ID: 1, FarmerProfileID: 5, Rating: 4, Comment: "fresh"},
			{ID: 2, FarmerProfileID: 5, Rating: 5, Comment: "fast"},
		}

		mockUserRepo.On("GetFarmerProfileByID", ctx, int64(5)).Return(profile, nil).Once()
		mockRepo.On("ListReviewsByFarmerProfile", ctx, int64(5)).Return(stored, nil).Once()

		// Act
		reviews, err := reviewService.ListReviewsByFarmerProfile(ctx, 5)

		// Assert
		require.NoError(t, err)
		assert.Len(t, reviews, 2)
		mockRepo.AssertExpectations(t)
	})
}
