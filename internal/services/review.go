package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/kieran237-code/Terrabia/internal/errors"
	"github.com/kieran237-code/Terrabia/internal/models"
	repository "github.com/kieran237-code/Terrabia/internal/repositories"
	"github.com/microcosm-cc/bluemonday"
)

type ReviewService interface {
	CreateReview(ctx context.Context, authorID uuid.UUID, req *models.CreateReviewRequest) (*models.Review, error)
	ListReviewsByFarmerProfile(ctx context.Context, farmerProfileID int64) ([]models.Review, error)
	UpdateReview(ctx context.Context, authorID uuid.UUID, id int64, req *models.UpdateReviewRequest) (*models.Review, error)
	DeleteReview(ctx context.Context, authorID uuid.UUID, id int64) error
}

type reviewService struct {
	repo      repository.ReviewRepository
	userRepo  repository.UserRepository
	sanitizer *bluemonday.Policy
}

func NewReviewService(repo repository.ReviewRepository, userRepo repository.UserRepository) ReviewService {
	return &reviewService{
		repo:      repo,
		userRepo:  userRepo,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// CreateReview stores a review against a farmer profile. The author comes
// from the authenticated session, and the comment is stripped of any markup
// before it is persisted.
func (s *reviewService) CreateReview(ctx context.Context, authorID uuid.UUID, req *models.CreateReviewRequest) (*models.Review, error) {
	profile, err := s.userRepo.GetFarmerProfileByID(ctx, req.FarmerProfileID)
	if err != nil {
		return nil, errors.NotFoundError("Farmer profile not found").WithError(err)
	}

	if profile.UserID == authorID {
		return nil, errors.BadRequestError("You cannot review your own profile")
	}

	review := &models.Review{
		AuthorID:        authorID,
		FarmerProfileID: req.FarmerProfileID,
		Rating:          req.Rating,
		Comment:         s.sanitizer.Sanitize(req.Comment),
	}

	if err := s.repo.CreateReview(ctx, review); err != nil {
		return nil, errors.DatabaseError("Failed to create review").WithError(err)
	}

	return review, nil
}

func (s *reviewService) ListReviewsByFarmerProfile(ctx context.Context, farmerProfileID int64) ([]models.Review, error) {
	if _, err := s.userRepo.GetFarmerProfileByID(ctx, farmerProfileID); err != nil {
		return nil, errors.NotFoundError("Farmer profile not found").WithError(err)
	}

	reviews, err := s.repo.ListReviewsByFarmerProfile(ctx, farmerProfileID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list reviews").WithError(err)
	}

	return reviews, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, authorID uuid.UUID, id int64, req *models.UpdateReviewRequest) (*models.Review, error) {
	review, err := s.ownedReview(ctx, authorID, id)
	if err != nil {
		return nil, err
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}

	if req.Comment != nil {
		review.Comment = s.sanitizer.Sanitize(*req.Comment)
	}

	if err := s.repo.UpdateReview(ctx, review); err != nil {
		return nil, errors.DatabaseError("Failed to update review").WithError(err)
	}

	return review, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, authorID uuid.UUID, id int64) error {
	if _, err := s.ownedReview(ctx, authorID, id); err != nil {
		return err
	}

	if err := s.repo.DeleteReview(ctx, id); err != nil {
		return errors.DatabaseError("Failed to delete review").WithError(err)
	}

	return nil
}

// ownedReview loads a review and checks the caller wrote it.
func (s *reviewService) ownedReview(ctx context.Context, authorID uuid.UUID, id int64) (*models.Review, error) {
	review, err := s.repo.GetReviewByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Review not found").WithError(err)
	}

	if review.AuthorID != authorID {
		return nil, errors.ForbiddenError("You do not own this review")
	}

	return review, nil
}
