package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kieran237-code/Terrabia/internal/models"
	"github.com/kieran237-code/Terrabia/internal/utils"
)

type ReviewRepository interface {
	CreateReview(ctx context.Context, review *models.Review) error
	GetReviewByID(ctx context.Context, id int64) (*models.Review, error)
	ListReviewsByFarmerProfile(ctx context.Context, farmerProfileID int64) ([]models.Review, error)
	UpdateReview(ctx context.Context, review *models.Review) error
	DeleteReview(ctx context.Context, id int64) error
}

type reviewRepository struct {
	DB *sql.DB
}

func NewReviewRepo(db *sql.DB) ReviewRepository {
	return &reviewRepository{DB: db}
}

func (r *reviewRepository) CreateReview(ctx context.Context, review *models.Review) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO reviews(author_id, farmer_profile_id, rating, comment, created_at)
		VALUES($1, $2, $3, $4, NOW())
		RETURNING id, created_at`

	return r.DB.QueryRowContext(dbCtx, query,
		review.AuthorID, review.FarmerProfileID, review.Rating, review.Comment).
		Scan(&review.ID, &review.CreatedAt)
}

func (r *reviewRepository) GetReviewByID(ctx context.Context, id int64) (*models.Review, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	review := &models.Review{}

	query := `SELECT id, author_id, farmer_profile_id, rating, comment, created_at
			  FROM reviews
			  WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).
		Scan(&review.ID, &review.AuthorID, &review.FarmerProfileID, &review.Rating, &review.Comment, &review.CreatedAt)
	if err != nil {
		return nil, err
	}

	return review, nil
}

// ListReviewsByFarmerProfile returns reviews newest first, with the author summary joined in.
func (r *reviewRepository) ListReviewsByFarmerProfile(ctx context.Context, farmerProfileID int64) ([]models.Review, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT rv.id, rv.author_id, rv.farmer_profile_id, rv.rating, rv.comment, rv.created_at,
			   u.id, u.email, u.role
		FROM reviews rv
		JOIN users u ON u.id = rv.author_id
		WHERE rv.farmer_profile_id = $1
		ORDER BY rv.created_at DESC`

	rows, err := r.DB.QueryContext(dbCtx, query, farmerProfileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]models.Review, 0)

	for rows.Next() {
		rv := models.Review{Author: &models.UserSummary{}}

		err := rows.Scan(
			&rv.ID, &rv.AuthorID, &rv.FarmerProfileID, &rv.Rating, &rv.Comment, &rv.CreatedAt,
			&rv.Author.ID, &rv.Author.Email, &rv.Author.Role)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}

		reviews = append(reviews, rv)
	}

	return reviews, rows.Err()
}

func (r *reviewRepository) UpdateReview(ctx context.Context, review *models.Review) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx,
		`UPDATE reviews SET rating = $1, comment = $2 WHERE id = $3`,
		review.Rating, review.Comment, review.ID)
	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updated == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *reviewRepository) DeleteReview(ctx context.Context, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get deleted rows: %w", err)
	}

	if deleted == 0 {
		return sql.ErrNoRows
	}

	return nil
}
