package models

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID              int64        `json:"id"`
	AuthorID        uuid.UUID    `json:"author_id"`
	FarmerProfileID int64        `json:"farmer_profile_id"`
	Rating          int          `json:"rating"`
	Comment         string       `json:"comment"`
	CreatedAt       time.Time    `json:"created_at"`
	Author          *UserSummary `json:"author,omitempty"`
}

type CreateReviewRequest struct {
	FarmerProfileID int64  `json:"farmer_profile_id" validate:"required"`
	Rating          int    `json:"rating" validate:"required,min=1,max=5"`
	Comment         string `json:"comment" validate:"required,max=2000"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=2000"`
}
