package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Product struct {
	ID         int64           `json:"id"`
	CategoryID int64           `json:"category_id"`
	FarmerID   uuid.UUID       `json:"farmer_id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Condition  string          `json:"condition"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	Category   *Category       `json:"category,omitempty"`
	Photos     []ProductPhoto  `json:"photos,omitempty"`
}

type ProductPhoto struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description,omitempty"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description,omitempty"`
}

type CreateProductRequest struct {
	CategoryID int64           `json:"category_id" validate:"required"`
	Name       string          `json:"name" validate:"required,min=2,max=100"`
	Quantity   int             `json:"quantity" validate:"gte=0"`
	Price      decimal.Decimal `json:"price" validate:"required"`
	Condition  string          `json:"condition" validate:"required,max=50"`
	PhotoURLs  []string        `json:"photos,omitempty" validate:"omitempty,dive,url"`
}

type UpdateProductRequest struct {
	CategoryID *int64           `json:"category_id,omitempty"`
	Name       *string          `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Quantity   *int             `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Price      *decimal.Decimal `json:"price,omitempty"`
	Condition  *string          `json:"condition,omitempty" validate:"omitempty,max=50"`
}

// AddPhotoRequest carries the photo URL; the target product comes from the
// request path.
type AddPhotoRequest struct {
	ProductID int64  `json:"-"`
	ImageURL  string `json:"image_url" validate:"required,url"`
}
