package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CartStatus string

const (
	CartStatusOpen      CartStatus = "OPEN"
	CartStatusConfirmed CartStatus = "CONFIRMED"
	// Modeled for parity with the schema; no operation transitions into it yet.
	CartStatusCancelled CartStatus = "CANCELLED"
)

type Cart struct {
	ID        uuid.UUID       `json:"id"`
	BuyerID   uuid.UUID       `json:"buyer_id"`
	Status    CartStatus      `json:"status"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type CartItem struct {
	ID        int64     `json:"id"`
	CartID    uuid.UUID `json:"cart_id"`
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	Product   *Product  `json:"product,omitempty"`
}

type AddCartItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int   `json:"quantity" validate:"omitempty,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// AddCartItemResponse distinguishes a fresh item from an accumulated one.
type AddCartItemResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Item    *CartItem `json:"item"`
	Created bool      `json:"created"`
}

// CartView is the read-time projection of the open cart; Total is recomputed
// from item prices on every read and may differ from the cached Cart.Total.
type CartView struct {
	Success bool            `json:"success"`
	CartID  *uuid.UUID      `json:"cart_id"`
	Items   []CartItem      `json:"items"`
	Total   decimal.Decimal `json:"total"`
	Count   int             `json:"count"`
	Message string          `json:"message,omitempty"`
}

type CreateOrderRequest struct {
	AgencyID int64 `json:"delivery_agency" validate:"required"`
}

type AgencySnapshot struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Locality string `json:"locality"`
}

type OrderConfirmation struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	OrderID uuid.UUID      `json:"id"`
	Total   string         `json:"total"`
	Agency  AgencySnapshot `json:"agency"`
}
