package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleFarmer Role = "FARMER"
	RoleBuyer  Role = "BUYER"
)

type Specialty string

const (
	SpecialtyFruit     Specialty = "FRUIT"
	SpecialtyTuber     Specialty = "TUBER"
	SpecialtyVegetable Specialty = "VEGETABLE"
)

type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Populated for the role the user registered with, nil otherwise.
	BuyerProfile  *BuyerProfile  `json:"buyer_profile,omitempty"`
	FarmerProfile *FarmerProfile `json:"farmer_profile,omitempty"`
}

type BuyerProfile struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	PhotoURL  string    `json:"photo_url,omitempty"`
}

type FarmerProfile struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Specialty Specialty `json:"specialty"`
	PhotoURL  string    `json:"photo_url,omitempty"`
}

// for registration; profile fields depend on the requested role
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Role      Role   `json:"role" validate:"required,oneof=FARMER BUYER"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Specialty string `json:"specialty,omitempty" validate:"omitempty,oneof=FRUIT TUBER VEGETABLE"`
	PhotoURL  string `json:"photo_url,omitempty" validate:"omitempty,url"`
}

// for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  Role      `json:"role"`
}

// for login response
type LoginResponse struct {
	Success        bool         `json:"success"`
	AccessToken    string       `json:"access,omitempty"`
	RefreshToken   string       `json:"refresh,omitempty"`
	ExpiresIn      int          `json:"expires_in,omitempty"`
	User           *UserSummary `json:"user,omitempty"`
	RemainingTries int          `json:"remaining_tries,omitempty"`
	RetryAfter     int          `json:"retry_after,omitempty"`
	Message        string       `json:"message,omitempty"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh" validate:"required"`
}

type RefreshResponse struct {
	AccessToken string `json:"access"`
	ExpiresIn   int    `json:"expires_in"`
}

// JWT claims structure
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   Role      `json:"role"`
	jwt.RegisteredClaims
}
