package models

import (
	"time"

	"github.com/google/uuid"
)

type DeliveryAgency struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Locality  string    `json:"locality"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateAgencyRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=150"`
	Phone    string `json:"phone" validate:"required,max=20"`
	Locality string `json:"locality" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
}

type UpdateAgencyRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2,max=150"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Locality *string `json:"locality,omitempty" validate:"omitempty,max=100"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
}

type AgencyContactResponse struct {
	Message      string `json:"message"`
	WhatsAppLink string `json:"whatsapp_link"`
}

type ContactMode string

const (
	ContactModeCall     ContactMode = "call"
	ContactModeWhatsApp ContactMode = "whatsapp"
)

type ContactRequest struct {
	UserID uuid.UUID   `json:"user_id" validate:"required"`
	Mode   ContactMode `json:"mode" validate:"required,oneof=call whatsapp"`
}

type ContactResponse struct {
	Message string `json:"message"`
}
