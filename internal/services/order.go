package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/kieran237-code/Terrabia/internal/api/middleware"
	apperrors "github.com/kieran237-code/Terrabia/internal/errors"
	"github.com/kieran237-code/Terrabia/internal/models"
	repository "github.com/kieran237-code/Terrabia/internal/repositories"
	"github.com/kieran237-code/Terrabia/pkg/sendgrid"
)

type OrderService interface {
	CreateOrder(ctx context.Context, buyerID uuid.UUID, req *models.CreateOrderRequest) (*models.OrderConfirmation, error)
}

type orderService struct {
	cartRepo   repository.CartRepository
	agencyRepo repository.AgencyRepository
	userRepo   repository.UserRepository
	email      sendgrid.EmailService
}

func NewOrderService(cartRepo repository.CartRepository, agencyRepo repository.AgencyRepository, userRepo repository.UserRepository, email sendgrid.EmailService) OrderService {
	return &orderService{
		cartRepo:   cartRepo,
		agencyRepo: agencyRepo,
		userRepo:   userRepo,
		email:      email,
	}
}

// CreateOrder turns the buyer's open cart into an order against a delivery
// agency. Preconditions are checked in a fixed order: open cart exists, cart
// is not empty, agency exists. A cart that fails any of them stays OPEN.
func (s *orderService) CreateOrder(ctx context.Context, buyerID uuid.UUID, req *models.CreateOrderRequest) (*models.OrderConfirmation, error) {
	logger := middleware.LoggerFromContext(ctx)

	cart, err := s.cartRepo.GetOpenCartByBuyer(ctx, buyerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundError("No open cart")
		}

		return nil, apperrors.DatabaseError("Failed to load cart").WithError(err)
	}

	items, err := s.cartRepo.ListItemsWithProducts(ctx, cart.ID)
	if err != nil {
		return nil, apperrors.DatabaseError("Failed to load cart items").WithError(err)
	}

	if len(items) == 0 {
		return nil, apperrors.BadRequestError("Cart is empty")
	}

	agency, err := s.agencyRepo.GetAgencyByID(ctx, req.AgencyID)
	if err != nil {
		return nil, apperrors.NotFoundError("Agency not found").WithError(err)
	}

	total := cartTotal(items)

	// The status guard in ConfirmCart makes the transition single-shot.
	if err := s.cartRepo.ConfirmCart(ctx, cart.ID, total); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundError("No open cart")
		}

		return nil, apperrors.DatabaseError("Failed to confirm order").WithError(err)
	}

	confirmation := &models.OrderConfirmation{
		Success: true,
		Message: "Order created successfully",
		OrderID: cart.ID,
		Total:   total.StringFixed(2),
		Agency: models.AgencySnapshot{
			ID:       agency.ID,
			Name:     agency.Name,
			Locality: agency.Locality,
		},
	}

	s.sendConfirmationEmail(ctx, buyerID, confirmation, logger)

	return confirmation, nil
}

// Best effort only: a failed email never fails the order.
func (s *orderService) sendConfirmationEmail(ctx context.Context, buyerID uuid.UUID, confirmation *models.OrderConfirmation, logger *slog.Logger) {
	if s.email == nil {
		return
	}

	buyer, err := s.userRepo.GetUserByID(ctx, buyerID)
	if err != nil {
		logger.Warn("Could not load buyer for confirmation email", slog.Any("error", err))

		return
	}

	req := &models.EmailNotificationRequest{
		To:      buyer.Email,
		Subject: "Your Terrabia order is confirmed",
		Content: fmt.Sprintf("Your order %s for a total of %s has been placed with %s (%s).",
			confirmation.OrderID, confirmation.Total, confirmation.Agency.Name, confirmation.Agency.Locality),
	}

	if err := s.email.Send(ctx, req); err != nil {
		logger.Warn("Failed to send order confirmation email", slog.Any("error", err))
	}
}
