package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	apperrors "github.com/kieran237-code/Terrabia/internal/errors"
	"github.com/kieran237-code/Terrabia/internal/models"
	repository "github.com/kieran237-code/Terrabia/internal/repositories"
	"github.com/shopspring/decimal"
)

type CartService interface {
	GetOrCreateActiveCart(ctx context.Context, buyerID uuid.UUID) (*models.Cart, error)
	AddItem(ctx context.Context, buyerID uuid.UUID, req *models.AddCartItemRequest) (*models.AddCartItemResponse, error)
	ViewCart(ctx context.Context, buyerID uuid.UUID) (*models.CartView, error)
	UpdateItemQuantity(ctx context.Context, buyerID uuid.UUID, itemID int64, req *models.UpdateCartItemRequest) (*models.CartItem, error)
	RemoveItem(ctx context.Context, buyerID uuid.UUID, itemID int64) error
}

type cartService struct {
	repo        repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(repo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{repo: repo, productRepo: productRepo}
}

// GetOrCreateActiveCart returns the buyer's OPEN cart, creating one on first
// use. A buyer never has more than one OPEN cart.
func (s *cartService) GetOrCreateActiveCart(ctx context.Context, buyerID uuid.UUID) (*models.Cart, error) {
	cart, err := s.repo.GetOpenCartByBuyer(ctx, buyerID)
	if err == nil {
		return cart, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.DatabaseError("Failed to load cart").WithError(err)
	}

	cart = &models.Cart{
		ID:      uuid.New(),
		BuyerID: buyerID,
		Status:  models.CartStatusOpen,
		Total:   decimal.Zero,
	}

	if err := s.repo.CreateCart(ctx, cart); err != nil {
		return nil, apperrors.DatabaseError("Failed to create cart").WithError(err)
	}

	return cart, nil
}

// AddItem puts a product into the buyer's open cart. Adding a product that
// is already in the cart accumulates the quantity onto the existing line.
func (s *cartService) AddItem(ctx context.Context, buyerID uuid.UUID, req *models.AddCartItemRequest) (*models.AddCartItemResponse, error) {
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	product, err := s.productRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, apperrors.NotFoundError("Product not found").WithError(err)
	}

	cart, err := s.GetOrCreateActiveCart(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	item, created, err := s.repo.UpsertItem(ctx, cart.ID, product.ID, quantity)
	if err != nil {
		return nil, apperrors.DatabaseError("Failed to add item to cart").WithError(err)
	}

	item.Product = product

	message := "Quantity updated"
	if created {
		message = "Product added to cart"
	}

	return &models.AddCartItemResponse{
		Success: true,
		Message: message,
		Item:    item,
		Created: created,
	}, nil
}

// ViewCart projects the buyer's open cart. A buyer without an open cart gets
// a well-formed empty view rather than an error.
func (s *cartService) ViewCart(ctx context.Context, buyerID uuid.UUID) (*models.CartView, error) {
	cart, err := s.repo.GetOpenCartByBuyer(ctx, buyerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.CartView{
				Success: true,
				Message: "Cart is empty",
				CartID:  nil,
				Items:   []models.CartItem{},
				Total:   decimal.Zero,
				Count:   0,
			}, nil
		}

		return nil, apperrors.DatabaseError("Failed to load cart").WithError(err)
	}

	items, err := s.repo.ListItemsWithProducts(ctx, cart.ID)
	if err != nil {
		return nil, apperrors.DatabaseError("Failed to load cart items").WithError(err)
	}

	return &models.CartView{
		Success: true,
		CartID:  &cart.ID,
		Items:   items,
		Total:   cartTotal(items),
		Count:   len(items),
	}, nil
}

func (s *cartService) UpdateItemQuantity(ctx context.Context, buyerID uuid.UUID, itemID int64, req *models.UpdateCartItemRequest) (*models.CartItem, error) {
	item, err := s.ownedItem(ctx, buyerID, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateItemQuantity(ctx, itemID, req.Quantity); err != nil {
		return nil, apperrors.DatabaseError("Failed to update cart item").WithError(err)
	}

	item.Quantity = req.Quantity

	return item, nil
}

func (s *cartService) RemoveItem(ctx context.Context, buyerID uuid.UUID, itemID int64) error {
	if _, err := s.ownedItem(ctx, buyerID, itemID); err != nil {
		return err
	}

	if err := s.repo.DeleteItem(ctx, itemID); err != nil {
		return apperrors.DatabaseError("Failed to remove cart item").WithError(err)
	}

	return nil
}

// ownedItem checks the line belongs to the caller's open cart.
func (s *cartService) ownedItem(ctx context.Context, buyerID uuid.UUID, itemID int64) (*models.CartItem, error) {
	item, err := s.repo.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, apperrors.NotFoundError("Cart item not found").WithError(err)
	}

	cart, err := s.repo.GetOpenCartByBuyer(ctx, buyerID)
	if err != nil {
		return nil, apperrors.NotFoundError("No open cart").WithError(err)
	}

	if item.CartID != cart.ID {
		return nil, apperrors.ForbiddenError("Cart item does not belong to you")
	}

	return item, nil
}

// cartTotal sums unit price times quantity across the lines.
func cartTotal(items []models.CartItem) decimal.Decimal {
	total := decimal.Zero

	for _, item := range items {
		if item.Product == nil {
			continue
		}

		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return total
}
