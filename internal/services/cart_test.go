package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	appErrors "github.com/kieran237-code/Terrabia/internal/errors"
	"github.com/kieran237-code/Terrabia/internal/models"
	repository "github.com/kieran237-code/Terrabia/internal/repositories"
	service "github.com/kieran237-code/Terrabia/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateActiveCart(t *testing.T) {
	ctx := context.Background()
	buyerID := uuid.New()

	t.Run("Success - Existing Open Cart", func(t *testing.T) {
		// Arrange
		mockRepo := repository.NewMockCartRepository()
		mockProductRepo := repository.NewMockProductRepository()
		cartService := service.NewCartService(mockRepo, mockProductRepo)

		existing := &models.Cart{ID: uuid.New(), BuyerID: buyerID, Status: models.CartStatusOpen}
		mockRepo.On("GetOpenCartByBuyer", ctx, buyerID).Return(existing, nil).Once()

		// Act
		cart, err := cartService.GetOrCreateActiveCart(ctx, buyerID)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, existing.ID, cart.ID)
		mockRepo.AssertNotCalled(t, "CreateCart", mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - Creates Cart On First Use", func(t *testing.T) {
		// Arrange
		mockRepo := repository.NewMockCartRepository()
		mockProductRepo := repository.NewMockProductRepository()
		cartService := service.NewCartService(mockRepo, mockProductRepo)

		mockRepo.On("GetOpenCartByBuyer", ctx, buyerID).Return(nil, sql.ErrNoRows).Once()
		mockRepo.On("CreateCart", ctx, mock.AnythingOfType("*models.Cart")).Return(nil).Once()

		// Act
		cart, err := cartService.GetOrCreateActiveCart(ctx, buyerID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, buyerID, cart.BuyerID)
		assert.Equal(t, models.CartStatusOpen, cart.Status)
		assert.NotEqual(t, uuid.Nil, cart.ID)
		assert.True(t, cart.Total.IsZero())
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Database Error On Lookup", func(t *testing.T) {
		// Arrange
		mockRepo := repository.NewMockCartRepository()
		mockProductRepo := repository.NewMockProductRepository()
		cartService := service.NewCartService(mockRepo, mockProductRepo)

		mockRepo.On("GetOpenCartByBuyer", ctx, buyerID).Return(nil, errors.New("connection refused")).Once()

		// Act
		cart, err := cartService.GetOrCreateActiveCart(ctx, buyerID)

		// Assert
		assert.Nil(t, cart)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
		mockRepo.AssertExpectations(t)
	})
}

func TestAddItem(t *testing.T) {
	ctx := context.Background()
	buyerID := uuid.New()
	openCart := &models.Cart{ID: uuid.New(), BuyerID: buyerID, Status: models.CartStatusOpen}
	product := &models.Product{
		ID:    42,
		Name:  "Plantain",
		Price: decimal.RequireFromString("1500.50"),
	}

	t.Run("Success - New Line Created", func(t *testing.T) {
		// Arrange
		mockRepo := repository.NewMockCartRepository()
		mockProductRepo := repository.NewMockProductRepository()
		cartService := service.NewCartService(mockRepo, mockProductRepo)

		mockProductRepo.On("GetProductByID", ctx, int64(42)).Return(product, nil).Once()
		mockRepo.On("GetOpenCartByBuyer", ctx, buyerID).Return(openCart, nil).Once()
		mockRepo.On("UpsertItem", ctx, openCart.ID, int64(42), 2).
			Return(&models.CartItem{ID: 1, CartID: openCart.ID, ProductID: 42, Quantity: 2}, true, nil).Once()

		// Act
		resp, err := cartService.AddItem(ctx, buyerID, &models.AddCartItemRequest{ProductID: 42, Quantity: 2})

		// Assert
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.True(t, resp.Created)
		assert.Equal(t, "Product added to cart", resp.Message)
		assert.Equal(t, 2, resp.Item.Quantity)
		assert.Equal(t, product, resp.Item.Product)
		mockRepo.AssertExpectations(t)
		mockProductRepo.AssertExpectations(t)
	})

	t.Run("Success - Quantity Accumulates Onto Existing Line", func(t *testing.T) {
		// Arrange: line already holds 2, adding 3 more
		mockRepo := repository.NewMockCartRepository()
		mockProductRepo := repository.NewMockProductRepository()
		cartService := service.NewCartService(mockRepo, mockProductRepo)

		mockProductRepo.On("GetProductByID", ctx, int64(42)).Return(product, nil).Once()
		mockRepo.On("GetOpenCartByBuyer", ctx, buyerID).Return(openCart, nil).Once()
		mockRepo.On("UpsertItem", ctx, openCart.ID, int64(42), 3).
			Return(&models.CartItem{ID: 1, CartID: openCart.ID, ProductID: 42, Quantity: 5}, false, nil).Once()

		// Act
		resp, err := cartService.AddItem(ctx, buyerID, &models.AddCartItemRequest{ProductID: 42, Quantity: 3})

		// Assert
		require.NoError(t, err)
		assert.False(t, resp.Created)
		assert.Equal(t, "Quantity updated", resp.Message)
		assert.Equal(t, 5, resp.Item.Quantity)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - Quantity Defaults To One", func(t *testing.T) {
		// Arrange
		mockRepo := repository.NewMockCartRepository()
		mockProductRepo := repository.NewMockProductRepository()
		cartService := service.NewCartService(mockRepo, mockProductRepo)

		mockProductRepo.On("GetProductByID", ctx, int64(42)).Return(product, nil).Once()
		mockRepo.On("GetOpenCartByBuyer", ctx, buyerID).Return(openCart, nil).Once()
		mockRepo.On("UpsertItem", ctx, openCart.ID, int64(42), 1).
			Return(&models.CartItem{ID: 1, CartID: openCart.ID, ProductID: 42, Quantity: 1}, true, nil).Once()

		// Act
		resp, err := cartService.AddItem(ctx, buyerID, &models.AddCartItemRequest{ProductID: 42})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Item.Quantity)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Product Not Found", func(t *testing.T) {
		// Arrange
		mockRepo := repository.NewMockCartRepository()
		mockProductRepo := repository.NewMockProductRepository()
		cartService := service.NewCartService(mockRepo, mockProductRepo)

		mockProductRepo.On("GetProductByID", ctx, int64(999)).Return(nil, sql.ErrNoRows).Once()

		// Act
		resp, err := cartService.AddItem(ctx, buyerID, &models.AddCartItemRequest{ProductID: 999, Quantity: 1})

		// Assert
		assert.Nil(t, resp)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
		mockRepo.AssertNotCalled(t, "UpsertItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestViewCart(t *testing.T) {
	ctx := context.Background()
	buyerID := uuid.New()

	t.Run("Success - Empty View When No Open Cart", func(t *testing.T) {
		// Arrange
		mockRepo := repository.NewMockCartRepository()
		mockProductRepo := repository.NewMockProductRepository()
		cartService := service.NewCartService(mockRepo, mockProductRepo)

		mockRepo.On("GetOpenCartByBuyer", ctx, buyerID).Return(nil, sql.ErrNoRows).Once()

		// Act
		view, err := cartService.ViewCart(ctx, buyerID)

		// Assert
		require.NoError(t, err)
		assert.True(t, view.Success)
		assert.Nil(t, view.CartID)
		assert.Empty(t, view.Items)
		assert.True(t, view.Total.IsZero())
		assert.Equal(t, 0, view.Count)
		assert.Equal(t, "Cart is empty", view.Message)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - Total Is Recomputed From Item Prices", func(t *testing.T) {
		// Arrange: 3 x 1500.50 should come out at 4501.50
		mockRepo := repository.NewMockCartRepository()
		mockProductRepo := repository.NewMockProductRepository()
		cartService := service.NewCartService(mockRepo, mockProductRepo)

		cart := &models.Cart{ID: uuid.New(), BuyerID: buyerID, Status: models.CartStatusOpen}
		items := []models.CartItem{
			{
				ID: 1, CartID: cart.ID, ProductID: 42, Quantity: 3,
				Product: &models.Product{ID: 42, Price: decimal.RequireFromString("1500.50")},
			},
		}

		mockRepo.On("GetOpenCartByBuyer", ctx, buyerID).Return(cart, nil).Once()
		mockRepo.On("ListItemsWithProducts", ctx, cart.ID).Return(items, nil).Once()

		// Act
		view, err := cartService.ViewCart(ctx, buyerID)

		// Assert
		require.NoError(t, err)
		require.NotNil(t, view.CartID)
		assert.Equal(t, cart.ID, *view.CartID)
		assert.Equal(t, 1, view.Count)
		assert.Equal(t, "4501.50", view.Total.StringFixed(2))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - Total Sums Across Distinct Products", func(t *testing.T) {
		// Arrange: 2 x 1000.00 + 1 x 2500.00 should come out at 4500.00
		mockRepo := repository.NewMockCartRepository()
		mockProductRepo := repository.NewMockProductRepository()
		cartService := service.NewCartService(mockRepo, mockProductRepo)

		cart := &models.Cart{ID: uuid.New(), BuyerID: buyerID, Status: models.CartStatusOpen}
		items := []models.CartItem{
			{
				ID: 1, CartID: cart.ID, ProductID: 42, Quantity: 2,
				Product: &models.Product{ID: 42, Price: decimal.RequireFromString("1000.00")},
			},
			{
				ID: 2, CartID: cart.ID, ProductID: 43, Quantity: 1,
				Product: &models.Product{ID: 43, Price: decimal.RequireFromString("2500.00")},
			},
		}

		mockRepo.On("GetOpenCartByBuyer", ctx, buyerID).Return(cart, nil).Once()
		mockRepo.On("ListItemsWithProducts", ctx, cart.ID).Return(items, nil).Once()

		// Act
		view, err := cartService.ViewCart(ctx, buyerID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 2, view.Count)
		assert.Equal(t, "4500.00", view.Total.StringFixed(2))
		mockRepo.AssertExpectations(t)
	})
}

func TestUpdateItemQuantity(t *testing.T) {
	ctx := context.Background()
	buyerID := uuid.New()
	cart := &models.Cart{ID: uuid.New(), BuyerID: buyerID, Status: models.CartStatusOpen}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockRepo := repository.NewMockCartRepository()
		mockProductRepo := repository.NewMockProductRepository()
		cartService := service.NewCartService(mockRepo, mockProductRepo)

		item := &models.CartItem{ID: 7, CartID: cart.ID, ProductID: 42, Quantity: 1}
		mockRepo.On("GetItemByID", ctx, int64(7)).Return(item, nil).Once()
		mockRepo.On("GetOpenCartByBuyer", ctx, buyerID).Return(cart, nil).Once()
		mockRepo.On("UpdateItemQuantity", ctx, int64(7), 4).Return(nil).Once()

		// Act
		updated, err := cartService.UpdateItemQuantity(ctx, buyerID, 7, &models.UpdateCartItemRequest{Quantity: 4})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 4, updated.Quantity)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Line Belongs To Another Cart", func(t *testing.T) {
		// Arrange
		mockRepo := repository.NewMockCartRepository()
		mockProductRepo := repository.NewMockProductRepository()
		cartService := service.NewCartService(mockRepo, mockProductRepo)

		foreignItem := &models.CartItem{ID: 7, CartID: uuid.New(), ProductID: 42, Quantity: 1}
		mockRepo.On("GetItemByID", ctx, int64(7)).Return(foreignItem, nil).Once()
		mockRepo.On("GetOpenCartByBuyer", ctx, buyerID).Return(cart, nil).Once()

		// Act
		updated, err := cartService.UpdateItemQuantity(ctx, buyerID, 7, &models.UpdateCartItemRequest{Quantity: 4})

		// Assert
		assert.Nil(t, updated)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeForbidden, appErr.Code)
		mockRepo.AssertNotCalled(t, "UpdateItemQuantity", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	buyerID := uuid.New()
	cart := &models.Cart{ID: uuid.New(), BuyerID: buyerID, Status: models.CartStatusOpen}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockRepo := repository.NewMockCartRepository()
		mockProductRepo := repository.NewMockProductRepository()
		cartService := service.NewCartService(mockRepo, mockProductRepo)

		item := &models.CartItem{ID: 7, CartID: cart.ID, ProductID: 42, Quantity: 1}
		mockRepo.On("GetItemByID", ctx, int64(7)).Return(item, nil).Once()
		mockRepo.On("GetOpenCartByBuyer", ctx, buyerID).Return(cart, nil).Once()
		mockRepo.On("DeleteItem", ctx, int64(7)).Return(nil).Once()

		// Act
		err := cartService.RemoveItem(ctx, buyerID, 7)

		// Assert
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Item Not Found", func(t *testing.T) {
		// Arrange
		mockRepo := repository.NewMockCartRepository()
		mockProductRepo := repository.NewMockProductRepository()
		cartService := service.NewCartService(mockRepo, mockProductRepo)

		mockRepo.On("GetItemByID", ctx, int64(7)).Return(nil, sql.ErrNoRows).Once()

		// Act
		err := cartService.RemoveItem(ctx, buyerID, 7)

		// Assert
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
		mockRepo.AssertNotCalled(t, "DeleteItem", mock.Anything, mock.Anything)
	})
}
