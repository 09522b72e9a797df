package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/kieran237-code/Terrabia/internal/api/handlers"
	appErrors "github.com/kieran237-code/Terrabia/internal/errors"
	"github.com/kieran237-code/Terrabia/internal/models"
	"github.com/kieran237-code/Terrabia/internal/services/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderHandler_CreateOrder(t *testing.T) {
	t.Run("Success Returns 201 With Confirmation", func(t *testing.T) {
		// Arrange
		mockService := &mocks.MockOrderService{}
		handler := handlers.NewOrderHandler(mockService)
		claims := buyerClaims()
		orderID := uuid.New()

		mockService.On("CreateOrder", mock.Anything, claims.UserID, mock.MatchedBy(func(req *models.CreateOrderRequest) bool {
			return req.AgencyID == 3
		})).Return(&models.OrderConfirmation{
			Success: true,
			Message: "Order created successfully",
			OrderID: orderID,
			Total:   "4500.00",
			Agency:  models.AgencySnapshot{ID: 3, Name: "Express Livraison", Locality: "Yopougon"},
		}, nil).Once()

		req := authenticatedRequest(http.MethodPost, "/api/v1/orders", []byte(`{"delivery_agency": 3}`), claims)
		rr := httptest.NewRecorder()

		// Act
		handler.CreateOrder().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var confirmation models.OrderConfirmation
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &confirmation))
		assert.True(t, confirmation.Success)
		assert.Equal(t, "Order created successfully", confirmation.Message)
		assert.Equal(t, orderID, confirmation.OrderID)
		assert.Equal(t, "4500.00", confirmation.Total)
		assert.Equal(t, "Express Livraison", confirmation.Agency.Name)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - No Open Cart Returns 404", func(t *testing.T) {
		// Arrange
		mockService := &mocks.MockOrderService{}
		handler := handlers.NewOrderHandler(mockService)
		claims := buyerClaims()

		mockService.On("CreateOrder", mock.Anything, claims.UserID, mock.AnythingOfType("*models.CreateOrderRequest")).
			Return(nil, appErrors.NotFoundError("No open cart")).Once()

		req := authenticatedRequest(http.MethodPost, "/api/v1/orders", []byte(`{"delivery_agency": 3}`), claims)
		rr := httptest.NewRecorder()

		// Act
		handler.CreateOrder().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)

		var body struct {
			Success bool `json:"success"`
			Error   struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "No open cart", body.Error.Message)
	})

	t.Run("Failure - Empty Cart Returns 400", func(t *testing.T) {
		// Arrange
		mockService := &mocks.MockOrderService{}
		handler := handlers.NewOrderHandler(mockService)
		claims := buyerClaims()

		mockService.On("CreateOrder", mock.Anything, claims.UserID, mock.AnythingOfType("*models.CreateOrderRequest")).
			Return(nil, appErrors.BadRequestError("Cart is empty")).Once()

		req := authenticatedRequest(http.MethodPost, "/api/v1/orders", []byte(`{"delivery_agency": 3}`), claims)
		rr := httptest.NewRecorder()

		// Act
		handler.CreateOrder().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Missing Agency Fails Validation", func(t *testing.T) {
		// Arrange
		mockService := &mocks.MockOrderService{}
		handler := handlers.NewOrderHandler(mockService)

		req := authenticatedRequest(http.MethodPost, "/api/v1/orders", []byte(`{}`), buyerClaims())
		rr := httptest.NewRecorder()

		// Act
		handler.CreateOrder().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - No Claims Returns 401", func(t *testing.T) {
		// Arrange
		mockService := &mocks.MockOrderService{}
		handler := handlers.NewOrderHandler(mockService)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", nil)
		rr := httptest.NewRecorder()

		// Act
		handler.CreateOrder().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockService.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
	})
}
