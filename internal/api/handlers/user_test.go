package handlers_test

import (
	"bytes"
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

func TestUserHandler_Register(t *testing.T) {
	t.Run("Success Returns 201 Envelope", func(t *testing.T) {
		// Arrange
		mockService := &mocks.MockUserService{}
		handler := handlers.NewUserHandler(mockService)
		userID := uuid.New()

		mockService.On("Register", mock.Anything, mock.MatchedBy(func(req *models.RegisterRequest) bool {
			return req.Email == "ama@terrabia.ci" && req.Role == models.RoleBuyer
		})).Return(&models.User{ID: userID, Email: "ama@terrabia.ci", Role: models.RoleBuyer, Active: true}, nil).Once()

		body := []byte(`{"email": "ama@terrabia.ci", "password": "secret123", "role": "BUYER", "first_name": "Ama", "last_name": "Kone"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		// Act
		handler.Register().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var envelope struct {
			Success bool        `json:"success"`
			Data    models.User `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
		assert.Equal(t, userID, envelope.Data.ID)
		assert.Equal(t, models.RoleBuyer, envelope.Data.Role)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Invalid Role Fails Validation", func(t *testing.T) {
		// Arrange
		mockService := &mocks.MockUserService{}
		handler := handlers.NewUserHandler(mockService)

		body := []byte(`{"email": "ama@terrabia.ci", "password": "secret123", "role": "ADMIN"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		// Act
		handler.Register().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Duplicate Email Returns 409", func(t *testing.T) {
		// Arrange
		mockService := &mocks.MockUserService{}
		handler := handlers.NewUserHandler(mockService)

		mockService.On("Register", mock.Anything, mock.AnythingOfType("*models.RegisterRequest")).
			Return(nil, appErrors.DuplicateEntryError("Email already registered")).Once()

		body := []byte(`{"email": "ama@terrabia.ci", "password": "secret123", "role": "BUYER"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		// Act
		handler.Register().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestUserHandler_Login(t *testing.T) {
	t.Run("Success Returns Tokens", func(t *testing.T) {
		// Arrange
		mockService := &mocks.MockUserService{}
		handler := handlers.NewUserHandler(mockService)
		userID := uuid.New()

		mockService.On("Login", mock.Anything, mock.MatchedBy(func(req *models.LoginRequest) bool {
			return req.Email == "ama@terrabia.ci"
		})).Return(&models.LoginResponse{
			Success:      true,
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			ExpiresIn:    900,
			User:         &models.UserSummary{ID: userID, Email: "ama@terrabia.ci", Role: models.RoleBuyer},
		}, nil).Once()

		body := []byte(`{"email": "ama@terrabia.ci", "password": "secret123"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		// Act
		handler.Login().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp models.LoginResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "access-token", resp.AccessToken)
		assert.Equal(t, "refresh-token", resp.RefreshToken)
		require.NotNil(t, resp.User)
		assert.Equal(t, userID, resp.User.ID)
		mockService.AssertExpectations(t)
	})

	t.Run("Rejected - Bad Credentials Return 401 With Remaining Tries", func(t *testing.T) {
		// Arrange
		mockService := &mocks.MockUserService{}
		handler := handlers.NewUserHandler(mockService)

		mockService.On("Login", mock.Anything, mock.AnythingOfType("*models.LoginRequest")).
			Return(&models.LoginResponse{
				Success:        false,
				Message:        "Invalid email or password",
				RemainingTries: 3,
			}, nil).Once()

		body := []byte(`{"email": "ama@terrabia.ci", "password": "wrong"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		// Act
		handler.Login().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)

		var resp models.LoginResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "Invalid email or password", resp.Message)
		assert.Equal(t, 3, resp.RemainingTries)
	})

	t.Run("Rejected - Rate Limited Returns 429", func(t *testing.T) {
		// Arrange
		mockService := &mocks.MockUserService{}
		handler := handlers.NewUserHandler(mockService)

		mockService.On("Login", mock.Anything, mock.AnythingOfType("*models.LoginRequest")).
			Return(&models.LoginResponse{
				Success:    false,
				Message:    "Too many login attempts",
				RetryAfter: 120,
			}, nil).Once()

		body := []byte(`{"email": "ama@terrabia.ci", "password": "secret123"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		// Act
		handler.Login().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)

		var resp models.LoginResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 120, resp.RetryAfter)
	})
}

func TestUserHandler_Profile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockService := &mocks.MockUserService{}
		handler := handlers.NewUserHandler(mockService)
		claims := buyerClaims()

		mockService.On("GetUserByID", mock.Anything, claims.UserID).
			Return(&models.User{ID: claims.UserID, Email: claims.Email, Role: models.RoleBuyer, Active: true}, nil).Once()

		req := authenticatedRequest(http.MethodGet, "/api/v1/users/me", nil, claims)
		rr := httptest.NewRecorder()

		// Act
		handler.Profile().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var envelope struct {
			Success bool        `json:"success"`
			Data    models.User `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
		assert.Equal(t, claims.UserID, envelope.Data.ID)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - No Claims Returns 401", func(t *testing.T) {
		// Arrange
		mockService := &mocks.MockUserService{}
		handler := handlers.NewUserHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
		rr := httptest.NewRecorder()

		// Act
		handler.Profile().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockService.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything)
	})
}
