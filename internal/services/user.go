package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/kieran237-code/Terrabia/internal/config"
	"github.com/kieran237-code/Terrabia/internal/errors"
	"github.com/kieran237-code/Terrabia/internal/models"
	repository "github.com/kieran237-code/Terrabia/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	Refresh(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type userService struct {
	repo          repository.UserRepository
	rateLimitRepo repository.RateLimitRepository
	security      config.Security
}

func NewUserService(repo repository.UserRepository, rateLimitRepo repository.RateLimitRepository, security config.Security) UserService {
	return &userService{
		repo:          repo,
		rateLimitRepo: rateLimitRepo,
		security:      security,
	}
}

func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	existingUser, _ := s.repo.GetUserByEmail(ctx, req.Email)
	if existingUser != nil {
		return nil, errors.DuplicateEntryError("Email already registered")
	}

	// Hash the password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.InternalError("Failed to secure password").WithError(err)
	}

	user := &models.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     req.Role,
		Active:   true,
	}

	switch req.Role {
	case models.RoleBuyer:
		user.BuyerProfile = &models.BuyerProfile{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			PhotoURL:  req.PhotoURL,
		}
	case models.RoleFarmer:
		if req.Specialty == "" {
			return nil, errors.BadRequestError("Specialty is required for farmer accounts")
		}

		user.FarmerProfile = &models.FarmerProfile{
			Specialty: models.Specialty(req.Specialty),
			PhotoURL:  req.PhotoURL,
		}
	default:
		return nil, errors.BadRequestError("Role must be FARMER or BUYER")
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, errors.DatabaseError("Failed to create user").WithError(err)
	}

	return user, nil
}

func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	// check rate limit
	allowed, remaining, retryAfter, err := s.rateLimitRepo.CheckLoginRateLimit(ctx, req.Email)
	if err != nil {
		return nil, errors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		return &models.LoginResponse{
			Success:    false,
			Message:    "Too many login attempts. Please try again later.",
			RetryAfter: retryAfter,
		}, nil
	}

	// Retrieve the user from the DB and compare the passwords
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return &models.LoginResponse{
			Success:        false,
			Message:        "Invalid email or password",
			RemainingTries: remaining,
		}, nil
	}

	if !user.Active {
		return &models.LoginResponse{
			Success: false,
			Message: "Account is deactivated",
		}, nil
	}

	accessToken, expiresAt, err := s.signToken(user, s.security.AccessTTL)
	if err != nil {
		return nil, errors.InternalError("Failed to generate authentication token").WithError(err)
	}

	refreshToken, _, err := s.signToken(user, s.security.RefreshTTL)
	if err != nil {
		return nil, errors.InternalError("Failed to generate refresh token").WithError(err)
	}

	return &models.LoginResponse{
		Success:      true,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(time.Until(expiresAt).Seconds()),
		User: &models.UserSummary{
			ID:    user.ID,
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}

// Refresh exchanges a valid refresh token for a fresh access token.
func (s *userService) Refresh(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error) {
	claims := &models.Claims{}

	token, err := jwt.ParseWithClaims(req.RefreshToken, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.BadRequestError("unexpected signing method")
		}

		return []byte(s.security.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.UnauthorizedError("Invalid or expired refresh token")
	}

	// Re-check the account so a deactivated user cannot keep minting tokens.
	user, err := s.repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, errors.UnauthorizedError("Invalid or expired refresh token")
	}

	if !user.Active {
		return nil, errors.UnauthorizedError("Account is deactivated")
	}

	accessToken, expiresAt, err := s.signToken(user, s.security.AccessTTL)
	if err != nil {
		return nil, errors.InternalError("Failed to generate authentication token").WithError(err)
	}

	return &models.RefreshResponse{
		AccessToken: accessToken,
		ExpiresIn:   int(time.Until(expiresAt).Seconds()),
	}, nil
}

func (s *userService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("User not found").WithError(err)
	}

	return user, nil
}

func (s *userService) signToken(user *models.User, ttl time.Duration) (string, time.Time, error) {
	expiresAt := time.Now().Add(ttl)

	claims := &models.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.security.JWTKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}
