package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/kieran237-code/Terrabia/internal/models"
	"github.com/kieran237-code/Terrabia/internal/utils"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetFarmerProfileByID(ctx context.Context, id int64) (*models.FarmerProfile, error)
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepo(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

// CreateUser inserts the user row and its role profile in one transaction.
func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO users(id, email, password, role, active, created_at, updated_at)
		VALUES($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at`

	err = tx.QueryRowContext(dbCtx, query, user.ID, user.Email, user.Password, user.Role, user.Active).
		Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return err
	}

	switch {
	case user.BuyerProfile != nil:
		profileQuery := `
			INSERT INTO buyer_profiles(user_id, first_name, last_name, photo_url)
			VALUES($1, $2, $3, $4)
			RETURNING id`

		p := user.BuyerProfile
		p.UserID = user.ID

		if err := tx.QueryRowContext(dbCtx, profileQuery, p.UserID, p.FirstName, p.LastName, p.PhotoURL).Scan(&p.ID); err != nil {
			return fmt.Errorf("failed to create buyer profile: %w", err)
		}
	case user.FarmerProfile != nil:
		profileQuery := `
			INSERT INTO farmer_profiles(user_id, specialty, photo_url)
			VALUES($1, $2, $3)
			RETURNING id`

		p := user.FarmerProfile
		p.UserID = user.ID

		if err := tx.QueryRowContext(dbCtx, profileQuery, p.UserID, p.Specialty, p.PhotoURL).Scan(&p.ID); err != nil {
			return fmt.Errorf("failed to create farmer profile: %w", err)
		}
	}

	return tx.Commit()
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	user := &models.User{}
	query := `SELECT id, email, password, role, active, created_at, updated_at
			  FROM users
			  WHERE email = $1`

	err := r.DB.QueryRowContext(dbCtx, query, email).
		Scan(&user.ID, &user.Email, &user.Password, &user.Role, &user.Active, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	user := &models.User{}

	query := `
		SELECT id, email, password, role, active, created_at, updated_at
		FROM users
		WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).
		Scan(&user.ID, &user.Email, &user.Password, &user.Role, &user.Active, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}

	switch user.Role {
	case models.RoleBuyer:
		p := &models.BuyerProfile{}
		profileQuery := `SELECT id, user_id, first_name, last_name, photo_url FROM buyer_profiles WHERE user_id = $1`

		err := r.DB.QueryRowContext(dbCtx, profileQuery, id).Scan(&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.PhotoURL)
		if err != nil && err != sql.ErrNoRows {
			return nil, fmt.Errorf("failed to load buyer profile: %w", err)
		}

		if err == nil {
			user.BuyerProfile = p
		}
	case models.RoleFarmer:
		p := &models.FarmerProfile{}
		profileQuery := `SELECT id, user_id, specialty, photo_url FROM farmer_profiles WHERE user_id = $1`

		err := r.DB.QueryRowContext(dbCtx, profileQuery, id).Scan(&p.ID, &p.UserID, &p.Specialty, &p.PhotoURL)
		if err != nil && err != sql.ErrNoRows {
			return nil, fmt.Errorf("failed to load farmer profile: %w", err)
		}

		if err == nil {
			user.FarmerProfile = p
		}
	}

	return user, nil
}

func (r *userRepository) GetFarmerProfileByID(ctx context.Context, id int64) (*models.FarmerProfile, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	p := &models.FarmerProfile{}

	query := `SELECT id, user_id, specialty, photo_url FROM farmer_profiles WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&p.ID, &p.UserID, &p.Specialty, &p.PhotoURL)
	if err != nil {
		return nil, err
	}

	return p, nil
}
