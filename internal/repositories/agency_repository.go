package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kieran237-code/Terrabia/internal/models"
	"github.com/kieran237-code/Terrabia/internal/utils"
)

type AgencyRepository interface {
	CreateAgency(ctx context.Context, agency *models.DeliveryAgency) error
	GetAgencyByID(ctx context.Context, id int64) (*models.DeliveryAgency, error)
	ListAgencies(ctx context.Context, page, size int) ([]models.DeliveryAgency, int, error)
	UpdateAgency(ctx context.Context, agency *models.DeliveryAgency) error
	DeleteAgency(ctx context.Context, id int64) error
}

type agencyRepository struct {
	DB *sql.DB
}

func NewAgencyRepo(db *sql.DB) AgencyRepository {
	return &agencyRepository{DB: db}
}

func (r *agencyRepository) CreateAgency(ctx context.Context, agency *models.DeliveryAgency) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO delivery_agencies(name, phone, locality, email, created_at, updated_at)
		VALUES($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query, agency.Name, agency.Phone, agency.Locality, agency.Email).
		Scan(&agency.ID, &agency.CreatedAt, &agency.UpdatedAt)
}

func (r *agencyRepository) GetAgencyByID(ctx context.Context, id int64) (*models.DeliveryAgency, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	agency := &models.DeliveryAgency{}

	query := `SELECT id, name, phone, locality, email, created_at, updated_at
			  FROM delivery_agencies
			  WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).
		Scan(&agency.ID, &agency.Name, &agency.Phone, &agency.Locality, &agency.Email,
			&agency.CreatedAt, &agency.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return agency, nil
}

func (r *agencyRepository) ListAgencies(ctx context.Context, page, size int) ([]models.DeliveryAgency, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM delivery_agencies`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count agencies: %w", err)
	}

	query := `SELECT id, name, phone, locality, email, created_at, updated_at
			  FROM delivery_agencies
			  ORDER BY name
			  LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(dbCtx, query, size, (page-1)*size)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list agencies: %w", err)
	}
	defer rows.Close()

	agencies := make([]models.DeliveryAgency, 0)

	for rows.Next() {
		var a models.DeliveryAgency

		err := rows.Scan(&a.ID, &a.Name, &a.Phone, &a.Locality, &a.Email, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan agency: %w", err)
		}

		agencies = append(agencies, a)
	}

	return agencies, total, rows.Err()
}

func (r *agencyRepository) UpdateAgency(ctx context.Context, agency *models.DeliveryAgency) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE delivery_agencies
		SET name = $1, phone = $2, locality = $3, email = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at`

	return r.DB.QueryRowContext(dbCtx, query,
		agency.Name, agency.Phone, agency.Locality, agency.Email, agency.ID).
		Scan(&agency.UpdatedAt)
}

func (r *agencyRepository) DeleteAgency(ctx context.Context, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM delivery_agencies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete agency: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get deleted rows: %w", err)
	}

	if deleted == 0 {
		return sql.ErrNoRows
	}

	return nil
}
