package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/kieran237-code/Terrabia/internal/models"
	"github.com/kieran237-code/Terrabia/internal/utils"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product, photoURLs []string) error
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	ListProducts(ctx context.Context, page, size int) ([]models.Product, int, error)
	ListProductsByFarmer(ctx context.Context, farmerID uuid.UUID, page, size int) ([]models.Product, int, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id int64) error
	AddPhoto(ctx context.Context, photo *models.ProductPhoto) error
	DeletePhoto(ctx context.Context, productID, photoID int64) error
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

// CreateProduct inserts the product and any initial photos in one transaction.
func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product, photoURLs []string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO products(category_id, farmer_id, name, quantity, price, condition, created_at, updated_at)
		VALUES($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err = tx.QueryRowContext(dbCtx, query,
		product.CategoryID, product.FarmerID, product.Name, product.Quantity, product.Price, product.Condition).
		Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return err
	}

	photoQuery := `
		INSERT INTO product_photos(product_id, image_url, created_at)
		VALUES($1, $2, NOW())
		RETURNING id, created_at`

	for _, url := range photoURLs {
		photo := models.ProductPhoto{ProductID: product.ID, ImageURL: url}

		if err := tx.QueryRowContext(dbCtx, photoQuery, product.ID, url).Scan(&photo.ID, &photo.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert product photo: %w", err)
		}

		product.Photos = append(product.Photos, photo)
	}

	return tx.Commit()
}

func (r *productRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	product := &models.Product{Category: &models.Category{}}

	query := `
		SELECT p.id, p.category_id, p.farmer_id, p.name, p.quantity, p.price, p.condition, p.created_at, p.updated_at,
			   c.id, c.name, c.description, c.created_at, c.updated_at
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(
		&product.ID, &product.CategoryID, &product.FarmerID, &product.Name, &product.Quantity,
		&product.Price, &product.Condition, &product.CreatedAt, &product.UpdatedAt,
		&product.Category.ID, &product.Category.Name, &product.Category.Description,
		&product.Category.CreatedAt, &product.Category.UpdatedAt)
	if err != nil {
		return nil, err
	}

	photos, err := r.listPhotos(dbCtx, id)
	if err != nil {
		return nil, err
	}

	product.Photos = photos

	return product, nil
}

func (r *productRepository) ListProducts(ctx context.Context, page, size int) ([]models.Product, int, error) {
	return r.list(ctx, "", nil, page, size)
}

func (r *productRepository) ListProductsByFarmer(ctx context.Context, farmerID uuid.UUID, page, size int) ([]models.Product, int, error) {
	return r.list(ctx, "WHERE p.farmer_id = $3", []any{farmerID}, page, size)
}

func (r *productRepository) list(ctx context.Context, where string, extraArgs []any, page, size int) ([]models.Product, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	countQuery := `SELECT COUNT(*) FROM products p ` + where
	countArgs := extraArgs

	if where != "" {
		// the count query has no limit/offset placeholders
		countQuery = `SELECT COUNT(*) FROM products p WHERE p.farmer_id = $1`
	}

	var total int
	if err := r.DB.QueryRowContext(dbCtx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query := `
		SELECT p.id, p.category_id, p.farmer_id, p.name, p.quantity, p.price, p.condition, p.created_at, p.updated_at,
			   c.id, c.name, c.description, c.created_at, c.updated_at
		FROM products p
		JOIN categories c ON c.id = p.category_id ` + where + `
		ORDER BY p.created_at DESC
		LIMIT $1 OFFSET $2`

	args := append([]any{size, (page - 1) * size}, extraArgs...)

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)

	for rows.Next() {
		p := models.Product{Category: &models.Category{}}

		err := rows.Scan(
			&p.ID, &p.CategoryID, &p.FarmerID, &p.Name, &p.Quantity, &p.Price, &p.Condition,
			&p.CreatedAt, &p.UpdatedAt,
			&p.Category.ID, &p.Category.Name, &p.Category.Description,
			&p.Category.CreatedAt, &p.Category.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan product: %w", err)
		}

		products = append(products, p)
	}

	return products, total, rows.Err()
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products
		SET category_id = $1, name = $2, quantity = $3, price = $4, condition = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at`

	return r.DB.QueryRowContext(dbCtx, query,
		product.CategoryID, product.Name, product.Quantity, product.Price, product.Condition, product.ID).
		Scan(&product.UpdatedAt)
}

func (r *productRepository) DeleteProduct(ctx context.Context, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
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

func (r *productRepository) AddPhoto(ctx context.Context, photo *models.ProductPhoto) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO product_photos(product_id, image_url, created_at)
		VALUES($1, $2, NOW())
		RETURNING id, created_at`

	return r.DB.QueryRowContext(dbCtx, query, photo.ProductID, photo.ImageURL).
		Scan(&photo.ID, &photo.CreatedAt)
}

func (r *productRepository) DeletePhoto(ctx context.Context, productID, photoID int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx,
		`DELETE FROM product_photos WHERE id = $1 AND product_id = $2`, photoID, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product photo: %w", err)
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

func (r *productRepository) listPhotos(ctx context.Context, productID int64) ([]models.ProductPhoto, error) {
	query := `SELECT id, product_id, image_url, created_at
			  FROM product_photos
			  WHERE product_id = $1
			  ORDER BY id`

	rows, err := r.DB.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list product photos: %w", err)
	}
	defer rows.Close()

	photos := make([]models.ProductPhoto, 0)

	for rows.Next() {
		var p models.ProductPhoto
		if err := rows.Scan(&p.ID, &p.ProductID, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product photo: %w", err)
		}

		photos = append(photos, p)
	}

	return photos, rows.Err()
}
