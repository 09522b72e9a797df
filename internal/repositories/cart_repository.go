package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/kieran237-code/Terrabia/internal/models"
	"github.com/kieran237-code/Terrabia/internal/utils"
	"github.com/shopspring/decimal"
)

type CartRepository interface {
	CreateCart(ctx context.Context, cart *models.Cart) error
	GetOpenCartByBuyer(ctx context.Context, buyerID uuid.UUID) (*models.Cart, error)
	UpsertItem(ctx context.Context, cartID uuid.UUID, productID int64, quantity int) (*models.CartItem, bool, error)
	GetItemByID(ctx context.Context, id int64) (*models.CartItem, error)
	UpdateItemQuantity(ctx context.Context, id int64, quantity int) error
	DeleteItem(ctx context.Context, id int64) error
	ListItemsWithProducts(ctx context.Context, cartID uuid.UUID) ([]models.CartItem, error)
	ConfirmCart(ctx context.Context, cartID uuid.UUID, total decimal.Decimal) error
}

type cartRepository struct {
	DB *sql.DB
}

func NewCartRepo(db *sql.DB) CartRepository {
	return &cartRepository{DB: db}
}

func (r *cartRepository) CreateCart(ctx context.Context, cart *models.Cart) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO carts(id, buyer_id, status, total, created_at, updated_at)
		VALUES($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query, cart.ID, cart.BuyerID, cart.Status, cart.Total).
		Scan(&cart.CreatedAt, &cart.UpdatedAt)
}

func (r *cartRepository) GetOpenCartByBuyer(ctx context.Context, buyerID uuid.UUID) (*models.Cart, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	cart := &models.Cart{}

	query := `
		SELECT id, buyer_id, status, total, created_at, updated_at
		FROM carts
		WHERE buyer_id = $1 AND status = 'OPEN'
		ORDER BY created_at
		LIMIT 1`

	err := r.DB.QueryRowContext(dbCtx, query, buyerID).
		Scan(&cart.ID, &cart.BuyerID, &cart.Status, &cart.Total, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return cart, nil
}

// UpsertItem adds a product line or accumulates quantity onto an existing one.
// The accumulation happens inside the database so concurrent adds never lose
// an increment. The bool result reports whether a new line was created.
func (r *cartRepository) UpsertItem(ctx context.Context, cartID uuid.UUID, productID int64, quantity int) (*models.CartItem, bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	item := &models.CartItem{CartID: cartID, ProductID: productID}

	// xmax = 0 only holds for freshly inserted rows
	query := `
		INSERT INTO cart_items(cart_id, product_id, quantity, created_at)
		VALUES($1, $2, $3, NOW())
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
		RETURNING id, quantity, created_at, (xmax = 0) AS inserted`

	var created bool

	err := r.DB.QueryRowContext(dbCtx, query, cartID, productID, quantity).
		Scan(&item.ID, &item.Quantity, &item.CreatedAt, &created)
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert cart item: %w", err)
	}

	return item, created, nil
}

func (r *cartRepository) GetItemByID(ctx context.Context, id int64) (*models.CartItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	item := &models.CartItem{}

	query := `SELECT id, cart_id, product_id, quantity, created_at
			  FROM cart_items
			  WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).
		Scan(&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &item.CreatedAt)
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (r *cartRepository) UpdateItemQuantity(ctx context.Context, id int64, quantity int) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx,
		`UPDATE cart_items SET quantity = $1 WHERE id = $2`, quantity, id)
	if err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updated == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *cartRepository) DeleteItem(ctx context.Context, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM cart_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
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

// ListItemsWithProducts returns the cart lines with each product joined in,
// oldest line first.
func (r *cartRepository) ListItemsWithProducts(ctx context.Context, cartID uuid.UUID) ([]models.CartItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ci.id, ci.cart_id, ci.product_id, ci.quantity, ci.created_at,
			   p.id, p.category_id, p.farmer_id, p.name, p.quantity, p.price, p.condition, p.created_at, p.updated_at
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.id`

	rows, err := r.DB.QueryContext(dbCtx, query, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	defer rows.Close()

	items := make([]models.CartItem, 0)

	for rows.Next() {
		item := models.CartItem{Product: &models.Product{}}

		err := rows.Scan(
			&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &item.CreatedAt,
			&item.Product.ID, &item.Product.CategoryID, &item.Product.FarmerID, &item.Product.Name,
			&item.Product.Quantity, &item.Product.Price, &item.Product.Condition,
			&item.Product.CreatedAt, &item.Product.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

// ConfirmCart flips an OPEN cart to CONFIRMED and persists the computed total.
// The status guard makes the transition single-shot: a cart already confirmed
// by a concurrent request yields sql.ErrNoRows.
func (r *cartRepository) ConfirmCart(ctx context.Context, cartID uuid.UUID, total decimal.Decimal) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx,
		`UPDATE carts SET status = 'CONFIRMED', total = $1, updated_at = NOW() WHERE id = $2 AND status = 'OPEN'`,
		total, cartID)
	if err != nil {
		return fmt.Errorf("failed to confirm cart: %w", err)
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updated == 0 {
		return sql.ErrNoRows
	}

	return nil
}
