package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kieran237-code/Terrabia/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// Testify mocks for the repository interfaces, shared by the service tests.

type MockUserRepository struct {
	mock.Mock
}

func NewMockUserRepository() *MockUserRepository { return &MockUserRepository{} }

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetFarmerProfileByID(ctx context.Context, id int64) (*models.FarmerProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.FarmerProfile), args.Error(1)
}

type MockCategoryRepository struct {
	mock.Mock
}

func NewMockCategoryRepository() *MockCategoryRepository { return &MockCategoryRepository{} }

func (m *MockCategoryRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)

	return args.Error(0)
}

func (m *MockCategoryRepository) GetCategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, page, size int) ([]models.Category, int, error) {
	args := m.Called(ctx, page, size)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}

	return args.Get(0).([]models.Category), args.Int(1), args.Error(2)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)

	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type MockProductRepository struct {
	mock.Mock
}

func NewMockProductRepository() *MockProductRepository { return &MockProductRepository{} }

func (m *MockProductRepository) CreateProduct(ctx context.Context, product *models.Product, photoURLs []string) error {
	args := m.Called(ctx, product, photoURLs)

	return args.Error(0)
}

func (m *MockProductRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, page, size int) ([]models.Product, int, error) {
	args := m.Called(ctx, page, size)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}

	return args.Get(0).([]models.Product), args.Int(1), args.Error(2)
}

func (m *MockProductRepository) ListProductsByFarmer(ctx context.Context, farmerID uuid.UUID, page, size int) ([]models.Product, int, error) {
	args := m.Called(ctx, farmerID, page, size)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}

	return args.Get(0).([]models.Product), args.Int(1), args.Error(2)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockProductRepository) AddPhoto(ctx context.Context, photo *models.ProductPhoto) error {
	args := m.Called(ctx, photo)

	return args.Error(0)
}

func (m *MockProductRepository) DeletePhoto(ctx context.Context, productID, photoID int64) error {
	args := m.Called(ctx, productID, photoID)

	return args.Error(0)
}

type MockReviewRepository struct {
	mock.Mock
}

func NewMockReviewRepository() *MockReviewRepository { return &MockReviewRepository{} }

func (m *MockReviewRepository) CreateReview(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)

	return args.Error(0)
}

func (m *MockReviewRepository) GetReviewByID(ctx context.Context, id int64) (*models.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) ListReviewsByFarmerProfile(ctx context.Context, farmerProfileID int64) ([]models.Review, error) {
	args := m.Called(ctx, farmerProfileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) UpdateReview(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)

	return args.Error(0)
}

func (m *MockReviewRepository) DeleteReview(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type MockAgencyRepository struct {
	mock.Mock
}

func NewMockAgencyRepository() *MockAgencyRepository { return &MockAgencyRepository{} }

func (m *MockAgencyRepository) CreateAgency(ctx context.Context, agency *models.DeliveryAgency) error {
	args := m.Called(ctx, agency)

	return args.Error(0)
}

func (m *MockAgencyRepository) GetAgencyByID(ctx context.Context, id int64) (*models.DeliveryAgency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.DeliveryAgency), args.Error(1)
}

func (m *MockAgencyRepository) ListAgencies(ctx context.Context, page, size int) ([]models.DeliveryAgency, int, error) {
	args := m.Called(ctx, page, size)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}

	return args.Get(0).([]models.DeliveryAgency), args.Int(1), args.Error(2)
}

func (m *MockAgencyRepository) UpdateAgency(ctx context.Context, agency *models.DeliveryAgency) error {
	args := m.Called(ctx, agency)

	return args.Error(0)
}

func (m *MockAgencyRepository) DeleteAgency(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type MockCartRepository struct {
	mock.Mock
}

func NewMockCartRepository() *MockCartRepository { return &MockCartRepository{} }

func (m *MockCartRepository) CreateCart(ctx context.Context, cart *models.Cart) error {
	args := m.Called(ctx, cart)

	return args.Error(0)
}

func (m *MockCartRepository) GetOpenCartByBuyer(ctx context.Context, buyerID uuid.UUID) (*models.Cart, error) {
	args := m.Called(ctx, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartRepository) UpsertItem(ctx context.Context, cartID uuid.UUID, productID int64, quantity int) (*models.CartItem, bool, error) {
	args := m.Called(ctx, cartID, productID, quantity)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}

	return args.Get(0).(*models.CartItem), args.Bool(1), args.Error(2)
}

func (m *MockCartRepository) GetItemByID(ctx context.Context, id int64) (*models.CartItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CartItem), args.Error(1)
}

func (m *MockCartRepository) UpdateItemQuantity(ctx context.Context, id int64, quantity int) error {
	args := m.Called(ctx, id, quantity)

	return args.Error(0)
}

func (m *MockCartRepository) DeleteItem(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockCartRepository) ListItemsWithProducts(ctx context.Context, cartID uuid.UUID) ([]models.CartItem, error) {
	args := m.Called(ctx, cartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.CartItem), args.Error(1)
}

func (m *MockCartRepository) ConfirmCart(ctx context.Context, cartID uuid.UUID, total decimal.Decimal) error {
	args := m.Called(ctx, cartID, total)

	return args.Error(0)
}

type MockRateLimitRepository struct {
	mock.Mock
}

func NewMockRateLimitRepository() *MockRateLimitRepository { return &MockRateLimitRepository{} }

func (m *MockRateLimitRepository) CheckLoginRateLimit(ctx context.Context, username string) (bool, int, int, error) {
	args := m.Called(ctx, username)

	return args.Bool(0), args.Int(1), args.Int(2), args.Error(3)
}
