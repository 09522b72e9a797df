// Package mocks provides testify mocks for the service interfaces, used by
// the handler tests.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/kieran237-code/Terrabia/internal/models"
	"github.com/stretchr/testify/mock"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.LoginResponse), args.Error(1)
}

func (m *MockUserService) Refresh(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.RefreshResponse), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.User), args.Error(1)
}

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryService) GetCategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryService) ListCategories(ctx context.Context, page, size int) ([]models.Category, int, error) {
	args := m.Called(ctx, page, size)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}

	return args.Get(0).([]models.Category), args.Int(1), args.Error(2)
}

func (m *MockCategoryService) UpdateCategory(ctx context.Context, id int64, req *models.UpdateCategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryService) DeleteCategory(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) CreateProduct(ctx context.Context, farmerID uuid.UUID, req *models.CreateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, farmerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductService) ListProducts(ctx context.Context, page, size int) ([]models.Product, int, error) {
	args := m.Called(ctx, page, size)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}

	return args.Get(0).([]models.Product), args.Int(1), args.Error(2)
}

func (m *MockProductService) ListProductsByFarmer(ctx context.Context, farmerID uuid.UUID, page, size int) ([]models.Product, int, error) {
	args := m.Called(ctx, farmerID, page, size)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}

	return args.Get(0).([]models.Product), args.Int(1), args.Error(2)
}

func (m *MockProductService) UpdateProduct(ctx context.Context, farmerID uuid.UUID, id int64, req *models.UpdateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, farmerID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductService) DeleteProduct(ctx context.Context, farmerID uuid.UUID, id int64) error {
	args := m.Called(ctx, farmerID, id)

	return args.Error(0)
}

func (m *MockProductService) AddPhoto(ctx context.Context, farmerID uuid.UUID, productID int64, req *models.AddPhotoRequest) (*models.ProductPhoto, error) {
	args := m.Called(ctx, farmerID, productID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.ProductPhoto), args.Error(1)
}

func (m *MockProductService) DeletePhoto(ctx context.Context, farmerID uuid.UUID, productID, photoID int64) error {
	args := m.Called(ctx, farmerID, productID, photoID)

	return args.Error(0)
}

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) CreateReview(ctx context.Context, authorID uuid.UUID, req *models.CreateReviewRequest) (*models.Review, error) {
	args := m.Called(ctx, authorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewService) ListReviewsByFarmerProfile(ctx context.Context, farmerProfileID int64) ([]models.Review, error) {
	args := m.Called(ctx, farmerProfileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewService) UpdateReview(ctx context.Context, authorID uuid.UUID, id int64, req *models.UpdateReviewRequest) (*models.Review, error) {
	args := m.Called(ctx, authorID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewService) DeleteReview(ctx context.Context, authorID uuid.UUID, id int64) error {
	args := m.Called(ctx, authorID, id)

	return args.Error(0)
}

type MockAgencyService struct {
	mock.Mock
}

func (m *MockAgencyService) CreateAgency(ctx context.Context, req *models.CreateAgencyRequest) (*models.DeliveryAgency, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.DeliveryAgency), args.Error(1)
}

func (m *MockAgencyService) GetAgencyByID(ctx context.Context, id int64) (*models.DeliveryAgency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.DeliveryAgency), args.Error(1)
}

func (m *MockAgencyService) ListAgencies(ctx context.Context, page, size int) ([]models.DeliveryAgency, int, error) {
	args := m.Called(ctx, page, size)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}

	return args.Get(0).([]models.DeliveryAgency), args.Int(1), args.Error(2)
}

func (m *MockAgencyService) UpdateAgency(ctx context.Context, id int64, req *models.UpdateAgencyRequest) (*models.DeliveryAgency, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.DeliveryAgency), args.Error(1)
}

func (m *MockAgencyService) DeleteAgency(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockAgencyService) WhatsAppContact(ctx context.Context, id int64) (*models.AgencyContactResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.AgencyContactResponse), args.Error(1)
}

type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) GetOrCreateActiveCart(ctx context.Context, buyerID uuid.UUID) (*models.Cart, error) {
	args := m.Called(ctx, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartService) AddItem(ctx context.Context, buyerID uuid.UUID, req *models.AddCartItemRequest) (*models.AddCartItemResponse, error) {
	args := m.Called(ctx, buyerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.AddCartItemResponse), args.Error(1)
}

func (m *MockCartService) ViewCart(ctx context.Context, buyerID uuid.UUID) (*models.CartView, error) {
	args := m.Called(ctx, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CartView), args.Error(1)
}

func (m *MockCartService) UpdateItemQuantity(ctx context.Context, buyerID uuid.UUID, itemID int64, req *models.UpdateCartItemRequest) (*models.CartItem, error) {
	args := m.Called(ctx, buyerID, itemID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CartItem), args.Error(1)
}

func (m *MockCartService) RemoveItem(ctx context.Context, buyerID uuid.UUID, itemID int64) error {
	args := m.Called(ctx, buyerID, itemID)

	return args.Error(0)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, buyerID uuid.UUID, req *models.CreateOrderRequest) (*models.OrderConfirmation, error) {
	args := m.Called(ctx, buyerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.OrderConfirmation), args.Error(1)
}

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Contact(ctx context.Context, req *models.ContactRequest) (*models.ContactResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.ContactResponse), args.Error(1)
}
