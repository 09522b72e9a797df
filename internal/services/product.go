package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/kieran237-code/Terrabia/internal/errors"
	"github.com/kieran237-code/Terrabia/internal/models"
	repository "github.com/kieran237-code/Terrabia/internal/repositories"
)

type ProductService interface {
	CreateProduct(ctx context.Context, farmerID uuid.UUID, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	ListProducts(ctx context.Context, page, size int) ([]models.Product, int, error)
	ListProductsByFarmer(ctx context.Context, farmerID uuid.UUID, page, size int) ([]models.Product, int, error)
	UpdateProduct(ctx context.Context, farmerID uuid.UUID, id int64, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, farmerID uuid.UUID, id int64) error
	AddPhoto(ctx context.Context, farmerID uuid.UUID, productID int64, req *models.AddPhotoRequest) (*models.ProductPhoto, error)
	DeletePhoto(ctx context.Context, farmerID uuid.UUID, productID, photoID int64) error
}

type productService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewProductService(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) ProductService {
	return &productService{repo: repo, categoryRepo: categoryRepo}
}

// CreateProduct attaches the product to the calling farmer; the owner is
// never taken from the request body.
func (s *productService) CreateProduct(ctx context.Context, farmerID uuid.UUID, req *models.CreateProductRequest) (*models.Product, error) {
	if _, err := s.categoryRepo.GetCategoryByID(ctx, req.CategoryID); err != nil {
		return nil, errors.NotFoundError("Category not found").WithError(err)
	}

	product := &models.Product{
		CategoryID: req.CategoryID,
		FarmerID:   farmerID,
		Name:       req.Name,
		Quantity:   req.Quantity,
		Price:      req.Price,
		Condition:  req.Condition,
	}

	if err := s.repo.CreateProduct(ctx, product, req.PhotoURLs); err != nil {
		return nil, errors.DatabaseError("Failed to create product").WithError(err)
	}

	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, page, size int) ([]models.Product, int, error) {
	products, total, err := s.repo.ListProducts(ctx, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list products").WithError(err)
	}

	return products, total, nil
}

func (s *productService) ListProductsByFarmer(ctx context.Context, farmerID uuid.UUID, page, size int) ([]models.Product, int, error) {
	products, total, err := s.repo.ListProductsByFarmer(ctx, farmerID, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list products").WithError(err)
	}

	return products, total, nil
}

func (s *productService) UpdateProduct(ctx context.Context, farmerID uuid.UUID, id int64, req *models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.ownedProduct(ctx, farmerID, id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetCategoryByID(ctx, *req.CategoryID); err != nil {
			return nil, errors.NotFoundError("Category not found").WithError(err)
		}

		product.CategoryID = *req.CategoryID
	}

	if req.Name != nil {
		product.Name = *req.Name
	}

	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}

	if req.Price != nil {
		product.Price = *req.Price
	}

	if req.Condition != nil {
		product.Condition = *req.Condition
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to update product").WithError(err)
	}

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, farmerID uuid.UUID, id int64) error {
	if _, err := s.ownedProduct(ctx, farmerID, id); err != nil {
		return err
	}

	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return errors.DatabaseError("Failed to delete product").WithError(err)
	}

	return nil
}

func (s *productService) AddPhoto(ctx context.Context, farmerID uuid.UUID, productID int64, req *models.AddPhotoRequest) (*models.ProductPhoto, error) {
	if _, err := s.ownedProduct(ctx, farmerID, productID); err != nil {
		return nil, err
	}

	photo := &models.ProductPhoto{
		ProductID: productID,
		ImageURL:  req.ImageURL,
	}

	if err := s.repo.AddPhoto(ctx, photo); err != nil {
		return nil, errors.DatabaseError("Failed to add product photo").WithError(err)
	}

	return photo, nil
}

func (s *productService) DeletePhoto(ctx context.Context, farmerID uuid.UUID, productID, photoID int64) error {
	if _, err := s.ownedProduct(ctx, farmerID, productID); err != nil {
		return err
	}

	if err := s.repo.DeletePhoto(ctx, productID, photoID); err != nil {
		return errors.NotFoundError("Photo not found").WithError(err)
	}

	return nil
}

// ownedProduct loads the product and checks the caller owns it.
func (s *productService) ownedProduct(ctx context.Context, farmerID uuid.UUID, id int64) (*models.Product, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	if product.FarmerID != farmerID {
		return nil, errors.ForbiddenError("You do not own this product")
	}

	return product, nil
}
