package product

import (
	"context"
	"fmt"

	"ballisticmarket/domain"
)

const defaultCategory = "General"

// ProductRepository contract interface
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindActiveByID(ctx context.Context, id uint) (domain.Product, error)
	FindAllActive(ctx context.Context) ([]domain.Product, error)
	SoftDelete(ctx context.Context, id uint) error
}

type ProductService struct {
	productRepo ProductRepository
}

func NewProductService(productRepo ProductRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
	}
}

func (s *ProductService) GetActiveProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}

	return products, nil
}

func (s *ProductService) GetActiveProductByID(ctx context.Context, id uint) (domain.Product, error) {
	return s.productRepo.FindActiveByID(ctx, id)
}

// CreateProduct requires a name and a positive price; the other fields get
// storefront defaults.
func (s *ProductService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidArgument)
	}
	if product.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be greater than 0", domain.ErrInvalidArgument)
	}

	if product.Category == "" {
		product.Category = defaultCategory
	}
	if product.StockQuantity < 0 {
		product.StockQuantity = 0
	}
	product.IsActive = true

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct soft-deletes only. Rows referenced by historical orders must
// stay in place.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	if id == 0 {
		return fmt.Errorf("%w: invalid product id", domain.ErrInvalidArgument)
	}

	return s.productRepo.SoftDelete(ctx, id)
}
