package cart

import (
	"context"
	"fmt"

	"ballisticmarket/domain"
)

// CartRepository contract interface
type CartRepository interface {
	Upsert(ctx context.Context, item *domain.CartItem) error
	Delete(ctx context.Context, userID, productID uint) error
	ListByUser(ctx context.Context, userID uint) ([]domain.CartRow, error)
}

// ProductRepository contract interface
type ProductRepository interface {
	FindActiveByID(ctx context.Context, id uint) (domain.Product, error)
}

type CartService struct {
	cartRepo    CartRepository
	productRepo ProductRepository
}

func NewCartService(cartRepo CartRepository, productRepo ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddOrUpdate puts a product in the user's cart. Re-adding replaces the
// stored quantity with the new one. The product must exist and be active.
func (s *CartService) AddOrUpdate(ctx context.Context, userID, productID uint, quantity int) error {
	if userID == 0 {
		return domain.ErrUnauthorized
	}
	if productID == 0 || quantity <= 0 {
		return fmt.Errorf("%w: valid product id and quantity are required", domain.ErrInvalidArgument)
	}

	if _, err := s.productRepo.FindActiveByID(ctx, productID); err != nil {
		return err
	}

	return s.cartRepo.Upsert(ctx, &domain.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	})
}

// Remove is idempotent; removing an entry that is not there succeeds.
func (s *CartService) Remove(ctx context.Context, userID, productID uint) error {
	if userID == 0 {
		return domain.ErrUnauthorized
	}

	return s.cartRepo.Delete(ctx, userID, productID)
}

func (s *CartService) List(ctx context.Context, userID uint) ([]domain.CartRow, error) {
	if userID == 0 {
		return nil, domain.ErrUnauthorized
	}

	rows, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []domain.CartRow{}
	}

	return rows, nil
}
