package product

import (
	"context"
	"testing"

	"ballisticmarket/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type productRepoMock struct{ mock.Mock }

func (m *productRepoMock) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *productRepoMock) FindActiveByID(ctx context.Context, id uint) (domain.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(domain.Product)
	return p, args.Error(1)
}

func (m *productRepoMock) FindAllActive(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]domain.Product)
	return products, args.Error(1)
}

func (m *productRepoMock) SoftDelete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreateProduct_RequiresNameAndPrice(t *testing.T) {
	repo := new(productRepoMock)
	svc := NewProductService(repo)

	_, err := svc.CreateProduct(context.Background(), &domain.Product{Price: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = svc.CreateProduct(context.Background(), &domain.Product{Name: "Rifle Kit"})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateProduct_AppliesDefaults(t *testing.T) {
	repo := new(productRepoMock)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewProductService(repo)

	created, err := svc.CreateProduct(context.Background(), &domain.Product{
		Name:          "Rifle Kit",
		Price:         49.99,
		StockQuantity: -2,
	})
	assert.NoError(t, err)
	assert.Equal(t, "General", created.Category)
	assert.Equal(t, 0, created.StockQuantity)
	assert.True(t, created.IsActive)
}

func TestDeleteProduct_SoftDeleteOnly(t *testing.T) {
	repo := new(productRepoMock)
	repo.On("SoftDelete", mock.Anything, uint(10)).Return(nil)

	svc := NewProductService(repo)

	assert.NoError(t, svc.DeleteProduct(context.Background(), 10))
	assert.ErrorIs(t, svc.DeleteProduct(context.Background(), 0), domain.ErrInvalidArgument)
	repo.AssertExpectations(t)
}

func TestGetActiveProducts_ReturnsEmptySliceNotNil(t *testing.T) {
	repo := new(productRepoMock)
	repo.On("FindAllActive", mock.Anything).Return(nil, nil)

	svc := NewProductService(repo)

	products, err := svc.GetActiveProducts(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}
