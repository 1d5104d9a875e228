package usecase

import (
	"context"
	"testing"

	"caixa/src/catalog/application/request"
	"caixa/src/catalog/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository simula el repositorio del catálogo
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Save(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestCreateProduct(t *testing.T) {
	persisted, err := entity.NewProduct("Arroz 5kg", decimal.NewFromFloat(25.00), entity.UnitKindUnit, decimal.NewFromInt(100))
	require.NoError(t, err)
	persisted.ID = uuid.New() // el repositorio asigna el ID en el primer persist

	repo := new(MockProductRepository)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*entity.Product")).Return(persisted, nil)

	uc := NewCreateProductUseCase(repo)

	resp, err := uc.Execute(context.Background(), &request.CreateProductRequest{
		Name:     "Arroz 5kg",
		Price:    decimal.NewFromFloat(25.00),
		UnitKind: "UNIDADE",
		Stock:    decimal.NewFromInt(100),
	})

	require.NoError(t, err)
	assert.Equal(t, persisted.ID, resp.ID)
	assert.Equal(t, "Arroz 5kg", resp.Name)
	repo.AssertExpectations(t)
}

func TestCreateProductValidation(t *testing.T) {
	repo := new(MockProductRepository)
	uc := NewCreateProductUseCase(repo)

	tests := []struct {
		name    string
		req     *request.CreateProductRequest
		wantErr error
	}{
		{"empty name", &request.CreateProductRequest{Name: "", Price: decimal.NewFromInt(1), UnitKind: "UNIDADE"}, entity.ErrProductNameRequired},
		{"zero price", &request.CreateProductRequest{Name: "Feijao", Price: decimal.Zero, UnitKind: "UNIDADE"}, entity.ErrInvalidPrice},
		{"unknown unit kind", &request.CreateProductRequest{Name: "Feijao", Price: decimal.NewFromInt(1), UnitKind: "CAJA"}, entity.ErrInvalidUnitKind},
		{"negative stock", &request.CreateProductRequest{Name: "Feijao", Price: decimal.NewFromInt(1), UnitKind: "UNIDADE", Stock: decimal.NewFromInt(-5)}, entity.ErrInvalidStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// Nada llegó al repositorio
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateProductDuplicateName(t *testing.T) {
	repo := new(MockProductRepository)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil, entity.ErrProductNameTaken)

	uc := NewCreateProductUseCase(repo)

	_, err := uc.Execute(context.Background(), &request.CreateProductRequest{
		Name:     "Arroz 5kg",
		Price:    decimal.NewFromFloat(25.00),
		UnitKind: "UNIDADE",
		Stock:    decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, entity.ErrProductNameTaken)
}

func TestDeleteProductInUse(t *testing.T) {
	productID := uuid.New()

	repo := new(MockProductRepository)
	repo.On("Delete", mock.Anything, productID).Return(false, entity.ErrProductInUse)

	uc := NewDeleteProductUseCase(repo)

	_, err := uc.Execute(context.Background(), productID)
	assert.ErrorIs(t, err, entity.ErrProductInUse)
}

func TestDeleteProductNotFoundIsSoft(t *testing.T) {
	productID := uuid.New()

	repo := new(MockProductRepository)
	repo.On("Delete", mock.Anything, productID).Return(false, nil)

	uc := NewDeleteProductUseCase(repo)

	deleted, err := uc.Execute(context.Background(), productID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestRestockProduct(t *testing.T) {
	product, err := entity.NewProduct("Feijao 1kg", decimal.NewFromFloat(8.50), entity.UnitKindUnit, decimal.NewFromInt(10))
	require.NoError(t, err)
	product.ID = uuid.New()

	repo := new(MockProductRepository)
	repo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	repo.On("Save", mock.Anything, product).Return(product, nil)

	uc := NewRestockProductUseCase(repo)

	resp, err := uc.Execute(context.Background(), product.ID, decimal.NewFromInt(15))
	require.NoError(t, err)
	assert.True(t, resp.Stock.Equal(decimal.NewFromInt(25)))
	repo.AssertExpectations(t)
}

func TestRestockProductRejectsNonPositive(t *testing.T) {
	repo := new(MockProductRepository)
	uc := NewRestockProductUseCase(repo)

	_, err := uc.Execute(context.Background(), uuid.New(), decimal.Zero)
	assert.ErrorIs(t, err, entity.ErrInvalidQuantity)

	_, err = uc.Execute(context.Background(), uuid.New(), decimal.NewFromInt(-5))
	assert.ErrorIs(t, err, entity.ErrInvalidQuantity)

	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUpdateProduct(t *testing.T) {
	existing, err := entity.NewProduct("Banana Prata", decimal.NewFromFloat(7.90), entity.UnitKindKg, decimal.NewFromInt(50))
	require.NoError(t, err)
	existing.ID = uuid.New()

	updated, err := entity.NewProduct("Banana Prata", decimal.NewFromFloat(8.90), entity.UnitKindKg, decimal.NewFromFloat(42.5))
	require.NoError(t, err)
	updated.ID = existing.ID

	repo := new(MockProductRepository)
	repo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*entity.Product")).Return(updated, nil)

	uc := NewUpdateProductUseCase(repo)

	resp, err := uc.Execute(context.Background(), existing.ID, &request.UpdateProductRequest{
		Name:     "Banana Prata",
		Price:    decimal.NewFromFloat(8.90),
		UnitKind: "KG",
		Stock:    decimal.NewFromFloat(42.5),
	})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, resp.ID)
	assert.True(t, resp.Price.Equal(decimal.NewFromFloat(8.90)))
}
