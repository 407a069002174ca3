package relationservice_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gocatalog/internal/domain"
	apperror "gocatalog/internal/errors"
	"gocatalog/internal/pkg/logger"
	"gocatalog/internal/repository/memrepo"
	"gocatalog/internal/service/relationservice"
)

// MockBrandRepository é uma implementação mock de domain.BrandRepository.
type MockBrandRepository struct {
	mock.Mock
}

func (m *MockBrandRepository) GetByID(ctx context.Context, id int) (*domain.Brand, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Brand), args.Error(1)
}

func (m *MockBrandRepository) GetByName(ctx context.Context, name string) (*domain.Brand, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(*domain.Brand), args.Error(1)
}

func (m *MockBrandRepository) GetAll(ctx context.Context) ([]domain.Brand, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Brand), args.Error(1)
}

func (m *MockBrandRepository) Add(ctx context.Context, brand domain.Brand) (domain.Brand, error) {
	args := m.Called(ctx, brand)
	return args.Get(0).(domain.Brand), args.Error(1)
}

func (m *MockBrandRepository) Update(ctx context.Context, existing, incoming domain.Brand) error {
	return m.Called(ctx, existing, incoming).Error(0)
}

func (m *MockBrandRepository) Delete(ctx context.Context, brand domain.Brand) error {
	return m.Called(ctx, brand).Error(0)
}

func quietLogger() logger.Logger {
	return logger.New("error", io.Discard)
}

func TestResolveBrand_Existing(t *testing.T) {
	brands := new(MockBrandRepository)
	resolver := relationservice.NewResolver(brands, memrepo.NewTypeProductRepository(), quietLogger())

	brands.On("GetByName", mock.Anything, "Nike").Return(&domain.Brand{ID: 3, Name: "Nike"}, nil)

	id, err := resolver.ResolveBrand(context.Background(), "  Nike ")

	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, 3, *id)
	brands.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestResolveBrand_CreatesMissing(t *testing.T) {
	brands := new(MockBrandRepository)
	resolver := relationservice.NewResolver(brands, memrepo.NewTypeProductRepository(), quietLogger())

	brands.On("GetByName", mock.Anything, "Puma").Return((*domain.Brand)(nil), nil)
	brands.On("Add", mock.Anything, domain.Brand{Name: "Puma"}).Return(domain.Brand{ID: 8, Name: "Puma"}, nil)

	id, err := resolver.ResolveBrand(context.Background(), "Puma")

	require.NoError(t, err)
	assert.Equal(t, 8, *id)
	brands.AssertExpectations(t)
}

func TestResolveBrand_EmptyNameIsNoRelation(t *testing.T) {
	brands := new(MockBrandRepository)
	resolver := relationservice.NewResolver(brands, memrepo.NewTypeProductRepository(), quietLogger())

	id, err := resolver.ResolveBrand(context.Background(), "   ")

	assert.NoError(t, err)
	assert.Nil(t, id)
	brands.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
}

func TestResolveBrand_Fail_StorageError(t *testing.T) {
	brands := new(MockBrandRepository)
	resolver := relationservice.NewResolver(brands, memrepo.NewTypeProductRepository(), quietLogger())

	storageErr := apperror.NewStorageError("Falha ao buscar marca por nome", errors.New("connection refused"))
	brands.On("GetByName", mock.Anything, "Nike").Return((*domain.Brand)(nil), storageErr)

	id, err := resolver.ResolveBrand(context.Background(), "Nike")

	assert.Nil(t, id)
	assert.True(t, apperror.IsStorage(err))
	brands.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestResolveBrand_TwiceReturnsSameID(t *testing.T) {
	store := memrepo.NewStore()
	resolver := relationservice.NewResolver(store.Brands, store.Types, quietLogger())
	ctx := context.Background()

	first, err := resolver.ResolveBrand(ctx, "Nike")
	require.NoError(t, err)
	second, err := resolver.ResolveBrand(ctx, "nike")
	require.NoError(t, err)

	assert.Equal(t, *first, *second)
	assert.Equal(t, 1, store.Brands.Len())
}

func TestResolveType_CreatesOnce(t *testing.T) {
	store := memrepo.NewStore()
	resolver := relationservice.NewResolver(store.Brands, store.Types, quietLogger())
	ctx := context.Background()

	first, err := resolver.ResolveType(ctx, "Furniture")
	require.NoError(t, err)
	second, err := resolver.ResolveType(ctx, "Furniture")
	require.NoError(t, err)

	assert.Equal(t, *first, *second)
	assert.Equal(t, 1, store.Types.Len())
	assert.Equal(t, 0, store.Brands.Len())
}
