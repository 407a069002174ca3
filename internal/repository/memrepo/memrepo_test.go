package memrepo_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocatalog/internal/domain"
	apperror "gocatalog/internal/errors"
	"gocatalog/internal/repository/memrepo"
)

func TestAddThenGetByID_ReturnsEqualEntity(t *testing.T) {
	store := memrepo.NewStore()
	ctx := context.Background()

	added, err := store.Products.Add(ctx, domain.Product{Name: "Chair", RealStock: 5, MinStock: 10, MaxStock: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, added.ID)

	got, err := store.Products.GetByID(ctx, added.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, added, *got)
}

func TestGetByID_ResolvesNavigation(t *testing.T) {
	store := memrepo.NewStore()
	ctx := context.Background()

	brand, err := store.Brands.Add(ctx, domain.Brand{Name: "Ikea"})
	require.NoError(t, err)

	added, err := store.Products.Add(ctx, domain.Product{Name: "Chair", BrandID: &brand.ID})
	require.NoError(t, err)

	got, err := store.Products.GetByID(ctx, added.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Brand)
	assert.Equal(t, "Ikea", got.Brand.Name)
	assert.Nil(t, got.Type)
}

func TestDeletedBrandLeavesDanglingReference(t *testing.T) {
	store := memrepo.NewStore()
	ctx := context.Background()

	brand, _ := store.Brands.Add(ctx, domain.Brand{Name: "Ikea"})
	added, _ := store.Products.Add(ctx, domain.Product{Name: "Chair", BrandID: &brand.ID})
	require.NoError(t, store.Brands.Delete(ctx, brand))

	got, err := store.Products.GetByID(ctx, added.ID)
	require.NoError(t, err)
	require.NotNil(t, got.BrandID)
	assert.Equal(t, brand.ID, *got.BrandID)
	assert.Nil(t, got.Brand)
}

func TestGetByID_Absent(t *testing.T) {
	store := memrepo.NewStore()

	got, err := store.Products.GetByID(context.Background(), 42)

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetByName_CaseInsensitivePrefersOldest(t *testing.T) {
	brands := memrepo.NewBrandRepository()
	ctx := context.Background()

	first, _ := brands.Add(ctx, domain.Brand{Name: "Nike"})
	_, _ = brands.Add(ctx, domain.Brand{Name: "NIKE"})

	got, err := brands.GetByName(ctx, "nike")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, first.ID, got.ID)
}

func TestDeleteAbsent_IsNotFoundAndStoreUnchanged(t *testing.T) {
	store := memrepo.NewStore()
	ctx := context.Background()
	_, _ = store.Products.Add(ctx, domain.Product{Name: "Chair"})

	err := store.Products.Delete(ctx, domain.Product{ID: 99})

	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, 1, store.Products.Len())
}

func TestUpdate_IdentityMismatchLeavesStoreUnchanged(t *testing.T) {
	store := memrepo.NewStore()
	ctx := context.Background()
	added, _ := store.Products.Add(ctx, domain.Product{Name: "Chair"})

	err := store.Products.Update(ctx, added, domain.Product{ID: added.ID + 1, Name: "Desk"})

	assert.True(t, apperror.IsPrecondition(err))
	got, _ := store.Products.GetByID(ctx, added.ID)
	assert.Equal(t, "Chair", got.Name)
}

func TestUpdate_OverwritesAllFields(t *testing.T) {
	store := memrepo.NewStore()
	ctx := context.Background()
	brandID := 7
	added, _ := store.Products.Add(ctx, domain.Product{Name: "Chair", BrandID: &brandID, RealStock: 1})

	incoming := domain.Product{ID: added.ID, Name: "Chair v2", RealStock: 3}
	require.NoError(t, store.Products.Update(ctx, added, incoming))

	got, _ := store.Products.GetByID(ctx, added.ID)
	assert.Equal(t, "Chair v2", got.Name)
	assert.Equal(t, 3, got.RealStock)
	assert.Nil(t, got.BrandID)
}

func TestUpdate_DeletedRowIsNotFound(t *testing.T) {
	types := memrepo.NewTypeProductRepository()
	ctx := context.Background()
	added, _ := types.Add(ctx, domain.TypeProduct{Name: "Furniture"})
	require.NoError(t, types.Delete(ctx, added))

	err := types.Update(ctx, added, domain.TypeProduct{ID: added.ID, Name: "Tables"})

	assert.True(t, apperror.IsNotFound(err))
}

func TestCancelledContext_IsStorageError(t *testing.T) {
	brands := memrepo.NewBrandRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := brands.Add(ctx, domain.Brand{Name: "Nike"})

	assert.True(t, apperror.IsStorage(err))
	assert.Equal(t, 0, brands.Len())
}

func TestConcurrentAdds_AssignDistinctIDs(t *testing.T) {
	brands := memrepo.NewBrandRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = brands.Add(ctx, domain.Brand{Name: "Nike"})
		}()
	}
	wg.Wait()

	all, err := brands.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 50)
	seen := map[int]bool{}
	for _, b := range all {
		assert.False(t, seen[b.ID])
		seen[b.ID] = true
	}
}
