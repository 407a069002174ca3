package brandservice_test

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocatalog/internal/domain"
	apperror "gocatalog/internal/errors"
	"gocatalog/internal/pkg/logger"
	"gocatalog/internal/repository/memrepo"
	"gocatalog/internal/service/brandservice"
)

func newService() (*brandservice.Service, *memrepo.Table[domain.Brand]) {
	repo := memrepo.NewBrandRepository()
	return brandservice.NewService(repo, logger.New("error", io.Discard)), repo
}

func TestCreate_Success(t *testing.T) {
	svc, repo := newService()

	view, err := svc.Create(context.Background(), domain.BrandView{Name: "  Nike "})

	require.NoError(t, err)
	assert.Equal(t, domain.BrandView{ID: 1, Name: "Nike"}, view)
	assert.Equal(t, 1, repo.Len())
}

func TestCreate_Fail_EmptyName(t *testing.T) {
	svc, repo := newService()

	_, err := svc.Create(context.Background(), domain.BrandView{Name: "   "})

	assert.IsType(t, &apperror.ValidationError{}, err)
	assert.Equal(t, 0, repo.Len())
}

func TestCreate_Fail_DuplicateName(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()
	_, err := svc.Create(ctx, domain.BrandView{Name: "Nike"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, domain.BrandView{Name: "NIKE"})

	assert.IsType(t, &apperror.ConflictError{}, err)
	assert.Equal(t, 1, repo.Len())
}

func TestGetByID_Fail_NotFound(t *testing.T) {
	svc, _ := newService()

	_, err := svc.GetByID(context.Background(), 7)

	assert.True(t, apperror.IsNotFound(err))
}

func TestList(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	_, _ = svc.Create(ctx, domain.BrandView{Name: "Nike"})
	_, _ = svc.Create(ctx, domain.BrandView{Name: "Adidas"})

	views, err := svc.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, []domain.BrandView{{ID: 1, Name: "Nike"}, {ID: 2, Name: "Adidas"}}, views)
}

func TestUpdate_Success_SameNameDifferentCase(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	created, _ := svc.Create(ctx, domain.BrandView{Name: "nike"})

	err := svc.Update(ctx, created.ID, domain.BrandView{ID: created.ID, Name: "Nike"})

	require.NoError(t, err)
	got, _ := svc.GetByID(ctx, created.ID)
	assert.Equal(t, "Nike", got.Name)
}

func TestUpdate_Fail_IDMismatch(t *testing.T) {
	svc, _ := newService()

	err := svc.Update(context.Background(), 1, domain.BrandView{ID: 2, Name: "Nike"})

	assert.True(t, apperror.IsPrecondition(err))
}

func TestUpdate_Fail_NameTakenByAnother(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	_, _ = svc.Create(ctx, domain.BrandView{Name: "Nike"})
	puma, _ := svc.Create(ctx, domain.BrandView{Name: "Puma"})

	err := svc.Update(ctx, puma.ID, domain.BrandView{ID: puma.ID, Name: "Nike"})

	assert.IsType(t, &apperror.ConflictError{}, err)
}

func TestDelete(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()
	created, _ := svc.Create(ctx, domain.BrandView{Name: "Nike"})

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Equal(t, 0, repo.Len())

	err := svc.Delete(ctx, created.ID)
	assert.True(t, apperror.IsNotFound(err))
}
