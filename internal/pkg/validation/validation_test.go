package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gocatalog/internal/domain"
	apperror "gocatalog/internal/errors"
	"gocatalog/internal/pkg/validation"
)

func TestStruct_Valid(t *testing.T) {
	err := validation.Struct(domain.ProductCreateInput{Name: "Chair", RealStock: 5, MinStock: 10, MaxStock: 20})
	assert.NoError(t, err)
}

func TestStruct_ReportsJSONFieldNames(t *testing.T) {
	err := validation.Struct(domain.ProductCreateInput{RealStock: -1, MinStock: 10, MaxStock: 5})

	assert.True(t, apperror.IsValidation(err))
	assert.Contains(t, err.Error(), "'name' é obrigatório")
	assert.Contains(t, err.Error(), "'realStock' deve ser maior ou igual a 0")
	assert.Contains(t, err.Error(), "'maxStock' deve ser maior ou igual a 'MinStock'")
}

func TestStruct_BrandRequiresName(t *testing.T) {
	err := validation.Struct(domain.Brand{})
	assert.True(t, apperror.IsValidation(err))
}
