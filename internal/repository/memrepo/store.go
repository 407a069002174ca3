package memrepo

import "gocatalog/internal/domain"

// Store agrupa as três tabelas do catálogo compartilhando o mesmo espaço de relações.
type Store struct {
	Products *ProductRepository
	Brands   *Table[domain.Brand]
	Types    *Table[domain.TypeProduct]
}

func NewStore() *Store {
	brands := NewBrandRepository()
	types := NewTypeProductRepository()
	return &Store{
		Products: NewProductRepository(brands, types),
		Brands:   brands,
		Types:    types,
	}
}

var (
	_ domain.ProductRepository     = (*ProductRepository)(nil)
	_ domain.BrandRepository       = (*Table[domain.Brand])(nil)
	_ domain.TypeProductRepository = (*Table[domain.TypeProduct])(nil)
)
