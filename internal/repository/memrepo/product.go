package memrepo

import (
	"context"

	"gocatalog/internal/domain"
)

// ProductRepository guarda produtos em memória e resolve Brand/Type na leitura,
// como o LEFT JOIN do repositório Postgres.
type ProductRepository struct {
	rows   *Table[domain.Product]
	brands *Table[domain.Brand]
	types  *Table[domain.TypeProduct]
}

// NewProductRepository cria o repositório de produtos ligado às tabelas de marcas e tipos.
func NewProductRepository(brands *Table[domain.Brand], types *Table[domain.TypeProduct]) *ProductRepository {
	return &ProductRepository{
		rows:   newTable[domain.Product]("Produto"),
		brands: brands,
		types:  types,
	}
}

func (r *ProductRepository) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	p, err := r.rows.GetByID(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	return r.withRelations(ctx, *p)
}

func (r *ProductRepository) GetByName(ctx context.Context, name string) (*domain.Product, error) {
	p, err := r.rows.GetByName(ctx, name)
	if err != nil || p == nil {
		return nil, err
	}
	return r.withRelations(ctx, *p)
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]domain.Product, error) {
	all, err := r.rows.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		p, err := r.withRelations(ctx, all[i])
		if err != nil {
			return nil, err
		}
		all[i] = *p
	}
	return all, nil
}

func (r *ProductRepository) Add(ctx context.Context, product domain.Product) (domain.Product, error) {
	return r.rows.Add(ctx, detach(product))
}

func (r *ProductRepository) Update(ctx context.Context, existing, incoming domain.Product) error {
	return r.rows.Update(ctx, existing, detach(incoming))
}

func (r *ProductRepository) Delete(ctx context.Context, product domain.Product) error {
	return r.rows.Delete(ctx, product)
}

// Len devolve o número de produtos armazenados.
func (r *ProductRepository) Len() int { return r.rows.Len() }

// detach descarta a navegação: só as colunas de referência são persistidas.
func detach(p domain.Product) domain.Product {
	p.Brand = nil
	p.Type = nil
	return p
}

func (r *ProductRepository) withRelations(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if p.BrandID != nil {
		brand, err := r.brands.GetByID(ctx, *p.BrandID)
		if err != nil {
			return nil, err
		}
		p.Brand = brand
	}
	if p.TypeID != nil {
		typeProduct, err := r.types.GetByID(ctx, *p.TypeID)
		if err != nil {
			return nil, err
		}
		p.Type = typeProduct
	}
	return &p, nil
}
