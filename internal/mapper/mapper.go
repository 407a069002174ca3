// Package mapper converte entidades do catálogo nas projeções expostas pela API.
// Relações ausentes viram campos nulos; nenhuma conversão falha.
package mapper

import "gocatalog/internal/domain"

func ToListView(p domain.Product) domain.ProductListView {
	return domain.ProductListView{
		ID:    p.ID,
		Name:  p.Name,
		Type:  typeName(p),
		Brand: brandName(p),
	}
}

func ToListViews(products []domain.Product) []domain.ProductListView {
	views := make([]domain.ProductListView, 0, len(products))
	for _, p := range products {
		views = append(views, ToListView(p))
	}
	return views
}

// ToDetailView expõe RealStock como Stock e calcula InRestocking.
func ToDetailView(p domain.Product) domain.ProductDetailView {
	return domain.ProductDetailView{
		ID:           p.ID,
		Name:         p.Name,
		Type:         typeName(p),
		Brand:        brandName(p),
		Description:  p.Description,
		PhotoName:    p.PhotoName,
		PhotoURI:     p.PhotoURI,
		Stock:        p.RealStock,
		InRestocking: p.InRestocking(),
	}
}

func ToCreateInput(p domain.Product) domain.ProductCreateInput {
	input := domain.ProductCreateInput{
		Name:        p.Name,
		Description: p.Description,
		PhotoName:   p.PhotoName,
		PhotoURI:    p.PhotoURI,
		RealStock:   p.RealStock,
		MinStock:    p.MinStock,
		MaxStock:    p.MaxStock,
	}
	if p.Brand != nil {
		input.Brand = p.Brand.Name
	}
	if p.Type != nil {
		input.TypeProduct = p.Type.Name
	}
	return input
}

// FromCreateInput produz um produto sem referências; BrandID e TypeID são
// preenchidos depois pelo resolvedor de relações.
func FromCreateInput(in domain.ProductCreateInput) domain.Product {
	return domain.Product{
		Name:        in.Name,
		Description: in.Description,
		PhotoName:   in.PhotoName,
		PhotoURI:    in.PhotoURI,
		RealStock:   in.RealStock,
		MinStock:    in.MinStock,
		MaxStock:    in.MaxStock,
	}
}

func ToBrandView(b domain.Brand) domain.BrandView {
	return domain.BrandView{ID: b.ID, Name: b.Name}
}

func FromBrandView(v domain.BrandView) domain.Brand {
	return domain.Brand{ID: v.ID, Name: v.Name}
}

func ToBrandViews(brands []domain.Brand) []domain.BrandView {
	views := make([]domain.BrandView, 0, len(brands))
	for _, b := range brands {
		views = append(views, ToBrandView(b))
	}
	return views
}

func ToTypeView(t domain.TypeProduct) domain.TypeProductView {
	return domain.TypeProductView{ID: t.ID, Name: t.Name}
}

func FromTypeView(v domain.TypeProductView) domain.TypeProduct {
	return domain.TypeProduct{ID: v.ID, Name: v.Name}
}

func ToTypeViews(types []domain.TypeProduct) []domain.TypeProductView {
	views := make([]domain.TypeProductView, 0, len(types))
	for _, t := range types {
		views = append(views, ToTypeView(t))
	}
	return views
}

func brandName(p domain.Product) *string {
	if p.Brand == nil {
		return nil
	}
	name := p.Brand.Name
	return &name
}

func typeName(p domain.Product) *string {
	if p.Type == nil {
		return nil
	}
	name := p.Type.Name
	return &name
}
