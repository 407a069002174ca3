package domain

// ProductListView é a projeção usada na listagem de produtos.
type ProductListView struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Type  *string `json:"type"`
	Brand *string `json:"brand"`
}

func (v ProductListView) Equal(o ProductListView) bool {
	return v.ID == o.ID &&
		v.Name == o.Name &&
		equalOptional(v.Type, o.Type) &&
		equalOptional(v.Brand, o.Brand)
}

// ProductDetailView é a projeção de detalhe, com o campo derivado InRestocking.
type ProductDetailView struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Type         *string `json:"type"`
	Brand        *string `json:"brand"`
	Description  string  `json:"description"`
	PhotoName    string  `json:"photoName"`
	PhotoURI     string  `json:"photoUri"`
	Stock        int     `json:"stock"`
	InRestocking bool    `json:"inRestocking"`
}

func (v ProductDetailView) Equal(o ProductDetailView) bool {
	return v.ID == o.ID &&
		v.Name == o.Name &&
		equalOptional(v.Type, o.Type) &&
		equalOptional(v.Brand, o.Brand) &&
		v.Description == o.Description &&
		v.PhotoName == o.PhotoName &&
		v.PhotoURI == o.PhotoURI &&
		v.Stock == o.Stock &&
		v.InRestocking == o.InRestocking
}

// ProductCreateInput é o payload de criação. Brand e TypeProduct são texto livre,
// resolvidos (ou criados) pelo resolvedor de relações antes do insert.
type ProductCreateInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	PhotoName   string `json:"photoName"`
	PhotoURI    string `json:"photoUri"`
	RealStock   int    `json:"realStock" validate:"gte=0"`
	MinStock    int    `json:"minStock" validate:"gte=0"`
	MaxStock    int    `json:"maxStock" validate:"gtefield=MinStock"`
	Brand       string `json:"brand"`
	TypeProduct string `json:"typeProduct"`
}

// Todos os campos são comparáveis, então == já é igualdade campo a campo.
func (v ProductCreateInput) Equal(o ProductCreateInput) bool {
	return v == o
}

// BrandView é a representação externa de uma marca.
type BrandView struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (v BrandView) Equal(o BrandView) bool { return v == o }

// TypeProductView é a representação externa de um tipo de produto.
type TypeProductView struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (v TypeProductView) Equal(o TypeProductView) bool { return v == o }

func equalOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
