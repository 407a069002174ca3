package domain

// Product é o item do catálogo persistido na tabela products.
// BrandID e TypeID são referências anuláveis; Brand e Type só são
// preenchidos pelas leituras com JOIN e nunca são gravados.
type Product struct {
	ID          int    `json:"id" db:"id"`
	Name        string `json:"name" db:"name" validate:"required"`
	Description string `json:"description" db:"description"`
	PhotoName   string `json:"photoName" db:"photo_name"`
	PhotoURI    string `json:"photoUri" db:"photo_uri"`
	RealStock   int    `json:"realStock" db:"real_stock" validate:"gte=0"`
	MinStock    int    `json:"minStock" db:"min_stock" validate:"gte=0"`
	MaxStock    int    `json:"maxStock" db:"max_stock" validate:"gtefield=MinStock"`
	BrandID     *int   `json:"brandId,omitempty" db:"brand_id"`
	TypeID      *int   `json:"typeId,omitempty" db:"type_id"`

	Brand *Brand       `json:"-" db:"-"`
	Type  *TypeProduct `json:"-" db:"-"`
}

// InRestocking é uma dica de exibição: o estoque real chegou ao mínimo.
// Não depende da política de estoque em uso.
func (p Product) InRestocking() bool {
	return p.RealStock <= p.MinStock
}

func (p Product) Key() int { return p.ID }
func (p Product) NaturalKey() string { return p.Name }
func (p Product) WithKey(id int) Product { p.ID = id; return p }

// Brand é uma marca; o nome é a chave natural usada na deduplicação.
type Brand struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name" validate:"required"`
}

func (b Brand) Key() int { return b.ID }
func (b Brand) NaturalKey() string { return b.Name }
func (b Brand) WithKey(id int) Brand { b.ID = id; return b }

// TypeProduct é o tipo de produto; mesma semântica de chave natural da Brand.
type TypeProduct struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name" validate:"required"`
}

func (t TypeProduct) Key() int { return t.ID }
func (t TypeProduct) NaturalKey() string { return t.Name }
func (t TypeProduct) WithKey(id int) TypeProduct { t.ID = id; return t }
