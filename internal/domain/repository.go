package domain

import "context"

// Entity é o contrato mínimo que o repositório genérico precisa de uma entidade:
// a identidade inteira atribuída pelo store e a chave natural (nome).
type Entity[T any] interface {
	Key() int
	NaturalKey() string
	WithKey(id int) T
}

// Repository é a fachada CRUD genérica sobre o Entity Store.
//
// GetByID e GetByName retornam (nil, nil) quando a linha não existe: ausência
// não é erro. Falhas de I/O chegam como apperror.StorageError.
type Repository[T Entity[T]] interface {
	GetByID(ctx context.Context, id int) (*T, error)
	GetByName(ctx context.Context, name string) (*T, error)
	GetAll(ctx context.Context) ([]T, error)
	Add(ctx context.Context, entity T) (T, error)
	Update(ctx context.Context, existing, incoming T) error
	Delete(ctx context.Context, entity T) error
}

// ProductRepository lê produtos já com Brand e Type resolvidos (LEFT JOIN).
type ProductRepository interface {
	Repository[Product]
}

type BrandRepository interface {
	Repository[Brand]
}

type TypeProductRepository interface {
	Repository[TypeProduct]
}
