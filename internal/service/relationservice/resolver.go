package relationservice

import (
	"context"
	"strings"

	"gocatalog/internal/domain"
	"gocatalog/internal/pkg/logger"
)

// Resolver transforma o nome livre de uma marca ou tipo no ID da linha
// correspondente, criando-a quando ainda não existe.
//
// O par busca/insert não é atômico: duas resoluções concorrentes do mesmo nome
// novo podem criar duas linhas. GetByName devolve sempre a mais antiga.
type Resolver struct {
	brands domain.BrandRepository
	types  domain.TypeProductRepository
	logger logger.Logger
}

// NewResolver cria e retorna uma nova instância do Resolvedor de Relações.
func NewResolver(brands domain.BrandRepository, types domain.TypeProductRepository, logger logger.Logger) *Resolver {
	return &Resolver{brands: brands, types: types, logger: logger}
}

// ResolveBrand devolve o ID da marca com esse nome. Nome vazio devolve nil.
func (r *Resolver) ResolveBrand(ctx context.Context, name string) (*int, error) {
	return resolve[domain.Brand](ctx, r.brands, r.logger, name, func(n string) domain.Brand {
		return domain.Brand{Name: n}
	})
}

// ResolveType devolve o ID do tipo de produto com esse nome. Nome vazio devolve nil.
func (r *Resolver) ResolveType(ctx context.Context, name string) (*int, error) {
	return resolve[domain.TypeProduct](ctx, r.types, r.logger, name, func(n string) domain.TypeProduct {
		return domain.TypeProduct{Name: n}
	})
}

func resolve[T domain.Entity[T]](ctx context.Context, repo domain.Repository[T], log logger.Logger, name string, build func(string) T) (*int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	existing, err := repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		id := (*existing).Key()
		log.Debug("Relação encontrada pelo nome.", map[string]interface{}{"name": name, "id": id})
		return &id, nil
	}

	created, err := repo.Add(ctx, build(name))
	if err != nil {
		return nil, err
	}
	id := created.Key()
	log.Debug("Relação criada implicitamente; resoluções concorrentes podem duplicar o nome.", map[string]interface{}{"name": name, "id": id})
	return &id, nil
}
