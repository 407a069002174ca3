package productservice

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"gocatalog/internal/domain"
	apperror "gocatalog/internal/errors"
	"gocatalog/internal/mapper"
	"gocatalog/internal/pkg/logger"
	"gocatalog/internal/pkg/validation"
)

// RelationResolver define o contrato que o Serviço de Produto espera do resolvedor de marcas e tipos.
type RelationResolver interface {
	ResolveBrand(ctx context.Context, name string) (*int, error)
	ResolveType(ctx context.Context, name string) (*int, error)
}

// Service é a estrutura que implementa os casos de uso de produto.
type Service struct {
	repo     domain.ProductRepository
	resolver RelationResolver
	logger   logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Produto.
func NewService(repo domain.ProductRepository, resolver RelationResolver, logger logger.Logger) *Service {
	return &Service{repo: repo, resolver: resolver, logger: logger}
}

// Create valida o payload, resolve (ou cria) marca e tipo pelo nome e persiste o produto.
// Devolve a visão de detalhe relida do store, já com os nomes das relações.
func (s *Service) Create(ctx context.Context, input domain.ProductCreateInput) (domain.ProductDetailView, error) {
	s.logger.Debug("Iniciando criação de produto no serviço.", map[string]interface{}{"name": input.Name})

	if err := validation.Struct(input); err != nil {
		s.logger.Warn("Payload de produto inválido.", map[string]interface{}{"name": input.Name, "error": err.Error()})
		return domain.ProductDetailView{}, err
	}

	product := mapper.FromCreateInput(input)

	// Marca e tipo vivem em tabelas distintas, então resolvem em paralelo.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		id, err := s.resolver.ResolveBrand(gctx, input.Brand)
		product.BrandID = id
		return err
	})
	var typeID *int
	g.Go(func() error {
		id, err := s.resolver.ResolveType(gctx, input.TypeProduct)
		typeID = id
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("Falha ao resolver relações do produto.", err)
		return domain.ProductDetailView{}, err
	}
	product.TypeID = typeID

	created, err := s.repo.Add(ctx, product)
	if err != nil {
		s.logger.Error("Falha ao criar produto no repositório.", err)
		return domain.ProductDetailView{}, err
	}

	stored, err := s.repo.GetByID(ctx, created.ID)
	if err != nil {
		return domain.ProductDetailView{}, err
	}
	if stored == nil {
		// Excluído entre o insert e a releitura.
		return domain.ProductDetailView{}, apperror.NewNotFoundError(fmt.Sprintf("Produto com ID %d não foi encontrado.", created.ID))
	}

	s.logger.Info("Produto criado com sucesso.", map[string]interface{}{"id": stored.ID, "name": stored.Name})
	return mapper.ToDetailView(*stored), nil
}

// GetByID busca um produto e devolve sua visão de detalhe.
func (s *Service) GetByID(ctx context.Context, id int) (domain.ProductDetailView, error) {
	product, err := s.find(ctx, id)
	if err != nil {
		return domain.ProductDetailView{}, err
	}
	return mapper.ToDetailView(product), nil
}

// GetByName busca um produto pelo nome exato, sem diferenciar maiúsculas.
func (s *Service) GetByName(ctx context.Context, name string) (domain.ProductDetailView, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ProductDetailView{}, apperror.NewValidationError("O nome do produto não pode ser vazio.")
	}

	product, err := s.repo.GetByName(ctx, name)
	if err != nil {
		s.logger.Error("Falha ao buscar produto por nome no repositório.", err)
		return domain.ProductDetailView{}, err
	}
	if product == nil {
		return domain.ProductDetailView{}, apperror.NewNotFoundError(fmt.Sprintf("Produto com nome %q não foi encontrado.", name))
	}
	return mapper.ToDetailView(*product), nil
}

// List devolve a visão de listagem de todos os produtos.
func (s *Service) List(ctx context.Context) ([]domain.ProductListView, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Falha ao listar produtos no repositório.", err)
		return nil, err
	}

	s.logger.Info("Produtos listados com sucesso.", map[string]interface{}{"count": len(products)})
	return mapper.ToListViews(products), nil
}

// Update sobrescreve todos os campos do produto id com os de incoming.
// O ID do corpo deve coincidir com o da rota.
func (s *Service) Update(ctx context.Context, id int, incoming domain.Product) error {
	s.logger.Debug("Iniciando atualização de produto no serviço.", map[string]interface{}{"id": id})

	if incoming.ID != id {
		return apperror.NewPreconditionError(fmt.Sprintf("ID %d do corpo difere do ID %d da rota.", incoming.ID, id))
	}
	if err := validation.Struct(incoming); err != nil {
		return err
	}

	existing, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Update(ctx, existing, incoming); err != nil {
		s.logger.Error("Falha ao atualizar produto no repositório.", err)
		return err
	}

	s.logger.Info("Produto atualizado com sucesso.", map[string]interface{}{"id": id})
	return nil
}

// Delete remove o produto id.
func (s *Service) Delete(ctx context.Context, id int) error {
	existing, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, existing); err != nil {
		s.logger.Error("Falha ao deletar produto no repositório.", err)
		return err
	}

	s.logger.Info("Produto deletado com sucesso.", map[string]interface{}{"id": id})
	return nil
}

func (s *Service) find(ctx context.Context, id int) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, apperror.NewValidationError("O ID do produto deve ser um inteiro positivo.")
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Falha ao buscar produto no repositório.", err)
		return domain.Product{}, err
	}
	if product == nil {
		return domain.Product{}, apperror.NewNotFoundError(fmt.Sprintf("Produto com ID %d não foi encontrado.", id))
	}
	return *product, nil
}
