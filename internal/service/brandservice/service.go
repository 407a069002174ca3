package brandservice

import (
	"context"
	"fmt"
	"strings"

	"gocatalog/internal/domain"
	apperror "gocatalog/internal/errors"
	"gocatalog/internal/mapper"
	"gocatalog/internal/pkg/logger"
	"gocatalog/internal/pkg/validation"
)

// Service é a estrutura que implementa o CRUD explícito de marcas.
type Service struct {
	repo   domain.BrandRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Marcas.
func NewService(repo domain.BrandRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create cria uma marca. Ao contrário do resolvedor, a criação explícita
// recusa um nome que já existe.
func (s *Service) Create(ctx context.Context, view domain.BrandView) (domain.BrandView, error) {
	s.logger.Debug("Iniciando criação de marca no serviço.", map[string]interface{}{"name": view.Name})

	brand := mapper.FromBrandView(view)
	brand.ID = 0
	brand.Name = strings.TrimSpace(brand.Name)
	if err := validation.Struct(brand); err != nil {
		s.logger.Warn("Falha na validação do nome da marca.", map[string]interface{}{"name": view.Name, "error": err.Error()})
		return domain.BrandView{}, err
	}

	if err := s.ensureNameFree(ctx, brand.Name, 0); err != nil {
		return domain.BrandView{}, err
	}

	created, err := s.repo.Add(ctx, brand)
	if err != nil {
		s.logger.Error("Falha ao criar marca no repositório.", err)
		return domain.BrandView{}, err
	}

	s.logger.Info("Marca criada com sucesso.", map[string]interface{}{"id": created.ID, "name": created.Name})
	return mapper.ToBrandView(created), nil
}

// GetByID busca uma marca pelo ID.
func (s *Service) GetByID(ctx context.Context, id int) (domain.BrandView, error) {
	brand, err := s.find(ctx, id)
	if err != nil {
		return domain.BrandView{}, err
	}
	return mapper.ToBrandView(brand), nil
}

// List busca todas as marcas.
func (s *Service) List(ctx context.Context) ([]domain.BrandView, error) {
	brands, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Falha ao buscar todas as marcas no repositório.", err)
		return nil, err
	}
	return mapper.ToBrandViews(brands), nil
}

// Update renomeia a marca id. O ID do corpo deve coincidir com o da rota.
func (s *Service) Update(ctx context.Context, id int, view domain.BrandView) error {
	s.logger.Debug("Iniciando atualização de marca no serviço.", map[string]interface{}{"id": id, "name": view.Name})

	if view.ID != id {
		return apperror.NewPreconditionError(fmt.Sprintf("ID %d do corpo difere do ID %d da rota.", view.ID, id))
	}
	incoming := mapper.FromBrandView(view)
	incoming.Name = strings.TrimSpace(incoming.Name)
	if err := validation.Struct(incoming); err != nil {
		return err
	}

	existing, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := s.ensureNameFree(ctx, incoming.Name, id); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, existing, incoming); err != nil {
		s.logger.Error("Falha ao atualizar marca no repositório.", err)
		return err
	}

	s.logger.Info("Marca atualizada com sucesso.", map[string]interface{}{"id": id, "name": incoming.Name})
	return nil
}

// Delete remove a marca. Produtos que a referenciam ficam com a referência pendente.
func (s *Service) Delete(ctx context.Context, id int) error {
	existing, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, existing); err != nil {
		s.logger.Error("Falha ao deletar marca no repositório.", err)
		return err
	}

	s.logger.Info("Marca deletada com sucesso.", map[string]interface{}{"id": id})
	return nil
}

func (s *Service) find(ctx context.Context, id int) (domain.Brand, error) {
	if id <= 0 {
		return domain.Brand{}, apperror.NewValidationError("O ID da marca deve ser um inteiro positivo.")
	}

	brand, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Falha ao buscar marca no repositório.", err)
		return domain.Brand{}, err
	}
	if brand == nil {
		return domain.Brand{}, apperror.NewNotFoundError(fmt.Sprintf("Marca com ID %d não foi encontrada.", id))
	}
	return *brand, nil
}

// ensureNameFree falha com Conflict se outra marca (ID diferente de self) já usa o nome.
func (s *Service) ensureNameFree(ctx context.Context, name string, self int) error {
	other, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if other != nil && other.ID != self {
		s.logger.Warn("Nome de marca já utilizado.", map[string]interface{}{"name": name, "id": other.ID})
		return apperror.NewConflictError(fmt.Sprintf("Já existe uma marca com o nome %q (ID %d).", other.Name, other.ID))
	}
	return nil
}
