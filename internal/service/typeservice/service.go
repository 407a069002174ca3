package typeservice

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

// Service é a estrutura que implementa o CRUD explícito de tipos de produto.
type Service struct {
	repo   domain.TypeProductRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Tipos de Produto.
func NewService(repo domain.TypeProductRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create cria um tipo de produto, recusando nomes já existentes.
func (s *Service) Create(ctx context.Context, view domain.TypeProductView) (domain.TypeProductView, error) {
	s.logger.Debug("Iniciando criação de tipo de produto no serviço.", map[string]interface{}{"name": view.Name})

	typeProduct := mapper.FromTypeView(view)
	typeProduct.ID = 0
	typeProduct.Name = strings.TrimSpace(typeProduct.Name)
	if err := validation.Struct(typeProduct); err != nil {
		return domain.TypeProductView{}, err
	}

	if err := s.ensureNameFree(ctx, typeProduct.Name, 0); err != nil {
		return domain.TypeProductView{}, err
	}

	created, err := s.repo.Add(ctx, typeProduct)
	if err != nil {
		s.logger.Error("Falha ao criar tipo de produto no repositório.", err)
		return domain.TypeProductView{}, err
	}

	s.logger.Info("Tipo de produto criado com sucesso.", map[string]interface{}{"id": created.ID, "name": created.Name})
	return mapper.ToTypeView(created), nil
}

func (s *Service) GetByID(ctx context.Context, id int) (domain.TypeProductView, error) {
	typeProduct, err := s.find(ctx, id)
	if err != nil {
		return domain.TypeProductView{}, err
	}
	return mapper.ToTypeView(typeProduct), nil
}

func (s *Service) List(ctx context.Context) ([]domain.TypeProductView, error) {
	types, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Falha ao buscar tipos de produto no repositório.", err)
		return nil, err
	}
	return mapper.ToTypeViews(types), nil
}

// Update renomeia o tipo id. O ID do corpo deve coincidir com o da rota.
func (s *Service) Update(ctx context.Context, id int, view domain.TypeProductView) error {
	if view.ID != id {
		return apperror.NewPreconditionError(fmt.Sprintf("ID %d do corpo difere do ID %d da rota.", view.ID, id))
	}
	incoming := mapper.FromTypeView(view)
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
		s.logger.Error("Falha ao atualizar tipo de produto no repositório.", err)
		return err
	}

	s.logger.Info("Tipo de produto atualizado com sucesso.", map[string]interface{}{"id": id, "name": incoming.Name})
	return nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	existing, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, existing); err != nil {
		s.logger.Error("Falha ao deletar tipo de produto no repositório.", err)
		return err
	}

	s.logger.Info("Tipo de produto deletado com sucesso.", map[string]interface{}{"id": id})
	return nil
}

func (s *Service) find(ctx context.Context, id int) (domain.TypeProduct, error) {
	if id <= 0 {
		return domain.TypeProduct{}, apperror.NewValidationError("O ID do tipo de produto deve ser um inteiro positivo.")
	}

	typeProduct, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.TypeProduct{}, err
	}
	if typeProduct == nil {
		return domain.TypeProduct{}, apperror.NewNotFoundError(fmt.Sprintf("Tipo de produto com ID %d não foi encontrado.", id))
	}
	return *typeProduct, nil
}

func (s *Service) ensureNameFree(ctx context.Context, name string, self int) error {
	other, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if other != nil && other.ID != self {
		return apperror.NewConflictError(fmt.Sprintf("Já existe um tipo de produto com o nome %q (ID %d).", other.Name, other.ID))
	}
	return nil
}
