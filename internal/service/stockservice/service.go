package stockservice

import (
	"context"
	"fmt"
	"strings"

	"gocatalog/internal/domain"
	apperror "gocatalog/internal/errors"
	"gocatalog/internal/pkg/logger"
	"gocatalog/internal/stockpolicy"
)

// ProductReader define o contrato que o Serviço de Estoque espera da camada de Persistência.
type ProductReader interface {
	GetByID(ctx context.Context, id int) (*domain.Product, error)
}

// Service avalia a disponibilidade de produtos com a política de estoque escolhida.
type Service struct {
	repo          ProductReader
	defaultPolicy stockpolicy.Policy
	logger        logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Estoque.
// defaultPolicy é usada quando o chamador não escolhe uma política.
func NewService(repo ProductReader, defaultPolicy stockpolicy.Policy, logger logger.Logger) *Service {
	return &Service{repo: repo, defaultPolicy: defaultPolicy, logger: logger}
}

// CheckAvailability carrega o produto e aplica a política policyName (ou a padrão, se vazia).
func (s *Service) CheckAvailability(ctx context.Context, productID int, policyName string) (domain.AvailabilityView, error) {
	s.logger.Debug("Iniciando avaliação de disponibilidade no serviço.", map[string]interface{}{
		"product_id": productID,
		"policy":     policyName,
	})

	policy := s.defaultPolicy
	if strings.TrimSpace(policyName) != "" {
		var err error
		if policy, err = stockpolicy.ByName(policyName); err != nil {
			s.logger.Warn("Política de estoque desconhecida.", map[string]interface{}{"policy": policyName})
			return domain.AvailabilityView{}, err
		}
	}

	if productID <= 0 {
		return domain.AvailabilityView{}, apperror.NewValidationError("O ID do produto deve ser um inteiro positivo.")
	}

	product, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		s.logger.Error("Falha ao buscar produto para avaliação de estoque.", err)
		return domain.AvailabilityView{}, err
	}
	if product == nil {
		return domain.AvailabilityView{}, apperror.NewNotFoundError(fmt.Sprintf("Produto com ID %d não foi encontrado.", productID))
	}

	availability := policy.CheckAvailability(*product)

	s.logger.Info("Disponibilidade avaliada.", map[string]interface{}{
		"product_id":   product.ID,
		"policy":       policy.Name(),
		"availability": availability.String(),
	})
	return domain.AvailabilityView{
		ProductID:    product.ID,
		Name:         product.Name,
		RealStock:    product.RealStock,
		MinStock:     product.MinStock,
		MaxStock:     product.MaxStock,
		Policy:       policy.Name(),
		Availability: availability,
		InRestocking: product.InRestocking(),
	}, nil
}
