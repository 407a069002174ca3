package stock

import (
	"context"
	"net/http"

	"gocatalog/internal/api/respond"
	"gocatalog/internal/domain"
	"gocatalog/internal/pkg/logger"
)

// StockService define o contrato que o Handler espera da camada de Serviço.
type StockService interface {
	CheckAvailability(ctx context.Context, productID int, policyName string) (domain.AvailabilityView, error)
}

// Handler agrupa todos os métodos de Handler de estoque.
type Handler struct {
	Service StockService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc StockService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// AvailabilityHandler lida com a requisição GET /v1/products/{id}/availability.
// @Summary Avalia a disponibilidade de um produto
// @Description Aplica a política de estoque informada em ?policy= ou a política padrão do serviço.
// @Tags stock
// @Produce json
// @Param id path int true "ID do Produto"
// @Param policy query string false "Política de estoque" Enums(shortage, preorder, strict)
// @Success 200 {object} domain.AvailabilityView "Disponibilidade avaliada"
// @Failure 400 {object} domain.ErrorResponse "Política desconhecida ou ID inválido"
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Router /products/{id}/availability [get]
func (h *Handler) AvailabilityHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	view, err := h.Service.CheckAvailability(r.Context(), id, r.URL.Query().Get("policy"))
	respond.Handle(w, r, h.Logger, view, err, http.StatusOK)
}
