package typeproduct

import (
	"context"
	"net/http"

	"gocatalog/internal/api/respond"
	"gocatalog/internal/domain"
	"gocatalog/internal/pkg/logger"
)

// TypeService define o contrato que o Handler espera da camada de Serviço.
type TypeService interface {
	Create(ctx context.Context, view domain.TypeProductView) (domain.TypeProductView, error)
	GetByID(ctx context.Context, id int) (domain.TypeProductView, error)
	List(ctx context.Context) ([]domain.TypeProductView, error)
	Update(ctx context.Context, id int, view domain.TypeProductView) error
	Delete(ctx context.Context, id int) error
}

// Handler agrupa todos os métodos de Handler de tipos de produto.
type Handler struct {
	Service TypeService
	Logger  logger.Logger
}

func NewHandler(svc TypeService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// CreateTypeHandler lida com a requisição POST /v1/types.
// @Summary Cria um novo tipo de produto
// @Tags types
// @Accept json
// @Produce json
// @Param type body domain.TypeProductView true "Nome do tipo"
// @Success 201 {object} domain.TypeProductView "Tipo criado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 409 {object} domain.ErrorResponse "Nome já utilizado"
// @Security ApiKeyAuth
// @Router /types [post]
func (h *Handler) CreateTypeHandler(w http.ResponseWriter, r *http.Request) {
	var view domain.TypeProductView
	if err := respond.DecodeJSON(r, &view); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	created, err := h.Service.Create(r.Context(), view)
	respond.Handle(w, r, h.Logger, created, err, http.StatusCreated)
}

// GetTypeByIDHandler lida com a requisição GET /v1/types/{id}.
// @Summary Obtém um tipo de produto por ID
// @Tags types
// @Produce json
// @Param id path int true "ID do Tipo"
// @Success 200 {object} domain.TypeProductView "Tipo encontrado"
// @Failure 404 {object} domain.ErrorResponse "Tipo não encontrado"
// @Router /types/{id} [get]
func (h *Handler) GetTypeByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	view, err := h.Service.GetByID(r.Context(), id)
	respond.Handle(w, r, h.Logger, view, err, http.StatusOK)
}

// ListTypesHandler lida com a requisição GET /v1/types.
// @Summary Lista os tipos de produto
// @Tags types
// @Produce json
// @Success 200 {array} domain.TypeProductView "Lista de tipos"
// @Router /types [get]
func (h *Handler) ListTypesHandler(w http.ResponseWriter, r *http.Request) {
	views, err := h.Service.List(r.Context())
	respond.Handle(w, r, h.Logger, views, err, http.StatusOK)
}

// UpdateTypeHandler lida com a requisição PUT /v1/types/{id}.
// @Summary Renomeia um tipo de produto
// @Tags types
// @Accept json
// @Param id path int true "ID do Tipo"
// @Param type body domain.TypeProductView true "Tipo com o mesmo ID da rota"
// @Success 204 "Tipo atualizado"
// @Failure 400 {object} domain.ErrorResponse "ID divergente ou payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Tipo não encontrado"
// @Security ApiKeyAuth
// @Router /types/{id} [put]
func (h *Handler) UpdateTypeHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	var view domain.TypeProductView
	if err := respond.DecodeJSON(r, &view); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	err = h.Service.Update(r.Context(), id, view)
	respond.Handle(w, r, h.Logger, nil, err, http.StatusNoContent)
}

// DeleteTypeHandler lida com a requisição DELETE /v1/types/{id}.
// @Summary Remove um tipo de produto
// @Tags types
// @Param id path int true "ID do Tipo"
// @Success 204 "Tipo removido"
// @Failure 404 {object} domain.ErrorResponse "Tipo não encontrado"
// @Security ApiKeyAuth
// @Router /types/{id} [delete]
func (h *Handler) DeleteTypeHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	err = h.Service.Delete(r.Context(), id)
	respond.Handle(w, r, h.Logger, nil, err, http.StatusNoContent)
}
