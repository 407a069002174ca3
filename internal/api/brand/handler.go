package brand

import (
	"context"
	"net/http"

	"gocatalog/internal/api/respond"
	"gocatalog/internal/domain"
	"gocatalog/internal/pkg/logger"
)

// BrandService define o contrato que o Handler espera da camada de Serviço.
type BrandService interface {
	Create(ctx context.Context, view domain.BrandView) (domain.BrandView, error)
	GetByID(ctx context.Context, id int) (domain.BrandView, error)
	List(ctx context.Context) ([]domain.BrandView, error)
	Update(ctx context.Context, id int, view domain.BrandView) error
	Delete(ctx context.Context, id int) error
}

// Handler agrupa todos os métodos de Handler de marcas.
type Handler struct {
	Service BrandService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc BrandService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// CreateBrandHandler lida com a requisição POST /v1/brands.
// @Summary Cria uma nova marca
// @Tags brands
// @Accept json
// @Produce json
// @Param brand body domain.BrandView true "Nome da marca"
// @Success 201 {object} domain.BrandView "Marca criada com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 409 {object} domain.ErrorResponse "Nome já utilizado"
// @Security ApiKeyAuth
// @Router /brands [post]
func (h *Handler) CreateBrandHandler(w http.ResponseWriter, r *http.Request) {
	var view domain.BrandView
	if err := respond.DecodeJSON(r, &view); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	created, err := h.Service.Create(r.Context(), view)
	respond.Handle(w, r, h.Logger, created, err, http.StatusCreated)
}

// GetBrandByIDHandler lida com a requisição GET /v1/brands/{id}.
// @Summary Obtém uma marca por ID
// @Tags brands
// @Produce json
// @Param id path int true "ID da Marca"
// @Success 200 {object} domain.BrandView "Marca encontrada"
// @Failure 404 {object} domain.ErrorResponse "Marca não encontrada"
// @Router /brands/{id} [get]
func (h *Handler) GetBrandByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	view, err := h.Service.GetByID(r.Context(), id)
	respond.Handle(w, r, h.Logger, view, err, http.StatusOK)
}

// ListBrandsHandler lida com a requisição GET /v1/brands.
// @Summary Lista todas as marcas
// @Tags brands
// @Produce json
// @Success 200 {array} domain.BrandView "Lista de marcas"
// @Router /brands [get]
func (h *Handler) ListBrandsHandler(w http.ResponseWriter, r *http.Request) {
	views, err := h.Service.List(r.Context())
	respond.Handle(w, r, h.Logger, views, err, http.StatusOK)
}

// UpdateBrandHandler lida com a requisição PUT /v1/brands/{id}.
// @Summary Renomeia uma marca
// @Tags brands
// @Accept json
// @Param id path int true "ID da Marca"
// @Param brand body domain.BrandView true "Marca com o mesmo ID da rota"
// @Success 204 "Marca atualizada"
// @Failure 400 {object} domain.ErrorResponse "ID divergente ou payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Marca não encontrada"
// @Failure 409 {object} domain.ErrorResponse "Nome já utilizado"
// @Security ApiKeyAuth
// @Router /brands/{id} [put]
func (h *Handler) UpdateBrandHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	var view domain.BrandView
	if err := respond.DecodeJSON(r, &view); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	err = h.Service.Update(r.Context(), id, view)
	respond.Handle(w, r, h.Logger, nil, err, http.StatusNoContent)
}

// DeleteBrandHandler lida com a requisição DELETE /v1/brands/{id}.
// @Summary Remove uma marca
// @Description Produtos que referenciam a marca mantêm o brandId, mas passam a exibir marca nula.
// @Tags brands
// @Param id path int true "ID da Marca"
// @Success 204 "Marca removida"
// @Failure 404 {object} domain.ErrorResponse "Marca não encontrada"
// @Security ApiKeyAuth
// @Router /brands/{id} [delete]
func (h *Handler) DeleteBrandHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	err = h.Service.Delete(r.Context(), id)
	respond.Handle(w, r, h.Logger, nil, err, http.StatusNoContent)
}
