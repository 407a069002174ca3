package product

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"gocatalog/internal/api/respond"
	"gocatalog/internal/domain"
	"gocatalog/internal/pkg/logger"
)

// ProductService define o contrato que o Handler espera da camada de Serviço.
type ProductService interface {
	Create(ctx context.Context, input domain.ProductCreateInput) (domain.ProductDetailView, error)
	GetByID(ctx context.Context, id int) (domain.ProductDetailView, error)
	GetByName(ctx context.Context, name string) (domain.ProductDetailView, error)
	List(ctx context.Context) ([]domain.ProductListView, error)
	Update(ctx context.Context, id int, product domain.Product) error
	Delete(ctx context.Context, id int) error
}

// Handler agrupa todos os métodos de Handler de produtos.
type Handler struct {
	Service ProductService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc ProductService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// CreateProductHandler lida com a requisição POST /v1/products.
// @Summary Cria um novo produto
// @Description Cria um produto; marca e tipo são informados pelo nome e criados se ainda não existirem.
// @Tags products
// @Accept json
// @Produce json
// @Param product body domain.ProductCreateInput true "Dados do produto"
// @Success 201 {object} domain.ProductDetailView "Produto criado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Token ausente ou inválido"
// @Failure 503 {object} domain.ErrorResponse "Armazenamento indisponível"
// @Security ApiKeyAuth
// @Router /products [post]
func (h *Handler) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var input domain.ProductCreateInput
	if err := respond.DecodeJSON(r, &input); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	view, err := h.Service.Create(r.Context(), input)
	respond.Handle(w, r, h.Logger, view, err, http.StatusCreated)
}

// GetProductByIDHandler lida com a requisição GET /v1/products/{id}.
// @Summary Obtém um produto por ID
// @Tags products
// @Produce json
// @Param id path int true "ID do Produto"
// @Success 200 {object} domain.ProductDetailView "Produto encontrado"
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Router /products/{id} [get]
func (h *Handler) GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	view, err := h.Service.GetByID(r.Context(), id)
	respond.Handle(w, r, h.Logger, view, err, http.StatusOK)
}

// GetProductByNameHandler lida com a requisição GET /v1/products/by-name/{name}.
// @Summary Obtém um produto pelo nome
// @Tags products
// @Produce json
// @Param name path string true "Nome do Produto"
// @Success 200 {object} domain.ProductDetailView "Produto encontrado"
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Router /products/by-name/{name} [get]
func (h *Handler) GetProductByNameHandler(w http.ResponseWriter, r *http.Request) {
	view, err := h.Service.GetByName(r.Context(), mux.Vars(r)["name"])
	respond.Handle(w, r, h.Logger, view, err, http.StatusOK)
}

// ListProductsHandler lida com a requisição GET /v1/products.
// @Summary Lista os produtos
// @Tags products
// @Produce json
// @Success 200 {array} domain.ProductListView "Lista de produtos"
// @Failure 503 {object} domain.ErrorResponse "Armazenamento indisponível"
// @Router /products [get]
func (h *Handler) ListProductsHandler(w http.ResponseWriter, r *http.Request) {
	views, err := h.Service.List(r.Context())
	respond.Handle(w, r, h.Logger, views, err, http.StatusOK)
}

// UpdateProductHandler lida com a requisição PUT /v1/products/{id}.
// @Summary Atualiza um produto
// @Description Sobrescreve todos os campos; o ID do corpo deve ser igual ao da rota.
// @Tags products
// @Accept json
// @Param id path int true "ID do Produto"
// @Param product body domain.Product true "Produto completo"
// @Success 204 "Produto atualizado"
// @Failure 400 {object} domain.ErrorResponse "ID divergente ou payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Security ApiKeyAuth
// @Router /products/{id} [put]
func (h *Handler) UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	var p domain.Product
	if err := respond.DecodeJSON(r, &p); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	err = h.Service.Update(r.Context(), id, p)
	respond.Handle(w, r, h.Logger, nil, err, http.StatusNoContent)
}

// DeleteProductHandler lida com a requisição DELETE /v1/products/{id}.
// @Summary Remove um produto
// @Tags products
// @Param id path int true "ID do Produto"
// @Success 204 "Produto removido"
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Security ApiKeyAuth
// @Router /products/{id} [delete]
func (h *Handler) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	err = h.Service.Delete(r.Context(), id)
	respond.Handle(w, r, h.Logger, nil, err, http.StatusNoContent)
}
