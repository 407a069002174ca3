package router

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"gocatalog/internal/api/brand"
	"gocatalog/internal/api/product"
	"gocatalog/internal/api/stock"
	"gocatalog/internal/api/typeproduct"
	"gocatalog/internal/domain"
	"gocatalog/internal/pkg/logger"
	"gocatalog/internal/pkg/middleware"

	_ "gocatalog/docs"
)

// Handlers reúne os handlers já inicializados por injeção de dependências.
type Handlers struct {
	Product     *product.Handler
	Brand       *brand.Handler
	TypeProduct *typeproduct.Handler
	Stock       *stock.Handler
}

// Options configura os middlewares do roteador.
type Options struct {
	Tokens middleware.TokenService
	Logger logger.Logger
	// RateLimit é aplicado a todas as rotas /v1; nil desativa o limite.
	RateLimit func(http.Handler) http.Handler
}

// NewRouter configura e retorna o roteador HTTP principal.
func NewRouter(h Handlers, opts Options) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(opts.Logger))

	r.HandleFunc("/ping", PingHandler).Methods(http.MethodGet)
	r.PathPrefix("/swagger/").Handler(httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	v1 := r.PathPrefix("/v1").Subrouter()
	if opts.RateLimit != nil {
		v1.Use(opts.RateLimit)
	}

	auth := middleware.NewAuthMiddleware(opts.Tokens)
	editors := middleware.PermissionMiddleware(domain.RoleAdmin, domain.RoleEditor)
	write := func(hf http.HandlerFunc) http.Handler {
		return auth(editors(hf))
	}

	// Produtos
	v1.HandleFunc("/products", h.Product.ListProductsHandler).Methods(http.MethodGet)
	v1.Handle("/products", write(h.Product.CreateProductHandler)).Methods(http.MethodPost)
	v1.HandleFunc("/products/by-name/{name}", h.Product.GetProductByNameHandler).Methods(http.MethodGet)
	v1.HandleFunc("/products/{id}", h.Product.GetProductByIDHandler).Methods(http.MethodGet)
	v1.Handle("/products/{id}", write(h.Product.UpdateProductHandler)).Methods(http.MethodPut)
	v1.Handle("/products/{id}", write(h.Product.DeleteProductHandler)).Methods(http.MethodDelete)
	v1.HandleFunc("/products/{id}/availability", h.Stock.AvailabilityHandler).Methods(http.MethodGet)

	// Marcas
	v1.HandleFunc("/brands", h.Brand.ListBrandsHandler).Methods(http.MethodGet)
	v1.Handle("/brands", write(h.Brand.CreateBrandHandler)).Methods(http.MethodPost)
	v1.HandleFunc("/brands/{id}", h.Brand.GetBrandByIDHandler).Methods(http.MethodGet)
	v1.Handle("/brands/{id}", write(h.Brand.UpdateBrandHandler)).Methods(http.MethodPut)
	v1.Handle("/brands/{id}", write(h.Brand.DeleteBrandHandler)).Methods(http.MethodDelete)

	// Tipos de produto
	v1.HandleFunc("/types", h.TypeProduct.ListTypesHandler).Methods(http.MethodGet)
	v1.Handle("/types", write(h.TypeProduct.CreateTypeHandler)).Methods(http.MethodPost)
	v1.HandleFunc("/types/{id}", h.TypeProduct.GetTypeByIDHandler).Methods(http.MethodGet)
	v1.Handle("/types/{id}", write(h.TypeProduct.UpdateTypeHandler)).Methods(http.MethodPut)
	v1.Handle("/types/{id}", write(h.TypeProduct.DeleteTypeHandler)).Methods(http.MethodDelete)

	return r
}

// PingHandler é o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
