package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocatalog/internal/api/brand"
	"gocatalog/internal/api/product"
	"gocatalog/internal/api/router"
	"gocatalog/internal/api/stock"
	"gocatalog/internal/api/typeproduct"
	"gocatalog/internal/domain"
	"gocatalog/internal/pkg/logger"
	"gocatalog/internal/pkg/token"
	"gocatalog/internal/repository/memrepo"
	"gocatalog/internal/service/brandservice"
	"gocatalog/internal/service/productservice"
	"gocatalog/internal/service/relationservice"
	"gocatalog/internal/service/stockservice"
	"gocatalog/internal/service/typeservice"
	"gocatalog/internal/stockpolicy"
)

type testServer struct {
	t       *testing.T
	handler http.Handler
	store   *memrepo.Store
	token   string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	log := logger.New("error", io.Discard)
	store := memrepo.NewStore()
	tokens := token.NewService("test-secret", time.Hour)

	resolver := relationservice.NewResolver(store.Brands, store.Types, log)
	handlers := router.Handlers{
		Product:     product.NewHandler(productservice.NewService(store.Products, resolver, log), log),
		Brand:       brand.NewHandler(brandservice.NewService(store.Brands, log), log),
		TypeProduct: typeproduct.NewHandler(typeservice.NewService(store.Types, log), log),
		Stock:       stock.NewHandler(stockservice.NewService(store.Products, stockpolicy.Shortage{}, log), log),
	}

	signed, err := tokens.GenerateToken("tester", string(domain.RoleEditor))
	require.NoError(t, err)

	return &testServer{
		t:       t,
		handler: router.NewRouter(handlers, router.Options{Tokens: tokens, Logger: log}),
		store:   store,
		token:   signed,
	}
}

func (s *testServer) do(method, path string, body interface{}, authenticated bool) *httptest.ResponseRecorder {
	s.t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

var chairInput = domain.ProductCreateInput{
	Name:        "Chair",
	Description: "wooden",
	RealStock:   5,
	MinStock:    10,
	MaxStock:    20,
	Brand:       "Ikea",
	TypeProduct: "Furniture",
}

func TestPing(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(http.MethodGet, "/ping", nil, false)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "pong", rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestCreateProduct_RequiresToken(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(http.MethodPost, "/v1/products", chairInput, false)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, 0, s.store.Products.Len())
}

func TestProductLifecycle(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(http.MethodPost, "/v1/products", chairInput, true)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	created := decode[domain.ProductDetailView](t, rr)
	assert.Equal(t, "Ikea", *created.Brand)
	assert.Equal(t, "Furniture", *created.Type)
	assert.True(t, created.InRestocking)

	rr = s.do(http.MethodGet, "/v1/products", nil, false)
	require.Equal(t, http.StatusOK, rr.Code)
	list := decode[[]domain.ProductListView](t, rr)
	require.Len(t, list, 1)
	assert.Equal(t, "Chair", list[0].Name)

	rr = s.do(http.MethodGet, "/v1/products/by-name/chair", nil, false)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, created.Equal(decode[domain.ProductDetailView](t, rr)))

	update := domain.Product{ID: created.ID, Name: "Chair", RealStock: 15, MinStock: 10, MaxStock: 20}
	rr = s.do(http.MethodPut, "/v1/products/1", update, true)
	require.Equal(t, http.StatusNoContent, rr.Code, rr.Body.String())

	rr = s.do(http.MethodGet, "/v1/products/1", nil, false)
	detail := decode[domain.ProductDetailView](t, rr)
	assert.Equal(t, 15, detail.Stock)
	assert.Nil(t, detail.Brand)

	rr = s.do(http.MethodDelete, "/v1/products/1", nil, true)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = s.do(http.MethodDelete, "/v1/products/1", nil, true)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdateProduct_IDMismatchIsBadRequest(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/v1/products", chairInput, true).Code)

	rr := s.do(http.MethodPut, "/v1/products/1", domain.Product{ID: 2, Name: "Chair"}, true)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "PRECONDITION_MISMATCH", decode[domain.ErrorResponse](t, rr).Category)
}

func TestCreateProduct_InvalidPayload(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(http.MethodPost, "/v1/products", domain.ProductCreateInput{MinStock: 3, MaxStock: 1}, true)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode[domain.ErrorResponse](t, rr).Category)
}

func TestGetProduct_NotFoundAndBadID(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/v1/products/7", nil, false).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/v1/products/abc", nil, false).Code)
}

func TestAvailability(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/v1/products", chairInput, true).Code)

	rr := s.do(http.MethodGet, "/v1/products/1/availability", nil, false)
	require.Equal(t, http.StatusOK, rr.Code)
	view := decode[domain.AvailabilityView](t, rr)
	assert.Equal(t, "shortage", view.Policy)
	assert.Equal(t, domain.Unavailable, view.Availability)

	rr = s.do(http.MethodGet, "/v1/products/1/availability?policy=preorder", nil, false)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, domain.Precommandable, decode[domain.AvailabilityView](t, rr).Availability)

	rr = s.do(http.MethodGet, "/v1/products/1/availability?policy=lenient", nil, false)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestBrandConflictAndDanglingReference(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/v1/products", chairInput, true).Code)

	rr := s.do(http.MethodPost, "/v1/brands", domain.BrandView{Name: "ikea"}, true)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = s.do(http.MethodGet, "/v1/brands", nil, false)
	brands := decode[[]domain.BrandView](t, rr)
	require.Len(t, brands, 1)

	rr = s.do(http.MethodDelete, "/v1/brands/1", nil, true)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = s.do(http.MethodGet, "/v1/products/1", nil, false)
	require.Equal(t, http.StatusOK, rr.Code)
	detail := decode[domain.ProductDetailView](t, rr)
	assert.Nil(t, detail.Brand)
	assert.Equal(t, "Furniture", *detail.Type)
}

func TestTypeCRUD(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(http.MethodPost, "/v1/types", domain.TypeProductView{Name: "Shoes"}, true)
	require.Equal(t, http.StatusCreated, rr.Code)
	created := decode[domain.TypeProductView](t, rr)

	rr = s.do(http.MethodPut, "/v1/types/1", domain.TypeProductView{ID: created.ID, Name: "Sneakers"}, true)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = s.do(http.MethodGet, "/v1/types/1", nil, false)
	assert.Equal(t, domain.TypeProductView{ID: 1, Name: "Sneakers"}, decode[domain.TypeProductView](t, rr))

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodDelete, "/v1/types/1", nil, false).Code)
	assert.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, "/v1/types/1", nil, true).Code)
}

func TestSwaggerDoc(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(http.MethodGet, "/swagger/doc.json", nil, false)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "/products/{id}/availability")
}
