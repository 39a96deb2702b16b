package httphandler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techmart/storefront/internal/adapter/catalog"
	"github.com/techmart/storefront/internal/adapter/httphandler"
	"github.com/techmart/storefront/internal/adapter/snapshot"
	"github.com/techmart/storefront/internal/core/domain"
	"github.com/techmart/storefront/internal/core/service"
)

func testCatalog() []domain.Product {
	return []domain.Product{
		{
			ProductID: "1", Name: "iPhone 15 Pro", Brand: "Apple",
			Category: "Smartphones", Price: 999, Rating: 4.8,
			ReviewCount: 1200, InStock: true,
		},
		{
			ProductID: "2", Name: "MacBook Air", Brand: "Apple",
			Category: "Laptops", Price: 1299, Rating: 4.9,
			ReviewCount: 2000, InStock: true,
		},
		{
			ProductID: "3", Name: "Galaxy S24", Brand: "Samsung",
			Category: "Smartphones", Price: 899, Rating: 4.6,
			ReviewCount: 800, InStock: true,
		},
	}
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	snapshots, err := snapshot.NewFileStore(t.TempDir())
	require.NoError(t, err)

	store := catalog.NewStore(testCatalog())
	catalogSvc := service.NewCatalogService(store)

	mux := http.NewServeMux()
	httphandler.RegisterProducts(mux, catalogSvc, catalogSvc, catalogSvc, catalogSvc)
	httphandler.RegisterChat(mux, service.NewChatService(catalogSvc))
	httphandler.RegisterCart(mux, service.NewCartService(snapshots), catalogSvc)
	httphandler.RegisterAuth(mux, service.NewAuthService(snapshots))
	return httphandler.AllowJSON(mux)
}

func getJSON(t *testing.T, h http.Handler, target string, v any) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	if v != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
	}
	return rec
}

func postJSON(t *testing.T, h http.Handler, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	b, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestProductsAPI(t *testing.T) {
	h := newTestHandler(t)

	t.Run("SearchByQuery", func(t *testing.T) {
		var products []httphandler.Product
		rec := getJSON(t, h, "/v1/products?query=macbook", &products)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, products, 1)
		assert.Equal(t, "MacBook Air", products[0].Name)
	})

	t.Run("FilterByCategory", func(t *testing.T) {
		var products []httphandler.Product
		rec := getJSON(t, h, "/v1/products?category=Smartphones", &products)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, products, 2)
	})

	t.Run("BadFilterValue", func(t *testing.T) {
		rec := getJSON(t, h, "/v1/products?min_price=cheap", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("ProductByID", func(t *testing.T) {
		var p httphandler.Product
		rec := getJSON(t, h, "/v1/products/2", &p)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "MacBook Air", p.Name)
	})

	t.Run("ProductNotFound", func(t *testing.T) {
		rec := getJSON(t, h, "/v1/products/999", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("PopularWithLimit", func(t *testing.T) {
		var products []httphandler.Product
		rec := getJSON(t, h, "/v1/products/popular?limit=1", &products)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, products, 1)
		assert.Equal(t, "MacBook Air", products[0].Name)
	})

	t.Run("Categories", func(t *testing.T) {
		var categories []string
		rec := getJSON(t, h, "/v1/categories", &categories)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.ElementsMatch(t, []string{"Smartphones", "Laptops"}, categories)
	})

	t.Run("PriceRange", func(t *testing.T) {
		var pr httphandler.PriceRange
		rec := getJSON(t, h, "/v1/price-range", &pr)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 899.0, pr.Min)
		assert.Equal(t, 1299.0, pr.Max)
	})
}

func TestCartAPI(t *testing.T) {
	h := newTestHandler(t)

	t.Run("AddAndRead", func(t *testing.T) {
		rec := postJSON(t, h, "/v1/cart", httphandler.AddCartItem{ProductID: "1", Quantity: 2})
		require.Equal(t, http.StatusOK, rec.Code)

		var view httphandler.CartView
		rec = getJSON(t, h, "/v1/cart", &view)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, view.Items, 1)
		assert.Equal(t, 2, view.Count)
		assert.Equal(t, 1998.0, view.Total)
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		rec := postJSON(t, h, "/v1/cart", httphandler.AddCartItem{ProductID: "999", Quantity: 1})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("PatchQuantity", func(t *testing.T) {
		b, err := json.Marshal(httphandler.CartQuantity{Quantity: 5})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPatch, "/v1/cart/1", bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var view httphandler.CartView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
		assert.Equal(t, 5, view.Count)
	})

	t.Run("ClearCart", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/cart", nil))
		require.Equal(t, http.StatusNoContent, rec.Code)

		var view httphandler.CartView
		getJSON(t, h, "/v1/cart", &view)
		assert.Empty(t, view.Items)
	})

	t.Run("RejectsNonJSONBody", func(t *testing.T) {
		req := httptest.NewRequest(
			http.MethodPost, "/v1/cart", strings.NewReader("product_id=1"),
		)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})
}

func TestAuthAPI(t *testing.T) {
	h := newTestHandler(t)

	t.Run("LoginRejectsShortPassword", func(t *testing.T) {
		rec := postJSON(t, h, "/v1/auth/login", httphandler.Credentials{
			Email: "john@example.com", Password: "123",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("LoginAndMe", func(t *testing.T) {
		rec := postJSON(t, h, "/v1/auth/login", httphandler.Credentials{
			Email: "john@example.com", Password: "123456",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var user httphandler.User
		rec = getJSON(t, h, "/v1/auth/me", &user)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "John", user.FirstName)
	})

	t.Run("LogoutEndsSession", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil))
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = getJSON(t, h, "/v1/auth/me", nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("RegisterRejectsMissingName", func(t *testing.T) {
		rec := postJSON(t, h, "/v1/auth/register", httphandler.Registration{
			Email: "jane@example.com", Password: "123456", LastName: "Doe",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestChatAPI(t *testing.T) {
	h := newTestHandler(t)

	t.Run("Greeting", func(t *testing.T) {
		rec := postJSON(t, h, "/v1/chat", httphandler.ChatRequest{Message: "hello"})
		require.Equal(t, http.StatusOK, rec.Code)

		var reply httphandler.ChatMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
		assert.Equal(t, "bot", reply.Sender)
		assert.Contains(t, reply.Content, "Welcome to TechMart AI")
	})

	t.Run("SearchReturnsProducts", func(t *testing.T) {
		rec := postJSON(t, h, "/v1/chat", httphandler.ChatRequest{Message: "show me laptops"})
		require.Equal(t, http.StatusOK, rec.Code)

		var reply httphandler.ChatMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
		require.Len(t, reply.Products, 1)
		assert.Equal(t, "MacBook Air", reply.Products[0].Name)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader("{broken"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
