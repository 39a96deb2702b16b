package httphandler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/techmart/storefront/internal/core/domain"
	"github.com/techmart/storefront/internal/core/port"
)

// GET /v1/products?query=&category=&subcategory=&brand=&min_price=&max_price=&min_rating=&in_stock=
// GET /v1/products/{id} (200 OK, 404 Not found)
// GET /v1/products/popular|trending|recommendations?limit=N
// GET /v1/categories, /v1/brands, /v1/price-range

type ProductsHandler struct {
	searcher port.ProductsSearcher
	provider port.ProductProvider
	ranker   port.ProductsRanker
	browser  port.CatalogBrowser
}

func RegisterProducts(
	mux *http.ServeMux,
	searcher port.ProductsSearcher,
	provider port.ProductProvider,
	ranker port.ProductsRanker,
	browser port.CatalogBrowser,
) {
	h := ProductsHandler{searcher, provider, ranker, browser}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/products/popular", h.GetPopular)
	mux.HandleFunc("GET /v1/products/trending", h.GetTrending)
	mux.HandleFunc("GET /v1/products/recommendations", h.GetRecommendations)
	mux.HandleFunc("GET /v1/products/{id}", h.GetProduct)
	mux.HandleFunc("GET /v1/categories", h.GetCategories)
	mux.HandleFunc("GET /v1/brands", h.GetBrands)
	mux.HandleFunc("GET /v1/price-range", h.GetPriceRange)
}

func (h ProductsHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetProducts"
	log := slog.With("op", op)

	filters, err := parseFilters(r)
	if err != nil {
		http.Error(w, "invalid filter parameters", http.StatusBadRequest)
		log.Warn("failed to parse filters", "err", err)
		return
	}

	ps, err := h.searcher.SearchProducts(
		r.Context(), r.URL.Query().Get("query"), filters,
	)
	if err != nil {
		http.Error(w, "failed to search products", http.StatusServiceUnavailable)
		log.Error("failed to search products", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, toProducts(ps))
}

func (h ProductsHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetProduct"
	log := slog.With("op", op)

	p, err := h.provider.ProductByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to read product", http.StatusServiceUnavailable)
		log.Error("failed to read product", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, toProduct(p))
}

func (h ProductsHandler) GetPopular(w http.ResponseWriter, r *http.Request) {
	h.writeRanked(w, r, "ProductsHandler.GetPopular", 10, h.ranker.PopularProducts)
}

func (h ProductsHandler) GetTrending(w http.ResponseWriter, r *http.Request) {
	h.writeRanked(w, r, "ProductsHandler.GetTrending", 8, h.ranker.TrendingProducts)
}

func (h ProductsHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	h.writeRanked(w, r, "ProductsHandler.GetRecommendations", 6, h.ranker.RecommendedProducts)
}

func (h ProductsHandler) writeRanked(
	w http.ResponseWriter, r *http.Request, op string, defaultLimit int,
	rank func(ctx context.Context, limit int) ([]domain.Product, error),
) {
	log := slog.With("op", op)

	ps, err := rank(r.Context(), parseLimit(r, defaultLimit))
	if err != nil {
		http.Error(w, "failed to read products", http.StatusServiceUnavailable)
		log.Error("failed to read products", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, toProducts(ps))
}

func (h ProductsHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.browser.Categories())
}

func (h ProductsHandler) GetBrands(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.browser.Brands())
}

func (h ProductsHandler) GetPriceRange(w http.ResponseWriter, r *http.Request) {
	min, max := h.browser.PriceRange()
	writeJSON(w, http.StatusOK, PriceRange{Min: min, Max: max})
}

func parseFilters(r *http.Request) (domain.SearchFilters, error) {
	var filters domain.SearchFilters
	q := r.URL.Query()

	filters.Category = q.Get("category")
	filters.Subcategory = q.Get("subcategory")
	filters.Brand = q.Get("brand")

	for param, dst := range map[string]**float64{
		"min_price":  &filters.MinPrice,
		"max_price":  &filters.MaxPrice,
		"min_rating": &filters.MinRating,
	} {
		raw := q.Get(param)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.SearchFilters{}, err
		}
		*dst = &v
	}

	if raw := q.Get("in_stock"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return domain.SearchFilters{}, err
		}
		filters.InStock = &v
	}

	return filters, nil
}

func parseLimit(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return fallback
	}
	return limit
}
