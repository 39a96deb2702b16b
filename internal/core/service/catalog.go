package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/techmart/storefront/internal/core/domain"
	"github.com/techmart/storefront/internal/core/port"
)

var _ port.ProductsSearcher = (*CatalogService)(nil)
var _ port.ProductProvider = (*CatalogService)(nil)
var _ port.ProductsRanker = (*CatalogService)(nil)
var _ port.CatalogBrowser = (*CatalogService)(nil)

// fuzzyThreshold is the fraction of token positions that must match the
// text window exactly. The windowed positional match is the compatibility
// contract: do not replace it with an edit-distance matcher.
const fuzzyThreshold = 0.8

type CatalogService struct {
	catalog port.CatalogProvider
}

func NewCatalogService(catalog port.CatalogProvider) CatalogService {
	return CatalogService{catalog}
}

// SearchProducts returns the catalog subset matching the query and every
// defined filter field. An empty result is not an error.
func (s CatalogService) SearchProducts(
	ctx context.Context, query string, f domain.SearchFilters,
) ([]domain.Product, error) {
	const op = "CatalogService.SearchProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	matched := make([]domain.Product, 0)
	query = strings.ToLower(strings.TrimSpace(query))
	for _, p := range s.catalog.All() {
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		if !matchesFilters(p, f) {
			continue
		}
		matched = append(matched, p)
	}
	return matched, nil
}

func matchesQuery(p domain.Product, query string) bool {
	text := searchableText(p)
	if strings.Contains(text, query) {
		return true
	}
	return fuzzyMatch(query, text)
}

func searchableText(p domain.Product) string {
	parts := []string{
		p.Name, p.Description, p.Brand, p.Category, p.Subcategory,
	}
	parts = append(parts, p.Tags...)
	parts = append(parts, p.Features...)
	for _, v := range p.Specifications {
		parts = append(parts, v)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// fuzzyMatch slides each query token longer than two characters across the
// text and accepts when some window matches at least 80% of the token
// positions character by character.
func fuzzyMatch(query, text string) bool {
	for _, token := range strings.Fields(query) {
		if len(token) <= 2 {
			continue
		}
		if slideToken(token, text) {
			return true
		}
	}
	return false
}

func slideToken(token, text string) bool {
	for i := 0; i+len(token) <= len(text); i++ {
		matches := 0
		for j := 0; j < len(token); j++ {
			if text[i+j] == token[j] {
				matches++
			}
		}
		if float64(matches)/float64(len(token)) >= fuzzyThreshold {
			return true
		}
	}
	return false
}

func matchesFilters(p domain.Product, f domain.SearchFilters) bool {
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.Subcategory != "" && !strings.EqualFold(p.Subcategory, f.Subcategory) {
		return false
	}
	if f.Brand != "" && !strings.EqualFold(p.Brand, f.Brand) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.MinRating != nil && p.Rating < *f.MinRating {
		return false
	}
	if f.InStock != nil && p.InStock != *f.InStock {
		return false
	}
	return true
}

func (s CatalogService) ProductByID(
	ctx context.Context, id string,
) (domain.Product, error) {
	const op = "CatalogService.ProductByID"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := s.catalog.ByID(id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (s CatalogService) ProductsByCategory(
	ctx context.Context, category string, limit int,
) ([]domain.Product, error) {
	const op = "CatalogService.ProductsByCategory"

	ps, err := s.SearchProducts(ctx, "", domain.SearchFilters{Category: category})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return limitProducts(ps, limit), nil
}

// PopularProducts orders the catalog by review count descending.
func (s CatalogService) PopularProducts(
	ctx context.Context, limit int,
) ([]domain.Product, error) {
	const op = "CatalogService.PopularProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps := copyProducts(s.catalog.All())
	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].ReviewCount > ps[j].ReviewCount
	})
	return limitProducts(ps, limit), nil
}

// RecommendedProducts scores products by rating weighted for stock state
// plus a small review-count contribution.
func (s CatalogService) RecommendedProducts(
	ctx context.Context, limit int,
) ([]domain.Product, error) {
	const op = "CatalogService.RecommendedProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps := copyProducts(s.catalog.All())
	sort.SliceStable(ps, func(i, j int) bool {
		return recommendScore(ps[i]) > recommendScore(ps[j])
	})
	return limitProducts(ps, limit), nil
}

func recommendScore(p domain.Product) float64 {
	stockFactor := 0.8
	if p.InStock {
		stockFactor = 1.2
	}
	return p.Rating*stockFactor + float64(p.ReviewCount)/1000
}

// TrendingProducts returns a random selection of well-rated in-stock products.
func (s CatalogService) TrendingProducts(
	ctx context.Context, limit int,
) ([]domain.Product, error) {
	const op = "CatalogService.TrendingProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var ps []domain.Product
	for _, p := range s.catalog.All() {
		if p.InStock && p.Rating >= 4.0 {
			ps = append(ps, p)
		}
	}
	rand.Shuffle(len(ps), func(i, j int) {
		ps[i], ps[j] = ps[j], ps[i]
	})
	return limitProducts(ps, limit), nil
}

func (s CatalogService) Categories() []string {
	return s.catalog.Categories()
}

func (s CatalogService) Brands() []string {
	return s.catalog.Brands()
}

func (s CatalogService) PriceRange() (min, max float64) {
	return s.catalog.PriceRange()
}

func copyProducts(ps []domain.Product) []domain.Product {
	cp := make([]domain.Product, len(ps))
	copy(cp, ps)
	return cp
}

func limitProducts(ps []domain.Product, limit int) []domain.Product {
	if limit > 0 && len(ps) > limit {
		return ps[:limit]
	}
	return ps
}
