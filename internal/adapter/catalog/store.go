package catalog

import (
	"fmt"
	"sort"

	"github.com/techmart/storefront/internal/core/domain"
	"github.com/techmart/storefront/internal/core/port"
)

var _ port.CatalogProvider = (*Store)(nil)

// Store is the in-memory catalog. It is read-only after construction.
type Store struct {
	products []domain.Product
	byID     map[string]int
}

func NewStore(products []domain.Product) *Store {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ProductID] = i
	}
	return &Store{products: products, byID: byID}
}

func (s *Store) All() []domain.Product {
	return s.products
}

func (s *Store) ByID(id string) (domain.Product, error) {
	const op = "Store.ByID"

	i, ok := s.byID[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return s.products[i], nil
}

func (s *Store) Categories() []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, p := range s.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}

func (s *Store) Brands() []string {
	seen := make(map[string]struct{})
	var brands []string
	for _, p := range s.products {
		if _, ok := seen[p.Brand]; ok {
			continue
		}
		seen[p.Brand] = struct{}{}
		brands = append(brands, p.Brand)
	}
	sort.Strings(brands)
	return brands
}

func (s *Store) PriceRange() (min, max float64) {
	for i, p := range s.products {
		if i == 0 || p.Price < min {
			min = p.Price
		}
		if p.Price > max {
			max = p.Price
		}
	}
	return min, max
}
