package port

import (
	"context"

	"github.com/techmart/storefront/internal/core/domain"
)

type CatalogProvider interface {
	All() []domain.Product
	ByID(id string) (domain.Product, error)
	Categories() []string
	Brands() []string
	PriceRange() (min, max float64)
}

type ProductsSearcher interface {
	SearchProducts(ctx context.Context, query string, f domain.SearchFilters) ([]domain.Product, error)
}

type ProductProvider interface {
	ProductByID(ctx context.Context, id string) (domain.Product, error)
	ProductsByCategory(ctx context.Context, category string, limit int) ([]domain.Product, error)
}

type ProductsRanker interface {
	PopularProducts(ctx context.Context, limit int) ([]domain.Product, error)
	RecommendedProducts(ctx context.Context, limit int) ([]domain.Product, error)
	TrendingProducts(ctx context.Context, limit int) ([]domain.Product, error)
}

type CatalogBrowser interface {
	Categories() []string
	Brands() []string
	PriceRange() (min, max float64)
}

type CartKeeper interface {
	Add(p domain.Product, quantity int)
	Remove(productID string)
	SetQuantity(productID string, quantity int)
	Items() []domain.CartItem
	Count() int
	Total() float64
	Clear()
}

type Authenticator interface {
	Login(ctx context.Context, email, password string) (domain.User, error)
	Register(ctx context.Context, email, password, firstName, lastName string) (domain.User, error)
	Logout()
	Current() *domain.User
	IsAuthenticated() bool
}

type ChatResponder interface {
	Respond(ctx context.Context, userMessage string) (domain.ChatMessage, error)
}

type Snapshotter interface {
	Save(key string, v any) error
	Load(key string, v any) error
	Delete(key string) error
}
