package httphandler

import (
	"time"

	"github.com/techmart/storefront/internal/core/domain"
)

type (
	Product struct {
		ProductID      string            `json:"product_id"`
		Name           string            `json:"name"`
		Brand          string            `json:"brand"`
		Category       string            `json:"category"`
		Subcategory    string            `json:"subcategory"`
		Description    string            `json:"description"`
		Price          float64           `json:"price"`
		OriginalPrice  float64           `json:"original_price,omitempty"`
		Rating         float64           `json:"rating"`
		ReviewCount    int               `json:"review_count"`
		Tags           []string          `json:"tags"`
		Features       []string          `json:"features"`
		Specifications map[string]string `json:"specifications"`
		ImageURL       string            `json:"image_url"`
		InStock        bool              `json:"in_stock"`
	}

	CartItem struct {
		Product  Product `json:"product"`
		Quantity int     `json:"quantity"`
	}

	CartView struct {
		Items []CartItem `json:"items"`
		Count int        `json:"count"`
		Total float64    `json:"total"`
	}

	User struct {
		UserID    string `json:"user_id"`
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Avatar    string `json:"avatar,omitempty"`
	}

	ChatMessage struct {
		MessageID string    `json:"message_id"`
		Content   string    `json:"content"`
		Sender    string    `json:"sender"`
		Timestamp time.Time `json:"timestamp"`
		Products  []Product `json:"products,omitempty"`
		Kind      string    `json:"kind"`
	}

	PriceRange struct {
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	}
)

type (
	ChatRequest struct {
		Message string `json:"message"`
	}

	AddCartItem struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}

	CartQuantity struct {
		Quantity int `json:"quantity"`
	}

	Credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	Registration struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
)

func toProduct(p domain.Product) Product {
	return Product{
		ProductID:      p.ProductID,
		Name:           p.Name,
		Brand:          p.Brand,
		Category:       p.Category,
		Subcategory:    p.Subcategory,
		Description:    p.Description,
		Price:          p.Price,
		OriginalPrice:  p.OriginalPrice,
		Rating:         p.Rating,
		ReviewCount:    p.ReviewCount,
		Tags:           p.Tags,
		Features:       p.Features,
		Specifications: p.Specifications,
		ImageURL:       p.ImageURL,
		InStock:        p.InStock,
	}
}

func toProducts(ps []domain.Product) []Product {
	dtos := make([]Product, len(ps))
	for i, p := range ps {
		dtos[i] = toProduct(p)
	}
	return dtos
}

func toCartView(items []domain.CartItem, count int, total float64) CartView {
	view := CartView{Items: make([]CartItem, len(items)), Count: count, Total: total}
	for i, item := range items {
		view.Items[i] = CartItem{
			Product:  toProduct(item.Product),
			Quantity: item.Quantity,
		}
	}
	return view
}

func toUser(u domain.User) User {
	return User{
		UserID:    u.UserID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Avatar:    u.Avatar,
	}
}

func toChatMessage(m domain.ChatMessage) ChatMessage {
	return ChatMessage{
		MessageID: m.MessageID,
		Content:   m.Content,
		Sender:    string(m.Sender),
		Timestamp: m.Timestamp,
		Products:  toProducts(m.Products),
		Kind:      string(m.Kind),
	}
}
