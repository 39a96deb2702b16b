package domain

import "time"

type Product struct {
	ProductID      string
	Name           string
	Brand          string
	Category       string
	Subcategory    string
	Description    string
	Price          float64
	OriginalPrice  float64 // zero when the product is not discounted
	Rating         float64
	ReviewCount    int
	Tags           []string
	Features       []string
	Specifications map[string]string
	ImageURL       string
	InStock        bool
}

// SearchFilters is a sparse predicate set.
// Empty strings and nil pointers impose no constraint.
type SearchFilters struct {
	Category    string
	Subcategory string
	Brand       string
	MinPrice    *float64
	MaxPrice    *float64
	MinRating   *float64
	InStock     *bool
}

type CartItem struct {
	Product  Product
	Quantity int
}

type User struct {
	UserID    string
	Email     string
	FirstName string
	LastName  string
	Avatar    string
}

type MessageSender string

const (
	SenderUser MessageSender = "user"
	SenderBot  MessageSender = "bot"
)

type MessageKind string

const (
	KindText           MessageKind = "text"
	KindProductList    MessageKind = "product-list"
	KindProductDetails MessageKind = "product-details"
)

type ChatMessage struct {
	MessageID string
	Content   string
	Sender    MessageSender
	Timestamp time.Time
	Products  []Product
	Kind      MessageKind
}
