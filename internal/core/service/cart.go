package service

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/techmart/storefront/internal/core/domain"
	"github.com/techmart/storefront/internal/core/port"
)

var _ port.CartKeeper = (*CartService)(nil)

const cartSnapshotKey = "techmart_cart"

// CartService keeps the cart line items. At most one line exists per
// product id and every line has quantity >= 1. The whole line list is
// written through the snapshot port after every mutation.
type CartService struct {
	mu        sync.Mutex
	items     []domain.CartItem
	snapshots port.Snapshotter
}

func NewCartService(snapshots port.Snapshotter) *CartService {
	s := &CartService{snapshots: snapshots}
	s.restore()
	return s
}

func (s *CartService) restore() {
	const op = "CartService.restore"

	var items []domain.CartItem
	err := s.snapshots.Load(cartSnapshotKey, &items)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			// corrupt snapshot: start with an empty cart
			slog.Warn("discarding unreadable cart snapshot", "op", op, "err", err)
		}
		return
	}
	s.items = items
}

func (s *CartService) persist() {
	const op = "CartService.persist"

	if err := s.snapshots.Save(cartSnapshotKey, s.items); err != nil {
		slog.Error("failed to save cart snapshot", "op", op, "err", err)
	}
}

// Add merges the quantity into an existing line for the same product id
// or appends a new line.
func (s *CartService) Add(p domain.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ProductID == p.ProductID {
			s.items[i].Quantity += quantity
			s.persist()
			return
		}
	}
	s.items = append(s.items, domain.CartItem{Product: p, Quantity: quantity})
	s.persist()
}

func (s *CartService) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
}

func (s *CartService) removeLocked(productID string) {
	kept := s.items[:0]
	for _, item := range s.items {
		if item.Product.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.persist()
}

// SetQuantity overwrites the line quantity; a quantity below one removes
// the line. Unknown product ids are ignored.
func (s *CartService) SetQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ProductID != productID {
			continue
		}
		if quantity <= 0 {
			s.removeLocked(productID)
			return
		}
		s.items[i].Quantity = quantity
		s.persist()
		return
	}
}

func (s *CartService) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *CartService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Total is computed fresh on every call.
func (s *CartService) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, item := range s.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist()
}
