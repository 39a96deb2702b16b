package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/techmart/storefront/internal/core/domain"
	"github.com/techmart/storefront/internal/core/port"
)

// GET /v1/cart (200 OK)
// POST /v1/cart JSON {"product_id" string, "quantity" int} (200 OK, 400, 404)
// PATCH /v1/cart/{id} JSON {"quantity" int} (200 OK, 400)
// DELETE /v1/cart/{id} (204 No content)
// DELETE /v1/cart (204 No content)

type CartHandler struct {
	cart     port.CartKeeper
	provider port.ProductProvider
}

func RegisterCart(
	mux *http.ServeMux, cart port.CartKeeper, provider port.ProductProvider,
) {
	h := CartHandler{cart, provider}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart", h.PostItem)
	mux.HandleFunc("PATCH /v1/cart/{id}", h.PatchItem)
	mux.HandleFunc("DELETE /v1/cart/{id}", h.DeleteItem)
	mux.HandleFunc("DELETE /v1/cart", h.DeleteCart)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cartView())
}

func (h CartHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostItem"
	log := slog.With("op", op)

	var item AddCartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	p, err := h.provider.ProductByID(r.Context(), item.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to read product", http.StatusServiceUnavailable)
		log.Error("failed to read product", "err", err)
		return
	}

	h.cart.Add(p, item.Quantity)
	log.Info("added to cart", "productID", p.ProductID, "quantity", item.Quantity)

	writeJSON(w, http.StatusOK, h.cartView())
}

func (h CartHandler) PatchItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PatchItem"
	log := slog.With("op", op)

	var q CartQuantity
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	h.cart.SetQuantity(r.PathValue("id"), q.Quantity)

	writeJSON(w, http.StatusOK, h.cartView())
}

func (h CartHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	h.cart.Remove(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h CartHandler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (h CartHandler) cartView() CartView {
	return toCartView(h.cart.Items(), h.cart.Count(), h.cart.Total())
}
