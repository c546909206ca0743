package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/joshhoffman/SportsStore/internal/cart"
	"github.com/joshhoffman/SportsStore/internal/catalog"
)

const sessionCookie = "storefront_session"

// CartHandler exposes the session cart. The cart lives in the store keyed by
// a cookie-issued session ID; the handlers pass it explicitly into the cart
// operations.
type CartHandler struct {
	store *cart.Store
	repo  catalog.Repository
}

func NewCartHandler(store *cart.Store, repo catalog.Repository) *CartHandler {
	return &CartHandler{store: store, repo: repo}
}

// CartView is the rendered cart: lines in insertion order plus the exact
// decimal total.
type CartView struct {
	Lines []cart.Line     `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

func viewOf(c *cart.Cart) CartView {
	return CartView{Lines: c.Lines(), Total: c.ComputeTotalValue()}
}

// sessionID returns the session from the request cookie, issuing a new one
// when absent.
func sessionID(w http.ResponseWriter, r *http.Request) string {
	if ck, err := r.Cookie(sessionCookie); err == nil && ck.Value != "" {
		return ck.Value
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	c := h.store.Get(sessionID(w, r))
	writeJSON(w, http.StatusOK, viewOf(c))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID int64 `json:"productId"`
		Quantity  int   `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.Quantity < 0 {
		writeError(w, http.StatusBadRequest, "quantity must be positive")
		return
	}
	if body.Quantity == 0 {
		body.Quantity = 1
	}

	p, err := h.repo.GetByID(r.Context(), body.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load product")
		return
	}

	c := h.store.Get(sessionID(w, r))
	c.AddItem(p, body.Quantity)

	writeJSON(w, http.StatusOK, viewOf(c))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	c := h.store.Get(sessionID(w, r))
	c.RemoveLine(id)

	writeJSON(w, http.StatusOK, viewOf(c))
}
