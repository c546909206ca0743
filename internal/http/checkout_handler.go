package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/joshhoffman/SportsStore/internal/cart"
	"github.com/joshhoffman/SportsStore/internal/checkout"
)

type CheckoutHandler struct {
	store *cart.Store
	svc   *checkout.Service
}

func NewCheckoutHandler(store *cart.Store, svc *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{store: store, svc: svc}
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var details checkout.ShippingDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	c := h.store.Get(sessionID(w, r))

	err := h.svc.PlaceOrder(r.Context(), c, details)
	var verr *checkout.ValidationError
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		writeError(w, http.StatusBadRequest, "cart is empty")
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "invalid shipping details",
			"fields": verr.Fields,
		})
	case err != nil:
		writeError(w, http.StatusInternalServerError, "failed to submit order")
	default:
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "order submitted",
		})
	}
}
