// Package checkout submits a session's cart to the order processor. Its one
// business rule: the processor is never invoked for an empty cart or invalid
// shipping details.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/joshhoffman/SportsStore/internal/cart"
)

var ErrEmptyCart = errors.New("cart is empty")

// ShippingDetails is the delivery address supplied at checkout.
type ShippingDetails struct {
	Name     string `json:"name"`
	Line1    string `json:"line1"`
	Line2    string `json:"line2,omitempty"`
	Line3    string `json:"line3,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip,omitempty"`
	Country  string `json:"country"`
	GiftWrap bool   `json:"giftWrap"`
}

// ValidationError lists the shipping fields that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid shipping details: %s required", strings.Join(e.Fields, ", "))
}

// Validate checks the required address fields.
func (d ShippingDetails) Validate() error {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"name", d.Name},
		{"line1", d.Line1},
		{"city", d.City},
		{"state", d.State},
		{"country", d.Country},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// OrderProcessor fulfills a submitted cart out of band. Any non-error return
// is treated as acceptance.
type OrderProcessor interface {
	ProcessOrder(ctx context.Context, c *cart.Cart, details ShippingDetails) error
}

type Service struct {
	processor OrderProcessor
}

func NewService(processor OrderProcessor) *Service {
	return &Service{processor: processor}
}

// PlaceOrder hands the cart and shipping details to the order processor and
// clears the cart on acceptance. An empty cart or invalid details short-circuit
// before the processor is reached.
func (s *Service) PlaceOrder(ctx context.Context, c *cart.Cart, details ShippingDetails) error {
	if len(c.Lines()) == 0 {
		return ErrEmptyCart
	}
	if err := details.Validate(); err != nil {
		return err
	}

	if err := s.processor.ProcessOrder(ctx, c, details); err != nil {
		return fmt.Errorf("process order: %w", err)
	}

	c.Clear()
	return nil
}
