package events

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/joshhoffman/SportsStore/internal/checkout"
)

const EventTypeOrderSubmitted = "OrderSubmitted"

// OrderSubmitted is the contract consumed by downstream fulfillment.
type OrderSubmitted struct {
	EventType   string                   `json:"eventType"`
	OrderID     string                   `json:"orderId"`
	Lines       []OrderLine              `json:"lines"`
	Shipping    checkout.ShippingDetails `json:"shipping"`
	TotalAmount decimal.Decimal          `json:"totalAmount"`
	Timestamp   time.Time                `json:"timestamp"`
}

type OrderLine struct {
	ProductID int64           `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}
