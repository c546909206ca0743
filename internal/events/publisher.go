package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/joshhoffman/SportsStore/internal/cart"
	"github.com/joshhoffman/SportsStore/internal/checkout"
)

const OrderSubmittedQueue = "order.submitted"

// RabbitOrderProcessor satisfies checkout.OrderProcessor by publishing an
// OrderSubmitted event for out-of-band fulfillment.
type RabbitOrderProcessor struct {
	ch *amqp.Channel
}

func NewRabbitOrderProcessor(conn *amqp.Connection) (*RabbitOrderProcessor, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	// Declare the queue so publish never fails due to missing infra
	if _, err := ch.QueueDeclare(OrderSubmittedQueue, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare %s: %w", OrderSubmittedQueue, err)
	}

	return &RabbitOrderProcessor{ch: ch}, nil
}

func (p *RabbitOrderProcessor) Close() error {
	return p.ch.Close()
}

func (p *RabbitOrderProcessor) ProcessOrder(ctx context.Context, c *cart.Cart, details checkout.ShippingDetails) error {
	ev := BuildOrderSubmitted(c, details)

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal OrderSubmitted: %w", err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return p.ch.PublishWithContext(
		pubCtx,
		"",                  // default exchange
		OrderSubmittedQueue, // queue name as routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

// BuildOrderSubmitted snapshots the cart and shipping details into the event
// contract.
func BuildOrderSubmitted(c *cart.Cart, details checkout.ShippingDetails) OrderSubmitted {
	ev := OrderSubmitted{
		EventType:   EventTypeOrderSubmitted,
		OrderID:     uuid.NewString(),
		Shipping:    details,
		TotalAmount: c.ComputeTotalValue(),
		Timestamp:   time.Now().UTC(),
	}
	for _, ln := range c.Lines() {
		ev.Lines = append(ev.Lines, OrderLine{
			ProductID: ln.Product.ID,
			Name:      ln.Product.Name,
			Quantity:  ln.Quantity,
			UnitPrice: ln.Product.Price,
		})
	}
	return ev
}
