// Package event carries change notifications out of the services: to
// websocket clients for live refresh and, when configured, to Kafka.
package event

import (
	"context"
	"time"
)

const TypeInventoryUpdate = "inventory_update"

const (
	ProductCreated = "product_created"
	ProductDeleted = "product_deleted"
	OrderCreated   = "order_created"
	OrderUpdated   = "order_updated"
	OrderDeleted   = "order_deleted"
)

type Event struct {
	Type      string      `json:"type"`
	Action    string      `json:"action"`
	Data      interface{} `json:"data"`
	User      string      `json:"user"`
	Message   string      `json:"message"`
	Timestamp time.Time   `json:"timestamp"`
}

// New stamps an inventory update event with the current time.
func New(action string, data interface{}, user, message string) Event {
	return Event{
		Type:      TypeInventoryUpdate,
		Action:    action,
		Data:      data,
		User:      user,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// Publisher delivers events. Implementations log their own failures; a
// publish never fails the mutation that produced it.
type Publisher interface {
	Publish(ctx context.Context, e Event)
}

// Fanout publishes to every wrapped publisher in order.
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, e Event) {
	for _, p := range f {
		p.Publish(ctx, e)
	}
}

// Discard drops every event.
type Discard struct{}

func (Discard) Publish(context.Context, Event) {}
