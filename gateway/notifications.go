package gateway

import (
	"fmt"

	"github.com/example/quickcart/pkg/models"
	"github.com/example/quickcart/pkg/notify"
)

func orderPlacedMessages(order *models.Order) []notify.Message {
	id := order.ID.Hex()
	return []notify.Message{
		{
			To:      order.Customer.Email,
			Subject: "Your order has been placed",
			Body: fmt.Sprintf("Thanks for your order %s. Quantity: %d, total price: %.2f. We will email you when its status changes.",
				id, order.Quantity, order.Price),
		},
		{
			To:      order.Seller,
			Subject: "You have a new order",
			Body: fmt.Sprintf("Order %s was placed by %s for product %s (quantity %d). Please start processing it.",
				id, order.Customer.Email, order.ProductID, order.Quantity),
		},
	}
}

func orderStatusMessage(order models.Order, status string) notify.Message {
	return notify.Message{
		To:      order.Customer.Email,
		Subject: "Your order status changed",
		Body:    fmt.Sprintf("Order %s is now %s.", order.ID.Hex(), status),
	}
}

func (g *Gateway) notify(msgs ...notify.Message) {
	if g.deps.Notifier == nil {
		return
	}
	for _, msg := range msgs {
		if msg.To == "" {
			continue
		}
		g.deps.Notifier.Dispatch(msg)
	}
}
