package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchstreats/treats-backend/internal/app/model"
)

func sampleOrder() model.OrderSubmission {
	return model.OrderSubmission{
		Customer: model.Customer{
			Name:       "Mollie Vaughn",
			Email:      "mollie@example.com",
			Phone:      "281-555-0147",
			PickupDate: "2025-12-14",
		},
		Items: []model.CartLineItem{
			{CartItemID: 1, ProductID: "sofganiyot-4.5", ProductName: "Filled Sofganiyot", Quantity: 12, Flavor: "Nutella", UnitPrice: 4.5},
			{CartItemID: 2, ProductID: "pretzels", ProductName: "Chocolate Dipped Pretzels", Quantity: 3, UnitPrice: 2},
		},
		SpecialInstructions: "Please pack separately",
		TotalItems:          15,
	}
}

func TestRenderIncludesOrderDetails(t *testing.T) {
	n := NewSMTPNotifier(Config{Enabled: true})

	subject, body, err := n.render(sampleOrder(), "ORDER-abc123")
	require.NoError(t, err)

	assert.Equal(t, "New Order from Mollie Vaughn", subject)
	assert.Contains(t, body, "Order ID: ORDER-abc123")
	assert.Contains(t, body, "Customer Name: Mollie Vaughn")
	assert.Contains(t, body, "Email: mollie@example.com")
	assert.Contains(t, body, "Pickup Date: 2025-12-14")
	assert.Contains(t, body, "Filled Sofganiyot: Quantity 12, Flavor: Nutella ($4.50 each = $54.00)")
	assert.Contains(t, body, "Chocolate Dipped Pretzels: Quantity 3 ($2.00 each = $6.00)")
	assert.Contains(t, body, "Estimated Total: $60.00")
	assert.Contains(t, body, "Special Instructions:\nPlease pack separately")
	assert.Contains(t, body, "Total Items: 15")
}

func TestRenderAnonymousCustomer(t *testing.T) {
	n := NewSMTPNotifier(Config{Enabled: true})

	order := sampleOrder()
	order.Customer.Name = ""

	subject, body, err := n.render(order, "ORDER-x")
	require.NoError(t, err)
	assert.Equal(t, "New Order from Anonymous Customer", subject)
	assert.Contains(t, body, "New Order from Anonymous Customer")
}

func TestRenderOmitsEmptySpecialInstructions(t *testing.T) {
	n := NewSMTPNotifier(Config{Enabled: true})

	order := sampleOrder()
	order.SpecialInstructions = ""

	_, body, err := n.render(order, "ORDER-x")
	require.NoError(t, err)
	assert.NotContains(t, body, "Special Instructions:")
}

func TestSendSkippedWhenDisabled(t *testing.T) {
	n := NewSMTPNotifier(Config{Enabled: false})

	err := n.SendOrderNotification(context.Background(), sampleOrder(), "ORDER-x")
	assert.NoError(t, err)
}

func TestSendMockModeDoesNotDial(t *testing.T) {
	n := NewSMTPNotifier(Config{
		Enabled:   true,
		MockMode:  true,
		Host:      "smtp.invalid",
		Port:      "587",
		Sender:    "orders@example.com",
		Recipient: "owner@example.com",
	})

	err := n.SendOrderNotification(context.Background(), sampleOrder(), "ORDER-x")
	assert.NoError(t, err)
}

func TestSendHonorsCancelledContext(t *testing.T) {
	n := NewSMTPNotifier(Config{
		Enabled:   true,
		Host:      "smtp.invalid",
		Port:      "587",
		Sender:    "orders@example.com",
		Recipient: "owner@example.com",
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := n.SendOrderNotification(ctx, sampleOrder(), "ORDER-x")
	assert.ErrorIs(t, err, context.Canceled)
}
