package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/mitchstreats/treats-backend/internal/app/model"
	"github.com/mitchstreats/treats-backend/internal/ledger"
	"github.com/mitchstreats/treats-backend/internal/notify"
	"github.com/mitchstreats/treats-backend/pkg/logger"
)

var (
	ErrInvalidOrder = errors.New("invalid order data")
)

// OrderService accepts submitted orders and fans them out to the
// notification and ledger collaborators.
type OrderService interface {
	Accept(ctx context.Context, order model.OrderSubmission) (string, error)
}

type orderService struct {
	notifier notify.Notifier
	ledger   ledger.Ledger
}

// NewOrderService creates the order intake service. Either collaborator may
// be nil when its setup failed at startup; orders are still accepted.
func NewOrderService(notifier notify.Notifier, l ledger.Ledger) OrderService {
	return &orderService{
		notifier: notifier,
		ledger:   l,
	}
}

// Accept validates the submitted payload, assigns an order id and runs the
// collaborators. Collaborator failures are caught independently and logged;
// the submitting client only ever sees validation or transport failures.
func (s *orderService) Accept(ctx context.Context, order model.OrderSubmission) (string, error) {
	if len(order.Items) == 0 {
		logger.Warn("Rejecting order with no items", map[string]interface{}{
			"customer": order.Customer.Name,
		})
		return "", ErrInvalidOrder
	}

	orderID := "ORDER-" + uuid.NewString()
	logger.Info("Order received", map[string]interface{}{
		"order_id":    orderID,
		"customer":    order.Customer.Name,
		"items":       len(order.Items),
		"total_items": order.ComputedTotalItems(),
		"pickup_date": order.Customer.PickupDate,
	})

	if s.notifier != nil {
		if err := s.notifier.SendOrderNotification(ctx, order, orderID); err != nil {
			logger.Error("Order notification failed", err, map[string]interface{}{
				"order_id": orderID,
			})
		}
	} else {
		logger.Warn("Order notification skipped (notifier unavailable)", map[string]interface{}{
			"order_id": orderID,
		})
	}

	if s.ledger != nil {
		if err := s.ledger.AppendOrder(order, orderID); err != nil {
			logger.Error("Order ledger append failed", err, map[string]interface{}{
				"order_id": orderID,
			})
		}
	} else {
		logger.Warn("Order ledger skipped (ledger unavailable)", map[string]interface{}{
			"order_id": orderID,
		})
	}

	return orderID, nil
}
