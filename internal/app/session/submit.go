package session

import (
	"context"

	"github.com/mitchstreats/treats-backend/internal/app/model"
	"github.com/mitchstreats/treats-backend/pkg/logger"
	"github.com/mitchstreats/treats-backend/pkg/orderclient"
)

// Submitter sends an assembled order to the backend.
type Submitter interface {
	Submit(ctx context.Context, order model.OrderSubmission) (*orderclient.Confirmation, error)
}

// SubmitOrder runs the full submission flow: validate, assemble, send. On a
// confirmed submission the session is reset; on any failure the cart and the
// selection states stay exactly as they were so the user can retry.
func (s *Session) SubmitOrder(ctx context.Context, client Submitter, customer model.Customer, specialInstructions string) (string, error) {
	if err := s.ValidateForSubmit(customer); err != nil {
		return "", err
	}

	order := s.BuildSubmission(customer, specialInstructions)
	conf, err := client.Submit(ctx, order)
	if err != nil {
		logger.Warn("Order submission failed", map[string]interface{}{
			"items": len(order.Items),
			"error": err.Error(),
		})
		return "", err
	}

	s.CompleteOrder()
	logger.Info("Order submitted", map[string]interface{}{
		"total_items": order.TotalItems,
	})
	return conf.Message, nil
}
