package notify

import (
	"bytes"
	"context"
	"fmt"
	"net/smtp"
	"text/template"
	"time"

	"github.com/mitchstreats/treats-backend/internal/app/model"
	"github.com/mitchstreats/treats-backend/pkg/logger"
)

// Notifier delivers a human-readable order summary. Delivery is best effort:
// a failure must never block order acceptance.
type Notifier interface {
	SendOrderNotification(ctx context.Context, order model.OrderSubmission, orderID string) error
}

// Config holds SMTP notification settings
type Config struct {
	Host      string
	Port      string
	Username  string
	Password  string
	Sender    string
	Recipient string
	Enabled   bool
	// MockMode logs the rendered message instead of sending it.
	MockMode bool
}

const orderBodyTemplate = `New Order from {{.CustomerName}}

Order Details:
--------------
Order ID: {{.OrderID}}
Customer Name: {{.Order.Customer.Name}}
Email: {{.Order.Customer.Email}}
Phone: {{.Order.Customer.Phone}}
Pickup Date: {{.Order.Customer.PickupDate}}

Items Ordered:
{{range .Order.Items}}- {{.ProductName}}: Quantity {{.Quantity}}{{if .Flavor}}, Flavor: {{.Flavor}}{{end}} (${{printf "%.2f" .UnitPrice}} each = ${{printf "%.2f" .LineTotal}})
{{end}}
Estimated Total: ${{printf "%.2f" .Order.TotalAmount}}
{{if .Order.SpecialInstructions}}
Special Instructions:
{{.Order.SpecialInstructions}}
{{end}}
Order Timestamp: {{.Timestamp}}
Total Items: {{.Order.TotalItems}}
`

// SMTPNotifier sends plain-text order summaries over SMTP.
type SMTPNotifier struct {
	config Config
	tmpl   *template.Template
}

// NewSMTPNotifier creates a notifier with the given settings.
func NewSMTPNotifier(cfg Config) *SMTPNotifier {
	return &SMTPNotifier{
		config: cfg,
		tmpl:   template.Must(template.New("order").Parse(orderBodyTemplate)),
	}
}

// SendOrderNotification renders and sends the order summary email.
func (n *SMTPNotifier) SendOrderNotification(ctx context.Context, order model.OrderSubmission, orderID string) error {
	if !n.config.Enabled {
		logger.Info("Order notification skipped (email disabled)", map[string]interface{}{
			"order_id": orderID,
		})
		return nil
	}

	subject, body, err := n.render(order, orderID)
	if err != nil {
		return err
	}
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		n.config.Sender, n.config.Recipient, subject, body)

	if n.config.MockMode {
		logger.Info("Order notification (mock mode)", map[string]interface{}{
			"order_id": orderID,
			"subject":  subject,
			"body":     body,
		})
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	addr := n.config.Host + ":" + n.config.Port
	auth := smtp.PlainAuth("", n.config.Username, n.config.Password, n.config.Host)
	if err := smtp.SendMail(addr, auth, n.config.Sender, []string{n.config.Recipient}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}

	logger.Info("Order notification email sent", map[string]interface{}{
		"order_id":  orderID,
		"recipient": n.config.Recipient,
	})
	return nil
}

func (n *SMTPNotifier) render(order model.OrderSubmission, orderID string) (subject, body string, err error) {
	customerName := order.Customer.Name
	if customerName == "" {
		customerName = "Anonymous Customer"
	}

	var buf bytes.Buffer
	err = n.tmpl.Execute(&buf, map[string]interface{}{
		"CustomerName": customerName,
		"OrderID":      orderID,
		"Order":        &order,
		"Timestamp":    time.Now().Format(time.RFC1123),
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to render notification body: %w", err)
	}
	return "New Order from " + customerName, buf.String(), nil
}
