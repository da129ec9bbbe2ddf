package services

import (
	"fmt"
	"strings"
	"sync"

	"merchshop_server/structs"
	"merchshop_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	client     *resend.Client
	clientOnce = sync.Once{}
)

type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		client: getEmailClient(cfg.Email.APIKey),
	}
}

func getEmailClient(apiKey string) *resend.Client {
	clientOnce.Do(func() {
		client = resend.NewClient(apiKey)
	})
	return client
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	if !es.cfg.Email.Enabled {
		es.logger.Debug("Email sending disabled, skipping", gecho.Field("subject", subject))
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := es.client.Emails.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// SendOrderConfirmation emails the order summary after a successful placement
func (es *EmailService) SendOrderConfirmation(user *tables.User, order *structs.OrderResponse) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "<h2>Thanks for your order, %s!</h2>", user.FirstName)
	fmt.Fprintf(&sb, "<p>Order <strong>#%d</strong> was placed on %s and is now <strong>%s</strong>.</p>",
		order.ID, order.CreationDateTime.Format("January 2, 2006 15:04"), order.StatusName)

	sb.WriteString("<table><tr><th>Item</th><th>Qty</th><th>Price</th></tr>")
	for _, item := range order.Items {
		fmt.Fprintf(&sb, "<tr><td>%s - %s</td><td>%d</td><td>%s</td></tr>",
			item.ProductName, item.DesignName, item.Quantity, formatCents(item.PriceAtOrderCents))
	}
	sb.WriteString("</table>")

	fmt.Fprintf(&sb, "<p>Total: <strong>%s</strong></p>", formatCents(order.TotalCents))
	fmt.Fprintf(&sb, "<p>Payment: %s</p>", order.PaymentMethodName)

	subject := fmt.Sprintf("Order confirmation #%d", order.ID)
	return es.SendEmail([]string{user.Email}, subject, sb.String())
}

func formatCents(cents int64) string {
	return fmt.Sprintf("€%d.%02d", cents/100, cents%100)
}
