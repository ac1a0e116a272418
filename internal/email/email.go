package email

import (
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"
)

// Transport delivers an assembled order summary to whoever processes EPP
// orders. Deliver is called exactly once per successful validated
// submission; it is not retried internally, the user retries manually.
type Transport interface {
	Deliver(orderID, subject, text, html string) (receiptID string, err error)
}

// ResendTransport sends the order notification through the Resend email API.
type ResendTransport struct {
	client *resend.Client
	from   string
	to     string
}

// NewResendTransport builds a transport from the API key and the configured
// sender/recipient addresses.
func NewResendTransport(apiKey, from, to string) *ResendTransport {
	return &ResendTransport{
		client: resend.NewClient(apiKey),
		from:   from,
		to:     to,
	}
}

func (t *ResendTransport) Deliver(orderID, subject, text, html string) (string, error) {
	sent, err := t.client.Emails.Send(&resend.SendEmailRequest{
		From:    t.from,
		To:      []string{t.to},
		Subject: subject,
		Text:    text,
		Html:    html,
	})
	if err != nil {
		return "", fmt.Errorf("resend: %w", err)
	}
	return sent.Id, nil
}

// LogTransport is the placeholder used when no email provider is configured.
// It prints the notification to the console so the full flow can be
// exercised without an API key.
type LogTransport struct{}

func (LogTransport) Deliver(orderID, subject, text, _ string) (string, error) {
	log.Println("====================================================")
	log.Printf("--- NEW ORDER NOTIFICATION (PLACEHOLDER) ---")
	log.Printf("Order: %s", orderID)
	log.Printf("Subject: %s", subject)
	log.Println("--- Body ---")
	log.Println(text)
	log.Println("====================================================")
	return "log-" + orderID, nil
}
