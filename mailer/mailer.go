// Package mailer delivers the storefront's transactional email through
// SendGrid.
package mailer

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type Client struct {
	apiKey   string
	from     string
	fromName string
}

func NewClient(apiKey, from, fromName string) *Client {
	return &Client{apiKey: apiKey, from: from, fromName: fromName}
}

// Send delivers a single HTML email. Non-2xx responses from SendGrid are
// reported as errors so the caller can surface them.
func (c *Client) Send(to, subject, htmlBody string) error {
	fromEmail := mail.NewEmail(c.fromName, c.from)
	toEmail := mail.NewEmail("", to)

	message := mail.NewSingleEmail(fromEmail, subject, toEmail, "", htmlBody)

	client := sendgrid.NewSendClient(c.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}
