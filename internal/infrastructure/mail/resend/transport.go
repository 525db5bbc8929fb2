// Package resend delivers messages through the Resend HTTP API.
package resend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	domain "github.com/mohammadpnp/email-blast/internal/domain/mailing"
	"github.com/resend/resend-go/v3"
)

type Transport struct {
	client *resend.Client
}

func New(apiKey string) *Transport {
	return &Transport{client: resend.NewClient(apiKey)}
}

// NewWithBaseURL points the client at a different API host.
func NewWithBaseURL(apiKey string, httpClient *http.Client, baseURL string) (*Transport, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("resend: parse base url: %w", err)
	}
	client := resend.NewCustomClient(httpClient, apiKey)
	client.BaseURL = u
	return &Transport{client: client}, nil
}

func (t *Transport) Name() string {
	return "resend"
}

func (t *Transport) Send(ctx context.Context, msg domain.Message) error {
	req := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To.String()},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	if _, err := t.client.Emails.SendWithContext(ctx, req); err != nil {
		return fmt.Errorf("resend: send to %s: %w", msg.To, err)
	}
	return nil
}
