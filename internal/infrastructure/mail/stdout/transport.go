// Package stdout writes messages to a writer instead of delivering them.
package stdout

import (
	"context"
	"fmt"
	"io"
	"sync"

	domain "github.com/mohammadpnp/email-blast/internal/domain/mailing"
)

type Transport struct {
	mu sync.Mutex
	w  io.Writer
}

func NewTransport(w io.Writer) *Transport {
	return &Transport{w: w}
}

func (t *Transport) Name() string {
	return "stdout"
}

func (t *Transport) Send(ctx context.Context, msg domain.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	_, err := fmt.Fprintf(t.w, "From: %s\nTo: %s\nSubject: %s\n\n%s\n\n", msg.From, msg.To, msg.Subject, msg.HTML)
	if err != nil {
		return fmt.Errorf("stdout: write message for %s: %w", msg.To, err)
	}
	return nil
}
