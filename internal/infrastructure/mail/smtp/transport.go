// Package smtp delivers messages through an authenticated SMTP relay.
package smtp

import (
	"context"
	"fmt"
	"strings"

	domain "github.com/mohammadpnp/email-blast/internal/domain/mailing"
	"github.com/wneessen/go-mail"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string

	// ImplicitTLS starts TLS before the SMTP greeting; always on for port 465.
	ImplicitTLS bool
}

// Transport dials the relay once per message; batches are bounded by the dispatch fan-out.
type Transport struct {
	cfg Config
}

func NewTransport(cfg Config) *Transport {
	return &Transport{cfg: cfg}
}

func (t *Transport) Name() string {
	return "smtp"
}

func (t *Transport) Send(ctx context.Context, msg domain.Message) error {
	m, err := buildMessage(msg)
	if err != nil {
		return err
	}

	c, err := mail.NewClient(t.cfg.Host, t.clientOptions()...)
	if err != nil {
		return fmt.Errorf("smtp: create client: %w", err)
	}
	if err := c.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp: send to %s: %w", msg.To, err)
	}
	return nil
}

// implicitTLSPort is the SMTPS port, where TLS starts before the SMTP greeting.
const implicitTLSPort = 465

func (t *Transport) clientOptions() []mail.Option {
	var opts []mail.Option
	if t.cfg.ImplicitTLS || t.cfg.Port == implicitTLSPort {
		opts = append(opts, mail.WithSSLPort(false))
	} else {
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSMandatory))
	}
	opts = append(opts, mail.WithPort(t.cfg.Port))
	if t.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(t.cfg.Username),
			mail.WithPassword(t.cfg.Password),
		)
	}
	return opts
}

func buildMessage(msg domain.Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("smtp: set from: %w", err)
	}
	if err := m.To(msg.To.String()); err != nil {
		return nil, fmt.Errorf("smtp: set to: %w", err)
	}
	// strip CR/LF to keep the subject on one header line
	m.Subject(strings.NewReplacer("\r", "", "\n", "").Replace(msg.Subject))
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)
	return m, nil
}
