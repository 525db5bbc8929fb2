package mailing

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	domain "github.com/mohammadpnp/email-blast/internal/domain/mailing"
)

const DefaultSubject = "Unlock Your Online Potential with Professional Web Development"

//go:embed templates/offer.html
var defaultHTML string

// MessageTemplate is the fixed subject and body sent to every address of a batch.
type MessageTemplate struct {
	From    string
	Subject string
	HTML    string
}

// NewMessageTemplate falls back to the embedded subject and body when the overrides are empty.
func NewMessageTemplate(from, subject, templateFile string) (MessageTemplate, error) {
	tmpl := MessageTemplate{
		From:    from,
		Subject: strings.TrimSpace(subject),
		HTML:    defaultHTML,
	}
	if tmpl.Subject == "" {
		tmpl.Subject = DefaultSubject
	}

	if templateFile != "" {
		data, err := os.ReadFile(templateFile)
		if err != nil {
			return MessageTemplate{}, fmt.Errorf("read template %s: %w", templateFile, err)
		}
		tmpl.HTML = string(data)
	}

	return tmpl, nil
}

func (t MessageTemplate) For(to domain.EmailAddress) domain.Message {
	return domain.Message{
		From:    t.From,
		To:      to,
		Subject: t.Subject,
		HTML:    t.HTML,
	}
}
