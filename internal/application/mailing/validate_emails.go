package mailing

import (
	"context"

	domain "github.com/mohammadpnp/email-blast/internal/domain/mailing"
)

type ValidateEmailsInput struct {
	Emails string
}

type ValidateEmailsOutput struct {
	ValidEmails   []string `json:"validEmails"`
	InvalidEmails []string `json:"invalidEmails"`
}

type ValidateEmails interface {
	Execute(ctx context.Context, in ValidateEmailsInput) (ValidateEmailsOutput, error)
}

type validateEmails struct {
	validator   domain.AddressValidator
	concurrency int
}

func NewValidateEmails(validator domain.AddressValidator, concurrency int) ValidateEmails {
	return &validateEmails{validator: validator, concurrency: concurrency}
}

func (uc *validateEmails) Execute(ctx context.Context, in ValidateEmailsInput) (ValidateEmailsOutput, error) {
	addresses := SplitTyped(in.Emails)
	verdicts := make([]domain.Verdict, len(addresses))

	forEachLimited(uc.concurrency, len(addresses), func(i int) {
		verdicts[i] = checkAddress(ctx, uc.validator, addresses[i])
	})

	out := ValidateEmailsOutput{
		ValidEmails:   make([]string, 0, len(addresses)),
		InvalidEmails: make([]string, 0),
	}
	for i, address := range addresses {
		if verdicts[i].Valid {
			out.ValidEmails = append(out.ValidEmails, address.String())
			continue
		}
		out.InvalidEmails = append(out.InvalidEmails, address.String())
	}

	return out, nil
}
