package mailing

import (
	"context"
	"fmt"
	"log/slog"

	domain "github.com/mohammadpnp/email-blast/internal/domain/mailing"
)

type SendEmailsInput struct {
	Emails string
	File   *Upload
}

type SendEmailsOutput struct {
	SuccessEmails []string `json:"successEmails"`
	FailedEmails  []string `json:"failedEmails"`
}

type SendEmails interface {
	Execute(ctx context.Context, in SendEmailsInput) (SendEmailsOutput, error)
}

type SendEmailsConfig struct {
	Concurrency int
	Template    MessageTemplate
}

type sendEmails struct {
	sheets    domain.SheetReader
	validator domain.AddressValidator
	transport domain.Transport
	stats     domain.StatsRepository
	cfg       SendEmailsConfig
}

func NewSendEmails(
	sheets domain.SheetReader,
	validator domain.AddressValidator,
	transport domain.Transport,
	stats domain.StatsRepository,
	cfg SendEmailsConfig,
) SendEmails {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultConcurrency
	}
	return &sendEmails{
		sheets:    sheets,
		validator: validator,
		transport: transport,
		stats:     stats,
		cfg:       cfg,
	}
}

// Execute validates and sends to every candidate address. Per-address failures
// are reported in FailedEmails and never fail the batch.
func (uc *sendEmails) Execute(ctx context.Context, in SendEmailsInput) (SendEmailsOutput, error) {
	addresses, err := ExtractAddresses(ctx, uc.sheets, in.Emails, in.File)
	if err != nil {
		return SendEmailsOutput{}, fmt.Errorf("%w: %v", ErrInvalidUpload, err)
	}

	// Sends already started must finish even if the client goes away.
	batchCtx := context.WithoutCancel(ctx)

	results := make([]domain.AddressResult, len(addresses))
	forEachLimited(uc.cfg.Concurrency, len(addresses), func(i int) {
		results[i] = uc.dispatch(batchCtx, addresses[i])
	})

	report := domain.NewBatchReport(results)
	if succeeded := len(report.Succeeded); succeeded > 0 {
		stats, err := uc.stats.Increment(batchCtx, int64(succeeded))
		if err != nil {
			slog.Error("increment email stats failed", "by", succeeded, "error", err)
		} else {
			slog.Info("email batch finished",
				"succeeded", succeeded,
				"failed", len(report.Failed),
				"total_sent", stats.SuccessCount,
			)
		}
	}

	return SendEmailsOutput{
		SuccessEmails: domain.AddressStrings(report.Succeeded),
		FailedEmails:  domain.AddressStrings(report.Failed),
	}, nil
}

func (uc *sendEmails) dispatch(ctx context.Context, address domain.EmailAddress) domain.AddressResult {
	verdict := checkAddress(ctx, uc.validator, address)
	if !verdict.Valid {
		return domain.AddressResult{Address: address, Outcome: domain.OutcomeFailedValidation, Reason: verdict.Reason}
	}

	if err := uc.transport.Send(ctx, uc.cfg.Template.For(address)); err != nil {
		slog.Warn("send email failed",
			"address", address.String(),
			"transport", uc.transport.Name(),
			"error", err,
		)
		return domain.AddressResult{Address: address, Outcome: domain.OutcomeFailedSend, Reason: err.Error()}
	}

	return domain.AddressResult{Address: address, Outcome: domain.OutcomeSucceeded}
}
