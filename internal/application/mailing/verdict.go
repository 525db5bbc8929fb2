package mailing

import (
	"context"
	"log/slog"

	domain "github.com/mohammadpnp/email-blast/internal/domain/mailing"
)

// checkAddress collapses validator errors into an invalid verdict so no address is dropped.
func checkAddress(ctx context.Context, validator domain.AddressValidator, address domain.EmailAddress) domain.Verdict {
	verdict, err := validator.Validate(ctx, address)
	if err != nil {
		slog.Warn("address validation errored", "address", address.String(), "error", err)
		return domain.InvalidVerdict(err.Error())
	}
	return verdict
}
