package mailing

import (
	"context"
	"fmt"
	"io"
	"strings"

	domain "github.com/mohammadpnp/email-blast/internal/domain/mailing"
)

// EmailColumn is the header an uploaded sheet must carry for its addresses to be read.
const EmailColumn = "Email"

type Upload struct {
	Filename string
	Content  io.Reader
}

// SplitTyped splits a comma-separated list. Blank input yields nothing; otherwise
// every segment is kept, trimmed, including empty ones.
func SplitTyped(raw string) []domain.EmailAddress {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	addresses := make([]domain.EmailAddress, 0, len(parts))
	for _, part := range parts {
		addresses = append(addresses, domain.NewEmailAddress(part))
	}
	return addresses
}

// ExtractAddresses returns the typed addresses followed by the sheet's Email column in row order.
func ExtractAddresses(ctx context.Context, sheets domain.SheetReader, typed string, upload *Upload) ([]domain.EmailAddress, error) {
	addresses := SplitTyped(typed)
	if upload == nil || upload.Content == nil {
		return addresses, nil
	}

	values, err := sheets.ReadColumn(ctx, upload.Filename, upload.Content, EmailColumn)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", upload.Filename, err)
	}
	for _, value := range values {
		addresses = append(addresses, domain.NewEmailAddress(value))
	}
	return addresses, nil
}
