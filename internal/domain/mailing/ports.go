package mailing

import (
	"context"
	"io"
)

type PasswordRepository interface {
	// Create stores the record, returning ErrPasswordAlreadySet when one exists.
	Create(ctx context.Context, record PasswordRecord) error
	// Get returns ErrPasswordNotSet when no record exists.
	Get(ctx context.Context) (PasswordRecord, error)
}

type StatsRepository interface {
	Increment(ctx context.Context, by int64) (EmailStats, error)
	Get(ctx context.Context) (EmailStats, error)
}

type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(hashed, plaintext string) (bool, error)
}

type AddressValidator interface {
	Validate(ctx context.Context, address EmailAddress) (Verdict, error)
}

type Transport interface {
	Send(ctx context.Context, msg Message) error
	Name() string
}

// SheetReader returns the values of the named column of the first worksheet, one per non-blank row.
type SheetReader interface {
	ReadColumn(ctx context.Context, filename string, r io.Reader, column string) ([]string, error)
}
