package mailing

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/mohammadpnp/email-blast/internal/domain/mailing"
)

// bcrypt ignores everything past 72 bytes.
const maxPasswordBytes = 72

type SetPasswordInput struct {
	Password string
}

type SetPassword interface {
	Execute(ctx context.Context, in SetPasswordInput) error
}

type setPassword struct {
	repo   domain.PasswordRepository
	hasher domain.PasswordHasher
	now    func() time.Time
}

func NewSetPassword(repo domain.PasswordRepository, hasher domain.PasswordHasher) SetPassword {
	return &setPassword{repo: repo, hasher: hasher, now: time.Now}
}

func (uc *setPassword) Execute(ctx context.Context, in SetPasswordInput) error {
	if in.Password == "" || len(in.Password) > maxPasswordBytes {
		return ErrInvalidPassword
	}

	hashed, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSetPassword, err)
	}

	err = uc.repo.Create(ctx, domain.PasswordRecord{
		HashedPassword: hashed,
		CreatedAt:      uc.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrPasswordAlreadySet) {
			return ErrPasswordAlreadySet
		}
		return fmt.Errorf("%w: %v", ErrSetPassword, err)
	}

	return nil
}
