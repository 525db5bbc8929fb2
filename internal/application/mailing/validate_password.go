package mailing

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/email-blast/internal/domain/mailing"
)

type ValidatePasswordInput struct {
	Password string
}

type ValidatePasswordOutput struct {
	IsValid bool `json:"isValid"`
}

type ValidatePassword interface {
	Execute(ctx context.Context, in ValidatePasswordInput) (ValidatePasswordOutput, error)
}

type validatePassword struct {
	repo   domain.PasswordRepository
	hasher domain.PasswordHasher
}

func NewValidatePassword(repo domain.PasswordRepository, hasher domain.PasswordHasher) ValidatePassword {
	return &validatePassword{repo: repo, hasher: hasher}
}

func (uc *validatePassword) Execute(ctx context.Context, in ValidatePasswordInput) (ValidatePasswordOutput, error) {
	record, err := uc.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrPasswordNotSet) {
			return ValidatePasswordOutput{IsValid: false}, nil
		}
		return ValidatePasswordOutput{}, fmt.Errorf("%w: %v", ErrValidatePassword, err)
	}

	if in.Password == "" {
		return ValidatePasswordOutput{IsValid: false}, nil
	}

	ok, err := uc.hasher.Compare(record.HashedPassword, in.Password)
	if err != nil {
		return ValidatePasswordOutput{}, fmt.Errorf("%w: %v", ErrValidatePassword, err)
	}

	return ValidatePasswordOutput{IsValid: ok}, nil
}
