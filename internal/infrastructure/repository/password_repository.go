package repository

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/email-blast/internal/domain/mailing"
	"github.com/mohammadpnp/email-blast/internal/infrastructure/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PasswordRepository struct {
	db *gorm.DB
}

func NewPasswordRepository(db *gorm.DB) *PasswordRepository {
	return &PasswordRepository{db: db}
}

// Create inserts the singleton row. The fixed primary key makes a second insert
// a no-op, which is reported as domain.ErrPasswordAlreadySet.
func (r *PasswordRepository) Create(ctx context.Context, record domain.PasswordRecord) error {
	row := models.Password{
		ID:             models.SingletonID,
		HashedPassword: record.HashedPassword,
		CreatedAt:      record.CreatedAt,
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row)
	if result.Error != nil {
		return fmt.Errorf("create password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrPasswordAlreadySet
	}

	return nil
}

func (r *PasswordRepository) Get(ctx context.Context) (domain.PasswordRecord, error) {
	var row models.Password

	err := r.db.WithContext(ctx).Take(&row, "id = ?", models.SingletonID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PasswordRecord{}, domain.ErrPasswordNotSet
		}
		return domain.PasswordRecord{}, fmt.Errorf("get password: %w", err)
	}

	return domain.PasswordRecord{
		HashedPassword: row.HashedPassword,
		CreatedAt:      row.CreatedAt,
	}, nil
}
