package mailing

import (
	"context"
	"fmt"

	domain "github.com/mohammadpnp/email-blast/internal/domain/mailing"
)

type GetEmailStatsOutput struct {
	SuccessCount int64 `json:"successCount"`
}

type GetEmailStats interface {
	Execute(ctx context.Context) (GetEmailStatsOutput, error)
}

type getEmailStats struct {
	repo domain.StatsRepository
}

func NewGetEmailStats(repo domain.StatsRepository) GetEmailStats {
	return &getEmailStats{repo: repo}
}

func (uc *getEmailStats) Execute(ctx context.Context) (GetEmailStatsOutput, error) {
	stats, err := uc.repo.Get(ctx)
	if err != nil {
		return GetEmailStatsOutput{}, fmt.Errorf("%w: %v", ErrGetEmailStats, err)
	}
	return GetEmailStatsOutput{SuccessCount: stats.SuccessCount}, nil
}
