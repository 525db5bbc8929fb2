package repository_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	domain "github.com/mohammadpnp/email-blast/internal/domain/mailing"
	"github.com/mohammadpnp/email-blast/internal/infrastructure/db"
	"github.com/mohammadpnp/email-blast/internal/infrastructure/db/models"
	"github.com/mohammadpnp/email-blast/internal/infrastructure/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openIntegrationDB(t *testing.T) (*gorm.DB, *pgxpool.Pool) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	ctx := context.Background()
	gormDB, pool, err := db.Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close(gormDB, pool) })

	require.NoError(t, db.Migrate(ctx, pool))
	_, err = pool.Exec(ctx, "DELETE FROM passwords")
	require.NoError(t, err)
	_, err = pool.Exec(ctx, "DELETE FROM email_stats")
	require.NoError(t, err)

	return gormDB, pool
}

func TestMailingRepositoriesIntegration(t *testing.T) {
	gormDB, pool := openIntegrationDB(t)
	ctx := context.Background()

	t.Run("password is a write-once singleton", func(t *testing.T) {
		repo := repository.NewPasswordRepository(gormDB)

		_, err := repo.Get(ctx)
		require.ErrorIs(t, err, domain.ErrPasswordNotSet)

		require.NoError(t, repo.Create(ctx, domain.PasswordRecord{HashedPassword: "first", CreatedAt: time.Now()}))
		err = repo.Create(ctx, domain.PasswordRecord{HashedPassword: "second", CreatedAt: time.Now()})
		require.ErrorIs(t, err, domain.ErrPasswordAlreadySet)

		record, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "first", record.HashedPassword)
	})

	t.Run("stats increments are never lost", func(t *testing.T) {
		repo := repository.NewEmailStatsRepository(pool)

		stats, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Zero(t, stats.SuccessCount)

		const batches = 25
		var wg sync.WaitGroup
		errs := make(chan error, batches)
		for i := 0; i < batches; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := repo.Increment(ctx, 2); err != nil {
					errs <- err
				}
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		stats, err = repo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(batches*2), stats.SuccessCount)

		var rows []models.EmailStats
		require.NoError(t, gormDB.WithContext(ctx).Find(&rows).Error)
		require.Len(t, rows, 1)
		assert.Equal(t, int16(models.SingletonID), rows[0].ID)
		assert.Equal(t, int64(batches*2), rows[0].SuccessCount)
		assert.False(t, rows[0].UpdatedAt.IsZero())
	})
}
