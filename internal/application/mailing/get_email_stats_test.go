package mailing_test

import (
	"context"
	"errors"
	"testing"

	app "github.com/mohammadpnp/email-blast/internal/application/mailing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEmailStats(t *testing.T) {
	t.Parallel()

	out, err := app.NewGetEmailStats(&fakeStats{}).Execute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, out.SuccessCount)

	out, err = app.NewGetEmailStats(&fakeStats{count: 42}).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), out.SuccessCount)
}

func TestGetEmailStatsError(t *testing.T) {
	t.Parallel()

	_, err := app.NewGetEmailStats(&fakeStats{err: errors.New("db down")}).Execute(context.Background())
	require.ErrorIs(t, err, app.ErrGetEmailStats)
}
