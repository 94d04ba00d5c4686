package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nordicmagic/backend/internal/entity"
	"github.com/nordicmagic/backend/pkg/testutil"

	"github.com/stretchr/testify/require"
)

func Test_attemptRepository_CountByIPSince(t *testing.T) {
	ctx := testutil.MockContext()
	attemptRepo := NewAttemptRepository()

	record := func(ipHash string, age time.Duration) {
		require.NoError(t, attemptRepo.Create(ctx, &entity.Attempt{
			Base: entity.Base{
				ID:        uuid.NewString(),
				CreatedAt: time.Now().Add(-age),
			},
			IPHash: ipHash,
		}))
	}

	record("ip1", time.Hour)
	record("ip1", 2*time.Hour)
	record("ip1", 25*time.Hour)
	record("ip2", time.Hour)

	since := time.Now().Add(-24 * time.Hour)

	count, err := attemptRepo.CountByIPSince(ctx, "ip1", since)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	count, err = attemptRepo.CountByIPSince(ctx, "ip2", since)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	count, err = attemptRepo.CountByIPSince(ctx, "ip3", since)
	require.NoError(t, err)
	require.EqualValues(t, 0, count)
}
