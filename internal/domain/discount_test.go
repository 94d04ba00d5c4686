package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/nordicmagic/backend/internal/entity"
	"github.com/nordicmagic/backend/internal/model"
	"github.com/nordicmagic/backend/internal/repository"
	"github.com/nordicmagic/backend/pkg/errorx"
	"github.com/nordicmagic/backend/pkg/testutil"
	"github.com/nordicmagic/backend/pkg/xcontext"

	"github.com/stretchr/testify/require"
)

func Test_discountDomain_Verify(t *testing.T) {
	ctx := testutil.MockContext()
	claimRepo := repository.NewClaimRepository()
	domain := NewDiscountDomain(claimRepo)

	claim := &entity.Claim{
		Base:            entity.Base{ID: uuid.NewString()},
		FingerprintHash: "abc",
		IPHash:          "iphash",
		Rune:            "Gebo",
		DiscountCode:    "NORDIC-AB12CD",
		Benefit:         entity.Benefit20,
		Status:          entity.ClaimActive,
	}
	require.NoError(t, claimRepo.Create(ctx, claim))

	t.Run("active code is valid", func(t *testing.T) {
		resp, err := domain.Verify(ctx, &model.VerifyDiscountRequest{Code: "NORDIC-AB12CD"})
		require.NoError(t, err)
		require.True(t, resp.Valid)
		require.Equal(t, string(entity.Benefit20), resp.Benefit)
		require.Equal(t, "active", resp.Status)

		// Verification never mutates the claim.
		stored, err := claimRepo.GetByCode(ctx, "NORDIC-AB12CD")
		require.NoError(t, err)
		require.Equal(t, entity.ClaimActive, stored.Status)
	})

	t.Run("unknown code is not found", func(t *testing.T) {
		_, err := domain.Verify(ctx, &model.VerifyDiscountRequest{Code: "NORDIC-FFFFFF"})
		require.Error(t, err)

		errx := errorx.Error{}
		require.ErrorAs(t, err, &errx)
		require.Equal(t, errorx.NotFound, errx.Code)
	})

	t.Run("empty code is rejected", func(t *testing.T) {
		_, err := domain.Verify(ctx, &model.VerifyDiscountRequest{})
		require.Error(t, err)
	})

	t.Run("used code is invalid", func(t *testing.T) {
		require.NoError(t, claimRepo.UpdateStatus(ctx, claim.ID, entity.ClaimUsed))

		resp, err := domain.Verify(ctx, &model.VerifyDiscountRequest{Code: "NORDIC-AB12CD"})
		require.NoError(t, err)
		require.False(t, resp.Valid)
		require.Equal(t, "used", resp.Status)
	})
}

func Test_discountDomain_MarkUsed(t *testing.T) {
	ctx := testutil.MockContext()
	claimRepo := repository.NewClaimRepository()
	domain := NewDiscountDomain(claimRepo)

	claim := &entity.Claim{
		Base:            entity.Base{ID: uuid.NewString()},
		FingerprintHash: "def",
		IPHash:          "iphash",
		Rune:            "ᚠ",
		DiscountCode:    "NORDIC-123456",
		Benefit:         entity.Benefit5,
		Status:          entity.ClaimActive,
	}
	require.NoError(t, claimRepo.Create(ctx, claim))

	_, err := domain.MarkUsed(ctx, &model.MarkDiscountUsedRequest{Code: "NORDIC-123456"})
	require.NoError(t, err)

	var stored entity.Claim
	require.NoError(t, xcontext.DB(ctx).Take(&stored, "id=?", claim.ID).Error)
	require.Equal(t, entity.ClaimUsed, stored.Status)

	_, err = domain.MarkUsed(ctx, &model.MarkDiscountUsedRequest{Code: "NORDIC-000000"})
	require.Error(t, err)
}
