package domain

import (
	"context"
	"errors"

	"github.com/nordicmagic/backend/internal/entity"
	"github.com/nordicmagic/backend/internal/model"
	"github.com/nordicmagic/backend/internal/repository"
	"github.com/nordicmagic/backend/pkg/errorx"
	"github.com/nordicmagic/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type DiscountDomain interface {
	Verify(context.Context, *model.VerifyDiscountRequest) (*model.VerifyDiscountResponse, error)
	MarkUsed(context.Context, *model.MarkDiscountUsedRequest) (*model.MarkDiscountUsedResponse, error)
}

type discountDomain struct {
	claimRepo repository.ClaimRepository
}

func NewDiscountDomain(claimRepo repository.ClaimRepository) *discountDomain {
	return &discountDomain{claimRepo: claimRepo}
}

// Verify never mutates the claim; marking a code as used belongs to the
// checkout flow, which calls MarkUsed.
func (d *discountDomain) Verify(
	ctx context.Context, req *model.VerifyDiscountRequest,
) (*model.VerifyDiscountResponse, error) {
	if req.Code == "" {
		return nil, errorx.New(errorx.BadRequest, "Solicitud inválida")
	}

	claim, err := d.claimRepo.GetByCode(ctx, req.Code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Código no encontrado.")
		}

		xcontext.Logger(ctx).Errorf("Cannot get claim by code: %v", err)
		return nil, errInternal
	}

	if claim.Status == entity.ClaimUsed {
		return &model.VerifyDiscountResponse{
			Valid:   false,
			Message: "Este código ya ha sido usado.",
			Status:  string(entity.ClaimUsed),
		}, nil
	}

	return &model.VerifyDiscountResponse{
		Valid:   true,
		Benefit: string(claim.Benefit),
		Status:  string(entity.ClaimActive),
	}, nil
}

// MarkUsed transitions a claim to used. It is not reachable from any route
// yet; it exists for the checkout integration.
func (d *discountDomain) MarkUsed(
	ctx context.Context, req *model.MarkDiscountUsedRequest,
) (*model.MarkDiscountUsedResponse, error) {
	if req.Code == "" {
		return nil, errorx.New(errorx.BadRequest, "Solicitud inválida")
	}

	claim, err := d.claimRepo.GetByCode(ctx, req.Code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Código no encontrado.")
		}

		xcontext.Logger(ctx).Errorf("Cannot get claim by code: %v", err)
		return nil, errInternal
	}

	if err := d.claimRepo.UpdateStatus(ctx, claim.ID, entity.ClaimUsed); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update claim status: %v", err)
		return nil, errInternal
	}

	return &model.MarkDiscountUsedResponse{}, nil
}
