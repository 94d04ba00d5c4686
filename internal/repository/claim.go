package repository

import (
	"context"

	"github.com/nordicmagic/backend/internal/entity"
	"github.com/nordicmagic/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ClaimRepository interface {
	Create(ctx context.Context, claim *entity.Claim) error
	GetByFingerprint(ctx context.Context, fingerprintHash string) (*entity.Claim, error)
	GetByCode(ctx context.Context, code string) (*entity.Claim, error)
	UpdateStatus(ctx context.Context, id string, status entity.ClaimStatus) error
}

type claimRepository struct{}

func NewClaimRepository() *claimRepository {
	return &claimRepository{}
}

func (r *claimRepository) Create(ctx context.Context, claim *entity.Claim) error {
	return xcontext.DB(ctx).Create(claim).Error
}

func (r *claimRepository) GetByFingerprint(ctx context.Context, fingerprintHash string) (*entity.Claim, error) {
	var result entity.Claim
	if err := xcontext.DB(ctx).Take(&result, "fingerprint_hash=?", fingerprintHash).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *claimRepository) GetByCode(ctx context.Context, code string) (*entity.Claim, error) {
	var result entity.Claim
	if err := xcontext.DB(ctx).Take(&result, "discount_code=?", code).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *claimRepository) UpdateStatus(ctx context.Context, id string, status entity.ClaimStatus) error {
	tx := xcontext.DB(ctx).Model(&entity.Claim{}).
		Where("id=?", id).
		Update("status", status)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
