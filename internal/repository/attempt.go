package repository

import (
	"context"
	"time"

	"github.com/nordicmagic/backend/internal/entity"
	"github.com/nordicmagic/backend/pkg/xcontext"
)

type AttemptRepository interface {
	Create(ctx context.Context, attempt *entity.Attempt) error
	CountByIPSince(ctx context.Context, ipHash string, since time.Time) (int64, error)
}

type attemptRepository struct{}

func NewAttemptRepository() *attemptRepository {
	return &attemptRepository{}
}

func (r *attemptRepository) Create(ctx context.Context, attempt *entity.Attempt) error {
	return xcontext.DB(ctx).Create(attempt).Error
}

func (r *attemptRepository) CountByIPSince(ctx context.Context, ipHash string, since time.Time) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Attempt{}).
		Where("ip_hash=? AND created_at > ?", ipHash, since).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
