package repository

import (
	"context"

	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/pkg/xcontext"
)

type ReferralRepository interface {
	Create(ctx context.Context, data *entity.Referral) error
	GetByReferrerID(ctx context.Context, referrerID string) ([]entity.Referral, error)
	GetByReferredID(ctx context.Context, referredID string) (*entity.Referral, error)
	CountCompletedByReferrerID(ctx context.Context, referrerID string) (int64, error)
}

type referralRepository struct{}

func NewReferralRepository() *referralRepository {
	return &referralRepository{}
}

func (r *referralRepository) Create(ctx context.Context, data *entity.Referral) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *referralRepository) GetByReferrerID(
	ctx context.Context, referrerID string,
) ([]entity.Referral, error) {
	var records []entity.Referral
	err := xcontext.DB(ctx).
		Where("referrer_id=?", referrerID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *referralRepository) GetByReferredID(
	ctx context.Context, referredID string,
) (*entity.Referral, error) {
	var record entity.Referral
	if err := xcontext.DB(ctx).Where("referred_id=?", referredID).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *referralRepository) CountCompletedByReferrerID(
	ctx context.Context, referrerID string,
) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Referral{}).
		Where("referrer_id=? AND status=?", referrerID, entity.ReferralCompleted).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
