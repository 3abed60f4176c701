package repository

import (
	"context"

	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/pkg/xcontext"
)

type PurchaseRepository interface {
	Create(ctx context.Context, data *entity.Purchase) error
	GetByUserID(ctx context.Context, userID string) ([]entity.Purchase, error)
	GetCompletedByUserID(ctx context.Context, userID string) ([]entity.Purchase, error)
	GetByUserAndNote(ctx context.Context, userID, noteID string) (*entity.Purchase, error)
	GetByUserAndTest(ctx context.Context, userID, testID string) (*entity.Purchase, error)
}

type purchaseRepository struct{}

func NewPurchaseRepository() *purchaseRepository {
	return &purchaseRepository{}
}

func (r *purchaseRepository) Create(ctx context.Context, data *entity.Purchase) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *purchaseRepository) GetByUserID(ctx context.Context, userID string) ([]entity.Purchase, error) {
	var records []entity.Purchase
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *purchaseRepository) GetCompletedByUserID(
	ctx context.Context, userID string,
) ([]entity.Purchase, error) {
	var records []entity.Purchase
	err := xcontext.DB(ctx).
		Where("user_id=? AND status=?", userID, entity.PurchaseCompleted).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *purchaseRepository) GetByUserAndNote(
	ctx context.Context, userID, noteID string,
) (*entity.Purchase, error) {
	var record entity.Purchase
	err := xcontext.DB(ctx).
		Where("user_id=? AND note_id=? AND status=?", userID, noteID, entity.PurchaseCompleted).
		Take(&record).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *purchaseRepository) GetByUserAndTest(
	ctx context.Context, userID, testID string,
) (*entity.Purchase, error) {
	var record entity.Purchase
	err := xcontext.DB(ctx).
		Where("user_id=? AND test_id=? AND status=?", userID, testID, entity.PurchaseCompleted).
		Take(&record).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}
