package repository

import (
	"context"

	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/pkg/xcontext"
)

type CategoryPurchaseRepository interface {
	Create(ctx context.Context, data *entity.CategoryPurchase) error
	GetByUserID(ctx context.Context, userID string) ([]entity.CategoryPurchase, error)
	GetCompletedByUserID(ctx context.Context, userID string) ([]entity.CategoryPurchase, error)
}

type categoryPurchaseRepository struct{}

func NewCategoryPurchaseRepository() *categoryPurchaseRepository {
	return &categoryPurchaseRepository{}
}

func (r *categoryPurchaseRepository) Create(ctx context.Context, data *entity.CategoryPurchase) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *categoryPurchaseRepository) GetByUserID(
	ctx context.Context, userID string,
) ([]entity.CategoryPurchase, error) {
	var records []entity.CategoryPurchase
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *categoryPurchaseRepository) GetCompletedByUserID(
	ctx context.Context, userID string,
) ([]entity.CategoryPurchase, error) {
	var records []entity.CategoryPurchase
	err := xcontext.DB(ctx).
		Where("user_id=? AND status=?", userID, entity.PurchaseCompleted).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}
