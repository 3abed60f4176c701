package repository

import (
	"context"

	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type UserBadgeRepository interface {
	Upsert(ctx context.Context, data *entity.UserBadge) error
	GetByUserID(ctx context.Context, userID string) ([]entity.UserBadge, error)
	Get(ctx context.Context, userID, badgeID string) (*entity.UserBadge, error)
	MarkNotified(ctx context.Context, userID, badgeID string) error
}

type userBadgeRepository struct{}

func NewUserBadgeRepository() *userBadgeRepository {
	return &userBadgeRepository{}
}

// Upsert inserts the unlock and keeps an existing row untouched. Badges are
// never revoked or re-granted.
func (r *userBadgeRepository) Upsert(ctx context.Context, data *entity.UserBadge) error {
	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"},
				{Name: "badge_id"},
			},
			DoNothing: true,
		}).Create(data).Error
}

func (r *userBadgeRepository) GetByUserID(ctx context.Context, userID string) ([]entity.UserBadge, error) {
	result := []entity.UserBadge{}
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("created_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userBadgeRepository) Get(ctx context.Context, userID, badgeID string) (*entity.UserBadge, error) {
	result := &entity.UserBadge{}
	err := xcontext.DB(ctx).
		Where("user_id=? AND badge_id=?", userID, badgeID).
		Take(result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userBadgeRepository) MarkNotified(ctx context.Context, userID, badgeID string) error {
	return xcontext.DB(ctx).Model(&entity.UserBadge{}).
		Where("user_id=? AND badge_id=?", userID, badgeID).
		Update("was_notified", true).Error
}
