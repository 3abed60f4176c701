package repository

import (
	"context"

	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type BadgeRepository interface {
	Create(ctx context.Context, badge *entity.Badge) error
	GetByID(ctx context.Context, id string) (*entity.Badge, error)
	GetByName(ctx context.Context, name string) (*entity.Badge, error)
	GetAll(ctx context.Context) ([]entity.Badge, error)
	GetLessThanRequirement(ctx context.Context, xp uint64) ([]entity.Badge, error)
}

type badgeRepository struct{}

func NewBadgeRepository() *badgeRepository {
	return &badgeRepository{}
}

func (r *badgeRepository) Create(ctx context.Context, badge *entity.Badge) error {
	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"description":    badge.Description,
				"icon":           badge.Icon,
				"xp_requirement": badge.XPRequirement,
			}),
		}).Create(badge).Error
}

func (r *badgeRepository) GetByID(ctx context.Context, id string) (*entity.Badge, error) {
	result := &entity.Badge{}
	if err := xcontext.DB(ctx).Where("id=?", id).Take(result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *badgeRepository) GetByName(ctx context.Context, name string) (*entity.Badge, error) {
	result := &entity.Badge{}
	if err := xcontext.DB(ctx).Where("name=?", name).Take(result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *badgeRepository) GetAll(ctx context.Context) ([]entity.Badge, error) {
	result := []entity.Badge{}
	if err := xcontext.DB(ctx).Order("xp_requirement ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *badgeRepository) GetLessThanRequirement(ctx context.Context, xp uint64) ([]entity.Badge, error) {
	result := []entity.Badge{}
	err := xcontext.DB(ctx).
		Where("xp_requirement>0 AND xp_requirement<=?", xp).
		Order("xp_requirement ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
