package repository

import (
	"context"

	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/pkg/xcontext"
)

type TestFilter struct {
	Category   string
	ActiveOnly bool
	Offset     int
	Limit      int
}

type TestRepository interface {
	Create(ctx context.Context, data *entity.Test) error
	GetByID(ctx context.Context, id string) (*entity.Test, error)
	GetList(ctx context.Context, filter TestFilter) ([]entity.Test, error)
	GetByCategory(ctx context.Context, category string) ([]entity.Test, error)
	UpdateByID(ctx context.Context, id string, updateMap map[string]any) error
	DeleteByID(ctx context.Context, id string) error
}

type testRepository struct{}

func NewTestRepository() *testRepository {
	return &testRepository{}
}

func (r *testRepository) Create(ctx context.Context, data *entity.Test) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *testRepository) GetByID(ctx context.Context, id string) (*entity.Test, error) {
	var record entity.Test
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *testRepository) GetList(ctx context.Context, filter TestFilter) ([]entity.Test, error) {
	tx := xcontext.DB(ctx).Model(&entity.Test{})
	if filter.Category != "" {
		tx = tx.Where("category=?", filter.Category)
	}

	if filter.ActiveOnly {
		tx = tx.Where("is_active=?", true)
	}

	var records []entity.Test
	err := tx.Order("created_at DESC").
		Offset(filter.Offset).Limit(filter.Limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *testRepository) GetByCategory(ctx context.Context, category string) ([]entity.Test, error) {
	var records []entity.Test
	err := xcontext.DB(ctx).
		Where("category=? AND is_active=?", category, true).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *testRepository) UpdateByID(ctx context.Context, id string, updateMap map[string]any) error {
	return xcontext.DB(ctx).Model(&entity.Test{}).Where("id=?", id).Updates(updateMap).Error
}

func (r *testRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Where("id=?", id).Delete(&entity.Test{}).Error
}
