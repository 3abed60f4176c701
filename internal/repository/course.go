package repository

import (
	"context"

	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/pkg/xcontext"
)

type CourseFilter struct {
	Category   string
	ActiveOnly bool
	Offset     int
	Limit      int
}

type CategoryCount struct {
	Category string
	Count    int64
}

type CourseRepository interface {
	Create(ctx context.Context, data *entity.Course) error
	GetByID(ctx context.Context, id string) (*entity.Course, error)
	GetList(ctx context.Context, filter CourseFilter) ([]entity.Course, error)
	GetByCategory(ctx context.Context, category string) ([]entity.Course, error)
	GetAll(ctx context.Context) ([]entity.Course, error)
	GetCategories(ctx context.Context) ([]CategoryCount, error)
	UpdateByID(ctx context.Context, id string, updateMap map[string]any) error
	DeleteByID(ctx context.Context, id string) error
}

type courseRepository struct{}

func NewCourseRepository() *courseRepository {
	return &courseRepository{}
}

func (r *courseRepository) Create(ctx context.Context, data *entity.Course) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *courseRepository) GetByID(ctx context.Context, id string) (*entity.Course, error) {
	var record entity.Course
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *courseRepository) GetList(ctx context.Context, filter CourseFilter) ([]entity.Course, error) {
	tx := xcontext.DB(ctx).Model(&entity.Course{})
	if filter.Category != "" {
		tx = tx.Where("category=?", filter.Category)
	}

	if filter.ActiveOnly {
		tx = tx.Where("is_active=?", true)
	}

	var records []entity.Course
	err := tx.Order("created_at DESC").
		Offset(filter.Offset).Limit(filter.Limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *courseRepository) GetByCategory(ctx context.Context, category string) ([]entity.Course, error) {
	var records []entity.Course
	err := xcontext.DB(ctx).
		Where("category=? AND is_active=?", category, true).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *courseRepository) GetAll(ctx context.Context) ([]entity.Course, error) {
	var records []entity.Course
	if err := xcontext.DB(ctx).Where("is_active=?", true).Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *courseRepository) GetCategories(ctx context.Context) ([]CategoryCount, error) {
	var records []CategoryCount
	err := xcontext.DB(ctx).Model(&entity.Course{}).
		Select("category, count(*) as count").
		Where("is_active=?", true).
		Group("category").
		Scan(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *courseRepository) UpdateByID(ctx context.Context, id string, updateMap map[string]any) error {
	return xcontext.DB(ctx).Model(&entity.Course{}).Where("id=?", id).Updates(updateMap).Error
}

func (r *courseRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Where("id=?", id).Delete(&entity.Course{}).Error
}
