package repository

import (
	"context"

	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/pkg/xcontext"
)

type LessonRepository interface {
	Create(ctx context.Context, data *entity.Lesson) error
	GetByID(ctx context.Context, id string) (*entity.Lesson, error)
	GetByCourseID(ctx context.Context, courseID string) ([]entity.Lesson, error)
	UpdateByID(ctx context.Context, id string, updateMap map[string]any) error
	UpdateOrderIndex(ctx context.Context, id string, orderIndex int) error
	DeleteByID(ctx context.Context, id string) error
}

type lessonRepository struct{}

func NewLessonRepository() *lessonRepository {
	return &lessonRepository{}
}

func (r *lessonRepository) Create(ctx context.Context, data *entity.Lesson) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *lessonRepository) GetByID(ctx context.Context, id string) (*entity.Lesson, error) {
	var record entity.Lesson
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *lessonRepository) GetByCourseID(ctx context.Context, courseID string) ([]entity.Lesson, error) {
	var records []entity.Lesson
	err := xcontext.DB(ctx).
		Where("course_id=?", courseID).
		Order("order_index ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *lessonRepository) UpdateByID(ctx context.Context, id string, updateMap map[string]any) error {
	return xcontext.DB(ctx).Model(&entity.Lesson{}).Where("id=?", id).Updates(updateMap).Error
}

func (r *lessonRepository) UpdateOrderIndex(ctx context.Context, id string, orderIndex int) error {
	return xcontext.DB(ctx).Model(&entity.Lesson{}).Where("id=?", id).
		Update("order_index", orderIndex).Error
}

func (r *lessonRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Where("id=?", id).Delete(&entity.Lesson{}).Error
}
