package repository

import (
	"context"

	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/pkg/xcontext"
)

type EnrollmentRepository interface {
	Create(ctx context.Context, data *entity.Enrollment) error
	Get(ctx context.Context, userID, courseID string) (*entity.Enrollment, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.Enrollment, error)
	UpdateProgress(ctx context.Context, userID, courseID string, updateMap map[string]any) error
	Count(ctx context.Context, courseID string) (int64, error)
}

type enrollmentRepository struct{}

func NewEnrollmentRepository() *enrollmentRepository {
	return &enrollmentRepository{}
}

func (r *enrollmentRepository) Create(ctx context.Context, data *entity.Enrollment) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *enrollmentRepository) Get(ctx context.Context, userID, courseID string) (*entity.Enrollment, error) {
	var record entity.Enrollment
	err := xcontext.DB(ctx).
		Where("user_id=? AND course_id=?", userID, courseID).
		Take(&record).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *enrollmentRepository) GetByUserID(ctx context.Context, userID string) ([]entity.Enrollment, error) {
	var records []entity.Enrollment
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *enrollmentRepository) UpdateProgress(
	ctx context.Context, userID, courseID string, updateMap map[string]any,
) error {
	return xcontext.DB(ctx).Model(&entity.Enrollment{}).
		Where("user_id=? AND course_id=?", userID, courseID).
		Updates(updateMap).Error
}

func (r *enrollmentRepository) Count(ctx context.Context, courseID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Enrollment{}).
		Where("course_id=?", courseID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
