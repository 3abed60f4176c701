package repository

import (
	"context"

	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/pkg/xcontext"
)

type TestResultRepository interface {
	Create(ctx context.Context, data *entity.TestResult) error
	GetByUserID(ctx context.Context, userID string) ([]entity.TestResult, error)
	GetByUserAndTest(ctx context.Context, userID, testID string) ([]entity.TestResult, error)
	CountByUserAndTest(ctx context.Context, userID, testID string) (int64, error)
}

type testResultRepository struct{}

func NewTestResultRepository() *testResultRepository {
	return &testResultRepository{}
}

func (r *testResultRepository) Create(ctx context.Context, data *entity.TestResult) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *testResultRepository) GetByUserID(ctx context.Context, userID string) ([]entity.TestResult, error) {
	var records []entity.TestResult
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *testResultRepository) GetByUserAndTest(
	ctx context.Context, userID, testID string,
) ([]entity.TestResult, error) {
	var records []entity.TestResult
	err := xcontext.DB(ctx).
		Where("user_id=? AND test_id=?", userID, testID).
		Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *testResultRepository) CountByUserAndTest(
	ctx context.Context, userID, testID string,
) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.TestResult{}).
		Where("user_id=? AND test_id=?", userID, testID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
