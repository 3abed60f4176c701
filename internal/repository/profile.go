package repository

import (
	"context"
	"time"

	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type LeaderboardRecord struct {
	UserID   string
	Username string
	XP       uint64
	Level    int
}

type ProfileRepository interface {
	Create(ctx context.Context, data *entity.Profile) error
	GetByUserID(ctx context.Context, userID string) (*entity.Profile, error)
	GetByReferralCode(ctx context.Context, code string) (*entity.Profile, error)
	UpdateByUserID(ctx context.Context, userID string, updateMap map[string]any) error
	AddXP(ctx context.Context, userID string, xp, points uint64, level int) error
	SetReferredBy(ctx context.Context, userID, referrerID string) error
	UpdateStreak(ctx context.Context, userID string, streak int, lastActivity time.Time) error
	GetTopByXP(ctx context.Context, column string, limit int) ([]LeaderboardRecord, error)
}

type profileRepository struct{}

func NewProfileRepository() *profileRepository {
	return &profileRepository{}
}

func (r *profileRepository) Create(ctx context.Context, data *entity.Profile) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	var record entity.Profile
	if err := xcontext.DB(ctx).Where("user_id=?", userID).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *profileRepository) GetByReferralCode(ctx context.Context, code string) (*entity.Profile, error) {
	var record entity.Profile
	if err := xcontext.DB(ctx).Where("referral_code=?", code).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *profileRepository) UpdateByUserID(
	ctx context.Context, userID string, updateMap map[string]any,
) error {
	return xcontext.DB(ctx).Model(&entity.Profile{}).
		Where("user_id=?", userID).
		Updates(updateMap).Error
}

func (r *profileRepository) AddXP(
	ctx context.Context, userID string, xp, points uint64, level int,
) error {
	return xcontext.DB(ctx).Model(&entity.Profile{}).
		Where("user_id=?", userID).
		Updates(map[string]any{
			"xp":            gorm.Expr("xp + ?", xp),
			"reward_points": gorm.Expr("reward_points + ?", points),
			"weekly_xp":     gorm.Expr("weekly_xp + ?", xp),
			"monthly_xp":    gorm.Expr("monthly_xp + ?", xp),
			"level":         level,
		}).Error
}

func (r *profileRepository) SetReferredBy(ctx context.Context, userID, referrerID string) error {
	return xcontext.DB(ctx).Model(&entity.Profile{}).
		Where("user_id=? AND referred_by IS NULL", userID).
		Update("referred_by", referrerID).Error
}

func (r *profileRepository) UpdateStreak(
	ctx context.Context, userID string, streak int, lastActivity time.Time,
) error {
	return xcontext.DB(ctx).Model(&entity.Profile{}).
		Where("user_id=?", userID).
		Updates(map[string]any{
			"streak":             streak,
			"last_activity_date": lastActivity,
		}).Error
}

func (r *profileRepository) GetTopByXP(
	ctx context.Context, column string, limit int,
) ([]LeaderboardRecord, error) {
	var records []LeaderboardRecord
	err := xcontext.DB(ctx).Model(&entity.Profile{}).
		Select("user_id, username, " + column + " as xp, level").
		Order(column + " DESC").
		Limit(limit).
		Scan(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}
