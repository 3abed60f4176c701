package statistic

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/internal/model"
	"github.com/studyhive-lab/backend/internal/repository"
	"github.com/studyhive-lab/backend/pkg/errorx"
	"github.com/studyhive-lab/backend/pkg/xcontext"
	"github.com/studyhive-lab/backend/pkg/xredis"
)

type Leaderboard interface {
	GetLeaderboard(
		ctx context.Context,
		period entity.LeaderboardPeriodType,
		offset, limit int,
	) ([]model.LeaderboardEntry, error)

	GetRank(
		ctx context.Context,
		userID string,
		period entity.LeaderboardPeriodType,
	) (uint64, error)

	ChangeXPLeaderboard(
		ctx context.Context,
		value int64,
		at time.Time,
		userID string,
	) error
}

type leaderboard struct {
	profileRepo repository.ProfileRepository
	redisClient xredis.Client
}

func New(profileRepo repository.ProfileRepository, redisClient xredis.Client) *leaderboard {
	return &leaderboard{profileRepo: profileRepo, redisClient: redisClient}
}

func (l *leaderboard) GetLeaderboard(
	ctx context.Context,
	period entity.LeaderboardPeriodType,
	offset, limit int,
) ([]model.LeaderboardEntry, error) {
	key := redisKeyXPLeaderboard(period)

	ok, err := l.redisClient.Exist(ctx, key)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call exist redis: %v", err)
		return nil, errorx.Unknown
	}

	// If the key didn't exist in redis, load it from database.
	if !ok {
		if err := l.loadLeaderboardFromDB(ctx, period); err != nil {
			return nil, err
		}
	}

	results, err := l.redisClient.ZRevRangeWithScores(ctx, key, offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get revrange redis: %v", err)
		return nil, errorx.Unknown
	}

	board := []model.LeaderboardEntry{}
	for i, z := range results {
		xp := uint64(z.Score)
		board = append(board, model.LeaderboardEntry{
			UserID: z.Member.(string),
			XP:     xp,
			Level:  entity.LevelOf(xp),
			Rank:   uint64(offset + i + 1),
		})
	}

	return board, nil
}

func (l *leaderboard) GetRank(
	ctx context.Context,
	userID string,
	period entity.LeaderboardPeriodType,
) (uint64, error) {
	key := redisKeyXPLeaderboard(period)

	ok, err := l.redisClient.Exist(ctx, key)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call exist redis: %v", err)
		return 0, errorx.Unknown
	}

	if !ok {
		if err := l.loadLeaderboardFromDB(ctx, period); err != nil {
			return 0, err
		}
	}

	rank, err := l.redisClient.ZRevRank(ctx, key, userID)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot get rev rank redis: %v", err)
		return 0, nil
	}

	return rank + 1, nil
}

func (l *leaderboard) ChangeXPLeaderboard(
	ctx context.Context,
	value int64,
	at time.Time,
	userID string,
) error {
	for _, periodString := range []string{"week", "month", "total"} {
		period, err := ToPeriodWithTime(periodString, at)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Invalid period: %v", err)
			return errorx.Unknown
		}

		if err := l.changeLeaderboard(ctx, value, userID, period); err != nil {
			return err
		}
	}

	return nil
}

func (l *leaderboard) changeLeaderboard(
	ctx context.Context,
	value int64,
	userID string,
	period entity.LeaderboardPeriodType,
) error {
	key := redisKeyXPLeaderboard(period)

	ok, err := l.redisClient.Exist(ctx, key)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call exist redis: %v", err)
		return errorx.Unknown
	}

	// If the key didn't exist in redis, it will be fully loaded from the
	// database at the next read.
	if !ok {
		return nil
	}

	if err := l.redisClient.ZIncrBy(ctx, key, value, userID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call ZIncrBy redis: %v", err)
	}

	return nil
}

func (l *leaderboard) loadLeaderboardFromDB(
	ctx context.Context, period entity.LeaderboardPeriodType,
) error {
	column := "xp"
	switch period.(type) {
	case entity.LeaderboardPeriodWeek:
		column = "weekly_xp"
	case entity.LeaderboardPeriodMonth:
		column = "monthly_xp"
	}

	records, err := l.profileRepo.GetTopByXP(ctx, column, 1000)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load leaderboard from db: %v", err)
		return errorx.Unknown
	}

	key := redisKeyXPLeaderboard(period)
	for _, record := range records {
		z := redis.Z{Member: record.UserID, Score: float64(record.XP)}
		if err := l.redisClient.ZAdd(ctx, key, z); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot call ZAdd redis: %v", err)
			return errorx.Unknown
		}
	}

	return nil
}
