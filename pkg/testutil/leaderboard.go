package testutil

import (
	"context"
	"time"

	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/internal/model"
)

type MockLeaderboard struct {
	GetLeaderboardFunc func(
		ctx context.Context,
		period entity.LeaderboardPeriodType,
		offset, limit int,
	) ([]model.LeaderboardEntry, error)

	GetRankFunc func(
		ctx context.Context,
		userID string,
		period entity.LeaderboardPeriodType,
	) (uint64, error)

	ChangeXPLeaderboardFunc func(
		ctx context.Context,
		value int64,
		at time.Time,
		userID string,
	) error
}

func (m *MockLeaderboard) GetLeaderboard(
	ctx context.Context,
	period entity.LeaderboardPeriodType,
	offset, limit int,
) ([]model.LeaderboardEntry, error) {
	if m.GetLeaderboardFunc != nil {
		return m.GetLeaderboardFunc(ctx, period, offset, limit)
	}

	return nil, nil
}

func (m *MockLeaderboard) GetRank(
	ctx context.Context,
	userID string,
	period entity.LeaderboardPeriodType,
) (uint64, error) {
	if m.GetRankFunc != nil {
		return m.GetRankFunc(ctx, userID, period)
	}

	return 0, nil
}

func (m *MockLeaderboard) ChangeXPLeaderboard(
	ctx context.Context,
	value int64,
	at time.Time,
	userID string,
) error {
	if m.ChangeXPLeaderboardFunc != nil {
		return m.ChangeXPLeaderboardFunc(ctx, value, at, userID)
	}

	return nil
}
