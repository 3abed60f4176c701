package domain

import (
	"context"
	"errors"
	"time"

	"github.com/studyhive-lab/backend/internal/domain/badge"
	"github.com/studyhive-lab/backend/internal/domain/statistic"
	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/internal/repository"
	"github.com/studyhive-lab/backend/pkg/errorx"
	"github.com/studyhive-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// xpAccrual is shared by every domain that awards xp. The database row is
// written first, the leaderboard mirror and badge scan follow. A failed
// write awards nothing.
type xpAccrual struct {
	profileRepo  repository.ProfileRepository
	leaderboard  statistic.Leaderboard
	badgeManager *badge.Manager
}

func newXPAccrual(
	profileRepo repository.ProfileRepository,
	leaderboard statistic.Leaderboard,
	badgeManager *badge.Manager,
) *xpAccrual {
	return &xpAccrual{
		profileRepo:  profileRepo,
		leaderboard:  leaderboard,
		badgeManager: badgeManager,
	}
}

// AddXP credits xp and the same amount of reward points to a user.
func (a *xpAccrual) AddXP(ctx context.Context, userID string, xp uint64) error {
	return a.Add(ctx, userID, xp, xp)
}

func (a *xpAccrual) Add(ctx context.Context, userID string, xp, points uint64) error {
	profile, err := a.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorx.New(errorx.NotFound, "Not found profile")
		}

		xcontext.Logger(ctx).Errorf("Cannot get profile: %v", err)
		return errorx.Unknown
	}

	newLevel := entity.LevelOf(profile.XP + xp)
	if err := a.profileRepo.AddXP(ctx, userID, xp, points, newLevel); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot add xp to profile: %v", err)
		return errorx.Unknown
	}

	if err := a.leaderboard.ChangeXPLeaderboard(ctx, int64(xp), time.Now(), userID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot change xp leaderboard: %v", err)
	}

	err = a.badgeManager.
		WithBadges(badge.XPMilestoneScannerName, badge.StreakScannerName, badge.ReferralScannerName).
		ScanAndGive(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot scan badges: %v", err)
	}

	return nil
}
