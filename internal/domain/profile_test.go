package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/studyhive-lab/backend/internal/domain/badge"
	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/internal/model"
	"github.com/studyhive-lab/backend/internal/repository"
	"github.com/studyhive-lab/backend/pkg/errorx"
	"github.com/studyhive-lab/backend/pkg/testutil"
	"github.com/studyhive-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newProfileDomainForTest(leaderboard *testutil.MockLeaderboard) *profileDomain {
	userRepo := repository.NewUserRepository()
	profileRepo := repository.NewProfileRepository()
	badgeRepo := repository.NewBadgeRepository()
	userBadgeRepo := repository.NewUserBadgeRepository()
	referralRepo := repository.NewReferralRepository()
	notificationRepo := repository.NewNotificationRepository()

	badgeManager := badge.NewManager(
		userBadgeRepo,
		notificationRepo,
		badge.NewXPMilestoneScanner(badgeRepo, profileRepo),
		badge.NewStreakScanner(badgeRepo, profileRepo, badge.DefaultStreakMilestones),
		badge.NewReferralScanner(badgeRepo, referralRepo, badge.DefaultReferralMilestones),
	)

	return NewProfileDomain(
		userRepo, profileRepo, badgeRepo, userBadgeRepo, notificationRepo,
		leaderboard, badgeManager, &testutil.MockPublisher{},
	)
}

// brokenProfileRepository fails the next AddXP call, then behaves normally.
type brokenProfileRepository struct {
	repository.ProfileRepository
	failNextAddXP bool
}

func (r *brokenProfileRepository) AddXP(
	ctx context.Context, userID string, xp, points uint64, level int,
) error {
	if r.failNextAddXP {
		r.failNextAddXP = false
		return errors.New("connection reset")
	}

	return r.ProfileRepository.AddXP(ctx, userID, xp, points, level)
}

func Test_profileDomain_GetMe_createsProfile(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	profileDomain := newProfileDomainForTest(&testutil.MockLeaderboard{})

	// The admin fixture has no profile row yet, the first visit creates one
	// and runs the daily login accrual.
	ctx = xcontext.WithRequestUserID(ctx, testutil.Admin.ID)
	resp, err := profileDomain.GetMe(ctx, &model.GetMeRequest{})
	require.NoError(t, err)
	require.Equal(t, testutil.Admin.Name, resp.Profile.Username)
	require.Equal(t, 1, resp.Profile.Streak)
	require.Equal(t, uint64(10), resp.Profile.XP)
	require.Equal(t, uint64(10), resp.Profile.RewardPoints)
	require.NotEmpty(t, resp.Profile.ReferralCode)
}

func Test_profileDomain_GetMe_continuesStreak(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	profileDomain := newProfileDomainForTest(&testutil.MockLeaderboard{})

	profileRepo := repository.NewProfileRepository()
	yesterday := time.Now().AddDate(0, 0, -1)
	require.NoError(t, profileRepo.UpdateStreak(ctx, testutil.User1.ID, 3, yesterday))

	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	resp, err := profileDomain.GetMe(ctx, &model.GetMeRequest{})
	require.NoError(t, err)
	require.Equal(t, 4, resp.Profile.Streak)
	require.Equal(t, uint64(10), resp.Profile.XP)

	// A second visit on the same day changes nothing.
	resp, err = profileDomain.GetMe(ctx, &model.GetMeRequest{})
	require.NoError(t, err)
	require.Equal(t, 4, resp.Profile.Streak)
	require.Equal(t, uint64(10), resp.Profile.XP)

	// Exactly one streak notification for the single accrual.
	notificationRepo := repository.NewNotificationRepository()
	records, err := notificationRepo.GetByUserID(ctx, testutil.User1.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Daily Streak Updated!", records[0].Title)
	require.Equal(t, entity.SystemNotification, records[0].Type)
}

func Test_profileDomain_GetMe_failedAccrualKeepsStreakUnstamped(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	userRepo := repository.NewUserRepository()
	profileRepo := &brokenProfileRepository{
		ProfileRepository: repository.NewProfileRepository(),
		failNextAddXP:     true,
	}
	badgeRepo := repository.NewBadgeRepository()
	userBadgeRepo := repository.NewUserBadgeRepository()
	referralRepo := repository.NewReferralRepository()
	notificationRepo := repository.NewNotificationRepository()

	badgeManager := badge.NewManager(
		userBadgeRepo,
		notificationRepo,
		badge.NewXPMilestoneScanner(badgeRepo, profileRepo),
		badge.NewStreakScanner(badgeRepo, profileRepo, badge.DefaultStreakMilestones),
		badge.NewReferralScanner(badgeRepo, referralRepo, badge.DefaultReferralMilestones),
	)

	profileDomain := NewProfileDomain(
		userRepo, profileRepo, badgeRepo, userBadgeRepo, notificationRepo,
		&testutil.MockLeaderboard{}, badgeManager, &testutil.MockPublisher{},
	)

	yesterday := time.Now().AddDate(0, 0, -1)
	require.NoError(t, profileRepo.UpdateStreak(ctx, testutil.User1.ID, 3, yesterday))

	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	_, err := profileDomain.GetMe(ctx, &model.GetMeRequest{})
	require.Error(t, err)

	// The streak stamp rolled back with the reward, nothing was consumed.
	stored, err := profileRepo.GetByUserID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, 3, stored.Streak)
	require.Equal(t, uint64(0), stored.XP)

	// The retry on the same day still accrues the full reward.
	resp, err := profileDomain.GetMe(ctx, &model.GetMeRequest{})
	require.NoError(t, err)
	require.Equal(t, 4, resp.Profile.Streak)
	require.Equal(t, uint64(10), resp.Profile.XP)
	require.Equal(t, uint64(10), resp.Profile.RewardPoints)
}

func Test_profileDomain_GetMe_resetsBrokenStreak(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	profileDomain := newProfileDomainForTest(&testutil.MockLeaderboard{})

	profileRepo := repository.NewProfileRepository()
	lastWeek := time.Now().AddDate(0, 0, -7)
	require.NoError(t, profileRepo.UpdateStreak(ctx, testutil.User1.ID, 10, lastWeek))

	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	resp, err := profileDomain.GetMe(ctx, &model.GetMeRequest{})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Profile.Streak)
}

func Test_profileDomain_GetLeaderboard(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	leaderboard := &testutil.MockLeaderboard{
		GetLeaderboardFunc: func(
			ctx context.Context, period entity.LeaderboardPeriodType, offset, limit int,
		) ([]model.LeaderboardEntry, error) {
			return []model.LeaderboardEntry{
				{UserID: testutil.User1.ID, XP: 500, Rank: 1},
				{UserID: testutil.User2.ID, XP: 300, Rank: 2},
			}, nil
		},
		GetRankFunc: func(
			ctx context.Context, userID string, period entity.LeaderboardPeriodType,
		) (uint64, error) {
			return 2, nil
		},
	}
	profileDomain := newProfileDomainForTest(leaderboard)

	ctx = xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	resp, err := profileDomain.GetLeaderboard(ctx, &model.GetLeaderboardRequest{Period: "week"})
	require.NoError(t, err)
	require.Len(t, resp.Leaderboard, 2)
	require.Equal(t, testutil.User1.Name, resp.Leaderboard[0].Username)
	require.Equal(t, testutil.User2.Name, resp.Leaderboard[1].Username)
	require.Equal(t, uint64(2), resp.MyRank)

	_, err = profileDomain.GetLeaderboard(ctx, &model.GetLeaderboardRequest{Period: "decade"})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_profileDomain_GetBadges(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	profileDomain := newProfileDomainForTest(&testutil.MockLeaderboard{})

	userBadgeRepo := repository.NewUserBadgeRepository()
	require.NoError(t, userBadgeRepo.Upsert(ctx, &entity.UserBadge{
		UserID:  testutil.User1.ID,
		BadgeID: testutil.BadgeRisingStar.ID,
	}))

	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	resp, err := profileDomain.GetBadges(ctx, &model.GetBadgesRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Badges, 4)

	unlocked := map[string]bool{}
	for _, b := range resp.Badges {
		unlocked[b.Name] = b.Unlocked
	}
	require.True(t, unlocked[testutil.BadgeRisingStar.Name])
	require.False(t, unlocked[testutil.BadgeScholar.Name])
}
