package domain

import (
	"testing"

	"github.com/studyhive-lab/backend/internal/domain/badge"
	"github.com/studyhive-lab/backend/internal/model"
	"github.com/studyhive-lab/backend/internal/repository"
	"github.com/studyhive-lab/backend/pkg/errorx"
	"github.com/studyhive-lab/backend/pkg/testutil"
	"github.com/studyhive-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newReferralDomainForTest() *referralDomain {
	profileRepo := repository.NewProfileRepository()
	badgeRepo := repository.NewBadgeRepository()
	referralRepo := repository.NewReferralRepository()

	badgeManager := badge.NewManager(
		repository.NewUserBadgeRepository(),
		repository.NewNotificationRepository(),
		badge.NewXPMilestoneScanner(badgeRepo, profileRepo),
		badge.NewStreakScanner(badgeRepo, profileRepo, badge.DefaultStreakMilestones),
		badge.NewReferralScanner(badgeRepo, referralRepo, badge.DefaultReferralMilestones),
	)

	return NewReferralDomain(
		referralRepo,
		profileRepo,
		repository.NewUserRepository(),
		&testutil.MockLeaderboard{},
		badgeManager,
		&testutil.MockPublisher{},
	)
}

func Test_referralDomain_ApplyCode(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	referralDomain := newReferralDomainForTest()

	ctx = xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	resp, err := referralDomain.ApplyCode(ctx, &model.ApplyReferralCodeRequest{
		Code: testutil.Profile1.ReferralCode,
	})
	require.NoError(t, err)
	require.True(t, resp.Success)

	// The referrer got the configured points as xp and reward points.
	profileRepo := repository.NewProfileRepository()
	referrer, err := profileRepo.GetByUserID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(100), referrer.XP)
	require.Equal(t, uint64(100), referrer.RewardPoints)

	// The first completed referral unlocks the referrer's badge.
	userBadgeRepo := repository.NewUserBadgeRepository()
	unlock, err := userBadgeRepo.Get(ctx, testutil.User1.ID, testutil.BadgeFriendlyFace.ID)
	require.NoError(t, err)
	require.True(t, unlock.WasNotified)

	// A second code from anyone is refused without an error.
	resp, err = referralDomain.ApplyCode(ctx, &model.ApplyReferralCodeRequest{
		Code: testutil.Profile1.ReferralCode,
	})
	require.NoError(t, err)
	require.False(t, resp.Success)
	require.Equal(t, "You have already used a referral code", resp.Message)

	// The referrer was credited exactly once.
	referrer, err = profileRepo.GetByUserID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(100), referrer.XP)
}

func Test_referralDomain_ApplyCode_selfReferral(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	referralDomain := newReferralDomainForTest()

	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	_, err := referralDomain.ApplyCode(ctx, &model.ApplyReferralCodeRequest{
		Code: testutil.Profile1.ReferralCode,
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_referralDomain_ApplyCode_unknownCode(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	referralDomain := newReferralDomainForTest()

	ctx = xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	_, err := referralDomain.ApplyCode(ctx, &model.ApplyReferralCodeRequest{
		Code: "NOPE",
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}

func Test_referralDomain_GetMyReferrals(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	referralDomain := newReferralDomainForTest()

	applyCtx := xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	_, err := referralDomain.ApplyCode(applyCtx, &model.ApplyReferralCodeRequest{
		Code: testutil.Profile1.ReferralCode,
	})
	require.NoError(t, err)

	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	resp, err := referralDomain.GetMyReferrals(ctx, &model.GetMyReferralsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Referrals, 1)
	require.Equal(t, testutil.User2.Name, resp.Referrals[0].ReferredName)
	require.Equal(t, uint64(100), resp.TotalPoints)
}
