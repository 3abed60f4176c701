package domain

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/studyhive-lab/backend/internal/domain/badge"
	"github.com/studyhive-lab/backend/internal/domain/entitlement"
	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/internal/model"
	"github.com/studyhive-lab/backend/internal/repository"
	"github.com/studyhive-lab/backend/pkg/errorx"
	"github.com/studyhive-lab/backend/pkg/testutil"
	"github.com/studyhive-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newTestDomainForTest() *testDomain {
	userRepo := repository.NewUserRepository()
	profileRepo := repository.NewProfileRepository()
	badgeRepo := repository.NewBadgeRepository()
	userBadgeRepo := repository.NewUserBadgeRepository()
	referralRepo := repository.NewReferralRepository()
	notificationRepo := repository.NewNotificationRepository()

	loader := entitlement.NewLoader(
		userRepo,
		repository.NewPurchaseRepository(),
		repository.NewCategoryPurchaseRepository(),
		repository.NewEnrollmentRepository(),
		repository.NewCourseRepository(),
	)

	badgeManager := badge.NewManager(
		userBadgeRepo,
		notificationRepo,
		badge.NewXPMilestoneScanner(badgeRepo, profileRepo),
		badge.NewStreakScanner(badgeRepo, profileRepo, badge.DefaultStreakMilestones),
		badge.NewReferralScanner(badgeRepo, referralRepo, badge.DefaultReferralMilestones),
	)

	return NewTestDomain(
		repository.NewTestRepository(),
		repository.NewTestResultRepository(),
		profileRepo,
		loader,
		&testutil.MockLeaderboard{},
		badgeManager,
		&testutil.MockPublisher{},
	)
}

func Test_testDomain_Get_hidesAnswersWithoutAccess(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	testDomain := newTestDomainForTest()

	// Anonymous callers see the metadata but not the questions.
	resp, err := testDomain.Get(ctx, &model.GetTestRequest{ID: testutil.Test1.ID})
	require.NoError(t, err)
	require.False(t, resp.Test.HasAccess)
	require.Empty(t, resp.Test.Questions)

	// An admin sees the questions but never the correct answers.
	adminCtx := xcontext.WithRequestUserID(ctx, testutil.Admin.ID)
	resp, err = testDomain.Get(adminCtx, &model.GetTestRequest{ID: testutil.Test1.ID})
	require.NoError(t, err)
	require.True(t, resp.Test.HasAccess)
	require.Len(t, resp.Test.Questions, 2)
	for _, q := range resp.Test.Questions {
		require.Zero(t, q.CorrectAnswer)
	}
}

func Test_testDomain_Submit(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	testDomain := newTestDomainForTest()

	purchaseRepo := repository.NewPurchaseRepository()
	require.NoError(t, purchaseRepo.Create(ctx, &entity.Purchase{
		Base:    entity.Base{ID: uuid.NewString()},
		UserID:  testutil.User1.ID,
		TestID:  sql.NullString{String: testutil.Test1.ID, Valid: true},
		OrderID: "TEST_1",
		Amount:  testutil.Test1.Price,
		Status:  entity.PurchaseCompleted,
	}))

	// One of two answers is correct, the score is 50 and the first attempt
	// yields half of the 50 reward points.
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	resp, err := testDomain.Submit(ctx, &model.SubmitTestRequest{
		ID:      testutil.Test1.ID,
		Answers: []int{0, 0},
	})
	require.NoError(t, err)
	require.Equal(t, 50, resp.Score)
	require.Equal(t, 2, resp.TotalQuestions)
	require.Equal(t, 1, resp.CorrectAnswers)
	require.Equal(t, uint64(25), resp.XPEarned)
	require.True(t, resp.FirstAttempt)

	profile, err := repository.NewProfileRepository().GetByUserID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(25), profile.XP)

	// A perfect retake is recorded but earns nothing.
	resp, err = testDomain.Submit(ctx, &model.SubmitTestRequest{
		ID:      testutil.Test1.ID,
		Answers: []int{0, 1},
	})
	require.NoError(t, err)
	require.Equal(t, 100, resp.Score)
	require.Zero(t, resp.XPEarned)
	require.False(t, resp.FirstAttempt)

	results, err := testDomain.GetMyResults(ctx, &model.GetMyTestResultsRequest{})
	require.NoError(t, err)
	require.Len(t, results.Results, 2)
}

func Test_testDomain_Submit_failedRewardKeepsFirstAttempt(t *testing.T) {
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

	loader := entitlement.NewLoader(
		userRepo,
		repository.NewPurchaseRepository(),
		repository.NewCategoryPurchaseRepository(),
		repository.NewEnrollmentRepository(),
		repository.NewCourseRepository(),
	)

	badgeManager := badge.NewManager(
		userBadgeRepo,
		notificationRepo,
		badge.NewXPMilestoneScanner(badgeRepo, profileRepo),
		badge.NewStreakScanner(badgeRepo, profileRepo, badge.DefaultStreakMilestones),
		badge.NewReferralScanner(badgeRepo, referralRepo, badge.DefaultReferralMilestones),
	)

	testDomain := NewTestDomain(
		repository.NewTestRepository(),
		repository.NewTestResultRepository(),
		profileRepo,
		loader,
		&testutil.MockLeaderboard{},
		badgeManager,
		&testutil.MockPublisher{},
	)

	purchaseRepo := repository.NewPurchaseRepository()
	require.NoError(t, purchaseRepo.Create(ctx, &entity.Purchase{
		Base:    entity.Base{ID: uuid.NewString()},
		UserID:  testutil.User1.ID,
		TestID:  sql.NullString{String: testutil.Test1.ID, Valid: true},
		OrderID: "TEST_1",
		Amount:  testutil.Test1.Price,
		Status:  entity.PurchaseCompleted,
	}))

	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	_, err := testDomain.Submit(ctx, &model.SubmitTestRequest{
		ID:      testutil.Test1.ID,
		Answers: []int{0, 1},
	})
	require.Error(t, err)

	// The result row rolled back with the reward, no attempt was recorded.
	results, err := testDomain.GetMyResults(ctx, &model.GetMyTestResultsRequest{})
	require.NoError(t, err)
	require.Empty(t, results.Results)

	// The retry is still the first attempt and earns the full reward.
	resp, err := testDomain.Submit(ctx, &model.SubmitTestRequest{
		ID:      testutil.Test1.ID,
		Answers: []int{0, 1},
	})
	require.NoError(t, err)
	require.True(t, resp.FirstAttempt)
	require.Equal(t, uint64(50), resp.XPEarned)

	profile, err := profileRepo.GetByUserID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(50), profile.XP)
}

func Test_testDomain_Submit_withoutAccess(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	testDomain := newTestDomainForTest()

	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	_, err := testDomain.Submit(ctx, &model.SubmitTestRequest{
		ID:      testutil.Test1.ID,
		Answers: []int{0, 1},
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)
}

func Test_testDomain_Submit_wrongAnswerCount(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	testDomain := newTestDomainForTest()

	ctx = xcontext.WithRequestUserID(ctx, testutil.Admin.ID)
	_, err := testDomain.Submit(ctx, &model.SubmitTestRequest{
		ID:      testutil.Test1.ID,
		Answers: []int{0},
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_testDomain_Create_validatesQuestions(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	testDomain := newTestDomainForTest()

	ctx = xcontext.WithRequestUserID(ctx, testutil.Admin.ID)
	_, err := testDomain.Create(ctx, &model.CreateTestRequest{
		Title:    "Bad quiz",
		Category: "math",
		Questions: []model.Question{
			{Text: "q", Options: []string{"a", "b"}, CorrectAnswer: 5},
		},
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)

	resp, err := testDomain.Create(ctx, &model.CreateTestRequest{
		Title:        "Good quiz",
		Category:     "math",
		RewardPoints: 30,
		Questions: []model.Question{
			{Text: "q", Options: []string{"a", "b"}, CorrectAnswer: 1},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)
}
