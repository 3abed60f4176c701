package domain

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/studyhive-lab/backend/internal/domain/badge"
	"github.com/studyhive-lab/backend/internal/domain/entitlement"
	"github.com/studyhive-lab/backend/internal/domain/statistic"
	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/internal/model"
	"github.com/studyhive-lab/backend/internal/repository"
	"github.com/studyhive-lab/backend/pkg/errorx"
	"github.com/studyhive-lab/backend/pkg/pubsub"
	"github.com/studyhive-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type TestDomain interface {
	GetList(context.Context, *model.GetTestsRequest) (*model.GetTestsResponse, error)
	Get(context.Context, *model.GetTestRequest) (*model.GetTestResponse, error)
	Submit(context.Context, *model.SubmitTestRequest) (*model.SubmitTestResponse, error)
	GetMyResults(context.Context, *model.GetMyTestResultsRequest) (*model.GetMyTestResultsResponse, error)
	Create(context.Context, *model.CreateTestRequest) (*model.CreateTestResponse, error)
	Update(context.Context, *model.UpdateTestRequest) (*model.UpdateTestResponse, error)
	Delete(context.Context, *model.DeleteTestRequest) (*model.DeleteTestResponse, error)
}

type testDomain struct {
	testRepo       repository.TestRepository
	testResultRepo repository.TestResultRepository
	loader         *entitlement.Loader
	accrual        *xpAccrual
	refetch        *refetcher
}

func NewTestDomain(
	testRepo repository.TestRepository,
	testResultRepo repository.TestResultRepository,
	profileRepo repository.ProfileRepository,
	loader *entitlement.Loader,
	leaderboard statistic.Leaderboard,
	badgeManager *badge.Manager,
	publisher pubsub.Publisher,
) *testDomain {
	return &testDomain{
		testRepo:       testRepo,
		testResultRepo: testResultRepo,
		loader:         loader,
		accrual:        newXPAccrual(profileRepo, leaderboard, badgeManager),
		refetch:        newRefetcher(publisher),
	}
}

func (d *testDomain) GetList(
	ctx context.Context, req *model.GetTestsRequest,
) (*model.GetTestsResponse, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 || req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Invalid limit %d", req.Limit)
	}

	tests, err := d.testRepo.GetList(ctx, repository.TestFilter{
		Category:   req.Category,
		ActiveOnly: true,
		Offset:     req.Offset,
		Limit:      req.Limit,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get tests: %v", err)
		return nil, errorx.Unknown
	}

	snapshot, err := d.loader.Load(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		return nil, err
	}

	clientTests := []model.Test{}
	for _, t := range tests {
		hasAccess := entitlement.HasAccess(entitlement.TestItem(&t), snapshot)
		clientTests = append(clientTests, model.ConvertTest(&t, hasAccess))
	}

	return &model.GetTestsResponse{Tests: clientTests}, nil
}

func (d *testDomain) Get(
	ctx context.Context, req *model.GetTestRequest,
) (*model.GetTestResponse, error) {
	test, err := d.testRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found test")
		}

		xcontext.Logger(ctx).Errorf("Cannot get test: %v", err)
		return nil, errorx.Unknown
	}

	snapshot, err := d.loader.Load(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		return nil, err
	}

	hasAccess := entitlement.HasAccess(entitlement.TestItem(test), snapshot)
	return &model.GetTestResponse{Test: model.ConvertTest(test, hasAccess)}, nil
}

func (d *testDomain) Submit(
	ctx context.Context, req *model.SubmitTestRequest,
) (*model.SubmitTestResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	test, err := d.testRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found test")
		}

		xcontext.Logger(ctx).Errorf("Cannot get test: %v", err)
		return nil, errorx.Unknown
	}

	snapshot, err := d.loader.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !entitlement.HasAccess(entitlement.TestItem(test), snapshot) {
		return nil, errorx.New(errorx.PermissionDenied, "You have no access to this test")
	}

	total := len(test.Questions)
	if total == 0 {
		return nil, errorx.New(errorx.Unavailable, "This test has no questions")
	}

	if len(req.Answers) != total {
		return nil, errorx.New(errorx.BadRequest,
			"Expected %d answers, but got %d", total, len(req.Answers))
	}

	correct := 0
	for i, q := range test.Questions {
		if req.Answers[i] == q.CorrectAnswer {
			correct++
		}
	}

	score := int(math.Round(float64(correct) / float64(total) * 100))

	// Only the first completed attempt awards xp. The count-then-insert pair
	// is not atomic, two concurrent first submissions can both award. The
	// window is tiny and the outcome is a duplicate reward, not corruption.
	attempts, err := d.testResultRepo.CountByUserAndTest(ctx, userID, req.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count test results: %v", err)
		return nil, errorx.Unknown
	}

	firstAttempt := attempts == 0
	var xpEarned uint64
	if firstAttempt {
		xpEarned = uint64(math.Round(float64(score) / 100 * float64(test.RewardPoints)))
	}

	result := &entity.TestResult{
		Base:           entity.Base{ID: uuid.NewString()},
		UserID:         userID,
		TestID:         req.ID,
		Score:          score,
		TotalQuestions: total,
		XPEarned:       xpEarned,
	}

	// The result row and the xp reward commit together. A failed reward
	// write must not leave a recorded attempt, the retry would no longer
	// count as the first one.
	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.testResultRepo.Create(ctx, result); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create test result: %v", err)
		return nil, errorx.Unknown
	}

	if xpEarned > 0 {
		if err := d.accrual.AddXP(ctx, userID, xpEarned); err != nil {
			return nil, err
		}
	}

	ctx = xcontext.WithCommitDBTransaction(ctx)

	d.refetch.invalidate(ctx, model.ProfilesBucket, userID)

	return &model.SubmitTestResponse{
		Score:          score,
		TotalQuestions: total,
		CorrectAnswers: correct,
		XPEarned:       xpEarned,
		FirstAttempt:   firstAttempt,
	}, nil
}

func (d *testDomain) GetMyResults(
	ctx context.Context, req *model.GetMyTestResultsRequest,
) (*model.GetMyTestResultsResponse, error) {
	results, err := d.testResultRepo.GetByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get test results: %v", err)
		return nil, errorx.Unknown
	}

	clientResults := []model.TestResult{}
	for _, r := range results {
		clientResults = append(clientResults, model.ConvertTestResult(&r))
	}

	return &model.GetMyTestResultsResponse{Results: clientResults}, nil
}

func (d *testDomain) Create(
	ctx context.Context, req *model.CreateTestRequest,
) (*model.CreateTestResponse, error) {
	if req.Title == "" || req.Category == "" {
		return nil, errorx.New(errorx.BadRequest, "Require a title and category")
	}

	if len(req.Questions) == 0 {
		return nil, errorx.New(errorx.BadRequest, "Require at least one question")
	}

	questions := make(entity.Array[entity.Question], 0, len(req.Questions))
	for _, q := range req.Questions {
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return nil, errorx.New(errorx.BadRequest, "Invalid correct answer of question %q", q.Text)
		}

		questions = append(questions, entity.Question{
			Text:          q.Text,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}

	test := &entity.Test{
		Base:         entity.Base{ID: uuid.NewString()},
		Title:        req.Title,
		Category:     req.Category,
		Price:        req.Price,
		RewardPoints: req.RewardPoints,
		Questions:    questions,
		IsActive:     true,
		CreatedBy:    xcontext.RequestUserID(ctx),
	}

	if err := d.testRepo.Create(ctx, test); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create test: %v", err)
		return nil, errorx.Unknown
	}

	d.refetch.invalidate(ctx, model.TestsBucket, test.ID)

	return &model.CreateTestResponse{ID: test.ID}, nil
}

func (d *testDomain) Update(
	ctx context.Context, req *model.UpdateTestRequest,
) (*model.UpdateTestResponse, error) {
	if _, err := d.testRepo.GetByID(ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found test")
		}

		xcontext.Logger(ctx).Errorf("Cannot get test: %v", err)
		return nil, errorx.Unknown
	}

	updateMap := map[string]any{}
	if req.Title != "" {
		updateMap["title"] = req.Title
	}

	if req.Category != "" {
		updateMap["category"] = req.Category
	}

	if req.Price != nil {
		updateMap["price"] = *req.Price
	}

	if req.RewardPoints != nil {
		updateMap["reward_points"] = *req.RewardPoints
	}

	if req.IsActive != nil {
		updateMap["is_active"] = *req.IsActive
	}

	if len(req.Questions) > 0 {
		questions := make(entity.Array[entity.Question], 0, len(req.Questions))
		for _, q := range req.Questions {
			if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
				return nil, errorx.New(errorx.BadRequest, "Invalid correct answer of question %q", q.Text)
			}

			questions = append(questions, entity.Question{
				Text:          q.Text,
				Options:       q.Options,
				CorrectAnswer: q.CorrectAnswer,
			})
		}

		updateMap["questions"] = questions
	}

	if len(updateMap) == 0 {
		return nil, errorx.New(errorx.BadRequest, "Nothing to update")
	}

	if err := d.testRepo.UpdateByID(ctx, req.ID, updateMap); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update test: %v", err)
		return nil, errorx.Unknown
	}

	d.refetch.invalidate(ctx, model.TestsBucket, req.ID)

	return &model.UpdateTestResponse{}, nil
}

func (d *testDomain) Delete(
	ctx context.Context, req *model.DeleteTestRequest,
) (*model.DeleteTestResponse, error) {
	if _, err := d.testRepo.GetByID(ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found test")
		}

		xcontext.Logger(ctx).Errorf("Cannot get test: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.testRepo.DeleteByID(ctx, req.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete test: %v", err)
		return nil, errorx.Unknown
	}

	d.refetch.invalidate(ctx, model.TestsBucket, req.ID)

	return &model.DeleteTestResponse{}, nil
}
