package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/studyhive-lab/backend/internal/domain/badge"
	"github.com/studyhive-lab/backend/internal/domain/statistic"
	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/internal/model"
	"github.com/studyhive-lab/backend/internal/repository"
	"github.com/studyhive-lab/backend/pkg/errorx"
	"github.com/studyhive-lab/backend/pkg/pubsub"
	"github.com/studyhive-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ReferralDomain interface {
	ApplyCode(context.Context, *model.ApplyReferralCodeRequest) (*model.ApplyReferralCodeResponse, error)
	GetMyReferrals(context.Context, *model.GetMyReferralsRequest) (*model.GetMyReferralsResponse, error)
}

type referralDomain struct {
	referralRepo repository.ReferralRepository
	profileRepo  repository.ProfileRepository
	userRepo     repository.UserRepository
	accrual      *xpAccrual
	badgeManager *badge.Manager
	refetch      *refetcher
}

func NewReferralDomain(
	referralRepo repository.ReferralRepository,
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	leaderboard statistic.Leaderboard,
	badgeManager *badge.Manager,
	publisher pubsub.Publisher,
) *referralDomain {
	return &referralDomain{
		referralRepo: referralRepo,
		profileRepo:  profileRepo,
		userRepo:     userRepo,
		accrual:      newXPAccrual(profileRepo, leaderboard, badgeManager),
		badgeManager: badgeManager,
		refetch:      newRefetcher(publisher),
	}
}

// ApplyCode links the caller to the owner of a referral code. A code can be
// applied at most once per user. Re-application answers success=false
// instead of an error so background retries of a pending code stay silent.
func (d *referralDomain) ApplyCode(
	ctx context.Context, req *model.ApplyReferralCodeRequest,
) (*model.ApplyReferralCodeResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if req.Code == "" {
		return nil, errorx.New(errorx.BadRequest, "Require a referral code")
	}

	myProfile, err := d.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found profile")
		}

		xcontext.Logger(ctx).Errorf("Cannot get profile: %v", err)
		return nil, errorx.Unknown
	}

	if myProfile.ReferredBy.Valid {
		return &model.ApplyReferralCodeResponse{
			Success: false,
			Message: "You have already used a referral code",
		}, nil
	}

	referrerProfile, err := d.profileRepo.GetByReferralCode(ctx, req.Code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Invalid referral code")
		}

		xcontext.Logger(ctx).Errorf("Cannot get profile by referral code: %v", err)
		return nil, errorx.Unknown
	}

	if referrerProfile.UserID == userID {
		return nil, errorx.New(errorx.BadRequest, "You cannot refer yourself")
	}

	points := uint64(xcontext.Configs(ctx).Referral.Points)

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.profileRepo.SetReferredBy(ctx, userID, referrerProfile.UserID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot set referred by: %v", err)
		return nil, errorx.Unknown
	}

	referral := &entity.Referral{
		Base:         entity.Base{ID: uuid.NewString()},
		ReferrerID:   referrerProfile.UserID,
		ReferredID:   userID,
		Status:       entity.ReferralCompleted,
		PointsEarned: points,
	}

	if err := d.referralRepo.Create(ctx, referral); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create referral: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.accrual.AddXP(ctx, referrerProfile.UserID, points); err != nil {
		return nil, err
	}

	ctx = xcontext.WithCommitDBTransaction(ctx)

	d.refetch.invalidate(ctx, model.ReferralsBucket, referrerProfile.UserID)
	d.refetch.invalidate(ctx, model.ProfilesBucket, userID)

	return &model.ApplyReferralCodeResponse{Success: true}, nil
}

func (d *referralDomain) GetMyReferrals(
	ctx context.Context, req *model.GetMyReferralsRequest,
) (*model.GetMyReferralsResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	referrals, err := d.referralRepo.GetByReferrerID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get referrals: %v", err)
		return nil, errorx.Unknown
	}

	referredIDs := make([]string, 0, len(referrals))
	for _, r := range referrals {
		referredIDs = append(referredIDs, r.ReferredID)
	}

	referredUsers, err := d.userRepo.GetByIDs(ctx, referredIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get referred users: %v", err)
		return nil, errorx.Unknown
	}

	usersByID := map[string]entity.User{}
	for _, u := range referredUsers {
		usersByID[u.ID] = u
	}

	resp := &model.GetMyReferralsResponse{Referrals: []model.Referral{}}
	for _, r := range referrals {
		var referred *entity.User
		if u, ok := usersByID[r.ReferredID]; ok {
			referred = &u
		}

		resp.Referrals = append(resp.Referrals, model.ConvertReferral(&r, referred))
		if r.Status == entity.ReferralCompleted {
			resp.TotalPoints += r.PointsEarned
		}
	}

	return resp, nil
}
