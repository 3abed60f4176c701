package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/studyhive-lab/backend/internal/domain/badge"
	"github.com/studyhive-lab/backend/internal/domain/statistic"
	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/internal/model"
	"github.com/studyhive-lab/backend/internal/repository"
	"github.com/studyhive-lab/backend/pkg/crypto"
	"github.com/studyhive-lab/backend/pkg/dateutil"
	"github.com/studyhive-lab/backend/pkg/errorx"
	"github.com/studyhive-lab/backend/pkg/pubsub"
	"github.com/studyhive-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ProfileDomain interface {
	GetMe(context.Context, *model.GetMeRequest) (*model.GetMeResponse, error)
	Update(context.Context, *model.UpdateProfileRequest) (*model.UpdateProfileResponse, error)
	GetLeaderboard(context.Context, *model.GetLeaderboardRequest) (*model.GetLeaderboardResponse, error)
	GetBadges(context.Context, *model.GetBadgesRequest) (*model.GetBadgesResponse, error)
}

type profileDomain struct {
	userRepo         repository.UserRepository
	profileRepo      repository.ProfileRepository
	badgeRepo        repository.BadgeRepository
	userBadgeRepo    repository.UserBadgeRepository
	notificationRepo repository.NotificationRepository
	leaderboard      statistic.Leaderboard
	badgeManager     *badge.Manager
	accrual          *xpAccrual
	refetch          *refetcher
}

func NewProfileDomain(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	badgeRepo repository.BadgeRepository,
	userBadgeRepo repository.UserBadgeRepository,
	notificationRepo repository.NotificationRepository,
	leaderboard statistic.Leaderboard,
	badgeManager *badge.Manager,
	publisher pubsub.Publisher,
) *profileDomain {
	return &profileDomain{
		userRepo:         userRepo,
		profileRepo:      profileRepo,
		badgeRepo:        badgeRepo,
		userBadgeRepo:    userBadgeRepo,
		notificationRepo: notificationRepo,
		leaderboard:      leaderboard,
		badgeManager:     badgeManager,
		accrual:          newXPAccrual(profileRepo, leaderboard, badgeManager),
		refetch:          newRefetcher(publisher),
	}
}

func (d *profileDomain) GetMe(
	ctx context.Context, req *model.GetMeRequest,
) (*model.GetMeResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	profile, err := d.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot get profile: %v", err)
			return nil, errorx.Unknown
		}

		profile = &entity.Profile{
			Base:         entity.Base{ID: uuid.NewString()},
			UserID:       userID,
			Username:     user.Name,
			Level:        1,
			ReferralCode: crypto.GenerateRandomAlphabet(8),
		}

		if err := d.profileRepo.Create(ctx, profile); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create profile: %v", err)
			return nil, errorx.Unknown
		}
	}

	profile, err = d.checkDailyStreak(ctx, profile)
	if err != nil {
		return nil, err
	}

	return &model.GetMeResponse{
		User:    model.ConvertUser(user),
		Profile: model.ConvertProfile(profile),
	}, nil
}

// checkDailyStreak runs the once-per-day login accrual. The streak stamp,
// the login reward, and the notification commit together, a failed write
// keeps yesterday's state so the next call accrues again.
func (d *profileDomain) checkDailyStreak(
	ctx context.Context, profile *entity.Profile,
) (*entity.Profile, error) {
	now := time.Now()
	if dateutil.IsSameDay(profile.LastActivityDate, now) {
		return profile, nil
	}

	streak := 1
	if dateutil.IsYesterday(profile.LastActivityDate, now) {
		streak = profile.Streak + 1
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.profileRepo.UpdateStreak(ctx, profile.UserID, streak, now); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update streak: %v", err)
		return nil, errorx.Unknown
	}

	loginReward := uint64(xcontext.Configs(ctx).Game.LoginReward)
	if err := d.accrual.AddXP(ctx, profile.UserID, loginReward); err != nil {
		return nil, err
	}

	err := d.notificationRepo.Create(ctx, &entity.Notification{
		Base:        entity.Base{ID: uuid.NewString()},
		UserID:      profile.UserID,
		Title:       "Daily Streak Updated!",
		Description: fmt.Sprintf("You are on a %d day streak. Keep it up!", streak),
		Type:        entity.SystemNotification,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create streak notification: %v", err)
		return nil, errorx.Unknown
	}

	ctx = xcontext.WithCommitDBTransaction(ctx)

	d.refetch.invalidate(ctx, model.ProfilesBucket, profile.UserID)

	updated, err := d.profileRepo.GetByUserID(ctx, profile.UserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot reload profile: %v", err)
		return nil, errorx.Unknown
	}

	return updated, nil
}

func (d *profileDomain) Update(
	ctx context.Context, req *model.UpdateProfileRequest,
) (*model.UpdateProfileResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if _, err := d.profileRepo.GetByUserID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found profile")
		}

		xcontext.Logger(ctx).Errorf("Cannot get profile: %v", err)
		return nil, errorx.Unknown
	}

	updateMap := map[string]any{}
	if req.Username != "" {
		updateMap["username"] = req.Username
	}

	if len(updateMap) > 0 {
		if err := d.profileRepo.UpdateByUserID(ctx, userID, updateMap); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update profile: %v", err)
			return nil, errorx.Unknown
		}
	}

	if req.AvatarURL != "" {
		err := d.userRepo.UpdateByID(ctx, userID, &entity.User{AvatarURL: req.AvatarURL})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update user avatar: %v", err)
			return nil, errorx.Unknown
		}
	}

	d.refetch.invalidate(ctx, model.ProfilesBucket, userID)

	return &model.UpdateProfileResponse{}, nil
}

func (d *profileDomain) GetLeaderboard(
	ctx context.Context, req *model.GetLeaderboardRequest,
) (*model.GetLeaderboardResponse, error) {
	period, err := statistic.ToPeriod(req.Period)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid period: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid period")
	}

	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 || req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Invalid limit %d", req.Limit)
	}

	board, err := d.leaderboard.GetLeaderboard(ctx, period, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	// Decorate entries with usernames from the profile store.
	userIDs := make([]string, 0, len(board))
	for _, entry := range board {
		userIDs = append(userIDs, entry.UserID)
	}

	users, err := d.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get leaderboard users: %v", err)
		return nil, errorx.Unknown
	}

	names := map[string]string{}
	for _, u := range users {
		names[u.ID] = u.Name
	}

	for i := range board {
		board[i].Username = names[board[i].UserID]
	}

	resp := &model.GetLeaderboardResponse{Leaderboard: board}
	if userID := xcontext.RequestUserID(ctx); userID != "" {
		rank, err := d.leaderboard.GetRank(ctx, userID, period)
		if err == nil {
			resp.MyRank = rank
		}
	}

	return resp, nil
}

func (d *profileDomain) GetBadges(
	ctx context.Context, req *model.GetBadgesRequest,
) (*model.GetBadgesResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	badges, err := d.badgeRepo.GetAll(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get badges: %v", err)
		return nil, errorx.Unknown
	}

	unlocks, err := d.userBadgeRepo.GetByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user badges: %v", err)
		return nil, errorx.Unknown
	}

	unlockByBadge := map[string]entity.UserBadge{}
	for _, unlock := range unlocks {
		unlockByBadge[unlock.BadgeID] = unlock
	}

	clientBadges := []model.Badge{}
	for _, b := range badges {
		var unlockPtr *entity.UserBadge
		if unlock, ok := unlockByBadge[b.ID]; ok {
			unlockPtr = &unlock
		}

		clientBadges = append(clientBadges, model.ConvertBadge(&b, unlockPtr))
	}

	return &model.GetBadgesResponse{Badges: clientBadges}, nil
}
