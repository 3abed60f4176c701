package badge

import (
	"context"
	"errors"

	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/internal/repository"
	"github.com/studyhive-lab/backend/pkg/errorx"
	"github.com/studyhive-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

const XPMilestoneScannerName = "xp milestone"

// xpMilestoneScanner awards every badge whose xp requirement the user's
// lifetime xp has reached.
type xpMilestoneScanner struct {
	badgeRepo   repository.BadgeRepository
	profileRepo repository.ProfileRepository
}

func NewXPMilestoneScanner(
	badgeRepo repository.BadgeRepository,
	profileRepo repository.ProfileRepository,
) *xpMilestoneScanner {
	return &xpMilestoneScanner{badgeRepo: badgeRepo, profileRepo: profileRepo}
}

func (xpMilestoneScanner) Name() string {
	return XPMilestoneScannerName
}

func (s *xpMilestoneScanner) Scan(ctx context.Context, userID string) ([]entity.Badge, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.Unavailable, "User has no profile yet")
		}

		xcontext.Logger(ctx).Errorf("Cannot get profile: %v", err)
		return nil, errorx.Unknown
	}

	badges, err := s.badgeRepo.GetLessThanRequirement(ctx, profile.XP)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get suitable badges: %v", err)
		return nil, errorx.Unknown
	}

	return badges, nil
}
