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

const ReferralScannerName = "referral"

// DefaultReferralMilestones maps a number of completed referrals to the badge
// unlocked when the user reaches it.
var DefaultReferralMilestones = map[int64]string{
	1: "Friendly Face",
	5: "Campus Ambassador",
}

// referralScanner awards named badges based on the number of completed
// referrals of a user.
type referralScanner struct {
	milestones   map[int64]string
	badgeRepo    repository.BadgeRepository
	referralRepo repository.ReferralRepository
}

func NewReferralScanner(
	badgeRepo repository.BadgeRepository,
	referralRepo repository.ReferralRepository,
	milestones map[int64]string,
) *referralScanner {
	return &referralScanner{
		milestones:   milestones,
		badgeRepo:    badgeRepo,
		referralRepo: referralRepo,
	}
}

func (referralScanner) Name() string {
	return ReferralScannerName
}

func (s *referralScanner) Scan(ctx context.Context, userID string) ([]entity.Badge, error) {
	count, err := s.referralRepo.CountCompletedByReferrerID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count completed referrals: %v", err)
		return nil, errorx.Unknown
	}

	var suitableBadges []entity.Badge
	for milestone, badgeName := range s.milestones {
		if count < milestone {
			continue
		}

		badge, err := s.badgeRepo.GetByName(ctx, badgeName)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}

			xcontext.Logger(ctx).Errorf("Cannot get badge %s: %v", badgeName, err)
			return nil, errorx.Unknown
		}

		suitableBadges = append(suitableBadges, *badge)
	}

	return suitableBadges, nil
}
