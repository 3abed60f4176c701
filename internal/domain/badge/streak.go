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

const StreakScannerName = "streak"

// DefaultStreakMilestones maps a streak length to the badge unlocked when the
// user reaches it.
var DefaultStreakMilestones = map[int]string{
	3:  "Consistent Learner",
	7:  "Week Warrior",
	30: "Habit Master",
}

// streakScanner awards named badges when the user's daily streak reaches a
// configured milestone.
type streakScanner struct {
	milestones  map[int]string
	badgeRepo   repository.BadgeRepository
	profileRepo repository.ProfileRepository
}

func NewStreakScanner(
	badgeRepo repository.BadgeRepository,
	profileRepo repository.ProfileRepository,
	milestones map[int]string,
) *streakScanner {
	return &streakScanner{
		milestones:  milestones,
		badgeRepo:   badgeRepo,
		profileRepo: profileRepo,
	}
}

func (streakScanner) Name() string {
	return StreakScannerName
}

func (s *streakScanner) Scan(ctx context.Context, userID string) ([]entity.Badge, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.Unavailable, "User has no profile yet")
		}

		xcontext.Logger(ctx).Errorf("Cannot get profile: %v", err)
		return nil, errorx.Unknown
	}

	var suitableBadges []entity.Badge
	for milestone, badgeName := range s.milestones {
		if profile.Streak < milestone {
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
