package badge

import (
	"context"
	"testing"
	"time"

	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/internal/repository"
	"github.com/studyhive-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_Manager_ScanAndGive(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	userBadgeRepo := repository.NewUserBadgeRepository()
	notificationRepo := repository.NewNotificationRepository()

	scanner := &testutil.MockBadgeScanner{
		NameValue: "mock",
		ScanFunc: func(ctx context.Context, userID string) ([]entity.Badge, error) {
			return []entity.Badge{testutil.BadgeRisingStar}, nil
		},
	}

	manager := NewManager(userBadgeRepo, notificationRepo, scanner)
	require.NoError(t, manager.WithBadges("mock").ScanAndGive(ctx, testutil.User1.ID))

	// The unlock is marked notified once the notification row is written.
	unlock, err := userBadgeRepo.Get(ctx, testutil.User1.ID, testutil.BadgeRisingStar.ID)
	require.NoError(t, err)
	require.True(t, unlock.WasNotified)

	notifications, err := notificationRepo.GetByUserID(ctx, testutil.User1.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	require.Equal(t, entity.BadgeNotification, notifications[0].Type)

	// Scanning again never gives the badge or its notification twice.
	require.NoError(t, manager.WithBadges("mock").ScanAndGive(ctx, testutil.User1.ID))

	notifications, err = notificationRepo.GetByUserID(ctx, testutil.User1.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
}

func Test_Manager_ScanAndGive_unknownScanner(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	manager := NewManager(
		repository.NewUserBadgeRepository(),
		repository.NewNotificationRepository(),
	)

	err := manager.WithBadges("unknown").ScanAndGive(ctx, testutil.User1.ID)
	require.Error(t, err)
}

func Test_streakScanner_Scan(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	profileRepo := repository.NewProfileRepository()

	scanner := NewStreakScanner(
		repository.NewBadgeRepository(), profileRepo, DefaultStreakMilestones)

	badges, err := scanner.Scan(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Empty(t, badges)

	require.NoError(t, profileRepo.UpdateStreak(ctx, testutil.User1.ID, 7, time.Now()))

	badges, err = scanner.Scan(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Len(t, badges, 1)
	require.Equal(t, "Week Warrior", badges[0].Name)
}

func Test_xpMilestoneScanner_Scan(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	profileRepo := repository.NewProfileRepository()

	scanner := NewXPMilestoneScanner(repository.NewBadgeRepository(), profileRepo)

	require.NoError(t, profileRepo.AddXP(ctx, testutil.User1.ID, 150, 150, 1))

	badges, err := scanner.Scan(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Len(t, badges, 1)
	require.Equal(t, testutil.BadgeRisingStar.Name, badges[0].Name)
}
