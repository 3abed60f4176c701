package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/internal/model"
	"github.com/studyhive-lab/backend/internal/repository"
	"github.com/studyhive-lab/backend/pkg/errorx"
	"github.com/studyhive-lab/backend/pkg/testutil"
	"github.com/studyhive-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_notificationDomain_GetMine(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	notificationRepo := repository.NewNotificationRepository()
	notificationDomain := NewNotificationDomain(notificationRepo)

	for _, title := range []string{"Badge unlocked", "Referral reward"} {
		err := notificationRepo.Create(ctx, &entity.Notification{
			Base:   entity.Base{ID: uuid.NewString()},
			UserID: testutil.User1.ID,
			Title:  title,
			Type:   entity.SystemNotification,
		})
		require.NoError(t, err)
	}

	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	resp, err := notificationDomain.GetMine(ctx, &model.GetNotificationsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Notifications, 2)
	require.Equal(t, int64(2), resp.UnreadCount)

	// Other users see none of them.
	otherCtx := xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	resp, err = notificationDomain.GetMine(otherCtx, &model.GetNotificationsRequest{})
	require.NoError(t, err)
	require.Empty(t, resp.Notifications)

	_, err = notificationDomain.GetMine(ctx, &model.GetNotificationsRequest{Limit: 1000})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_notificationDomain_MarkRead(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	notificationRepo := repository.NewNotificationRepository()
	notificationDomain := NewNotificationDomain(notificationRepo)

	first := &entity.Notification{
		Base:   entity.Base{ID: uuid.NewString()},
		UserID: testutil.User1.ID,
		Title:  "Badge unlocked",
		Type:   entity.BadgeNotification,
	}
	second := &entity.Notification{
		Base:   entity.Base{ID: uuid.NewString()},
		UserID: testutil.User1.ID,
		Title:  "Referral reward",
		Type:   entity.ReferralNotification,
	}
	require.NoError(t, notificationRepo.Create(ctx, first))
	require.NoError(t, notificationRepo.Create(ctx, second))

	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	_, err := notificationDomain.MarkRead(ctx, &model.MarkNotificationReadRequest{ID: first.ID})
	require.NoError(t, err)

	resp, err := notificationDomain.GetMine(ctx, &model.GetNotificationsRequest{})
	require.NoError(t, err)
	require.Equal(t, int64(1), resp.UnreadCount)

	// Another user cannot mark someone else's notification read.
	otherCtx := xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	_, err = notificationDomain.MarkRead(otherCtx, &model.MarkNotificationReadRequest{ID: second.ID})
	require.NoError(t, err)

	resp, err = notificationDomain.GetMine(ctx, &model.GetNotificationsRequest{})
	require.NoError(t, err)
	require.Equal(t, int64(1), resp.UnreadCount)

	_, err = notificationDomain.MarkAllRead(ctx, &model.MarkAllNotificationsReadRequest{})
	require.NoError(t, err)

	resp, err = notificationDomain.GetMine(ctx, &model.GetNotificationsRequest{})
	require.NoError(t, err)
	require.Equal(t, int64(0), resp.UnreadCount)
}
