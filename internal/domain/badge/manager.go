package badge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/internal/repository"
	"github.com/studyhive-lab/backend/pkg/errorx"
	"github.com/studyhive-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type Manager struct {
	// This field is only written at initialization. After that, it is readonly.
	// So no need to use sync map here.
	badgeScanners map[string]BadgeScanner

	userBadgeRepo    repository.UserBadgeRepository
	notificationRepo repository.NotificationRepository
}

func NewManager(
	userBadgeRepo repository.UserBadgeRepository,
	notificationRepo repository.NotificationRepository,
	badgeScanners ...BadgeScanner,
) *Manager {
	manager := &Manager{
		userBadgeRepo:    userBadgeRepo,
		notificationRepo: notificationRepo,
		badgeScanners:    make(map[string]BadgeScanner),
	}

	for _, b := range badgeScanners {
		manager.badgeScanners[b.Name()] = b
	}

	return manager
}

func (m *Manager) GetAllScannerNames() []string {
	names := make([]string, 0, len(m.badgeScanners))
	for name := range m.badgeScanners {
		names = append(names, name)
	}

	return names
}

func (m *Manager) WithBadges(scannerNames ...string) *contextManager {
	return &contextManager{
		manager:      m,
		scannerNames: scannerNames,
	}
}

type contextManager struct {
	manager      *Manager
	scannerNames []string
}

func (c *contextManager) ScanAndGive(ctx context.Context, userID string) error {
	for _, scannerName := range c.scannerNames {
		badgeScanner, ok := c.manager.badgeScanners[scannerName]
		if !ok {
			xcontext.Logger(ctx).Errorf("Not found badge scanner %s", scannerName)
			return errorx.Unknown
		}

		suitableBadges, err := badgeScanner.Scan(ctx, userID)
		if err != nil {
			return err
		}

		for _, badge := range suitableBadges {
			_, err := c.manager.userBadgeRepo.Get(ctx, userID, badge.ID)
			if err == nil {
				// Already unlocked, badges are never given twice.
				continue
			}

			if !errors.Is(err, gorm.ErrRecordNotFound) {
				xcontext.Logger(ctx).Errorf("Cannot get user badge: %v", err)
				return errorx.Unknown
			}

			unlock := &entity.UserBadge{
				CreatedAt: time.Now(),
				UserID:    userID,
				BadgeID:   badge.ID,
			}

			if err := c.manager.userBadgeRepo.Upsert(ctx, unlock); err != nil {
				xcontext.Logger(ctx).Errorf("Cannot give badge to user: %v", err)
				return errorx.Unknown
			}

			notification := &entity.Notification{
				Base:        entity.Base{ID: uuid.NewString()},
				UserID:      userID,
				Title:       "Badge unlocked",
				Description: fmt.Sprintf("You have unlocked the %s badge", badge.Name),
				Type:        entity.BadgeNotification,
			}

			if err := c.manager.notificationRepo.Create(ctx, notification); err != nil {
				xcontext.Logger(ctx).Errorf("Cannot create badge notification: %v", err)
				return errorx.Unknown
			}

			if err := c.manager.userBadgeRepo.MarkNotified(ctx, userID, badge.ID); err != nil {
				xcontext.Logger(ctx).Errorf("Cannot mark badge as notified: %v", err)
				return errorx.Unknown
			}
		}
	}

	return nil
}
