package migration

import (
	"context"

	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/pkg/xcontext"
)

// When this migrator is called, no need to call other migrators.
func AutoMigrate(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&entity.User{},
		&entity.Profile{},
		&entity.Course{},
		&entity.Lesson{},
		&entity.Note{},
		&entity.Test{},
		&entity.Purchase{},
		&entity.CategoryPurchase{},
		&entity.Enrollment{},
		&entity.TestResult{},
		&entity.Badge{},
		&entity.UserBadge{},
		&entity.Referral{},
		&entity.Notification{},
	)
}
