package badge

import (
	"context"

	"github.com/studyhive-lab/backend/internal/entity"
)

type BadgeScanner interface {
	// Name returns the name of this scanner.
	Name() string

	// Scan returns every badge the user currently qualifies for. Badges the
	// user already holds are filtered out by the manager.
	Scan(ctx context.Context, userID string) ([]entity.Badge, error)
}
