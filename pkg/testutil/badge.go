package testutil

import (
	"context"

	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/pkg/errorx"
)

type MockBadgeScanner struct {
	NameValue string
	ScanFunc  func(ctx context.Context, userID string) ([]entity.Badge, error)
}

func (b *MockBadgeScanner) Name() string {
	return b.NameValue
}

func (b *MockBadgeScanner) Scan(ctx context.Context, userID string) ([]entity.Badge, error) {
	if b.ScanFunc != nil {
		return b.ScanFunc(ctx, userID)
	}

	return nil, errorx.New(errorx.NotImplemented, "Not implemented")
}
