package entitlement

import (
	"context"
	"errors"

	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/internal/repository"
	"github.com/studyhive-lab/backend/pkg/errorx"
	"github.com/studyhive-lab/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type Loader struct {
	userRepo             repository.UserRepository
	purchaseRepo         repository.PurchaseRepository
	categoryPurchaseRepo repository.CategoryPurchaseRepository
	enrollmentRepo       repository.EnrollmentRepository
	courseRepo           repository.CourseRepository
}

func NewLoader(
	userRepo repository.UserRepository,
	purchaseRepo repository.PurchaseRepository,
	categoryPurchaseRepo repository.CategoryPurchaseRepository,
	enrollmentRepo repository.EnrollmentRepository,
	courseRepo repository.CourseRepository,
) *Loader {
	return &Loader{
		userRepo:             userRepo,
		purchaseRepo:         purchaseRepo,
		categoryPurchaseRepo: categoryPurchaseRepo,
		enrollmentRepo:       enrollmentRepo,
		courseRepo:           courseRepo,
	}
}

// Load assembles the access snapshot of a user. An empty userID yields the
// anonymous snapshot, which never has access to paid material.
func (l *Loader) Load(ctx context.Context, userID string) (Snapshot, error) {
	if userID == "" {
		return Snapshot{}, nil
	}

	user, err := l.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Snapshot{}, nil
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return Snapshot{}, errorx.Unknown
	}

	snapshot := Snapshot{
		UserID:  userID,
		IsAdmin: slices.Contains(entity.GlobalAdminRoles, user.Role),
	}

	if snapshot.IsAdmin {
		return snapshot, nil
	}

	snapshot.Purchases, err = l.purchaseRepo.GetCompletedByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get purchases: %v", err)
		return Snapshot{}, errorx.Unknown
	}

	snapshot.CategoryPurchases, err = l.categoryPurchaseRepo.GetCompletedByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get category purchases: %v", err)
		return Snapshot{}, errorx.Unknown
	}

	snapshot.Enrollments, err = l.enrollmentRepo.GetByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get enrollments: %v", err)
		return Snapshot{}, errorx.Unknown
	}

	snapshot.Courses, err = l.courseRepo.GetAll(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get courses: %v", err)
		return Snapshot{}, errorx.Unknown
	}

	return snapshot, nil
}

// NoteItem converts a note row into an access question.
func NoteItem(note *entity.Note) Item {
	return Item{
		ID:       note.ID,
		Category: note.Category,
		Price:    note.Price,
		Type:     entity.NotesContent,
	}
}

// TestItem converts a test row into an access question.
func TestItem(test *entity.Test) Item {
	return Item{
		ID:       test.ID,
		Category: test.Category,
		Price:    test.Price,
		Type:     entity.TestsContent,
	}
}
