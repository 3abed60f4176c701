package domain

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/internal/model"
	"github.com/studyhive-lab/backend/internal/repository"
	"github.com/studyhive-lab/backend/pkg/errorx"
	"github.com/studyhive-lab/backend/pkg/pubsub"
	"github.com/studyhive-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type EnrollmentDomain interface {
	Enroll(context.Context, *model.EnrollRequest) (*model.EnrollResponse, error)
	UpdateProgress(context.Context, *model.UpdateProgressRequest) (*model.UpdateProgressResponse, error)
	GetMyCourses(context.Context, *model.GetMyCoursesRequest) (*model.GetMyCoursesResponse, error)
}

type enrollmentDomain struct {
	enrollmentRepo repository.EnrollmentRepository
	courseRepo     repository.CourseRepository
	refetch        *refetcher
}

func NewEnrollmentDomain(
	enrollmentRepo repository.EnrollmentRepository,
	courseRepo repository.CourseRepository,
	publisher pubsub.Publisher,
) *enrollmentDomain {
	return &enrollmentDomain{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		refetch:        newRefetcher(publisher),
	}
}

func (d *enrollmentDomain) Enroll(
	ctx context.Context, req *model.EnrollRequest,
) (*model.EnrollResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	course, err := d.courseRepo.GetByID(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found course")
		}

		xcontext.Logger(ctx).Errorf("Cannot get course: %v", err)
		return nil, errorx.Unknown
	}

	if !course.IsActive {
		return nil, errorx.New(errorx.Unavailable, "This course is not available")
	}

	_, err = d.enrollmentRepo.Get(ctx, userID, req.CourseID)
	if err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "You have enrolled in this course before")
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get enrollment: %v", err)
		return nil, errorx.Unknown
	}

	enrollment := &entity.Enrollment{
		UserID:   userID,
		CourseID: req.CourseID,
	}

	if err := d.enrollmentRepo.Create(ctx, enrollment); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create enrollment: %v", err)
		return nil, errorx.Unknown
	}

	d.refetch.invalidate(ctx, model.EnrollmentsBucket, userID)

	return &model.EnrollResponse{}, nil
}

func (d *enrollmentDomain) UpdateProgress(
	ctx context.Context, req *model.UpdateProgressRequest,
) (*model.UpdateProgressResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	if req.Progress < 0 || req.Progress > 100 {
		return nil, errorx.New(errorx.BadRequest, "Progress must be between 0 and 100")
	}

	enrollment, err := d.enrollmentRepo.Get(ctx, userID, req.CourseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "You have not enrolled in this course")
		}

		xcontext.Logger(ctx).Errorf("Cannot get enrollment: %v", err)
		return nil, errorx.Unknown
	}

	updateMap := map[string]any{"progress": req.Progress}
	if req.Progress == 100 && !enrollment.CompletedAt.Valid {
		updateMap["completed_at"] = sql.NullTime{Valid: true, Time: time.Now()}
	}

	if err := d.enrollmentRepo.UpdateProgress(ctx, userID, req.CourseID, updateMap); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update progress: %v", err)
		return nil, errorx.Unknown
	}

	d.refetch.invalidate(ctx, model.EnrollmentsBucket, userID)

	return &model.UpdateProgressResponse{}, nil
}

func (d *enrollmentDomain) GetMyCourses(
	ctx context.Context, req *model.GetMyCoursesRequest,
) (*model.GetMyCoursesResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	enrollments, err := d.enrollmentRepo.GetByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get enrollments: %v", err)
		return nil, errorx.Unknown
	}

	clientEnrollments := []model.Enrollment{}
	for _, e := range enrollments {
		course, err := d.courseRepo.GetByID(ctx, e.CourseID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}

			xcontext.Logger(ctx).Errorf("Cannot get course of enrollment: %v", err)
			return nil, errorx.Unknown
		}

		clientEnrollments = append(clientEnrollments, model.ConvertEnrollment(&e, course))
	}

	return &model.GetMyCoursesResponse{Enrollments: clientEnrollments}, nil
}
