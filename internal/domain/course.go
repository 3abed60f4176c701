package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/internal/model"
	"github.com/studyhive-lab/backend/internal/repository"
	"github.com/studyhive-lab/backend/pkg/errorx"
	"github.com/studyhive-lab/backend/pkg/pubsub"
	"github.com/studyhive-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type CourseDomain interface {
	GetCategories(context.Context, *model.GetCategoriesRequest) (*model.GetCategoriesResponse, error)
	GetList(context.Context, *model.GetCoursesRequest) (*model.GetCoursesResponse, error)
	Get(context.Context, *model.GetCourseRequest) (*model.GetCourseResponse, error)
	Create(context.Context, *model.CreateCourseRequest) (*model.CreateCourseResponse, error)
	Update(context.Context, *model.UpdateCourseRequest) (*model.UpdateCourseResponse, error)
	Delete(context.Context, *model.DeleteCourseRequest) (*model.DeleteCourseResponse, error)
	CreateLesson(context.Context, *model.CreateLessonRequest) (*model.CreateLessonResponse, error)
	UpdateLesson(context.Context, *model.UpdateLessonRequest) (*model.UpdateLessonResponse, error)
	DeleteLesson(context.Context, *model.DeleteLessonRequest) (*model.DeleteLessonResponse, error)
	ReorderLessons(context.Context, *model.ReorderLessonsRequest) (*model.ReorderLessonsResponse, error)
}

type courseDomain struct {
	courseRepo repository.CourseRepository
	lessonRepo repository.LessonRepository
	refetch    *refetcher
}

func NewCourseDomain(
	courseRepo repository.CourseRepository,
	lessonRepo repository.LessonRepository,
	publisher pubsub.Publisher,
) *courseDomain {
	return &courseDomain{
		courseRepo: courseRepo,
		lessonRepo: lessonRepo,
		refetch:    newRefetcher(publisher),
	}
}

func (d *courseDomain) GetCategories(
	ctx context.Context, req *model.GetCategoriesRequest,
) (*model.GetCategoriesResponse, error) {
	counts, err := d.courseRepo.GetCategories(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get categories: %v", err)
		return nil, errorx.Unknown
	}

	categories := []model.Category{}
	for _, c := range counts {
		categories = append(categories, model.Category{
			Name:        c.Category,
			CourseCount: c.Count,
		})
	}

	return &model.GetCategoriesResponse{Categories: categories}, nil
}

func (d *courseDomain) GetList(
	ctx context.Context, req *model.GetCoursesRequest,
) (*model.GetCoursesResponse, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 || req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Invalid limit %d", req.Limit)
	}

	courses, err := d.courseRepo.GetList(ctx, repository.CourseFilter{
		Category:   req.Category,
		ActiveOnly: true,
		Offset:     req.Offset,
		Limit:      req.Limit,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get courses: %v", err)
		return nil, errorx.Unknown
	}

	clientCourses := []model.Course{}
	for _, c := range courses {
		clientCourses = append(clientCourses, model.ConvertCourse(&c))
	}

	return &model.GetCoursesResponse{Courses: clientCourses}, nil
}

func (d *courseDomain) Get(
	ctx context.Context, req *model.GetCourseRequest,
) (*model.GetCourseResponse, error) {
	course, err := d.courseRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found course")
		}

		xcontext.Logger(ctx).Errorf("Cannot get course: %v", err)
		return nil, errorx.Unknown
	}

	lessons, err := d.lessonRepo.GetByCourseID(ctx, req.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get lessons: %v", err)
		return nil, errorx.Unknown
	}

	clientLessons := []model.Lesson{}
	for _, l := range lessons {
		clientLessons = append(clientLessons, model.ConvertLesson(&l))
	}

	return &model.GetCourseResponse{
		Course:  model.ConvertCourse(course),
		Lessons: clientLessons,
	}, nil
}

func (d *courseDomain) Create(
	ctx context.Context, req *model.CreateCourseRequest,
) (*model.CreateCourseResponse, error) {
	if req.Title == "" || req.Category == "" {
		return nil, errorx.New(errorx.BadRequest, "Require a title and category")
	}

	course := &entity.Course{
		Base:          entity.Base{ID: uuid.NewString()},
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		IsActive:      true,
		CreatedBy:     xcontext.RequestUserID(ctx),
	}

	if err := d.courseRepo.Create(ctx, course); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create course: %v", err)
		return nil, errorx.Unknown
	}

	d.refetch.invalidate(ctx, model.CoursesBucket, course.ID)

	return &model.CreateCourseResponse{ID: course.ID}, nil
}

func (d *courseDomain) Update(
	ctx context.Context, req *model.UpdateCourseRequest,
) (*model.UpdateCourseResponse, error) {
	if _, err := d.courseRepo.GetByID(ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found course")
		}

		xcontext.Logger(ctx).Errorf("Cannot get course: %v", err)
		return nil, errorx.Unknown
	}

	updateMap := map[string]any{}
	if req.Title != "" {
		updateMap["title"] = req.Title
	}

	if req.Description != "" {
		updateMap["description"] = req.Description
	}

	if req.Category != "" {
		updateMap["category"] = req.Category
	}

	if req.Price != nil {
		updateMap["price"] = *req.Price
	}

	if req.OriginalPrice != nil {
		updateMap["original_price"] = *req.OriginalPrice
	}

	if req.IsActive != nil {
		updateMap["is_active"] = *req.IsActive
	}

	if len(updateMap) == 0 {
		return nil, errorx.New(errorx.BadRequest, "Nothing to update")
	}

	if err := d.courseRepo.UpdateByID(ctx, req.ID, updateMap); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update course: %v", err)
		return nil, errorx.Unknown
	}

	d.refetch.invalidate(ctx, model.CoursesBucket, req.ID)

	return &model.UpdateCourseResponse{}, nil
}

func (d *courseDomain) Delete(
	ctx context.Context, req *model.DeleteCourseRequest,
) (*model.DeleteCourseResponse, error) {
	if _, err := d.courseRepo.GetByID(ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found course")
		}

		xcontext.Logger(ctx).Errorf("Cannot get course: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.courseRepo.DeleteByID(ctx, req.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete course: %v", err)
		return nil, errorx.Unknown
	}

	d.refetch.invalidate(ctx, model.CoursesBucket, req.ID)

	return &model.DeleteCourseResponse{}, nil
}

func (d *courseDomain) CreateLesson(
	ctx context.Context, req *model.CreateLessonRequest,
) (*model.CreateLessonResponse, error) {
	if req.Title == "" {
		return nil, errorx.New(errorx.BadRequest, "Require a title")
	}

	if _, err := d.courseRepo.GetByID(ctx, req.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found course")
		}

		xcontext.Logger(ctx).Errorf("Cannot get course: %v", err)
		return nil, errorx.Unknown
	}

	lesson := &entity.Lesson{
		Base:       entity.Base{ID: uuid.NewString()},
		CourseID:   req.CourseID,
		Title:      req.Title,
		Content:    req.Content,
		VideoURL:   req.VideoURL,
		OrderIndex: req.OrderIndex,
	}

	if err := d.lessonRepo.Create(ctx, lesson); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create lesson: %v", err)
		return nil, errorx.Unknown
	}

	d.refetch.invalidate(ctx, model.CoursesBucket, req.CourseID)

	return &model.CreateLessonResponse{ID: lesson.ID}, nil
}

func (d *courseDomain) UpdateLesson(
	ctx context.Context, req *model.UpdateLessonRequest,
) (*model.UpdateLessonResponse, error) {
	lesson, err := d.lessonRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found lesson")
		}

		xcontext.Logger(ctx).Errorf("Cannot get lesson: %v", err)
		return nil, errorx.Unknown
	}

	updateMap := map[string]any{}
	if req.Title != "" {
		updateMap["title"] = req.Title
	}

	if req.Content != "" {
		updateMap["content"] = req.Content
	}

	if req.VideoURL != "" {
		updateMap["video_url"] = req.VideoURL
	}

	if len(updateMap) == 0 {
		return nil, errorx.New(errorx.BadRequest, "Nothing to update")
	}

	if err := d.lessonRepo.UpdateByID(ctx, req.ID, updateMap); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update lesson: %v", err)
		return nil, errorx.Unknown
	}

	d.refetch.invalidate(ctx, model.CoursesBucket, lesson.CourseID)

	return &model.UpdateLessonResponse{}, nil
}

func (d *courseDomain) DeleteLesson(
	ctx context.Context, req *model.DeleteLessonRequest,
) (*model.DeleteLessonResponse, error) {
	lesson, err := d.lessonRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found lesson")
		}

		xcontext.Logger(ctx).Errorf("Cannot get lesson: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.lessonRepo.DeleteByID(ctx, req.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete lesson: %v", err)
		return nil, errorx.Unknown
	}

	d.refetch.invalidate(ctx, model.CoursesBucket, lesson.CourseID)

	return &model.DeleteLessonResponse{}, nil
}

func (d *courseDomain) ReorderLessons(
	ctx context.Context, req *model.ReorderLessonsRequest,
) (*model.ReorderLessonsResponse, error) {
	lessons, err := d.lessonRepo.GetByCourseID(ctx, req.CourseID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get lessons: %v", err)
		return nil, errorx.Unknown
	}

	known := map[string]bool{}
	for _, l := range lessons {
		known[l.ID] = true
	}

	for _, id := range req.LessonIDs {
		if !known[id] {
			return nil, errorx.New(errorx.BadRequest, "Lesson %s does not belong to this course", id)
		}
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	for i, id := range req.LessonIDs {
		if err := d.lessonRepo.UpdateOrderIndex(ctx, id, i); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot reorder lesson: %v", err)
			return nil, errorx.Unknown
		}
	}

	ctx = xcontext.WithCommitDBTransaction(ctx)
	d.refetch.invalidate(ctx, model.CoursesBucket, req.CourseID)

	return &model.ReorderLessonsResponse{}, nil
}
