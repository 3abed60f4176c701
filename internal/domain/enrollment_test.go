package domain

import (
	"testing"

	"github.com/studyhive-lab/backend/internal/model"
	"github.com/studyhive-lab/backend/internal/repository"
	"github.com/studyhive-lab/backend/pkg/errorx"
	"github.com/studyhive-lab/backend/pkg/testutil"
	"github.com/studyhive-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newEnrollmentDomainForTest() *enrollmentDomain {
	return NewEnrollmentDomain(
		repository.NewEnrollmentRepository(),
		repository.NewCourseRepository(),
		&testutil.MockPublisher{},
	)
}

func Test_enrollmentDomain_Enroll(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	enrollmentDomain := newEnrollmentDomainForTest()

	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	_, err := enrollmentDomain.Enroll(ctx, &model.EnrollRequest{CourseID: testutil.Course1.ID})
	require.NoError(t, err)

	resp, err := enrollmentDomain.GetMyCourses(ctx, &model.GetMyCoursesRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Enrollments, 1)
	require.Equal(t, testutil.Course1.ID, resp.Enrollments[0].CourseID)
	require.Equal(t, testutil.Course1.Title, resp.Enrollments[0].Course.Title)

	// Enrolling twice in the same course is refused.
	_, err = enrollmentDomain.Enroll(ctx, &model.EnrollRequest{CourseID: testutil.Course1.ID})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.AlreadyExists, errx.Code)
}

func Test_enrollmentDomain_Enroll_inactiveCourse(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	enrollmentDomain := newEnrollmentDomainForTest()

	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	_, err := enrollmentDomain.Enroll(ctx, &model.EnrollRequest{CourseID: testutil.Course2.ID})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unavailable, errx.Code)
}

func Test_enrollmentDomain_Enroll_notFoundCourse(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	enrollmentDomain := newEnrollmentDomainForTest()

	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	_, err := enrollmentDomain.Enroll(ctx, &model.EnrollRequest{CourseID: "invalid-course"})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}

func Test_enrollmentDomain_UpdateProgress(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	enrollmentDomain := newEnrollmentDomainForTest()

	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	_, err := enrollmentDomain.Enroll(ctx, &model.EnrollRequest{CourseID: testutil.Course1.ID})
	require.NoError(t, err)

	_, err = enrollmentDomain.UpdateProgress(ctx, &model.UpdateProgressRequest{
		CourseID: testutil.Course1.ID,
		Progress: 40,
	})
	require.NoError(t, err)

	resp, err := enrollmentDomain.GetMyCourses(ctx, &model.GetMyCoursesRequest{})
	require.NoError(t, err)
	require.Equal(t, 40, resp.Enrollments[0].Progress)
	require.Empty(t, resp.Enrollments[0].CompletedAt)

	// Reaching full progress records the completion time.
	_, err = enrollmentDomain.UpdateProgress(ctx, &model.UpdateProgressRequest{
		CourseID: testutil.Course1.ID,
		Progress: 100,
	})
	require.NoError(t, err)

	resp, err = enrollmentDomain.GetMyCourses(ctx, &model.GetMyCoursesRequest{})
	require.NoError(t, err)
	require.Equal(t, 100, resp.Enrollments[0].Progress)
	require.NotEmpty(t, resp.Enrollments[0].CompletedAt)
}

func Test_enrollmentDomain_UpdateProgress_invalid(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	enrollmentDomain := newEnrollmentDomainForTest()

	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	_, err := enrollmentDomain.UpdateProgress(ctx, &model.UpdateProgressRequest{
		CourseID: testutil.Course1.ID,
		Progress: 120,
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)

	// Updating progress of a course the user never enrolled in.
	_, err = enrollmentDomain.UpdateProgress(ctx, &model.UpdateProgressRequest{
		CourseID: testutil.Course1.ID,
		Progress: 50,
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}
