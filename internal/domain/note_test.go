package domain

import (
	"testing"

	"github.com/studyhive-lab/backend/internal/domain/entitlement"
	"github.com/studyhive-lab/backend/internal/model"
	"github.com/studyhive-lab/backend/internal/repository"
	"github.com/studyhive-lab/backend/pkg/errorx"
	"github.com/studyhive-lab/backend/pkg/testutil"
	"github.com/studyhive-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newNoteDomainForTest() *noteDomain {
	loader := entitlement.NewLoader(
		repository.NewUserRepository(),
		repository.NewPurchaseRepository(),
		repository.NewCategoryPurchaseRepository(),
		repository.NewEnrollmentRepository(),
		repository.NewCourseRepository(),
	)

	return NewNoteDomain(repository.NewNoteRepository(), loader, &testutil.MockPublisher{})
}

func Test_noteDomain_Get(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	noteDomain := newNoteDomainForTest()

	// Anonymous callers only see the preview of a paid note.
	resp, err := noteDomain.Get(ctx, &model.GetNoteRequest{ID: testutil.Note1.ID})
	require.NoError(t, err)
	require.False(t, resp.Note.HasAccess)
	require.Empty(t, resp.Note.Content)
	require.Empty(t, resp.Note.FileURL)

	// Free notes are fully visible to everyone.
	resp, err = noteDomain.Get(ctx, &model.GetNoteRequest{ID: testutil.FreeNote.ID})
	require.NoError(t, err)
	require.True(t, resp.Note.HasAccess)
	require.Equal(t, testutil.FreeNote.Content, resp.Note.Content)

	// Admins see everything.
	adminCtx := xcontext.WithRequestUserID(ctx, testutil.Admin.ID)
	resp, err = noteDomain.Get(adminCtx, &model.GetNoteRequest{ID: testutil.Note1.ID})
	require.NoError(t, err)
	require.True(t, resp.Note.HasAccess)
	require.Equal(t, testutil.Note1.Content, resp.Note.Content)
}

func Test_noteDomain_GetList(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	noteDomain := newNoteDomainForTest()

	resp, err := noteDomain.GetList(ctx, &model.GetNotesRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Notes, 2)

	resp, err = noteDomain.GetList(ctx, &model.GetNotesRequest{Category: testutil.Note1.Category})
	require.NoError(t, err)
	require.Len(t, resp.Notes, 1)
	require.Equal(t, testutil.Note1.ID, resp.Notes[0].ID)

	_, err = noteDomain.GetList(ctx, &model.GetNotesRequest{Limit: 1000})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_noteDomain_Create(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	noteDomain := newNoteDomainForTest()

	ctx = xcontext.WithRequestUserID(ctx, testutil.Admin.ID)
	resp, err := noteDomain.Create(ctx, &model.CreateNoteRequest{
		Title:    "Organic chemistry summary",
		Content:  "Alkanes, alkenes and alkynes",
		Category: "chemistry",
		Price:    15,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)

	got, err := noteDomain.Get(ctx, &model.GetNoteRequest{ID: resp.ID})
	require.NoError(t, err)
	require.Equal(t, "Organic chemistry summary", got.Note.Title)
	require.True(t, got.Note.IsActive)

	_, err = noteDomain.Create(ctx, &model.CreateNoteRequest{Content: "missing title"})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_noteDomain_UpdateAndDelete(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	noteDomain := newNoteDomainForTest()

	ctx = xcontext.WithRequestUserID(ctx, testutil.Admin.ID)
	newPrice := float64(25)
	_, err := noteDomain.Update(ctx, &model.UpdateNoteRequest{
		ID:    testutil.Note1.ID,
		Title: "Derivative rules cheat sheet v2",
		Price: &newPrice,
	})
	require.NoError(t, err)

	got, err := noteDomain.Get(ctx, &model.GetNoteRequest{ID: testutil.Note1.ID})
	require.NoError(t, err)
	require.Equal(t, "Derivative rules cheat sheet v2", got.Note.Title)
	require.Equal(t, newPrice, got.Note.Price)

	var errx errorx.Error
	_, err = noteDomain.Update(ctx, &model.UpdateNoteRequest{ID: testutil.Note1.ID})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)

	_, err = noteDomain.Delete(ctx, &model.DeleteNoteRequest{ID: testutil.Note1.ID})
	require.NoError(t, err)

	_, err = noteDomain.Get(ctx, &model.GetNoteRequest{ID: testutil.Note1.ID})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}
