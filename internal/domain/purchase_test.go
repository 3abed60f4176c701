package domain

import (
	"strings"
	"testing"

	"github.com/studyhive-lab/backend/internal/domain/entitlement"
	"github.com/studyhive-lab/backend/internal/model"
	"github.com/studyhive-lab/backend/internal/repository"
	"github.com/studyhive-lab/backend/pkg/errorx"
	"github.com/studyhive-lab/backend/pkg/testutil"
	"github.com/studyhive-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newPurchaseDomainForTest() *purchaseDomain {
	loader := entitlement.NewLoader(
		repository.NewUserRepository(),
		repository.NewPurchaseRepository(),
		repository.NewCategoryPurchaseRepository(),
		repository.NewEnrollmentRepository(),
		repository.NewCourseRepository(),
	)

	return NewPurchaseDomain(
		repository.NewPurchaseRepository(),
		repository.NewCategoryPurchaseRepository(),
		repository.NewNoteRepository(),
		repository.NewTestRepository(),
		loader,
		&testutil.MockPublisher{},
	)
}

func Test_purchaseDomain_BuyNote(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	purchaseDomain := newPurchaseDomainForTest()

	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	resp, err := purchaseDomain.BuyNote(ctx, &model.BuyNoteRequest{NoteID: testutil.Note1.ID})
	require.NoError(t, err)
	require.Equal(t, testutil.Note1.Price, resp.Purchase.Amount)
	require.True(t, strings.HasPrefix(resp.Purchase.OrderID, "NOTE_"))
	require.True(t, strings.HasPrefix(resp.Purchase.PaymentID, "PAY_"))
	require.Equal(t, "completed", resp.Purchase.Status)

	// Buying the same note twice is refused.
	_, err = purchaseDomain.BuyNote(ctx, &model.BuyNoteRequest{NoteID: testutil.Note1.ID})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.AlreadyExists, errx.Code)
}

func Test_purchaseDomain_BuyNote_freeNote(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	purchaseDomain := newPurchaseDomainForTest()

	// Free material is always accessible, there is nothing to buy.
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	_, err := purchaseDomain.BuyNote(ctx, &model.BuyNoteRequest{NoteID: testutil.FreeNote.ID})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.AlreadyExists, errx.Code)
}

func Test_purchaseDomain_BuyCategory(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	purchaseDomain := newPurchaseDomainForTest()

	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	resp, err := purchaseDomain.BuyCategory(ctx, &model.BuyCategoryRequest{
		Category:    "math",
		ContentType: "both",
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(resp.Purchase.OrderID, "CAT_BOTH_"))

	// The bundle price is the sum of the category's note and test prices.
	require.Equal(t, testutil.Note1.Price+testutil.Test1.Price, resp.Purchase.Amount)

	// The bundle now grants access, so single purchases in it are refused.
	_, err = purchaseDomain.BuyTest(ctx, &model.BuyTestRequest{TestID: testutil.Test1.ID})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.AlreadyExists, errx.Code)
}

func Test_purchaseDomain_BuyCategory_invalidContentType(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	purchaseDomain := newPurchaseDomainForTest()

	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	_, err := purchaseDomain.BuyCategory(ctx, &model.BuyCategoryRequest{
		Category:    "math",
		ContentType: "videos",
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_purchaseDomain_GetMine(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	purchaseDomain := newPurchaseDomainForTest()

	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	_, err := purchaseDomain.BuyNote(ctx, &model.BuyNoteRequest{NoteID: testutil.Note1.ID})
	require.NoError(t, err)

	_, err = purchaseDomain.BuyCategory(ctx, &model.BuyCategoryRequest{
		Category:    "chemistry",
		ContentType: "notes",
	})
	require.NoError(t, err)

	resp, err := purchaseDomain.GetMine(ctx, &model.GetMyPurchasesRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Purchases, 1)
	require.Len(t, resp.CategoryPurchases, 1)
}
