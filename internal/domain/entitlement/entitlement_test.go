package entitlement

import (
	"database/sql"
	"testing"

	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/stretchr/testify/require"
)

func paidNote() Item {
	return Item{ID: "note1", Category: "math", Price: 10, Type: entity.NotesContent}
}

func Test_HasAccess_anonymous(t *testing.T) {
	require.False(t, HasAccess(paidNote(), Snapshot{}))
}

func Test_HasAccess_admin(t *testing.T) {
	snapshot := Snapshot{UserID: "admin", IsAdmin: true}
	require.True(t, HasAccess(paidNote(), snapshot))
}

func Test_HasAccess_freeItem(t *testing.T) {
	item := Item{ID: "note2", Category: "math", Price: 0, Type: entity.NotesContent}
	require.True(t, HasAccess(item, Snapshot{UserID: "user1"}))
}

func Test_HasAccess_individualPurchase(t *testing.T) {
	snapshot := Snapshot{
		UserID: "user1",
		Purchases: []entity.Purchase{
			{NoteID: sql.NullString{String: "note1", Valid: true}},
		},
	}

	require.True(t, HasAccess(paidNote(), snapshot))

	// A purchase of another note gives nothing.
	snapshot.Purchases[0].NoteID.String = "note99"
	require.False(t, HasAccess(paidNote(), snapshot))
}

func Test_HasAccess_purchaseOfOtherContentType(t *testing.T) {
	// A test purchase sharing the id of the note must not leak access.
	snapshot := Snapshot{
		UserID: "user1",
		Purchases: []entity.Purchase{
			{TestID: sql.NullString{String: "note1", Valid: true}},
		},
	}

	require.False(t, HasAccess(paidNote(), snapshot))
}

func Test_HasAccess_categoryPurchase(t *testing.T) {
	snapshot := Snapshot{
		UserID: "user1",
		CategoryPurchases: []entity.CategoryPurchase{
			{Category: "math", ContentType: entity.NotesContent},
		},
	}

	require.True(t, HasAccess(paidNote(), snapshot))

	testItem := Item{ID: "test1", Category: "math", Price: 20, Type: entity.TestsContent}
	require.False(t, HasAccess(testItem, snapshot))
}

func Test_HasAccess_categoryPurchaseBoth(t *testing.T) {
	snapshot := Snapshot{
		UserID: "user1",
		CategoryPurchases: []entity.CategoryPurchase{
			{Category: "math", ContentType: entity.BothContent},
		},
	}

	require.True(t, HasAccess(paidNote(), snapshot))

	testItem := Item{ID: "test1", Category: "math", Price: 20, Type: entity.TestsContent}
	require.True(t, HasAccess(testItem, snapshot))

	otherCategory := Item{ID: "note3", Category: "physics", Price: 5, Type: entity.NotesContent}
	require.False(t, HasAccess(otherCategory, snapshot))
}

func Test_HasAccess_enrollment(t *testing.T) {
	snapshot := Snapshot{
		UserID:      "user1",
		Enrollments: []entity.Enrollment{{UserID: "user1", CourseID: "course1"}},
		Courses: []entity.Course{
			{Base: entity.Base{ID: "course1"}, Category: "math"},
		},
	}

	require.True(t, HasAccess(paidNote(), snapshot))

	snapshot.Courses[0].Category = "physics"
	require.False(t, HasAccess(paidNote(), snapshot))
}

func Test_HasCategoryAccess_ignoresIndividualPurchases(t *testing.T) {
	snapshot := Snapshot{
		UserID: "user1",
		Purchases: []entity.Purchase{
			{NoteID: sql.NullString{String: "note1", Valid: true}},
		},
	}

	require.False(t, HasCategoryAccess("math", entity.NotesContent, snapshot))
}

func Test_HasCategoryAccess_admin(t *testing.T) {
	snapshot := Snapshot{UserID: "admin", IsAdmin: true}
	require.True(t, HasCategoryAccess("math", entity.TestsContent, snapshot))
}
