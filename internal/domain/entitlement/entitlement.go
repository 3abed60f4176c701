package entitlement

import "github.com/studyhive-lab/backend/internal/entity"

// Snapshot is an immutable view of everything that can grant a user access
// to paid study material. Grants only ever accumulate, nothing here revokes.
type Snapshot struct {
	UserID  string
	IsAdmin bool

	// Completed rows only.
	Purchases         []entity.Purchase
	CategoryPurchases []entity.CategoryPurchase

	Enrollments []entity.Enrollment
	Courses     []entity.Course
}

// Item is the access question being asked: one note or test.
type Item struct {
	ID       string
	Category string
	Price    float64
	Type     entity.ContentType
}

// HasAccess resolves whether the snapshot's user may read the item. Rules
// are checked cheapest first and any single grant is enough.
func HasAccess(item Item, s Snapshot) bool {
	if s.UserID == "" {
		return false
	}

	if s.IsAdmin {
		return true
	}

	// A missing price counts as zero.
	if item.Price <= 0 {
		return true
	}

	for _, p := range s.Purchases {
		switch item.Type {
		case entity.NotesContent:
			if p.NoteID.Valid && p.NoteID.String == item.ID {
				return true
			}
		case entity.TestsContent:
			if p.TestID.Valid && p.TestID.String == item.ID {
				return true
			}
		}
	}

	if categoryPurchaseCovers(item.Category, item.Type, s.CategoryPurchases) {
		return true
	}

	return enrolledInCategory(item.Category, s)
}

// HasCategoryAccess answers whether the user has blanket access to a whole
// category of notes or tests. Individual purchases and item prices do not
// participate here.
func HasCategoryAccess(category string, t entity.ContentType, s Snapshot) bool {
	if s.UserID == "" {
		return false
	}

	if s.IsAdmin {
		return true
	}

	if categoryPurchaseCovers(category, t, s.CategoryPurchases) {
		return true
	}

	return enrolledInCategory(category, s)
}

func categoryPurchaseCovers(
	category string, t entity.ContentType, purchases []entity.CategoryPurchase,
) bool {
	for _, p := range purchases {
		if p.Category != category {
			continue
		}

		if p.ContentType == t || p.ContentType == entity.BothContent {
			return true
		}
	}

	return false
}

// enrolledInCategory reports whether any enrollment points at a course of
// the given category.
func enrolledInCategory(category string, s Snapshot) bool {
	courseCategory := map[string]string{}
	for _, c := range s.Courses {
		courseCategory[c.ID] = c.Category
	}

	for _, e := range s.Enrollments {
		if courseCategory[e.CourseID] == category {
			return true
		}
	}

	return false
}
