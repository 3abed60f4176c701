package model

import (
	"time"

	"github.com/studyhive-lab/backend/internal/entity"
)

const DefaultTimeLayout string = time.RFC3339Nano
const DefaultDateLayout string = "2006-01-02"

func ConvertUser(user *entity.User) User {
	if user == nil {
		return User{}
	}

	return User{
		ID:        user.ID,
		Name:      user.Name,
		Role:      user.Role,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertProfile(profile *entity.Profile) Profile {
	if profile == nil {
		return Profile{}
	}

	return Profile{
		UserID:           profile.UserID,
		Username:         profile.Username,
		XP:               profile.XP,
		Level:            profile.Level,
		RewardPoints:     profile.RewardPoints,
		WeeklyXP:         profile.WeeklyXP,
		MonthlyXP:        profile.MonthlyXP,
		Streak:           profile.Streak,
		LastActivityDate: profile.LastActivityDate.Format(DefaultTimeLayout),
		ReferralCode:     profile.ReferralCode,
		ReferredBy:       profile.ReferredBy.String,
	}
}

func ConvertCourse(course *entity.Course) Course {
	if course == nil {
		return Course{}
	}

	return Course{
		ID:            course.ID,
		Title:         course.Title,
		Description:   course.Description,
		Category:      course.Category,
		Price:         course.Price,
		OriginalPrice: course.OriginalPrice,
		IsActive:      course.IsActive,
		CreatedBy:     course.CreatedBy,
		CreatedAt:     course.CreatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertLesson(lesson *entity.Lesson) Lesson {
	if lesson == nil {
		return Lesson{}
	}

	return Lesson{
		ID:         lesson.ID,
		CourseID:   lesson.CourseID,
		Title:      lesson.Title,
		Content:    lesson.Content,
		VideoURL:   lesson.VideoURL,
		OrderIndex: lesson.OrderIndex,
	}
}

// ConvertNote strips the paid content unless the caller has access.
func ConvertNote(note *entity.Note, hasAccess bool) Note {
	if note == nil {
		return Note{}
	}

	converted := Note{
		ID:        note.ID,
		Title:     note.Title,
		Category:  note.Category,
		Price:     note.Price,
		IsActive:  note.IsActive,
		HasAccess: hasAccess,
		CreatedAt: note.CreatedAt.Format(DefaultTimeLayout),
	}

	if hasAccess {
		converted.Content = note.Content
		converted.FileURL = note.FileURL
	}

	return converted
}

// ConvertTest strips correct answers for everyone and the questions entirely
// for callers without access.
func ConvertTest(test *entity.Test, hasAccess bool) Test {
	if test == nil {
		return Test{}
	}

	converted := Test{
		ID:           test.ID,
		Title:        test.Title,
		Category:     test.Category,
		Price:        test.Price,
		RewardPoints: test.RewardPoints,
		IsActive:     test.IsActive,
		HasAccess:    hasAccess,
		CreatedAt:    test.CreatedAt.Format(DefaultTimeLayout),
	}

	if hasAccess {
		for _, q := range test.Questions {
			converted.Questions = append(converted.Questions, Question{
				Text:    q.Text,
				Options: q.Options,
			})
		}
	}

	return converted
}

func ConvertPurchase(purchase *entity.Purchase) Purchase {
	if purchase == nil {
		return Purchase{}
	}

	return Purchase{
		ID:        purchase.ID,
		NoteID:    purchase.NoteID.String,
		TestID:    purchase.TestID.String,
		OrderID:   purchase.OrderID,
		PaymentID: purchase.PaymentID,
		Amount:    purchase.Amount,
		Status:    string(purchase.Status),
		CreatedAt: purchase.CreatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertCategoryPurchase(purchase *entity.CategoryPurchase) CategoryPurchase {
	if purchase == nil {
		return CategoryPurchase{}
	}

	return CategoryPurchase{
		ID:          purchase.ID,
		Category:    purchase.Category,
		ContentType: string(purchase.ContentType),
		OrderID:     purchase.OrderID,
		PaymentID:   purchase.PaymentID,
		Amount:      purchase.Amount,
		Status:      string(purchase.Status),
		CreatedAt:   purchase.CreatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertEnrollment(enrollment *entity.Enrollment, course *entity.Course) Enrollment {
	if enrollment == nil {
		return Enrollment{}
	}

	converted := Enrollment{
		UserID:    enrollment.UserID,
		CourseID:  enrollment.CourseID,
		Progress:  enrollment.Progress,
		CreatedAt: enrollment.CreatedAt.Format(DefaultTimeLayout),
	}

	if enrollment.CompletedAt.Valid {
		converted.CompletedAt = enrollment.CompletedAt.Time.Format(DefaultTimeLayout)
	}

	if course != nil {
		converted.Course = ConvertCourse(course)
	}

	return converted
}

func ConvertTestResult(result *entity.TestResult) TestResult {
	if result == nil {
		return TestResult{}
	}

	return TestResult{
		ID:             result.ID,
		TestID:         result.TestID,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		XPEarned:       result.XPEarned,
		CreatedAt:      result.CreatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertBadge(badge *entity.Badge, unlock *entity.UserBadge) Badge {
	if badge == nil {
		return Badge{}
	}

	converted := Badge{
		ID:            badge.ID,
		Name:          badge.Name,
		Description:   badge.Description,
		Icon:          badge.Icon,
		XPRequirement: badge.XPRequirement,
	}

	if unlock != nil {
		converted.Unlocked = true
		converted.UnlockedAt = unlock.CreatedAt.Format(DefaultTimeLayout)
	}

	return converted
}

func ConvertReferral(referral *entity.Referral, referred *entity.User) Referral {
	if referral == nil {
		return Referral{}
	}

	converted := Referral{
		ID:           referral.ID,
		ReferredID:   referral.ReferredID,
		Status:       string(referral.Status),
		PointsEarned: referral.PointsEarned,
		CreatedAt:    referral.CreatedAt.Format(DefaultTimeLayout),
	}

	if referred != nil {
		converted.ReferredName = referred.Name
	}

	return converted
}

func ConvertNotification(notification *entity.Notification) Notification {
	if notification == nil {
		return Notification{}
	}

	return Notification{
		ID:          notification.ID,
		Title:       notification.Title,
		Description: notification.Description,
		Type:        string(notification.Type),
		IsRead:      notification.IsRead,
		CreatedAt:   notification.CreatedAt.Format(DefaultTimeLayout),
	}
}
