package testutil

import (
	"context"

	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/internal/repository"
)

var (
	User1 = entity.User{
		Base: entity.Base{ID: "user1"},
		Name: "alice",
		Role: entity.UserRole,
	}

	User2 = entity.User{
		Base: entity.Base{ID: "user2"},
		Name: "bob",
		Role: entity.UserRole,
	}

	Admin = entity.User{
		Base: entity.Base{ID: "admin"},
		Name: "admin",
		Role: entity.AdminRole,
	}

	Profile1 = entity.Profile{
		Base:         entity.Base{ID: "profile1"},
		UserID:       User1.ID,
		Username:     User1.Name,
		Level:        1,
		ReferralCode: "ALICE123",
	}

	Profile2 = entity.Profile{
		Base:         entity.Base{ID: "profile2"},
		UserID:       User2.ID,
		Username:     User2.Name,
		Level:        1,
		ReferralCode: "BOB45678",
	}

	Course1 = entity.Course{
		Base:          entity.Base{ID: "course1"},
		Title:         "Calculus I",
		Description:   "Limits, derivatives and integrals",
		Category:      "math",
		Price:         50,
		OriginalPrice: 80,
		IsActive:      true,
		CreatedBy:     Admin.ID,
	}

	Course2 = entity.Course{
		Base:      entity.Base{ID: "course2"},
		Title:     "Organic Chemistry",
		Category:  "chemistry",
		Price:     60,
		IsActive:  false,
		CreatedBy: Admin.ID,
	}

	Lesson1 = entity.Lesson{
		Base:       entity.Base{ID: "lesson1"},
		CourseID:   Course1.ID,
		Title:      "Limits",
		Content:    "Introduction to limits",
		OrderIndex: 0,
	}

	Lesson2 = entity.Lesson{
		Base:       entity.Base{ID: "lesson2"},
		CourseID:   Course1.ID,
		Title:      "Derivatives",
		Content:    "Introduction to derivatives",
		OrderIndex: 1,
	}

	Note1 = entity.Note{
		Base:      entity.Base{ID: "note1"},
		Title:     "Derivative rules cheat sheet",
		Content:   "Power rule, product rule, chain rule",
		Category:  "math",
		Price:     10,
		IsActive:  true,
		CreatedBy: Admin.ID,
	}

	FreeNote = entity.Note{
		Base:      entity.Base{ID: "note2"},
		Title:     "Study tips",
		Content:   "How to plan a study week",
		Category:  "general",
		Price:     0,
		IsActive:  true,
		CreatedBy: Admin.ID,
	}

	Test1 = entity.Test{
		Base:         entity.Base{ID: "test1"},
		Title:        "Limits quiz",
		Category:     "math",
		Price:        20,
		RewardPoints: 50,
		IsActive:     true,
		CreatedBy:    Admin.ID,
		Questions: entity.Array[entity.Question]{
			{
				Text:          "What is the limit of 1/x as x goes to infinity?",
				Options:       []string{"0", "1", "infinity"},
				CorrectAnswer: 0,
			},
			{
				Text:          "What is the derivative of x^2?",
				Options:       []string{"x", "2x", "x^2"},
				CorrectAnswer: 1,
			},
		},
	}

	BadgeRisingStar = entity.Badge{
		Base:          entity.Base{ID: "badge_rising_star"},
		Name:          "Rising Star",
		Description:   "Earn 100 xp",
		XPRequirement: 100,
	}

	BadgeScholar = entity.Badge{
		Base:          entity.Base{ID: "badge_scholar"},
		Name:          "Scholar",
		Description:   "Earn 1000 xp",
		XPRequirement: 1000,
	}

	BadgeWeekWarrior = entity.Badge{
		Base:          entity.Base{ID: "badge_week_warrior"},
		Name:          "Week Warrior",
		Description:   "Log in 7 days in a row",
		XPRequirement: 0,
	}

	BadgeFriendlyFace = entity.Badge{
		Base:          entity.Base{ID: "badge_friendly_face"},
		Name:          "Friendly Face",
		Description:   "Refer your first friend",
		XPRequirement: 0,
	}
)

func CreateFixtureDb(ctx context.Context) {
	insertUsers(ctx)
	insertCourses(ctx)
	insertMaterials(ctx)
	insertBadges(ctx)
}

func insertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()
	profileRepo := repository.NewProfileRepository()

	for _, u := range []entity.User{User1, User2, Admin} {
		u := u
		if err := userRepo.Create(ctx, &u); err != nil {
			panic(err)
		}
	}

	for _, p := range []entity.Profile{Profile1, Profile2} {
		p := p
		if err := profileRepo.Create(ctx, &p); err != nil {
			panic(err)
		}
	}
}

func insertCourses(ctx context.Context) {
	courseRepo := repository.NewCourseRepository()
	lessonRepo := repository.NewLessonRepository()

	for _, c := range []entity.Course{Course1, Course2} {
		c := c
		if err := courseRepo.Create(ctx, &c); err != nil {
			panic(err)
		}
	}

	for _, l := range []entity.Lesson{Lesson1, Lesson2} {
		l := l
		if err := lessonRepo.Create(ctx, &l); err != nil {
			panic(err)
		}
	}
}

func insertMaterials(ctx context.Context) {
	noteRepo := repository.NewNoteRepository()
	testRepo := repository.NewTestRepository()

	for _, n := range []entity.Note{Note1, FreeNote} {
		n := n
		if err := noteRepo.Create(ctx, &n); err != nil {
			panic(err)
		}
	}

	t := Test1
	if err := testRepo.Create(ctx, &t); err != nil {
		panic(err)
	}
}

func insertBadges(ctx context.Context) {
	badgeRepo := repository.NewBadgeRepository()

	badges := []entity.Badge{
		BadgeRisingStar, BadgeScholar, BadgeWeekWarrior, BadgeFriendlyFace,
	}
	for _, b := range badges {
		b := b
		if err := badgeRepo.Create(ctx, &b); err != nil {
			panic(err)
		}
	}
}
