package main

import (
	"fmt"
	"net/http"

	"github.com/studyhive-lab/backend/internal/middleware"
	"github.com/studyhive-lab/backend/pkg/router"
	"github.com/studyhive-lab/backend/pkg/xcontext"

	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()
	s.loadRedis()
	s.loadStorage()
	s.loadPublisher()
	s.loadAuthenticators()
	s.loadRepos()
	s.loadBadgeManager()
	s.loadLeaderboard()
	s.loadDomains()
	s.loadRouter()

	cfg := s.configs().ApiServer
	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: s.router.Handler(),
	}

	xcontext.Logger(s.ctx).Infof("Starting server on port: %s", cfg.Port)
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(xcontext.DB(s.ctx), s.configs(), xcontext.Logger(s.ctx))
	s.router.AddCloser(middleware.Logger())

	// Auth API
	router.POST(s.router, "/register", s.authDomain.Register)
	router.POST(s.router, "/login", s.authDomain.Login)
	router.POST(s.router, "/refresh", s.authDomain.Refresh)

	// Public API. An optional token personalizes the response.
	optionalAuthRouter := s.router.Branch()
	optionalAuthVerifier := middleware.NewAuthVerifier(s.accessTokenEngine).WithOptional()
	optionalAuthRouter.Before(optionalAuthVerifier.Middleware())
	{
		router.GET(optionalAuthRouter, "/getCategories", s.courseDomain.GetCategories)
		router.GET(optionalAuthRouter, "/getCourses", s.courseDomain.GetList)
		router.GET(optionalAuthRouter, "/getCourse", s.courseDomain.Get)
		router.GET(optionalAuthRouter, "/getNotes", s.noteDomain.GetList)
		router.GET(optionalAuthRouter, "/getNote", s.noteDomain.Get)
		router.GET(optionalAuthRouter, "/getTests", s.testDomain.GetList)
		router.GET(optionalAuthRouter, "/getTest", s.testDomain.Get)
		router.GET(optionalAuthRouter, "/getLeaderboard", s.profileDomain.GetLeaderboard)
	}

	// These following APIs need authentication with Access Token.
	authRouter := s.router.Branch()
	authVerifier := middleware.NewAuthVerifier(s.accessTokenEngine)
	authRouter.Before(authVerifier.Middleware())
	{
		// Profile API
		router.GET(authRouter, "/getMe", s.profileDomain.GetMe)
		router.POST(authRouter, "/updateProfile", s.profileDomain.Update)
		router.GET(authRouter, "/getMyBadges", s.profileDomain.GetBadges)
		router.POST(authRouter, "/uploadAvatar", s.fileDomain.UploadAvatar)

		// Purchase API
		router.POST(authRouter, "/buyNote", s.purchaseDomain.BuyNote)
		router.POST(authRouter, "/buyTest", s.purchaseDomain.BuyTest)
		router.POST(authRouter, "/buyCategory", s.purchaseDomain.BuyCategory)
		router.GET(authRouter, "/getMyPurchases", s.purchaseDomain.GetMine)

		// Enrollment API
		router.POST(authRouter, "/enroll", s.enrollmentDomain.Enroll)
		router.POST(authRouter, "/updateProgress", s.enrollmentDomain.UpdateProgress)
		router.GET(authRouter, "/getMyCourses", s.enrollmentDomain.GetMyCourses)

		// Test API
		router.POST(authRouter, "/submitTest", s.testDomain.Submit)
		router.GET(authRouter, "/getMyTestResults", s.testDomain.GetMyResults)

		// Referral API
		router.POST(authRouter, "/applyReferralCode", s.referralDomain.ApplyCode)
		router.GET(authRouter, "/getMyReferrals", s.referralDomain.GetMyReferrals)

		// Notification API
		router.GET(authRouter, "/getNotifications", s.notificationDomain.GetMine)
		router.POST(authRouter, "/readNotification", s.notificationDomain.MarkRead)
		router.POST(authRouter, "/readAllNotifications", s.notificationDomain.MarkAllRead)
	}

	// These following APIs are only for admins.
	adminRouter := authRouter.Branch()
	adminRouter.Before(middleware.NewOnlyAdmin(s.userRepo).Middleware())
	{
		// Course CMS API
		router.POST(adminRouter, "/createCourse", s.courseDomain.Create)
		router.POST(adminRouter, "/updateCourse", s.courseDomain.Update)
		router.POST(adminRouter, "/deleteCourse", s.courseDomain.Delete)
		router.POST(adminRouter, "/createLesson", s.courseDomain.CreateLesson)
		router.POST(adminRouter, "/updateLesson", s.courseDomain.UpdateLesson)
		router.POST(adminRouter, "/deleteLesson", s.courseDomain.DeleteLesson)
		router.POST(adminRouter, "/reorderLessons", s.courseDomain.ReorderLessons)

		// Note CMS API
		router.POST(adminRouter, "/createNote", s.noteDomain.Create)
		router.POST(adminRouter, "/updateNote", s.noteDomain.Update)
		router.POST(adminRouter, "/deleteNote", s.noteDomain.Delete)
		router.POST(adminRouter, "/uploadNoteFile", s.fileDomain.UploadNoteFile)

		// Test CMS API
		router.POST(adminRouter, "/createTest", s.testDomain.Create)
		router.POST(adminRouter, "/updateTest", s.testDomain.Update)
		router.POST(adminRouter, "/deleteTest", s.testDomain.Delete)

		// User management API
		router.GET(adminRouter, "/getUsers", s.userDomain.GetUsers)
		router.POST(adminRouter, "/assignRole", s.userDomain.AssignRole)
	}
}
