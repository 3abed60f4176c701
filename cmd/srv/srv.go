package main

import (
	"context"
	"net/http"

	"github.com/studyhive-lab/backend/config"
	"github.com/studyhive-lab/backend/internal/domain"
	"github.com/studyhive-lab/backend/internal/domain/badge"
	"github.com/studyhive-lab/backend/internal/domain/entitlement"
	"github.com/studyhive-lab/backend/internal/domain/statistic"
	"github.com/studyhive-lab/backend/internal/model"
	"github.com/studyhive-lab/backend/internal/repository"
	"github.com/studyhive-lab/backend/migration"
	"github.com/studyhive-lab/backend/pkg/authenticator"
	"github.com/studyhive-lab/backend/pkg/kafka"
	"github.com/studyhive-lab/backend/pkg/logger"
	"github.com/studyhive-lab/backend/pkg/pubsub"
	"github.com/studyhive-lab/backend/pkg/router"
	"github.com/studyhive-lab/backend/pkg/storage"
	"github.com/studyhive-lab/backend/pkg/xcontext"
	"github.com/studyhive-lab/backend/pkg/xredis"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type srv struct {
	app *cli.App
	ctx context.Context

	userRepo             repository.UserRepository
	profileRepo          repository.ProfileRepository
	courseRepo           repository.CourseRepository
	lessonRepo           repository.LessonRepository
	noteRepo             repository.NoteRepository
	testRepo             repository.TestRepository
	testResultRepo       repository.TestResultRepository
	purchaseRepo         repository.PurchaseRepository
	categoryPurchaseRepo repository.CategoryPurchaseRepository
	enrollmentRepo       repository.EnrollmentRepository
	badgeRepo            repository.BadgeRepository
	userBadgeRepo        repository.UserBadgeRepository
	referralRepo         repository.ReferralRepository
	notificationRepo     repository.NotificationRepository

	authDomain         domain.AuthDomain
	profileDomain      domain.ProfileDomain
	courseDomain       domain.CourseDomain
	noteDomain         domain.NoteDomain
	testDomain         domain.TestDomain
	purchaseDomain     domain.PurchaseDomain
	enrollmentDomain   domain.EnrollmentDomain
	referralDomain     domain.ReferralDomain
	notificationDomain domain.NotificationDomain
	userDomain         domain.UserDomain
	fileDomain         domain.FileDomain

	accessTokenEngine  authenticator.TokenEngine[model.AccessToken]
	refreshTokenEngine authenticator.TokenEngine[model.RefreshToken]

	leaderboard  statistic.Leaderboard
	badgeManager *badge.Manager

	redisClient xredis.Client
	storage     storage.Storage
	publisher   pubsub.Publisher

	router *router.Router
	server *http.Server
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if s.configs().Env == "local" {
		level = logger.DEBUG
	}

	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(level))
}

func (s *srv) configs() config.Configs {
	return xcontext.Configs(s.ctx)
}

func (s *srv) loadDatabase() {
	cfg := s.configs().Database

	logLevel := gormlogger.Warn
	if cfg.LogLevel == "error" {
		logLevel = gormlogger.Error
	}

	db, err := gorm.Open(mysql.Open(cfg.ConnectionString()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithDB(s.ctx, db)
}

func (s *srv) migrateDB() {
	if err := migration.AutoMigrate(s.ctx); err != nil {
		panic(err)
	}
}

func (s *srv) loadRedis() {
	redisClient, err := xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}

	s.redisClient = redisClient
}

func (s *srv) loadStorage() {
	s.storage = storage.NewS3Storage(s.configs().Storage)
}

func (s *srv) loadPublisher() {
	s.publisher = kafka.NewPublisher("api", []string{s.configs().Kafka.Addr})
}

func (s *srv) loadAuthenticators() {
	authCfg := s.configs().Auth
	s.accessTokenEngine = authenticator.NewTokenEngine[model.AccessToken](
		authCfg.TokenSecret, authCfg.AccessToken)
	s.refreshTokenEngine = authenticator.NewTokenEngine[model.RefreshToken](
		authCfg.TokenSecret, authCfg.RefreshToken)
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.profileRepo = repository.NewProfileRepository()
	s.courseRepo = repository.NewCourseRepository()
	s.lessonRepo = repository.NewLessonRepository()
	s.noteRepo = repository.NewNoteRepository()
	s.testRepo = repository.NewTestRepository()
	s.testResultRepo = repository.NewTestResultRepository()
	s.purchaseRepo = repository.NewPurchaseRepository()
	s.categoryPurchaseRepo = repository.NewCategoryPurchaseRepository()
	s.enrollmentRepo = repository.NewEnrollmentRepository()
	s.badgeRepo = repository.NewBadgeRepository()
	s.userBadgeRepo = repository.NewUserBadgeRepository()
	s.referralRepo = repository.NewReferralRepository()
	s.notificationRepo = repository.NewNotificationRepository()
}

func (s *srv) loadBadgeManager() {
	s.badgeManager = badge.NewManager(
		s.userBadgeRepo,
		s.notificationRepo,
		badge.NewXPMilestoneScanner(s.badgeRepo, s.profileRepo),
		badge.NewStreakScanner(s.badgeRepo, s.profileRepo, badge.DefaultStreakMilestones),
		badge.NewReferralScanner(s.badgeRepo, s.referralRepo, badge.DefaultReferralMilestones),
	)
}

func (s *srv) loadLeaderboard() {
	s.leaderboard = statistic.New(s.profileRepo, s.redisClient)
}

func (s *srv) loadDomains() {
	loader := entitlement.NewLoader(
		s.userRepo,
		s.purchaseRepo,
		s.categoryPurchaseRepo,
		s.enrollmentRepo,
		s.courseRepo,
	)

	s.authDomain = domain.NewAuthDomain(
		s.userRepo, s.profileRepo, s.accessTokenEngine, s.refreshTokenEngine)
	s.profileDomain = domain.NewProfileDomain(
		s.userRepo, s.profileRepo, s.badgeRepo, s.userBadgeRepo,
		s.notificationRepo, s.leaderboard, s.badgeManager, s.publisher)
	s.courseDomain = domain.NewCourseDomain(s.courseRepo, s.lessonRepo, s.publisher)
	s.noteDomain = domain.NewNoteDomain(s.noteRepo, loader, s.publisher)
	s.testDomain = domain.NewTestDomain(
		s.testRepo, s.testResultRepo, s.profileRepo, loader,
		s.leaderboard, s.badgeManager, s.publisher)
	s.purchaseDomain = domain.NewPurchaseDomain(
		s.purchaseRepo, s.categoryPurchaseRepo, s.noteRepo, s.testRepo,
		loader, s.publisher)
	s.enrollmentDomain = domain.NewEnrollmentDomain(
		s.enrollmentRepo, s.courseRepo, s.publisher)
	s.referralDomain = domain.NewReferralDomain(
		s.referralRepo, s.profileRepo, s.userRepo,
		s.leaderboard, s.badgeManager, s.publisher)
	s.notificationDomain = domain.NewNotificationDomain(s.notificationRepo)
	s.userDomain = domain.NewUserDomain(s.userRepo)
	s.fileDomain = domain.NewFileDomain(s.storage, s.userRepo)
}
