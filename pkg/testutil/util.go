package testutil

import (
	"context"
	"time"

	"github.com/studyhive-lab/backend/config"
	"github.com/studyhive-lab/backend/migration"
	"github.com/studyhive-lab/backend/pkg/logger"
	"github.com/studyhive-lab/backend/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	cfg := config.Configs{
		ApiServer: config.ServerConfigs{
			MaxLimit:     50,
			DefaultLimit: 10,
		},
		Auth: config.AuthConfigs{
			TokenSecret: "secret",
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: time.Minute,
			},
			RefreshToken: config.TokenConfigs{
				Name:       "refresh_token",
				Expiration: time.Minute,
			},
		},
		File: config.FileConfigs{
			MaxSize:        2 * 1024 * 1024,
			MaterialBucket: "materials",
			AvatarBucket:   "avatars",
		},
		Game: config.GameConfigs{
			LoginReward: 10,
			LevelXP:     1000,
		},
		Referral: config.ReferralConfigs{
			Points: 100,
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithDB(ctx, db)

	if err := migration.AutoMigrate(ctx); err != nil {
		panic(err)
	}

	return ctx
}

func MockContextWithUserID(userID string) context.Context {
	return xcontext.WithRequestUserID(MockContext(), userID)
}
