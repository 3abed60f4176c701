package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/studyhive-lab/backend/config"
	"github.com/studyhive-lab/backend/pkg/xcontext"
)

func (s *srv) loadConfig() {
	cfg := config.Configs{
		Env: getEnv("ENV", "local"),
		Database: config.DatabaseConfigs{
			Host:     getEnv("MYSQL_HOST", "localhost"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			Database: getEnv("MYSQL_DATABASE", "studyhive"),
			User:     getEnv("MYSQL_USER", "studyhive"),
			Password: getEnv("MYSQL_PASSWORD", "secret"),
			LogLevel: getEnv("DATABASE_LOG_LEVEL", "error"),
		},
		ApiServer: config.ServerConfigs{
			Host:         getEnv("API_HOST", "localhost"),
			Port:         getEnv("API_PORT", "8080"),
			Cert:         getEnv("API_CERT", ""),
			Key:          getEnv("API_KEY", ""),
			DefaultLimit: getEnvAsInt("API_DEFAULT_LIMIT", 10),
			MaxLimit:     getEnvAsInt("API_MAX_LIMIT", 50),
		},
		Auth: config.AuthConfigs{
			TokenSecret: getEnv("TOKEN_SECRET", "token_secret"),
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: getEnvAsDuration("ACCESS_TOKEN_DURATION", time.Hour),
			},
			RefreshToken: config.TokenConfigs{
				Name:       "refresh_token",
				Expiration: getEnvAsDuration("REFRESH_TOKEN_DURATION", 30*24*time.Hour),
			},
		},
		Storage: config.S3Configs{
			Region:         getEnv("STORAGE_REGION", "auto"),
			Endpoint:       getEnv("STORAGE_ENDPOINT", "http://localhost:9000"),
			PublicEndpoint: getEnv("STORAGE_PUBLIC_ENDPOINT", "http://localhost:9000"),
			AccessKey:      getEnv("STORAGE_ACCESS_KEY", "access_key"),
			SecretKey:      getEnv("STORAGE_SECRET_KEY", "secret_key"),
			SSLDisabled:    getEnvAsBool("STORAGE_SSL_DISABLE", true),
		},
		File: config.FileConfigs{
			MaxSize:        int64(getEnvAsInt("MAX_UPLOAD_SIZE", 10*1024*1024)),
			MaterialBucket: getEnv("MATERIAL_BUCKET", "materials"),
			AvatarBucket:   getEnv("AVATAR_BUCKET", "avatars"),
		},
		Game: config.GameConfigs{
			LoginReward: getEnvAsInt("LOGIN_REWARD", 10),
			LevelXP:     getEnvAsInt("LEVEL_XP", 1000),
		},
		Referral: config.ReferralConfigs{
			Points: getEnvAsInt("REFERRAL_POINTS", 100),
		},
		Redis: config.RedisConfigs{
			Addr: getEnv("REDIS_ADDRESS", "localhost:6379"),
		},
		Kafka: config.KafkaConfigs{
			Addr:       getEnv("KAFKA_ADDRESS", "localhost:9092"),
			StaleTopic: getEnv("KAFKA_STALE_TOPIC", "stale"),
		},
	}

	s.ctx = xcontext.WithConfigs(context.Background(), cfg)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}

	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}

	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}

	return fallback
}
