package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env string

	Database  DatabaseConfigs
	ApiServer ServerConfigs
	Auth      AuthConfigs
	Storage   S3Configs
	File      FileConfigs
	Game      GameConfigs
	Referral  ReferralConfigs
	Redis     RedisConfigs
	Kafka     KafkaConfigs
}

type DatabaseConfigs struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
	LogLevel string
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string
	Port string
	Cert string
	Key  string

	DefaultLimit int
	MaxLimit     int
}

type AuthConfigs struct {
	TokenSecret  string
	AccessToken  TokenConfigs
	RefreshToken TokenConfigs
}

type TokenConfigs struct {
	Name       string
	Expiration time.Duration
}

type S3Configs struct {
	Region         string
	Endpoint       string
	PublicEndpoint string
	AccessKey      string
	SecretKey      string
	SSLDisabled    bool
}

type FileConfigs struct {
	MaxSize        int64
	MaterialBucket string
	AvatarBucket   string
}

// GameConfigs holds the tunables of the gamification rules. Defaults follow
// the marketplace rules: 10 points per daily login, 1000 xp per level.
type GameConfigs struct {
	LoginReward int
	LevelXP     int
}

type ReferralConfigs struct {
	Points int
}

type RedisConfigs struct {
	Addr string
}

type KafkaConfigs struct {
	Addr       string
	StaleTopic string
}
