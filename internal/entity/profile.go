package entity

import (
	"database/sql"
	"time"
)

type Profile struct {
	Base

	UserID string `gorm:"unique"`
	User   User   `gorm:"foreignKey:UserID"`

	Username         string
	XP               uint64
	Level            int
	RewardPoints     uint64
	WeeklyXP         uint64
	MonthlyXP        uint64
	Streak           int
	LastActivityDate time.Time

	ReferralCode string `gorm:"unique"`
	ReferredBy   sql.NullString
}

// LevelOf derives the level from a lifetime xp total. Every 1000 xp is one
// level, starting at level 1.
func LevelOf(xp uint64) int {
	return int(xp/1000) + 1
}
