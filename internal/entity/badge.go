package entity

import "time"

type Badge struct {
	Base

	Name          string `gorm:"unique"`
	Description   string
	Icon          string
	XPRequirement uint64
}

type UserBadge struct {
	CreatedAt time.Time

	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	BadgeID string `gorm:"primaryKey"`
	Badge   Badge  `gorm:"foreignKey:BadgeID"`

	WasNotified bool
}
