package entity

import "github.com/studyhive-lab/backend/pkg/enum"

type NotificationType string

var (
	BadgeNotification    = enum.New(NotificationType("badge"))
	ReferralNotification = enum.New(NotificationType("referral"))
	SystemNotification   = enum.New(NotificationType("system"))
)

type Notification struct {
	Base

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	Title       string
	Description string
	Type        NotificationType
	IsRead      bool
}
