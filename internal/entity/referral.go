package entity

import "github.com/studyhive-lab/backend/pkg/enum"

type ReferralStatus string

var (
	ReferralPending   = enum.New(ReferralStatus("pending"))
	ReferralCompleted = enum.New(ReferralStatus("completed"))
)

type Referral struct {
	Base

	ReferrerID string `gorm:"index"`
	Referrer   User   `gorm:"foreignKey:ReferrerID"`

	ReferredID string `gorm:"unique"`
	Referred   User   `gorm:"foreignKey:ReferredID"`

	Status       ReferralStatus
	PointsEarned uint64
}
