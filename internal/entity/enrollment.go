package entity

import (
	"database/sql"
	"time"
)

type Enrollment struct {
	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	CourseID string `gorm:"primaryKey"`
	Course   Course `gorm:"foreignKey:CourseID"`

	CreatedAt   time.Time
	UpdatedAt   time.Time
	Progress    int
	CompletedAt sql.NullTime
}
