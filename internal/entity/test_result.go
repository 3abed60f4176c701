package entity

type TestResult struct {
	Base

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	TestID string `gorm:"index"`
	Test   Test   `gorm:"foreignKey:TestID"`

	Score          int
	TotalQuestions int
	XPEarned       uint64
}
