package entity

type Lesson struct {
	Base

	CourseID string `gorm:"index"`
	Course   Course `gorm:"foreignKey:CourseID"`

	Title      string
	Content    string `gorm:"type:longtext"`
	VideoURL   string
	OrderIndex int
}
