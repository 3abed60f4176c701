package entity

type Question struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
}

type Test struct {
	Base

	Title        string
	Category     string `gorm:"index"`
	Price        float64
	RewardPoints uint64
	Questions    Array[Question]
	IsActive     bool `gorm:"default:true"`

	CreatedBy string
	Creator   User `gorm:"foreignKey:CreatedBy"`
}
