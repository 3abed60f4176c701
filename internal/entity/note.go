package entity

type Note struct {
	Base

	Title    string
	Content  string `gorm:"type:longtext"`
	Category string `gorm:"index"`
	Price    float64
	FileURL  string
	IsActive bool `gorm:"default:true"`

	CreatedBy string
	Creator   User `gorm:"foreignKey:CreatedBy"`
}
