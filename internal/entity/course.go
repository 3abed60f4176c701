package entity

type Course struct {
	Base

	Title         string
	Description   string `gorm:"type:longtext"`
	Category      string `gorm:"index"`
	Price         float64
	OriginalPrice float64
	IsActive      bool `gorm:"default:true"`

	CreatedBy string
	Creator   User `gorm:"foreignKey:CreatedBy"`
}
