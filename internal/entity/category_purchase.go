package entity

type CategoryPurchase struct {
	Base

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	Category    string `gorm:"index"`
	ContentType ContentType

	OrderID   string `gorm:"unique"`
	PaymentID string
	Amount    float64
	Status    PurchaseStatus
}
