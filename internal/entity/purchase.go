package entity

import (
	"database/sql"

	"github.com/studyhive-lab/backend/pkg/enum"
)

type ContentType string

var (
	NotesContent = enum.New(ContentType("notes"))
	TestsContent = enum.New(ContentType("tests"))
	BothContent  = enum.New(ContentType("both"))
)

type PurchaseStatus string

var (
	PurchasePending   = enum.New(PurchaseStatus("pending"))
	PurchaseCompleted = enum.New(PurchaseStatus("completed"))
)

type Purchase struct {
	Base

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	NoteID sql.NullString
	Note   Note `gorm:"foreignKey:NoteID"`

	TestID sql.NullString
	Test   Test `gorm:"foreignKey:TestID"`

	OrderID   string `gorm:"unique"`
	PaymentID string
	Amount    float64
	Status    PurchaseStatus
}
