package dao

import (
	"github.com/shopspring/decimal"
)

// Ids are allocated by the store, never by the database.
type User struct {
	ID uint `gorm:"primaryKey;autoIncrement:false"`

	Email    string `gorm:"unique;not null"`
	Password string `gorm:"not null"`

	Name    string `gorm:"not null"`
	Surname string
	Phone   string
	Type    string          `gorm:"not null"` // "Attendee", "Organizer" or "Vendor"
	Credit  decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
}
