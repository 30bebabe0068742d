package dao

import (
	"time"

	"github.com/shopspring/decimal"
)

type Ticket struct {
	ID      uint `gorm:"primaryKey;autoIncrement:false"`
	EventID uint `gorm:"index;not null"`
	UserID  uint `gorm:"index;not null"`

	TicketType     string          `gorm:"not null"`
	QuantityBought int             `gorm:"not null"`
	Price          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PurchaseDate   time.Time       `gorm:"type:timestamp"`
	Status         string          `gorm:"not null"`
	QRCode         string
}
