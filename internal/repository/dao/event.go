package dao

import (
	"time"

	"github.com/shopspring/decimal"
)

type Event struct {
	ID          uint `gorm:"primaryKey;autoIncrement:false"`
	OrganizerID uint `gorm:"index;not null"`

	Title       string    `gorm:"not null"`
	StartDate   time.Time `gorm:"type:date"`
	EndDate     time.Time `gorm:"type:date"`
	StartTime   string
	Location    string
	Type        string
	Description string
	ImageRef    string

	TicketTypes []TicketType `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`

	TicketSaleDeadline   time.Time `gorm:"type:timestamp"`
	TicketCancelDeadline time.Time `gorm:"type:timestamp"`
}

// TicketType keeps the declaration order of an event's types in Position.
type TicketType struct {
	ID       uint `gorm:"primaryKey"`
	EventID  uint `gorm:"index;not null"`
	Position int  `gorm:"not null"`

	Type          string          `gorm:"not null"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalQuantity int             `gorm:"not null"`
}

type Service struct {
	ID       uint `gorm:"primaryKey;autoIncrement:false"`
	VendorID uint `gorm:"index;not null"`

	Name        string `gorm:"not null"`
	Type        string
	Description string
	StartDate   time.Time `gorm:"type:date"`
	EndDate     time.Time `gorm:"type:date"`
	PricingType string
	Price       decimal.Decimal `gorm:"type:numeric(12,2)"`
	MinCapacity int
	MaxCapacity int
	MediaRef    string

	EventID *uint
	Status  string `gorm:"not null"`
}
