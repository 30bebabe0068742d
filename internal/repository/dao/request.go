package dao

import "time"

type CollaborationRequest struct {
	ID          uint `gorm:"primaryKey;autoIncrement:false"`
	EventID     uint `gorm:"index;not null"`
	OrganizerID uint `gorm:"not null"`
	VendorID    uint `gorm:"index;not null"`
	ServiceID   uint `gorm:"not null"`

	Status            string    `gorm:"not null"`
	RequestedAt       time.Time `gorm:"type:timestamp"`
	ResponseTimestamp time.Time `gorm:"type:timestamp"`
}

type TransferRequest struct {
	ID          uint `gorm:"primaryKey;autoIncrement:false"`
	SenderID    uint `gorm:"index;not null"`
	RecipientID uint `gorm:"index;not null"`
	EventID     uint `gorm:"not null"`

	Items []TransferItem `gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE"`

	Status            string    `gorm:"not null"`
	RequestedAt       time.Time `gorm:"type:timestamp"`
	ResponseTimestamp time.Time `gorm:"type:timestamp"`
	FailureReason     string
}

type TransferItem struct {
	ID        uint `gorm:"primaryKey"`
	RequestID uint `gorm:"index;not null"`
	Position  int  `gorm:"not null"`

	SourceTicketID uint   `gorm:"not null"`
	TicketType     string `gorm:"not null"`
	Quantity       int    `gorm:"not null"`
}
