package dao

import "time"

type Review struct {
	ID        uint   `gorm:"primaryKey;autoIncrement:false"`
	Kind      string `gorm:"not null"`
	SubjectID uint   `gorm:"index;not null"`
	EventID   uint   `gorm:"index;not null"`

	Rating      float64 `gorm:"not null"`
	Comments    string
	Suggestions string
	ReviewerID  uint      `gorm:"not null"`
	PostedAt    time.Time `gorm:"type:timestamp"`
	Status      string
}

// Notification stores its payload as the raw JSON of its category.
type Notification struct {
	ID     uint `gorm:"primaryKey;autoIncrement:false"`
	UserID uint `gorm:"index;not null"`

	Title    string
	Body     string
	Category string    `gorm:"not null"`
	Payload  []byte    `gorm:"type:jsonb"`
	SentAt   time.Time `gorm:"type:timestamp"`
	Read     bool      `gorm:"not null;default:false"`
}
