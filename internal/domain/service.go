package domain

import "github.com/shopspring/decimal"

type ServiceStatus string

const (
	ServiceAvailable ServiceStatus = "available"
	ServiceAssigned  ServiceStatus = "assigned"
	ServiceCompleted ServiceStatus = "completed"
)

// Service is a vendor offering. EventID is set only when a collaboration
// request for it is accepted.
type Service struct {
	ID          uint            `json:"service_id"`
	VendorID    uint            `json:"vendor_id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	StartDate   Date            `json:"start_date"`
	EndDate     Date            `json:"end_date"`
	PricingType string          `json:"pricing_type"`
	Price       decimal.Decimal `json:"price"`
	MinCapacity int             `json:"min_capacity"`
	MaxCapacity int             `json:"max_capacity"`
	MediaRef    string          `json:"media_ref"`
	EventID     *uint           `json:"event_id"`
	Status      ServiceStatus   `json:"status"`
}

func (s Service) LinkedTo(eventID uint) bool {
	return s.EventID != nil && *s.EventID == eventID
}
