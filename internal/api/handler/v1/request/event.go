package request

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"

	"github.com/vietanh2810/eventhub/internal/domain"
	"github.com/vietanh2810/eventhub/internal/service"
)

var errDateFormat = errors.New("must be dd/MM/yyyy")

type TicketTypeRequest struct {
	Type          string          `json:"type"`
	Price         decimal.Decimal `json:"price" swaggertype:"number"`
	TotalQuantity int             `json:"total_quantity"`
}

type CreateEventRequest struct {
	Title                string              `json:"title"`
	StartDate            string              `json:"start_date" format:"DD/MM/YYYY"`
	EndDate              string              `json:"end_date" format:"DD/MM/YYYY"`
	StartTime            string              `json:"start_time" format:"HH:mm"`
	Location             string              `json:"location"`
	Type                 string              `json:"type"`
	Description          string              `json:"description"`
	ImageRef             string              `json:"image_ref"`
	TicketTypes          []TicketTypeRequest `json:"ticket_types"`
	TicketSaleDeadline   string              `json:"ticket_sale_deadline" format:"DD/MM/YYYY HH:mm"`
	TicketCancelDeadline string              `json:"ticket_cancel_deadline" format:"DD/MM/YYYY HH:mm"`
}

func (req *CreateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.StartDate, validation.Required),
		validation.Field(&req.EndDate, validation.Required),
		validation.Field(&req.Location, validation.Length(0, 200)),
		validation.Field(&req.Description, validation.Length(0, 2000)),
		validation.Field(&req.TicketTypes, validation.Required),
		validation.Field(&req.TicketSaleDeadline, validation.Required),
		validation.Field(&req.TicketCancelDeadline, validation.Required),
	)
}

// Draft parses the wire formats. Business rules are checked by the
// catalog service.
func (req *CreateEventRequest) Draft() (service.EventDraft, error) {
	start, err := domain.ParseDate(req.StartDate)
	if err != nil {
		return service.EventDraft{}, fmt.Errorf("start_date: %w", errDateFormat)
	}
	end, err := domain.ParseDate(req.EndDate)
	if err != nil {
		return service.EventDraft{}, fmt.Errorf("end_date: %w", errDateFormat)
	}
	sale, err := domain.ParseDateTime(req.TicketSaleDeadline)
	if err != nil {
		return service.EventDraft{}, fmt.Errorf("ticket_sale_deadline -> %w", err)
	}
	cancel, err := domain.ParseDateTime(req.TicketCancelDeadline)
	if err != nil {
		return service.EventDraft{}, fmt.Errorf("ticket_cancel_deadline -> %w", err)
	}

	types := make([]domain.TicketType, 0, len(req.TicketTypes))
	for _, tt := range req.TicketTypes {
		types = append(types, domain.TicketType{
			Type:          tt.Type,
			Price:         tt.Price,
			TotalQuantity: tt.TotalQuantity,
		})
	}

	return service.EventDraft{
		Title:                req.Title,
		StartDate:            start,
		EndDate:              end,
		StartTime:            req.StartTime,
		Location:             req.Location,
		Type:                 req.Type,
		Description:          req.Description,
		ImageRef:             req.ImageRef,
		TicketTypes:          types,
		TicketSaleDeadline:   sale,
		TicketCancelDeadline: cancel,
	}, nil
}

type CreateServiceRequest struct {
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	StartDate   string          `json:"start_date" format:"DD/MM/YYYY"`
	EndDate     string          `json:"end_date" format:"DD/MM/YYYY"`
	PricingType string          `json:"pricing_type"`
	Price       decimal.Decimal `json:"price" swaggertype:"number"`
	MinCapacity int             `json:"min_capacity"`
	MaxCapacity int             `json:"max_capacity"`
	MediaRef    string          `json:"media_ref"`
}

func (req *CreateServiceRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Description, validation.Length(0, 2000)),
		validation.Field(&req.MinCapacity, validation.Min(0)),
		validation.Field(&req.MaxCapacity, validation.Min(0)),
	)
}

func (req *CreateServiceRequest) Draft() (service.ServiceDraft, error) {
	var start, end domain.Date
	var err error
	if req.StartDate != "" {
		if start, err = domain.ParseDate(req.StartDate); err != nil {
			return service.ServiceDraft{}, fmt.Errorf("start_date: %w", errDateFormat)
		}
	}
	if req.EndDate != "" {
		if end, err = domain.ParseDate(req.EndDate); err != nil {
			return service.ServiceDraft{}, fmt.Errorf("end_date: %w", errDateFormat)
		}
	}

	return service.ServiceDraft{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		StartDate:   start,
		EndDate:     end,
		PricingType: req.PricingType,
		Price:       req.Price,
		MinCapacity: req.MinCapacity,
		MaxCapacity: req.MaxCapacity,
		MediaRef:    req.MediaRef,
	}, nil
}
