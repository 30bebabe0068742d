package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vietanh2810/eventhub/internal/domain"
	"github.com/vietanh2810/eventhub/internal/metrics"
	"github.com/vietanh2810/eventhub/internal/repository"
)

var (
	errEndBeforeStart      = errors.New("end date is before start date")
	errDeadlineAfterStart  = errors.New("must not be after the event start")
	errDuplicateTicketType = errors.New("ticket types must be unique")
	errNegativePrice       = errors.New("must not be negative")
	errMalformedStartTime  = errors.New("must be HH:mm")
	errMissingDate         = errors.New("cannot be blank")
	errCapacityOutOfOrder  = errors.New("max capacity is below min capacity")
)

type EventDraft struct {
	Title                string
	StartDate            domain.Date
	EndDate              domain.Date
	StartTime            string
	Location             string
	Type                 string
	Description          string
	ImageRef             string
	TicketTypes          []domain.TicketType
	TicketSaleDeadline   domain.DateTime
	TicketCancelDeadline domain.DateTime
}

func (d EventDraft) event() domain.Event {
	return domain.Event{
		Title:                strings.TrimSpace(d.Title),
		StartDate:            d.StartDate,
		EndDate:              d.EndDate,
		StartTime:            d.StartTime,
		Location:             d.Location,
		Type:                 d.Type,
		Description:          d.Description,
		ImageRef:             d.ImageRef,
		TicketTypes:          d.TicketTypes,
		TicketSaleDeadline:   d.TicketSaleDeadline,
		TicketCancelDeadline: d.TicketCancelDeadline,
	}
}

func (d EventDraft) Validate() error {
	d.Title = strings.TrimSpace(d.Title)
	ev := d.event()
	start := ev.StartsAt()

	err := validation.ValidateStruct(&d,
		validation.Field(&d.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&d.StartDate, validation.By(requireDate)),
		validation.Field(&d.EndDate, validation.By(requireDate), validation.By(func(any) error {
			if d.EndDate.Before(d.StartDate.Time) {
				return errEndBeforeStart
			}
			return nil
		})),
		validation.Field(&d.StartTime, validation.By(func(any) error {
			if d.StartTime == "" {
				return nil
			}
			if _, err := time.Parse(domain.TimeLayout, d.StartTime); err != nil {
				return errMalformedStartTime
			}
			return nil
		})),
		validation.Field(&d.TicketTypes, validation.Required, validation.By(validTicketTypes)),
		validation.Field(&d.TicketSaleDeadline, validation.By(deadlineBefore(start))),
		validation.Field(&d.TicketCancelDeadline, validation.By(deadlineBefore(start))),
	)
	if err != nil {
		return domain.InvalidInput(err)
	}
	return nil
}

func requireDate(value any) error {
	if d, ok := value.(domain.Date); ok && d.IsZero() {
		return errMissingDate
	}
	return nil
}

func deadlineBefore(start time.Time) validation.RuleFunc {
	return func(value any) error {
		d, _ := value.(domain.DateTime)
		if d.IsZero() {
			return errMissingDate
		}
		if d.After(start) {
			return errDeadlineAfterStart
		}
		return nil
	}
}

func validTicketTypes(value any) error {
	types, _ := value.([]domain.TicketType)
	seen := map[string]struct{}{}
	for _, tt := range types {
		err := validation.ValidateStruct(&tt,
			validation.Field(&tt.Type, validation.Required),
			validation.Field(&tt.Price, validation.By(func(any) error {
				if tt.Price.IsNegative() {
					return errNegativePrice
				}
				return nil
			})),
			validation.Field(&tt.TotalQuantity, validation.Min(0)),
		)
		if err != nil {
			return err
		}
		if _, dup := seen[tt.Type]; dup {
			return errDuplicateTicketType
		}
		seen[tt.Type] = struct{}{}
	}
	return nil
}

type ServiceDraft struct {
	Name        string
	Type        string
	Description string
	StartDate   domain.Date
	EndDate     domain.Date
	PricingType string
	Price       decimal.Decimal
	MinCapacity int
	MaxCapacity int
	MediaRef    string
}

func (d ServiceDraft) Validate() error {
	d.Name = strings.TrimSpace(d.Name)
	err := validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&d.Price, validation.By(func(any) error {
			if d.Price.IsNegative() {
				return errNegativePrice
			}
			return nil
		})),
		validation.Field(&d.EndDate, validation.By(func(any) error {
			if !d.EndDate.IsZero() && d.EndDate.Before(d.StartDate.Time) {
				return errEndBeforeStart
			}
			return nil
		})),
		validation.Field(&d.MinCapacity, validation.Min(0)),
		validation.Field(&d.MaxCapacity, validation.Min(0), validation.By(func(any) error {
			if d.MaxCapacity > 0 && d.MaxCapacity < d.MinCapacity {
				return errCapacityOutOfOrder
			}
			return nil
		})),
	)
	if err != nil {
		return domain.InvalidInput(err)
	}
	return nil
}

type CatalogService struct {
	store Store
}

func NewCatalogService(store Store) *CatalogService {
	return &CatalogService{
		store: store,
	}
}

func (s *CatalogService) CreateEvent(ctx context.Context, organizerID uint, draft EventDraft) (domain.Event, error) {
	if err := draft.Validate(); err != nil {
		return domain.Event{}, err
	}

	var created domain.Event
	err := s.store.Update(ctx, func(tx *repository.Tx) error {
		i, ok := tx.FindUser(organizerID)
		if !ok {
			return domain.ErrUserNotFound
		}
		if !tx.Users[i].IsOrganizer() {
			return domain.ErrIllegalUser
		}

		created = draft.event()
		created.ID = tx.NextID(repository.Events)
		created.OrganizerID = organizerID
		created.TicketTypes = append([]domain.TicketType(nil), draft.TicketTypes...)
		tx.Events = append(tx.Events, created)
		tx.Touch(repository.Events)
		return nil
	})
	metrics.TrackOperation("event_create", err)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.store.Update -> %w", err)
	}

	zap.L().Info("event created", zap.Uint("event_id", created.ID), zap.Uint("organizer_id", organizerID))
	return created, nil
}

func (s *CatalogService) GetEvent(ctx context.Context, eventID uint) (domain.Event, error) {
	var ev domain.Event
	err := s.store.View(ctx, func(snap *repository.Snapshot) error {
		i, ok := snap.FindEvent(eventID)
		if !ok {
			return domain.ErrEventNotFound
		}
		ev = snap.Events[i]
		return nil
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.store.View -> %w", err)
	}

	return ev, nil
}

// ListEvents returns every event, or only the organizer's when organizerID
// is set.
func (s *CatalogService) ListEvents(ctx context.Context, organizerID uint) ([]domain.Event, error) {
	out := []domain.Event{}
	err := s.store.View(ctx, func(snap *repository.Snapshot) error {
		for _, ev := range snap.Events {
			if organizerID == 0 || ev.OrganizerID == organizerID {
				out = append(out, ev)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("s.store.View -> %w", err)
	}

	return out, nil
}

func (s *CatalogService) CreateService(ctx context.Context, vendorID uint, draft ServiceDraft) (domain.Service, error) {
	if err := draft.Validate(); err != nil {
		return domain.Service{}, err
	}

	var created domain.Service
	err := s.store.Update(ctx, func(tx *repository.Tx) error {
		i, ok := tx.FindUser(vendorID)
		if !ok {
			return domain.ErrUserNotFound
		}
		if !tx.Users[i].IsVendor() {
			return domain.ErrIllegalUser
		}

		created = domain.Service{
			ID:          tx.NextID(repository.Services),
			VendorID:    vendorID,
			Name:        strings.TrimSpace(draft.Name),
			Type:        draft.Type,
			Description: draft.Description,
			StartDate:   draft.StartDate,
			EndDate:     draft.EndDate,
			PricingType: draft.PricingType,
			Price:       draft.Price,
			MinCapacity: draft.MinCapacity,
			MaxCapacity: draft.MaxCapacity,
			MediaRef:    draft.MediaRef,
			Status:      domain.ServiceAvailable,
		}
		tx.Services = append(tx.Services, created)
		tx.Touch(repository.Services)
		return nil
	})
	metrics.TrackOperation("service_create", err)
	if err != nil {
		return domain.Service{}, fmt.Errorf("s.store.Update -> %w", err)
	}

	zap.L().Info("service created", zap.Uint("service_id", created.ID), zap.Uint("vendor_id", vendorID))
	return created, nil
}

// ListServices returns every service, or only the vendor's when vendorID
// is set.
func (s *CatalogService) ListServices(ctx context.Context, vendorID uint) ([]domain.Service, error) {
	out := []domain.Service{}
	err := s.store.View(ctx, func(snap *repository.Snapshot) error {
		for _, sv := range snap.Services {
			if vendorID == 0 || sv.VendorID == vendorID {
				out = append(out, sv)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("s.store.View -> %w", err)
	}

	return out, nil
}
