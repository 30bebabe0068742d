package repository

import (
	"time"

	"github.com/vietanh2810/eventhub/internal/domain"
	"github.com/vietanh2810/eventhub/internal/repository/dao"
)

// localWall reads back a timestamp-without-zone column. The driver hands
// it over as UTC; the stored wall clock is local time.
func localWall(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	return time.Date(y, mo, d, h, mi, s, t.Nanosecond(), time.Local)
}

func userDaoToDomain(u dao.User) domain.User {
	return domain.User{
		ID:       u.ID,
		Email:    u.Email,
		Password: u.Password,
		Name:     u.Name,
		Surname:  u.Surname,
		Phone:    u.Phone,
		Type:     domain.UserType(u.Type),
		Credit:   u.Credit,
	}
}

func userDomainToDao(u domain.User) dao.User {
	return dao.User{
		ID:       u.ID,
		Email:    u.Email,
		Password: u.Password,
		Name:     u.Name,
		Surname:  u.Surname,
		Phone:    u.Phone,
		Type:     string(u.Type),
		Credit:   u.Credit,
	}
}

func eventDaoToDomain(e dao.Event) domain.Event {
	types := make([]domain.TicketType, 0, len(e.TicketTypes))
	for _, tt := range e.TicketTypes {
		types = append(types, domain.TicketType{
			Type:          tt.Type,
			Price:         tt.Price,
			TotalQuantity: tt.TotalQuantity,
		})
	}

	return domain.Event{
		ID:                   e.ID,
		OrganizerID:          e.OrganizerID,
		Title:                e.Title,
		StartDate:            domain.Date{Time: localWall(e.StartDate)},
		EndDate:              domain.Date{Time: localWall(e.EndDate)},
		StartTime:            e.StartTime,
		Location:             e.Location,
		Type:                 e.Type,
		Description:          e.Description,
		ImageRef:             e.ImageRef,
		TicketTypes:          types,
		TicketSaleDeadline:   domain.DateTime{Time: localWall(e.TicketSaleDeadline)},
		TicketCancelDeadline: domain.DateTime{Time: localWall(e.TicketCancelDeadline)},
	}
}

func eventDomainToDao(e domain.Event) dao.Event {
	types := make([]dao.TicketType, 0, len(e.TicketTypes))
	for i, tt := range e.TicketTypes {
		types = append(types, dao.TicketType{
			EventID:       e.ID,
			Position:      i,
			Type:          tt.Type,
			Price:         tt.Price,
			TotalQuantity: tt.TotalQuantity,
		})
	}

	return dao.Event{
		ID:                   e.ID,
		OrganizerID:          e.OrganizerID,
		Title:                e.Title,
		StartDate:            e.StartDate.Time,
		EndDate:              e.EndDate.Time,
		StartTime:            e.StartTime,
		Location:             e.Location,
		Type:                 e.Type,
		Description:          e.Description,
		ImageRef:             e.ImageRef,
		TicketTypes:          types,
		TicketSaleDeadline:   e.TicketSaleDeadline.Time,
		TicketCancelDeadline: e.TicketCancelDeadline.Time,
	}
}

func serviceDaoToDomain(s dao.Service) domain.Service {
	return domain.Service{
		ID:          s.ID,
		VendorID:    s.VendorID,
		Name:        s.Name,
		Type:        s.Type,
		Description: s.Description,
		StartDate:   domain.Date{Time: localWall(s.StartDate)},
		EndDate:     domain.Date{Time: localWall(s.EndDate)},
		PricingType: s.PricingType,
		Price:       s.Price,
		MinCapacity: s.MinCapacity,
		MaxCapacity: s.MaxCapacity,
		MediaRef:    s.MediaRef,
		EventID:     s.EventID,
		Status:      domain.ServiceStatus(s.Status),
	}
}

func serviceDomainToDao(s domain.Service) dao.Service {
	return dao.Service{
		ID:          s.ID,
		VendorID:    s.VendorID,
		Name:        s.Name,
		Type:        s.Type,
		Description: s.Description,
		StartDate:   s.StartDate.Time,
		EndDate:     s.EndDate.Time,
		PricingType: s.PricingType,
		Price:       s.Price,
		MinCapacity: s.MinCapacity,
		MaxCapacity: s.MaxCapacity,
		MediaRef:    s.MediaRef,
		EventID:     s.EventID,
		Status:      string(s.Status),
	}
}

func ticketDaoToDomain(t dao.Ticket) domain.Ticket {
	return domain.Ticket{
		ID:             t.ID,
		EventID:        t.EventID,
		UserID:         t.UserID,
		TicketType:     t.TicketType,
		QuantityBought: t.QuantityBought,
		Price:          t.Price,
		PurchaseDate:   domain.Timestamp{Time: localWall(t.PurchaseDate)},
		Status:         domain.TicketStatus(t.Status),
		QRCode:         t.QRCode,
	}
}

func ticketDomainToDao(t domain.Ticket) dao.Ticket {
	return dao.Ticket{
		ID:             t.ID,
		EventID:        t.EventID,
		UserID:         t.UserID,
		TicketType:     t.TicketType,
		QuantityBought: t.QuantityBought,
		Price:          t.Price,
		PurchaseDate:   t.PurchaseDate.Time,
		Status:         string(t.Status),
		QRCode:         t.QRCode,
	}
}

func collaborationDaoToDomain(r dao.CollaborationRequest) domain.CollaborationRequest {
	return domain.CollaborationRequest{
		ID:                r.ID,
		EventID:           r.EventID,
		OrganizerID:       r.OrganizerID,
		VendorID:          r.VendorID,
		ServiceID:         r.ServiceID,
		Status:            domain.RequestStatus(r.Status),
		Timestamp:         domain.Timestamp{Time: localWall(r.RequestedAt)},
		ResponseTimestamp: domain.Timestamp{Time: localWall(r.ResponseTimestamp)},
	}
}

func collaborationDomainToDao(r domain.CollaborationRequest) dao.CollaborationRequest {
	return dao.CollaborationRequest{
		ID:                r.ID,
		EventID:           r.EventID,
		OrganizerID:       r.OrganizerID,
		VendorID:          r.VendorID,
		ServiceID:         r.ServiceID,
		Status:            string(r.Status),
		RequestedAt:       r.Timestamp.Time,
		ResponseTimestamp: r.ResponseTimestamp.Time,
	}
}

func transferDaoToDomain(r dao.TransferRequest) domain.TransferRequest {
	items := make([]domain.TransferItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, domain.TransferItem{
			SourceTicketID: it.SourceTicketID,
			TicketType:     it.TicketType,
			Quantity:       it.Quantity,
		})
	}

	return domain.TransferRequest{
		ID:                r.ID,
		SenderID:          r.SenderID,
		RecipientID:       r.RecipientID,
		EventID:           r.EventID,
		Items:             items,
		Status:            domain.RequestStatus(r.Status),
		Timestamp:         domain.Timestamp{Time: localWall(r.RequestedAt)},
		ResponseTimestamp: domain.Timestamp{Time: localWall(r.ResponseTimestamp)},
		FailureReason:     r.FailureReason,
	}
}

func transferDomainToDao(r domain.TransferRequest) dao.TransferRequest {
	items := make([]dao.TransferItem, 0, len(r.Items))
	for i, it := range r.Items {
		items = append(items, dao.TransferItem{
			RequestID:      r.ID,
			Position:       i,
			SourceTicketID: it.SourceTicketID,
			TicketType:     it.TicketType,
			Quantity:       it.Quantity,
		})
	}

	return dao.TransferRequest{
		ID:                r.ID,
		SenderID:          r.SenderID,
		RecipientID:       r.RecipientID,
		EventID:           r.EventID,
		Items:             items,
		Status:            string(r.Status),
		RequestedAt:       r.Timestamp.Time,
		ResponseTimestamp: r.ResponseTimestamp.Time,
		FailureReason:     r.FailureReason,
	}
}

func reviewDaoToDomain(r dao.Review) domain.Review {
	return domain.Review{
		ID:          r.ID,
		Kind:        domain.ReviewKind(r.Kind),
		SubjectID:   r.SubjectID,
		EventID:     r.EventID,
		Rating:      r.Rating,
		Comments:    r.Comments,
		Suggestions: r.Suggestions,
		ReviewerID:  r.ReviewerID,
		CreatedAt:   domain.Timestamp{Time: localWall(r.PostedAt)},
		Status:      r.Status,
	}
}

func reviewDomainToDao(r domain.Review) dao.Review {
	return dao.Review{
		ID:          r.ID,
		Kind:        string(r.Kind),
		SubjectID:   r.SubjectID,
		EventID:     r.EventID,
		Rating:      r.Rating,
		Comments:    r.Comments,
		Suggestions: r.Suggestions,
		ReviewerID:  r.ReviewerID,
		PostedAt:    r.CreatedAt.Time,
		Status:      r.Status,
	}
}

func notificationDaoToDomain(n dao.Notification) (domain.Notification, error) {
	payload, err := domain.DecodePayload(domain.NotificationCategory(n.Category), n.Payload)
	if err != nil {
		return domain.Notification{}, err
	}

	return domain.Notification{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Body:      n.Body,
		Payload:   payload,
		CreatedAt: domain.Timestamp{Time: localWall(n.SentAt)},
		Read:      n.Read,
	}, nil
}

func notificationDomainToDao(n domain.Notification) (dao.Notification, error) {
	category, raw, err := domain.EncodePayload(n.Payload)
	if err != nil {
		return dao.Notification{}, err
	}

	return dao.Notification{
		ID:       n.ID,
		UserID:   n.UserID,
		Title:    n.Title,
		Body:     n.Body,
		Category: string(category),
		Payload:  raw,
		SentAt:   n.CreatedAt.Time,
		Read:     n.Read,
	}, nil
}
