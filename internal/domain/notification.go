package domain

import (
	"encoding/json"
	"fmt"
)

type NotificationCategory string

const (
	CategoryPlain                NotificationCategory = "plain"
	CategoryTransferRequest      NotificationCategory = "transfer_request"
	CategoryTransferOutcome      NotificationCategory = "transfer_outcome"
	CategoryCollaborationRequest NotificationCategory = "collaboration_request"
	CategoryCollaborationOutcome NotificationCategory = "collaboration_outcome"
	CategoryReviewPosted         NotificationCategory = "review_posted"
)

// NotificationPayload is one of the payload variants below.
type NotificationPayload interface {
	Category() NotificationCategory
}

type PlainPayload struct{}

// RawPayload carries a category this build does not know. It is written
// back exactly as it was read.
type RawPayload struct {
	Kind NotificationCategory
	Data json.RawMessage
}

type PendingTransferPayload struct {
	RequestID  uint           `json:"request_id"`
	SenderID   uint           `json:"sender_id"`
	SenderName string         `json:"sender_name"`
	EventID    uint           `json:"event_id"`
	EventTitle string         `json:"event_title"`
	Items      []TransferItem `json:"items"`
}

type TransferOutcomePayload struct {
	RequestID uint          `json:"request_id"`
	EventID   uint          `json:"event_id"`
	Status    RequestStatus `json:"status"`
	Reason    string        `json:"reason,omitempty"`
}

type PendingCollaborationPayload struct {
	RequestID      uint   `json:"request_id"`
	OrganizerID    uint   `json:"organizer_id"`
	OrganizerName  string `json:"organizer_name"`
	OrganizerEmail string `json:"organizer_email"`
	OrganizerPhone string `json:"organizer_phone"`
	EventID        uint   `json:"event_id"`
	EventTitle     string `json:"event_title"`
	EventDate      Date   `json:"event_date"`
	EventLocation  string `json:"event_location"`
	ServiceID      uint   `json:"service_id"`
	ServiceName    string `json:"service_name"`
}

type CollaborationOutcomePayload struct {
	RequestID uint          `json:"request_id"`
	EventID   uint          `json:"event_id"`
	ServiceID uint          `json:"service_id"`
	Status    RequestStatus `json:"status"`
}

type ReviewPostedPayload struct {
	ReviewID uint       `json:"review_id"`
	Kind     ReviewKind `json:"kind"`
	EventID  uint       `json:"event_id"`
	Rating   float64    `json:"rating"`
}

func (PlainPayload) Category() NotificationCategory { return CategoryPlain }
func (PendingTransferPayload) Category() NotificationCategory {
	return CategoryTransferRequest
}
func (TransferOutcomePayload) Category() NotificationCategory {
	return CategoryTransferOutcome
}
func (PendingCollaborationPayload) Category() NotificationCategory {
	return CategoryCollaborationRequest
}
func (CollaborationOutcomePayload) Category() NotificationCategory {
	return CategoryCollaborationOutcome
}
func (ReviewPostedPayload) Category() NotificationCategory { return CategoryReviewPosted }
func (p RawPayload) Category() NotificationCategory { return p.Kind }

// PendingRequestID returns the action-request id the UI needs to render
// an accept/reject affordance.
func PendingRequestID(p NotificationPayload) (uint, bool) {
	switch v := p.(type) {
	case PendingTransferPayload:
		return v.RequestID, true
	case PendingCollaborationPayload:
		return v.RequestID, true
	}
	return 0, false
}

type Notification struct {
	ID        uint
	UserID    uint
	Title     string
	Body      string
	Payload   NotificationPayload
	CreatedAt Timestamp
	Read      bool
}

func (n Notification) Category() NotificationCategory {
	if n.Payload == nil {
		return CategoryPlain
	}
	return n.Payload.Category()
}

type notificationWire struct {
	ID        uint                 `json:"notification_id"`
	UserID    uint                 `json:"user_id"`
	Title     string               `json:"title"`
	Body      string               `json:"body"`
	Category  NotificationCategory `json:"category"`
	Payload   json.RawMessage      `json:"payload,omitempty"`
	CreatedAt Timestamp            `json:"created_at"`
	Read      bool                 `json:"read"`
}

func (n Notification) MarshalJSON() ([]byte, error) {
	category, raw, err := EncodePayload(n.Payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(notificationWire{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Body:      n.Body,
		Category:  category,
		Payload:   raw,
		CreatedAt: n.CreatedAt,
		Read:      n.Read,
	})
}

func (n *Notification) UnmarshalJSON(data []byte) error {
	var wire notificationWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	payload, err := DecodePayload(wire.Category, wire.Payload)
	if err != nil {
		return fmt.Errorf("notification %d -> %w", wire.ID, err)
	}
	*n = Notification{
		ID:        wire.ID,
		UserID:    wire.UserID,
		Title:     wire.Title,
		Body:      wire.Body,
		Payload:   payload,
		CreatedAt: wire.CreatedAt,
		Read:      wire.Read,
	}
	return nil
}

func EncodePayload(p NotificationPayload) (NotificationCategory, json.RawMessage, error) {
	if p == nil {
		p = PlainPayload{}
	}
	switch v := p.(type) {
	case PlainPayload:
		return CategoryPlain, nil, nil
	case RawPayload:
		return v.Kind, v.Data, nil
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return "", nil, err
	}
	return p.Category(), raw, nil
}

// DecodePayload keeps categories it does not know as a RawPayload.
func DecodePayload(category NotificationCategory, raw json.RawMessage) (NotificationPayload, error) {
	var (
		p   NotificationPayload
		err error
	)
	switch category {
	case CategoryTransferRequest:
		var v PendingTransferPayload
		err = decodeRaw(raw, &v)
		p = v
	case CategoryTransferOutcome:
		var v TransferOutcomePayload
		err = decodeRaw(raw, &v)
		p = v
	case CategoryCollaborationRequest:
		var v PendingCollaborationPayload
		err = decodeRaw(raw, &v)
		p = v
	case CategoryCollaborationOutcome:
		var v CollaborationOutcomePayload
		err = decodeRaw(raw, &v)
		p = v
	case CategoryReviewPosted:
		var v ReviewPostedPayload
		err = decodeRaw(raw, &v)
		p = v
	case "", CategoryPlain:
		p = PlainPayload{}
	default:
		p = RawPayload{Kind: category, Data: append(json.RawMessage(nil), raw...)}
	}
	if err != nil {
		return nil, fmt.Errorf("payload %s -> %w", category, err)
	}
	return p, nil
}

func decodeRaw(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, v)
}
