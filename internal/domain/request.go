package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestRejected RequestStatus = "rejected"
)

func (s RequestStatus) Terminal() bool {
	return s == RequestAccepted || s == RequestRejected
}

type CollaborationRequest struct {
	ID                uint          `json:"request_id"`
	EventID           uint          `json:"event_id"`
	OrganizerID       uint          `json:"organizer_id"`
	VendorID          uint          `json:"vendor_id"`
	ServiceID         uint          `json:"service_id"`
	Status            RequestStatus `json:"status"`
	Timestamp         Timestamp     `json:"timestamp"`
	ResponseTimestamp Timestamp     `json:"response_timestamp"`
}

// UnmarshalJSON accepts request ids written as timestamp-derived strings.
func (r *CollaborationRequest) UnmarshalJSON(data []byte) error {
	type plain CollaborationRequest
	var wire struct {
		plain
		ID json.RawMessage `json:"request_id"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	id, err := parseLegacyID(wire.ID)
	if err != nil {
		return err
	}
	*r = CollaborationRequest(wire.plain)
	r.ID = id
	return nil
}

// parseLegacyID reads a JSON number or a string whose digits form the id,
// e.g. "20240101120530".
func parseLegacyID(raw json.RawMessage) (uint, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, nil
	}
	if raw[0] != '"' {
		var n uint
		if err := json.Unmarshal(raw, &n); err != nil {
			return 0, fmt.Errorf("request_id %s -> %w", raw, err)
		}
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, err
	}
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
	if digits == "" {
		return 0, fmt.Errorf("request_id %q has no digits", s)
	}
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("request_id %q -> %w", s, err)
	}
	return uint(n), nil
}

type TransferItem struct {
	SourceTicketID uint   `json:"source_ticket_id"`
	TicketType     string `json:"ticket_type"`
	Quantity       int    `json:"quantity"`
}

type TransferRequest struct {
	ID                uint           `json:"request_id"`
	SenderID          uint           `json:"sender_id"`
	RecipientID       uint           `json:"recipient_id"`
	EventID           uint           `json:"event_id"`
	Items             []TransferItem `json:"items"`
	Status            RequestStatus  `json:"status"`
	Timestamp         Timestamp      `json:"timestamp"`
	ResponseTimestamp Timestamp      `json:"response_timestamp"`
	FailureReason     string         `json:"failure_reason,omitempty"`
}

func (r TransferRequest) TotalQuantity() int {
	total := 0
	for _, it := range r.Items {
		total += it.Quantity
	}
	return total
}
