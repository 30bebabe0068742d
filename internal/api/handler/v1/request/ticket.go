package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/eventhub/internal/service"
)

type TicketLine struct {
	TicketType string `json:"ticket_type"`
	Quantity   int    `json:"quantity"`
}

func (l TicketLine) Validate() error {
	return validation.ValidateStruct(
		&l,
		validation.Field(&l.TicketType, validation.Required),
		validation.Field(&l.Quantity, validation.Required, validation.Min(1)),
	)
}

func toQuantities(lines []TicketLine) []service.TicketQuantity {
	out := make([]service.TicketQuantity, 0, len(lines))
	for _, l := range lines {
		out = append(out, service.TicketQuantity{TicketType: l.TicketType, Quantity: l.Quantity})
	}
	return out
}

type PurchaseRequest struct {
	Lines       []TicketLine `json:"lines"`
	PaymentMode string       `json:"payment_mode" enums:"external,credit_first,credit_only"`
}

func (req *PurchaseRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Lines, validation.Required),
		validation.Field(&req.PaymentMode, validation.Required, validation.In(
			string(service.PayExternal), string(service.PayCreditFirst), string(service.PayCreditOnly),
		)),
	)
}

func (req *PurchaseRequest) Cart() []service.TicketQuantity {
	return toQuantities(req.Lines)
}

type RefundRequest struct {
	Lines      []TicketLine `json:"lines"`
	RefundMode string       `json:"refund_mode" enums:"refund,credit"`
}

func (req *RefundRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Lines, validation.Required),
		validation.Field(&req.RefundMode, validation.Required, validation.In(
			string(service.RefundExternal), string(service.RefundToCredit),
		)),
	)
}

func (req *RefundRequest) Selections() []service.TicketQuantity {
	return toQuantities(req.Lines)
}
