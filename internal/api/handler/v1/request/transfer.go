package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/vietanh2810/eventhub/internal/service"
)

type TransferItem struct {
	SourceTicketID uint `json:"source_ticket_id"`
	Quantity       int  `json:"quantity"`
}

func (it TransferItem) Validate() error {
	return validation.ValidateStruct(
		&it,
		validation.Field(&it.SourceTicketID, validation.Required),
		validation.Field(&it.Quantity, validation.Required, validation.Min(1)),
	)
}

type TransferRequest struct {
	RecipientEmail string         `json:"recipient_email"`
	Items          []TransferItem `json:"items"`
}

func (req *TransferRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.RecipientEmail, validation.Required, is.Email),
		validation.Field(&req.Items, validation.Required),
	)
}

func (req *TransferRequest) Lines() []service.TransferLine {
	out := make([]service.TransferLine, 0, len(req.Items))
	for _, it := range req.Items {
		out = append(out, service.TransferLine{SourceTicketID: it.SourceTicketID, Quantity: it.Quantity})
	}
	return out
}

// RespondRequest answers a pending transfer or collaboration request.
type RespondRequest struct {
	Accept *bool `json:"accept"`
}

func (req *RespondRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Accept, validation.NotNil),
	)
}
