package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CollaborationRequest struct {
	VendorID  uint `json:"vendor_id"`
	ServiceID uint `json:"service_id"`
}

func (req *CollaborationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.VendorID, validation.Required),
		validation.Field(&req.ServiceID, validation.Required),
	)
}
