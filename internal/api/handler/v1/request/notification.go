package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type NotificationRequest struct {
	UserID uint   `json:"user_id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

func (req *NotificationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Body, validation.Length(0, 2000)),
	)
}
