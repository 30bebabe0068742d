package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/vietanh2810/eventhub/internal/domain"
	"github.com/vietanh2810/eventhub/internal/service"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Phone    string `json:"phone"`
	Type     string `json:"type" enums:"Attendee,Organizer,Vendor"`
}

// Validate covers the shape of the body. The password policy is enforced
// by the account service.
func (req *RegisterRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Surname, validation.Length(0, 100)),
		validation.Field(&req.Phone, validation.Length(0, 30)),
		validation.Field(&req.Type, validation.Required, validation.In(
			string(domain.UserAttendee), string(domain.UserOrganizer), string(domain.UserVendor),
		)),
	)
}

func (req *RegisterRequest) Registration() service.Registration {
	return service.Registration{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Surname:  req.Surname,
		Phone:    req.Phone,
		Type:     domain.UserType(req.Type),
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
	)
}
