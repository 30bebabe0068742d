package response

import (
	"github.com/shopspring/decimal"

	"github.com/vietanh2810/eventhub/internal/domain"
	"github.com/vietanh2810/eventhub/internal/service"
)

// User never carries the password hash.
type User struct {
	ID      uint            `json:"user_id"`
	Email   string          `json:"email"`
	Name    string          `json:"name"`
	Surname string          `json:"surname"`
	Phone   string          `json:"phone"`
	Type    domain.UserType `json:"type"`
	Credit  decimal.Decimal `json:"credit"`
}

func NewUser(u domain.User) User {
	return User{
		ID:      u.ID,
		Email:   u.Email,
		Name:    u.Name,
		Surname: u.Surname,
		Phone:   u.Phone,
		Type:    u.Type,
		Credit:  u.Credit,
	}
}

type LoginResponse struct {
	User User `json:"user"`
}

type Balance struct {
	UserID uint            `json:"user_id"`
	Credit decimal.Decimal `json:"credit"`
}

type Purchase struct {
	Tickets           []domain.Ticket `json:"tickets"`
	Total             decimal.Decimal `json:"total"`
	CreditUsed        decimal.Decimal `json:"credit_used"`
	ExternallySettled decimal.Decimal `json:"externally_settled"`
}

func NewPurchase(r service.PurchaseReceipt) Purchase {
	return Purchase{
		Tickets:           r.Tickets,
		Total:             r.Total,
		CreditUsed:        r.CreditUsed,
		ExternallySettled: r.ExternallySettled,
	}
}

type Refund struct {
	Tickets []domain.Ticket    `json:"tickets"`
	Total   decimal.Decimal    `json:"total"`
	Mode    service.RefundMode `json:"mode"`
}

func NewRefund(r service.RefundReceipt) Refund {
	return Refund{
		Tickets: r.Tickets,
		Total:   r.Total,
		Mode:    r.Mode,
	}
}

type Created struct {
	ID uint `json:"id"`
}
