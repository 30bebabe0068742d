package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// Credit and prices are persisted as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type UserType string

const (
	UserAttendee  UserType = "Attendee"
	UserOrganizer UserType = "Organizer"
	UserVendor    UserType = "Vendor"
)

func (t UserType) Valid() bool {
	switch t {
	case UserAttendee, UserOrganizer, UserVendor:
		return true
	}
	return false
}

// User is tagged by Type. Credit is only meaningful for attendees and
// stays zero for the other roles.
type User struct {
	ID       uint            `json:"user_id"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Name     string          `json:"name"`
	Surname  string          `json:"surname"`
	Phone    string          `json:"phone"`
	Type     UserType        `json:"type"`
	Credit   decimal.Decimal `json:"credit"`
}

func (u User) IsAttendee() bool  { return u.Type == UserAttendee }
func (u User) IsOrganizer() bool { return u.Type == UserOrganizer }
func (u User) IsVendor() bool    { return u.Type == UserVendor }

func (u User) FullName() string {
	return strings.TrimSpace(u.Name + " " + u.Surname)
}

// SameEmail compares addresses the way uniqueness is enforced.
func SameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
