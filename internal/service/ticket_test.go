package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/vietanh2810/eventhub/internal/domain"
)

type TicketServiceSuite struct {
	suite.Suite
	f   *fixture
	ctx context.Context
}

func TestTicketServiceSuite(t *testing.T) {
	suite.Run(t, new(TicketServiceSuite))
}

func (s *TicketServiceSuite) SetupTest() {
	s.f = newFixture(s.T())
	s.ctx = context.Background()
}

func (s *TicketServiceSuite) TestPurchaseWithPartialCredit() {
	receipt, err := s.f.tickets.Purchase(s.ctx, attendeeID, eventID, cart("Regular", 2), PayCreditFirst)
	s.Require().NoError(err)

	s.Equal(2, s.f.held(s.T(), attendeeID, "Regular"))
	s.Equal(48, s.f.remaining(s.T(), "Regular"))
	s.True(s.f.credit(s.T(), attendeeID).IsZero())
	s.Equal("40.00", receipt.Total.StringFixed(2))
	s.Equal("5.00", receipt.CreditUsed.StringFixed(2))
	s.Equal("35.00", receipt.ExternallySettled.StringFixed(2))

	s.Require().Len(receipt.Tickets, 1)
	tk := receipt.Tickets[0]
	s.Equal(domain.QRCodeFor(tk.ID, eventID, attendeeID), tk.QRCode)
	s.Equal(domain.TicketValid, tk.Status)
	s.Equal("20.00", tk.Price.StringFixed(2))
	s.f.requireInvariants(s.T())
}

func (s *TicketServiceSuite) TestPurchaseSaleWindowClosed() {
	s.f.clock.Set(at(2026, time.June, 10, 18, 1))
	before := s.f.persister.Commits()

	_, err := s.f.tickets.Purchase(s.ctx, attendeeID, eventID, cart("Regular", 1), PayExternal)
	s.ErrorIs(err, domain.ErrSaleWindowClosed)
	s.Equal(domain.KindTiming, domain.KindOf(err))
	s.Equal(before, s.f.persister.Commits())
	s.Equal(50, s.f.remaining(s.T(), "Regular"))
}

func (s *TicketServiceSuite) TestPurchaseAtDeadlineIsClosed() {
	s.f.clock.Set(at(2026, time.June, 10, 18, 0))

	_, err := s.f.tickets.Purchase(s.ctx, attendeeID, eventID, cart("Regular", 1), PayExternal)
	s.ErrorIs(err, domain.ErrSaleWindowClosed)
}

func (s *TicketServiceSuite) TestPurchaseMergesIntoValidLine() {
	_, err := s.f.tickets.Purchase(s.ctx, attendeeID, eventID, cart("VIP", 1), PayExternal)
	s.Require().NoError(err)
	_, err = s.f.tickets.Purchase(s.ctx, attendeeID, eventID, cart("VIP", 2), PayExternal)
	s.Require().NoError(err)

	list, err := s.f.tickets.ListTickets(s.ctx, attendeeID)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(3, list[0].QuantityBought)
	s.Equal(7, s.f.remaining(s.T(), "VIP"))
	s.f.requireInvariants(s.T())
}

func (s *TicketServiceSuite) TestPurchaseAbortsWholeCartOnInventory() {
	mixed := []TicketQuantity{
		{TicketType: "Regular", Quantity: 2},
		{TicketType: "VIP", Quantity: 11},
	}

	_, err := s.f.tickets.Purchase(s.ctx, attendeeID, eventID, mixed, PayCreditFirst)
	s.ErrorIs(err, domain.InsufficientInventory("VIP"))

	var coded *domain.Error
	s.Require().True(errors.As(err, &coded))
	s.Equal("VIP", coded.Subject)

	s.Equal(50, s.f.remaining(s.T(), "Regular"))
	s.Equal(0, s.f.held(s.T(), attendeeID, "Regular"))
	s.Equal("5.00", s.f.credit(s.T(), attendeeID).StringFixed(2))
}

func (s *TicketServiceSuite) TestPurchaseInputErrors() {
	_, err := s.f.tickets.Purchase(s.ctx, attendeeID, eventID, cart("Balcony", 1), PayExternal)
	s.ErrorIs(err, domain.ErrUnknownTicketType)

	_, err = s.f.tickets.Purchase(s.ctx, attendeeID, eventID, cart("Regular", 0), PayExternal)
	s.ErrorIs(err, domain.ErrInvalidQuantity)

	_, err = s.f.tickets.Purchase(s.ctx, attendeeID, 99, cart("Regular", 1), PayExternal)
	s.ErrorIs(err, domain.ErrEventNotFound)

	_, err = s.f.tickets.Purchase(s.ctx, organizerID, eventID, cart("Regular", 1), PayExternal)
	s.ErrorIs(err, domain.ErrIllegalUser)

	_, err = s.f.tickets.Purchase(s.ctx, attendeeID, eventID, nil, PayExternal)
	s.ErrorIs(err, domain.ErrEmptySelection)
}

func (s *TicketServiceSuite) TestPurchaseCreditOnly() {
	_, err := s.f.tickets.Purchase(s.ctx, attendeeID, eventID, cart("Regular", 1), PayCreditOnly)
	s.ErrorIs(err, domain.ErrInsufficientCredit)
	s.Equal(50, s.f.remaining(s.T(), "Regular"))

	s.Require().NoError(s.f.store.Update(s.ctx, creditUser(attendeeID, decimal.NewFromInt(100))))
	receipt, err := s.f.tickets.Purchase(s.ctx, attendeeID, eventID, cart("Regular", 1), PayCreditOnly)
	s.Require().NoError(err)
	s.True(receipt.ExternallySettled.IsZero())
	s.Equal("85.00", s.f.credit(s.T(), attendeeID).StringFixed(2))
}

func (s *TicketServiceSuite) TestRefundToCredit() {
	_, err := s.f.tickets.Purchase(s.ctx, attendeeID, eventID, cart("Regular", 2), PayCreditFirst)
	s.Require().NoError(err)

	receipt, err := s.f.tickets.Refund(s.ctx, attendeeID, eventID, cart("Regular", 1), RefundToCredit)
	s.Require().NoError(err)

	s.Equal(1, s.f.held(s.T(), attendeeID, "Regular"))
	s.Equal(49, s.f.remaining(s.T(), "Regular"))
	s.Equal("20.00", s.f.credit(s.T(), attendeeID).StringFixed(2))
	s.Equal("20.00", receipt.Total.StringFixed(2))
	s.f.requireInvariants(s.T())
}

func (s *TicketServiceSuite) TestRefundRoundTrip() {
	startCredit := s.f.credit(s.T(), attendeeID)

	_, err := s.f.tickets.Purchase(s.ctx, attendeeID, eventID, cart("VIP", 3), PayCreditFirst)
	s.Require().NoError(err)
	_, err = s.f.tickets.Refund(s.ctx, attendeeID, eventID, cart("VIP", 3), RefundToCredit)
	s.Require().NoError(err)

	s.Equal(configured["VIP"], s.f.remaining(s.T(), "VIP"))
	s.Equal(0, s.f.held(s.T(), attendeeID, "VIP"))
	// Refunding to credit returns the full price, the externally paid
	// part included.
	s.Equal(startCredit.Add(decimal.NewFromInt(145)).StringFixed(2), s.f.credit(s.T(), attendeeID).StringFixed(2))

	list, err := s.f.tickets.ListTickets(s.ctx, attendeeID)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(domain.TicketCancelled, list[0].Status)
	s.f.requireInvariants(s.T())
}

func (s *TicketServiceSuite) TestRefundTotalsFullAndPartialLines() {
	purchase := []TicketQuantity{{TicketType: "Regular", Quantity: 1}, {TicketType: "VIP", Quantity: 3}}
	_, err := s.f.tickets.Purchase(s.ctx, attendeeID, eventID, purchase, PayExternal)
	s.Require().NoError(err)

	refund := []TicketQuantity{{TicketType: "Regular", Quantity: 1}, {TicketType: "VIP", Quantity: 2}}
	receipt, err := s.f.tickets.Refund(s.ctx, attendeeID, eventID, refund, RefundExternal)
	s.Require().NoError(err)

	s.Equal("120.00", receipt.Total.StringFixed(2))
	s.Require().Len(receipt.Tickets, 2)
	for _, tk := range receipt.Tickets {
		switch tk.TicketType {
		case "Regular":
			s.Equal(domain.TicketCancelled, tk.Status)
			s.Equal(1, tk.QuantityBought)
		case "VIP":
			s.Equal(domain.TicketValid, tk.Status)
			s.Equal("50.00", tk.Total().StringFixed(2))
		}
	}
	s.f.requireInvariants(s.T())
}

func (s *TicketServiceSuite) TestRefundExternalLeavesCredit() {
	_, err := s.f.tickets.Purchase(s.ctx, attendeeID, eventID, cart("Regular", 2), PayExternal)
	s.Require().NoError(err)

	_, err = s.f.tickets.Refund(s.ctx, attendeeID, eventID, cart("Regular", 2), RefundExternal)
	s.Require().NoError(err)
	s.Equal("5.00", s.f.credit(s.T(), attendeeID).StringFixed(2))
	s.Equal(50, s.f.remaining(s.T(), "Regular"))
}

func (s *TicketServiceSuite) TestRefundFailures() {
	_, err := s.f.tickets.Purchase(s.ctx, attendeeID, eventID, cart("Regular", 1), PayExternal)
	s.Require().NoError(err)

	_, err = s.f.tickets.Refund(s.ctx, attendeeID, eventID, cart("Regular", 2), RefundToCredit)
	s.ErrorIs(err, domain.InsufficientOwnership("Regular"))

	s.f.clock.Set(at(2026, time.June, 9, 12, 1))
	_, err = s.f.tickets.Refund(s.ctx, attendeeID, eventID, cart("Regular", 1), RefundToCredit)
	s.ErrorIs(err, domain.ErrCancelWindowClosed)
	s.Equal(1, s.f.held(s.T(), attendeeID, "Regular"))
}

func (s *TicketServiceSuite) TestListTicketsPresentsUsedAfterEvent() {
	_, err := s.f.tickets.Purchase(s.ctx, attendeeID, eventID, cart("Regular", 1), PayExternal)
	s.Require().NoError(err)

	s.f.clock.Set(at(2026, time.June, 11, 23, 0))
	list, err := s.f.tickets.ListTickets(s.ctx, attendeeID)
	s.Require().NoError(err)
	s.Equal(domain.TicketValid, list[0].Status)

	s.f.clock.Set(at(2026, time.June, 12, 0, 1))
	list, err = s.f.tickets.ListTickets(s.ctx, attendeeID)
	s.Require().NoError(err)
	s.Equal(domain.TicketUsed, list[0].Status)

	// Never written back.
	s.Equal(domain.TicketValid, s.f.snapshot(s.T()).Tickets[0].Status)
}

func (s *TicketServiceSuite) TestTicketQRCode() {
	receipt, err := s.f.tickets.Purchase(s.ctx, attendeeID, eventID, cart("Regular", 1), PayExternal)
	s.Require().NoError(err)

	png, err := s.f.tickets.TicketQRCode(s.ctx, attendeeID, receipt.Tickets[0].ID, 128)
	s.Require().NoError(err)
	s.Equal([]byte{0x89, 'P', 'N', 'G'}, png[:4])

	_, err = s.f.tickets.TicketQRCode(s.ctx, bobID, receipt.Tickets[0].ID, 128)
	s.ErrorIs(err, domain.ErrOwnershipMismatch)
}

func (s *TicketServiceSuite) TestStorageFailureLeavesNoTrace() {
	s.f.persister.FailWith(errors.New("disk full"))

	_, err := s.f.tickets.Purchase(s.ctx, attendeeID, eventID, cart("Regular", 2), PayCreditFirst)
	s.ErrorIs(err, domain.ErrStorageFailure)

	s.f.persister.FailWith(nil)
	s.Equal(50, s.f.remaining(s.T(), "Regular"))
	s.Equal("5.00", s.f.credit(s.T(), attendeeID).StringFixed(2))
	s.Empty(s.f.snapshot(s.T()).Tickets)
}

func (s *TicketServiceSuite) TestRefundRoundTripPaidByCredit() {
	s.Require().NoError(s.f.store.Update(s.ctx, creditUser(attendeeID, decimal.NewFromInt(95))))
	before := s.f.credit(s.T(), attendeeID)

	_, err := s.f.tickets.Purchase(s.ctx, attendeeID, eventID, cart("VIP", 2), PayCreditOnly)
	s.Require().NoError(err)
	s.True(s.f.credit(s.T(), attendeeID).IsZero())

	_, err = s.f.tickets.Refund(s.ctx, attendeeID, eventID, cart("VIP", 2), RefundToCredit)
	s.Require().NoError(err)
	s.True(before.Equal(s.f.credit(s.T(), attendeeID)))
	s.Equal(configured["VIP"], s.f.remaining(s.T(), "VIP"))
}
