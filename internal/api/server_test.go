package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/vietanh2810/eventhub/internal/api/handler/v1/response"
	"github.com/vietanh2810/eventhub/internal/clock"
	"github.com/vietanh2810/eventhub/internal/config"
	"github.com/vietanh2810/eventhub/internal/domain"
	"github.com/vietanh2810/eventhub/internal/repository"
)

type ServerSuite struct {
	suite.Suite
	server *Server
	clock  *clock.Fake

	organizerID uint
	attendeeID  uint
	eventID     uint
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) SetupTest() {
	store, err := repository.Open(context.Background(), repository.NewMemoryPersister(nil))
	s.Require().NoError(err)

	s.clock = clock.NewFake(time.Date(2026, time.May, 1, 10, 0, 0, 0, time.Local))
	conf := &config.AppConfig{
		API: &config.APIConfig{BaseURL: "localhost:8080"},
		Gin: &config.GinConfig{Mode: gin.TestMode},
	}
	s.server = NewServer(conf, store, s.clock)

	s.organizerID = s.register("olga@example.com", "Organizer")
	s.attendeeID = s.register("ana@example.com", "Attendee")

	rec := s.do(http.MethodPost, "/api/v1/events", s.organizerID, map[string]any{
		"title":      "Jazz Night",
		"start_date": "10/06/2026",
		"end_date":   "11/06/2026",
		"start_time": "20:00",
		"location":   "Lyon",
		"ticket_types": []map[string]any{
			{"type": "Regular", "price": 20, "total_quantity": 50},
		},
		"ticket_sale_deadline":   "10/06/2026 18:00",
		"ticket_cancel_deadline": "09/06/2026 12:00",
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var ev domain.Event
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &ev))
	s.eventID = ev.ID
}

func (s *ServerSuite) do(method, path string, userID uint, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req.Header.Set("X-User-ID", fmt.Sprint(userID))
	}
	rec := httptest.NewRecorder()
	s.server.Router.ServeHTTP(rec, req)
	return rec
}

func (s *ServerSuite) register(email, role string) uint {
	rec := s.do(http.MethodPost, "/api/v1/accounts/register", 0, map[string]any{
		"email":    email,
		"password": "secret123",
		"name":     "Test",
		"type":     role,
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var u response.User
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &u))
	return u.ID
}

func decodeErr(t require.TestingT, rec *httptest.ResponseRecorder) response.Err {
	var e response.Err
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e
}

func (s *ServerSuite) TestHealthcheckAndMetrics() {
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/", 0, nil).Code)
	rec := s.do(http.MethodGet, "/metrics", 0, nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "eventhub_operations_total")
}

func (s *ServerSuite) TestRegisterHidesPassword() {
	rec := s.do(http.MethodPost, "/api/v1/accounts/login", 0, map[string]any{
		"email": "ANA@example.com", "password": "secret123",
	})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.NotContains(rec.Body.String(), "password")

	rec = s.do(http.MethodPost, "/api/v1/accounts/login", 0, map[string]any{
		"email": "ana@example.com", "password": "nope12345",
	})
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(domain.CodeInvalidCredentials), decodeErr(s.T(), rec).Code)

	rec = s.do(http.MethodPost, "/api/v1/accounts/register", 0, map[string]any{
		"email": "Ana@Example.com", "password": "secret123", "name": "Dup", "type": "Attendee",
	})
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(domain.CodeEmailTaken), decodeErr(s.T(), rec).Code)
}

func (s *ServerSuite) TestIdentityRequired() {
	s.Equal(http.StatusUnauthorized, s.do(http.MethodGet, "/api/v1/tickets", 0, nil).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tickets", nil)
	req.Header.Set("X-User-ID", "abc")
	rec := httptest.NewRecorder()
	s.server.Router.ServeHTTP(rec, req)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *ServerSuite) TestPurchaseRefundAndQRCode() {
	path := fmt.Sprintf("/api/v1/events/%d/tickets/purchase", s.eventID)
	rec := s.do(http.MethodPost, path, s.attendeeID, map[string]any{
		"lines":        []map[string]any{{"ticket_type": "Regular", "quantity": 2}},
		"payment_mode": "external",
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var receipt response.Purchase
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &receipt))
	s.Require().Len(receipt.Tickets, 1)
	s.Equal("40", receipt.Total.String())

	qr := s.do(http.MethodGet, fmt.Sprintf("/api/v1/tickets/%d/qr?size=128", receipt.Tickets[0].ID), s.attendeeID, nil)
	s.Equal(http.StatusOK, qr.Code)
	s.Equal("image/png", qr.Header().Get("Content-Type"))

	forbidden := s.do(http.MethodGet, fmt.Sprintf("/api/v1/tickets/%d/qr", receipt.Tickets[0].ID), s.organizerID, nil)
	s.Equal(http.StatusForbidden, forbidden.Code)

	rec = s.do(http.MethodPost, fmt.Sprintf("/api/v1/events/%d/tickets/refund", s.eventID), s.attendeeID, map[string]any{
		"lines":       []map[string]any{{"ticket_type": "Regular", "quantity": 1}},
		"refund_mode": "credit",
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/v1/me/credit", s.attendeeID, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var balance response.Balance
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &balance))
	s.Equal("20", balance.Credit.String())
}

func (s *ServerSuite) TestDomainErrorsMapToStatus() {
	path := fmt.Sprintf("/api/v1/events/%d/tickets/purchase", s.eventID)

	rec := s.do(http.MethodPost, path, s.attendeeID, map[string]any{
		"lines":        []map[string]any{{"ticket_type": "Regular", "quantity": 51}},
		"payment_mode": "external",
	})
	s.Equal(http.StatusConflict, rec.Code)
	e := decodeErr(s.T(), rec)
	s.Equal(string(domain.CodeInsufficientInventory), e.Code)
	s.Equal(string(domain.KindState), e.Kind)

	rec = s.do(http.MethodPost, "/api/v1/events/999/tickets/purchase", s.attendeeID, map[string]any{
		"lines":        []map[string]any{{"ticket_type": "Regular", "quantity": 1}},
		"payment_mode": "external",
	})
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPost, path, s.attendeeID, map[string]any{
		"lines":        []map[string]any{{"ticket_type": "Regular", "quantity": 1}},
		"payment_mode": "barter",
	})
	s.Equal(http.StatusBadRequest, rec.Code)

	s.clock.Set(time.Date(2026, time.June, 10, 18, 0, 0, 0, time.Local))
	rec = s.do(http.MethodPost, path, s.attendeeID, map[string]any{
		"lines":        []map[string]any{{"ticket_type": "Regular", "quantity": 1}},
		"payment_mode": "external",
	})
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal(string(domain.CodeSaleWindowClosed), decodeErr(s.T(), rec).Code)
}

func (s *ServerSuite) TestNotificationsFlow() {
	rec := s.do(http.MethodPost, "/api/v1/notifications", s.organizerID, map[string]any{
		"user_id": s.attendeeID, "title": "Doors open at 19:00",
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var created response.Created
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))

	rec = s.do(http.MethodPost, fmt.Sprintf("/api/v1/notifications/%d/read", created.ID), s.attendeeID, nil)
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/notifications", s.attendeeID, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var list []map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &list))
	s.Require().Len(list, 1)
	s.Equal(true, list[0]["read"])
	s.Equal("plain", list[0]["category"])
}

func TestRespondRequiresAnswer(t *testing.T) {
	store, err := repository.Open(context.Background(), repository.NewMemoryPersister(nil))
	require.NoError(t, err)
	s := NewServer(&config.AppConfig{API: &config.APIConfig{}, Gin: &config.GinConfig{Mode: gin.TestMode}}, store, clock.Real())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transfers/1/respond", bytes.NewBufferString(`{}`))
	req.Header.Set("X-User-ID", "1")
	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
