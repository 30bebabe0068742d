package domain

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindInput         ErrorKind = "input"
	KindAuthorization ErrorKind = "authorization"
	KindTiming        ErrorKind = "timing"
	KindState         ErrorKind = "state"
	KindStorage       ErrorKind = "storage"
)

type ErrorCode string

const (
	CodeEventNotFound        ErrorCode = "EventNotFound"
	CodeUserNotFound         ErrorCode = "UserNotFound"
	CodeTicketNotFound       ErrorCode = "TicketNotFound"
	CodeServiceNotFound      ErrorCode = "ServiceNotFound"
	CodeRequestNotFound      ErrorCode = "RequestNotFound"
	CodeNotificationNotFound ErrorCode = "NotificationNotFound"
	CodeUnknownTicketType    ErrorCode = "UnknownTicketType"
	CodeInvalidQuantity      ErrorCode = "InvalidQuantity"
	CodeEmptySelection       ErrorCode = "EmptySelection"
	CodeRecipientInvalid     ErrorCode = "RecipientInvalid"
	CodeIllegalUser          ErrorCode = "IllegalUser"
	CodeMissingRating        ErrorCode = "MissingRating"
	CodeMissingComment       ErrorCode = "MissingComment"
	CodeInvalidInput         ErrorCode = "InvalidInput"
	CodeEmailTaken           ErrorCode = "EmailTaken"
	CodeWeakPassword         ErrorCode = "WeakPassword"
	CodeInvalidCredentials   ErrorCode = "InvalidCredentials"

	CodeUnauthorizedReviewer ErrorCode = "UnauthorizedReviewer"
	CodeOwnershipMismatch    ErrorCode = "OwnershipMismatch"

	CodeSaleWindowClosed   ErrorCode = "SaleWindowClosed"
	CodeCancelWindowClosed ErrorCode = "CancelWindowClosed"
	CodeEventNotStarted    ErrorCode = "EventNotStarted"
	CodeEventNotCompleted  ErrorCode = "EventNotCompleted"

	CodeInsufficientInventory ErrorCode = "InsufficientInventory"
	CodeInsufficientOwnership ErrorCode = "InsufficientOwnership"
	CodeInsufficientCredit    ErrorCode = "InsufficientCredit"
	CodeRequestNotPending     ErrorCode = "RequestNotPending"
	CodeServiceUnavailable    ErrorCode = "ServiceUnavailable"

	CodeStorageFailure ErrorCode = "StorageFailure"
)

// Error is the single error type surfaced by the core. Callers switch on
// Kind to pick a user-facing message and use errors.Is against the
// sentinels below to match a specific Code.
type Error struct {
	Kind    ErrorKind
	Code    ErrorCode
	Subject string
	Err     error
}

func (e *Error) Error() string {
	msg := string(e.Code)
	if e.Subject != "" {
		msg = fmt.Sprintf("%s(%s)", msg, e.Subject)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Code. A sentinel without Subject matches every subject.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Code != e.Code {
		return false
	}
	return t.Subject == "" || t.Subject == e.Subject
}

func newError(kind ErrorKind, code ErrorCode) *Error {
	return &Error{Kind: kind, Code: code}
}

var (
	ErrEventNotFound        = newError(KindInput, CodeEventNotFound)
	ErrUserNotFound         = newError(KindInput, CodeUserNotFound)
	ErrTicketNotFound       = newError(KindInput, CodeTicketNotFound)
	ErrServiceNotFound      = newError(KindInput, CodeServiceNotFound)
	ErrRequestNotFound      = newError(KindInput, CodeRequestNotFound)
	ErrNotificationNotFound = newError(KindInput, CodeNotificationNotFound)
	ErrUnknownTicketType    = newError(KindInput, CodeUnknownTicketType)
	ErrInvalidQuantity      = newError(KindInput, CodeInvalidQuantity)
	ErrEmptySelection       = newError(KindInput, CodeEmptySelection)
	ErrRecipientInvalid     = newError(KindInput, CodeRecipientInvalid)
	ErrIllegalUser          = newError(KindInput, CodeIllegalUser)
	ErrMissingRating        = newError(KindInput, CodeMissingRating)
	ErrMissingComment       = newError(KindInput, CodeMissingComment)
	ErrInvalidInput         = newError(KindInput, CodeInvalidInput)
	ErrEmailTaken           = newError(KindInput, CodeEmailTaken)
	ErrWeakPassword         = newError(KindInput, CodeWeakPassword)
	ErrInvalidCredentials   = newError(KindInput, CodeInvalidCredentials)

	ErrUnauthorizedReviewer = newError(KindAuthorization, CodeUnauthorizedReviewer)
	ErrOwnershipMismatch    = newError(KindAuthorization, CodeOwnershipMismatch)

	ErrSaleWindowClosed   = newError(KindTiming, CodeSaleWindowClosed)
	ErrCancelWindowClosed = newError(KindTiming, CodeCancelWindowClosed)
	ErrEventNotStarted    = newError(KindTiming, CodeEventNotStarted)
	ErrEventNotCompleted  = newError(KindTiming, CodeEventNotCompleted)

	ErrInsufficientInventory = newError(KindState, CodeInsufficientInventory)
	ErrInsufficientOwnership = newError(KindState, CodeInsufficientOwnership)
	ErrInsufficientCredit    = newError(KindState, CodeInsufficientCredit)
	ErrRequestNotPending     = newError(KindState, CodeRequestNotPending)
	ErrServiceUnavailable    = newError(KindState, CodeServiceUnavailable)

	ErrStorageFailure = newError(KindStorage, CodeStorageFailure)
)

func UnknownTicketType(ticketType string) error {
	return &Error{Kind: KindInput, Code: CodeUnknownTicketType, Subject: ticketType}
}

func InsufficientInventory(ticketType string) error {
	return &Error{Kind: KindState, Code: CodeInsufficientInventory, Subject: ticketType}
}

func InsufficientOwnership(ticketType string) error {
	return &Error{Kind: KindState, Code: CodeInsufficientOwnership, Subject: ticketType}
}

func InvalidInput(err error) error {
	return &Error{Kind: KindInput, Code: CodeInvalidInput, Err: err}
}

func StorageFailure(err error) error {
	return &Error{Kind: KindStorage, Code: CodeStorageFailure, Err: err}
}

// KindOf reports the kind of a core error, or "" for foreign errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// CodeOf reports the code of a core error, or "" for foreign errors.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
