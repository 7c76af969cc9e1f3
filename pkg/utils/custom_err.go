package utils

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDestinationNotFound = errors.New("destination not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrTicketNotPaid       = errors.New("ticket not paid")
	ErrGatewayUnavailable  = errors.New("payment gateway unavailable")
	ErrInvalidSignature    = errors.New("invalid notification signature")
	ErrOrderAlreadyExists  = errors.New("order id already exists")
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrInvalidPage         = errors.New("invalid page parameter")
	ErrInvalidPageSize     = errors.New("invalid page size parameter")
	ErrDatabaseError       = errors.New("database error")
)

// FieldError describes a single invalid input field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationErrors collects every invalid field of a request so the
// caller can report all of them at once instead of one per attempt.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Reason))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
