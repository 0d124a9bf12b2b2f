package services

import "errors"

// validation
var (
	ErrInvalidFee      = errors.New("fee must be a non-negative number")
	ErrInvalidFeeType  = errors.New("feeType must be percentage or flat")
	ErrInvalidCategory = errors.New("category must be offline, online or foodDelivery")
	ErrNameRequired    = errors.New("name is required")
	ErrInvalidCapacity = errors.New("capacity must be a positive integer")
	ErrInvalidStatus   = errors.New("status must be available, occupied or reserved")
)

// lookups and rules
var (
	ErrMethodNotFound      = errors.New("payment method not found")
	ErrDefaultMethodDelete = errors.New("default payment methods cannot be deleted")
	ErrMethodDisabled      = errors.New("payment method is disabled")
	ErrTableNotFound       = errors.New("table not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrCartEmpty           = errors.New("cart is empty")
	ErrSessionNotFound     = errors.New("session not found")
)

// Outcome reports how a write that always applies locally went on the backend.
type Outcome struct {
	Degraded bool   `json:"degraded"`
	Warning  string `json:"warning,omitempty"`
}

func degraded(err error) Outcome {
	return Outcome{Degraded: true, Warning: "saved locally, backend unavailable: " + err.Error()}
}
