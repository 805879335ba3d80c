package delivery

import "errors"

var (
	ErrNotFound        = errors.New("delivery not found")
	ErrDuplicateOrder  = errors.New("order already has a delivery")
	ErrAlreadyAssigned = errors.New("delivery already assigned to another rider")
	ErrInvalidState    = errors.New("invalid state for this operation")
	ErrCodeMismatch    = errors.New("code does not match")
	ErrMalformedCode   = errors.New("code must be 6 digits")
	ErrReasonRequired  = errors.New("cancellation reason is required")
	ErrRiderNotFound   = errors.New("rider not found")
	ErrRiderNotActive  = errors.New("rider is not active")
	ErrNotParticipant  = errors.New("caller is not a party to this delivery")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidInput    = errors.New("invalid delivery input")
)
