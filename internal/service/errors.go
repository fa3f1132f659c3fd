package service

import "errors"

// Error taxonomy surfaced to handlers. Services wrap these with
// fmt.Errorf("%w: detail") and handlers map them to status codes with
// errors.Is. Anything else propagates as an unclassified 500.
var (
	ErrValidation        = errors.New("validation error")         // 400
	ErrTokenInvalid      = errors.New("invalid or expired token") // 400
	ErrEmptyCart         = errors.New("cart is empty")            // 400
	ErrInsufficientStock = errors.New("insufficient stock")       // 400
	ErrUnauthorized      = errors.New("unauthorized")             // 401
	ErrForbidden         = errors.New("forbidden")                // 403
	ErrNotFound          = errors.New("not found")                // 404
	ErrConflict          = errors.New("conflict")                 // 409
)
