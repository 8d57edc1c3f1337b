package domain

import "errors"

// Failure reasons returned across component boundaries. Nothing panics;
// every operation hands one of these (possibly wrapped) back to the screen
// that triggered it.
var (
	ErrNotFound         = errors.New("not found")
	ErrItemNotFound     = errors.New("menu item not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrEmptyOrder       = errors.New("order has no lines")
	ErrInvalidQuantity  = errors.New("quantity must be a positive integer")
	ErrInvalidStatus    = errors.New("unknown order status")
	ErrDuplicateKey     = errors.New("key already exists")
	ErrValidation       = errors.New("validation failed")
	ErrMalformedRecord  = errors.New("malformed record")
	ErrWrongCredentials = errors.New("invalid username or password")
	ErrPasswordMismatch = errors.New("passwords do not match")
)
