package store

import "errors"

// Validation and authorization failures surfaced by store operations.
// Each is also reported to the user through a notification; none of
// them changes store state.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLoginRequired      = errors.New("login required")
	ErrAdminRequired      = errors.New("admin access required")
	ErrMissingField       = errors.New("missing required field")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrWalletCheckout     = errors.New("wallet checkout is not available")
	ErrUnknownMethod      = errors.New("unknown payment method")
)
