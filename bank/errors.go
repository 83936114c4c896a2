// Domain errors returned by the handlers. Every precondition failure maps to
// exactly one of these, so the caller can branch on the reason instead of
// parsing log output.
package bank

import "errors"

var (
	// ErrNotLoggedIn means the action needs an authenticated session.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrUnknownUsername means login found no account for the username.
	ErrUnknownUsername = errors.New("username does not exist")

	// ErrWrongPin means the pin did not match the account's pin.
	ErrWrongPin = errors.New("incorrect pin")

	// ErrAmountNotPositive means the requested amount was zero or negative.
	ErrAmountNotPositive = errors.New("amount must be greater than zero")

	// ErrRecipientNotFound means the transfer target username matched no account.
	ErrRecipientNotFound = errors.New("recipient does not exist")

	// ErrInsufficientFunds means the transfer amount exceeds the sender's balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNoQualifyingDeposit means no single movement is large enough to
	// back the requested loan.
	ErrNoQualifyingDeposit = errors.New("no deposit large enough to back this loan")

	// Close preconditions. Both fields are checked against the logged-in
	// account; the both-wrong case takes precedence over the single-field ones.
	ErrCloseBothMismatch     = errors.New("username and pin do not match")
	ErrCloseUsernameMismatch = errors.New("username does not match")
	ErrClosePinMismatch      = errors.New("pin does not match")
)
