package errs

import "errors"

// Cross-cutting sentinel errors shared between the gateway adapter,
// the OAuth manager and the reconciliation engine. Usecase-local
// sentinels live in their command packages.
var (
	// ErrGatewayNotConfigured indicates a missing client id/secret or
	// redirect URI for the payment gateway.
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")

	// ErrGatewayUnavailable indicates a transport failure or timeout
	// calling the payment gateway.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")

	// ErrGatewayResponse indicates a 4xx/5xx or malformed body from
	// the payment gateway. Provider details stay in the wrapped cause.
	ErrGatewayResponse = errors.New("payment gateway rejected request")
)
