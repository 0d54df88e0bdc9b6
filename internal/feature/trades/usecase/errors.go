// Package usecase implements the business logic for the trades feature.
package usecase

import "errors"

var (
	// ErrTickerNotFound is returned when the market data provider cannot resolve
	// a ticker. Provider errors collapse into this as well; the gateway does not
	// distinguish the two.
	ErrTickerNotFound = errors.New("ticker not found")

	// ErrMalformedAssessment is returned when the risk advisor's output cannot be
	// decoded into a valid RiskAssessment (non-JSON content, unknown prediction,
	// confidence out of range, or non-positive price levels).
	ErrMalformedAssessment = errors.New("malformed risk assessment")
)
