package domain

import "errors"

// The engine's error taxonomy. Callers discriminate with errors.Is; every
// failure is reported to the immediate caller and never retried, since the
// computation is deterministic.
var (
	// ErrInvalidInput marks a structurally invalid input bundle, e.g. a
	// negative claim count or a compliance score outside [0,100].
	ErrInvalidInput = errors.New("invalid input")

	// ErrIndeterminateRatio marks a variance calculation whose divisor is
	// zero and whose base case does not resolve it to a defined sentinel.
	ErrIndeterminateRatio = errors.New("indeterminate ratio")

	// ErrUpstreamDataMissing marks a missing external signal group. A trust
	// score computed from missing inputs would be misleading, so the engine
	// refuses to produce one.
	ErrUpstreamDataMissing = errors.New("upstream data missing")
)
