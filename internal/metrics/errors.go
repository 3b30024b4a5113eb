package metrics

import "errors"

var (
	// ErrDuplicateGauge is returned when a gauge name is registered twice.
	// Callers treat it as a fatal startup misconfiguration.
	ErrDuplicateGauge = errors.New("gauge already registered")

	// ErrUnknownGauge is returned when setting or reading a gauge that was
	// never registered.
	ErrUnknownGauge = errors.New("gauge is not registered")
)
