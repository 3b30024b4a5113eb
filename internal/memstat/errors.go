package memstat

import "errors"

var (
	// ErrMemoryUnavailable is returned when the platform does not expose the
	// requested statistic or reports an implausible value.
	ErrMemoryUnavailable = errors.New("memory statistics unavailable")

	// ErrUnknownSource is returned by NewReader for an unsupported source name.
	ErrUnknownSource = errors.New("unknown memory source")
)
