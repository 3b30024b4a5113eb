package memstat

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/memory_reader_mock.go -package=mock

// Reader measures memory usage.
type Reader interface {
	// ReadKilobytes returns the current usage in kilobytes. A failed read is
	// transient: the caller may simply try again later.
	ReadKilobytes(ctx context.Context) (uint64, error)

	// Source names what is being measured ("process" or "system").
	Source() string
}
