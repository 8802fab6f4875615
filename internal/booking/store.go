package booking

import (
	"context"
	"errors"
)

var (
	ErrStoreUnavailable = errors.New("appointment store unavailable")
)

// Store is the persisted appointment collection. It is append-only:
// nothing in this service updates or deletes a record once written.
// An absent collection reads as an empty one.
type Store interface {
	List(ctx context.Context) ([]Appointment, error)
	Append(ctx context.Context, appt Appointment) error
}
