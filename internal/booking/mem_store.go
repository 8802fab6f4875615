package booking

import (
	"context"
	"sync"
)

// MemStore is an in-process Store used in tests and single-node dev
// runs. The mutex gives it the same single-writer behaviour the Redis
// store gets from the collection lock.
type MemStore struct {
	mu    sync.Mutex
	appts []Appointment
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) List(_ context.Context) ([]Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Appointment, len(s.appts))
	copy(out, s.appts)
	return out, nil
}

func (s *MemStore) Append(_ context.Context, appt Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.appts = append(s.appts, appt)
	return nil
}
