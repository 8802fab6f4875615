package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/hackgods/clinic-booking/internal/config"
	"github.com/hackgods/clinic-booking/internal/directory"
	redisclient "github.com/hackgods/clinic-booking/internal/redis"
)

var (
	ErrMissingDoctor      = errors.New("doctor is required")
	ErrMissingTime        = errors.New("time is required")
	ErrMissingDescription = errors.New("description is required")
	ErrUnknownSlot        = errors.New("time is not a bookable slot")
	ErrSlotTaken          = errors.New("slot already booked for this doctor and date")
	ErrDoctorMismatch     = errors.New("doctor does not belong to the selected specialty")
	ErrStoreBusy          = errors.New("appointment store is busy, please retry")
)

// DoctorLookup is the slice of the directory the service needs to keep
// a submitted doctor consistent with the draft's specialty.
type DoctorLookup interface {
	DoctorsBySpecialty(ctx context.Context, specialty string) ([]directory.Doctor, error)
}

type Service struct {
	store    Store
	dir      DoctorLookup
	locker   redisclient.Locker
	cfg      config.Config
	notifier Notifier
	now      func() time.Time
}

func NewService(store Store, dir DoctorLookup, locker redisclient.Locker, cfg config.Config, notifier Notifier) *Service {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &Service{
		store:    store,
		dir:      dir,
		locker:   locker,
		cfg:      cfg,
		notifier: notifier,
		now:      time.Now,
	}
}

// ValidateDraft checks that a draft is complete enough to submit. It
// returns the first failure so the caller can show one inline message.
func (s *Service) ValidateDraft(d Draft) error {
	if d.DoctorID == "" {
		return ErrMissingDoctor
	}
	if d.Time == "" {
		return ErrMissingTime
	}
	if d.Description == "" {
		return ErrMissingDescription
	}
	if err := ValidateDate(d.Date, s.now(), s.cfg.BookingWindowMonths); err != nil {
		return err
	}
	if !IsValidSlot(d.Time) {
		return ErrUnknownSlot
	}
	return nil
}

// Submit validates a draft and, if it passes, persists a new pending
// appointment. Validation failures never touch the store. The
// read-check-append cycle runs under the collection lock so concurrent
// submissions cannot lose an append or double-book a slot.
func (s *Service) Submit(ctx context.Context, patient Patient, d Draft) (*Appointment, error) {
	if err := s.ValidateDraft(d); err != nil {
		return nil, err
	}

	if err := s.checkSpecialty(ctx, d); err != nil {
		return nil, err
	}

	appt := Appointment{
		ID:          uuid.New(),
		PatientID:   patient.ID,
		PatientName: patient.Name,
		DoctorID:    d.DoctorID,
		DoctorName:  d.DoctorName,
		Date:        d.Date,
		Time:        d.Time,
		Specialty:   d.Specialty,
		Status:      StatusPending,
		CreatedAt:   s.now(),
	}

	err := s.locker.WithLock(ctx, DefaultStoreKey, func(lockCtx context.Context) error {
		// Re-check inside the critical section so two submissions for
		// the same doctor/date/time cannot both append.
		existing, err := s.store.List(lockCtx)
		if err != nil {
			return fmt.Errorf("load appointment collection: %w", err)
		}
		for _, e := range existing {
			if e.DoctorID == appt.DoctorID && e.Date == appt.Date && e.Time == appt.Time && e.Status != StatusCancelled {
				return ErrSlotTaken
			}
		}

		if err := s.store.Append(lockCtx, appt); err != nil {
			return fmt.Errorf("append appointment: %w", err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, redisclient.ErrLockNotAcquired) {
			return nil, ErrStoreBusy
		}
		return nil, err
	}

	return &appt, nil
}

// checkSpecialty rejects a draft whose doctor is not listed under its
// specialty. A directory outage during the check degrades silently,
// matching the filtered-reload behaviour.
func (s *Service) checkSpecialty(ctx context.Context, d Draft) error {
	if d.Specialty == "" || s.dir == nil {
		return nil
	}

	doctors, err := s.dir.DoctorsBySpecialty(ctx, d.Specialty)
	if err != nil {
		log.Printf("specialty check skipped, directory unreachable: %v", err)
		s.notifier.Inline("could not verify doctor availability")
		return nil
	}

	for _, doc := range doctors {
		if doc.ID == d.DoctorID {
			return nil
		}
	}
	return ErrDoctorMismatch
}

// Appointments returns the persisted collection in insertion order.
func (s *Service) Appointments(ctx context.Context) ([]Appointment, error) {
	appts, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}

// AvailableSlots filters the slot grid down to the labels still free
// for the given doctor and date. Cancelled appointments free their
// slot again.
func (s *Service) AvailableSlots(ctx context.Context, doctorID, date string) ([]string, error) {
	if err := ValidateDate(date, s.now(), s.cfg.BookingWindowMonths); err != nil {
		return nil, err
	}

	appts, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	taken := make(map[string]bool)
	for _, a := range appts {
		if a.DoctorID == doctorID && a.Date == date && a.Status != StatusCancelled {
			taken[a.Time] = true
		}
	}

	var free []string
	for _, slot := range Slots() {
		if !taken[slot] {
			free = append(free, slot)
		}
	}
	return free, nil
}
