package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hackgods/clinic-booking/internal/config"
	"github.com/hackgods/clinic-booking/internal/directory"
	redisclient "github.com/hackgods/clinic-booking/internal/redis"
)

// -- Test doubles --

type noopLocker struct{}

func (noopLocker) WithLock(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type busyLocker struct{}

func (busyLocker) WithLock(context.Context, string, func(ctx context.Context) error) error {
	return redisclient.ErrLockNotAcquired
}

type countingStore struct {
	*MemStore
	appends int
}

func (s *countingStore) Append(ctx context.Context, appt Appointment) error {
	s.appends++
	return s.MemStore.Append(ctx, appt)
}

type failingStore struct{}

func (failingStore) List(context.Context) ([]Appointment, error) {
	return nil, nil
}

func (failingStore) Append(context.Context, Appointment) error {
	return ErrStoreUnavailable
}

type stubDirectory struct {
	doctors []directory.Doctor
	err     error
	calls   int
}

func (d *stubDirectory) DoctorsBySpecialty(context.Context, string) ([]directory.Doctor, error) {
	d.calls++
	return d.doctors, d.err
}

type silentNotifier struct {
	inlines []string
	alerts  []string
}

func (n *silentNotifier) Inline(msg string) { n.inlines = append(n.inlines, msg) }
func (n *silentNotifier) Alert(msg string)  { n.alerts = append(n.alerts, msg) }

func newTestService(store Store, dir DoctorLookup, locker redisclient.Locker) *Service {
	svc := NewService(store, dir, locker, config.Config{BookingWindowMonths: 3}, &silentNotifier{})
	svc.now = func() time.Time { return refDay(2024, time.March, 1) }
	return svc
}

func validDraft() Draft {
	return Draft{
		DoctorID:    "doc-1",
		DoctorName:  "Dr. Souza",
		Date:        "15/03/2024",
		Time:        "09:30",
		Description: "checkup",
	}
}

var testPatient = Patient{ID: "pat-1", Name: "Maria"}

// -- Tests --

func TestSubmit_Success(t *testing.T) {
	store := &countingStore{MemStore: NewMemStore()}
	svc := newTestService(store, nil, noopLocker{})

	appt, err := svc.Submit(context.Background(), testPatient, validDraft())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if appt.Status != StatusPending {
		t.Errorf("status = %q, want pending", appt.Status)
	}
	if appt.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("appointment id not assigned")
	}
	if appt.PatientID != "pat-1" || appt.PatientName != "Maria" {
		t.Errorf("patient not carried onto appointment: %+v", appt)
	}

	persisted, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(persisted) != 1 {
		t.Fatalf("persisted %d appointments, want 1", len(persisted))
	}
}

func TestSubmit_TwoAppendsKeepOrderAndDistinctIDs(t *testing.T) {
	store := NewMemStore()
	svc := newTestService(store, nil, noopLocker{})

	first := validDraft()
	second := validDraft()
	second.Time = "10:00"

	a1, err := svc.Submit(context.Background(), testPatient, first)
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	a2, err := svc.Submit(context.Background(), testPatient, second)
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}

	if a1.ID == a2.ID {
		t.Errorf("ids not distinct: %s", a1.ID)
	}

	persisted, _ := store.List(context.Background())
	if len(persisted) != 2 {
		t.Fatalf("persisted %d appointments, want 2", len(persisted))
	}
	if persisted[0].ID != a1.ID || persisted[1].ID != a2.ID {
		t.Error("appointments not in insertion order")
	}
}

func TestSubmit_MissingFieldsNeverTouchStore(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Draft)
		wantErr error
	}{
		{"no doctor", func(d *Draft) { d.DoctorID = "" }, ErrMissingDoctor},
		{"no time", func(d *Draft) { d.Time = "" }, ErrMissingTime},
		{"no description", func(d *Draft) { d.Description = "" }, ErrMissingDescription},
		{"bad date", func(d *Draft) { d.Date = "2024-03-15" }, ErrDateFormat},
		{"past date", func(d *Draft) { d.Date = "15/02/2024" }, ErrDateInPast},
		{"unknown slot", func(d *Draft) { d.Time = "09:17" }, ErrUnknownSlot},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &countingStore{MemStore: NewMemStore()}
			svc := newTestService(store, nil, noopLocker{})

			d := validDraft()
			tc.mutate(&d)

			_, err := svc.Submit(context.Background(), testPatient, d)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Submit error = %v, want %v", err, tc.wantErr)
			}
			if store.appends != 0 {
				t.Errorf("store touched %d times on invalid draft", store.appends)
			}
		})
	}
}

func TestSubmit_SlotTaken(t *testing.T) {
	store := NewMemStore()
	svc := newTestService(store, nil, noopLocker{})

	if _, err := svc.Submit(context.Background(), testPatient, validDraft()); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	_, err := svc.Submit(context.Background(), Patient{ID: "pat-2", Name: "João"}, validDraft())
	if !errors.Is(err, ErrSlotTaken) {
		t.Errorf("second submit for same doctor/date/time = %v, want ErrSlotTaken", err)
	}

	persisted, _ := store.List(context.Background())
	if len(persisted) != 1 {
		t.Errorf("persisted %d appointments, want 1", len(persisted))
	}
}

func TestSubmit_CancelledAppointmentFreesSlot(t *testing.T) {
	store := NewMemStore()
	svc := newTestService(store, nil, noopLocker{})

	cancelled := Appointment{
		DoctorID: "doc-1",
		Date:     "15/03/2024",
		Time:     "09:30",
		Status:   StatusCancelled,
	}
	if err := store.Append(context.Background(), cancelled); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Submit(context.Background(), testPatient, validDraft()); err != nil {
		t.Errorf("submit over cancelled appointment should succeed, got %v", err)
	}
}

func TestSubmit_StoreBusy(t *testing.T) {
	svc := newTestService(NewMemStore(), nil, busyLocker{})

	_, err := svc.Submit(context.Background(), testPatient, validDraft())
	if !errors.Is(err, ErrStoreBusy) {
		t.Errorf("Submit with contended lock = %v, want ErrStoreBusy", err)
	}
}

func TestSubmit_StorageFailure(t *testing.T) {
	svc := newTestService(failingStore{}, nil, noopLocker{})

	_, err := svc.Submit(context.Background(), testPatient, validDraft())
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("Submit with failing store = %v, want wrapped ErrStoreUnavailable", err)
	}
}

func TestSubmit_SpecialtyMismatch(t *testing.T) {
	dir := &stubDirectory{doctors: []directory.Doctor{{ID: "doc-9", Name: "Dr. Lima", Specialty: "Cardiology"}}}
	store := &countingStore{MemStore: NewMemStore()}
	svc := newTestService(store, dir, noopLocker{})

	d := validDraft()
	d.Specialty = "Cardiology"

	_, err := svc.Submit(context.Background(), testPatient, d)
	if !errors.Is(err, ErrDoctorMismatch) {
		t.Errorf("Submit = %v, want ErrDoctorMismatch", err)
	}
	if store.appends != 0 {
		t.Error("store touched despite specialty mismatch")
	}
}

func TestSubmit_SpecialtyCheckDegradesWhenDirectoryDown(t *testing.T) {
	dir := &stubDirectory{err: errors.New("connection refused")}
	svc := newTestService(NewMemStore(), dir, noopLocker{})

	d := validDraft()
	d.Specialty = "Cardiology"

	if _, err := svc.Submit(context.Background(), testPatient, d); err != nil {
		t.Errorf("submit should degrade silently when directory is down, got %v", err)
	}
	if dir.calls != 1 {
		t.Errorf("directory called %d times, want 1", dir.calls)
	}
}

func TestSubmit_NoSpecialtySkipsDirectory(t *testing.T) {
	dir := &stubDirectory{}
	svc := newTestService(NewMemStore(), dir, noopLocker{})

	if _, err := svc.Submit(context.Background(), testPatient, validDraft()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if dir.calls != 0 {
		t.Errorf("directory called %d times for draft without specialty", dir.calls)
	}
}

func TestAvailableSlots(t *testing.T) {
	store := NewMemStore()
	svc := newTestService(store, nil, noopLocker{})

	free, err := svc.AvailableSlots(context.Background(), "doc-1", "15/03/2024")
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	if len(free) != 18 {
		t.Fatalf("empty store should leave all 18 slots free, got %d", len(free))
	}

	if _, err := svc.Submit(context.Background(), testPatient, validDraft()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	free, err = svc.AvailableSlots(context.Background(), "doc-1", "15/03/2024")
	if err != nil {
		t.Fatalf("AvailableSlots after booking: %v", err)
	}
	if len(free) != 17 {
		t.Errorf("after booking 09:30, %d slots free, want 17", len(free))
	}
	for _, s := range free {
		if s == "09:30" {
			t.Error("booked slot 09:30 still listed as free")
		}
	}

	// Another doctor on the same date is unaffected
	free, err = svc.AvailableSlots(context.Background(), "doc-2", "15/03/2024")
	if err != nil {
		t.Fatalf("AvailableSlots other doctor: %v", err)
	}
	if len(free) != 18 {
		t.Errorf("other doctor should have all 18 slots, got %d", len(free))
	}
}

func TestAvailableSlots_BadDate(t *testing.T) {
	svc := newTestService(NewMemStore(), nil, noopLocker{})

	if _, err := svc.AvailableSlots(context.Background(), "doc-1", "not-a-date"); !errors.Is(err, ErrDateFormat) {
		t.Errorf("AvailableSlots with bad date = %v, want ErrDateFormat", err)
	}
}
