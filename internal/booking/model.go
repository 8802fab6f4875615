package booking

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Appointment is a booked appointment as persisted in the store.
// Status is always pending at creation; confirming or cancelling is
// owned by an external collaborator, not this service.
type Appointment struct {
	ID          uuid.UUID `json:"id"`
	PatientID   string    `json:"patient_id"`
	PatientName string    `json:"patient_name"`
	DoctorID    string    `json:"doctor_id"`
	DoctorName  string    `json:"doctor_name"`
	Date        string    `json:"date"` // DD/MM/YYYY
	Time        string    `json:"time"` // one of the slot grid labels
	Specialty   string    `json:"specialty"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// Draft is the transient form state assembled while the patient fills
// in the booking form. It is discarded after submit.
type Draft struct {
	DoctorID    string `json:"doctor_id"`
	DoctorName  string `json:"doctor_name"`
	Specialty   string `json:"specialty"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
}

// Patient identifies the authenticated patient submitting a draft.
// Passed explicitly into Submit instead of being read from ambient state.
type Patient struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
