package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/hackgods/clinic-booking/internal/booking"
)

type SubmitAppointmentRequest struct {
	PatientID   string `json:"patient_id"`
	PatientName string `json:"patient_name"`
	DoctorID    string `json:"doctor_id"`
	DoctorName  string `json:"doctor_name"`
	Specialty   string `json:"specialty"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
}

type AppointmentResponse struct {
	ID          uuid.UUID            `json:"id"`
	PatientID   string               `json:"patient_id"`
	PatientName string               `json:"patient_name"`
	DoctorID    string               `json:"doctor_id"`
	DoctorName  string               `json:"doctor_name"`
	Date        string               `json:"date"`
	Time        string               `json:"time"`
	Specialty   string               `json:"specialty"`
	Status      string               `json:"status"`
	Display     booking.Presentation `json:"display"`
	CreatedAt   time.Time            `json:"created_at"`
}

type SlotsResponse struct {
	DoctorID string   `json:"doctor_id"`
	Date     string   `json:"date"`
	Slots    []string `json:"slots"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func toAppointmentResponse(a booking.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:          a.ID,
		PatientID:   a.PatientID,
		PatientName: a.PatientName,
		DoctorID:    a.DoctorID,
		DoctorName:  a.DoctorName,
		Date:        a.Date,
		Time:        a.Time,
		Specialty:   a.Specialty,
		Status:      string(a.Status),
		Display:     booking.StatusPresentation(a.Status),
		CreatedAt:   a.CreatedAt,
	}
}
