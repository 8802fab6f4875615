package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/hackgods/clinic-booking/internal/booking"
	"github.com/hackgods/clinic-booking/internal/directory"
)

// DirectoryClient is the slice of the directory the handlers consume.
type DirectoryClient interface {
	LoadCatalog(ctx context.Context) (*directory.Catalog, error)
	DoctorsBySpecialty(ctx context.Context, specialty string) ([]directory.Doctor, error)
}

func catalogHandler(dir DirectoryClient, notify booking.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat, err := dir.LoadCatalog(r.Context())
		if err != nil {
			// Initial bulk load failure is loud: the form cannot open
			// without specialties and doctors.
			log.Printf("catalog load failed: %v", err)
			notify.Alert("could not load specialties and doctors")
			writeError(w, http.StatusBadGateway, "directory_unavailable", "could not load specialties and doctors")
			return
		}
		writeJSON(w, http.StatusOK, cat)
	}
}

func doctorsHandler(dir DirectoryClient, notify booking.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		specialty := r.URL.Query().Get("specialty")
		if specialty == "" {
			writeError(w, http.StatusBadRequest, "missing_specialty", "specialty query parameter is required")
			return
		}

		docs, err := dir.DoctorsBySpecialty(r.Context(), specialty)
		if err != nil {
			// Filtered reload failure degrades quietly: the caller keeps
			// its previous doctor list.
			log.Printf("doctors reload failed (specialty=%q): %v", specialty, err)
			notify.Inline("doctor list could not be refreshed")
			writeError(w, http.StatusBadGateway, "directory_unavailable", "")
			return
		}
		if docs == nil {
			docs = []directory.Doctor{}
		}
		writeJSON(w, http.StatusOK, docs)
	}
}

func slotsHandler(svc *booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doctorID := r.URL.Query().Get("doctor_id")
		date := r.URL.Query().Get("date")
		if doctorID == "" {
			writeError(w, http.StatusBadRequest, "missing_doctor_id", "doctor_id query parameter is required")
			return
		}

		slots, err := svc.AvailableSlots(r.Context(), doctorID, date)
		if err != nil {
			handleBookingError(w, err)
			return
		}
		if slots == nil {
			slots = []string{}
		}

		writeJSON(w, http.StatusOK, SlotsResponse{
			DoctorID: doctorID,
			Date:     date,
			Slots:    slots,
		})
	}
}

func submitAppointmentHandler(svc *booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SubmitAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		if req.PatientID == "" {
			writeError(w, http.StatusBadRequest, "missing_patient", "patient_id is required")
			return
		}

		patient := booking.Patient{ID: req.PatientID, Name: req.PatientName}
		draft := booking.Draft{
			DoctorID:    req.DoctorID,
			DoctorName:  req.DoctorName,
			Specialty:   req.Specialty,
			Date:        req.Date,
			Time:        req.Time,
			Description: req.Description,
		}

		appt, err := svc.Submit(r.Context(), patient, draft)
		if err != nil {
			handleBookingError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toAppointmentResponse(*appt))
	}
}

func listAppointmentsHandler(svc *booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appts, err := svc.Appointments(r.Context())
		if err != nil {
			handleBookingError(w, err)
			return
		}

		out := make([]AppointmentResponse, 0, len(appts))
		for _, a := range appts {
			out = append(out, toAppointmentResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func handleBookingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, booking.ErrMissingDoctor),
		errors.Is(err, booking.ErrMissingTime),
		errors.Is(err, booking.ErrMissingDescription),
		errors.Is(err, booking.ErrUnknownSlot),
		errors.Is(err, booking.ErrDateFormat),
		errors.Is(err, booking.ErrDateNotCalendar),
		errors.Is(err, booking.ErrDateInPast),
		errors.Is(err, booking.ErrDateTooFar):
		writeError(w, http.StatusBadRequest, "invalid_draft", err.Error())
	case errors.Is(err, booking.ErrDoctorMismatch):
		writeError(w, http.StatusBadRequest, "doctor_specialty_mismatch", err.Error())
	case errors.Is(err, booking.ErrSlotTaken):
		writeError(w, http.StatusConflict, "slot_taken", err.Error())
	case errors.Is(err, booking.ErrStoreBusy):
		writeError(w, http.StatusConflict, "store_busy", "another booking is being written, please retry shortly")
	case errors.Is(err, directory.ErrUnavailable):
		writeError(w, http.StatusBadGateway, "directory_unavailable", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
