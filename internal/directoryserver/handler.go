package directoryserver

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hackgods/clinic-booking/internal/directory"
)

// Repository is what the handlers need from storage.
type Repository interface {
	ListSpecialties(ctx context.Context) ([]directory.Specialty, error)
	ListDoctors(ctx context.Context) ([]directory.Doctor, error)
	ListDoctorsBySpecialty(ctx context.Context, specialty string) ([]directory.Doctor, error)
}

func NewRouter(repo Repository) http.Handler {
	r := chi.NewRouter()

	r.Get("/specialties", listSpecialtiesHandler(repo))
	r.Get("/doctors", listDoctorsHandler(repo))

	return r
}

func listSpecialtiesHandler(repo Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		specs, err := repo.ListSpecialties(r.Context())
		if err != nil {
			log.Printf("list specialties: %v", err)
			writeError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		if specs == nil {
			specs = []directory.Specialty{}
		}
		writeJSON(w, http.StatusOK, specs)
	}
}

func listDoctorsHandler(repo Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		specialty := r.URL.Query().Get("specialty")

		var (
			docs []directory.Doctor
			err  error
		)
		if specialty != "" {
			docs, err = repo.ListDoctorsBySpecialty(r.Context(), specialty)
		} else {
			docs, err = repo.ListDoctors(r.Context())
		}
		if err != nil {
			log.Printf("list doctors (specialty=%q): %v", specialty, err)
			writeError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		if docs == nil {
			docs = []directory.Doctor{}
		}
		writeJSON(w, http.StatusOK, docs)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
