package directoryserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hackgods/clinic-booking/internal/directory"
)

type stubRepo struct {
	specialties []directory.Specialty
	doctors     []directory.Doctor
	err         error

	lastSpecialty string
	filtered      bool
}

func (r *stubRepo) ListSpecialties(context.Context) ([]directory.Specialty, error) {
	return r.specialties, r.err
}

func (r *stubRepo) ListDoctors(context.Context) ([]directory.Doctor, error) {
	r.filtered = false
	return r.doctors, r.err
}

func (r *stubRepo) ListDoctorsBySpecialty(_ context.Context, specialty string) ([]directory.Doctor, error) {
	r.filtered = true
	r.lastSpecialty = specialty
	return r.doctors, r.err
}

func TestListSpecialties(t *testing.T) {
	repo := &stubRepo{specialties: []directory.Specialty{{ID: "s1", Name: "Cardiology"}}}
	router := NewRouter(repo)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/specialties", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var specs []directory.Specialty
	if err := json.Unmarshal(rec.Body.Bytes(), &specs); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(specs) != 1 || specs[0].Name != "Cardiology" {
		t.Errorf("unexpected specialties: %+v", specs)
	}
}

func TestListSpecialties_EmptyIsArray(t *testing.T) {
	router := NewRouter(&stubRepo{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/specialties", nil))

	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("empty list body = %q, want JSON array", body)
	}
}

func TestListDoctors_FilterDispatch(t *testing.T) {
	repo := &stubRepo{doctors: []directory.Doctor{{ID: "d1", Name: "Dr. Lima", Specialty: "Cardiology"}}}
	router := NewRouter(repo)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/doctors", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if repo.filtered {
		t.Error("unfiltered request used the specialty query")
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/doctors?specialty=Cardiology", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !repo.filtered || repo.lastSpecialty != "Cardiology" {
		t.Errorf("filter not applied, filtered=%v specialty=%q", repo.filtered, repo.lastSpecialty)
	}
}

func TestListDoctors_RepoError(t *testing.T) {
	router := NewRouter(&stubRepo{err: errors.New("db down")})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/doctors", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}
