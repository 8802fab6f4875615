package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/hackgods/clinic-booking/internal/booking"
)

type RouterConfig struct {
	Service   *booking.Service
	Directory DirectoryClient
	Notifier  booking.Notifier
	Redis     *redis.Client
	Env       string
	Version   string
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)

	if cfg.Notifier == nil {
		cfg.Notifier = booking.LogNotifier{}
	}

	// Health endpoints
	if pinger, ok := cfg.Directory.(DirectoryPinger); ok && cfg.Redis != nil {
		health := NewHealthHandler(cfg.Redis, pinger, cfg.Env, cfg.Version)
		r.Get("/health/live", health.Liveness)
		r.Get("/health/ready", health.Readiness)
	}

	// Booking form data
	r.Get("/catalog", catalogHandler(cfg.Directory, cfg.Notifier))
	r.Get("/doctors", doctorsHandler(cfg.Directory, cfg.Notifier))
	r.Get("/slots", slotsHandler(cfg.Service))

	// Appointments
	r.Post("/appointments", submitAppointmentHandler(cfg.Service))
	r.Get("/appointments", listAppointmentsHandler(cfg.Service))

	return r
}
