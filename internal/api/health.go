package api

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// DirectoryPinger is the health view of the directory client.
type DirectoryPinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	redis     *redis.Client
	directory DirectoryPinger
	env       string
	version   string
}

func NewHealthHandler(rdb *redis.Client, dir DirectoryPinger, env, version string) *HealthHandler {
	return &HealthHandler{
		redis:     rdb,
		directory: dir,
		env:       env,
		version:   version,
	}
}

type LivenessResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Env     string `json:"env,omitempty"`
}

type ReadinessResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version,omitempty"`
	Env          string            `json:"env,omitempty"`
	Dependencies map[string]string `json:"dependencies"`
}

func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	resp := LivenessResponse{
		Status:  "ok",
		Version: h.version,
		Env:     h.env,
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	deps := make(map[string]string)
	status := "ok"

	// Check Redis (the appointment store)
	redisCtx, redisCancel := context.WithTimeout(ctx, 1*time.Second)
	err := h.redis.Ping(redisCtx).Err()
	redisCancel()
	if err != nil {
		deps["redis"] = "down"
		status = "error"
	} else {
		deps["redis"] = "ok"
	}

	// Check the directory service; the booking form degrades without it
	// but appointments can still be listed, so this only marks degraded.
	dirCtx, dirCancel := context.WithTimeout(ctx, 1*time.Second)
	err = h.directory.Ping(dirCtx)
	dirCancel()
	if err != nil {
		deps["directory"] = "down"
		if status == "ok" {
			status = "degraded"
		}
	} else {
		deps["directory"] = "ok"
	}

	resp := ReadinessResponse{
		Status:       status,
		Version:      h.version,
		Env:          h.env,
		Dependencies: deps,
	}

	httpStatus := http.StatusOK
	if status == "error" {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, resp)
}
