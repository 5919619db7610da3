// Package http provides meta and health endpoints
package http

import (
	"net/http"
	"time"

	"tenantrisk/internal/core/model"
	"tenantrisk/internal/core/version"
	"tenantrisk/internal/modkit/httpkit"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Model       model.State
}

type handlers struct {
	deps Deps
}

// RegisterRoot mounts the service status endpoint at the router root.
// It always succeeds, reporting whether the startup model load worked
func RegisterRoot(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}
	httpkit.Get(r, "/", h.status)
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

//
// Swagger DTOs and route docs
//

// StatusResponse is the root status payload
// swagger:model
type StatusResponse struct {
	Status      string `json:"status"       example:"Online"`
	ModelLoaded bool   `json:"model_loaded" example:"true"`
}

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"tenantrisk-api"`
	Started string `json:"started"  example:"2026-08-01T13:00:00Z"`
	Now     string `json:"now"      example:"2026-08-01T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"model"`
	Status string `json:"status" example:"ok"` // ok fail
	Error  string `json:"error,omitempty" example:"model artifact not loaded"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-08-01T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"tenantrisk-api"`
	Started string `json:"started" example:"2026-08-01T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// swagger:route GET / Meta rootStatus
// @Summary Service status and model availability
// @Tags Meta
// @Produce json
// @Success 200 type StatusResponse "ok"
// @Router / [get]
func (h *handlers) status(_ *http.Request) (any, error) {
	return StatusResponse{
		Status:      "Online",
		ModelLoaded: h.deps.Model.Loaded(),
	}, nil
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 type HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 type ReadyResponse ok
// @Router /meta/ready [get]
func (h *handlers) ready(_ *http.Request) (any, error) {
	mc := ReadyCheck{Name: "model", Status: "ok"}
	overall := "ok"
	if !h.deps.Model.Loaded() {
		// no hot reload: degraded is terminal until the process restarts
		mc = ReadyCheck{Name: "model", Status: "fail", Error: "model artifact not loaded"}
		overall = "degraded"
	}

	return ReadyResponse{
		Status: overall,
		Checks: []ReadyCheck{mc},
		Now:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 type version.BuildInfo ok
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 type ServiceResponse ok
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}
