package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"fartgen-backend/infrastructure/config"
	"fartgen-backend/pkg/common"
)

// Version is the advertised API version string
const Version = "0.1.0"

// MetaHandler serves the informational endpoints. Every response here is a
// fixed, dependency-free payload; in particular Health must never touch the
// database, cache or any third-party API so it stays a true liveness signal.
type MetaHandler struct {
	cfg    *config.Settings
	logger *zap.Logger
}

// NewMetaHandler creates a new meta handler
func NewMetaHandler(cfg *config.Settings, logger *zap.Logger) *MetaHandler {
	return &MetaHandler{
		cfg:    cfg,
		logger: logger,
	}
}

type rootResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Status  string `json:"status"`
	Docs    string `json:"docs"`
}

// Root handles GET /
// @Summary      API info
// @Tags         meta
// @Produce      json
// @Success      200 {object} handlers.rootResponse
// @Router       / [get]
func (h *MetaHandler) Root(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, rootResponse{
		Name:    h.cfg.AppName,
		Version: Version,
		Status:  "operational",
		Docs:    "/api/docs",
	})
}

type healthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
}

// Health handles GET /health
// @Summary      Liveness probe
// @Tags         meta
// @Produce      json
// @Success      200 {object} handlers.healthResponse
// @Router       /health [get]
func (h *MetaHandler) Health(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, healthResponse{
		Status:      "healthy",
		Environment: h.cfg.Environment,
	})
}

type apiInfoResponse struct {
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// APIInfo handles GET /api/v1. The endpoint map is documentation only; the
// advertised groups are owned by services that are not mounted here.
// @Summary      API v1 resource map
// @Tags         meta
// @Produce      json
// @Success      200 {object} handlers.apiInfoResponse
// @Router       /api/v1 [get]
func (h *MetaHandler) APIInfo(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, apiInfoResponse{
		Version: "v1",
		Endpoints: map[string]string{
			"auth":        "/api/v1/auth",
			"users":       "/api/v1/users",
			"generations": "/api/v1/generations",
			"shared":      "/api/v1/shared",
			"collections": "/api/v1/collections",
			"websocket":   "ws://localhost:8000/ws/generate",
		},
	})
}
