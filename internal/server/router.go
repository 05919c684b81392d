// Package server assembles the connector's outward surfaces: the HTTP
// server carrying WebSocket upgrades and the health check, the gRPC server
// carrying inbound dispatches, and the supervisor that runs both under one
// shutdown signal.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/meshwire/connector/internal/state"
)

// NewRouter builds the HTTP router: the WebSocket endpoint, the liveness
// check and the Prometheus scrape target.
func NewRouter(st *state.AppState) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(st.Logger))
	r.Use(middleware.Recoverer)

	r.Get("/ws/{user_id}", func(w http.ResponseWriter, req *http.Request) {
		userID := chi.URLParam(req, "user_id")
		if userID == "" {
			writeServiceValue(w, http.StatusBadRequest, "user_id is required")
			return
		}
		st.Sessions.ServeWS(w, req, userID)
	})

	r.Get("/check", func(w http.ResponseWriter, req *http.Request) {
		if err := st.Cache.Ping(req.Context()); err != nil {
			st.Logger.Warn("health check failed", zap.Error(err))
			writeServiceValue(w, http.StatusInternalServerError, "cache unreachable")
			return
		}
		writeServiceValue(w, http.StatusOK, "")
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
