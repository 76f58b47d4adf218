package http

import (
	"encoding/json"
	"net/http"

	"github.com/bnema/mediaferry/internal/infrastructure/logger"
	"github.com/bnema/mediaferry/internal/port"
)

var statusOK = map[string]string{"status": "ok"}

func QueueStatus(inspector port.QueueInspector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := inspector.Stats(r.Context())
		if err != nil {
			logger.Error.Printf("queue status: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "queue unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

func QueueClear(inspector port.QueueInspector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		removed, err := inspector.ClearPending(r.Context())
		if err != nil {
			logger.Error.Printf("queue clear: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "queue unavailable"})
			return
		}
		logger.Info.Printf("cleared %d pending tasks", removed)
		writeJSON(w, http.StatusOK, map[string]int{"removed": removed})
	}
}

func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, statusOK)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn.Printf("write response: %v", err)
	}
}
