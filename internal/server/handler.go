package server

import (
	"encoding/json"
	"net/http"

	"github.com/orgball2608/insta-refresh-service/internal/refresher"
	apperrors "github.com/orgball2608/insta-refresh-service/pkg/errors"
	"github.com/orgball2608/insta-refresh-service/pkg/logger"
)

type Handler struct {
	Refresher refresher.Client
	Logger    logger.Logger
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /refresh", h.handleRefresh)
	mux.HandleFunc("GET /refresh", h.handleStatus)
	mux.HandleFunc("GET /healthz", h.handleHealth)
}

func (h *Handler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	h.Logger.Info("Refresh triggered", "remote", r.RemoteAddr)

	summary, err := h.Refresher.Run(r.Context())
	if err != nil {
		if apperrors.IsConflict(err) {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "Refresh already in progress"})
			return
		}
		h.Logger.Error("Refresh failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.Refresher.Status(r.Context())
	if err != nil {
		h.Logger.Error("Failed to read status", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
