package handler

import (
	"net/http"
)

type HealthResponse struct {
	Status int `json:"status"`
}

func (h *ServiceHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.sendJSON(r.Context(), w, http.StatusOK, HealthResponse{Status: http.StatusOK})
}
