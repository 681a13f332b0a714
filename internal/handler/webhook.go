package handler

import (
	"net/http"

	"github.com/vladislavprovich/nft-api-sdk/pkg/client/vottun"
)

func (h *ServiceHandler) GetWebhook(w http.ResponseWriter, r *http.Request) {
	resp, err := h.api.GetWebhook(r.Context())
	h.respond(w, r, "GetWebhook", resp, err)
}

func (h *ServiceHandler) CreateWebhook(w http.ResponseWriter, r *http.Request) {
	var req vottun.WebhookRequest
	if err := decodeJSON(r, &req); err != nil {
		h.sendError(r.Context(), w, "CreateWebhook", err)
		return
	}
	resp, err := h.api.CreateWebhook(r.Context(), &req)
	h.respond(w, r, "CreateWebhook", resp, err)
}

func (h *ServiceHandler) UpdateWebhook(w http.ResponseWriter, r *http.Request) {
	var req vottun.WebhookRequest
	if err := decodeJSON(r, &req); err != nil {
		h.sendError(r.Context(), w, "UpdateWebhook", err)
		return
	}
	resp, err := h.api.UpdateWebhook(r.Context(), &req)
	h.respond(w, r, "UpdateWebhook", resp, err)
}

func (h *ServiceHandler) SendTestWebhook(w http.ResponseWriter, r *http.Request) {
	resp, err := h.api.SendTestWebhook(r.Context())
	h.respond(w, r, "SendTestWebhook", resp, err)
}
