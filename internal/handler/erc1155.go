package handler

import (
	"net/http"

	"github.com/vladislavprovich/nft-api-sdk/pkg/client/vottun"
)

func (h *ServiceHandler) DeployERC1155Contract(w http.ResponseWriter, r *http.Request) {
	var req vottun.DeployERC1155ContractRequest
	if err := decodeJSON(r, &req); err != nil {
		h.sendError(r.Context(), w, "DeployERC1155Contract", err)
		return
	}
	resp, err := h.api.DeployERC1155Contract(r.Context(), &req)
	h.respond(w, r, "DeployERC1155Contract", resp, err)
}

func (h *ServiceHandler) MintBatchERC1155(w http.ResponseWriter, r *http.Request) {
	var req vottun.MintBatchRequest
	if err := decodeJSON(r, &req); err != nil {
		h.sendError(r.Context(), w, "MintBatchERC1155", err)
		return
	}
	resp, err := h.api.MintBatchERC1155(r.Context(), &req)
	h.respond(w, r, "MintBatchERC1155", resp, err)
}

func (h *ServiceHandler) TransferERC1155(w http.ResponseWriter, r *http.Request) {
	var req vottun.TransferERC1155Request
	if err := decodeJSON(r, &req); err != nil {
		h.sendError(r.Context(), w, "TransferERC1155", err)
		return
	}
	resp, err := h.api.TransferERC1155(r.Context(), &req)
	h.respond(w, r, "TransferERC1155", resp, err)
}

func (h *ServiceHandler) BalanceOfERC1155(w http.ResponseWriter, r *http.Request) {
	req, err := balanceOfRequest(r)
	if err != nil {
		h.sendError(r.Context(), w, "BalanceOfERC1155", err)
		return
	}
	resp, err := h.api.BalanceOfERC1155(r.Context(), req)
	h.respond(w, r, "BalanceOfERC1155", resp, err)
}
