package handler

import (
	"net/http"

	"github.com/vladislavprovich/nft-api-sdk/pkg/client/vottun"
)

func (h *ServiceHandler) DeployERC721Contract(w http.ResponseWriter, r *http.Request) {
	var req vottun.DeployERC721ContractRequest
	if err := decodeJSON(r, &req); err != nil {
		h.sendError(r.Context(), w, "DeployERC721Contract", err)
		return
	}
	resp, err := h.api.DeployERC721Contract(r.Context(), &req)
	h.respond(w, r, "DeployERC721Contract", resp, err)
}

func (h *ServiceHandler) MintNft(w http.ResponseWriter, r *http.Request) {
	var req vottun.MintNftRequest
	if err := decodeJSON(r, &req); err != nil {
		h.sendError(r.Context(), w, "MintNft", err)
		return
	}
	resp, err := h.api.MintNft(r.Context(), &req)
	h.respond(w, r, "MintNft", resp, err)
}

func (h *ServiceHandler) TransferNft(w http.ResponseWriter, r *http.Request) {
	var req vottun.TransferNftRequest
	if err := decodeJSON(r, &req); err != nil {
		h.sendError(r.Context(), w, "TransferNft", err)
		return
	}
	resp, err := h.api.TransferNft(r.Context(), &req)
	h.respond(w, r, "TransferNft", resp, err)
}
