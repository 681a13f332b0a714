package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vladislavprovich/nft-api-sdk/pkg/client/vottun"
)

func (h *ServiceHandler) DeployPoapContract(w http.ResponseWriter, r *http.Request) {
	var req vottun.DeployPoapContractRequest
	if err := decodeJSON(r, &req); err != nil {
		h.sendError(r.Context(), w, "DeployPoapContract", err)
		return
	}
	resp, err := h.api.DeployPoapContract(r.Context(), &req)
	h.respond(w, r, "DeployPoapContract", resp, err)
}

func (h *ServiceHandler) MintBatchPoap(w http.ResponseWriter, r *http.Request) {
	var req vottun.MintBatchRequest
	if err := decodeJSON(r, &req); err != nil {
		h.sendError(r.Context(), w, "MintBatchPoap", err)
		return
	}
	resp, err := h.api.MintBatchPoap(r.Context(), &req)
	h.respond(w, r, "MintBatchPoap", resp, err)
}

func (h *ServiceHandler) TransferPoap(w http.ResponseWriter, r *http.Request) {
	var req vottun.TransferPoapRequest
	if err := decodeJSON(r, &req); err != nil {
		h.sendError(r.Context(), w, "TransferPoap", err)
		return
	}
	resp, err := h.api.TransferPoap(r.Context(), &req)
	h.respond(w, r, "TransferPoap", resp, err)
}

func (h *ServiceHandler) GetPoapURI(w http.ResponseWriter, r *http.Request) {
	req, err := tokenRequest(r)
	if err != nil {
		h.sendError(r.Context(), w, "GetPoapURI", err)
		return
	}
	resp, err := h.api.GetPoapURI(r.Context(), req)
	h.respond(w, r, "GetPoapURI", resp, err)
}

func (h *ServiceHandler) GetPoapInfo(w http.ResponseWriter, r *http.Request) {
	req := &vottun.GetPoapInfoRequest{
		OwnerAddress:    chi.URLParam(r, "owner"),
		ContractAddress: chi.URLParam(r, "contract"),
	}
	err := parse(
		tokenPath(r, "tokenId", &req.TokenID),
		intQuery(r.URL.Query(), "network", &req.Network),
	)
	if err != nil {
		h.sendError(r.Context(), w, "GetPoapInfo", err)
		return
	}
	resp, err := h.api.GetPoapInfo(r.Context(), req)
	h.respond(w, r, "GetPoapInfo", resp, err)
}

func (h *ServiceHandler) GetPoapsByOwner(w http.ResponseWriter, r *http.Request) {
	req := &vottun.GetPoapsByOwnerRequest{OwnerAddress: chi.URLParam(r, "owner")}
	resp, err := h.api.GetPoapsByOwner(r.Context(), req)
	h.respond(w, r, "GetPoapsByOwner", resp, err)
}

func (h *ServiceHandler) BalanceOfPoap(w http.ResponseWriter, r *http.Request) {
	req, err := balanceOfRequest(r)
	if err != nil {
		h.sendError(r.Context(), w, "BalanceOfPoap", err)
		return
	}
	resp, err := h.api.BalanceOfPoap(r.Context(), req)
	h.respond(w, r, "BalanceOfPoap", resp, err)
}

func balanceOfRequest(r *http.Request) (*vottun.BalanceOfRequest, error) {
	q := r.URL.Query()
	req := &vottun.BalanceOfRequest{
		ContractAddress: q.Get("contract"),
		OwnerAddress:    q.Get("owner"),
	}
	err := parse(
		tokenQuery(q, "tokenId", &req.TokenID),
		intQuery(q, "network", &req.Network),
	)
	return req, err
}
